package llm

import (
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

	// Attribution headers OpenRouter uses to list the calling app.
	openRouterReferer = "https://github.com/abhisek/vocabcards"
	openRouterTitle   = "vocabcards"
)

// OpenRouterProvider talks to OpenRouter through its OpenAI-compatible
// API. Model IDs such as "google/gemini-2.0-flash-exp" pass through as-is.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultOpenRouterBaseURL
	}

	inner, err := newOpenAICompatible(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
	}, attributionDoer{next: http.DefaultClient})
	if err != nil {
		return nil, err
	}
	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}

// attributionDoer stamps OpenRouter's app attribution headers on every
// request before handing it to next.
type attributionDoer struct {
	next openai.HTTPDoer
}

func (d attributionDoer) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("HTTP-Referer", openRouterReferer)
	req.Header.Set("X-Title", openRouterTitle)
	return d.next.Do(req)
}
