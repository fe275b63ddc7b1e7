package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/vocabcards/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller → retry → logging → base
	logged := WithLogging(base, cfg.Provider, eventRepo)
	return WithRetry(logged, cfg.Retry), nil
}

// NewSynthesizer creates the speech Synthesizer selected by
// cfg.SpeechProvider, wrapped with retry and logging middleware.
func NewSynthesizer(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Synthesizer, error) {
	name := cfg.SpeechProvider()

	var base Synthesizer
	var err error

	switch name {
	case "gemini":
		base, err = NewGeminiSynthesizer(ctx, cfg.Gemini.APIKey, cfg.Speech)
	case "openai":
		base, err = NewOpenAISynthesizer(cfg.OpenAI, cfg.Speech)
	case "mock":
		return NewMockSynthesizer(), nil
	case "":
		return nil, &ErrNoSpeech{Reason: "no speech-capable provider configured (set a Gemini or OpenAI key)"}
	default:
		return nil, fmt.Errorf("unknown speech provider: %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s synthesizer: %w", name, err)
	}

	logged := WithSpeechLogging(base, name, eventRepo)
	return WithSpeechRetry(logged, cfg.Retry), nil
}

// LoadConfig reads VOCABCARDS_* settings. Unless VOCABCARDS_LLM_PROVIDER
// pins a provider, missing keys are filled from the standard vendor
// variables and the first provider holding a key is selected.
func LoadConfig() (Config, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return Config{}, err
	}

	if os.Getenv("VOCABCARDS_LLM_PROVIDER") == "" {
		if found, ok := DiscoverConfig(); ok {
			fillKey(&cfg.Gemini.APIKey, found.Gemini.APIKey)
			fillKey(&cfg.OpenAI.APIKey, found.OpenAI.APIKey)
			fillKey(&cfg.Anthropic.APIKey, found.Anthropic.APIKey)
			fillKey(&cfg.OpenRouter.APIKey, found.OpenRouter.APIKey)
		}
		if p := cfg.firstKeyedProvider(); p != "" {
			cfg.Provider = p
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func fillKey(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

// firstKeyedProvider returns the first provider, in discovery order, that
// has an API key.
func (c Config) firstKeyedProvider() string {
	switch {
	case c.Gemini.APIKey != "":
		return "gemini"
	case c.OpenAI.APIKey != "":
		return "openai"
	case c.Anthropic.APIKey != "":
		return "anthropic"
	case c.OpenRouter.APIKey != "":
		return "openrouter"
	}
	return ""
}

// NewProviderFromEnv builds a Provider from the environment. A nil
// eventRepo disables request logging.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, eventRepo)
}

// NewSynthesizerFromEnv builds a Synthesizer from the environment.
func NewSynthesizerFromEnv(ctx context.Context, eventRepo store.EventRepo) (Synthesizer, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewSynthesizer(ctx, cfg, eventRepo)
}
