package llm

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all LLM and speech provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "anthropic", "openai", "gemini", "openrouter", "mock"
	Provider string `env:"VOCABCARDS_LLM_PROVIDER"`

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Speech     SpeechConfig
	Retry      RetryConfig
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string `env:"VOCABCARDS_ANTHROPIC_API_KEY"`
	Model  string `env:"VOCABCARDS_ANTHROPIC_MODEL"` // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string `env:"VOCABCARDS_OPENAI_API_KEY"`
	Model   string `env:"VOCABCARDS_OPENAI_MODEL"`    // Default: "gpt-4o-mini"
	BaseURL string `env:"VOCABCARDS_OPENAI_BASE_URL"` // Optional. Override for compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string `env:"VOCABCARDS_GEMINI_API_KEY"`
	Model  string `env:"VOCABCARDS_GEMINI_MODEL"` // Default: "gemini-flash"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string `env:"VOCABCARDS_OPENROUTER_API_KEY"`
	Model   string `env:"VOCABCARDS_OPENROUTER_MODEL"`    // Default: "google/gemini-2.0-flash-exp"
	BaseURL string `env:"VOCABCARDS_OPENROUTER_BASE_URL"` // Default: "https://openrouter.ai/api/v1"
}

// SpeechConfig selects the text-to-speech backend.
type SpeechConfig struct {
	// Provider is "gemini", "openai" or "mock". Empty picks the text
	// provider when it can speak, else the first speech-capable provider
	// with a key.
	Provider    string `env:"VOCABCARDS_SPEECH_PROVIDER"`
	GeminiModel string `env:"VOCABCARDS_SPEECH_GEMINI_MODEL"`
	GeminiVoice string `env:"VOCABCARDS_SPEECH_GEMINI_VOICE"`
	OpenAIModel string `env:"VOCABCARDS_SPEECH_OPENAI_MODEL"`
	OpenAIVoice string `env:"VOCABCARDS_SPEECH_OPENAI_VOICE"`
}

// RetryConfig configures retry behavior for transient failures. The
// default is a single attempt; retries only happen when
// VOCABCARDS_LLM_MAX_ATTEMPTS asks for more.
type RetryConfig struct {
	MaxAttempts int           `env:"VOCABCARDS_LLM_MAX_ATTEMPTS"`
	InitialWait time.Duration `env:"VOCABCARDS_LLM_INITIAL_WAIT"`
	MaxWait     time.Duration `env:"VOCABCARDS_LLM_MAX_WAIT"`
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "anthropic",
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.0-flash-exp",
		},
		Speech: SpeechConfig{
			GeminiModel: "gemini-tts",
			GeminiVoice: "Kore",
			OpenAIModel: "tts-1",
			OpenAIVoice: "alloy",
		},
		Retry: RetryConfig{
			MaxAttempts: 1,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// ConfigFromEnv reads VOCABCARDS_* variables over DefaultConfig. Unset
// variables keep their defaults.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read llm env: %w", err)
	}
	return cfg, nil
}

// DiscoverConfig checks the standard API key env vars in priority order
// (Gemini, OpenAI, Anthropic, OpenRouter) and returns a Config for the
// first provider whose key is found. Every key that is present is filled
// in so speech can use a different provider than text. Returns
// (Config{}, false) if none found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	cfg.Provider = ""

	keys := []struct {
		env      string
		provider string
		dst      *string
	}{
		{"GEMINI_API_KEY", "gemini", &cfg.Gemini.APIKey},
		{"OPENAI_API_KEY", "openai", &cfg.OpenAI.APIKey},
		{"ANTHROPIC_API_KEY", "anthropic", &cfg.Anthropic.APIKey},
		{"OPENROUTER_API_KEY", "openrouter", &cfg.OpenRouter.APIKey},
	}
	for _, k := range keys {
		v := os.Getenv(k.env)
		if v == "" {
			continue
		}
		*k.dst = v
		if cfg.Provider == "" {
			cfg.Provider = k.provider
		}
	}

	if cfg.Provider == "" {
		return Config{}, false
	}
	return cfg, true
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("VOCABCARDS_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("VOCABCARDS_OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("VOCABCARDS_GEMINI_API_KEY is required for the gemini provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("VOCABCARDS_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

// SpeechProvider resolves which backend synthesizes speech, or "" when
// none is usable.
func (c Config) SpeechProvider() string {
	if c.Speech.Provider != "" {
		return c.Speech.Provider
	}
	switch c.Provider {
	case "gemini", "openai", "mock":
		return c.Provider
	}
	switch {
	case c.Gemini.APIKey != "":
		return "gemini"
	case c.OpenAI.APIKey != "":
		return "openai"
	}
	return ""
}
