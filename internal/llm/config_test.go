package llm

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"
)

// clearLLMEnv unsets every variable LoadConfig consults for the duration
// of the test. Empty values would still count as set.
func clearLLMEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"VOCABCARDS_LLM_PROVIDER", "VOCABCARDS_LLM_MAX_ATTEMPTS",
		"VOCABCARDS_ANTHROPIC_API_KEY", "VOCABCARDS_OPENAI_API_KEY",
		"VOCABCARDS_GEMINI_API_KEY", "VOCABCARDS_OPENROUTER_API_KEY",
		"VOCABCARDS_GEMINI_MODEL", "VOCABCARDS_SPEECH_PROVIDER",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		old, had := os.LookupEnv(k)
		os.Unsetenv(k)
		t.Cleanup(func() {
			if had {
				os.Setenv(k, old)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("VOCABCARDS_LLM_PROVIDER", "gemini")
	t.Setenv("VOCABCARDS_GEMINI_API_KEY", "g-key")
	t.Setenv("VOCABCARDS_GEMINI_MODEL", "gemini-pro")
	t.Setenv("VOCABCARDS_LLM_MAX_ATTEMPTS", "4")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != "gemini" || cfg.Gemini.APIKey != "g-key" || cfg.Gemini.Model != "gemini-pro" {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.Retry.MaxAttempts != 4 {
		t.Fatalf("expected 4 attempts, got %d", cfg.Retry.MaxAttempts)
	}
	// Defaults survive for unset variables.
	if cfg.OpenAI.Model != "gpt-4o-mini" || cfg.Retry.InitialWait != time.Second || cfg.Speech.GeminiVoice != "Kore" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestDefaultConfig_SingleAttempt(t *testing.T) {
	clearLLMEnv(t)
	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Retry.MaxAttempts != 1 {
		t.Fatalf("expected 1 attempt by default, got %d", cfg.Retry.MaxAttempts)
	}
}

func TestLoadConfig_DiscoversVendorKeys(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-open")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != "openai" {
		t.Fatalf("expected openai, got %q", cfg.Provider)
	}
	if cfg.Anthropic.APIKey != "sk-ant" {
		t.Fatal("expected the anthropic key to be filled too")
	}
	if cfg.SpeechProvider() != "openai" {
		t.Fatalf("expected openai speech, got %q", cfg.SpeechProvider())
	}
}

func TestLoadConfig_PinnedProviderNotOverridden(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("VOCABCARDS_LLM_PROVIDER", "anthropic")
	t.Setenv("GEMINI_API_KEY", "g-key")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected missing anthropic key error")
	}
}

func TestLoadConfig_NothingConfigured(t *testing.T) {
	clearLLMEnv(t)
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error with no keys")
	}
}

func TestDiscoverConfig(t *testing.T) {
	clearLLMEnv(t)
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no discovery")
	}

	t.Setenv("OPENROUTER_API_KEY", "or-key")
	t.Setenv("GEMINI_API_KEY", "g-key")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != "gemini" {
		t.Fatalf("expected gemini first, got %q", cfg.Provider)
	}
	if cfg.OpenRouter.APIKey != "or-key" {
		t.Fatal("expected openrouter key filled")
	}
}

func TestSpeechProvider(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"explicit", Config{Provider: "gemini", Speech: SpeechConfig{Provider: "openai"}}, "openai"},
		{"text provider speaks", Config{Provider: "gemini"}, "gemini"},
		{"anthropic falls back to gemini key", Config{Provider: "anthropic", Gemini: GeminiConfig{APIKey: "k"}}, "gemini"},
		{"openrouter falls back to openai key", Config{Provider: "openrouter", OpenAI: OpenAIConfig{APIKey: "k"}}, "openai"},
		{"none", Config{Provider: "anthropic"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.SpeechProvider(); got != tt.want {
				t.Fatalf("SpeechProvider() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openrouter"
	cfg.OpenRouter.APIKey = "or-key"

	p, err := NewProvider(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "google/gemini-2.0-flash-exp" {
		t.Fatalf("unexpected model %q", p.ModelID())
	}

	cfg.Provider = "anthropic"
	if _, err := NewProvider(context.Background(), cfg, nil); err == nil {
		t.Fatal("expected validation error without anthropic key")
	}
}

func TestNewSynthesizer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "openai"
	cfg.OpenAI.APIKey = "sk"

	s, err := NewSynthesizer(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ModelID() != "tts-1" {
		t.Fatalf("unexpected model %q", s.ModelID())
	}

	cfg = DefaultConfig()
	cfg.Anthropic.APIKey = "sk-ant"
	_, err = NewSynthesizer(context.Background(), cfg, nil)
	var noSpeech *ErrNoSpeech
	if !errors.As(err, &noSpeech) {
		t.Fatalf("expected ErrNoSpeech, got %v", err)
	}
}
