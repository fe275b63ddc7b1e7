package cmd

import (
	"context"

	"github.com/abhisek/vocabcards/internal/config"
	"github.com/abhisek/vocabcards/internal/llm"
	"github.com/abhisek/vocabcards/internal/pronounce"
	"github.com/abhisek/vocabcards/internal/store"
	"github.com/abhisek/vocabcards/internal/wordsource"
)

// newWordSource builds the LLM-backed word source from the environment.
func newWordSource(ctx context.Context, eventRepo store.EventRepo, s config.Settings) (*wordsource.LLMSource, error) {
	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		return nil, err
	}
	cfg := wordsource.DefaultConfig()
	cfg.Count = s.Count
	return wordsource.New(provider, cfg), nil
}

// newPlayer builds the pronunciation player from the environment, applying
// the configured voice and player command.
func newPlayer(ctx context.Context, eventRepo store.EventRepo, s config.Settings) (*pronounce.Player, error) {
	cfg, err := llm.LoadConfig()
	if err != nil {
		return nil, err
	}
	if s.Voice != "" {
		switch cfg.SpeechProvider() {
		case "gemini":
			cfg.Speech.GeminiVoice = s.Voice
		case "openai":
			cfg.Speech.OpenAIVoice = s.Voice
		}
	}

	synth, err := llm.NewSynthesizer(ctx, cfg, eventRepo)
	if err != nil {
		return nil, err
	}

	var opts []pronounce.Option
	if s.Player != "" {
		opts = append(opts, pronounce.WithCommand(s.Player))
	}
	return pronounce.NewPlayer(synth, opts...), nil
}
