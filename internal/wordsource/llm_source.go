package wordsource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/vocabcards/internal/llm"
	"github.com/abhisek/vocabcards/internal/vocab"
)

// Purpose labels word generation calls in the event log.
const Purpose = "word-gen"

// LLMSource implements Source using an LLM provider.
type LLMSource struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMSource with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMSource {
	return &LLMSource{provider: provider, config: cfg}
}

// wordListOutput is the raw LLM response before normalization.
type wordListOutput struct {
	Words []vocab.Entry `json:"words"`
}

// Words returns up to the configured number of entries for topic and level.
func (s *LLMSource) Words(ctx context.Context, topic vocab.Topic, level vocab.Level) ([]vocab.Entry, error) {
	return s.Generate(ctx, Request{Topic: topic, Level: level})
}

// Generate runs one word list request.
func (s *LLMSource) Generate(ctx context.Context, req Request) ([]vocab.Entry, error) {
	ctx = llm.WithPurpose(ctx, Purpose)
	count := s.config.count(req.Count)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(req, count, s.config.MaxExcluded)},
		},
		Schema:      WordListSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		if isContentError(err) {
			return []vocab.Entry{}, nil
		}
		return nil, fmt.Errorf("word generation failed: %w", err)
	}

	var raw wordListOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return []vocab.Entry{}, nil
	}

	return normalize(raw.Words, count), nil
}

// isContentError reports whether err means the provider answered but the
// answer was unusable.
func isContentError(err error) bool {
	var invalid *llm.ErrInvalidResponse
	var maxTok *llm.ErrMaxTokensExceeded
	return errors.As(err, &invalid) || errors.As(err, &maxTok)
}

// normalize trims fields, drops entries missing a term or definition and
// caps the result at count.
func normalize(words []vocab.Entry, count int) []vocab.Entry {
	out := make([]vocab.Entry, 0, min(len(words), count))
	for _, w := range words {
		w.Term = strings.TrimSpace(w.Term)
		w.Definition = strings.TrimSpace(w.Definition)
		w.Example = strings.TrimSpace(w.Example)
		w.PartOfSpeech = strings.ToLower(strings.TrimSpace(w.PartOfSpeech))
		w.Pronunciation = strings.TrimSpace(w.Pronunciation)

		if w.Term == "" || w.Definition == "" {
			continue
		}
		out = append(out, w)
		if len(out) == count {
			break
		}
	}
	return out
}
