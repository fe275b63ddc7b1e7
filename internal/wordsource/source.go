// Package wordsource produces vocabulary lists for a topic and level.
package wordsource

import (
	"context"

	"github.com/abhisek/vocabcards/internal/vocab"
)

// Source returns an ordered list of up to vocab.MaxWords entries.
//
// A malformed or empty upstream answer yields an empty list and a nil
// error. Errors are reserved for an unreachable or unconfigured provider.
type Source interface {
	Words(ctx context.Context, topic vocab.Topic, level vocab.Level) ([]vocab.Entry, error)
}

// Generator is implemented by sources that accept a full Request, for
// callers that want to steer a regenerated list away from known terms.
type Generator interface {
	Generate(ctx context.Context, req Request) ([]vocab.Entry, error)
}

// Request describes one generation call.
type Request struct {
	Topic vocab.Topic
	Level vocab.Level

	// Count is the number of entries wanted. Zero means the configured
	// default; values above vocab.MaxWords are capped.
	Count int

	// Exclude lists terms the caller already has, so a regenerated list
	// brings new words.
	Exclude []string
}
