// Package llm wraps the text and speech model vendors behind two small
// interfaces, Provider and Synthesizer, plus decorators for event
// logging and opt-in retries.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one structured answer per call.
type Provider interface {
	// Generate sends req and returns the answer. When req.Schema is set
	// the content has already been validated against it; a truncated
	// answer is ErrMaxTokensExceeded and a non-conforming one is
	// ErrInvalidResponse.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the vendor model identifier in use.
	ModelID() string
}

// Request is a single-turn prompt.
type Request struct {
	System      string
	Messages    []Message
	Schema      *Schema // nil for free text
	MaxTokens   int
	Temperature float64 // 0 leaves the vendor default
}

// Message is one turn of the prompt.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema the answer must match. Name is
// kebab-case, e.g. "word-list", and doubles as the vendor schema name.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is a completed answer.
type Response struct {
	Content json.RawMessage
	Usage   Usage
	// Model is the model that actually served the call, which can differ
	// from ModelID when the vendor resolves aliases.
	Model string
}

// Usage is the token count of one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
