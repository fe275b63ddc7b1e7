package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// cardSchema is a small flashcard shape; the full word-list schema is
// covered in the wordsource package.
var cardSchema = &Schema{
	Name: "card",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"term":  map[string]any{"type": "string"},
			"level": map[string]any{"type": "string", "enum": []any{"beginner", "intermediate", "advanced"}},
			"tags":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"required":             []any{"term"},
		"additionalProperties": false,
	},
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"term":"ticket","level":"beginner","tags":["travel"]}`, false},
		{"optional fields omitted", `{"term":"ticket"}`, false},
		{"missing term", `{"level":"beginner"}`, true},
		{"level outside enum", `{"term":"ticket","level":"expert"}`, true},
		{"tag not a string", `{"term":"ticket","tags":[1]}`, true},
		{"unknown field", `{"term":"ticket","definition":"표"}`, true},
		{"malformed", `{term:ticket}`, true},
		{"empty", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResponse(cardSchema, json.RawMessage(tt.raw))
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var invErr *ErrInvalidResponse
			if !errors.As(err, &invErr) {
				t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
			}
			if string(invErr.Content) != tt.raw {
				t.Fatalf("content not carried: %q", invErr.Content)
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := ValidateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_SameNameDifferentSchema(t *testing.T) {
	strict := &Schema{Name: "card", Definition: map[string]any{
		"type":     "object",
		"required": []any{"term", "definition"},
	}}
	raw := json.RawMessage(`{"term":"ticket"}`)

	if err := ValidateResponse(cardSchema, raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateResponse(strict, raw); err == nil {
		t.Fatal("expected the stricter schema to reject a missing definition")
	}
}

func TestValidateResponse_BadDefinition(t *testing.T) {
	broken := &Schema{Name: "broken", Definition: map[string]any{"type": 12}}
	err := ValidateResponse(broken, json.RawMessage(`{}`))
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}
