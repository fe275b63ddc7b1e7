package llm

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := map[string]string{
		"gemini-flash":      "gemini-2.0-flash",
		"gemini-flash-lite": "gemini-2.0-flash-lite",
		"gemini-2.5-flash":  "gemini-2.5-flash",
	}
	for in, want := range tests {
		if got := resolveModel(in, geminiModels); got != want {
			t.Errorf("resolveModel(%q) = %q, want %q", in, got, want)
		}
	}
	if got := resolveModel("gemini-tts", geminiSpeechModels); got != "gemini-2.5-flash-preview-tts" {
		t.Errorf("unexpected speech model %q", got)
	}
}

func TestBuildGeminiSchema_FlashcardList(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"words": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"term":  map[string]any{"type": "string", "description": "English word"},
						"level": map[string]any{"type": "string", "enum": []any{"beginner", "advanced"}},
						"rank":  map[string]any{"type": "integer"},
					},
					"required":             []any{"term"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"words"},
		"additionalProperties": false,
	}

	schema := buildGeminiSchema(def)

	if schema.Type != genai.TypeObject || len(schema.Required) != 1 {
		t.Fatalf("unexpected root: %+v", schema)
	}
	words := schema.Properties["words"]
	if words == nil || words.Type != genai.TypeArray || words.Items == nil {
		t.Fatalf("expected words array, got %+v", words)
	}
	item := words.Items
	if item.Type != genai.TypeObject || len(item.Properties) != 3 {
		t.Fatalf("unexpected item: %+v", item)
	}
	if item.Properties["term"].Description != "English word" {
		t.Fatalf("description lost: %+v", item.Properties["term"])
	}
	if item.Properties["rank"].Type != genai.TypeInteger {
		t.Fatalf("expected INTEGER rank, got %s", item.Properties["rank"].Type)
	}
	if len(item.Properties["level"].Enum) != 2 {
		t.Fatalf("expected 2 enum values, got %v", item.Properties["level"].Enum)
	}
}

func TestGeminiTruncated(t *testing.T) {
	cut := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonMaxTokens}}}
	done := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonStop}}}

	if !geminiTruncated(cut) {
		t.Fatal("expected MAX_TOKENS to count as truncated")
	}
	if geminiTruncated(done) || geminiTruncated(&genai.GenerateContentResponse{}) {
		t.Fatal("expected STOP and empty responses to be complete")
	}
}

func TestMapGeminiError(t *testing.T) {
	limited := fmt.Errorf("generate: %w", genai.APIError{Code: 429, Status: "RESOURCE_EXHAUSTED"})
	var rl *ErrRateLimit
	if !errors.As(mapGeminiError(limited), &rl) {
		t.Fatal("expected 429 to map to ErrRateLimit")
	}

	down := genai.APIError{Code: 503, Status: "UNAVAILABLE"}
	var unavail *ErrProviderUnavailable
	if !errors.As(mapGeminiError(down), &unavail) {
		t.Fatal("expected 503 to map to ErrProviderUnavailable")
	}
	if !errors.As(mapGeminiError(errors.New("dial tcp: no route")), &unavail) {
		t.Fatal("expected network errors to map to ErrProviderUnavailable")
	}
}
