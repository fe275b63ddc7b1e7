package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_QueueOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"term":"ticket"}`), Usage: Usage{InputTokens: 12, OutputTokens: 4, TotalTokens: 16}},
		MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}},
	)
	mock.AddResponse(MockResponse{Content: json.RawMessage(`{"term":"luggage"}`)})

	first, err := mock.Generate(context.Background(), Request{System: "coach", Messages: []Message{{Role: RoleUser, Content: "travel"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(first.Content) != `{"term":"ticket"}` || first.Usage.TotalTokens != 16 || first.Model != "mock" {
		t.Fatalf("unexpected first response: %+v", first)
	}

	var rl *ErrRateLimit
	if _, err := mock.Generate(context.Background(), Request{}); !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %v", err)
	}

	third, err := mock.Generate(context.Background(), Request{})
	if err != nil || string(third.Content) != `{"term":"luggage"}` {
		t.Fatalf("expected appended response, got %v / %v", third, err)
	}

	var unavail *ErrProviderUnavailable
	if _, err := mock.Generate(context.Background(), Request{}); !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable from an empty queue, got %v", err)
	}

	if mock.CallCount() != 4 || mock.Calls[0].System != "coach" || mock.Calls[0].Messages[0].Content != "travel" {
		t.Fatalf("calls not recorded: %+v", mock.Calls)
	}
	if mock.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", mock.ModelID())
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}
	if p := PurposeFrom(WithPurpose(ctx, "")); p != "unknown" {
		t.Fatalf("expected empty label to read as 'unknown', got %q", p)
	}

	speech := WithPurpose(ctx, "pronounce")
	words := WithPurpose(speech, "word-gen")
	if PurposeFrom(speech) != "pronounce" || PurposeFrom(words) != "word-gen" {
		t.Fatalf("labels mixed up: %q %q", PurposeFrom(speech), PurposeFrom(words))
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"openrouter without key", Config{Provider: "openrouter"}, true},
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "g-test"}}, false},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "unknown"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
