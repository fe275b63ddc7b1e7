package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

// chatServer answers every completion call with handler and returns a
// provider pointed at it.
func chatServer(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "sk-test", Model: "gpt-mini", BaseURL: srv.URL + "/v1"})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func completion(content, finish string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"model": "gpt-4.1-mini",
			"choices": []map[string]any{{
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": finish,
			}},
			"usage": map[string]any{"prompt_tokens": 52, "completion_tokens": 31, "total_tokens": 83},
		})
	}
}

func failing(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}

func travelRequest() Request {
	return Request{
		System:    "You write vocabulary lists.",
		Messages:  []Message{{Role: RoleUser, Content: "Topic: travel"}},
		Schema:    cardSchema,
		MaxTokens: 512,
	}
}

func TestOpenAIProvider_WordList(t *testing.T) {
	var sent openai.ChatCompletionRequest
	p := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&sent)
		completion(`{"term":"passport","level":"beginner"}`, "stop")(w, r)
	})

	resp, err := p.Generate(context.Background(), travelRequest())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != `{"term":"passport","level":"beginner"}` {
		t.Errorf("content = %s", resp.Content)
	}
	if resp.Usage != (Usage{InputTokens: 52, OutputTokens: 31, TotalTokens: 83}) {
		t.Errorf("usage = %+v", resp.Usage)
	}
	if resp.Model != "gpt-4.1-mini" {
		t.Errorf("model = %q", resp.Model)
	}

	if sent.Model != "gpt-4.1-mini" {
		t.Errorf("friendly name not resolved: %q", sent.Model)
	}
	if len(sent.Messages) != 2 || sent.Messages[0].Role != openai.ChatMessageRoleSystem {
		t.Errorf("system prompt not sent first: %+v", sent.Messages)
	}
	if sent.ResponseFormat == nil || sent.ResponseFormat.JSONSchema == nil ||
		sent.ResponseFormat.JSONSchema.Name != cardSchema.Name || !sent.ResponseFormat.JSONSchema.Strict {
		t.Errorf("strict schema format missing: %+v", sent.ResponseFormat)
	}
}

func TestOpenAIProvider_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		check   func(error) bool
	}{
		{
			name:    "rate limited",
			handler: failing(http.StatusTooManyRequests, `{"error":{"message":"slow down","type":"tokens"}}`),
			check:   func(err error) bool { var e *ErrRateLimit; return errors.As(err, &e) },
		},
		{
			name:    "rate limited plain text",
			handler: failing(http.StatusTooManyRequests, "too many requests"),
			check:   func(err error) bool { var e *ErrRateLimit; return errors.As(err, &e) },
		},
		{
			name:    "server error",
			handler: failing(http.StatusBadGateway, `{"error":{"message":"upstream","type":"server_error"}}`),
			check:   func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) },
		},
		{
			name:    "bad key",
			handler: failing(http.StatusUnauthorized, `{"error":{"message":"invalid key","type":"auth"}}`),
			check:   func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) },
		},
		{
			name:    "truncated",
			handler: completion(`{"term":"lugg`, "length"),
			check: func(err error) bool {
				var e *ErrMaxTokensExceeded
				return errors.As(err, &e) && string(e.Content) == `{"term":"lugg`
			},
		},
		{
			name:    "off schema",
			handler: completion(`{"term":"visa","level":"fluent"}`, "stop"),
			check:   func(err error) bool { var e *ErrInvalidResponse; return errors.As(err, &e) },
		},
		{
			name: "no choices",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"model":"gpt-4.1-mini","choices":[]}`))
			},
			check: func(err error) bool { var e *ErrInvalidResponse; return errors.As(err, &e) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := chatServer(t, tt.handler).Generate(context.Background(), travelRequest())
			if !tt.check(err) {
				t.Fatalf("unexpected error %T: %v", err, err)
			}
		})
	}
}

func TestNewOpenAIProvider(t *testing.T) {
	if _, err := NewOpenAIProvider(OpenAIConfig{Model: "gpt-4o"}); err == nil {
		t.Error("expected an error without an API key")
	}

	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "sk-test", Model: "gpt-4.1-nano"})
	if err != nil {
		t.Fatal(err)
	}
	if p.ModelID() != "gpt-4.1-nano" {
		t.Errorf("unknown model should pass through, got %q", p.ModelID())
	}
}

func TestChatRequest_NoSchema(t *testing.T) {
	p := &OpenAIProvider{model: "gpt-4o"}
	req, err := p.chatRequest(Request{Messages: []Message{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
	}})
	if err != nil {
		t.Fatal(err)
	}
	if req.ResponseFormat != nil {
		t.Errorf("response format set without schema")
	}
	var roles []string
	for _, m := range req.Messages {
		roles = append(roles, m.Role)
	}
	if got := strings.Join(roles, ","); got != "user,assistant" {
		t.Errorf("roles = %s", got)
	}
}
