package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// messagesServer points a haiku-backed provider at handler.
func messagesServer(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("sk-ant-test"),
		option.WithBaseURL(srv.URL),
		option.WithMaxRetries(0),
	)
	return &AnthropicProvider{client: &client, model: resolveModel("claude-haiku", anthropicModels)}
}

func message(stopReason string, texts ...string) http.HandlerFunc {
	blocks := []map[string]any{{"type": "thinking", "thinking": "...", "signature": "sig"}}
	for _, text := range texts {
		blocks = append(blocks, map[string]any{"type": "text", "text": text})
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":          "msg_01",
			"type":        "message",
			"role":        "assistant",
			"content":     blocks,
			"model":       "claude-haiku-4-5-20251001",
			"stop_reason": stopReason,
			"usage":       map[string]any{"input_tokens": 64, "output_tokens": 18},
		})
	}
}

func TestAnthropicProvider_JoinsTextBlocks(t *testing.T) {
	var sent map[string]any
	p := messagesServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&sent)
		message("end_turn", `{"term":"visa",`, `"level":"intermediate"}`)(w, r)
	})

	resp, err := p.Generate(context.Background(), travelRequest())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != `{"term":"visa","level":"intermediate"}` {
		t.Errorf("content = %s", resp.Content)
	}
	if resp.Usage != (Usage{InputTokens: 64, OutputTokens: 18, TotalTokens: 82}) {
		t.Errorf("usage = %+v", resp.Usage)
	}
	if sent["model"] != "claude-haiku-4-5-20251001" {
		t.Errorf("model sent = %v", sent["model"])
	}
	if _, ok := sent["system"]; !ok {
		t.Error("system prompt not sent")
	}
}

func TestAnthropicProvider_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		check   func(error) bool
	}{
		{
			name:    "server error",
			handler: failing(http.StatusInternalServerError, `{"type":"error","error":{"type":"api_error","message":"boom"}}`),
			check:   func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) },
		},
		{
			name:    "overloaded",
			handler: failing(529, `{"type":"error","error":{"type":"overloaded_error","message":"busy"}}`),
			check:   func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) },
		},
		{
			name:    "truncated",
			handler: message("max_tokens", `{"term":"pass`),
			check: func(err error) bool {
				var e *ErrMaxTokensExceeded
				return errors.As(err, &e) && string(e.Content) == `{"term":"pass`
			},
		},
		{
			name:    "off schema",
			handler: message("end_turn", `{"definition":"여권"}`),
			check:   func(err error) bool { var e *ErrInvalidResponse; return errors.As(err, &e) },
		},
		{
			name:    "no text",
			handler: message("end_turn"),
			check:   func(err error) bool { var e *ErrInvalidResponse; return errors.As(err, &e) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := messagesServer(t, tt.handler).Generate(context.Background(), travelRequest())
			if !tt.check(err) {
				t.Fatalf("unexpected error %T: %v", err, err)
			}
		})
	}
}

func TestAnthropicProvider_RateLimitIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	p := messagesServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Retry-After", "7")
		failing(http.StatusTooManyRequests, `{"type":"error","error":{"type":"rate_limit_error","message":"slow down"}}`)(w, r)
	})

	_, err := p.Generate(context.Background(), travelRequest())
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %v", err)
	}
	if rl.RetryAfter != 7*time.Second {
		t.Errorf("RetryAfter = %s", rl.RetryAfter)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("server saw %d requests", n)
	}
}

func TestNewAnthropicProvider(t *testing.T) {
	if _, err := NewAnthropicProvider(AnthropicConfig{}); err == nil {
		t.Error("expected an error without an API key")
	}
	for name, want := range map[string]string{
		"claude-sonnet":            "claude-sonnet-4-20250514",
		"claude-haiku":             "claude-haiku-4-5-20251001",
		"claude-opus-4-1-20250805": "claude-opus-4-1-20250805",
	} {
		p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "sk-ant-test", Model: name})
		if err != nil {
			t.Fatal(err)
		}
		if p.ModelID() != want {
			t.Errorf("%s resolved to %q, want %q", name, p.ModelID(), want)
		}
	}
}

func TestParseRetryAfter(t *testing.T) {
	tests := map[string]time.Duration{
		"3":                             3 * time.Second,
		" 10 ":                          10 * time.Second,
		"":                              0,
		"-1":                            0,
		"Wed, 21 Oct 2026 07:28:00 GMT": 0,
	}
	for in, want := range tests {
		if got := parseRetryAfter(in); got != want {
			t.Errorf("parseRetryAfter(%q) = %s, want %s", in, got, want)
		}
	}
}
