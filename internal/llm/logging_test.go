package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/abhisek/vocabcards/internal/store"
)

// recordingRepo captures LLM events; other EventRepo methods are unused.
type recordingRepo struct {
	store.EventRepo
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, data)
	return r.err
}

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"words":[]}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 34},
	})
	p := WithLogging(mock, "gemini", repo)

	ctx := WithPurpose(context.Background(), "word-gen")
	_, err := p.Generate(ctx, Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "travel words"}},
		Schema:   &Schema{Name: "word-list", Definition: map[string]any{"type": "object"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Provider != "gemini" || e.Model != "mock" || e.Purpose != "word-gen" || e.Kind != "text" {
		t.Fatalf("unexpected event header: %+v", e)
	}
	if !e.Success || e.InputTokens != 12 || e.OutputTokens != 34 {
		t.Fatalf("unexpected usage: %+v", e)
	}
	for _, want := range []string{"[system]\nsys", "[user]\ntravel words", "[schema: word-list]"} {
		if !strings.Contains(e.RequestBody, want) {
			t.Errorf("request body missing %q:\n%s", want, e.RequestBody)
		}
	}
	if e.ResponseBody != `{"words":[]}` {
		t.Fatalf("unexpected response body %q", e.ResponseBody)
	}
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	repo := &recordingRepo{}
	p := WithLogging(NewMockProvider(), "openai", repo)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(repo.events) != 1 || repo.events[0].Success || repo.events[0].ErrorMessage == "" {
		t.Fatalf("expected failed event, got %+v", repo.events)
	}
	if repo.events[0].Purpose != "unknown" {
		t.Fatalf("expected default purpose, got %q", repo.events[0].Purpose)
	}
}

func TestLoggingProvider_RepoErrorDoesNotFailRequest(t *testing.T) {
	repo := &recordingRepo{err: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, "gemini", repo)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("logging failure leaked into request: %v", err)
	}
}

func TestWithLogging_NilRepo(t *testing.T) {
	mock := NewMockProvider()
	if p := WithLogging(mock, "gemini", nil); p != Provider(mock) {
		t.Fatal("expected the inner provider when repo is nil")
	}
}

func TestLoggingSynthesizer(t *testing.T) {
	repo := &recordingRepo{}
	m := NewMockSynthesizer(MockSpeech{Audio: []byte("wavdata"), MIMEType: "audio/wav"})
	s := WithSpeechLogging(m, "openai", repo)

	ctx := WithPurpose(context.Background(), "pronounce")
	if _, err := s.Synthesize(ctx, SpeechRequest{Text: "passport"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Kind != "speech" || e.Purpose != "pronounce" || !e.Success {
		t.Fatalf("unexpected event: %+v", e)
	}
	if !strings.Contains(e.RequestBody, "passport") {
		t.Fatalf("request body missing text: %q", e.RequestBody)
	}
	if e.ResponseBody != "[audio audio/wav, 7 bytes]" {
		t.Fatalf("unexpected response body %q", e.ResponseBody)
	}
}
