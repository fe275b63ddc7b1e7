package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

const wordList = `{"words":[{"term":"ticket","definition":"표","example":"","part_of_speech":"noun","pronunciation":""}]}`

// optInRetry is what a user gets with VOCABCARDS_LLM_MAX_ATTEMPTS=3,
// with waits shortened for tests.
func optInRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func unavailable() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
}

func TestRetry_DefaultIsSingleAttempt(t *testing.T) {
	mock := NewMockProvider(unavailable(), MockResponse{Content: json.RawMessage(wordList)})
	p := WithRetry(mock, DefaultConfig().Retry)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected the first failure to surface")
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_DefaultSpeechIsSingleAttempt(t *testing.T) {
	synth := NewMockSynthesizer(MockSpeech{Err: &ErrRateLimit{Err: errors.New("429")}})
	s := WithSpeechRetry(synth, DefaultConfig().Retry)

	if _, err := s.Synthesize(context.Background(), SpeechRequest{Text: "ticket"}); err == nil {
		t.Fatal("expected rate limit error")
	}
	if synth.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", synth.CallCount())
	}
}

func TestRetry_OptIn(t *testing.T) {
	tests := []struct {
		name      string
		responses []MockResponse
		wantErr   bool
		wantCalls int
	}{
		{
			name:      "first attempt succeeds",
			responses: []MockResponse{{Content: json.RawMessage(wordList)}},
			wantCalls: 1,
		},
		{
			name:      "transient then success",
			responses: []MockResponse{unavailable(), {Content: json.RawMessage(wordList)}},
			wantCalls: 2,
		},
		{
			name:      "all attempts fail",
			responses: []MockResponse{unavailable(), unavailable(), unavailable()},
			wantErr:   true,
			wantCalls: 3,
		},
		{
			name:      "truncated list not retried",
			responses: []MockResponse{{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{"words":[`)}}},
			wantErr:   true,
			wantCalls: 1,
		},
		{
			name: "invalid list retried once",
			responses: []MockResponse{
				{Err: &ErrInvalidResponse{Content: json.RawMessage(`{"words":"none"}`), Err: errors.New("schema")}},
				{Err: &ErrInvalidResponse{Content: json.RawMessage(`{"words":"none"}`), Err: errors.New("schema")}},
				{Content: json.RawMessage(wordList)},
			},
			wantErr:   true,
			wantCalls: 2,
		},
		{
			name: "rate limit waits retry-after",
			responses: []MockResponse{
				{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}},
				{Content: json.RawMessage(wordList)},
			},
			wantCalls: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			resp, err := WithRetry(mock, optInRetry()).Generate(context.Background(), Request{})
			if tt.wantErr != (err != nil) {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && string(resp.Content) != wordList {
				t.Fatalf("unexpected content: %s", resp.Content)
			}
			if mock.CallCount() != tt.wantCalls {
				t.Fatalf("expected %d calls, got %d", tt.wantCalls, mock.CallCount())
			}
		})
	}
}

func TestRetry_SpeechOptIn(t *testing.T) {
	synth := NewMockSynthesizer(
		MockSpeech{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockSpeech{Audio: []byte{1, 2}, MIMEType: "audio/wav"},
	)
	speech, err := WithSpeechRetry(synth, optInRetry()).Synthesize(context.Background(), SpeechRequest{Text: "luggage"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if speech.MIMEType != "audio/wav" || synth.CallCount() != 2 {
		t.Fatalf("got %+v after %d calls", speech, synth.CallCount())
	}
}

func TestRetry_NoSpeechNotRetried(t *testing.T) {
	synth := NewMockSynthesizer(MockSpeech{Err: &ErrNoSpeech{Provider: "gemini", Reason: "no audio"}})
	_, err := WithSpeechRetry(synth, optInRetry()).Synthesize(context.Background(), SpeechRequest{Text: "map"})
	var noSpeech *ErrNoSpeech
	if !errors.As(err, &noSpeech) {
		t.Fatalf("expected ErrNoSpeech, got %v", err)
	}
	if synth.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", synth.CallCount())
	}
}

func TestRetry_CanceledContextStopsWaiting(t *testing.T) {
	mock := NewMockProvider(unavailable(), unavailable(), MockResponse{Content: json.RawMessage(wordList)})
	cfg := optInRetry()
	cfg.InitialWait = time.Hour
	cfg.MaxWait = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WithRetry(mock, cfg).Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	if id := WithRetry(NewMockProvider(), optInRetry()).ModelID(); id != "mock" {
		t.Fatalf("expected 'mock', got %q", id)
	}
	if id := WithSpeechRetry(NewMockSynthesizer(), optInRetry()).ModelID(); id != "mock" {
		t.Fatalf("expected 'mock', got %q", id)
	}
}

func TestWait_Schedule(t *testing.T) {
	cfg := RetryConfig{MaxAttempts: 5, InitialWait: time.Second, MaxWait: 3 * time.Second, Multiplier: 2}
	down := &ErrProviderUnavailable{Err: errors.New("down")}

	for n, base := range map[int]time.Duration{1: time.Second, 2: 2 * time.Second, 3: 3 * time.Second, 9: 3 * time.Second} {
		got := wait(cfg, n, down)
		lo, hi := time.Duration(float64(base)*0.8), time.Duration(float64(base)*1.2)
		if got < lo || got > hi {
			t.Errorf("wait after try %d = %s, want within [%s, %s]", n, got, lo, hi)
		}
	}

	limited := &ErrRateLimit{RetryAfter: 42 * time.Second, Err: errors.New("429")}
	if got := wait(cfg, 1, limited); got != 42*time.Second {
		t.Errorf("Retry-After ignored: %s", got)
	}
}
