package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

func newTestOpenAISynthesizer(t *testing.T, handler http.HandlerFunc) *OpenAISynthesizer {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("test-key")
	config.BaseURL = server.URL + "/v1"

	return &OpenAISynthesizer{
		client: openai.NewClientWithConfig(config),
		model:  "tts-1",
		voice:  "alloy",
	}
}

func TestOpenAISynthesizer_HappyPath(t *testing.T) {
	var got map[string]any
	handler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/audio/speech" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.Header().Set("Content-Type", "audio/wav")
		w.Write([]byte("RIFFfake"))
	}

	s := newTestOpenAISynthesizer(t, handler)
	speech, err := s.Synthesize(context.Background(), SpeechRequest{Text: "ticket", Voice: "nova"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(speech.Audio) != "RIFFfake" {
		t.Fatalf("unexpected audio %q", speech.Audio)
	}
	if speech.MIMEType != "audio/wav" {
		t.Fatalf("expected audio/wav, got %q", speech.MIMEType)
	}
	if got["input"] != "ticket" || got["voice"] != "nova" || got["response_format"] != "wav" {
		t.Fatalf("unexpected request body: %v", got)
	}
}

func TestOpenAISynthesizer_EmptyBody(t *testing.T) {
	s := newTestOpenAISynthesizer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/wav")
	})

	_, err := s.Synthesize(context.Background(), SpeechRequest{Text: "ticket"})
	var noSpeech *ErrNoSpeech
	if !errors.As(err, &noSpeech) {
		t.Fatalf("expected ErrNoSpeech, got: %T (%v)", err, err)
	}
}

func TestOpenAISynthesizer_ServerError(t *testing.T) {
	s := newTestOpenAISynthesizer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"type": "server_error", "message": "overloaded"},
		})
	})

	_, err := s.Synthesize(context.Background(), SpeechRequest{Text: "ticket"})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T (%v)", err, err)
	}
}

func TestFirstGeminiAudio(t *testing.T) {
	if firstGeminiAudio(nil) != nil {
		t.Fatal("expected nil for nil response")
	}

	textOnly := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: "hello"}}},
		}},
	}
	if firstGeminiAudio(textOnly) != nil {
		t.Fatal("expected nil when no inline data")
	}

	withAudio := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{
				{Text: "ignored"},
				{InlineData: &genai.Blob{Data: []byte{1, 2, 3, 4}, MIMEType: pcmMIMEType}},
			}},
		}},
	}
	blob := firstGeminiAudio(withAudio)
	if blob == nil || len(blob.Data) != 4 {
		t.Fatalf("expected 4 audio bytes, got %+v", blob)
	}
}

func TestGeminiSpeechModelMapping(t *testing.T) {
	if got := resolveModel("gemini-tts", geminiSpeechModels); got != "gemini-2.5-flash-preview-tts" {
		t.Fatalf("unexpected model %q", got)
	}
	if got := resolveModel("custom-tts", geminiSpeechModels); got != "custom-tts" {
		t.Fatalf("expected pass-through, got %q", got)
	}
}

func TestMockSynthesizer(t *testing.T) {
	m := NewMockSynthesizer(
		MockSpeech{Audio: []byte("abc"), MIMEType: "audio/wav"},
		MockSpeech{Err: &ErrNoSpeech{Provider: "mock", Reason: "test"}},
	)

	s, err := m.Synthesize(context.Background(), SpeechRequest{Text: "one"})
	if err != nil || string(s.Audio) != "abc" {
		t.Fatalf("unexpected result: %v %v", s, err)
	}
	if _, err := m.Synthesize(context.Background(), SpeechRequest{Text: "two"}); err == nil {
		t.Fatal("expected canned error")
	}
	s, err = m.Synthesize(context.Background(), SpeechRequest{Text: "three"})
	if err != nil || len(s.Audio) == 0 {
		t.Fatalf("expected default audio, got %v %v", s, err)
	}
	if m.CallCount() != 3 || m.Calls[2].Text != "three" {
		t.Fatalf("unexpected calls: %+v", m.Calls)
	}
}
