package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

const mockModel = "mock"

// queue hands out canned results in order and records every request.
type queue[Req, Res any] struct {
	mu      sync.Mutex
	pending []Res
	calls   *[]Req
}

func (q *queue[Req, Res]) next(req Req) (Res, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	*q.calls = append(*q.calls, req)
	var r Res
	if len(q.pending) == 0 {
		return r, false
	}
	r, q.pending = q.pending[0], q.pending[1:]
	return r, true
}

func (q *queue[Req, Res]) push(r Res) {
	q.mu.Lock()
	q.pending = append(q.pending, r)
	q.mu.Unlock()
}

func (q *queue[Req, Res]) count() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(*q.calls)
}

// MockResponse is one scripted Generate result. A non-nil Err wins.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays MockResponses in order. Once they run out every
// call fails with ErrProviderUnavailable. Calls records each request.
type MockProvider struct {
	Calls []Request
	q     queue[Request, MockResponse]
}

func NewMockProvider(responses ...MockResponse) *MockProvider {
	m := &MockProvider{}
	m.q = queue[Request, MockResponse]{pending: responses, calls: &m.Calls}
	return m
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	r, ok := m.q.next(req)
	switch {
	case !ok:
		return nil, &ErrProviderUnavailable{Err: errors.New("mock script exhausted")}
	case r.Err != nil:
		return nil, r.Err
	}
	return &Response{Content: r.Content, Usage: r.Usage, Model: mockModel}, nil
}

func (m *MockProvider) ModelID() string { return mockModel }

// AddResponse queues another result.
func (m *MockProvider) AddResponse(r MockResponse) { m.q.push(r) }

func (m *MockProvider) CallCount() int { return m.q.count() }

// MockSpeech is one scripted Synthesize result.
type MockSpeech struct {
	Audio    []byte
	MIMEType string
	Err      error
}

// MockSynthesizer replays MockSpeech results in order, then answers with
// a short silent PCM clip.
type MockSynthesizer struct {
	Calls []SpeechRequest
	q     queue[SpeechRequest, MockSpeech]
}

func NewMockSynthesizer(results ...MockSpeech) *MockSynthesizer {
	m := &MockSynthesizer{}
	m.q = queue[SpeechRequest, MockSpeech]{pending: results, calls: &m.Calls}
	return m
}

func (m *MockSynthesizer) Synthesize(_ context.Context, req SpeechRequest) (*Speech, error) {
	r, ok := m.q.next(req)
	switch {
	case !ok:
		return &Speech{Audio: make([]byte, 480), MIMEType: pcmMIMEType, Model: mockModel}, nil
	case r.Err != nil:
		return nil, r.Err
	}
	return &Speech{Audio: r.Audio, MIMEType: r.MIMEType, Model: mockModel}, nil
}

func (m *MockSynthesizer) ModelID() string { return mockModel }

func (m *MockSynthesizer) CallCount() int { return m.q.count() }
