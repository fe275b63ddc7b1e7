package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abhisek/vocabcards/internal/store"
)

// LoggingProvider appends one LLM request event per Generate call.
type LoggingProvider struct {
	inner Provider
	log   eventLog
}

// WithLogging records p's calls under the backend name provider, e.g.
// "gemini". A nil repo returns p unchanged.
func WithLogging(p Provider, provider string, repo store.EventRepo) Provider {
	if repo == nil {
		return p
	}
	return &LoggingProvider{inner: p, log: eventLog{repo: repo, provider: provider}}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ev := l.log.begin(ctx, l.inner.ModelID(), "text", serializeRequest(req))
	resp, err := l.inner.Generate(ctx, req)
	if resp != nil {
		ev.InputTokens, ev.OutputTokens = resp.Usage.InputTokens, resp.Usage.OutputTokens
		ev.ResponseBody = string(resp.Content)
		if resp.Model != "" {
			ev.Model = resp.Model
		}
	}
	l.log.finish(ctx, ev, err)
	return resp, err
}

func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }

// LoggingSynthesizer is LoggingProvider for speech. Audio is not stored,
// only its type and size.
type LoggingSynthesizer struct {
	inner Synthesizer
	log   eventLog
}

func WithSpeechLogging(s Synthesizer, provider string, repo store.EventRepo) Synthesizer {
	if repo == nil {
		return s
	}
	return &LoggingSynthesizer{inner: s, log: eventLog{repo: repo, provider: provider}}
}

func (l *LoggingSynthesizer) Synthesize(ctx context.Context, req SpeechRequest) (*Speech, error) {
	ev := l.log.begin(ctx, l.inner.ModelID(), "speech", fmt.Sprintf("[speak voice=%q]\n%s", req.Voice, req.Text))
	speech, err := l.inner.Synthesize(ctx, req)
	if speech != nil {
		ev.ResponseBody = fmt.Sprintf("[audio %s, %d bytes]", speech.MIMEType, len(speech.Audio))
	}
	l.log.finish(ctx, ev, err)
	return speech, err
}

func (l *LoggingSynthesizer) ModelID() string { return l.inner.ModelID() }

type eventLog struct {
	repo     store.EventRepo
	provider string
}

type pendingEvent struct {
	store.LLMRequestEventData
	start time.Time
}

func (e eventLog) begin(ctx context.Context, model, kind, request string) *pendingEvent {
	return &pendingEvent{
		LLMRequestEventData: store.LLMRequestEventData{
			Provider:    e.provider,
			Model:       model,
			Purpose:     PurposeFrom(ctx),
			Kind:        kind,
			RequestBody: request,
		},
		start: time.Now(),
	}
}

// finish stores ev. Logging failures are reported on stderr and never
// fail the call; a canceled call is still logged.
func (e eventLog) finish(ctx context.Context, ev *pendingEvent, err error) {
	ev.LatencyMs = time.Since(ev.start).Milliseconds()
	ev.Success = err == nil
	if err != nil {
		ev.ErrorMessage = err.Error()
	}
	if err := e.repo.AppendLLMRequest(context.WithoutCancel(ctx), ev.LLMRequestEventData); err != nil {
		fmt.Fprintf(os.Stderr, "vocabcards: event log: %v\n", err)
	}
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n", m.Role)
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n", req.Schema.Name)
			b.Write(def)
			b.WriteString("\n")
		}
	}

	return b.String()
}

type purposeKey struct{}

// WithPurpose labels every LLM or speech call made with ctx, so the
// event log can tell word generation from pronunciation.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok && v != "" {
		return v
	}
	return "unknown"
}
