package llm

import "context"

// Synthesizer turns text into spoken audio.
type Synthesizer interface {
	// Synthesize returns audio for req.Text.
	Synthesize(ctx context.Context, req SpeechRequest) (*Speech, error)

	// ModelID returns the speech model identifier.
	ModelID() string
}

// SpeechRequest describes what to speak.
type SpeechRequest struct {
	Text string

	// Voice overrides the configured voice when set.
	Voice string
}

// Speech holds synthesized audio.
type Speech struct {
	Audio []byte

	// MIMEType describes Audio, e.g. "audio/wav" or
	// "audio/L16;codec=pcm;rate=24000" for raw PCM.
	MIMEType string

	Model string
}
