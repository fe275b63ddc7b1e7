package llm

import (
	"context"

	"google.golang.org/genai"
)

// geminiSpeechModels maps friendly names to Gemini TTS model IDs.
var geminiSpeechModels = map[string]string{
	"gemini-tts":     "gemini-2.5-flash-preview-tts",
	"gemini-pro-tts": "gemini-2.5-pro-preview-tts",
}

// GeminiSynthesizer implements Synthesizer using the Gemini audio
// response modality. Output is raw 24 kHz 16-bit mono PCM.
type GeminiSynthesizer struct {
	client *genai.Client
	model  string
	voice  string
}

// NewGeminiSynthesizer creates a Gemini speech synthesizer.
func NewGeminiSynthesizer(ctx context.Context, apiKey string, cfg SpeechConfig) (*GeminiSynthesizer, error) {
	client, err := newGeminiClient(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	return &GeminiSynthesizer{
		client: client,
		model:  resolveModel(cfg.GeminiModel, geminiSpeechModels),
		voice:  cfg.GeminiVoice,
	}, nil
}

func (s *GeminiSynthesizer) Synthesize(ctx context.Context, req SpeechRequest) (*Speech, error) {
	voice := s.voice
	if req.Voice != "" {
		voice = req.Voice
	}

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: voice},
			},
		},
	}

	contents := []*genai.Content{genai.NewContentFromText("Say clearly: "+req.Text, genai.RoleUser)}

	result, err := s.client.Models.GenerateContent(ctx, s.model, contents, config)
	if err != nil {
		return nil, mapGeminiError(err)
	}

	blob := firstGeminiAudio(result)
	if blob == nil {
		return nil, &ErrNoSpeech{Provider: "gemini", Reason: "response carried no audio"}
	}

	mime := blob.MIMEType
	if mime == "" {
		mime = pcmMIMEType
	}
	return &Speech{Audio: blob.Data, MIMEType: mime, Model: s.model}, nil
}

func (s *GeminiSynthesizer) ModelID() string {
	return s.model
}

// pcmMIMEType is what Gemini reports for its TTS output.
const pcmMIMEType = "audio/L16;codec=pcm;rate=24000"

func firstGeminiAudio(result *genai.GenerateContentResponse) *genai.Blob {
	if result == nil {
		return nil
	}
	for _, cand := range result.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData
			}
		}
	}
	return nil
}
