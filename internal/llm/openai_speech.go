package llm

import (
	"context"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAISynthesizer implements Synthesizer with the OpenAI speech endpoint.
type OpenAISynthesizer struct {
	client *openai.Client
	model  string
	voice  string
}

// NewOpenAISynthesizer creates an OpenAI speech synthesizer.
func NewOpenAISynthesizer(oai OpenAIConfig, cfg SpeechConfig) (*OpenAISynthesizer, error) {
	if oai.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	config := openai.DefaultConfig(oai.APIKey)
	if oai.BaseURL != "" {
		config.BaseURL = oai.BaseURL
	}

	return &OpenAISynthesizer{
		client: openai.NewClientWithConfig(config),
		model:  cfg.OpenAIModel,
		voice:  cfg.OpenAIVoice,
	}, nil
}

func (s *OpenAISynthesizer) Synthesize(ctx context.Context, req SpeechRequest) (*Speech, error) {
	voice := s.voice
	if req.Voice != "" {
		voice = req.Voice
	}

	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(s.model),
		Input:          req.Text,
		Voice:          openai.SpeechVoice(voice),
		ResponseFormat: openai.SpeechResponseFormatWav,
	})
	if err != nil {
		return nil, mapOpenAIError(err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, &ErrProviderUnavailable{Err: fmt.Errorf("read speech body: %w", err)}
	}
	if len(audio) == 0 {
		return nil, &ErrNoSpeech{Provider: "openai", Reason: "empty audio body"}
	}

	return &Speech{Audio: audio, MIMEType: "audio/wav", Model: s.model}, nil
}

func (s *OpenAISynthesizer) ModelID() string {
	return s.model
}
