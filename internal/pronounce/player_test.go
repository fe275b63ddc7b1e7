package pronounce

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vocabcards/internal/llm"
)

type runCall struct {
	name    string
	args    []string
	content []byte
}

func recordingRunner(calls *[]runCall, err error) Runner {
	return func(_ context.Context, name string, args ...string) error {
		c := runCall{name: name, args: args}
		if len(args) > 0 {
			c.content, _ = os.ReadFile(args[len(args)-1])
		}
		*calls = append(*calls, c)
		return err
	}
}

func TestPlay_RunsCommandWithTempFile(t *testing.T) {
	var calls []runCall
	synth := llm.NewMockSynthesizer(llm.MockSpeech{Audio: []byte{0, 0, 1, 1}, MIMEType: "audio/L16;codec=pcm;rate=24000"})
	dir := t.TempDir()
	p := NewPlayer(synth,
		WithCommand("mpv --really-quiet"),
		WithRunner(recordingRunner(&calls, nil)),
		WithTempDir(dir),
	)

	require.NoError(t, p.Play(context.Background(), " passport "))

	require.Len(t, calls, 1)
	assert.Equal(t, "mpv", calls[0].name)
	require.Len(t, calls[0].args, 2)
	assert.Equal(t, "--really-quiet", calls[0].args[0])
	assert.Regexp(t, `vocabcards-.*\.wav$`, calls[0].args[1])
	assert.Len(t, calls[0].content, wavHeaderSize+4, "PCM wrapped before playback")

	_, err := os.Stat(calls[0].args[1])
	assert.True(t, os.IsNotExist(err), "temp file removed after playback")

	require.Equal(t, 1, synth.CallCount())
	assert.Equal(t, "passport", synth.Calls[0].Text)
}

func TestPlay_SynthesisFailure(t *testing.T) {
	var calls []runCall
	synth := llm.NewMockSynthesizer(llm.MockSpeech{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	p := NewPlayer(synth, WithRunner(recordingRunner(&calls, nil)), WithTempDir(t.TempDir()))

	err := p.Play(context.Background(), "ticket")
	require.Error(t, err)
	var unavail *llm.ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)
	assert.Empty(t, calls, "player not run")
}

func TestPlay_EmptyAudio(t *testing.T) {
	synth := llm.NewMockSynthesizer(llm.MockSpeech{Audio: nil, MIMEType: "audio/wav"})
	p := NewPlayer(synth, WithRunner(recordingRunner(new([]runCall), nil)), WithTempDir(t.TempDir()))

	var noSpeech *llm.ErrNoSpeech
	assert.ErrorAs(t, p.Play(context.Background(), "ticket"), &noSpeech)
}

func TestPlay_PlayerFailure(t *testing.T) {
	var calls []runCall
	p := NewPlayer(llm.NewMockSynthesizer(),
		WithRunner(recordingRunner(&calls, errors.New("exit status 1"))),
		WithTempDir(t.TempDir()),
	)

	err := p.Play(context.Background(), "ticket")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit status 1")
	assert.Len(t, calls, 1)
}

func TestPlay_NotConfigured(t *testing.T) {
	p := NewPlayer(nil)
	var noSpeech *llm.ErrNoSpeech
	assert.ErrorAs(t, p.Play(context.Background(), "ticket"), &noSpeech)
}

func TestPlay_EmptyText(t *testing.T) {
	p := NewPlayer(llm.NewMockSynthesizer())
	assert.Error(t, p.Play(context.Background(), "   "))
}

func TestWithCommand_IgnoresBlank(t *testing.T) {
	p := NewPlayer(nil, WithCommand("  "))
	assert.Equal(t, DefaultCommand(), p.command)
}
