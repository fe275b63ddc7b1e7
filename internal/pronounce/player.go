// Package pronounce plays spoken audio for vocabulary terms.
package pronounce

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/abhisek/vocabcards/internal/llm"
)

// Purpose labels speech calls in the event log.
const Purpose = "pronounce"

// Runner executes an external command and waits for it to finish.
type Runner func(ctx context.Context, name string, args ...string) error

// Player synthesizes speech and plays it through an external command.
type Player struct {
	synth   llm.Synthesizer
	command []string
	run     Runner
	tempDir string
}

// Option configures a Player.
type Option func(*Player)

// WithCommand sets the player command line, e.g. "mpv --really-quiet".
// The audio file path is appended as the last argument.
func WithCommand(cmd string) Option {
	return func(p *Player) {
		if fields := strings.Fields(cmd); len(fields) > 0 {
			p.command = fields
		}
	}
}

// WithRunner replaces command execution, mainly for tests.
func WithRunner(r Runner) Option {
	return func(p *Player) { p.run = r }
}

// WithTempDir sets where audio files are written before playback.
func WithTempDir(dir string) Option {
	return func(p *Player) { p.tempDir = dir }
}

// NewPlayer creates a Player. A nil synth yields a player whose Play
// always fails with llm.ErrNoSpeech.
func NewPlayer(synth llm.Synthesizer, opts ...Option) *Player {
	p := &Player{
		synth:   synth,
		command: DefaultCommand(),
		run:     execRunner,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// DefaultCommand returns the platform audio player.
func DefaultCommand() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"afplay"}
	default:
		return []string{"aplay", "-q"}
	}
}

// Play speaks text and blocks until playback finishes.
func (p *Player) Play(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return errors.New("nothing to pronounce")
	}
	if p.synth == nil {
		return &llm.ErrNoSpeech{Reason: "speech is not configured"}
	}

	speech, err := p.synth.Synthesize(llm.WithPurpose(ctx, Purpose), llm.SpeechRequest{Text: text})
	if err != nil {
		return fmt.Errorf("synthesize %q: %w", text, err)
	}
	if len(speech.Audio) == 0 {
		return &llm.ErrNoSpeech{Provider: speech.Model, Reason: "empty audio"}
	}

	audio, ext := toPlayable(speech.Audio, speech.MIMEType)

	f, err := os.CreateTemp(p.tempDir, "vocabcards-*"+ext)
	if err != nil {
		return fmt.Errorf("create audio file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.Write(audio); err != nil {
		f.Close()
		return fmt.Errorf("write audio file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close audio file: %w", err)
	}

	args := append(append([]string{}, p.command[1:]...), path)
	if err := p.run(ctx, p.command[0], args...); err != nil {
		return fmt.Errorf("play audio with %s: %w", p.command[0], err)
	}
	return nil
}

func execRunner(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil && len(out) > 0 {
		return fmt.Errorf("%w: %s", err, strings.TrimSpace(string(out)))
	}
	return err
}
