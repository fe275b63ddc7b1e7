package components

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vocabcards/internal/ui/theme"
)

// Spinner is a themed loading indicator with a label.
type Spinner struct {
	Label string
	model spinner.Model
}

// NewSpinner creates a spinner showing label next to the animation.
func NewSpinner(label string) Spinner {
	return Spinner{
		Label: label,
		model: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(theme.Pronunciation),
		),
	}
}

// Tick starts the animation.
func (s Spinner) Tick() tea.Cmd {
	return s.model.Tick
}

// Update advances the animation on its own tick messages.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.model, cmd = s.model.Update(msg)
	return s, cmd
}

// View renders the spinner frame and label.
func (s Spinner) View() string {
	return s.model.View() + " " + theme.Muted.Render(s.Label)
}
