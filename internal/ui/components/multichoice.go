package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocabcards/internal/ui/theme"
)

// MultiChoice is a numbered multiple-choice selector.
//
// The component only tracks the cursor and the chosen index. Scoring is
// left to the caller, which reveals the answer with Reveal.
type MultiChoice struct {
	Options     []string
	Selected    int
	Submitted   bool
	ChosenIndex int

	revealed bool
	correct  string
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options:     options,
		ChosenIndex: -1,
	}
}

// Update handles arrow navigation, number keys and enter. A number key
// selects and submits in one step.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		if len(m.Options) > 0 {
			m.Submitted = true
			m.ChosenIndex = m.Selected
		}
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(m.Options) {
			m.Selected = idx
			m.Submitted = true
			m.ChosenIndex = idx
		}
	}

	return m, nil
}

// Chosen returns the submitted option text.
func (m MultiChoice) Chosen() (string, bool) {
	if !m.Submitted || m.ChosenIndex < 0 || m.ChosenIndex >= len(m.Options) {
		return "", false
	}
	return m.Options[m.ChosenIndex], true
}

// Reveal marks every option equal to correct as the right answer.
func (m *MultiChoice) Reveal(correct string) {
	m.revealed = true
	m.correct = correct
}

// View renders the options, wrapping long definitions to width.
func (m MultiChoice) View(width int) string {
	var b strings.Builder
	textWidth := width - 6
	if textWidth < 10 {
		textWidth = 10
	}

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		body := lipgloss.NewStyle().Width(textWidth).Render(opt)
		line := lipgloss.JoinHorizontal(lipgloss.Top, fmt.Sprintf("%s%d) ", prefix, i+1), body)

		style := theme.Body
		switch {
		case m.revealed && opt == m.correct:
			style = theme.Correct
		case m.revealed && i == m.ChosenIndex:
			style = theme.Incorrect
		case m.revealed:
			style = theme.Muted
		case i == m.Selected:
			style = theme.Selected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}
