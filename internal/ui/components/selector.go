package components

import "github.com/abhisek/vocabcards/internal/ui/theme"

// Selector cycles through a fixed list of labels.
type Selector struct {
	Label   string
	Options []string
	Index   int
}

// NewSelector creates a selector starting at index.
func NewSelector(label string, options []string, index int) Selector {
	if index < 0 || index >= len(options) {
		index = 0
	}
	return Selector{Label: label, Options: options, Index: index}
}

// Next moves to the following option, wrapping around.
func (s *Selector) Next() {
	if len(s.Options) == 0 {
		return
	}
	s.Index = (s.Index + 1) % len(s.Options)
}

// Prev moves to the preceding option, wrapping around.
func (s *Selector) Prev() {
	if len(s.Options) == 0 {
		return
	}
	s.Index = (s.Index - 1 + len(s.Options)) % len(s.Options)
}

// View renders the label and the current option between arrows.
func (s Selector) View(keys string) string {
	current := ""
	if len(s.Options) > 0 {
		current = s.Options[s.Index]
	}
	return theme.Muted.Render(s.Label+" ◂ ") +
		theme.Selected.Render(current) +
		theme.Muted.Render(" ▸") +
		theme.Hint.Render("  "+keys)
}
