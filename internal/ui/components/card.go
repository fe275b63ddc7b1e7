package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/abhisek/vocabcards/internal/ui/theme"
	"github.com/abhisek/vocabcards/internal/vocab"
)

// ContentWidth returns the inner width used for cards and panels.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// CardState holds the per-card UI flags of a word card.
type CardState struct {
	Expanded bool
	Playing  bool
	Focused  bool
}

// Truncate shortens s to fit width terminal cells, marking the cut with
// an ellipsis. It measures East Asian wide characters correctly.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// WordCard renders one vocabulary entry at content width cw.
//
// A collapsed card shows the term, part of speech and a one-line
// definition. An expanded card adds the full definition, the example
// and the pronunciation hint when present.
func WordCard(e vocab.Entry, st CardState, cw int) string {
	inner := cw - 6
	if inner < 10 {
		inner = 10
	}

	termStyle, border := theme.Term, theme.Border
	if st.Focused {
		termStyle, border = theme.TermFocused, theme.Primary
	}

	head := termStyle.Render(e.Term)
	if e.PartOfSpeech != "" {
		head += " " + theme.PartOfSpeech.Render(e.PartOfSpeech)
	}
	if st.Playing {
		head += " " + theme.Playing.Render("♪")
	}

	var b strings.Builder
	b.WriteString(head)
	b.WriteString("\n")

	if !st.Expanded {
		b.WriteString(theme.Body.Render(Truncate(e.Definition, inner)))
	} else {
		b.WriteString(theme.Body.Width(inner).Render(e.Definition))
		if e.Example != "" {
			b.WriteString("\n\n")
			b.WriteString(theme.Hint.Width(inner).Render("“" + e.Example + "”"))
		}
		if e.HasPronunciation() {
			b.WriteString("\n")
			b.WriteString(theme.Pronunciation.Render(e.Pronunciation))
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cw-2).
		Padding(0, 1).
		Render(b.String())
}
