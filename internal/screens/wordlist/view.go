package wordlist

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocabcards/internal/ui/components"
	"github.com/abhisek/vocabcards/internal/ui/theme"
)

func (s *WordListScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center(s.topics.View("←/→")))
	b.WriteString("\n")
	b.WriteString(center(s.levels.View("[ / ]")))
	b.WriteString("\n\n")

	if s.notice.Active() {
		b.WriteString(center(s.notice.View(cw - 4)))
		b.WriteString("\n\n")
	}

	used := lipgloss.Height(b.String())

	switch {
	case s.busy:
		b.WriteString(center(s.spinner.View()))
	case len(s.words) == 0:
		b.WriteString(center(s.emptyMessage()))
	default:
		// Leave room for the quiz button below the cards.
		b.WriteString(s.renderCards(width, cw, height-used-3))
		b.WriteString("\n")
		b.WriteString(center(s.quizBtn.View()))
	}

	return b.String()
}

func (s *WordListScreen) emptyMessage() string {
	msg := "No words yet. Pick a topic and level, then press g."
	if s.generated {
		msg = "No words came back for this topic. Press g to try again."
	}
	return theme.Hint.Render(msg)
}

// renderCards draws as many cards as fit in avail rows, keeping the
// focused card visible.
func (s *WordListScreen) renderCards(width, cw, avail int) string {
	rendered := make([]string, len(s.words))
	for i, w := range s.words {
		st := s.cards[i]
		st.Focused = i == s.cursor
		rendered[i] = components.WordCard(w, st, cw)
	}

	start := 0
	for {
		total := 0
		for i := start; i <= s.cursor && i < len(rendered); i++ {
			total += lipgloss.Height(rendered[i])
		}
		if total <= avail || start >= s.cursor {
			break
		}
		start++
	}

	var b strings.Builder
	rows := 0
	for i := start; i < len(rendered); i++ {
		h := lipgloss.Height(rendered[i])
		if rows+h > avail && i > s.cursor {
			break
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, rendered[i]))
		b.WriteString("\n")
		rows += h
	}
	return strings.TrimSuffix(b.String(), "\n")
}
