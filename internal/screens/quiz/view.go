package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocabcards/internal/ui/components"
	"github.com/abhisek/vocabcards/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	q := s.session.Current()
	if q == nil {
		return theme.Centered(theme.Hint, width).Render("\n\nNo questions.")
	}

	cw := components.ContentWidth(width)
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center(theme.Muted.Render(
		fmt.Sprintf("Question %d/%d", s.session.Index()+1, s.session.Total()))))
	b.WriteString("\n")
	done := s.session.Index()
	if s.session.Answered() {
		done++
	}
	b.WriteString(center(components.NewProgressBar(done, s.session.Total(), cw).View()))
	b.WriteString("\n\n")

	term := theme.TermFocused.Render(q.Word.Term)
	if q.Word.PartOfSpeech != "" {
		term += " " + theme.PartOfSpeech.Render(q.Word.PartOfSpeech)
	}
	b.WriteString(center(term))
	b.WriteString("\n")
	b.WriteString(center(theme.Hint.Render("Which definition matches?")))
	b.WriteString("\n\n")

	options := lipgloss.NewStyle().Width(cw).Render(s.choice.View(cw))
	b.WriteString(center(options))
	b.WriteString("\n")

	if s.session.Answered() {
		b.WriteString(center(s.feedback(cw)))
	}

	return b.String()
}

func (s *QuizScreen) feedback(cw int) string {
	next := "Press Enter or n for the next question."
	if s.session.IsLast() {
		next = "Press Enter or n to see your results."
	}
	if s.session.LastCorrect() {
		return theme.Correct.Render("Correct!") + "\n" + theme.Hint.Render(next)
	}
	q := s.session.Current()
	answer := components.Truncate(q.CorrectAnswer, cw-12)
	return theme.Incorrect.Render("Not quite.") + " " +
		theme.Body.Render("Answer: "+answer) +
		"\n" + theme.Hint.Render(next)
}

func scoreLabel(score, total int) string {
	return fmt.Sprintf("Score %d/%d", score, total)
}
