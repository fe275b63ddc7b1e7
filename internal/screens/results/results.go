// Package results shows the score and per-question review of a finished quiz.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/vocabcards/internal/quiz"
	"github.com/abhisek/vocabcards/internal/router"
	"github.com/abhisek/vocabcards/internal/screen"
	"github.com/abhisek/vocabcards/internal/ui/components"
	"github.com/abhisek/vocabcards/internal/ui/layout"
	"github.com/abhisek/vocabcards/internal/ui/theme"
	"github.com/abhisek/vocabcards/internal/vocab"
)

// Summary is the outcome of one quiz run.
type Summary struct {
	Topic      vocab.Topic
	Level      vocab.Level
	Score      int
	Total      int
	Percentage int
	Answers    []qz.AnswerRecord
}

// SummaryOf captures the outcome of a finished session.
func SummaryOf(s *qz.Session, topic vocab.Topic, level vocab.Level) Summary {
	return Summary{
		Topic:      topic,
		Level:      level,
		Score:      s.Score(),
		Total:      s.Total(),
		Percentage: s.Percentage(),
		Answers:    s.Results(),
	}
}

// ResultsScreen displays a quiz summary.
type ResultsScreen struct {
	summary Summary
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a new ResultsScreen.
func New(summary Summary) *ResultsScreen {
	return &ResultsScreen{summary: summary}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to words"},
		{Key: "Esc", Description: "Back to words"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, router.Home
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	sum := s.summary
	cw := components.ContentWidth(width)
	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center(theme.Headline.Render(headline(sum.Percentage))))
	b.WriteString("\n\n")

	b.WriteString(center(theme.Body.Render(fmt.Sprintf("Score: %d / %d        %d%%", sum.Score, sum.Total, sum.Percentage))))
	b.WriteString("\n")
	if sum.Topic != "" {
		b.WriteString(center(theme.Muted.Render(
			fmt.Sprintf("%s · %s", sum.Topic.DisplayName(), sum.Level.DisplayName()))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw))
	b.WriteString(center(theme.Muted.Render("Review")))
	b.WriteString("\n")
	b.WriteString(center(divider))
	b.WriteString("\n")

	for i, a := range sum.Answers {
		b.WriteString(center(reviewLine(i, a, cw)))
		b.WriteString("\n")
	}

	return b.String()
}

// reviewLine renders one answer, adding the correct definition when the
// learner missed it.
func reviewLine(i int, a qz.AnswerRecord, cw int) string {
	mark := theme.Correct.Render("✓")
	if !a.Correct {
		mark = theme.Incorrect.Render("✗")
	}
	term := theme.Term.Render(a.Term)
	line := fmt.Sprintf("%2d. %s %s", i+1, mark, term)
	if !a.Correct {
		answer := components.Truncate(a.CorrectAnswer, cw-8)
		line += "\n      " + theme.Muted.Render(answer)
	}
	return lipgloss.NewStyle().Width(cw).Render(line)
}

func headline(pct int) string {
	switch {
	case pct == 100:
		return "Perfect score!"
	case pct >= 70:
		return "Well done!"
	case pct >= 40:
		return "Good effort!"
	default:
		return "Keep practicing!"
	}
}
