// Package history lists finished quizzes from the event log.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocabcards/internal/router"
	"github.com/abhisek/vocabcards/internal/screen"
	"github.com/abhisek/vocabcards/internal/store"
	"github.com/abhisek/vocabcards/internal/ui/components"
	"github.com/abhisek/vocabcards/internal/ui/layout"
	"github.com/abhisek/vocabcards/internal/ui/theme"
	"github.com/abhisek/vocabcards/internal/vocab"
)

// historyLimit is the number of quizzes loaded.
const historyLimit = 50

type historyLoadedMsg struct {
	Quizzes []store.QuizSessionEvent
	Err     error
}

type answersLoadedMsg struct {
	SessionID string
	Answers   []store.QuizAnswerEventData
	Err       error
}

// HistoryScreen displays past quiz results. Enter expands a quiz into its
// recorded answers.
type HistoryScreen struct {
	eventRepo store.EventRepo
	quizzes   []store.QuizSessionEvent
	answers   map[string][]store.QuizAnswerEventData
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen. A nil eventRepo shows an empty history.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		answers:   make(map[string][]store.QuizAnswerEventData),
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		if repo == nil {
			return historyLoadedMsg{}
		}
		quizzes, err := repo.RecentQuizResults(context.Background(), historyLimit)
		return historyLoadedMsg{Quizzes: quizzes, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.quizzes = msg.Quizzes
		}
		s.loaded = true
		return s, nil

	case answersLoadedMsg:
		if msg.Err == nil {
			s.answers[msg.SessionID] = msg.Answers
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, router.Back
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.quizzes)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			return s, s.toggle()
		}
	}
	return s, nil
}

// toggle expands or collapses the selected quiz, loading its answers the
// first time it is opened.
func (s *HistoryScreen) toggle() tea.Cmd {
	if s.selected >= len(s.quizzes) {
		return nil
	}
	s.expanded[s.selected] = !s.expanded[s.selected]

	id := s.quizzes[s.selected].SessionID
	if _, ok := s.answers[id]; ok || !s.expanded[s.selected] {
		return nil
	}
	repo := s.eventRepo
	return func() tea.Msg {
		answers, err := repo.QuizAnswers(context.Background(), id)
		return answersLoadedMsg{SessionID: id, Answers: answers, Err: err}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return theme.Centered(theme.Incorrect, width).Render("\n\nError: " + s.errMsg)
	case !s.loaded:
		return theme.Centered(theme.Muted, width).Render("\n\nLoading history...")
	case len(s.quizzes) == 0:
		return theme.Centered(theme.Hint, width).Render("\n\nNo quizzes yet. Generate a word list and press Tab.")
	}

	cw := components.ContentWidth(width)
	row := func(style lipgloss.Style, text string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Width(cw).Render(text)) + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, q := range s.quizzes {
		style, cursor := theme.Body, "  "
		if i == s.selected {
			style, cursor = theme.Selected, "> "
		}
		b.WriteString(row(style, fmt.Sprintf("%s%s  %-14s %-12s %2d/%-2d  %3d%%",
			cursor,
			q.Timestamp.Local().Format("Jan 02 15:04"),
			vocab.Topic(q.Topic).DisplayName(),
			q.Level,
			q.Score, q.Total, q.Percentage)))

		if !s.expanded[i] {
			continue
		}
		answers, ok := s.answers[q.SessionID]
		switch {
		case !ok:
			b.WriteString(row(theme.Hint, "    Loading..."))
		case len(answers) == 0:
			b.WriteString(row(theme.Hint, "    No answers recorded"))
		default:
			for _, a := range answers {
				b.WriteString(row(theme.Body, answerLine(a.Term, a.CorrectAnswer, a.Correct, cw)))
			}
		}
	}
	return b.String()
}

// answerLine marks one answer, appending the right definition for a miss.
func answerLine(term, correctAnswer string, correct bool, cw int) string {
	if correct {
		return "    " + theme.Correct.Render("✓") + " " + term
	}
	hint := components.Truncate(correctAnswer, cw-len(term)-10)
	return "    " + theme.Incorrect.Render("✗") + " " + term + "  " + theme.Muted.Render(hint)
}
