// Package quiz implements the multiple-choice quiz screen.
package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	qz "github.com/abhisek/vocabcards/internal/quiz"
	"github.com/abhisek/vocabcards/internal/router"
	"github.com/abhisek/vocabcards/internal/screen"
	"github.com/abhisek/vocabcards/internal/screens/results"
	"github.com/abhisek/vocabcards/internal/store"
	"github.com/abhisek/vocabcards/internal/ui/components"
	"github.com/abhisek/vocabcards/internal/ui/layout"
	"github.com/abhisek/vocabcards/internal/vocab"
)

// QuizScreen runs one quiz session. The session is discarded when the
// learner leaves with esc.
type QuizScreen struct {
	session   *qz.Session
	topic     vocab.Topic
	level     vocab.Level
	eventRepo store.EventRepo

	choice        components.MultiChoice
	startedAt     time.Time
	questionStart time.Time
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a quiz screen over session. eventRepo may be nil.
func New(session *qz.Session, topic vocab.Topic, level vocab.Level, eventRepo store.EventRepo) *QuizScreen {
	s := &QuizScreen{
		session:   session,
		topic:     topic,
		level:     level,
		eventRepo: eventRepo,
	}
	s.resetChoice()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	now := time.Now()
	s.startedAt = now
	s.questionStart = now
	s.logSession(store.QuizActionStart)
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

// Status shows the running score.
func (s *QuizScreen) Status() string {
	return scoreLabel(s.session.Score(), s.session.Total())
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.session.Answered() {
		next := "Next"
		if s.session.IsLast() {
			next = "Finish"
		}
		return []layout.KeyHint{
			{Key: "Enter/n", Description: next},
			{Key: "Esc", Description: "Quit quiz"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit quiz"},
	}
}

// Session returns the session driven by this screen.
func (s *QuizScreen) Session() *qz.Session {
	return s.session
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if kmsg.String() == "esc" {
		if !s.session.Finished() {
			s.logSession(store.QuizActionAbandon)
		}
		return s, router.Back
	}

	if s.session.Answered() {
		switch kmsg.String() {
		case "enter", "n":
			return s, s.advance()
		}
		return s, nil
	}

	s.choice, _ = s.choice.Update(msg)
	if chosen, ok := s.choice.Chosen(); ok {
		s.submit(chosen)
	}
	return s, nil
}

func (s *QuizScreen) submit(chosen string) {
	q := s.session.Current()
	if q == nil || !s.session.Submit(chosen) {
		return
	}
	s.choice.Reveal(q.CorrectAnswer)

	if s.eventRepo == nil {
		return
	}
	_ = s.eventRepo.AppendQuizAnswer(context.Background(), store.QuizAnswerEventData{
		SessionID:     s.session.ID,
		QuestionIndex: s.session.Index(),
		Term:          q.Word.Term,
		Chosen:        chosen,
		CorrectAnswer: q.CorrectAnswer,
		Correct:       q.IsCorrect(chosen),
		TimeMs:        int(time.Since(s.questionStart).Milliseconds()),
	})
}

// advance moves to the next question, or swaps in the results screen once
// the last question is done.
func (s *QuizScreen) advance() tea.Cmd {
	if !s.session.Advance() {
		return nil
	}
	if s.session.Finished() {
		s.logSession(store.QuizActionEnd)
		next := results.New(results.SummaryOf(s.session, s.topic, s.level))
		return router.Swap(next)
	}
	s.resetChoice()
	s.questionStart = time.Now()
	return nil
}

func (s *QuizScreen) resetChoice() {
	var options []string
	if q := s.session.Current(); q != nil {
		options = q.Options
	}
	s.choice = components.NewMultiChoice(options)
}

func (s *QuizScreen) logSession(action string) {
	if s.eventRepo == nil {
		return
	}
	data := store.QuizSessionEventData{
		SessionID: s.session.ID,
		Action:    action,
		Topic:     string(s.topic),
		Level:     string(s.level),
		Total:     s.session.Total(),
		Score:     s.session.Score(),
	}
	if action != store.QuizActionStart {
		data.Percentage = s.session.Percentage()
		if !s.startedAt.IsZero() {
			data.DurationSecs = int(time.Since(s.startedAt).Seconds())
		}
	}
	_ = s.eventRepo.AppendQuizSession(context.Background(), data)
}
