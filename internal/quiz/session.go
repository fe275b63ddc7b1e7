package quiz

import (
	"math"

	"github.com/google/uuid"
)

// AnswerRecord captures the locked-in answer for one question.
type AnswerRecord struct {
	Term          string
	Chosen        string
	CorrectAnswer string
	Correct       bool
}

// Session walks through a question list one question at a time.
//
// Only Submit and Advance mutate state. The first answer to a question is
// locked in; Advance is only valid once an answer has been submitted.
type Session struct {
	// ID identifies this run in the event log.
	ID string

	questions []Question
	index     int
	score     int
	selected  string
	answered  bool
	finished  bool
	results   []AnswerRecord
}

// NewSession starts a session at the first question with a zero score.
// A session over zero questions is finished immediately.
func NewSession(questions []Question) *Session {
	return &Session{
		ID:        uuid.New().String(),
		questions: questions,
		finished:  len(questions) == 0,
		results:   make([]AnswerRecord, 0, len(questions)),
	}
}

// Current returns the active question, or nil once the session is finished.
func (s *Session) Current() *Question {
	if s.finished || s.index >= len(s.questions) {
		return nil
	}
	return &s.questions[s.index]
}

// Submit locks in choice for the current question and scores it.
// It returns false and changes nothing if an answer is already locked in
// or the session is finished.
func (s *Session) Submit(choice string) bool {
	q := s.Current()
	if q == nil || s.answered {
		return false
	}

	s.selected = choice
	s.answered = true

	correct := q.IsCorrect(choice)
	if correct {
		s.score++
	}
	s.results = append(s.results, AnswerRecord{
		Term:          q.Word.Term,
		Chosen:        choice,
		CorrectAnswer: q.CorrectAnswer,
		Correct:       correct,
	})
	return true
}

// Advance moves past an answered question. On the last question it
// finishes the session. It returns false without changes when no answer
// has been submitted.
func (s *Session) Advance() bool {
	if s.finished || !s.answered {
		return false
	}

	if s.index == len(s.questions)-1 {
		s.finished = true
		return true
	}

	s.index++
	s.selected = ""
	s.answered = false
	return true
}

// Index returns the zero-based position of the current question.
func (s *Session) Index() int { return s.index }

// Score returns the number of correct answers so far.
func (s *Session) Score() int { return s.score }

// Total returns the number of questions in the session.
func (s *Session) Total() int { return len(s.questions) }

// Selected returns the locked-in answer for the current question.
func (s *Session) Selected() (string, bool) { return s.selected, s.answered }

// Answered reports whether the current question has a locked-in answer.
func (s *Session) Answered() bool { return s.answered }

// Finished reports whether the session reached its terminal state.
func (s *Session) Finished() bool { return s.finished }

// IsLast reports whether the current question is the final one.
func (s *Session) IsLast() bool { return s.index == len(s.questions)-1 }

// LastCorrect reports whether the locked-in answer for the current
// question was correct.
func (s *Session) LastCorrect() bool {
	if !s.answered || len(s.results) == 0 {
		return false
	}
	return s.results[len(s.results)-1].Correct
}

// Results returns the answer records in question order.
func (s *Session) Results() []AnswerRecord {
	out := make([]AnswerRecord, len(s.results))
	copy(out, s.results)
	return out
}

// Percentage returns round(100 * score / total), or 0 for an empty session.
func (s *Session) Percentage() int {
	if len(s.questions) == 0 {
		return 0
	}
	return int(math.Round(100 * float64(s.score) / float64(len(s.questions))))
}
