package history

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vocabcards/internal/router"
	"github.com/abhisek/vocabcards/internal/store"
)

type mockEventRepo struct {
	store.EventRepo
	quizzes      []store.QuizSessionEvent
	answers      map[string][]store.QuizAnswerEventData
	answerLoads  int
	requestLimit int
}

func (m *mockEventRepo) RecentQuizResults(_ context.Context, limit int) ([]store.QuizSessionEvent, error) {
	m.requestLimit = limit
	return m.quizzes, nil
}

func (m *mockEventRepo) QuizAnswers(_ context.Context, id string) ([]store.QuizAnswerEventData, error) {
	m.answerLoads++
	return m.answers[id], nil
}

func testRepo() *mockEventRepo {
	return &mockEventRepo{
		quizzes: []store.QuizSessionEvent{
			{
				Timestamp: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
				QuizSessionEventData: store.QuizSessionEventData{
					SessionID: "s1", Action: store.QuizActionEnd,
					Topic: "travel", Level: "beginner", Total: 4, Score: 3, Percentage: 75,
				},
			},
		},
		answers: map[string][]store.QuizAnswerEventData{
			"s1": {
				{SessionID: "s1", Term: "ticket", Correct: true},
				{SessionID: "s1", Term: "luggage", CorrectAnswer: "bags for travel", Correct: false},
			},
		},
	}
}

// load runs Init and feeds the result back into the screen.
func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	cmd := s.Init()
	require.NotNil(t, cmd)
	s.Update(cmd())
}

func TestHistoryScreen_LoadsRecentQuizzes(t *testing.T) {
	repo := testRepo()
	s := New(repo)
	load(t, s)

	assert.Equal(t, historyLimit, repo.requestLimit)
	view := s.View(100, 30)
	assert.Contains(t, view, "Travel")
	assert.Contains(t, view, "75%")
}

func TestHistoryScreen_ExpandLoadsAnswersOnce(t *testing.T) {
	repo := testRepo()
	s := New(repo)
	load(t, s)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	s.Update(cmd())
	assert.Contains(t, s.View(100, 30), "luggage")

	// Collapse and reopen without another query.
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, repo.answerLoads)
}

func TestHistoryScreen_EmptyWithoutRepo(t *testing.T) {
	s := New(nil)
	load(t, s)

	assert.Contains(t, s.View(100, 30), "No quizzes yet")
}

func TestHistoryScreen_EscPops(t *testing.T) {
	s := New(nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}
