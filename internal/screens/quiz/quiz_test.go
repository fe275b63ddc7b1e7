package quiz

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qz "github.com/abhisek/vocabcards/internal/quiz"
	"github.com/abhisek/vocabcards/internal/router"
	"github.com/abhisek/vocabcards/internal/screen"
	"github.com/abhisek/vocabcards/internal/screens/results"
	"github.com/abhisek/vocabcards/internal/store"
	"github.com/abhisek/vocabcards/internal/vocab"
)

// mockEventRepo records quiz events. Other methods are not used here.
type mockEventRepo struct {
	store.EventRepo
	sessions []store.QuizSessionEventData
	answers  []store.QuizAnswerEventData
}

func (m *mockEventRepo) AppendQuizSession(_ context.Context, data store.QuizSessionEventData) error {
	m.sessions = append(m.sessions, data)
	return nil
}

func (m *mockEventRepo) AppendQuizAnswer(_ context.Context, data store.QuizAnswerEventData) error {
	m.answers = append(m.answers, data)
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// twoQuestions has the correct answer at option 1 in both questions.
func twoQuestions() []qz.Question {
	return []qz.Question{
		{
			Word:          vocab.Entry{Term: "cat", Definition: "a small feline"},
			Options:       []string{"a small feline", "a loyal canine", "a bright star", "a night light"},
			CorrectAnswer: "a small feline",
		},
		{
			Word:          vocab.Entry{Term: "dog", Definition: "a loyal canine"},
			Options:       []string{"a loyal canine", "a small feline", "a bright star", "a night light"},
			CorrectAnswer: "a loyal canine",
		},
	}
}

func newTestScreen() (*QuizScreen, *mockEventRepo) {
	repo := &mockEventRepo{}
	s := New(qz.NewSession(twoQuestions()), vocab.TopicDailyLife, vocab.LevelBeginner, repo)
	s.Init()
	return s, repo
}

func TestQuizScreen_InitLogsStart(t *testing.T) {
	s, repo := newTestScreen()

	require.Len(t, repo.sessions, 1)
	assert.Equal(t, store.QuizActionStart, repo.sessions[0].Action)
	assert.Equal(t, s.Session().ID, repo.sessions[0].SessionID)
	assert.Equal(t, 2, repo.sessions[0].Total)
	assert.Equal(t, "daily-life", repo.sessions[0].Topic)
}

func TestQuizScreen_NumberKeyAnswers(t *testing.T) {
	s, repo := newTestScreen()

	var scr screen.Screen = s
	scr.Update(keyPress('1'))

	assert.True(t, s.Session().Answered())
	assert.Equal(t, 1, s.Session().Score())
	require.Len(t, repo.answers, 1)
	assert.True(t, repo.answers[0].Correct)
	assert.Equal(t, "cat", repo.answers[0].Term)
	assert.Equal(t, 0, repo.answers[0].QuestionIndex)
}

func TestQuizScreen_ArrowsAndEnterAnswer(t *testing.T) {
	s, repo := newTestScreen()

	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyEnter))

	assert.True(t, s.Session().Answered())
	assert.Equal(t, 0, s.Session().Score())
	require.Len(t, repo.answers, 1)
	assert.Equal(t, "a loyal canine", repo.answers[0].Chosen)
	assert.False(t, repo.answers[0].Correct)
}

func TestQuizScreen_SecondAnswerIgnored(t *testing.T) {
	s, repo := newTestScreen()

	s.Update(keyPress('2'))
	s.Update(keyPress('1'))

	assert.Equal(t, 0, s.Session().Score())
	assert.Len(t, repo.answers, 1)
}

func TestQuizScreen_NextRequiresAnswer(t *testing.T) {
	s, _ := newTestScreen()

	_, cmd := s.Update(keyPress('n'))

	assert.Nil(t, cmd)
	assert.Equal(t, 0, s.Session().Index())
}

func TestQuizScreen_FinishReplacesWithResults(t *testing.T) {
	s, repo := newTestScreen()

	s.Update(keyPress('1'))
	s.Update(keyPress('n'))
	assert.Equal(t, 1, s.Session().Index())

	s.Update(keyPress('3'))
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)

	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok, "expected a ReplaceScreenMsg")
	assert.IsType(t, &results.ResultsScreen{}, msg.Screen)

	assert.True(t, s.Session().Finished())
	require.Len(t, repo.sessions, 2)
	end := repo.sessions[1]
	assert.Equal(t, store.QuizActionEnd, end.Action)
	assert.Equal(t, 1, end.Score)
	assert.Equal(t, 50, end.Percentage)
	assert.Len(t, repo.answers, 2)
}

func TestQuizScreen_EscAbandons(t *testing.T) {
	s, repo := newTestScreen()
	s.Update(keyPress('1'))

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())

	require.Len(t, repo.sessions, 2)
	assert.Equal(t, store.QuizActionAbandon, repo.sessions[1].Action)
	assert.Equal(t, 1, repo.sessions[1].Score)
}

func TestQuizScreen_NilRepo(t *testing.T) {
	s := New(qz.NewSession(twoQuestions()), vocab.TopicTravel, vocab.LevelAdvanced, nil)
	s.Init()

	s.Update(keyPress('1'))
	_, cmd := s.Update(specialKey(tea.KeyEscape))

	assert.NotNil(t, cmd)
}

func TestQuizScreen_View(t *testing.T) {
	s, _ := newTestScreen()

	view := s.View(80, 24)
	assert.Contains(t, view, "Question 1/2")
	assert.Contains(t, view, "cat")
	assert.Contains(t, view, "a bright star")

	s.Update(keyPress('2'))
	assert.Contains(t, s.View(80, 24), "Not quite.")
}

func TestQuizScreen_KeyHintsFollowState(t *testing.T) {
	s, _ := newTestScreen()
	assert.Equal(t, "1-4", s.KeyHints()[0].Key)

	s.Update(keyPress('1'))
	assert.Equal(t, "Enter/n", s.KeyHints()[0].Key)
	assert.Equal(t, "Score 1/2", s.Status())
}
