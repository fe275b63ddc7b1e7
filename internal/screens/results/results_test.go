package results

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qz "github.com/abhisek/vocabcards/internal/quiz"
	"github.com/abhisek/vocabcards/internal/router"
	"github.com/abhisek/vocabcards/internal/vocab"
)

func testSummary() Summary {
	return Summary{
		Topic:      vocab.TopicNature,
		Level:      vocab.LevelBeginner,
		Score:      1,
		Total:      2,
		Percentage: 50,
		Answers: []qz.AnswerRecord{
			{Term: "river", Chosen: "a large stream", CorrectAnswer: "a large stream", Correct: true},
			{Term: "cliff", Chosen: "a small hill", CorrectAnswer: "a steep rock face", Correct: false},
		},
	}
}

func TestResultsScreen_Title(t *testing.T) {
	assert.Equal(t, "Results", New(testSummary()).Title())
}

func TestResultsScreen_View(t *testing.T) {
	view := New(testSummary()).View(80, 24)

	assert.Contains(t, view, "Score: 1 / 2")
	assert.Contains(t, view, "50%")
	assert.Contains(t, view, "river")
	assert.Contains(t, view, "a steep rock face")
}

func TestResultsScreen_EnterAndEscReturnToRoot(t *testing.T) {
	for _, key := range []rune{tea.KeyEnter, tea.KeyEscape} {
		s := New(testSummary())
		_, cmd := s.Update(tea.KeyPressMsg{Code: key})
		require.NotNil(t, cmd)
		assert.IsType(t, router.PopToRootMsg{}, cmd())
	}
}

func TestResultsScreen_OtherKeysIgnored(t *testing.T) {
	_, cmd := New(testSummary()).Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Nil(t, cmd)
}

func TestSummaryOf(t *testing.T) {
	session := qz.NewSession([]qz.Question{
		{Word: vocab.Entry{Term: "a"}, Options: []string{"x", "y"}, CorrectAnswer: "x"},
	})
	session.Submit("x")
	session.Advance()

	sum := SummaryOf(session, vocab.TopicFood, vocab.LevelAdvanced)
	assert.Equal(t, 1, sum.Score)
	assert.Equal(t, 1, sum.Total)
	assert.Equal(t, 100, sum.Percentage)
	assert.Len(t, sum.Answers, 1)
	assert.Equal(t, vocab.TopicFood, sum.Topic)
}

func TestHeadline(t *testing.T) {
	assert.Equal(t, "Perfect score!", headline(100))
	assert.Equal(t, "Well done!", headline(70))
	assert.Equal(t, "Good effort!", headline(40))
	assert.Equal(t, "Keep practicing!", headline(0))
}
