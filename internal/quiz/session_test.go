package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fourQuestionSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(seeded(9).Build(animalWords()))
	require.Equal(t, 4, s.Total())
	require.NotEmpty(t, s.ID)
	return s
}

func wrongOption(q *Question) string {
	for _, o := range q.Options {
		if o != q.CorrectAnswer {
			return o
		}
	}
	return ""
}

func TestSession_Scenario(t *testing.T) {
	s := fourQuestionSession(t)

	// Q1 correct.
	require.True(t, s.Submit(s.Current().CorrectAnswer))
	assert.Equal(t, 1, s.Score())
	assert.True(t, s.LastCorrect())
	require.True(t, s.Advance())

	// Q2 wrong.
	require.True(t, s.Submit(wrongOption(s.Current())))
	assert.Equal(t, 1, s.Score())
	assert.False(t, s.LastCorrect())
	require.True(t, s.Advance())

	// Q3 correct, Q4 wrong.
	require.True(t, s.Submit(s.Current().CorrectAnswer))
	require.True(t, s.Advance())
	assert.True(t, s.IsLast())
	require.True(t, s.Submit(wrongOption(s.Current())))
	require.True(t, s.Advance())

	assert.True(t, s.Finished())
	assert.Nil(t, s.Current())
	assert.Equal(t, 2, s.Score())
	assert.Equal(t, 50, s.Percentage())

	results := s.Results()
	require.Len(t, results, 4)
	assert.True(t, results[0].Correct)
	assert.False(t, results[1].Correct)
	assert.Equal(t, "cat", results[0].Term)
}

func TestSession_SecondSubmitIgnored(t *testing.T) {
	s := fourQuestionSession(t)
	q := s.Current()

	require.True(t, s.Submit(wrongOption(q)))
	first, _ := s.Selected()
	scoreBefore := s.Score()

	assert.False(t, s.Submit(q.CorrectAnswer))
	second, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, first, second)
	assert.Equal(t, scoreBefore, s.Score())
	assert.Len(t, s.Results(), 1)
}

func TestSession_AdvanceRequiresAnswer(t *testing.T) {
	s := fourQuestionSession(t)
	assert.False(t, s.Advance())
	assert.Equal(t, 0, s.Index())
	assert.False(t, s.Finished())
}

func TestSession_AdvanceClearsSelection(t *testing.T) {
	s := fourQuestionSession(t)
	s.Submit(s.Current().CorrectAnswer)
	s.Advance()

	sel, ok := s.Selected()
	assert.False(t, ok)
	assert.Empty(t, sel)
	assert.Equal(t, 1, s.Index())
}

func TestSession_Empty(t *testing.T) {
	s := NewSession(nil)
	assert.True(t, s.Finished())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 0, s.Percentage())
	assert.Nil(t, s.Current())
	assert.False(t, s.Submit("anything"))
	assert.False(t, s.Advance())
}

func TestSession_NoOpsAfterFinish(t *testing.T) {
	s := NewSession(seeded(2).Build(wordList(1)))
	s.Submit(s.Current().CorrectAnswer)
	require.True(t, s.Advance())
	require.True(t, s.Finished())

	assert.False(t, s.Submit("x"))
	assert.False(t, s.Advance())
	assert.Equal(t, 100, s.Percentage())
}

func TestSession_ScoreInvariant(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		b := seeded(seed)
		s := NewSession(b.Build(wordList(10)))
		prev := 0
		step := 0
		for !s.Finished() {
			q := s.Current()
			choice := q.Options[step%len(q.Options)]
			s.Submit(choice)
			assert.GreaterOrEqual(t, s.Score(), prev, "score never decreases")
			assert.LessOrEqual(t, s.Score(), s.Index()+1)
			prev = s.Score()
			s.Advance()
			step++
		}
		assert.Equal(t, 10, len(s.Results()))
	}
}

func TestSession_PercentageRounding(t *testing.T) {
	tests := []struct {
		total, correct, want int
	}{
		{3, 1, 33},
		{3, 2, 67},
		{6, 1, 17},
		{4, 4, 100},
		{7, 0, 0},
	}
	for _, tt := range tests {
		s := NewSession(seeded(1).Build(wordList(tt.total)))
		for i := 0; !s.Finished(); i++ {
			q := s.Current()
			if i < tt.correct {
				s.Submit(q.CorrectAnswer)
			} else {
				s.Submit(wrongOption(q))
			}
			s.Advance()
		}
		assert.Equal(t, tt.want, s.Percentage(), "%d/%d", tt.correct, tt.total)
	}
}
