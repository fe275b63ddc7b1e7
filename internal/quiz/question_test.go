package quiz

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vocabcards/internal/vocab"
)

func animalWords() []vocab.Entry {
	return []vocab.Entry{
		{Term: "cat", Definition: "고양이"},
		{Term: "dog", Definition: "개"},
		{Term: "sun", Definition: "해"},
		{Term: "moon", Definition: "달"},
	}
}

func wordList(n int) []vocab.Entry {
	words := make([]vocab.Entry, n)
	for i := range words {
		words[i] = vocab.Entry{
			Term:       fmt.Sprintf("term-%d", i),
			Definition: fmt.Sprintf("definition-%d", i),
		}
	}
	return words
}

func seeded(seed uint64) *Builder {
	return NewBuilder(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func count(options []string, s string) int {
	n := 0
	for _, o := range options {
		if o == s {
			n++
		}
	}
	return n
}

func TestBuild_FourWordScenario(t *testing.T) {
	words := animalWords()
	questions := seeded(1).Build(words)
	require.Len(t, questions, 4)

	all := []string{"고양이", "개", "해", "달"}
	for i, q := range questions {
		assert.Equal(t, words[i], q.Word)
		assert.Equal(t, words[i].Definition, q.CorrectAnswer)
		assert.ElementsMatch(t, all, q.Options)
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	assert.Empty(t, BuildQuestions(nil))
	assert.Empty(t, BuildQuestions([]vocab.Entry{}))
}

func TestBuild_EnoughDefinitions(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		words := wordList(10)
		questions := seeded(seed).Build(words)
		require.Len(t, questions, len(words))

		for i, q := range questions {
			assert.Equal(t, words[i].Term, q.Word.Term, "order preserved")
			assert.Len(t, q.Options, OptionsPerQuestion)
			assert.Equal(t, 1, count(q.Options, q.CorrectAnswer))

			sorted := slices.Clone(q.Options)
			slices.Sort(sorted)
			assert.Len(t, slices.Compact(sorted), OptionsPerQuestion, "no duplicate options")
		}
	}
}

func TestBuild_FewerThanFourDefinitions(t *testing.T) {
	tests := []struct {
		name  string
		words int
	}{
		{"single", 1},
		{"pair", 2},
		{"triple", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions := seeded(7).Build(wordList(tt.words))
			require.Len(t, questions, tt.words)
			for _, q := range questions {
				assert.Len(t, q.Options, tt.words)
				assert.Equal(t, 1, count(q.Options, q.CorrectAnswer))
			}
		})
	}
}

func TestBuild_ExcludesSameTerm(t *testing.T) {
	words := []vocab.Entry{
		{Term: "bank", Definition: "은행"},
		{Term: "bank", Definition: "둑"},
		{Term: "river", Definition: "강"},
	}
	questions := seeded(3).Build(words)
	require.Len(t, questions, 3)

	// Neither "bank" entry may use the other's definition as a distractor.
	assert.ElementsMatch(t, []string{"은행", "강"}, questions[0].Options)
	assert.ElementsMatch(t, []string{"둑", "강"}, questions[1].Options)
	assert.Len(t, questions[2].Options, 3)
}

func TestBuild_DuplicateDefinitionsMatchByValue(t *testing.T) {
	words := []vocab.Entry{
		{Term: "big", Definition: "큰"},
		{Term: "large", Definition: "큰"},
		{Term: "small", Definition: "작은"},
	}
	q := seeded(11).Build(words)[0]
	assert.Equal(t, 2, count(q.Options, "큰"))
	for _, o := range q.Options {
		if o == "큰" {
			assert.True(t, q.IsCorrect(o))
		}
	}
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	words := wordList(6)
	before := slices.Clone(words)
	seeded(5).Build(words)
	assert.Equal(t, before, words)
}

func TestBuild_CorrectAnswerPositionVaries(t *testing.T) {
	b := seeded(42)
	positions := make(map[int]int)
	words := animalWords()
	for range 200 {
		q := b.Build(words)[0]
		positions[slices.Index(q.Options, q.CorrectAnswer)]++
	}
	// Every slot should be hit by a uniform shuffle over 200 draws.
	for i := range OptionsPerQuestion {
		assert.Positive(t, positions[i], "position %d never used", i)
	}
}
