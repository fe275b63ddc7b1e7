package quiz

import (
	"math/rand/v2"

	"github.com/abhisek/vocabcards/internal/vocab"
)

// OptionsPerQuestion is the option count when enough distractors exist.
const OptionsPerQuestion = 4

// Question is a multiple-choice question asking for a word's definition.
type Question struct {
	Word vocab.Entry

	// Options holds the candidate definitions in display order. It has
	// OptionsPerQuestion entries unless the word list is too short to
	// supply three distractors.
	Options []string

	// CorrectAnswer is the target word's definition.
	CorrectAnswer string
}

// IsCorrect reports whether choice is the correct definition. Matching is
// by value: if two words share a definition, either option is accepted.
func (q Question) IsCorrect(choice string) bool {
	return choice == q.CorrectAnswer
}

// Builder turns a word list into quiz questions.
type Builder struct {
	rng *rand.Rand
}

// NewBuilder returns a Builder drawing from rng. A nil rng uses the
// package-level source.
func NewBuilder(rng *rand.Rand) *Builder {
	return &Builder{rng: rng}
}

// BuildQuestions builds one question per word using the default source.
func BuildQuestions(words []vocab.Entry) []Question {
	return NewBuilder(nil).Build(words)
}

// Build returns one question per word, in input order.
func (b *Builder) Build(words []vocab.Entry) []Question {
	questions := make([]Question, 0, len(words))
	for _, w := range words {
		questions = append(questions, b.question(w, words))
	}
	return questions
}

func (b *Builder) question(target vocab.Entry, words []vocab.Entry) Question {
	pool := make([]string, 0, len(words))
	for _, w := range words {
		if w.Term == target.Term {
			continue
		}
		pool = append(pool, w.Definition)
	}

	b.shuffle(pool)
	if len(pool) > OptionsPerQuestion-1 {
		pool = pool[:OptionsPerQuestion-1]
	}

	options := make([]string, 0, len(pool)+1)
	options = append(options, pool...)
	options = append(options, target.Definition)
	b.shuffle(options)

	return Question{
		Word:          target,
		Options:       options,
		CorrectAnswer: target.Definition,
	}
}

// shuffle applies a uniform (Fisher-Yates) permutation in place.
func (b *Builder) shuffle(s []string) {
	swap := func(i, j int) { s[i], s[j] = s[j], s[i] }
	if b.rng != nil {
		b.rng.Shuffle(len(s), swap)
		return
	}
	rand.Shuffle(len(s), swap)
}
