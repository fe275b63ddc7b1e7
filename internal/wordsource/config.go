package wordsource

import "github.com/abhisek/vocabcards/internal/vocab"

// Config controls the behavior of the LLMSource.
type Config struct {
	// Count is the default list length.
	Count int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxExcluded caps how many already-seen terms go into the prompt.
	MaxExcluded int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		Count:       vocab.MaxWords,
		MaxTokens:   2048,
		Temperature: 0.8,
		MaxExcluded: 30,
	}
}

// count resolves the effective list length for a request.
func (c Config) count(requested int) int {
	n := requested
	if n <= 0 {
		n = c.Count
	}
	if n <= 0 || n > vocab.MaxWords {
		n = vocab.MaxWords
	}
	return n
}
