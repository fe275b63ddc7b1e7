package wordsource

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vocabcards/internal/llm"
)

func TestWordListSchema(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{
			name:  "full entry",
			raw:   `{"words":[{"term":"ticket","definition":"표","example":"I lost my ticket.","part_of_speech":"noun","pronunciation":"/ˈtɪkɪt/"}]}`,
			valid: true,
		},
		{
			name:  "empty list",
			raw:   `{"words":[]}`,
			valid: true,
		},
		{
			name: "missing definition",
			raw:  `{"words":[{"term":"ticket","example":"I lost my ticket.","part_of_speech":"noun","pronunciation":""}]}`,
		},
		{
			name: "extra entry field",
			raw:  `{"words":[{"term":"ticket","definition":"표","example":"","part_of_speech":"noun","pronunciation":"","level":"beginner"}]}`,
		},
		{
			name: "extra top-level field",
			raw:  `{"words":[],"topic":"travel"}`,
		},
		{
			name: "words not a list",
			raw:  `{"words":"ticket, luggage"}`,
		},
		{
			name: "term not a string",
			raw:  `{"words":[{"term":7,"definition":"표","example":"","part_of_speech":"","pronunciation":""}]}`,
		},
		{
			name: "missing words",
			raw:  `{}`,
		},
		{
			name: "not json",
			raw:  `Here are some travel words: ticket, luggage`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := llm.ValidateResponse(WordListSchema, json.RawMessage(tt.raw))
			if tt.valid {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			var invalid *llm.ErrInvalidResponse
			assert.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.raw, string(invalid.Content))
		})
	}
}
