package wordsource

import "github.com/abhisek/vocabcards/internal/llm"

// WordListSchema defines the JSON schema for word list responses.
var WordListSchema = &llm.Schema{
	Name:        "word-list",
	Description: "A list of English vocabulary words with Korean definitions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"words": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"term": map[string]any{
							"type":        "string",
							"description": "The English word or short phrase",
						},
						"definition": map[string]any{
							"type":        "string",
							"description": "Concise Korean meaning, a few words at most",
						},
						"example": map[string]any{
							"type":        "string",
							"description": "One natural English sentence using the term",
						},
						"part_of_speech": map[string]any{
							"type":        "string",
							"description": "noun, verb, adjective, adverb, phrase, ...",
						},
						"pronunciation": map[string]any{
							"type":        "string",
							"description": "IPA transcription between slashes, e.g. /ˈtɪkɪt/",
						},
					},
					"required":             []any{"term", "definition", "example", "part_of_speech", "pronunciation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"words"},
		"additionalProperties": false,
	},
}
