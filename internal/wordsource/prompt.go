package wordsource

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a vocabulary coach preparing English flashcards for Korean-speaking learners.

Rules:
- Produce exactly the requested number of distinct English words or short phrases for the given topic and level.
- "definition" is a concise Korean meaning (a few words), not a sentence.
- "example" is one natural English sentence that uses the term.
- "part_of_speech" is a lowercase English label such as noun, verb, adjective, adverb or phrase.
- "pronunciation" is an IPA transcription between slashes.
- Beginner words are everyday and concrete; intermediate words are common in conversation and media; advanced words are precise, formal or idiomatic.
- Keep every definition different from the others so learners can tell them apart.
- Do not repeat any term from the "already known" list.`

// buildUserMessage constructs the user message for a request.
func buildUserMessage(req Request, count, maxExcluded int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", req.Topic.DisplayName())
	fmt.Fprintf(&b, "Level: %s\n", req.Level)
	fmt.Fprintf(&b, "Number of words: %d\n", count)

	b.WriteString("\nAlready known:\n")
	b.WriteString(buildExcluded(req.Exclude, maxExcluded))

	return b.String()
}

// buildExcluded formats known terms for the prompt, keeping the most
// recent max. Returns "None" when there are none.
func buildExcluded(terms []string, max int) string {
	if len(terms) == 0 {
		return "None"
	}
	if max > 0 && len(terms) > max {
		terms = terms[len(terms)-max:]
	}
	return strings.Join(terms, ", ")
}
