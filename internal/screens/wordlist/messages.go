package wordlist

import "github.com/abhisek/vocabcards/internal/vocab"

// wordsLoadedMsg carries the result of one generate request.
type wordsLoadedMsg struct {
	Topic vocab.Topic
	Level vocab.Level
	Words []vocab.Entry
	Err   error
}

// playDoneMsg reports the end of a pronunciation attempt. List identifies
// the word list the card belonged to so late results for a replaced list
// are dropped.
type playDoneMsg struct {
	List  int
	Index int
	Err   error
}
