package vocab

// Entry is a single learnable word as returned by a word source.
// Entries are treated as immutable once produced.
type Entry struct {
	Term         string `json:"term"`
	Definition   string `json:"definition"`
	Example      string `json:"example"`
	PartOfSpeech string `json:"part_of_speech"`

	// Pronunciation is an optional phonetic hint, e.g. "/kæt/".
	// Empty when the source did not supply one.
	Pronunciation string `json:"pronunciation,omitempty"`
}

// HasPronunciation reports whether the entry carries a phonetic hint.
func (e Entry) HasPronunciation() bool {
	return e.Pronunciation != ""
}

// MaxWords is the upper bound on the number of entries in a generated list.
const MaxWords = 10
