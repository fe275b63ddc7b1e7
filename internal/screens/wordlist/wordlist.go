// Package wordlist implements the root screen: topic and level selection,
// generated word cards and pronunciation.
package wordlist

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vocabcards/internal/llm"
	"github.com/abhisek/vocabcards/internal/quiz"
	"github.com/abhisek/vocabcards/internal/router"
	"github.com/abhisek/vocabcards/internal/screen"
	"github.com/abhisek/vocabcards/internal/screens/history"
	quizscreen "github.com/abhisek/vocabcards/internal/screens/quiz"
	"github.com/abhisek/vocabcards/internal/store"
	"github.com/abhisek/vocabcards/internal/ui/components"
	"github.com/abhisek/vocabcards/internal/ui/layout"
	"github.com/abhisek/vocabcards/internal/vocab"
	"github.com/abhisek/vocabcards/internal/wordsource"
)

// Pronouncer speaks a word aloud and returns once playback ends.
type Pronouncer interface {
	Play(ctx context.Context, text string) error
}

// Deps are the collaborators of the word list screen. Any of them may be
// nil: a missing source or pronouncer turns the matching action into an
// error notice, and a missing event repo disables quiz logging.
type Deps struct {
	Source     wordsource.Source
	Pronouncer Pronouncer
	EventRepo  store.EventRepo
}

// WordListScreen is the root screen.
type WordListScreen struct {
	deps Deps

	topics components.Selector
	levels components.Selector

	// words is the current list, generated for listTopic and listLevel.
	words     []vocab.Entry
	cards     []components.CardState
	cursor    int
	listTopic vocab.Topic
	listLevel vocab.Level
	listSeq   int
	generated bool

	busy    bool
	spinner components.Spinner
	notice  components.Notice
	quizBtn components.Button
}

var _ screen.Screen = (*WordListScreen)(nil)
var _ screen.KeyHintProvider = (*WordListScreen)(nil)
var _ screen.StatusProvider = (*WordListScreen)(nil)

// New creates the word list screen with topic and level preselected.
func New(deps Deps, topic vocab.Topic, level vocab.Level) *WordListScreen {
	topicNames := make([]string, 0, len(vocab.AllTopics()))
	for _, t := range vocab.AllTopics() {
		topicNames = append(topicNames, t.DisplayName())
	}
	levelNames := make([]string, 0, len(vocab.AllLevels()))
	for _, l := range vocab.AllLevels() {
		levelNames = append(levelNames, l.DisplayName())
	}

	s := &WordListScreen{
		deps:    deps,
		topics:  components.NewSelector("Topic", topicNames, vocab.IndexOfTopic(topic)),
		levels:  components.NewSelector("Level", levelNames, vocab.IndexOfLevel(level)),
		spinner: components.NewSpinner("Generating words..."),
	}
	s.quizBtn = components.NewButton("Start quiz", "tab", false, s.startQuiz)
	return s
}

func (s *WordListScreen) Init() tea.Cmd {
	return nil
}

func (s *WordListScreen) Title() string {
	return "Word List"
}

// Status shows the topic and level of the list on screen.
func (s *WordListScreen) Status() string {
	if len(s.words) == 0 {
		return ""
	}
	return fmt.Sprintf("%s · %s", s.listTopic.DisplayName(), s.listLevel)
}

func (s *WordListScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Topic"},
		{Key: "[ ]", Description: "Level"},
		{Key: "g", Description: "Generate"},
	}
	if len(s.words) > 0 {
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Move"},
			layout.KeyHint{Key: "Space", Description: "Expand"},
			layout.KeyHint{Key: "p", Description: "Play"},
			layout.KeyHint{Key: "Tab", Description: "Quiz"},
		)
	}
	return append(hints,
		layout.KeyHint{Key: "h", Description: "History"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

// Topic returns the topic currently selected.
func (s *WordListScreen) Topic() vocab.Topic {
	return vocab.AllTopics()[s.topics.Index]
}

// Level returns the level currently selected.
func (s *WordListScreen) Level() vocab.Level {
	return vocab.AllLevels()[s.levels.Index]
}

// Words returns the list on screen.
func (s *WordListScreen) Words() []vocab.Entry {
	return s.words
}

// Busy reports whether a generate request is pending.
func (s *WordListScreen) Busy() bool {
	return s.busy
}

func (s *WordListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case wordsLoadedMsg:
		return s, s.handleWords(msg)

	case playDoneMsg:
		return s, s.handlePlayDone(msg)

	case components.NoticeExpiredMsg:
		s.notice.Expire(msg)
		return s, nil

	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}

	if s.busy {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *WordListScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	if s.notice.Active() && s.notice.Blocking {
		s.notice.Dismiss()
		return nil
	}

	switch msg.String() {
	case "left":
		s.topics.Prev()
	case "right":
		s.topics.Next()
	case "[":
		s.levels.Prev()
	case "]":
		s.levels.Next()
	case "g":
		return s.generate()
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.words)-1 {
			s.cursor++
		}
	case "space", " ":
		if s.cursor < len(s.cards) {
			s.cards[s.cursor].Expanded = !s.cards[s.cursor].Expanded
		}
	case "p":
		return s.play()
	case "h":
		return router.Open(history.New(s.deps.EventRepo))
	default:
		s.quizBtn.Active = len(s.words) > 0 && !s.busy
		var cmd tea.Cmd
		s.quizBtn, cmd = s.quizBtn.Update(msg)
		return cmd
	}
	return nil
}

// generate requests a new list for the selected topic and level. It is a
// no-op while a request is already pending.
func (s *WordListScreen) generate() tea.Cmd {
	if s.busy {
		return nil
	}
	if s.deps.Source == nil {
		s.notice.ShowBlocking("No word source configured. Set a provider key such as GEMINI_API_KEY or VOCABCARDS_GEMINI_API_KEY.")
		return nil
	}

	s.busy = true
	s.notice.Dismiss()
	topic, level := s.Topic(), s.Level()
	src := s.deps.Source

	exclude := s.knownTerms(topic, level)

	load := func() tea.Msg {
		var words []vocab.Entry
		var err error
		if gen, ok := src.(wordsource.Generator); ok {
			words, err = gen.Generate(context.Background(), wordsource.Request{
				Topic:   topic,
				Level:   level,
				Exclude: exclude,
			})
		} else {
			words, err = src.Words(context.Background(), topic, level)
		}
		return wordsLoadedMsg{Topic: topic, Level: level, Words: words, Err: err}
	}
	return tea.Batch(load, s.spinner.Tick())
}

// knownTerms returns the terms on screen when they belong to the same
// topic and level, so a regenerated list asks for new words.
func (s *WordListScreen) knownTerms(topic vocab.Topic, level vocab.Level) []string {
	if !s.generated || topic != s.listTopic || level != s.listLevel {
		return nil
	}
	terms := make([]string, len(s.words))
	for i, w := range s.words {
		terms[i] = w.Term
	}
	return terms
}

func (s *WordListScreen) handleWords(msg wordsLoadedMsg) tea.Cmd {
	s.busy = false
	s.listSeq++
	s.cursor = 0

	if msg.Err != nil {
		s.setWords(nil)
		s.generated = false
		s.notice.ShowBlocking(describeSourceError(msg.Err))
		return nil
	}

	s.listTopic, s.listLevel = msg.Topic, msg.Level
	s.setWords(msg.Words)
	s.generated = true
	return nil
}

func (s *WordListScreen) setWords(words []vocab.Entry) {
	s.words = words
	s.cards = make([]components.CardState, len(words))
	s.quizBtn.Active = len(words) > 0
}

// play pronounces the focused card unless it is already playing.
func (s *WordListScreen) play() tea.Cmd {
	if s.cursor >= len(s.words) || s.cards[s.cursor].Playing {
		return nil
	}
	if s.deps.Pronouncer == nil {
		return s.notice.ShowTransient("Audio is not configured.")
	}

	idx, list := s.cursor, s.listSeq
	term := s.words[idx].Term
	s.cards[idx].Playing = true
	p := s.deps.Pronouncer

	return func() tea.Msg {
		err := p.Play(context.Background(), term)
		return playDoneMsg{List: list, Index: idx, Err: err}
	}
}

func (s *WordListScreen) handlePlayDone(msg playDoneMsg) tea.Cmd {
	if msg.List != s.listSeq || msg.Index >= len(s.cards) {
		return nil
	}
	s.cards[msg.Index].Playing = false
	if msg.Err != nil {
		return s.notice.ShowTransient(fmt.Sprintf("Could not play %q.", s.words[msg.Index].Term))
	}
	return nil
}

// startQuiz builds a quiz over the current list and opens the quiz screen.
func (s *WordListScreen) startQuiz() tea.Cmd {
	if len(s.words) == 0 || s.busy {
		return nil
	}
	session := quiz.NewSession(quiz.BuildQuestions(s.words))
	qs := quizscreen.New(session, s.listTopic, s.listLevel, s.deps.EventRepo)
	return router.Open(qs)
}

// describeSourceError turns a word source failure into notice text.
func describeSourceError(err error) string {
	var unavailable *llm.ErrProviderUnavailable
	var rateLimit *llm.ErrRateLimit
	switch {
	case errors.As(err, &rateLimit):
		return "The word service is busy right now. Try again in a moment."
	case errors.As(err, &unavailable):
		return fmt.Sprintf("Could not reach the word service. %v", unavailable)
	case errors.Is(err, context.DeadlineExceeded):
		return "The word service took too long to answer."
	default:
		return fmt.Sprintf("Could not generate words: %v", err)
	}
}
