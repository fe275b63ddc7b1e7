package wordlist

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vocabcards/internal/llm"
	"github.com/abhisek/vocabcards/internal/router"
	"github.com/abhisek/vocabcards/internal/screens/history"
	quizscreen "github.com/abhisek/vocabcards/internal/screens/quiz"
	"github.com/abhisek/vocabcards/internal/vocab"
	"github.com/abhisek/vocabcards/internal/wordsource"
)

type mockSource struct {
	words []vocab.Entry
	err   error
	calls []vocab.Topic
}

func (m *mockSource) Words(_ context.Context, topic vocab.Topic, _ vocab.Level) ([]vocab.Entry, error) {
	m.calls = append(m.calls, topic)
	return m.words, m.err
}

type mockPronouncer struct {
	err    error
	played []string
}

func (m *mockPronouncer) Play(_ context.Context, text string) error {
	m.played = append(m.played, text)
	return m.err
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testWords() []vocab.Entry {
	return []vocab.Entry{
		{Term: "ticket", Definition: "a pass for a journey", PartOfSpeech: "noun"},
		{Term: "luggage", Definition: "bags for travel", PartOfSpeech: "noun"},
		{Term: "depart", Definition: "to leave", PartOfSpeech: "verb"},
	}
}

// runLoad executes a generate command and returns the load result.
func runLoad(t *testing.T, cmd tea.Cmd) wordsLoadedMsg {
	t.Helper()
	require.NotNil(t, cmd)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok, "expected a batch of load and spinner commands")
	for _, c := range batch {
		if c == nil {
			continue
		}
		if msg, ok := c().(wordsLoadedMsg); ok {
			return msg
		}
	}
	t.Fatal("no wordsLoadedMsg in batch")
	return wordsLoadedMsg{}
}

func loaded(t *testing.T) (*WordListScreen, *mockSource, *mockPronouncer) {
	t.Helper()
	src := &mockSource{words: testWords()}
	p := &mockPronouncer{}
	s := New(Deps{Source: src, Pronouncer: p}, vocab.TopicTravel, vocab.LevelBeginner)

	_, cmd := s.Update(keyPress('g'))
	s.Update(runLoad(t, cmd))
	require.Len(t, s.Words(), 3)
	return s, src, p
}

func TestWordList_InitialSelection(t *testing.T) {
	s := New(Deps{}, vocab.TopicFood, vocab.LevelAdvanced)

	assert.Equal(t, vocab.TopicFood, s.Topic())
	assert.Equal(t, vocab.LevelAdvanced, s.Level())
	assert.Contains(t, s.View(80, 20), "No words yet")
}

func TestWordList_SelectorsCycle(t *testing.T) {
	s := New(Deps{}, vocab.TopicDailyLife, vocab.LevelBeginner)

	s.Update(specialKey(tea.KeyLeft))
	assert.Equal(t, vocab.TopicEmotions, s.Topic())
	s.Update(specialKey(tea.KeyRight))
	s.Update(specialKey(tea.KeyRight))
	assert.Equal(t, vocab.TopicTravel, s.Topic())

	s.Update(keyPress(']'))
	assert.Equal(t, vocab.LevelIntermediate, s.Level())
	s.Update(keyPress('['))
	s.Update(keyPress('['))
	assert.Equal(t, vocab.LevelAdvanced, s.Level())
}

func TestWordList_GenerateLoadsWords(t *testing.T) {
	s, src, _ := loaded(t)

	assert.False(t, s.Busy())
	assert.Equal(t, []vocab.Topic{vocab.TopicTravel}, src.calls)
	assert.Contains(t, s.View(80, 30), "ticket")
	assert.Contains(t, s.Status(), "Travel")
}

func TestWordList_BusyBlocksSecondGenerate(t *testing.T) {
	s := New(Deps{Source: &mockSource{}}, vocab.TopicTravel, vocab.LevelBeginner)

	_, first := s.Update(keyPress('g'))
	require.NotNil(t, first)
	assert.True(t, s.Busy())

	_, second := s.Update(keyPress('g'))
	assert.Nil(t, second)
}

func TestWordList_EmptyResultShowsEmptyState(t *testing.T) {
	s := New(Deps{Source: &mockSource{words: []vocab.Entry{}}}, vocab.TopicTravel, vocab.LevelBeginner)

	_, cmd := s.Update(keyPress('g'))
	s.Update(runLoad(t, cmd))

	assert.Empty(t, s.Words())
	assert.Contains(t, s.View(80, 20), "No words came back")

	_, cmd = s.Update(specialKey(tea.KeyTab))
	assert.Nil(t, cmd, "quiz is disabled for an empty list")
}

func TestWordList_ProviderErrorBlocksUntilKey(t *testing.T) {
	src := &mockSource{err: &llm.ErrProviderUnavailable{Err: errors.New("no route to host")}}
	s := New(Deps{Source: src}, vocab.TopicTravel, vocab.LevelBeginner)

	_, cmd := s.Update(keyPress('g'))
	s.Update(runLoad(t, cmd))

	assert.Empty(t, s.Words())
	assert.True(t, s.notice.Blocking)
	assert.Contains(t, s.notice.Text, "no route to host")
	assert.Contains(t, s.View(80, 20), "Could not reach")

	// The first key only dismisses the notice.
	s.Update(specialKey(tea.KeyRight))
	assert.Equal(t, vocab.TopicTravel, s.Topic())
	assert.NotContains(t, s.View(80, 20), "Could not reach")
}

func TestWordList_MissingSource(t *testing.T) {
	s := New(Deps{}, vocab.TopicTravel, vocab.LevelBeginner)

	_, cmd := s.Update(keyPress('g'))

	assert.Nil(t, cmd)
	assert.False(t, s.Busy())
	assert.Contains(t, s.View(80, 20), "No word source configured")
	assert.Contains(t, s.notice.Text, "GEMINI_API_KEY")
	assert.NotContains(t, s.notice.Text, "VOCABCARDS_LLM_API_KEY")
}

const travelList = `{"words":[
	{"term":"ticket","definition":"표","example":"I lost my ticket.","part_of_speech":"noun","pronunciation":""},
	{"term":"luggage","definition":"짐","example":"My luggage is heavy.","part_of_speech":"noun","pronunciation":""}
]}`

func TestWordList_RegenerateExcludesShownTerms(t *testing.T) {
	provider := llm.NewMockProvider(
		llm.MockResponse{Content: []byte(travelList)},
		llm.MockResponse{Content: []byte(`{"words":[]}`)},
		llm.MockResponse{Content: []byte(`{"words":[]}`)},
	)
	src := wordsource.New(provider, wordsource.DefaultConfig())
	s := New(Deps{Source: src}, vocab.TopicTravel, vocab.LevelBeginner)

	_, cmd := s.Update(keyPress('g'))
	s.Update(runLoad(t, cmd))
	require.Len(t, s.Words(), 2)
	assert.Contains(t, provider.Calls[0].Messages[0].Content, "Already known:\nNone")

	_, cmd = s.Update(keyPress('g'))
	s.Update(runLoad(t, cmd))
	require.Equal(t, 2, provider.CallCount())
	assert.Contains(t, provider.Calls[1].Messages[0].Content, "ticket, luggage")

	// A different topic starts fresh.
	s.Update(specialKey(tea.KeyRight))
	_, cmd = s.Update(keyPress('g'))
	s.Update(runLoad(t, cmd))
	require.Equal(t, 3, provider.CallCount())
	assert.NotContains(t, provider.Calls[2].Messages[0].Content, "ticket")
}

func TestWordList_ExpandIsPerCard(t *testing.T) {
	s, _, _ := loaded(t)

	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeySpace))

	assert.False(t, s.cards[0].Expanded)
	assert.True(t, s.cards[1].Expanded)

	s.Update(specialKey(tea.KeySpace))
	assert.False(t, s.cards[1].Expanded)
}

func TestWordList_PlayFocusedCard(t *testing.T) {
	s, _, p := loaded(t)
	s.Update(specialKey(tea.KeyDown))

	_, cmd := s.Update(keyPress('p'))
	require.NotNil(t, cmd)
	assert.True(t, s.cards[1].Playing)

	// A second press while playing does nothing.
	_, again := s.Update(keyPress('p'))
	assert.Nil(t, again)

	s.Update(cmd())
	assert.False(t, s.cards[1].Playing)
	assert.Equal(t, []string{"luggage"}, p.played)
}

func TestWordList_PlayFailureShowsTransientNotice(t *testing.T) {
	s, _, p := loaded(t)
	p.err = errors.New("aplay: not found")

	_, cmd := s.Update(keyPress('p'))
	_, expire := s.Update(cmd())

	assert.NotNil(t, expire, "transient notice schedules its expiry")
	assert.Contains(t, s.View(80, 30), "Could not play")
	assert.False(t, s.notice.Blocking)
}

func TestWordList_StalePlayResultDropped(t *testing.T) {
	s, _, _ := loaded(t)

	_, play := s.Update(keyPress('p'))
	_, gen := s.Update(keyPress('g'))
	s.Update(runLoad(t, gen))

	s.Update(play())
	assert.False(t, s.cards[0].Playing)
}

func TestWordList_TabStartsQuiz(t *testing.T) {
	s, _, _ := loaded(t)

	_, cmd := s.Update(specialKey(tea.KeyTab))
	require.NotNil(t, cmd)

	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	qs, ok := msg.Screen.(*quizscreen.QuizScreen)
	require.True(t, ok)
	assert.Equal(t, 3, qs.Session().Total())
}

func TestWordList_HistoryKey(t *testing.T) {
	s := New(Deps{}, vocab.TopicTravel, vocab.LevelBeginner)

	_, cmd := s.Update(keyPress('h'))
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &history.HistoryScreen{}, msg.Screen)
}

func TestDescribeSourceError(t *testing.T) {
	assert.Contains(t, describeSourceError(&llm.ErrRateLimit{}), "busy")
	assert.Contains(t, describeSourceError(context.DeadlineExceeded), "too long")
	assert.Contains(t, describeSourceError(errors.New("boom")), "boom")
}
