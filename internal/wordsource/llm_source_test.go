package wordsource

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vocabcards/internal/llm"
	"github.com/abhisek/vocabcards/internal/vocab"
)

const travelWords = `{"words":[
	{"term":"passport","definition":"여권","example":"Show your passport at the gate.","part_of_speech":"Noun","pronunciation":"/ˈpæspɔːrt/"},
	{"term":"ticket","definition":"표","example":"I bought a train ticket.","part_of_speech":"noun","pronunciation":""},
	{"term":"  luggage ","definition":" 짐 ","example":"My luggage is heavy.","part_of_speech":"noun","pronunciation":"/ˈlʌɡɪdʒ/"}
]}`

func TestWords_MapsEntries(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(travelWords)})
	src := New(mock, DefaultConfig())

	words, err := src.Words(context.Background(), vocab.TopicTravel, vocab.LevelBeginner)
	require.NoError(t, err)
	require.Len(t, words, 3)

	assert.Equal(t, "passport", words[0].Term)
	assert.Equal(t, "여권", words[0].Definition)
	assert.Equal(t, "noun", words[0].PartOfSpeech)
	assert.True(t, words[0].HasPronunciation())
	assert.False(t, words[1].HasPronunciation())
	assert.Equal(t, "luggage", words[2].Term, "trimmed")
	assert.Equal(t, "짐", words[2].Definition)
}

func TestWords_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"words":[]}`)})
	src := New(mock, DefaultConfig())

	_, err := src.Generate(context.Background(), Request{
		Topic:   vocab.TopicFood,
		Level:   vocab.LevelAdvanced,
		Count:   5,
		Exclude: []string{"spoon", "fork"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, mock.CallCount())

	req := mock.Calls[0]
	assert.Equal(t, WordListSchema, req.Schema)
	assert.Equal(t, systemPrompt, req.System)
	require.Len(t, req.Messages, 1)
	msg := req.Messages[0].Content
	assert.Contains(t, msg, "Topic: Food & Cooking")
	assert.Contains(t, msg, "Level: advanced")
	assert.Contains(t, msg, "Number of words: 5")
	assert.Contains(t, msg, "spoon, fork")
}

func TestWords_DropsIncompleteEntries(t *testing.T) {
	content := `{"words":[
		{"term":"","definition":"빈","example":"","part_of_speech":"","pronunciation":""},
		{"term":"hotel","definition":"","example":"","part_of_speech":"","pronunciation":""},
		{"term":"map","definition":"지도","example":"","part_of_speech":"noun","pronunciation":""}
	]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})

	words, err := New(mock, DefaultConfig()).Words(context.Background(), vocab.TopicTravel, vocab.LevelBeginner)
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "map", words[0].Term)
}

func TestWords_CapsAtCount(t *testing.T) {
	var entries []string
	for i := range 14 {
		entries = append(entries, `{"term":"w`+string(rune('a'+i))+`","definition":"d","example":"","part_of_speech":"","pronunciation":""}`)
	}
	content := `{"words":[` + strings.Join(entries, ",") + `]}`

	t.Run("default caps at max", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})
		words, err := New(mock, DefaultConfig()).Words(context.Background(), vocab.TopicNature, vocab.LevelBeginner)
		require.NoError(t, err)
		assert.Len(t, words, vocab.MaxWords)
		assert.Equal(t, "wa", words[0].Term, "order preserved")
	})

	t.Run("explicit count", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})
		words, err := New(mock, DefaultConfig()).Generate(context.Background(), Request{Topic: vocab.TopicNature, Level: vocab.LevelBeginner, Count: 4})
		require.NoError(t, err)
		assert.Len(t, words, 4)
	})

	t.Run("count above max is capped", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})
		cfg := DefaultConfig()
		cfg.Count = 50
		words, err := New(mock, cfg).Words(context.Background(), vocab.TopicNature, vocab.LevelBeginner)
		require.NoError(t, err)
		assert.Len(t, words, vocab.MaxWords)
	})
}

func TestWords_MalformedYieldsEmpty(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"not json", llm.MockResponse{Content: json.RawMessage(`sorry, I can't`)}},
		{"wrong shape", llm.MockResponse{Content: json.RawMessage(`{"words":"none"}`)}},
		{"empty list", llm.MockResponse{Content: json.RawMessage(`{"words":[]}`)}},
		{"invalid response error", llm.MockResponse{Err: &llm.ErrInvalidResponse{Err: errors.New("schema")}}},
		{"max tokens", llm.MockResponse{Err: &llm.ErrMaxTokensExceeded{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(tt.resp)
			words, err := New(mock, DefaultConfig()).Words(context.Background(), vocab.TopicEmotions, vocab.LevelIntermediate)
			require.NoError(t, err)
			assert.NotNil(t, words)
			assert.Empty(t, words)
		})
	}
}

func TestWords_ProviderUnavailable(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})

	words, err := New(mock, DefaultConfig()).Words(context.Background(), vocab.TopicBusiness, vocab.LevelBeginner)
	require.Error(t, err)
	assert.Nil(t, words)

	var unavail *llm.ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)
}

func TestWords_DefaultPolicyCallsProviderOnce(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
		llm.MockResponse{Content: json.RawMessage(travelWords)},
	)
	src := New(llm.WithRetry(mock, llm.DefaultConfig().Retry), DefaultConfig())

	words, err := src.Words(context.Background(), vocab.TopicTravel, vocab.LevelBeginner)
	require.Error(t, err)
	assert.Nil(t, words)
	assert.Equal(t, 1, mock.CallCount())
}

func TestWords_SchemaViolationYieldsEmpty(t *testing.T) {
	// A provider that validates like the real ones do.
	raw := json.RawMessage(`{"words":[{"term":"passport","example":"x","part_of_speech":"noun","pronunciation":""}]}`)
	err := llm.ValidateResponse(WordListSchema, raw)
	mock := llm.NewMockProvider(llm.MockResponse{Err: err})

	words, genErr := New(mock, DefaultConfig()).Words(context.Background(), vocab.TopicTravel, vocab.LevelBeginner)
	require.NoError(t, genErr)
	assert.Empty(t, words)
}

func TestBuildExcluded(t *testing.T) {
	assert.Equal(t, "None", buildExcluded(nil, 5))
	assert.Equal(t, "c, d", buildExcluded([]string{"a", "b", "c", "d"}, 2))
	assert.Equal(t, "a, b", buildExcluded([]string{"a", "b"}, 0))
}
