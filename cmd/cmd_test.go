package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vocabcards/internal/config"
	"github.com/abhisek/vocabcards/internal/quiz"
	"github.com/abhisek/vocabcards/internal/store"
	"github.com/abhisek/vocabcards/internal/vocab"
)

type mockEventRepo struct {
	store.EventRepo
	sessions []store.QuizSessionEventData
	answers  []store.QuizAnswerEventData
}

func (m *mockEventRepo) AppendQuizSession(_ context.Context, data store.QuizSessionEventData) error {
	m.sessions = append(m.sessions, data)
	return nil
}

func (m *mockEventRepo) AppendQuizAnswer(_ context.Context, data store.QuizAnswerEventData) error {
	m.answers = append(m.answers, data)
	return nil
}

func twoQuestionQuiz(repo store.EventRepo) *lineQuiz {
	questions := []quiz.Question{
		{
			Word:          vocab.Entry{Term: "cat"},
			Options:       []string{"a feline", "a canine"},
			CorrectAnswer: "a feline",
		},
		{
			Word:          vocab.Entry{Term: "dog"},
			Options:       []string{"a feline", "a canine"},
			CorrectAnswer: "a canine",
		},
	}
	return &lineQuiz{
		session:   quiz.NewSession(questions),
		topic:     vocab.TopicDailyLife,
		level:     vocab.LevelBeginner,
		eventRepo: repo,
	}
}

func TestLineQuiz_CompletesAndLogs(t *testing.T) {
	repo := &mockEventRepo{}
	lq := twoQuestionQuiz(repo)
	var out bytes.Buffer

	err := lq.run(context.Background(), strings.NewReader("1\n1\n"), &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Question 1/2: cat")
	assert.Contains(t, out.String(), "Not quite. Answer: a canine")
	assert.Contains(t, out.String(), "Score: 1/2 (50%)")

	require.Len(t, repo.sessions, 2)
	assert.Equal(t, store.QuizActionStart, repo.sessions[0].Action)
	assert.Equal(t, store.QuizActionEnd, repo.sessions[1].Action)
	assert.Equal(t, 50, repo.sessions[1].Percentage)
	assert.Len(t, repo.answers, 2)
}

func TestLineQuiz_RepromptsOnBadInput(t *testing.T) {
	lq := twoQuestionQuiz(nil)
	var out bytes.Buffer

	err := lq.run(context.Background(), strings.NewReader("7\nabc\n1\n2\n"), &out)
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out.String(), "Please enter a number from 1 to 2."))
	assert.Contains(t, out.String(), "Score: 2/2 (100%)")
}

func TestLineQuiz_EOFAbandons(t *testing.T) {
	repo := &mockEventRepo{}
	lq := twoQuestionQuiz(repo)
	var out bytes.Buffer

	err := lq.run(context.Background(), strings.NewReader("1\n"), &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Quiz abandoned.")
	require.Len(t, repo.sessions, 2)
	assert.Equal(t, store.QuizActionAbandon, repo.sessions[1].Action)
	assert.Equal(t, 1, repo.sessions[1].Score)
}

func TestLineQuiz_QuitKey(t *testing.T) {
	lq := twoQuestionQuiz(nil)
	var out bytes.Buffer

	require.NoError(t, lq.run(context.Background(), strings.NewReader("q\n"), &out))
	assert.Contains(t, out.String(), "Quiz abandoned.")
	assert.False(t, lq.session.Finished())
}

func TestPrintWords(t *testing.T) {
	var out bytes.Buffer
	printWords(&out, vocab.TopicFood, vocab.LevelBeginner, []vocab.Entry{
		{Term: "bake", Definition: "to cook in an oven", Example: "We bake bread.", PartOfSpeech: "verb"},
	})

	assert.Contains(t, out.String(), "Food & Cooking")
	assert.Contains(t, out.String(), " 1. bake (verb)")
	assert.Contains(t, out.String(), "e.g. We bake bread.")

	out.Reset()
	printWords(&out, vocab.TopicFood, vocab.LevelBeginner, nil)
	assert.Contains(t, out.String(), "No words came back")
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestTopicsCommand(t *testing.T) {
	out := execute(t, "topics")

	assert.Contains(t, out, "daily-life")
	assert.Contains(t, out, "emotions")
	assert.Contains(t, out, "advanced")
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocabcards", "config.toml")

	out := execute(t, "config", "init", "--config", path)
	assert.Contains(t, out, path)
	_, err := os.Stat(path)
	require.NoError(t, err)

	settings, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), settings)

	out = execute(t, "config", "show", "--config", path)
	assert.Contains(t, out, `topic = "daily-life"`)
}

func TestVersionCommand(t *testing.T) {
	assert.Contains(t, execute(t, "version"), "vocabcards")
}

func seedLLMEvents(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.db")
	s, err := store.Open(path)
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	repo := s.EventRepo()
	require.NoError(t, repo.AppendLLMRequest(ctx, store.LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "word-gen",
		InputTokens: 120, OutputTokens: 480, LatencyMs: 900, Success: true,
		RequestBody: `{"topic":"travel"}`,
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, store.LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.5-flash-preview-tts", Purpose: "pronounce",
		Kind: "speech", LatencyMs: 300, ErrorMessage: "quota exhausted",
	}))
	return path
}

func TestLLMListCommand(t *testing.T) {
	db := seedLLMEvents(t)

	out := execute(t, "llm", "list", "--db", db)
	assert.Contains(t, out, "word-gen")
	assert.Contains(t, out, "failed: quota exhausted")
	assert.Less(t, strings.Index(out, "pronounce"), strings.Index(out, "word-gen"), "newest first")

	t.Cleanup(func() { llmListCmd.Flags().Set("purpose", "") })
	out = execute(t, "llm", "list", "--db", db, "--purpose", "word-gen")
	assert.NotContains(t, out, "pronounce")
}

func TestLLMViewCommand(t *testing.T) {
	db := seedLLMEvents(t)

	t.Cleanup(func() { llmListCmd.Flags().Set("purpose", "") })
	out := execute(t, "llm", "list", "--db", db, "--purpose", "word-gen")
	fields := strings.Fields(strings.Split(strings.TrimSpace(out), "\n")[1])
	require.NotEmpty(t, fields)

	out = execute(t, "llm", "view", fields[0], "--db", db)
	assert.Contains(t, out, "gemini-2.5-flash")
	assert.Contains(t, out, `{"topic":"travel"}`)
	assert.Contains(t, out, "(not captured)")
}

func TestPrintUsage(t *testing.T) {
	var out bytes.Buffer
	printUsage(&out, nil, nil)
	assert.Contains(t, out.String(), "Nothing logged yet.")

	out.Reset()
	printUsage(&out,
		[]store.UsageRow{{Purpose: "word-gen", Calls: 2, InputTokens: 100, OutputTokens: 300}},
		[]store.UsageRow{
			{Model: "gemini-2.5-flash", Calls: 1, InputTokens: 100, OutputTokens: 300},
			{Model: "homebrew-model", Calls: 1},
		})
	assert.Contains(t, out.String(), "word-gen")
	assert.Contains(t, out.String(), "No pricing for homebrew-model")
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$0.00", formatUSD(0))
	assert.Equal(t, "$0.0042", formatUSD(0.0042))
	assert.Equal(t, "$1.25", formatUSD(1.25))
}
