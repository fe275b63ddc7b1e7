package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "word-gen", InputTokens: 100, OutputTokens: 400, LatencyMs: 900, Success: true, RequestBody: "[user]\ntravel", ResponseBody: `{"words":[]}`},
		{Provider: "gemini", Model: "gemini-2.5-flash-preview-tts", Purpose: "pronounce", Kind: "speech", LatencyMs: 300, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "word-gen", InputTokens: 50, LatencyMs: 100, Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendLLMRequest(ctx, e))
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Newest first.
	assert.Equal(t, "rate limited", all[0].ErrorMessage)
	assert.Greater(t, all[0].Sequence, all[1].Sequence)
	assert.Equal(t, "speech", all[1].Kind)
	assert.Equal(t, "text", all[2].Kind)

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	speech, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "pronounce"})
	require.NoError(t, err)
	require.Len(t, speech, 1)
	assert.Equal(t, "gemini-2.5-flash-preview-tts", speech[0].Model)

	after, err := repo.QueryLLMEvents(ctx, QueryOpts{After: all[2].Sequence})
	require.NoError(t, err)
	assert.Len(t, after, 2)
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "openai", Model: "gpt-4o-mini", Purpose: "word-gen", Success: true,
		RequestBody: "[system]\nprompt", ResponseBody: `{"words":[]}`,
	}))

	list, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, list, 1)

	e, err := repo.GetLLMEvent(ctx, list[0].ID)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "[system]\nprompt", e.RequestBody)
	assert.Equal(t, `{"words":[]}`, e.ResponseBody)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLLMUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, e := range []LLMRequestEventData{
		{Model: "gpt-4o-mini", Purpose: "word-gen", InputTokens: 100, OutputTokens: 200, LatencyMs: 100, Success: true},
		{Model: "gpt-4o-mini", Purpose: "word-gen", InputTokens: 50, OutputTokens: 100, LatencyMs: 300, Success: false},
		{Model: "tts-1", Purpose: "pronounce", Kind: "speech", LatencyMs: 50, Success: true},
	} {
		require.NoError(t, repo.AppendLLMRequest(ctx, e))
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, UsageRow{
		Purpose: "word-gen", Calls: 2, InputTokens: 150, OutputTokens: 300, AvgLatencyMs: 200, Failures: 1,
	}, byPurpose[0])
	assert.Equal(t, "pronounce", byPurpose[1].Purpose)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, "gpt-4o-mini", byModel[0].Model)
	assert.Equal(t, 2, byModel[0].Calls)
	assert.Equal(t, "tts-1", byModel[1].Model)
}

func TestLLMUsage_Empty(t *testing.T) {
	s := openTestStore(t)
	rows, err := s.EventRepo().LLMUsageByPurpose(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestQuizEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	start := QuizSessionEventData{SessionID: "s1", Action: QuizActionStart, Topic: "travel", Level: "beginner", Total: 2}
	require.NoError(t, repo.AppendQuizSession(ctx, start))

	require.NoError(t, repo.AppendQuizAnswer(ctx, QuizAnswerEventData{
		SessionID: "s1", QuestionIndex: 1, Term: "ticket", Chosen: "여권", CorrectAnswer: "표", Correct: false, TimeMs: 1500,
	}))
	require.NoError(t, repo.AppendQuizAnswer(ctx, QuizAnswerEventData{
		SessionID: "s1", QuestionIndex: 0, Term: "passport", Chosen: "여권", CorrectAnswer: "여권", Correct: true, TimeMs: 900,
	}))

	end := start
	end.Action = QuizActionEnd
	end.Score = 1
	end.Percentage = 50
	end.DurationSecs = 12
	require.NoError(t, repo.AppendQuizSession(ctx, end))

	other := QuizSessionEventData{SessionID: "s2", Action: QuizActionAbandon, Topic: "food", Level: "advanced", Total: 5}
	require.NoError(t, repo.AppendQuizSession(ctx, other))

	results, err := repo.RecentQuizResults(ctx, 10)
	require.NoError(t, err)
	require.Len(t, results, 1, "only finished quizzes")
	assert.Equal(t, "s1", results[0].SessionID)
	assert.Equal(t, 50, results[0].Percentage)
	assert.Equal(t, 12, results[0].DurationSecs)

	answers, err := repo.QuizAnswers(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, "passport", answers[0].Term, "ordered by question index")
	assert.True(t, answers[0].Correct)
	assert.Equal(t, "ticket", answers[1].Term)

	none, err := repo.QuizAnswers(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, none)
}
