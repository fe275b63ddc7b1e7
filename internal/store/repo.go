package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // exact purpose match (LLM events only)
}

// LLMRequestEventData captures the data for a single LLM or speech request.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	Kind         string // "text" or "speech"; empty means text
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request event.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// UsageRow aggregates LLM usage for one purpose or model.
type UsageRow struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
	Failures     int
}

// Quiz session actions.
const (
	QuizActionStart   = "start"
	QuizActionEnd     = "end"
	QuizActionAbandon = "abandon"
)

// QuizSessionEventData captures a quiz lifecycle event.
type QuizSessionEventData struct {
	SessionID    string
	Action       string
	Topic        string
	Level        string
	Total        int
	Score        int
	Percentage   int
	DurationSecs int
}

// QuizSessionEvent is a stored quiz lifecycle event.
type QuizSessionEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	QuizSessionEventData
}

// QuizAnswerEventData captures the locked-in answer for one question.
type QuizAnswerEventData struct {
	SessionID     string
	QuestionIndex int
	Term          string
	Chosen        string
	CorrectAnswer string
	Correct       bool
	TimeMs        int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM or speech API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns a single LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates calls and tokens per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]UsageRow, error)

	// LLMUsageByModel aggregates calls and tokens per model.
	LLMUsageByModel(ctx context.Context) ([]UsageRow, error)

	// AppendQuizSession records a quiz start, end or abandon event.
	AppendQuizSession(ctx context.Context, data QuizSessionEventData) error

	// AppendQuizAnswer records one locked-in quiz answer.
	AppendQuizAnswer(ctx context.Context, data QuizAnswerEventData) error

	// RecentQuizResults returns the latest finished quizzes, newest first.
	RecentQuizResults(ctx context.Context, limit int) ([]QuizSessionEvent, error)

	// QuizAnswers returns the answers recorded for a quiz in question order.
	QuizAnswers(ctx context.Context, sessionID string) ([]QuizAnswerEventData, error)
}
