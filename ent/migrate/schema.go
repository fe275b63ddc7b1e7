// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString, Default: "text"},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[10]},
			},
		},
	}
	// QuizAnswerEventsColumns holds the columns for the "quiz_answer_events" table.
	QuizAnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_index", Type: field.TypeInt},
		{Name: "term", Type: field.TypeString},
		{Name: "chosen", Type: field.TypeString},
		{Name: "correct_answer", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_ms", Type: field.TypeInt, Default: 0},
	}
	// QuizAnswerEventsTable holds the schema information for the "quiz_answer_events" table.
	QuizAnswerEventsTable = &schema.Table{
		Name:       "quiz_answer_events",
		Columns:    QuizAnswerEventsColumns,
		PrimaryKey: []*schema.Column{QuizAnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizanswerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuizAnswerEventsColumns[1]},
			},
			{
				Name:    "quizanswerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuizAnswerEventsColumns[2]},
			},
			{
				Name:    "quizanswerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{QuizAnswerEventsColumns[3]},
			},
			{
				Name:    "quizanswerevent_term",
				Unique:  false,
				Columns: []*schema.Column{QuizAnswerEventsColumns[5]},
			},
			{
				Name:    "quizanswerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{QuizAnswerEventsColumns[8]},
			},
		},
	}
	// QuizSessionEventsColumns holds the columns for the "quiz_session_events" table.
	QuizSessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "level", Type: field.TypeString},
		{Name: "total", Type: field.TypeInt, Default: 0},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "percentage", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// QuizSessionEventsTable holds the schema information for the "quiz_session_events" table.
	QuizSessionEventsTable = &schema.Table{
		Name:       "quiz_session_events",
		Columns:    QuizSessionEventsColumns,
		PrimaryKey: []*schema.Column{QuizSessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizsessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuizSessionEventsColumns[1]},
			},
			{
				Name:    "quizsessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuizSessionEventsColumns[2]},
			},
			{
				Name:    "quizsessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{QuizSessionEventsColumns[3]},
			},
			{
				Name:    "quizsessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{QuizSessionEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		QuizAnswerEventsTable,
		QuizSessionEventsTable,
	}
)

func init() {
}
