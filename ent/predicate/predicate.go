// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// QuizAnswerEvent is the predicate function for quizanswerevent builders.
type QuizAnswerEvent func(*sql.Selector)

// QuizSessionEvent is the predicate function for quizsessionevent builders.
type QuizSessionEvent func(*sql.Selector)
