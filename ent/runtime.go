// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/vocabcards/ent/llmrequestevent"
	"github.com/abhisek/vocabcards/ent/quizanswerevent"
	"github.com/abhisek/vocabcards/ent/quizsessionevent"
	"github.com/abhisek/vocabcards/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescKind is the schema descriptor for kind field.
	llmrequesteventDescKind := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultKind holds the default value on creation for the kind field.
	llmrequestevent.DefaultKind = llmrequesteventDescKind.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	quizanswereventMixin := schema.QuizAnswerEvent{}.Mixin()
	quizanswereventMixinFields0 := quizanswereventMixin[0].Fields()
	_ = quizanswereventMixinFields0
	quizanswereventFields := schema.QuizAnswerEvent{}.Fields()
	_ = quizanswereventFields
	// quizanswereventDescTimestamp is the schema descriptor for timestamp field.
	quizanswereventDescTimestamp := quizanswereventMixinFields0[1].Descriptor()
	// quizanswerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizanswerevent.DefaultTimestamp = quizanswereventDescTimestamp.Default.(func() time.Time)
	// quizanswereventDescSessionID is the schema descriptor for session_id field.
	quizanswereventDescSessionID := quizanswereventFields[0].Descriptor()
	// quizanswerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	quizanswerevent.SessionIDValidator = quizanswereventDescSessionID.Validators[0].(func(string) error)
	// quizanswereventDescQuestionIndex is the schema descriptor for question_index field.
	quizanswereventDescQuestionIndex := quizanswereventFields[1].Descriptor()
	// quizanswerevent.QuestionIndexValidator is a validator for the "question_index" field. It is called by the builders before save.
	quizanswerevent.QuestionIndexValidator = quizanswereventDescQuestionIndex.Validators[0].(func(int) error)
	// quizanswereventDescTerm is the schema descriptor for term field.
	quizanswereventDescTerm := quizanswereventFields[2].Descriptor()
	// quizanswerevent.TermValidator is a validator for the "term" field. It is called by the builders before save.
	quizanswerevent.TermValidator = quizanswereventDescTerm.Validators[0].(func(string) error)
	// quizanswereventDescCorrectAnswer is the schema descriptor for correct_answer field.
	quizanswereventDescCorrectAnswer := quizanswereventFields[4].Descriptor()
	// quizanswerevent.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	quizanswerevent.CorrectAnswerValidator = quizanswereventDescCorrectAnswer.Validators[0].(func(string) error)
	// quizanswereventDescTimeMs is the schema descriptor for time_ms field.
	quizanswereventDescTimeMs := quizanswereventFields[6].Descriptor()
	// quizanswerevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	quizanswerevent.DefaultTimeMs = quizanswereventDescTimeMs.Default.(int)
	quizsessioneventMixin := schema.QuizSessionEvent{}.Mixin()
	quizsessioneventMixinFields0 := quizsessioneventMixin[0].Fields()
	_ = quizsessioneventMixinFields0
	quizsessioneventFields := schema.QuizSessionEvent{}.Fields()
	_ = quizsessioneventFields
	// quizsessioneventDescTimestamp is the schema descriptor for timestamp field.
	quizsessioneventDescTimestamp := quizsessioneventMixinFields0[1].Descriptor()
	// quizsessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizsessionevent.DefaultTimestamp = quizsessioneventDescTimestamp.Default.(func() time.Time)
	// quizsessioneventDescSessionID is the schema descriptor for session_id field.
	quizsessioneventDescSessionID := quizsessioneventFields[0].Descriptor()
	// quizsessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	quizsessionevent.SessionIDValidator = quizsessioneventDescSessionID.Validators[0].(func(string) error)
	// quizsessioneventDescAction is the schema descriptor for action field.
	quizsessioneventDescAction := quizsessioneventFields[1].Descriptor()
	// quizsessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	quizsessionevent.ActionValidator = quizsessioneventDescAction.Validators[0].(func(string) error)
	// quizsessioneventDescTopic is the schema descriptor for topic field.
	quizsessioneventDescTopic := quizsessioneventFields[2].Descriptor()
	// quizsessionevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	quizsessionevent.TopicValidator = quizsessioneventDescTopic.Validators[0].(func(string) error)
	// quizsessioneventDescLevel is the schema descriptor for level field.
	quizsessioneventDescLevel := quizsessioneventFields[3].Descriptor()
	// quizsessionevent.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	quizsessionevent.LevelValidator = quizsessioneventDescLevel.Validators[0].(func(string) error)
	// quizsessioneventDescTotal is the schema descriptor for total field.
	quizsessioneventDescTotal := quizsessioneventFields[4].Descriptor()
	// quizsessionevent.DefaultTotal holds the default value on creation for the total field.
	quizsessionevent.DefaultTotal = quizsessioneventDescTotal.Default.(int)
	// quizsessioneventDescScore is the schema descriptor for score field.
	quizsessioneventDescScore := quizsessioneventFields[5].Descriptor()
	// quizsessionevent.DefaultScore holds the default value on creation for the score field.
	quizsessionevent.DefaultScore = quizsessioneventDescScore.Default.(int)
	// quizsessioneventDescPercentage is the schema descriptor for percentage field.
	quizsessioneventDescPercentage := quizsessioneventFields[6].Descriptor()
	// quizsessionevent.DefaultPercentage holds the default value on creation for the percentage field.
	quizsessionevent.DefaultPercentage = quizsessioneventDescPercentage.Default.(int)
	// quizsessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	quizsessioneventDescDurationSecs := quizsessioneventFields[7].Descriptor()
	// quizsessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	quizsessionevent.DefaultDurationSecs = quizsessioneventDescDurationSecs.Default.(int)
}
