// Code generated by ent, DO NOT EDIT.

package quizanswerevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/vocabcards/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldSessionID, v))
}

// QuestionIndex applies equality check predicate on the "question_index" field. It's identical to QuestionIndexEQ.
func QuestionIndex(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldQuestionIndex, v))
}

// Term applies equality check predicate on the "term" field. It's identical to TermEQ.
func Term(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldTerm, v))
}

// Chosen applies equality check predicate on the "chosen" field. It's identical to ChosenEQ.
func Chosen(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldChosen, v))
}

// CorrectAnswer applies equality check predicate on the "correct_answer" field. It's identical to CorrectAnswerEQ.
func CorrectAnswer(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldCorrectAnswer, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldCorrect, v))
}

// TimeMs applies equality check predicate on the "time_ms" field. It's identical to TimeMsEQ.
func TimeMs(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldTimeMs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// QuestionIndexEQ applies the EQ predicate on the "question_index" field.
func QuestionIndexEQ(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldQuestionIndex, v))
}

// QuestionIndexNEQ applies the NEQ predicate on the "question_index" field.
func QuestionIndexNEQ(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldQuestionIndex, v))
}

// QuestionIndexIn applies the In predicate on the "question_index" field.
func QuestionIndexIn(vs ...int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldQuestionIndex, vs...))
}

// QuestionIndexNotIn applies the NotIn predicate on the "question_index" field.
func QuestionIndexNotIn(vs ...int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldQuestionIndex, vs...))
}

// QuestionIndexGT applies the GT predicate on the "question_index" field.
func QuestionIndexGT(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldQuestionIndex, v))
}

// QuestionIndexGTE applies the GTE predicate on the "question_index" field.
func QuestionIndexGTE(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldQuestionIndex, v))
}

// QuestionIndexLT applies the LT predicate on the "question_index" field.
func QuestionIndexLT(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldQuestionIndex, v))
}

// QuestionIndexLTE applies the LTE predicate on the "question_index" field.
func QuestionIndexLTE(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldQuestionIndex, v))
}

// TermEQ applies the EQ predicate on the "term" field.
func TermEQ(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldTerm, v))
}

// TermNEQ applies the NEQ predicate on the "term" field.
func TermNEQ(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldTerm, v))
}

// TermIn applies the In predicate on the "term" field.
func TermIn(vs ...string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldTerm, vs...))
}

// TermNotIn applies the NotIn predicate on the "term" field.
func TermNotIn(vs ...string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldTerm, vs...))
}

// TermGT applies the GT predicate on the "term" field.
func TermGT(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldTerm, v))
}

// TermGTE applies the GTE predicate on the "term" field.
func TermGTE(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldTerm, v))
}

// TermLT applies the LT predicate on the "term" field.
func TermLT(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldTerm, v))
}

// TermLTE applies the LTE predicate on the "term" field.
func TermLTE(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldTerm, v))
}

// TermContains applies the Contains predicate on the "term" field.
func TermContains(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldContains(FieldTerm, v))
}

// TermHasPrefix applies the HasPrefix predicate on the "term" field.
func TermHasPrefix(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldHasPrefix(FieldTerm, v))
}

// TermHasSuffix applies the HasSuffix predicate on the "term" field.
func TermHasSuffix(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldHasSuffix(FieldTerm, v))
}

// TermEqualFold applies the EqualFold predicate on the "term" field.
func TermEqualFold(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEqualFold(FieldTerm, v))
}

// TermContainsFold applies the ContainsFold predicate on the "term" field.
func TermContainsFold(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldContainsFold(FieldTerm, v))
}

// ChosenEQ applies the EQ predicate on the "chosen" field.
func ChosenEQ(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldChosen, v))
}

// ChosenNEQ applies the NEQ predicate on the "chosen" field.
func ChosenNEQ(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldChosen, v))
}

// ChosenIn applies the In predicate on the "chosen" field.
func ChosenIn(vs ...string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldChosen, vs...))
}

// ChosenNotIn applies the NotIn predicate on the "chosen" field.
func ChosenNotIn(vs ...string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldChosen, vs...))
}

// ChosenGT applies the GT predicate on the "chosen" field.
func ChosenGT(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldChosen, v))
}

// ChosenGTE applies the GTE predicate on the "chosen" field.
func ChosenGTE(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldChosen, v))
}

// ChosenLT applies the LT predicate on the "chosen" field.
func ChosenLT(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldChosen, v))
}

// ChosenLTE applies the LTE predicate on the "chosen" field.
func ChosenLTE(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldChosen, v))
}

// ChosenContains applies the Contains predicate on the "chosen" field.
func ChosenContains(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldContains(FieldChosen, v))
}

// ChosenHasPrefix applies the HasPrefix predicate on the "chosen" field.
func ChosenHasPrefix(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldHasPrefix(FieldChosen, v))
}

// ChosenHasSuffix applies the HasSuffix predicate on the "chosen" field.
func ChosenHasSuffix(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldHasSuffix(FieldChosen, v))
}

// ChosenEqualFold applies the EqualFold predicate on the "chosen" field.
func ChosenEqualFold(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEqualFold(FieldChosen, v))
}

// ChosenContainsFold applies the ContainsFold predicate on the "chosen" field.
func ChosenContainsFold(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldContainsFold(FieldChosen, v))
}

// CorrectAnswerEQ applies the EQ predicate on the "correct_answer" field.
func CorrectAnswerEQ(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerNEQ applies the NEQ predicate on the "correct_answer" field.
func CorrectAnswerNEQ(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerIn applies the In predicate on the "correct_answer" field.
func CorrectAnswerIn(vs ...string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerNotIn applies the NotIn predicate on the "correct_answer" field.
func CorrectAnswerNotIn(vs ...string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerGT applies the GT predicate on the "correct_answer" field.
func CorrectAnswerGT(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldCorrectAnswer, v))
}

// CorrectAnswerGTE applies the GTE predicate on the "correct_answer" field.
func CorrectAnswerGTE(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldCorrectAnswer, v))
}

// CorrectAnswerLT applies the LT predicate on the "correct_answer" field.
func CorrectAnswerLT(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldCorrectAnswer, v))
}

// CorrectAnswerLTE applies the LTE predicate on the "correct_answer" field.
func CorrectAnswerLTE(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldCorrectAnswer, v))
}

// CorrectAnswerContains applies the Contains predicate on the "correct_answer" field.
func CorrectAnswerContains(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldContains(FieldCorrectAnswer, v))
}

// CorrectAnswerHasPrefix applies the HasPrefix predicate on the "correct_answer" field.
func CorrectAnswerHasPrefix(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldHasPrefix(FieldCorrectAnswer, v))
}

// CorrectAnswerHasSuffix applies the HasSuffix predicate on the "correct_answer" field.
func CorrectAnswerHasSuffix(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldHasSuffix(FieldCorrectAnswer, v))
}

// CorrectAnswerEqualFold applies the EqualFold predicate on the "correct_answer" field.
func CorrectAnswerEqualFold(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEqualFold(FieldCorrectAnswer, v))
}

// CorrectAnswerContainsFold applies the ContainsFold predicate on the "correct_answer" field.
func CorrectAnswerContainsFold(v string) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldContainsFold(FieldCorrectAnswer, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldCorrect, v))
}

// TimeMsEQ applies the EQ predicate on the "time_ms" field.
func TimeMsEQ(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldEQ(FieldTimeMs, v))
}

// TimeMsNEQ applies the NEQ predicate on the "time_ms" field.
func TimeMsNEQ(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNEQ(FieldTimeMs, v))
}

// TimeMsIn applies the In predicate on the "time_ms" field.
func TimeMsIn(vs ...int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldIn(FieldTimeMs, vs...))
}

// TimeMsNotIn applies the NotIn predicate on the "time_ms" field.
func TimeMsNotIn(vs ...int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldNotIn(FieldTimeMs, vs...))
}

// TimeMsGT applies the GT predicate on the "time_ms" field.
func TimeMsGT(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGT(FieldTimeMs, v))
}

// TimeMsGTE applies the GTE predicate on the "time_ms" field.
func TimeMsGTE(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldGTE(FieldTimeMs, v))
}

// TimeMsLT applies the LT predicate on the "time_ms" field.
func TimeMsLT(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLT(FieldTimeMs, v))
}

// TimeMsLTE applies the LTE predicate on the "time_ms" field.
func TimeMsLTE(v int) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.FieldLTE(FieldTimeMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizAnswerEvent) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizAnswerEvent) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizAnswerEvent) predicate.QuizAnswerEvent {
	return predicate.QuizAnswerEvent(sql.NotPredicates(p))
}
