package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizAnswerEvent records the locked-in answer to one quiz question.
type QuizAnswerEvent struct {
	ent.Schema
}

func (QuizAnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizAnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to QuizSessionEvent"),
		field.Int("question_index").
			NonNegative(),
		field.String("term").
			NotEmpty(),
		field.String("chosen").
			Comment("Definition the learner picked"),
		field.String("correct_answer").
			NotEmpty(),
		field.Bool("correct"),
		field.Int("time_ms").
			Default(0).
			Comment("Milliseconds to answer"),
	}
}

func (QuizAnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("term"),
		index.Fields("correct"),
	}
}
