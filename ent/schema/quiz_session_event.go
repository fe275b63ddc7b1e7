package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizSessionEvent records quiz lifecycle events (start/end).
type QuizSessionEvent struct {
	ent.Schema
}

func (QuizSessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizSessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events of one quiz run"),
		field.String("action").
			NotEmpty().
			Comment("start, end or abandon"),
		field.String("topic").
			NotEmpty(),
		field.String("level").
			NotEmpty(),
		field.Int("total").
			Default(0).
			Comment("Number of questions"),
		field.Int("score").
			Default(0).
			Comment("Correct answers (end only)"),
		field.Int("percentage").
			Default(0).
			Comment("Rounded score percentage (end only)"),
		field.Int("duration_secs").
			Default(0),
	}
}

func (QuizSessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
