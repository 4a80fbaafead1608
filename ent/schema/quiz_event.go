package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records the lifecycle of one quiz run: started, finished with a
// score, or abandoned mid-way.
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("module_key").NotEmpty(),
		field.String("action").NotEmpty().
			Comment("start, finish or abandon"),
		field.Int("score").Default(0),
		field.Int("total").Default(0),
		field.Bool("passed").Default(false),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("module_key"),
	}
}
