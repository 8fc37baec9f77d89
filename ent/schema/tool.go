package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Tool is a generated study artifact. Written once per generation request,
// never mutated, never deduplicated.
type Tool struct {
	ent.Schema
}

func (Tool) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("tool_type").
			Values("flashcards", "feynman_feedback"),
		field.JSON("payload", json.RawMessage{}),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Tool) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("material", Material.Type).
			Ref("tools").
			Unique().
			Required(),
	}
}
