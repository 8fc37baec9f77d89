package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Material is one ingested source document. Created at ingest time and
// immutable thereafter.
type Material struct {
	ent.Schema
}

func (Material) Fields() []ent.Field {
	return []ent.Field{
		field.String("title"),
		field.String("storage_url"),
		field.Text("raw_text").Immutable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Material) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("materials").
			Unique().
			Required(),
		edge.To("chunks", Chunk.Type),
		edge.To("tools", Tool.Type),
	}
}
