package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Chunk is a windowed substring of a material's normalized text. The
// embedding field starts NULL and is filled in by the backfill job, so a
// chunk has two lifecycle phases: unembedded and embedded.
type Chunk struct {
	ent.Schema
}

func (Chunk) Fields() []ent.Field {
	return []ent.Field{
		field.Int("index"),
		field.Text("content"),
		field.String("content_hash"),
		field.JSON("embedding", []float32{}).Optional(),
	}
}

func (Chunk) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("content_hash"),
	}
}

func (Chunk) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("material", Material.Type).
			Ref("chunks").
			Unique().
			Required(),
	}
}
