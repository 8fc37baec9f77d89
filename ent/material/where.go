// Code generated by ent, DO NOT EDIT.

package material

import (
	"study-rag/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Material {
	return predicate.Material(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Material {
	return predicate.Material(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Material {
	return predicate.Material(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Material {
	return predicate.Material(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Material {
	return predicate.Material(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Material {
	return predicate.Material(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Material {
	return predicate.Material(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Material {
	return predicate.Material(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Material {
	return predicate.Material(sql.FieldLTE(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Material {
	return predicate.Material(sql.FieldEQ(FieldTitle, v))
}

// StorageURL applies equality check predicate on the "storage_url" field. It's identical to StorageURLEQ.
func StorageURL(v string) predicate.Material {
	return predicate.Material(sql.FieldEQ(FieldStorageURL, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.Material {
	return predicate.Material(sql.FieldEQ(FieldRawText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Material {
	return predicate.Material(sql.FieldEQ(FieldCreatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Material {
	return predicate.Material(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Material {
	return predicate.Material(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Material {
	return predicate.Material(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Material {
	return predicate.Material(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Material {
	return predicate.Material(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Material {
	return predicate.Material(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Material {
	return predicate.Material(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Material {
	return predicate.Material(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Material {
	return predicate.Material(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Material {
	return predicate.Material(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Material {
	return predicate.Material(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Material {
	return predicate.Material(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Material {
	return predicate.Material(sql.FieldContainsFold(FieldTitle, v))
}

// StorageURLEQ applies the EQ predicate on the "storage_url" field.
func StorageURLEQ(v string) predicate.Material {
	return predicate.Material(sql.FieldEQ(FieldStorageURL, v))
}

// StorageURLNEQ applies the NEQ predicate on the "storage_url" field.
func StorageURLNEQ(v string) predicate.Material {
	return predicate.Material(sql.FieldNEQ(FieldStorageURL, v))
}

// StorageURLIn applies the In predicate on the "storage_url" field.
func StorageURLIn(vs ...string) predicate.Material {
	return predicate.Material(sql.FieldIn(FieldStorageURL, vs...))
}

// StorageURLNotIn applies the NotIn predicate on the "storage_url" field.
func StorageURLNotIn(vs ...string) predicate.Material {
	return predicate.Material(sql.FieldNotIn(FieldStorageURL, vs...))
}

// StorageURLGT applies the GT predicate on the "storage_url" field.
func StorageURLGT(v string) predicate.Material {
	return predicate.Material(sql.FieldGT(FieldStorageURL, v))
}

// StorageURLGTE applies the GTE predicate on the "storage_url" field.
func StorageURLGTE(v string) predicate.Material {
	return predicate.Material(sql.FieldGTE(FieldStorageURL, v))
}

// StorageURLLT applies the LT predicate on the "storage_url" field.
func StorageURLLT(v string) predicate.Material {
	return predicate.Material(sql.FieldLT(FieldStorageURL, v))
}

// StorageURLLTE applies the LTE predicate on the "storage_url" field.
func StorageURLLTE(v string) predicate.Material {
	return predicate.Material(sql.FieldLTE(FieldStorageURL, v))
}

// StorageURLContains applies the Contains predicate on the "storage_url" field.
func StorageURLContains(v string) predicate.Material {
	return predicate.Material(sql.FieldContains(FieldStorageURL, v))
}

// StorageURLHasPrefix applies the HasPrefix predicate on the "storage_url" field.
func StorageURLHasPrefix(v string) predicate.Material {
	return predicate.Material(sql.FieldHasPrefix(FieldStorageURL, v))
}

// StorageURLHasSuffix applies the HasSuffix predicate on the "storage_url" field.
func StorageURLHasSuffix(v string) predicate.Material {
	return predicate.Material(sql.FieldHasSuffix(FieldStorageURL, v))
}

// StorageURLEqualFold applies the EqualFold predicate on the "storage_url" field.
func StorageURLEqualFold(v string) predicate.Material {
	return predicate.Material(sql.FieldEqualFold(FieldStorageURL, v))
}

// StorageURLContainsFold applies the ContainsFold predicate on the "storage_url" field.
func StorageURLContainsFold(v string) predicate.Material {
	return predicate.Material(sql.FieldContainsFold(FieldStorageURL, v))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.Material {
	return predicate.Material(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.Material {
	return predicate.Material(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.Material {
	return predicate.Material(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.Material {
	return predicate.Material(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.Material {
	return predicate.Material(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.Material {
	return predicate.Material(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.Material {
	return predicate.Material(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.Material {
	return predicate.Material(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.Material {
	return predicate.Material(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.Material {
	return predicate.Material(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.Material {
	return predicate.Material(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.Material {
	return predicate.Material(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.Material {
	return predicate.Material(sql.FieldContainsFold(FieldRawText, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Material {
	return predicate.Material(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Material {
	return predicate.Material(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Material {
	return predicate.Material(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Material {
	return predicate.Material(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Material {
	return predicate.Material(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Material {
	return predicate.Material(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Material {
	return predicate.Material(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Material {
	return predicate.Material(sql.FieldLTE(FieldCreatedAt, v))
}

// HasOwner applies the HasEdge predicate on the "owner" edge.
func HasOwner() predicate.Material {
	return predicate.Material(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOwnerWith applies the HasEdge predicate on the "owner" edge with a given conditions (other predicates).
func HasOwnerWith(preds ...predicate.User) predicate.Material {
	return predicate.Material(func(s *sql.Selector) {
		step := newOwnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChunks applies the HasEdge predicate on the "chunks" edge.
func HasChunks() predicate.Material {
	return predicate.Material(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChunksTable, ChunksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChunksWith applies the HasEdge predicate on the "chunks" edge with a given conditions (other predicates).
func HasChunksWith(preds ...predicate.Chunk) predicate.Material {
	return predicate.Material(func(s *sql.Selector) {
		step := newChunksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTools applies the HasEdge predicate on the "tools" edge.
func HasTools() predicate.Material {
	return predicate.Material(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ToolsTable, ToolsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasToolsWith applies the HasEdge predicate on the "tools" edge with a given conditions (other predicates).
func HasToolsWith(preds ...predicate.Tool) predicate.Material {
	return predicate.Material(func(s *sql.Selector) {
		step := newToolsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Material) predicate.Material {
	return predicate.Material(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Material) predicate.Material {
	return predicate.Material(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Material) predicate.Material {
	return predicate.Material(sql.NotPredicates(p))
}
