// Code generated by ent, DO NOT EDIT.

package tool

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the tool type in the database.
	Label = "tool"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldToolType holds the string denoting the tool_type field in the database.
	FieldToolType = "tool_type"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeMaterial holds the string denoting the material edge name in mutations.
	EdgeMaterial = "material"
	// Table holds the table name of the tool in the database.
	Table = "tools"
	// MaterialTable is the table that holds the material relation/edge.
	MaterialTable = "tools"
	// MaterialInverseTable is the table name for the Material entity.
	// It exists in this package in order to avoid circular dependency with the "material" package.
	MaterialInverseTable = "materials"
	// MaterialColumn is the table column denoting the material relation/edge.
	MaterialColumn = "material_tools"
)

// Columns holds all SQL columns for tool fields.
var Columns = []string{
	FieldID,
	FieldToolType,
	FieldPayload,
	FieldCreatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "tools"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"material_tools",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// ToolType defines the type for the "tool_type" enum field.
type ToolType string

// ToolType values.
const (
	ToolTypeFlashcards      ToolType = "flashcards"
	ToolTypeFeynmanFeedback ToolType = "feynman_feedback"
)

func (tt ToolType) String() string {
	return string(tt)
}

// ToolTypeValidator is a validator for the "tool_type" field enum values. It is called by the builders before save.
func ToolTypeValidator(tt ToolType) error {
	switch tt {
	case ToolTypeFlashcards, ToolTypeFeynmanFeedback:
		return nil
	default:
		return fmt.Errorf("tool: invalid enum value for tool_type field: %q", tt)
	}
}

// OrderOption defines the ordering options for the Tool queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByToolType orders the results by the tool_type field.
func ByToolType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolType, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByMaterialField orders the results by material field.
func ByMaterialField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMaterialStep(), sql.OrderByField(field, opts...))
	}
}
func newMaterialStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MaterialInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MaterialTable, MaterialColumn),
	)
}
