// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"study-rag/ent/material"
	"study-rag/ent/user"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Material is the model entity for the Material schema.
type Material struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// StorageURL holds the value of the "storage_url" field.
	StorageURL string `json:"storage_url,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText string `json:"raw_text,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MaterialQuery when eager-loading is set.
	Edges          MaterialEdges `json:"edges"`
	user_materials *uuid.UUID
	selectValues   sql.SelectValues
}

// MaterialEdges holds the relations/edges for other nodes in the graph.
type MaterialEdges struct {
	// Owner holds the value of the owner edge.
	Owner *User `json:"owner,omitempty"`
	// Chunks holds the value of the chunks edge.
	Chunks []*Chunk `json:"chunks,omitempty"`
	// Tools holds the value of the tools edge.
	Tools []*Tool `json:"tools,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// OwnerOrErr returns the Owner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MaterialEdges) OwnerOrErr() (*User, error) {
	if e.Owner != nil {
		return e.Owner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "owner"}
}

// ChunksOrErr returns the Chunks value or an error if the edge
// was not loaded in eager-loading.
func (e MaterialEdges) ChunksOrErr() ([]*Chunk, error) {
	if e.loadedTypes[1] {
		return e.Chunks, nil
	}
	return nil, &NotLoadedError{edge: "chunks"}
}

// ToolsOrErr returns the Tools value or an error if the edge
// was not loaded in eager-loading.
func (e MaterialEdges) ToolsOrErr() ([]*Tool, error) {
	if e.loadedTypes[2] {
		return e.Tools, nil
	}
	return nil, &NotLoadedError{edge: "tools"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Material) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case material.FieldID:
			values[i] = new(sql.NullInt64)
		case material.FieldTitle, material.FieldStorageURL, material.FieldRawText:
			values[i] = new(sql.NullString)
		case material.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case material.ForeignKeys[0]: // user_materials
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Material fields.
func (_m *Material) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case material.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case material.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case material.FieldStorageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_url", values[i])
			} else if value.Valid {
				_m.StorageURL = value.String
			}
		case material.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = value.String
			}
		case material.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case material.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field user_materials", values[i])
			} else if value.Valid {
				_m.user_materials = new(uuid.UUID)
				*_m.user_materials = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Material.
// This includes values selected through modifiers, order, etc.
func (_m *Material) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOwner queries the "owner" edge of the Material entity.
func (_m *Material) QueryOwner() *UserQuery {
	return NewMaterialClient(_m.config).QueryOwner(_m)
}

// QueryChunks queries the "chunks" edge of the Material entity.
func (_m *Material) QueryChunks() *ChunkQuery {
	return NewMaterialClient(_m.config).QueryChunks(_m)
}

// QueryTools queries the "tools" edge of the Material entity.
func (_m *Material) QueryTools() *ToolQuery {
	return NewMaterialClient(_m.config).QueryTools(_m)
}

// Update returns a builder for updating this Material.
// Note that you need to call Material.Unwrap() before calling this method if this Material
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Material) Update() *MaterialUpdateOne {
	return NewMaterialClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Material entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Material) Unwrap() *Material {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Material is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Material) String() string {
	var builder strings.Builder
	builder.WriteString("Material(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("storage_url=")
	builder.WriteString(_m.StorageURL)
	builder.WriteString(", ")
	builder.WriteString("raw_text=")
	builder.WriteString(_m.RawText)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Materials is a parsable slice of Material.
type Materials []*Material
