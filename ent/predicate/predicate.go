// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Chunk is the predicate function for chunk builders.
type Chunk func(*sql.Selector)

// Material is the predicate function for material builders.
type Material func(*sql.Selector)

// Tool is the predicate function for tool builders.
type Tool func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
