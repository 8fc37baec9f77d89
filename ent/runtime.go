// Code generated by ent, DO NOT EDIT.

package ent

import (
	"study-rag/ent/material"
	"study-rag/ent/schema"
	"study-rag/ent/tool"
	"study-rag/ent/user"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	materialFields := schema.Material{}.Fields()
	_ = materialFields
	// materialDescCreatedAt is the schema descriptor for created_at field.
	materialDescCreatedAt := materialFields[3].Descriptor()
	// material.DefaultCreatedAt holds the default value on creation for the created_at field.
	material.DefaultCreatedAt = materialDescCreatedAt.Default.(func() time.Time)
	toolFields := schema.Tool{}.Fields()
	_ = toolFields
	// toolDescCreatedAt is the schema descriptor for created_at field.
	toolDescCreatedAt := toolFields[2].Descriptor()
	// tool.DefaultCreatedAt holds the default value on creation for the created_at field.
	tool.DefaultCreatedAt = toolDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[3].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
