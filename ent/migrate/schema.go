// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChunksColumns holds the columns for the "chunks" table.
	ChunksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "index", Type: field.TypeInt},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "content_hash", Type: field.TypeString},
		{Name: "embedding", Type: field.TypeJSON, Nullable: true},
		{Name: "material_chunks", Type: field.TypeInt},
	}
	// ChunksTable holds the schema information for the "chunks" table.
	ChunksTable = &schema.Table{
		Name:       "chunks",
		Columns:    ChunksColumns,
		PrimaryKey: []*schema.Column{ChunksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chunks_materials_chunks",
				Columns:    []*schema.Column{ChunksColumns[5]},
				RefColumns: []*schema.Column{MaterialsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chunk_content_hash",
				Unique:  false,
				Columns: []*schema.Column{ChunksColumns[3]},
			},
		},
	}
	// MaterialsColumns holds the columns for the "materials" table.
	MaterialsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "storage_url", Type: field.TypeString},
		{Name: "raw_text", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_materials", Type: field.TypeUUID},
	}
	// MaterialsTable holds the schema information for the "materials" table.
	MaterialsTable = &schema.Table{
		Name:       "materials",
		Columns:    MaterialsColumns,
		PrimaryKey: []*schema.Column{MaterialsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "materials_users_materials",
				Columns:    []*schema.Column{MaterialsColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ToolsColumns holds the columns for the "tools" table.
	ToolsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tool_type", Type: field.TypeEnum, Enums: []string{"flashcards", "feynman_feedback"}},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "material_tools", Type: field.TypeInt},
	}
	// ToolsTable holds the schema information for the "tools" table.
	ToolsTable = &schema.Table{
		Name:       "tools",
		Columns:    ToolsColumns,
		PrimaryKey: []*schema.Column{ToolsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tools_materials_tools",
				Columns:    []*schema.Column{ToolsColumns[4]},
				RefColumns: []*schema.Column{MaterialsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChunksTable,
		MaterialsTable,
		ToolsTable,
		UsersTable,
	}
)

func init() {
	ChunksTable.ForeignKeys[0].RefTable = MaterialsTable
	MaterialsTable.ForeignKeys[0].RefTable = UsersTable
	ToolsTable.ForeignKeys[0].RefTable = MaterialsTable
}
