// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"study-rag/ent/material"
	"study-rag/ent/predicate"
	"study-rag/ent/tool"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
)

// ToolUpdate is the builder for updating Tool entities.
type ToolUpdate struct {
	config
	hooks    []Hook
	mutation *ToolMutation
}

// Where appends a list predicates to the ToolUpdate builder.
func (_u *ToolUpdate) Where(ps ...predicate.Tool) *ToolUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetToolType sets the "tool_type" field.
func (_u *ToolUpdate) SetToolType(v tool.ToolType) *ToolUpdate {
	_u.mutation.SetToolType(v)
	return _u
}

// SetNillableToolType sets the "tool_type" field if the given value is not nil.
func (_u *ToolUpdate) SetNillableToolType(v *tool.ToolType) *ToolUpdate {
	if v != nil {
		_u.SetToolType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ToolUpdate) SetPayload(v json.RawMessage) *ToolUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *ToolUpdate) AppendPayload(v json.RawMessage) *ToolUpdate {
	_u.mutation.AppendPayload(v)
	return _u
}

// SetMaterialID sets the "material" edge to the Material entity by ID.
func (_u *ToolUpdate) SetMaterialID(id int) *ToolUpdate {
	_u.mutation.SetMaterialID(id)
	return _u
}

// SetMaterial sets the "material" edge to the Material entity.
func (_u *ToolUpdate) SetMaterial(v *Material) *ToolUpdate {
	return _u.SetMaterialID(v.ID)
}

// Mutation returns the ToolMutation object of the builder.
func (_u *ToolUpdate) Mutation() *ToolMutation {
	return _u.mutation
}

// ClearMaterial clears the "material" edge to the Material entity.
func (_u *ToolUpdate) ClearMaterial() *ToolUpdate {
	_u.mutation.ClearMaterial()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ToolUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ToolUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolUpdate) check() error {
	if v, ok := _u.mutation.ToolType(); ok {
		if err := tool.ToolTypeValidator(v); err != nil {
			return &ValidationError{Name: "tool_type", err: fmt.Errorf(`ent: validator failed for field "Tool.tool_type": %w`, err)}
		}
	}
	if _u.mutation.MaterialCleared() && len(_u.mutation.MaterialIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Tool.material"`)
	}
	return nil
}

func (_u *ToolUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tool.Table, tool.Columns, sqlgraph.NewFieldSpec(tool.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ToolType(); ok {
		_spec.SetField(tool.FieldToolType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(tool.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tool.FieldPayload, value)
		})
	}
	if _u.mutation.MaterialCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tool.MaterialTable,
			Columns: []string{tool.MaterialColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(material.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MaterialIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tool.MaterialTable,
			Columns: []string{tool.MaterialColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(material.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tool.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ToolUpdateOne is the builder for updating a single Tool entity.
type ToolUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ToolMutation
}

// SetToolType sets the "tool_type" field.
func (_u *ToolUpdateOne) SetToolType(v tool.ToolType) *ToolUpdateOne {
	_u.mutation.SetToolType(v)
	return _u
}

// SetNillableToolType sets the "tool_type" field if the given value is not nil.
func (_u *ToolUpdateOne) SetNillableToolType(v *tool.ToolType) *ToolUpdateOne {
	if v != nil {
		_u.SetToolType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ToolUpdateOne) SetPayload(v json.RawMessage) *ToolUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *ToolUpdateOne) AppendPayload(v json.RawMessage) *ToolUpdateOne {
	_u.mutation.AppendPayload(v)
	return _u
}

// SetMaterialID sets the "material" edge to the Material entity by ID.
func (_u *ToolUpdateOne) SetMaterialID(id int) *ToolUpdateOne {
	_u.mutation.SetMaterialID(id)
	return _u
}

// SetMaterial sets the "material" edge to the Material entity.
func (_u *ToolUpdateOne) SetMaterial(v *Material) *ToolUpdateOne {
	return _u.SetMaterialID(v.ID)
}

// Mutation returns the ToolMutation object of the builder.
func (_u *ToolUpdateOne) Mutation() *ToolMutation {
	return _u.mutation
}

// ClearMaterial clears the "material" edge to the Material entity.
func (_u *ToolUpdateOne) ClearMaterial() *ToolUpdateOne {
	_u.mutation.ClearMaterial()
	return _u
}

// Where appends a list predicates to the ToolUpdate builder.
func (_u *ToolUpdateOne) Where(ps ...predicate.Tool) *ToolUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ToolUpdateOne) Select(field string, fields ...string) *ToolUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Tool entity.
func (_u *ToolUpdateOne) Save(ctx context.Context) (*Tool, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolUpdateOne) SaveX(ctx context.Context) *Tool {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ToolUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolUpdateOne) check() error {
	if v, ok := _u.mutation.ToolType(); ok {
		if err := tool.ToolTypeValidator(v); err != nil {
			return &ValidationError{Name: "tool_type", err: fmt.Errorf(`ent: validator failed for field "Tool.tool_type": %w`, err)}
		}
	}
	if _u.mutation.MaterialCleared() && len(_u.mutation.MaterialIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Tool.material"`)
	}
	return nil
}

func (_u *ToolUpdateOne) sqlSave(ctx context.Context) (_node *Tool, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tool.Table, tool.Columns, sqlgraph.NewFieldSpec(tool.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Tool.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tool.FieldID)
		for _, f := range fields {
			if !tool.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tool.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ToolType(); ok {
		_spec.SetField(tool.FieldToolType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(tool.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tool.FieldPayload, value)
		})
	}
	if _u.mutation.MaterialCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tool.MaterialTable,
			Columns: []string{tool.MaterialColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(material.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MaterialIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tool.MaterialTable,
			Columns: []string{tool.MaterialColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(material.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Tool{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tool.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
