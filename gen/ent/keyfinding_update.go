// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/document"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/keyfinding"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/predicate"
)

// KeyFindingUpdate is the builder for updating KeyFinding entities.
type KeyFindingUpdate struct {
	config
	hooks    []Hook
	mutation *KeyFindingMutation
}

// Where appends a list predicates to the KeyFindingUpdate builder.
func (_u *KeyFindingUpdate) Where(ps ...predicate.KeyFinding) *KeyFindingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *KeyFindingUpdate) SetDocumentID(v uuid.UUID) *KeyFindingUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *KeyFindingUpdate) SetNillableDocumentID(v *uuid.UUID) *KeyFindingUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *KeyFindingUpdate) SetName(v string) *KeyFindingUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *KeyFindingUpdate) SetNillableName(v *string) *KeyFindingUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *KeyFindingUpdate) SetDescription(v string) *KeyFindingUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *KeyFindingUpdate) SetNillableDescription(v *string) *KeyFindingUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *KeyFindingUpdate) SetDocument(v *Document) *KeyFindingUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the KeyFindingMutation object of the builder.
func (_u *KeyFindingUpdate) Mutation() *KeyFindingMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *KeyFindingUpdate) ClearDocument() *KeyFindingUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KeyFindingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KeyFindingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KeyFindingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KeyFindingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KeyFindingUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := keyfinding.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "KeyFinding.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := keyfinding.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "KeyFinding.description": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "KeyFinding.document"`)
	}
	return nil
}

func (_u *KeyFindingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(keyfinding.Table, keyfinding.Columns, sqlgraph.NewFieldSpec(keyfinding.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(keyfinding.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(keyfinding.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   keyfinding.DocumentTable,
			Columns: []string{keyfinding.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   keyfinding.DocumentTable,
			Columns: []string{keyfinding.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{keyfinding.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KeyFindingUpdateOne is the builder for updating a single KeyFinding entity.
type KeyFindingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KeyFindingMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *KeyFindingUpdateOne) SetDocumentID(v uuid.UUID) *KeyFindingUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *KeyFindingUpdateOne) SetNillableDocumentID(v *uuid.UUID) *KeyFindingUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *KeyFindingUpdateOne) SetName(v string) *KeyFindingUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *KeyFindingUpdateOne) SetNillableName(v *string) *KeyFindingUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *KeyFindingUpdateOne) SetDescription(v string) *KeyFindingUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *KeyFindingUpdateOne) SetNillableDescription(v *string) *KeyFindingUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *KeyFindingUpdateOne) SetDocument(v *Document) *KeyFindingUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the KeyFindingMutation object of the builder.
func (_u *KeyFindingUpdateOne) Mutation() *KeyFindingMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *KeyFindingUpdateOne) ClearDocument() *KeyFindingUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the KeyFindingUpdate builder.
func (_u *KeyFindingUpdateOne) Where(ps ...predicate.KeyFinding) *KeyFindingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KeyFindingUpdateOne) Select(field string, fields ...string) *KeyFindingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated KeyFinding entity.
func (_u *KeyFindingUpdateOne) Save(ctx context.Context) (*KeyFinding, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KeyFindingUpdateOne) SaveX(ctx context.Context) *KeyFinding {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KeyFindingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KeyFindingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KeyFindingUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := keyfinding.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "KeyFinding.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := keyfinding.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "KeyFinding.description": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "KeyFinding.document"`)
	}
	return nil
}

func (_u *KeyFindingUpdateOne) sqlSave(ctx context.Context) (_node *KeyFinding, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(keyfinding.Table, keyfinding.Columns, sqlgraph.NewFieldSpec(keyfinding.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "KeyFinding.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, keyfinding.FieldID)
		for _, f := range fields {
			if !keyfinding.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != keyfinding.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(keyfinding.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(keyfinding.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   keyfinding.DocumentTable,
			Columns: []string{keyfinding.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   keyfinding.DocumentTable,
			Columns: []string{keyfinding.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &KeyFinding{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{keyfinding.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
