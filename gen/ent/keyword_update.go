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
	"github.com/jsuh-911/pdf-summarizer/gen/ent/keyword"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/predicate"
)

// KeywordUpdate is the builder for updating Keyword entities.
type KeywordUpdate struct {
	config
	hooks    []Hook
	mutation *KeywordMutation
}

// Where appends a list predicates to the KeywordUpdate builder.
func (_u *KeywordUpdate) Where(ps ...predicate.Keyword) *KeywordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *KeywordUpdate) SetDocumentID(v uuid.UUID) *KeywordUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *KeywordUpdate) SetNillableDocumentID(v *uuid.UUID) *KeywordUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetTerm sets the "term" field.
func (_u *KeywordUpdate) SetTerm(v string) *KeywordUpdate {
	_u.mutation.SetTerm(v)
	return _u
}

// SetNillableTerm sets the "term" field if the given value is not nil.
func (_u *KeywordUpdate) SetNillableTerm(v *string) *KeywordUpdate {
	if v != nil {
		_u.SetTerm(*v)
	}
	return _u
}

// SetRank sets the "rank" field.
func (_u *KeywordUpdate) SetRank(v int) *KeywordUpdate {
	_u.mutation.ResetRank()
	_u.mutation.SetRank(v)
	return _u
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_u *KeywordUpdate) SetNillableRank(v *int) *KeywordUpdate {
	if v != nil {
		_u.SetRank(*v)
	}
	return _u
}

// AddRank adds value to the "rank" field.
func (_u *KeywordUpdate) AddRank(v int) *KeywordUpdate {
	_u.mutation.AddRank(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *KeywordUpdate) SetSource(v keyword.Source) *KeywordUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *KeywordUpdate) SetNillableSource(v *keyword.Source) *KeywordUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *KeywordUpdate) SetDocument(v *Document) *KeywordUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the KeywordMutation object of the builder.
func (_u *KeywordUpdate) Mutation() *KeywordMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *KeywordUpdate) ClearDocument() *KeywordUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KeywordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KeywordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KeywordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KeywordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KeywordUpdate) check() error {
	if v, ok := _u.mutation.Term(); ok {
		if err := keyword.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "Keyword.term": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rank(); ok {
		if err := keyword.RankValidator(v); err != nil {
			return &ValidationError{Name: "rank", err: fmt.Errorf(`ent: validator failed for field "Keyword.rank": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := keyword.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Keyword.source": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Keyword.document"`)
	}
	return nil
}

func (_u *KeywordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(keyword.Table, keyword.Columns, sqlgraph.NewFieldSpec(keyword.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Term(); ok {
		_spec.SetField(keyword.FieldTerm, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rank(); ok {
		_spec.SetField(keyword.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRank(); ok {
		_spec.AddField(keyword.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(keyword.FieldSource, field.TypeEnum, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   keyword.DocumentTable,
			Columns: []string{keyword.DocumentColumn},
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
			Table:   keyword.DocumentTable,
			Columns: []string{keyword.DocumentColumn},
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
			err = &NotFoundError{keyword.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KeywordUpdateOne is the builder for updating a single Keyword entity.
type KeywordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KeywordMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *KeywordUpdateOne) SetDocumentID(v uuid.UUID) *KeywordUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *KeywordUpdateOne) SetNillableDocumentID(v *uuid.UUID) *KeywordUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetTerm sets the "term" field.
func (_u *KeywordUpdateOne) SetTerm(v string) *KeywordUpdateOne {
	_u.mutation.SetTerm(v)
	return _u
}

// SetNillableTerm sets the "term" field if the given value is not nil.
func (_u *KeywordUpdateOne) SetNillableTerm(v *string) *KeywordUpdateOne {
	if v != nil {
		_u.SetTerm(*v)
	}
	return _u
}

// SetRank sets the "rank" field.
func (_u *KeywordUpdateOne) SetRank(v int) *KeywordUpdateOne {
	_u.mutation.ResetRank()
	_u.mutation.SetRank(v)
	return _u
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_u *KeywordUpdateOne) SetNillableRank(v *int) *KeywordUpdateOne {
	if v != nil {
		_u.SetRank(*v)
	}
	return _u
}

// AddRank adds value to the "rank" field.
func (_u *KeywordUpdateOne) AddRank(v int) *KeywordUpdateOne {
	_u.mutation.AddRank(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *KeywordUpdateOne) SetSource(v keyword.Source) *KeywordUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *KeywordUpdateOne) SetNillableSource(v *keyword.Source) *KeywordUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *KeywordUpdateOne) SetDocument(v *Document) *KeywordUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the KeywordMutation object of the builder.
func (_u *KeywordUpdateOne) Mutation() *KeywordMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *KeywordUpdateOne) ClearDocument() *KeywordUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the KeywordUpdate builder.
func (_u *KeywordUpdateOne) Where(ps ...predicate.Keyword) *KeywordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KeywordUpdateOne) Select(field string, fields ...string) *KeywordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Keyword entity.
func (_u *KeywordUpdateOne) Save(ctx context.Context) (*Keyword, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KeywordUpdateOne) SaveX(ctx context.Context) *Keyword {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KeywordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KeywordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KeywordUpdateOne) check() error {
	if v, ok := _u.mutation.Term(); ok {
		if err := keyword.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "Keyword.term": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rank(); ok {
		if err := keyword.RankValidator(v); err != nil {
			return &ValidationError{Name: "rank", err: fmt.Errorf(`ent: validator failed for field "Keyword.rank": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := keyword.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Keyword.source": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Keyword.document"`)
	}
	return nil
}

func (_u *KeywordUpdateOne) sqlSave(ctx context.Context) (_node *Keyword, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(keyword.Table, keyword.Columns, sqlgraph.NewFieldSpec(keyword.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Keyword.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, keyword.FieldID)
		for _, f := range fields {
			if !keyword.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != keyword.FieldID {
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
	if value, ok := _u.mutation.Term(); ok {
		_spec.SetField(keyword.FieldTerm, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rank(); ok {
		_spec.SetField(keyword.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRank(); ok {
		_spec.AddField(keyword.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(keyword.FieldSource, field.TypeEnum, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   keyword.DocumentTable,
			Columns: []string{keyword.DocumentColumn},
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
			Table:   keyword.DocumentTable,
			Columns: []string{keyword.DocumentColumn},
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
	_node = &Keyword{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{keyword.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
