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
	"github.com/jsuh-911/pdf-summarizer/gen/ent/categoryscore"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/document"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/predicate"
)

// CategoryScoreUpdate is the builder for updating CategoryScore entities.
type CategoryScoreUpdate struct {
	config
	hooks    []Hook
	mutation *CategoryScoreMutation
}

// Where appends a list predicates to the CategoryScoreUpdate builder.
func (_u *CategoryScoreUpdate) Where(ps ...predicate.CategoryScore) *CategoryScoreUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *CategoryScoreUpdate) SetDocumentID(v uuid.UUID) *CategoryScoreUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *CategoryScoreUpdate) SetNillableDocumentID(v *uuid.UUID) *CategoryScoreUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *CategoryScoreUpdate) SetCategory(v string) *CategoryScoreUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CategoryScoreUpdate) SetNillableCategory(v *string) *CategoryScoreUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetModelScore sets the "model_score" field.
func (_u *CategoryScoreUpdate) SetModelScore(v float64) *CategoryScoreUpdate {
	_u.mutation.ResetModelScore()
	_u.mutation.SetModelScore(v)
	return _u
}

// SetNillableModelScore sets the "model_score" field if the given value is not nil.
func (_u *CategoryScoreUpdate) SetNillableModelScore(v *float64) *CategoryScoreUpdate {
	if v != nil {
		_u.SetModelScore(*v)
	}
	return _u
}

// AddModelScore adds value to the "model_score" field.
func (_u *CategoryScoreUpdate) AddModelScore(v float64) *CategoryScoreUpdate {
	_u.mutation.AddModelScore(v)
	return _u
}

// SetKeywordScore sets the "keyword_score" field.
func (_u *CategoryScoreUpdate) SetKeywordScore(v float64) *CategoryScoreUpdate {
	_u.mutation.ResetKeywordScore()
	_u.mutation.SetKeywordScore(v)
	return _u
}

// SetNillableKeywordScore sets the "keyword_score" field if the given value is not nil.
func (_u *CategoryScoreUpdate) SetNillableKeywordScore(v *float64) *CategoryScoreUpdate {
	if v != nil {
		_u.SetKeywordScore(*v)
	}
	return _u
}

// AddKeywordScore adds value to the "keyword_score" field.
func (_u *CategoryScoreUpdate) AddKeywordScore(v float64) *CategoryScoreUpdate {
	_u.mutation.AddKeywordScore(v)
	return _u
}

// SetSimilarityScore sets the "similarity_score" field.
func (_u *CategoryScoreUpdate) SetSimilarityScore(v float64) *CategoryScoreUpdate {
	_u.mutation.ResetSimilarityScore()
	_u.mutation.SetSimilarityScore(v)
	return _u
}

// SetNillableSimilarityScore sets the "similarity_score" field if the given value is not nil.
func (_u *CategoryScoreUpdate) SetNillableSimilarityScore(v *float64) *CategoryScoreUpdate {
	if v != nil {
		_u.SetSimilarityScore(*v)
	}
	return _u
}

// AddSimilarityScore adds value to the "similarity_score" field.
func (_u *CategoryScoreUpdate) AddSimilarityScore(v float64) *CategoryScoreUpdate {
	_u.mutation.AddSimilarityScore(v)
	return _u
}

// SetFinalScore sets the "final_score" field.
func (_u *CategoryScoreUpdate) SetFinalScore(v float64) *CategoryScoreUpdate {
	_u.mutation.ResetFinalScore()
	_u.mutation.SetFinalScore(v)
	return _u
}

// SetNillableFinalScore sets the "final_score" field if the given value is not nil.
func (_u *CategoryScoreUpdate) SetNillableFinalScore(v *float64) *CategoryScoreUpdate {
	if v != nil {
		_u.SetFinalScore(*v)
	}
	return _u
}

// AddFinalScore adds value to the "final_score" field.
func (_u *CategoryScoreUpdate) AddFinalScore(v float64) *CategoryScoreUpdate {
	_u.mutation.AddFinalScore(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *CategoryScoreUpdate) SetDocument(v *Document) *CategoryScoreUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the CategoryScoreMutation object of the builder.
func (_u *CategoryScoreUpdate) Mutation() *CategoryScoreMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *CategoryScoreUpdate) ClearDocument() *CategoryScoreUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CategoryScoreUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CategoryScoreUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CategoryScoreUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CategoryScoreUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CategoryScoreUpdate) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := categoryscore.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "CategoryScore.category": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CategoryScore.document"`)
	}
	return nil
}

func (_u *CategoryScoreUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(categoryscore.Table, categoryscore.Columns, sqlgraph.NewFieldSpec(categoryscore.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(categoryscore.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelScore(); ok {
		_spec.SetField(categoryscore.FieldModelScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedModelScore(); ok {
		_spec.AddField(categoryscore.FieldModelScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.KeywordScore(); ok {
		_spec.SetField(categoryscore.FieldKeywordScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedKeywordScore(); ok {
		_spec.AddField(categoryscore.FieldKeywordScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SimilarityScore(); ok {
		_spec.SetField(categoryscore.FieldSimilarityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSimilarityScore(); ok {
		_spec.AddField(categoryscore.FieldSimilarityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FinalScore(); ok {
		_spec.SetField(categoryscore.FieldFinalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalScore(); ok {
		_spec.AddField(categoryscore.FieldFinalScore, field.TypeFloat64, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   categoryscore.DocumentTable,
			Columns: []string{categoryscore.DocumentColumn},
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
			Table:   categoryscore.DocumentTable,
			Columns: []string{categoryscore.DocumentColumn},
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
			err = &NotFoundError{categoryscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CategoryScoreUpdateOne is the builder for updating a single CategoryScore entity.
type CategoryScoreUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CategoryScoreMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *CategoryScoreUpdateOne) SetDocumentID(v uuid.UUID) *CategoryScoreUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *CategoryScoreUpdateOne) SetNillableDocumentID(v *uuid.UUID) *CategoryScoreUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *CategoryScoreUpdateOne) SetCategory(v string) *CategoryScoreUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CategoryScoreUpdateOne) SetNillableCategory(v *string) *CategoryScoreUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetModelScore sets the "model_score" field.
func (_u *CategoryScoreUpdateOne) SetModelScore(v float64) *CategoryScoreUpdateOne {
	_u.mutation.ResetModelScore()
	_u.mutation.SetModelScore(v)
	return _u
}

// SetNillableModelScore sets the "model_score" field if the given value is not nil.
func (_u *CategoryScoreUpdateOne) SetNillableModelScore(v *float64) *CategoryScoreUpdateOne {
	if v != nil {
		_u.SetModelScore(*v)
	}
	return _u
}

// AddModelScore adds value to the "model_score" field.
func (_u *CategoryScoreUpdateOne) AddModelScore(v float64) *CategoryScoreUpdateOne {
	_u.mutation.AddModelScore(v)
	return _u
}

// SetKeywordScore sets the "keyword_score" field.
func (_u *CategoryScoreUpdateOne) SetKeywordScore(v float64) *CategoryScoreUpdateOne {
	_u.mutation.ResetKeywordScore()
	_u.mutation.SetKeywordScore(v)
	return _u
}

// SetNillableKeywordScore sets the "keyword_score" field if the given value is not nil.
func (_u *CategoryScoreUpdateOne) SetNillableKeywordScore(v *float64) *CategoryScoreUpdateOne {
	if v != nil {
		_u.SetKeywordScore(*v)
	}
	return _u
}

// AddKeywordScore adds value to the "keyword_score" field.
func (_u *CategoryScoreUpdateOne) AddKeywordScore(v float64) *CategoryScoreUpdateOne {
	_u.mutation.AddKeywordScore(v)
	return _u
}

// SetSimilarityScore sets the "similarity_score" field.
func (_u *CategoryScoreUpdateOne) SetSimilarityScore(v float64) *CategoryScoreUpdateOne {
	_u.mutation.ResetSimilarityScore()
	_u.mutation.SetSimilarityScore(v)
	return _u
}

// SetNillableSimilarityScore sets the "similarity_score" field if the given value is not nil.
func (_u *CategoryScoreUpdateOne) SetNillableSimilarityScore(v *float64) *CategoryScoreUpdateOne {
	if v != nil {
		_u.SetSimilarityScore(*v)
	}
	return _u
}

// AddSimilarityScore adds value to the "similarity_score" field.
func (_u *CategoryScoreUpdateOne) AddSimilarityScore(v float64) *CategoryScoreUpdateOne {
	_u.mutation.AddSimilarityScore(v)
	return _u
}

// SetFinalScore sets the "final_score" field.
func (_u *CategoryScoreUpdateOne) SetFinalScore(v float64) *CategoryScoreUpdateOne {
	_u.mutation.ResetFinalScore()
	_u.mutation.SetFinalScore(v)
	return _u
}

// SetNillableFinalScore sets the "final_score" field if the given value is not nil.
func (_u *CategoryScoreUpdateOne) SetNillableFinalScore(v *float64) *CategoryScoreUpdateOne {
	if v != nil {
		_u.SetFinalScore(*v)
	}
	return _u
}

// AddFinalScore adds value to the "final_score" field.
func (_u *CategoryScoreUpdateOne) AddFinalScore(v float64) *CategoryScoreUpdateOne {
	_u.mutation.AddFinalScore(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *CategoryScoreUpdateOne) SetDocument(v *Document) *CategoryScoreUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the CategoryScoreMutation object of the builder.
func (_u *CategoryScoreUpdateOne) Mutation() *CategoryScoreMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *CategoryScoreUpdateOne) ClearDocument() *CategoryScoreUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the CategoryScoreUpdate builder.
func (_u *CategoryScoreUpdateOne) Where(ps ...predicate.CategoryScore) *CategoryScoreUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CategoryScoreUpdateOne) Select(field string, fields ...string) *CategoryScoreUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CategoryScore entity.
func (_u *CategoryScoreUpdateOne) Save(ctx context.Context) (*CategoryScore, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CategoryScoreUpdateOne) SaveX(ctx context.Context) *CategoryScore {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CategoryScoreUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CategoryScoreUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CategoryScoreUpdateOne) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := categoryscore.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "CategoryScore.category": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CategoryScore.document"`)
	}
	return nil
}

func (_u *CategoryScoreUpdateOne) sqlSave(ctx context.Context) (_node *CategoryScore, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(categoryscore.Table, categoryscore.Columns, sqlgraph.NewFieldSpec(categoryscore.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CategoryScore.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, categoryscore.FieldID)
		for _, f := range fields {
			if !categoryscore.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != categoryscore.FieldID {
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
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(categoryscore.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelScore(); ok {
		_spec.SetField(categoryscore.FieldModelScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedModelScore(); ok {
		_spec.AddField(categoryscore.FieldModelScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.KeywordScore(); ok {
		_spec.SetField(categoryscore.FieldKeywordScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedKeywordScore(); ok {
		_spec.AddField(categoryscore.FieldKeywordScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SimilarityScore(); ok {
		_spec.SetField(categoryscore.FieldSimilarityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSimilarityScore(); ok {
		_spec.AddField(categoryscore.FieldSimilarityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FinalScore(); ok {
		_spec.SetField(categoryscore.FieldFinalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalScore(); ok {
		_spec.AddField(categoryscore.FieldFinalScore, field.TypeFloat64, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   categoryscore.DocumentTable,
			Columns: []string{categoryscore.DocumentColumn},
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
			Table:   categoryscore.DocumentTable,
			Columns: []string{categoryscore.DocumentColumn},
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
	_node = &CategoryScore{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{categoryscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
