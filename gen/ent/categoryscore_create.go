// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/categoryscore"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/document"
)

// CategoryScoreCreate is the builder for creating a CategoryScore entity.
type CategoryScoreCreate struct {
	config
	mutation *CategoryScoreMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *CategoryScoreCreate) SetDocumentID(v uuid.UUID) *CategoryScoreCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *CategoryScoreCreate) SetCategory(v string) *CategoryScoreCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetModelScore sets the "model_score" field.
func (_c *CategoryScoreCreate) SetModelScore(v float64) *CategoryScoreCreate {
	_c.mutation.SetModelScore(v)
	return _c
}

// SetKeywordScore sets the "keyword_score" field.
func (_c *CategoryScoreCreate) SetKeywordScore(v float64) *CategoryScoreCreate {
	_c.mutation.SetKeywordScore(v)
	return _c
}

// SetSimilarityScore sets the "similarity_score" field.
func (_c *CategoryScoreCreate) SetSimilarityScore(v float64) *CategoryScoreCreate {
	_c.mutation.SetSimilarityScore(v)
	return _c
}

// SetFinalScore sets the "final_score" field.
func (_c *CategoryScoreCreate) SetFinalScore(v float64) *CategoryScoreCreate {
	_c.mutation.SetFinalScore(v)
	return _c
}

// SetID sets the "id" field.
func (_c *CategoryScoreCreate) SetID(v uuid.UUID) *CategoryScoreCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CategoryScoreCreate) SetNillableID(v *uuid.UUID) *CategoryScoreCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *CategoryScoreCreate) SetDocument(v *Document) *CategoryScoreCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the CategoryScoreMutation object of the builder.
func (_c *CategoryScoreCreate) Mutation() *CategoryScoreMutation {
	return _c.mutation
}

// Save creates the CategoryScore in the database.
func (_c *CategoryScoreCreate) Save(ctx context.Context) (*CategoryScore, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CategoryScoreCreate) SaveX(ctx context.Context) *CategoryScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CategoryScoreCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CategoryScoreCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CategoryScoreCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := categoryscore.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CategoryScoreCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "CategoryScore.document_id"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "CategoryScore.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := categoryscore.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "CategoryScore.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModelScore(); !ok {
		return &ValidationError{Name: "model_score", err: errors.New(`ent: missing required field "CategoryScore.model_score"`)}
	}
	if _, ok := _c.mutation.KeywordScore(); !ok {
		return &ValidationError{Name: "keyword_score", err: errors.New(`ent: missing required field "CategoryScore.keyword_score"`)}
	}
	if _, ok := _c.mutation.SimilarityScore(); !ok {
		return &ValidationError{Name: "similarity_score", err: errors.New(`ent: missing required field "CategoryScore.similarity_score"`)}
	}
	if _, ok := _c.mutation.FinalScore(); !ok {
		return &ValidationError{Name: "final_score", err: errors.New(`ent: missing required field "CategoryScore.final_score"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "CategoryScore.document"`)}
	}
	return nil
}

func (_c *CategoryScoreCreate) sqlSave(ctx context.Context) (*CategoryScore, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CategoryScoreCreate) createSpec() (*CategoryScore, *sqlgraph.CreateSpec) {
	var (
		_node = &CategoryScore{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(categoryscore.Table, sqlgraph.NewFieldSpec(categoryscore.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(categoryscore.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.ModelScore(); ok {
		_spec.SetField(categoryscore.FieldModelScore, field.TypeFloat64, value)
		_node.ModelScore = value
	}
	if value, ok := _c.mutation.KeywordScore(); ok {
		_spec.SetField(categoryscore.FieldKeywordScore, field.TypeFloat64, value)
		_node.KeywordScore = value
	}
	if value, ok := _c.mutation.SimilarityScore(); ok {
		_spec.SetField(categoryscore.FieldSimilarityScore, field.TypeFloat64, value)
		_node.SimilarityScore = value
	}
	if value, ok := _c.mutation.FinalScore(); ok {
		_spec.SetField(categoryscore.FieldFinalScore, field.TypeFloat64, value)
		_node.FinalScore = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CategoryScoreCreateBulk is the builder for creating many CategoryScore entities in bulk.
type CategoryScoreCreateBulk struct {
	config
	err      error
	builders []*CategoryScoreCreate
}

// Save creates the CategoryScore entities in the database.
func (_c *CategoryScoreCreateBulk) Save(ctx context.Context) ([]*CategoryScore, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CategoryScore, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CategoryScoreMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CategoryScoreCreateBulk) SaveX(ctx context.Context) []*CategoryScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CategoryScoreCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CategoryScoreCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
