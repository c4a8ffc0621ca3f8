// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/categoryscore"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/document"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/keyfinding"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/keyword"
)

// DocumentCreate is the builder for creating a Document entity.
type DocumentCreate struct {
	config
	mutation *DocumentMutation
	hooks    []Hook
}

// SetSourceFile sets the "source_file" field.
func (_c *DocumentCreate) SetSourceFile(v string) *DocumentCreate {
	_c.mutation.SetSourceFile(v)
	return _c
}

// SetSourcePath sets the "source_path" field.
func (_c *DocumentCreate) SetSourcePath(v string) *DocumentCreate {
	_c.mutation.SetSourcePath(v)
	return _c
}

// SetFileFormat sets the "file_format" field.
func (_c *DocumentCreate) SetFileFormat(v string) *DocumentCreate {
	_c.mutation.SetFileFormat(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *DocumentCreate) SetContentHash(v string) *DocumentCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetDerivedName sets the "derived_name" field.
func (_c *DocumentCreate) SetDerivedName(v string) *DocumentCreate {
	_c.mutation.SetDerivedName(v)
	return _c
}

// SetNillableDerivedName sets the "derived_name" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableDerivedName(v *string) *DocumentCreate {
	if v != nil {
		_c.SetDerivedName(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *DocumentCreate) SetTitle(v string) *DocumentCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableTitle(v *string) *DocumentCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetAuthors sets the "authors" field.
func (_c *DocumentCreate) SetAuthors(v string) *DocumentCreate {
	_c.mutation.SetAuthors(v)
	return _c
}

// SetNillableAuthors sets the "authors" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableAuthors(v *string) *DocumentCreate {
	if v != nil {
		_c.SetAuthors(*v)
	}
	return _c
}

// SetYearPublished sets the "year_published" field.
func (_c *DocumentCreate) SetYearPublished(v string) *DocumentCreate {
	_c.mutation.SetYearPublished(v)
	return _c
}

// SetNillableYearPublished sets the "year_published" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableYearPublished(v *string) *DocumentCreate {
	if v != nil {
		_c.SetYearPublished(*v)
	}
	return _c
}

// SetJournal sets the "journal" field.
func (_c *DocumentCreate) SetJournal(v string) *DocumentCreate {
	_c.mutation.SetJournal(v)
	return _c
}

// SetNillableJournal sets the "journal" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableJournal(v *string) *DocumentCreate {
	if v != nil {
		_c.SetJournal(*v)
	}
	return _c
}

// SetBibtexCitation sets the "bibtex_citation" field.
func (_c *DocumentCreate) SetBibtexCitation(v string) *DocumentCreate {
	_c.mutation.SetBibtexCitation(v)
	return _c
}

// SetNillableBibtexCitation sets the "bibtex_citation" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableBibtexCitation(v *string) *DocumentCreate {
	if v != nil {
		_c.SetBibtexCitation(*v)
	}
	return _c
}

// SetDocType sets the "doc_type" field.
func (_c *DocumentCreate) SetDocType(v string) *DocumentCreate {
	_c.mutation.SetDocType(v)
	return _c
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableDocType(v *string) *DocumentCreate {
	if v != nil {
		_c.SetDocType(*v)
	}
	return _c
}

// SetSampleSize sets the "sample_size" field.
func (_c *DocumentCreate) SetSampleSize(v string) *DocumentCreate {
	_c.mutation.SetSampleSize(v)
	return _c
}

// SetNillableSampleSize sets the "sample_size" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableSampleSize(v *string) *DocumentCreate {
	if v != nil {
		_c.SetSampleSize(*v)
	}
	return _c
}

// SetMethod sets the "method" field.
func (_c *DocumentCreate) SetMethod(v string) *DocumentCreate {
	_c.mutation.SetMethod(v)
	return _c
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableMethod(v *string) *DocumentCreate {
	if v != nil {
		_c.SetMethod(*v)
	}
	return _c
}

// SetPredictionModel sets the "prediction_model" field.
func (_c *DocumentCreate) SetPredictionModel(v string) *DocumentCreate {
	_c.mutation.SetPredictionModel(v)
	return _c
}

// SetNillablePredictionModel sets the "prediction_model" field if the given value is not nil.
func (_c *DocumentCreate) SetNillablePredictionModel(v *string) *DocumentCreate {
	if v != nil {
		_c.SetPredictionModel(*v)
	}
	return _c
}

// SetKeyTakeaways sets the "key_takeaways" field.
func (_c *DocumentCreate) SetKeyTakeaways(v string) *DocumentCreate {
	_c.mutation.SetKeyTakeaways(v)
	return _c
}

// SetNillableKeyTakeaways sets the "key_takeaways" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableKeyTakeaways(v *string) *DocumentCreate {
	if v != nil {
		_c.SetKeyTakeaways(*v)
	}
	return _c
}

// SetCategories sets the "categories" field.
func (_c *DocumentCreate) SetCategories(v []string) *DocumentCreate {
	_c.mutation.SetCategories(v)
	return _c
}

// SetSummaryKind sets the "summary_kind" field.
func (_c *DocumentCreate) SetSummaryKind(v document.SummaryKind) *DocumentCreate {
	_c.mutation.SetSummaryKind(v)
	return _c
}

// SetRawSummary sets the "raw_summary" field.
func (_c *DocumentCreate) SetRawSummary(v string) *DocumentCreate {
	_c.mutation.SetRawSummary(v)
	return _c
}

// SetNillableRawSummary sets the "raw_summary" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableRawSummary(v *string) *DocumentCreate {
	if v != nil {
		_c.SetRawSummary(*v)
	}
	return _c
}

// SetPrimaryCategory sets the "primary_category" field.
func (_c *DocumentCreate) SetPrimaryCategory(v string) *DocumentCreate {
	_c.mutation.SetPrimaryCategory(v)
	return _c
}

// SetWordCount sets the "word_count" field.
func (_c *DocumentCreate) SetWordCount(v int) *DocumentCreate {
	_c.mutation.SetWordCount(v)
	return _c
}

// SetPageCount sets the "page_count" field.
func (_c *DocumentCreate) SetPageCount(v int) *DocumentCreate {
	_c.mutation.SetPageCount(v)
	return _c
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_c *DocumentCreate) SetNillablePageCount(v *int) *DocumentCreate {
	if v != nil {
		_c.SetPageCount(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *DocumentCreate) SetProcessedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentCreate) SetCreatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableCreatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DocumentCreate) SetUpdatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableUpdatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentCreate) SetID(v uuid.UUID) *DocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableID(v *uuid.UUID) *DocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddKeywordIDs adds the "keywords" edge to the Keyword entity by IDs.
func (_c *DocumentCreate) AddKeywordIDs(ids ...uuid.UUID) *DocumentCreate {
	_c.mutation.AddKeywordIDs(ids...)
	return _c
}

// AddKeywords adds the "keywords" edges to the Keyword entity.
func (_c *DocumentCreate) AddKeywords(v ...*Keyword) *DocumentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddKeywordIDs(ids...)
}

// AddScoreIDs adds the "scores" edge to the CategoryScore entity by IDs.
func (_c *DocumentCreate) AddScoreIDs(ids ...uuid.UUID) *DocumentCreate {
	_c.mutation.AddScoreIDs(ids...)
	return _c
}

// AddScores adds the "scores" edges to the CategoryScore entity.
func (_c *DocumentCreate) AddScores(v ...*CategoryScore) *DocumentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddScoreIDs(ids...)
}

// AddFindingIDs adds the "findings" edge to the KeyFinding entity by IDs.
func (_c *DocumentCreate) AddFindingIDs(ids ...uuid.UUID) *DocumentCreate {
	_c.mutation.AddFindingIDs(ids...)
	return _c
}

// AddFindings adds the "findings" edges to the KeyFinding entity.
func (_c *DocumentCreate) AddFindings(v ...*KeyFinding) *DocumentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFindingIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_c *DocumentCreate) Mutation() *DocumentMutation {
	return _c.mutation
}

// Save creates the Document in the database.
func (_c *DocumentCreate) Save(ctx context.Context) (*Document, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentCreate) SaveX(ctx context.Context) *Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := document.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := document.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := document.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentCreate) check() error {
	if _, ok := _c.mutation.SourceFile(); !ok {
		return &ValidationError{Name: "source_file", err: errors.New(`ent: missing required field "Document.source_file"`)}
	}
	if v, ok := _c.mutation.SourceFile(); ok {
		if err := document.SourceFileValidator(v); err != nil {
			return &ValidationError{Name: "source_file", err: fmt.Errorf(`ent: validator failed for field "Document.source_file": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourcePath(); !ok {
		return &ValidationError{Name: "source_path", err: errors.New(`ent: missing required field "Document.source_path"`)}
	}
	if v, ok := _c.mutation.SourcePath(); ok {
		if err := document.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Document.source_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileFormat(); !ok {
		return &ValidationError{Name: "file_format", err: errors.New(`ent: missing required field "Document.file_format"`)}
	}
	if v, ok := _c.mutation.FileFormat(); ok {
		if err := document.FileFormatValidator(v); err != nil {
			return &ValidationError{Name: "file_format", err: fmt.Errorf(`ent: validator failed for field "Document.file_format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "Document.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := document.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Document.content_hash": %w`, err)}
		}
	}
	if v, ok := _c.mutation.YearPublished(); ok {
		if err := document.YearPublishedValidator(v); err != nil {
			return &ValidationError{Name: "year_published", err: fmt.Errorf(`ent: validator failed for field "Document.year_published": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PredictionModel(); ok {
		if err := document.PredictionModelValidator(v); err != nil {
			return &ValidationError{Name: "prediction_model", err: fmt.Errorf(`ent: validator failed for field "Document.prediction_model": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SummaryKind(); !ok {
		return &ValidationError{Name: "summary_kind", err: errors.New(`ent: missing required field "Document.summary_kind"`)}
	}
	if v, ok := _c.mutation.SummaryKind(); ok {
		if err := document.SummaryKindValidator(v); err != nil {
			return &ValidationError{Name: "summary_kind", err: fmt.Errorf(`ent: validator failed for field "Document.summary_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PrimaryCategory(); !ok {
		return &ValidationError{Name: "primary_category", err: errors.New(`ent: missing required field "Document.primary_category"`)}
	}
	if v, ok := _c.mutation.PrimaryCategory(); ok {
		if err := document.PrimaryCategoryValidator(v); err != nil {
			return &ValidationError{Name: "primary_category", err: fmt.Errorf(`ent: validator failed for field "Document.primary_category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WordCount(); !ok {
		return &ValidationError{Name: "word_count", err: errors.New(`ent: missing required field "Document.word_count"`)}
	}
	if v, ok := _c.mutation.WordCount(); ok {
		if err := document.WordCountValidator(v); err != nil {
			return &ValidationError{Name: "word_count", err: fmt.Errorf(`ent: validator failed for field "Document.word_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessedAt(); !ok {
		return &ValidationError{Name: "processed_at", err: errors.New(`ent: missing required field "Document.processed_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Document.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Document.updated_at"`)}
	}
	return nil
}

func (_c *DocumentCreate) sqlSave(ctx context.Context) (*Document, error) {
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

func (_c *DocumentCreate) createSpec() (*Document, *sqlgraph.CreateSpec) {
	var (
		_node = &Document{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(document.Table, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SourceFile(); ok {
		_spec.SetField(document.FieldSourceFile, field.TypeString, value)
		_node.SourceFile = value
	}
	if value, ok := _c.mutation.SourcePath(); ok {
		_spec.SetField(document.FieldSourcePath, field.TypeString, value)
		_node.SourcePath = value
	}
	if value, ok := _c.mutation.FileFormat(); ok {
		_spec.SetField(document.FieldFileFormat, field.TypeString, value)
		_node.FileFormat = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.DerivedName(); ok {
		_spec.SetField(document.FieldDerivedName, field.TypeString, value)
		_node.DerivedName = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(document.FieldTitle, field.TypeString, value)
		_node.Title = &value
	}
	if value, ok := _c.mutation.Authors(); ok {
		_spec.SetField(document.FieldAuthors, field.TypeString, value)
		_node.Authors = &value
	}
	if value, ok := _c.mutation.YearPublished(); ok {
		_spec.SetField(document.FieldYearPublished, field.TypeString, value)
		_node.YearPublished = &value
	}
	if value, ok := _c.mutation.Journal(); ok {
		_spec.SetField(document.FieldJournal, field.TypeString, value)
		_node.Journal = &value
	}
	if value, ok := _c.mutation.BibtexCitation(); ok {
		_spec.SetField(document.FieldBibtexCitation, field.TypeString, value)
		_node.BibtexCitation = &value
	}
	if value, ok := _c.mutation.DocType(); ok {
		_spec.SetField(document.FieldDocType, field.TypeString, value)
		_node.DocType = &value
	}
	if value, ok := _c.mutation.SampleSize(); ok {
		_spec.SetField(document.FieldSampleSize, field.TypeString, value)
		_node.SampleSize = &value
	}
	if value, ok := _c.mutation.Method(); ok {
		_spec.SetField(document.FieldMethod, field.TypeString, value)
		_node.Method = &value
	}
	if value, ok := _c.mutation.PredictionModel(); ok {
		_spec.SetField(document.FieldPredictionModel, field.TypeString, value)
		_node.PredictionModel = &value
	}
	if value, ok := _c.mutation.KeyTakeaways(); ok {
		_spec.SetField(document.FieldKeyTakeaways, field.TypeString, value)
		_node.KeyTakeaways = &value
	}
	if value, ok := _c.mutation.Categories(); ok {
		_spec.SetField(document.FieldCategories, field.TypeJSON, value)
		_node.Categories = value
	}
	if value, ok := _c.mutation.SummaryKind(); ok {
		_spec.SetField(document.FieldSummaryKind, field.TypeEnum, value)
		_node.SummaryKind = value
	}
	if value, ok := _c.mutation.RawSummary(); ok {
		_spec.SetField(document.FieldRawSummary, field.TypeString, value)
		_node.RawSummary = &value
	}
	if value, ok := _c.mutation.PrimaryCategory(); ok {
		_spec.SetField(document.FieldPrimaryCategory, field.TypeString, value)
		_node.PrimaryCategory = value
	}
	if value, ok := _c.mutation.WordCount(); ok {
		_spec.SetField(document.FieldWordCount, field.TypeInt, value)
		_node.WordCount = value
	}
	if value, ok := _c.mutation.PageCount(); ok {
		_spec.SetField(document.FieldPageCount, field.TypeInt, value)
		_node.PageCount = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(document.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.KeywordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.KeywordsTable,
			Columns: []string{document.KeywordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(keyword.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ScoresIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ScoresTable,
			Columns: []string{document.ScoresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(categoryscore.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FindingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.FindingsTable,
			Columns: []string{document.FindingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(keyfinding.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DocumentCreateBulk is the builder for creating many Document entities in bulk.
type DocumentCreateBulk struct {
	config
	err      error
	builders []*DocumentCreate
}

// Save creates the Document entities in the database.
func (_c *DocumentCreateBulk) Save(ctx context.Context) ([]*Document, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Document, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentMutation)
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
func (_c *DocumentCreateBulk) SaveX(ctx context.Context) []*Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
