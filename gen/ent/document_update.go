// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/categoryscore"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/document"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/keyfinding"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/keyword"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/predicate"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceFile sets the "source_file" field.
func (_u *DocumentUpdate) SetSourceFile(v string) *DocumentUpdate {
	_u.mutation.SetSourceFile(v)
	return _u
}

// SetNillableSourceFile sets the "source_file" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSourceFile(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetSourceFile(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *DocumentUpdate) SetSourcePath(v string) *DocumentUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSourcePath(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetFileFormat sets the "file_format" field.
func (_u *DocumentUpdate) SetFileFormat(v string) *DocumentUpdate {
	_u.mutation.SetFileFormat(v)
	return _u
}

// SetNillableFileFormat sets the "file_format" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileFormat(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFileFormat(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *DocumentUpdate) SetContentHash(v string) *DocumentUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableContentHash(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetDerivedName sets the "derived_name" field.
func (_u *DocumentUpdate) SetDerivedName(v string) *DocumentUpdate {
	_u.mutation.SetDerivedName(v)
	return _u
}

// SetNillableDerivedName sets the "derived_name" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDerivedName(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetDerivedName(*v)
	}
	return _u
}

// ClearDerivedName clears the value of the "derived_name" field.
func (_u *DocumentUpdate) ClearDerivedName() *DocumentUpdate {
	_u.mutation.ClearDerivedName()
	return _u
}

// SetTitle sets the "title" field.
func (_u *DocumentUpdate) SetTitle(v string) *DocumentUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableTitle(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *DocumentUpdate) ClearTitle() *DocumentUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetAuthors sets the "authors" field.
func (_u *DocumentUpdate) SetAuthors(v string) *DocumentUpdate {
	_u.mutation.SetAuthors(v)
	return _u
}

// SetNillableAuthors sets the "authors" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableAuthors(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetAuthors(*v)
	}
	return _u
}

// ClearAuthors clears the value of the "authors" field.
func (_u *DocumentUpdate) ClearAuthors() *DocumentUpdate {
	_u.mutation.ClearAuthors()
	return _u
}

// SetYearPublished sets the "year_published" field.
func (_u *DocumentUpdate) SetYearPublished(v string) *DocumentUpdate {
	_u.mutation.SetYearPublished(v)
	return _u
}

// SetNillableYearPublished sets the "year_published" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableYearPublished(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetYearPublished(*v)
	}
	return _u
}

// ClearYearPublished clears the value of the "year_published" field.
func (_u *DocumentUpdate) ClearYearPublished() *DocumentUpdate {
	_u.mutation.ClearYearPublished()
	return _u
}

// SetJournal sets the "journal" field.
func (_u *DocumentUpdate) SetJournal(v string) *DocumentUpdate {
	_u.mutation.SetJournal(v)
	return _u
}

// SetNillableJournal sets the "journal" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableJournal(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetJournal(*v)
	}
	return _u
}

// ClearJournal clears the value of the "journal" field.
func (_u *DocumentUpdate) ClearJournal() *DocumentUpdate {
	_u.mutation.ClearJournal()
	return _u
}

// SetBibtexCitation sets the "bibtex_citation" field.
func (_u *DocumentUpdate) SetBibtexCitation(v string) *DocumentUpdate {
	_u.mutation.SetBibtexCitation(v)
	return _u
}

// SetNillableBibtexCitation sets the "bibtex_citation" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableBibtexCitation(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetBibtexCitation(*v)
	}
	return _u
}

// ClearBibtexCitation clears the value of the "bibtex_citation" field.
func (_u *DocumentUpdate) ClearBibtexCitation() *DocumentUpdate {
	_u.mutation.ClearBibtexCitation()
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *DocumentUpdate) SetDocType(v string) *DocumentUpdate {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDocType(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// ClearDocType clears the value of the "doc_type" field.
func (_u *DocumentUpdate) ClearDocType() *DocumentUpdate {
	_u.mutation.ClearDocType()
	return _u
}

// SetSampleSize sets the "sample_size" field.
func (_u *DocumentUpdate) SetSampleSize(v string) *DocumentUpdate {
	_u.mutation.SetSampleSize(v)
	return _u
}

// SetNillableSampleSize sets the "sample_size" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSampleSize(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetSampleSize(*v)
	}
	return _u
}

// ClearSampleSize clears the value of the "sample_size" field.
func (_u *DocumentUpdate) ClearSampleSize() *DocumentUpdate {
	_u.mutation.ClearSampleSize()
	return _u
}

// SetMethod sets the "method" field.
func (_u *DocumentUpdate) SetMethod(v string) *DocumentUpdate {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableMethod(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// ClearMethod clears the value of the "method" field.
func (_u *DocumentUpdate) ClearMethod() *DocumentUpdate {
	_u.mutation.ClearMethod()
	return _u
}

// SetPredictionModel sets the "prediction_model" field.
func (_u *DocumentUpdate) SetPredictionModel(v string) *DocumentUpdate {
	_u.mutation.SetPredictionModel(v)
	return _u
}

// SetNillablePredictionModel sets the "prediction_model" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillablePredictionModel(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetPredictionModel(*v)
	}
	return _u
}

// ClearPredictionModel clears the value of the "prediction_model" field.
func (_u *DocumentUpdate) ClearPredictionModel() *DocumentUpdate {
	_u.mutation.ClearPredictionModel()
	return _u
}

// SetKeyTakeaways sets the "key_takeaways" field.
func (_u *DocumentUpdate) SetKeyTakeaways(v string) *DocumentUpdate {
	_u.mutation.SetKeyTakeaways(v)
	return _u
}

// SetNillableKeyTakeaways sets the "key_takeaways" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableKeyTakeaways(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetKeyTakeaways(*v)
	}
	return _u
}

// ClearKeyTakeaways clears the value of the "key_takeaways" field.
func (_u *DocumentUpdate) ClearKeyTakeaways() *DocumentUpdate {
	_u.mutation.ClearKeyTakeaways()
	return _u
}

// SetCategories sets the "categories" field.
func (_u *DocumentUpdate) SetCategories(v []string) *DocumentUpdate {
	_u.mutation.SetCategories(v)
	return _u
}

// AppendCategories appends value to the "categories" field.
func (_u *DocumentUpdate) AppendCategories(v []string) *DocumentUpdate {
	_u.mutation.AppendCategories(v)
	return _u
}

// ClearCategories clears the value of the "categories" field.
func (_u *DocumentUpdate) ClearCategories() *DocumentUpdate {
	_u.mutation.ClearCategories()
	return _u
}

// SetSummaryKind sets the "summary_kind" field.
func (_u *DocumentUpdate) SetSummaryKind(v document.SummaryKind) *DocumentUpdate {
	_u.mutation.SetSummaryKind(v)
	return _u
}

// SetNillableSummaryKind sets the "summary_kind" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSummaryKind(v *document.SummaryKind) *DocumentUpdate {
	if v != nil {
		_u.SetSummaryKind(*v)
	}
	return _u
}

// SetRawSummary sets the "raw_summary" field.
func (_u *DocumentUpdate) SetRawSummary(v string) *DocumentUpdate {
	_u.mutation.SetRawSummary(v)
	return _u
}

// SetNillableRawSummary sets the "raw_summary" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableRawSummary(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetRawSummary(*v)
	}
	return _u
}

// ClearRawSummary clears the value of the "raw_summary" field.
func (_u *DocumentUpdate) ClearRawSummary() *DocumentUpdate {
	_u.mutation.ClearRawSummary()
	return _u
}

// SetPrimaryCategory sets the "primary_category" field.
func (_u *DocumentUpdate) SetPrimaryCategory(v string) *DocumentUpdate {
	_u.mutation.SetPrimaryCategory(v)
	return _u
}

// SetNillablePrimaryCategory sets the "primary_category" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillablePrimaryCategory(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetPrimaryCategory(*v)
	}
	return _u
}

// SetWordCount sets the "word_count" field.
func (_u *DocumentUpdate) SetWordCount(v int) *DocumentUpdate {
	_u.mutation.ResetWordCount()
	_u.mutation.SetWordCount(v)
	return _u
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableWordCount(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetWordCount(*v)
	}
	return _u
}

// AddWordCount adds value to the "word_count" field.
func (_u *DocumentUpdate) AddWordCount(v int) *DocumentUpdate {
	_u.mutation.AddWordCount(v)
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *DocumentUpdate) SetPageCount(v int) *DocumentUpdate {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillablePageCount(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *DocumentUpdate) AddPageCount(v int) *DocumentUpdate {
	_u.mutation.AddPageCount(v)
	return _u
}

// ClearPageCount clears the value of the "page_count" field.
func (_u *DocumentUpdate) ClearPageCount() *DocumentUpdate {
	_u.mutation.ClearPageCount()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *DocumentUpdate) SetProcessedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableProcessedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentUpdate) SetCreatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCreatedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdate) SetUpdatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddKeywordIDs adds the "keywords" edge to the Keyword entity by IDs.
func (_u *DocumentUpdate) AddKeywordIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddKeywordIDs(ids...)
	return _u
}

// AddKeywords adds the "keywords" edges to the Keyword entity.
func (_u *DocumentUpdate) AddKeywords(v ...*Keyword) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddKeywordIDs(ids...)
}

// AddScoreIDs adds the "scores" edge to the CategoryScore entity by IDs.
func (_u *DocumentUpdate) AddScoreIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddScoreIDs(ids...)
	return _u
}

// AddScores adds the "scores" edges to the CategoryScore entity.
func (_u *DocumentUpdate) AddScores(v ...*CategoryScore) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScoreIDs(ids...)
}

// AddFindingIDs adds the "findings" edge to the KeyFinding entity by IDs.
func (_u *DocumentUpdate) AddFindingIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddFindingIDs(ids...)
	return _u
}

// AddFindings adds the "findings" edges to the KeyFinding entity.
func (_u *DocumentUpdate) AddFindings(v ...*KeyFinding) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFindingIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearKeywords clears all "keywords" edges to the Keyword entity.
func (_u *DocumentUpdate) ClearKeywords() *DocumentUpdate {
	_u.mutation.ClearKeywords()
	return _u
}

// RemoveKeywordIDs removes the "keywords" edge to Keyword entities by IDs.
func (_u *DocumentUpdate) RemoveKeywordIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveKeywordIDs(ids...)
	return _u
}

// RemoveKeywords removes "keywords" edges to Keyword entities.
func (_u *DocumentUpdate) RemoveKeywords(v ...*Keyword) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveKeywordIDs(ids...)
}

// ClearScores clears all "scores" edges to the CategoryScore entity.
func (_u *DocumentUpdate) ClearScores() *DocumentUpdate {
	_u.mutation.ClearScores()
	return _u
}

// RemoveScoreIDs removes the "scores" edge to CategoryScore entities by IDs.
func (_u *DocumentUpdate) RemoveScoreIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveScoreIDs(ids...)
	return _u
}

// RemoveScores removes "scores" edges to CategoryScore entities.
func (_u *DocumentUpdate) RemoveScores(v ...*CategoryScore) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScoreIDs(ids...)
}

// ClearFindings clears all "findings" edges to the KeyFinding entity.
func (_u *DocumentUpdate) ClearFindings() *DocumentUpdate {
	_u.mutation.ClearFindings()
	return _u
}

// RemoveFindingIDs removes the "findings" edge to KeyFinding entities by IDs.
func (_u *DocumentUpdate) RemoveFindingIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveFindingIDs(ids...)
	return _u
}

// RemoveFindings removes "findings" edges to KeyFinding entities.
func (_u *DocumentUpdate) RemoveFindings(v ...*KeyFinding) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFindingIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.SourceFile(); ok {
		if err := document.SourceFileValidator(v); err != nil {
			return &ValidationError{Name: "source_file", err: fmt.Errorf(`ent: validator failed for field "Document.source_file": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := document.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Document.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileFormat(); ok {
		if err := document.FileFormatValidator(v); err != nil {
			return &ValidationError{Name: "file_format", err: fmt.Errorf(`ent: validator failed for field "Document.file_format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := document.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Document.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.YearPublished(); ok {
		if err := document.YearPublishedValidator(v); err != nil {
			return &ValidationError{Name: "year_published", err: fmt.Errorf(`ent: validator failed for field "Document.year_published": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PredictionModel(); ok {
		if err := document.PredictionModelValidator(v); err != nil {
			return &ValidationError{Name: "prediction_model", err: fmt.Errorf(`ent: validator failed for field "Document.prediction_model": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SummaryKind(); ok {
		if err := document.SummaryKindValidator(v); err != nil {
			return &ValidationError{Name: "summary_kind", err: fmt.Errorf(`ent: validator failed for field "Document.summary_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PrimaryCategory(); ok {
		if err := document.PrimaryCategoryValidator(v); err != nil {
			return &ValidationError{Name: "primary_category", err: fmt.Errorf(`ent: validator failed for field "Document.primary_category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WordCount(); ok {
		if err := document.WordCountValidator(v); err != nil {
			return &ValidationError{Name: "word_count", err: fmt.Errorf(`ent: validator failed for field "Document.word_count": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceFile(); ok {
		_spec.SetField(document.FieldSourceFile, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(document.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileFormat(); ok {
		_spec.SetField(document.FieldFileFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.DerivedName(); ok {
		_spec.SetField(document.FieldDerivedName, field.TypeString, value)
	}
	if _u.mutation.DerivedNameCleared() {
		_spec.ClearField(document.FieldDerivedName, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(document.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(document.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Authors(); ok {
		_spec.SetField(document.FieldAuthors, field.TypeString, value)
	}
	if _u.mutation.AuthorsCleared() {
		_spec.ClearField(document.FieldAuthors, field.TypeString)
	}
	if value, ok := _u.mutation.YearPublished(); ok {
		_spec.SetField(document.FieldYearPublished, field.TypeString, value)
	}
	if _u.mutation.YearPublishedCleared() {
		_spec.ClearField(document.FieldYearPublished, field.TypeString)
	}
	if value, ok := _u.mutation.Journal(); ok {
		_spec.SetField(document.FieldJournal, field.TypeString, value)
	}
	if _u.mutation.JournalCleared() {
		_spec.ClearField(document.FieldJournal, field.TypeString)
	}
	if value, ok := _u.mutation.BibtexCitation(); ok {
		_spec.SetField(document.FieldBibtexCitation, field.TypeString, value)
	}
	if _u.mutation.BibtexCitationCleared() {
		_spec.ClearField(document.FieldBibtexCitation, field.TypeString)
	}
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(document.FieldDocType, field.TypeString, value)
	}
	if _u.mutation.DocTypeCleared() {
		_spec.ClearField(document.FieldDocType, field.TypeString)
	}
	if value, ok := _u.mutation.SampleSize(); ok {
		_spec.SetField(document.FieldSampleSize, field.TypeString, value)
	}
	if _u.mutation.SampleSizeCleared() {
		_spec.ClearField(document.FieldSampleSize, field.TypeString)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(document.FieldMethod, field.TypeString, value)
	}
	if _u.mutation.MethodCleared() {
		_spec.ClearField(document.FieldMethod, field.TypeString)
	}
	if value, ok := _u.mutation.PredictionModel(); ok {
		_spec.SetField(document.FieldPredictionModel, field.TypeString, value)
	}
	if _u.mutation.PredictionModelCleared() {
		_spec.ClearField(document.FieldPredictionModel, field.TypeString)
	}
	if value, ok := _u.mutation.KeyTakeaways(); ok {
		_spec.SetField(document.FieldKeyTakeaways, field.TypeString, value)
	}
	if _u.mutation.KeyTakeawaysCleared() {
		_spec.ClearField(document.FieldKeyTakeaways, field.TypeString)
	}
	if value, ok := _u.mutation.Categories(); ok {
		_spec.SetField(document.FieldCategories, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCategories(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldCategories, value)
		})
	}
	if _u.mutation.CategoriesCleared() {
		_spec.ClearField(document.FieldCategories, field.TypeJSON)
	}
	if value, ok := _u.mutation.SummaryKind(); ok {
		_spec.SetField(document.FieldSummaryKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RawSummary(); ok {
		_spec.SetField(document.FieldRawSummary, field.TypeString, value)
	}
	if _u.mutation.RawSummaryCleared() {
		_spec.ClearField(document.FieldRawSummary, field.TypeString)
	}
	if value, ok := _u.mutation.PrimaryCategory(); ok {
		_spec.SetField(document.FieldPrimaryCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.WordCount(); ok {
		_spec.SetField(document.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordCount(); ok {
		_spec.AddField(document.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(document.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(document.FieldPageCount, field.TypeInt, value)
	}
	if _u.mutation.PageCountCleared() {
		_spec.ClearField(document.FieldPageCount, field.TypeInt)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(document.FieldProcessedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.KeywordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedKeywordsIDs(); len(nodes) > 0 && !_u.mutation.KeywordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KeywordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ScoresCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScoresIDs(); len(nodes) > 0 && !_u.mutation.ScoresCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScoresIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FindingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFindingsIDs(); len(nodes) > 0 && !_u.mutation.FindingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FindingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetSourceFile sets the "source_file" field.
func (_u *DocumentUpdateOne) SetSourceFile(v string) *DocumentUpdateOne {
	_u.mutation.SetSourceFile(v)
	return _u
}

// SetNillableSourceFile sets the "source_file" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSourceFile(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetSourceFile(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *DocumentUpdateOne) SetSourcePath(v string) *DocumentUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSourcePath(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetFileFormat sets the "file_format" field.
func (_u *DocumentUpdateOne) SetFileFormat(v string) *DocumentUpdateOne {
	_u.mutation.SetFileFormat(v)
	return _u
}

// SetNillableFileFormat sets the "file_format" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileFormat(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileFormat(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *DocumentUpdateOne) SetContentHash(v string) *DocumentUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableContentHash(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetDerivedName sets the "derived_name" field.
func (_u *DocumentUpdateOne) SetDerivedName(v string) *DocumentUpdateOne {
	_u.mutation.SetDerivedName(v)
	return _u
}

// SetNillableDerivedName sets the "derived_name" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDerivedName(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetDerivedName(*v)
	}
	return _u
}

// ClearDerivedName clears the value of the "derived_name" field.
func (_u *DocumentUpdateOne) ClearDerivedName() *DocumentUpdateOne {
	_u.mutation.ClearDerivedName()
	return _u
}

// SetTitle sets the "title" field.
func (_u *DocumentUpdateOne) SetTitle(v string) *DocumentUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableTitle(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *DocumentUpdateOne) ClearTitle() *DocumentUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetAuthors sets the "authors" field.
func (_u *DocumentUpdateOne) SetAuthors(v string) *DocumentUpdateOne {
	_u.mutation.SetAuthors(v)
	return _u
}

// SetNillableAuthors sets the "authors" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableAuthors(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetAuthors(*v)
	}
	return _u
}

// ClearAuthors clears the value of the "authors" field.
func (_u *DocumentUpdateOne) ClearAuthors() *DocumentUpdateOne {
	_u.mutation.ClearAuthors()
	return _u
}

// SetYearPublished sets the "year_published" field.
func (_u *DocumentUpdateOne) SetYearPublished(v string) *DocumentUpdateOne {
	_u.mutation.SetYearPublished(v)
	return _u
}

// SetNillableYearPublished sets the "year_published" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableYearPublished(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetYearPublished(*v)
	}
	return _u
}

// ClearYearPublished clears the value of the "year_published" field.
func (_u *DocumentUpdateOne) ClearYearPublished() *DocumentUpdateOne {
	_u.mutation.ClearYearPublished()
	return _u
}

// SetJournal sets the "journal" field.
func (_u *DocumentUpdateOne) SetJournal(v string) *DocumentUpdateOne {
	_u.mutation.SetJournal(v)
	return _u
}

// SetNillableJournal sets the "journal" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableJournal(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetJournal(*v)
	}
	return _u
}

// ClearJournal clears the value of the "journal" field.
func (_u *DocumentUpdateOne) ClearJournal() *DocumentUpdateOne {
	_u.mutation.ClearJournal()
	return _u
}

// SetBibtexCitation sets the "bibtex_citation" field.
func (_u *DocumentUpdateOne) SetBibtexCitation(v string) *DocumentUpdateOne {
	_u.mutation.SetBibtexCitation(v)
	return _u
}

// SetNillableBibtexCitation sets the "bibtex_citation" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableBibtexCitation(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetBibtexCitation(*v)
	}
	return _u
}

// ClearBibtexCitation clears the value of the "bibtex_citation" field.
func (_u *DocumentUpdateOne) ClearBibtexCitation() *DocumentUpdateOne {
	_u.mutation.ClearBibtexCitation()
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *DocumentUpdateOne) SetDocType(v string) *DocumentUpdateOne {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDocType(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// ClearDocType clears the value of the "doc_type" field.
func (_u *DocumentUpdateOne) ClearDocType() *DocumentUpdateOne {
	_u.mutation.ClearDocType()
	return _u
}

// SetSampleSize sets the "sample_size" field.
func (_u *DocumentUpdateOne) SetSampleSize(v string) *DocumentUpdateOne {
	_u.mutation.SetSampleSize(v)
	return _u
}

// SetNillableSampleSize sets the "sample_size" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSampleSize(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetSampleSize(*v)
	}
	return _u
}

// ClearSampleSize clears the value of the "sample_size" field.
func (_u *DocumentUpdateOne) ClearSampleSize() *DocumentUpdateOne {
	_u.mutation.ClearSampleSize()
	return _u
}

// SetMethod sets the "method" field.
func (_u *DocumentUpdateOne) SetMethod(v string) *DocumentUpdateOne {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableMethod(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// ClearMethod clears the value of the "method" field.
func (_u *DocumentUpdateOne) ClearMethod() *DocumentUpdateOne {
	_u.mutation.ClearMethod()
	return _u
}

// SetPredictionModel sets the "prediction_model" field.
func (_u *DocumentUpdateOne) SetPredictionModel(v string) *DocumentUpdateOne {
	_u.mutation.SetPredictionModel(v)
	return _u
}

// SetNillablePredictionModel sets the "prediction_model" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillablePredictionModel(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetPredictionModel(*v)
	}
	return _u
}

// ClearPredictionModel clears the value of the "prediction_model" field.
func (_u *DocumentUpdateOne) ClearPredictionModel() *DocumentUpdateOne {
	_u.mutation.ClearPredictionModel()
	return _u
}

// SetKeyTakeaways sets the "key_takeaways" field.
func (_u *DocumentUpdateOne) SetKeyTakeaways(v string) *DocumentUpdateOne {
	_u.mutation.SetKeyTakeaways(v)
	return _u
}

// SetNillableKeyTakeaways sets the "key_takeaways" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableKeyTakeaways(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetKeyTakeaways(*v)
	}
	return _u
}

// ClearKeyTakeaways clears the value of the "key_takeaways" field.
func (_u *DocumentUpdateOne) ClearKeyTakeaways() *DocumentUpdateOne {
	_u.mutation.ClearKeyTakeaways()
	return _u
}

// SetCategories sets the "categories" field.
func (_u *DocumentUpdateOne) SetCategories(v []string) *DocumentUpdateOne {
	_u.mutation.SetCategories(v)
	return _u
}

// AppendCategories appends value to the "categories" field.
func (_u *DocumentUpdateOne) AppendCategories(v []string) *DocumentUpdateOne {
	_u.mutation.AppendCategories(v)
	return _u
}

// ClearCategories clears the value of the "categories" field.
func (_u *DocumentUpdateOne) ClearCategories() *DocumentUpdateOne {
	_u.mutation.ClearCategories()
	return _u
}

// SetSummaryKind sets the "summary_kind" field.
func (_u *DocumentUpdateOne) SetSummaryKind(v document.SummaryKind) *DocumentUpdateOne {
	_u.mutation.SetSummaryKind(v)
	return _u
}

// SetNillableSummaryKind sets the "summary_kind" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSummaryKind(v *document.SummaryKind) *DocumentUpdateOne {
	if v != nil {
		_u.SetSummaryKind(*v)
	}
	return _u
}

// SetRawSummary sets the "raw_summary" field.
func (_u *DocumentUpdateOne) SetRawSummary(v string) *DocumentUpdateOne {
	_u.mutation.SetRawSummary(v)
	return _u
}

// SetNillableRawSummary sets the "raw_summary" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableRawSummary(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetRawSummary(*v)
	}
	return _u
}

// ClearRawSummary clears the value of the "raw_summary" field.
func (_u *DocumentUpdateOne) ClearRawSummary() *DocumentUpdateOne {
	_u.mutation.ClearRawSummary()
	return _u
}

// SetPrimaryCategory sets the "primary_category" field.
func (_u *DocumentUpdateOne) SetPrimaryCategory(v string) *DocumentUpdateOne {
	_u.mutation.SetPrimaryCategory(v)
	return _u
}

// SetNillablePrimaryCategory sets the "primary_category" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillablePrimaryCategory(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetPrimaryCategory(*v)
	}
	return _u
}

// SetWordCount sets the "word_count" field.
func (_u *DocumentUpdateOne) SetWordCount(v int) *DocumentUpdateOne {
	_u.mutation.ResetWordCount()
	_u.mutation.SetWordCount(v)
	return _u
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableWordCount(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetWordCount(*v)
	}
	return _u
}

// AddWordCount adds value to the "word_count" field.
func (_u *DocumentUpdateOne) AddWordCount(v int) *DocumentUpdateOne {
	_u.mutation.AddWordCount(v)
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *DocumentUpdateOne) SetPageCount(v int) *DocumentUpdateOne {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillablePageCount(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *DocumentUpdateOne) AddPageCount(v int) *DocumentUpdateOne {
	_u.mutation.AddPageCount(v)
	return _u
}

// ClearPageCount clears the value of the "page_count" field.
func (_u *DocumentUpdateOne) ClearPageCount() *DocumentUpdateOne {
	_u.mutation.ClearPageCount()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *DocumentUpdateOne) SetProcessedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableProcessedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentUpdateOne) SetCreatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCreatedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdateOne) SetUpdatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddKeywordIDs adds the "keywords" edge to the Keyword entity by IDs.
func (_u *DocumentUpdateOne) AddKeywordIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddKeywordIDs(ids...)
	return _u
}

// AddKeywords adds the "keywords" edges to the Keyword entity.
func (_u *DocumentUpdateOne) AddKeywords(v ...*Keyword) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddKeywordIDs(ids...)
}

// AddScoreIDs adds the "scores" edge to the CategoryScore entity by IDs.
func (_u *DocumentUpdateOne) AddScoreIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddScoreIDs(ids...)
	return _u
}

// AddScores adds the "scores" edges to the CategoryScore entity.
func (_u *DocumentUpdateOne) AddScores(v ...*CategoryScore) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScoreIDs(ids...)
}

// AddFindingIDs adds the "findings" edge to the KeyFinding entity by IDs.
func (_u *DocumentUpdateOne) AddFindingIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddFindingIDs(ids...)
	return _u
}

// AddFindings adds the "findings" edges to the KeyFinding entity.
func (_u *DocumentUpdateOne) AddFindings(v ...*KeyFinding) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFindingIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearKeywords clears all "keywords" edges to the Keyword entity.
func (_u *DocumentUpdateOne) ClearKeywords() *DocumentUpdateOne {
	_u.mutation.ClearKeywords()
	return _u
}

// RemoveKeywordIDs removes the "keywords" edge to Keyword entities by IDs.
func (_u *DocumentUpdateOne) RemoveKeywordIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveKeywordIDs(ids...)
	return _u
}

// RemoveKeywords removes "keywords" edges to Keyword entities.
func (_u *DocumentUpdateOne) RemoveKeywords(v ...*Keyword) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveKeywordIDs(ids...)
}

// ClearScores clears all "scores" edges to the CategoryScore entity.
func (_u *DocumentUpdateOne) ClearScores() *DocumentUpdateOne {
	_u.mutation.ClearScores()
	return _u
}

// RemoveScoreIDs removes the "scores" edge to CategoryScore entities by IDs.
func (_u *DocumentUpdateOne) RemoveScoreIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveScoreIDs(ids...)
	return _u
}

// RemoveScores removes "scores" edges to CategoryScore entities.
func (_u *DocumentUpdateOne) RemoveScores(v ...*CategoryScore) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScoreIDs(ids...)
}

// ClearFindings clears all "findings" edges to the KeyFinding entity.
func (_u *DocumentUpdateOne) ClearFindings() *DocumentUpdateOne {
	_u.mutation.ClearFindings()
	return _u
}

// RemoveFindingIDs removes the "findings" edge to KeyFinding entities by IDs.
func (_u *DocumentUpdateOne) RemoveFindingIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveFindingIDs(ids...)
	return _u
}

// RemoveFindings removes "findings" edges to KeyFinding entities.
func (_u *DocumentUpdateOne) RemoveFindings(v ...*KeyFinding) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFindingIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.SourceFile(); ok {
		if err := document.SourceFileValidator(v); err != nil {
			return &ValidationError{Name: "source_file", err: fmt.Errorf(`ent: validator failed for field "Document.source_file": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := document.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Document.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileFormat(); ok {
		if err := document.FileFormatValidator(v); err != nil {
			return &ValidationError{Name: "file_format", err: fmt.Errorf(`ent: validator failed for field "Document.file_format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := document.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Document.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.YearPublished(); ok {
		if err := document.YearPublishedValidator(v); err != nil {
			return &ValidationError{Name: "year_published", err: fmt.Errorf(`ent: validator failed for field "Document.year_published": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PredictionModel(); ok {
		if err := document.PredictionModelValidator(v); err != nil {
			return &ValidationError{Name: "prediction_model", err: fmt.Errorf(`ent: validator failed for field "Document.prediction_model": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SummaryKind(); ok {
		if err := document.SummaryKindValidator(v); err != nil {
			return &ValidationError{Name: "summary_kind", err: fmt.Errorf(`ent: validator failed for field "Document.summary_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PrimaryCategory(); ok {
		if err := document.PrimaryCategoryValidator(v); err != nil {
			return &ValidationError{Name: "primary_category", err: fmt.Errorf(`ent: validator failed for field "Document.primary_category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WordCount(); ok {
		if err := document.WordCountValidator(v); err != nil {
			return &ValidationError{Name: "word_count", err: fmt.Errorf(`ent: validator failed for field "Document.word_count": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
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
	if value, ok := _u.mutation.SourceFile(); ok {
		_spec.SetField(document.FieldSourceFile, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(document.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileFormat(); ok {
		_spec.SetField(document.FieldFileFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.DerivedName(); ok {
		_spec.SetField(document.FieldDerivedName, field.TypeString, value)
	}
	if _u.mutation.DerivedNameCleared() {
		_spec.ClearField(document.FieldDerivedName, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(document.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(document.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Authors(); ok {
		_spec.SetField(document.FieldAuthors, field.TypeString, value)
	}
	if _u.mutation.AuthorsCleared() {
		_spec.ClearField(document.FieldAuthors, field.TypeString)
	}
	if value, ok := _u.mutation.YearPublished(); ok {
		_spec.SetField(document.FieldYearPublished, field.TypeString, value)
	}
	if _u.mutation.YearPublishedCleared() {
		_spec.ClearField(document.FieldYearPublished, field.TypeString)
	}
	if value, ok := _u.mutation.Journal(); ok {
		_spec.SetField(document.FieldJournal, field.TypeString, value)
	}
	if _u.mutation.JournalCleared() {
		_spec.ClearField(document.FieldJournal, field.TypeString)
	}
	if value, ok := _u.mutation.BibtexCitation(); ok {
		_spec.SetField(document.FieldBibtexCitation, field.TypeString, value)
	}
	if _u.mutation.BibtexCitationCleared() {
		_spec.ClearField(document.FieldBibtexCitation, field.TypeString)
	}
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(document.FieldDocType, field.TypeString, value)
	}
	if _u.mutation.DocTypeCleared() {
		_spec.ClearField(document.FieldDocType, field.TypeString)
	}
	if value, ok := _u.mutation.SampleSize(); ok {
		_spec.SetField(document.FieldSampleSize, field.TypeString, value)
	}
	if _u.mutation.SampleSizeCleared() {
		_spec.ClearField(document.FieldSampleSize, field.TypeString)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(document.FieldMethod, field.TypeString, value)
	}
	if _u.mutation.MethodCleared() {
		_spec.ClearField(document.FieldMethod, field.TypeString)
	}
	if value, ok := _u.mutation.PredictionModel(); ok {
		_spec.SetField(document.FieldPredictionModel, field.TypeString, value)
	}
	if _u.mutation.PredictionModelCleared() {
		_spec.ClearField(document.FieldPredictionModel, field.TypeString)
	}
	if value, ok := _u.mutation.KeyTakeaways(); ok {
		_spec.SetField(document.FieldKeyTakeaways, field.TypeString, value)
	}
	if _u.mutation.KeyTakeawaysCleared() {
		_spec.ClearField(document.FieldKeyTakeaways, field.TypeString)
	}
	if value, ok := _u.mutation.Categories(); ok {
		_spec.SetField(document.FieldCategories, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCategories(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldCategories, value)
		})
	}
	if _u.mutation.CategoriesCleared() {
		_spec.ClearField(document.FieldCategories, field.TypeJSON)
	}
	if value, ok := _u.mutation.SummaryKind(); ok {
		_spec.SetField(document.FieldSummaryKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RawSummary(); ok {
		_spec.SetField(document.FieldRawSummary, field.TypeString, value)
	}
	if _u.mutation.RawSummaryCleared() {
		_spec.ClearField(document.FieldRawSummary, field.TypeString)
	}
	if value, ok := _u.mutation.PrimaryCategory(); ok {
		_spec.SetField(document.FieldPrimaryCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.WordCount(); ok {
		_spec.SetField(document.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordCount(); ok {
		_spec.AddField(document.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(document.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(document.FieldPageCount, field.TypeInt, value)
	}
	if _u.mutation.PageCountCleared() {
		_spec.ClearField(document.FieldPageCount, field.TypeInt)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(document.FieldProcessedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.KeywordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedKeywordsIDs(); len(nodes) > 0 && !_u.mutation.KeywordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KeywordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ScoresCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScoresIDs(); len(nodes) > 0 && !_u.mutation.ScoresCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScoresIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FindingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFindingsIDs(); len(nodes) > 0 && !_u.mutation.FindingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FindingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
