// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/categoryscore"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/document"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/keyfinding"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/keyword"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCategoryScore = "CategoryScore"
	TypeDocument      = "Document"
	TypeKeyFinding    = "KeyFinding"
	TypeKeyword       = "Keyword"
)

// CategoryScoreMutation represents an operation that mutates the CategoryScore nodes in the graph.
type CategoryScoreMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	category            *string
	model_score         *float64
	addmodel_score      *float64
	keyword_score       *float64
	addkeyword_score    *float64
	similarity_score    *float64
	addsimilarity_score *float64
	final_score         *float64
	addfinal_score      *float64
	clearedFields       map[string]struct{}
	document            *uuid.UUID
	cleareddocument     bool
	done                bool
	oldValue            func(context.Context) (*CategoryScore, error)
	predicates          []predicate.CategoryScore
}

var _ ent.Mutation = (*CategoryScoreMutation)(nil)

// categoryscoreOption allows management of the mutation configuration using functional options.
type categoryscoreOption func(*CategoryScoreMutation)

// newCategoryScoreMutation creates new mutation for the CategoryScore entity.
func newCategoryScoreMutation(c config, op Op, opts ...categoryscoreOption) *CategoryScoreMutation {
	m := &CategoryScoreMutation{
		config:        c,
		op:            op,
		typ:           TypeCategoryScore,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCategoryScoreID sets the ID field of the mutation.
func withCategoryScoreID(id uuid.UUID) categoryscoreOption {
	return func(m *CategoryScoreMutation) {
		var (
			err   error
			once  sync.Once
			value *CategoryScore
		)
		m.oldValue = func(ctx context.Context) (*CategoryScore, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CategoryScore.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCategoryScore sets the old CategoryScore of the mutation.
func withCategoryScore(node *CategoryScore) categoryscoreOption {
	return func(m *CategoryScoreMutation) {
		m.oldValue = func(context.Context) (*CategoryScore, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CategoryScoreMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CategoryScoreMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CategoryScore entities.
func (m *CategoryScoreMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CategoryScoreMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CategoryScoreMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CategoryScore.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *CategoryScoreMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *CategoryScoreMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the CategoryScore entity.
// If the CategoryScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryScoreMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *CategoryScoreMutation) ResetDocumentID() {
	m.document = nil
}

// SetCategory sets the "category" field.
func (m *CategoryScoreMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *CategoryScoreMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the CategoryScore entity.
// If the CategoryScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryScoreMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *CategoryScoreMutation) ResetCategory() {
	m.category = nil
}

// SetModelScore sets the "model_score" field.
func (m *CategoryScoreMutation) SetModelScore(f float64) {
	m.model_score = &f
	m.addmodel_score = nil
}

// ModelScore returns the value of the "model_score" field in the mutation.
func (m *CategoryScoreMutation) ModelScore() (r float64, exists bool) {
	v := m.model_score
	if v == nil {
		return
	}
	return *v, true
}

// OldModelScore returns the old "model_score" field's value of the CategoryScore entity.
// If the CategoryScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryScoreMutation) OldModelScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelScore: %w", err)
	}
	return oldValue.ModelScore, nil
}

// AddModelScore adds f to the "model_score" field.
func (m *CategoryScoreMutation) AddModelScore(f float64) {
	if m.addmodel_score != nil {
		*m.addmodel_score += f
	} else {
		m.addmodel_score = &f
	}
}

// AddedModelScore returns the value that was added to the "model_score" field in this mutation.
func (m *CategoryScoreMutation) AddedModelScore() (r float64, exists bool) {
	v := m.addmodel_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetModelScore resets all changes to the "model_score" field.
func (m *CategoryScoreMutation) ResetModelScore() {
	m.model_score = nil
	m.addmodel_score = nil
}

// SetKeywordScore sets the "keyword_score" field.
func (m *CategoryScoreMutation) SetKeywordScore(f float64) {
	m.keyword_score = &f
	m.addkeyword_score = nil
}

// KeywordScore returns the value of the "keyword_score" field in the mutation.
func (m *CategoryScoreMutation) KeywordScore() (r float64, exists bool) {
	v := m.keyword_score
	if v == nil {
		return
	}
	return *v, true
}

// OldKeywordScore returns the old "keyword_score" field's value of the CategoryScore entity.
// If the CategoryScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryScoreMutation) OldKeywordScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeywordScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeywordScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeywordScore: %w", err)
	}
	return oldValue.KeywordScore, nil
}

// AddKeywordScore adds f to the "keyword_score" field.
func (m *CategoryScoreMutation) AddKeywordScore(f float64) {
	if m.addkeyword_score != nil {
		*m.addkeyword_score += f
	} else {
		m.addkeyword_score = &f
	}
}

// AddedKeywordScore returns the value that was added to the "keyword_score" field in this mutation.
func (m *CategoryScoreMutation) AddedKeywordScore() (r float64, exists bool) {
	v := m.addkeyword_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetKeywordScore resets all changes to the "keyword_score" field.
func (m *CategoryScoreMutation) ResetKeywordScore() {
	m.keyword_score = nil
	m.addkeyword_score = nil
}

// SetSimilarityScore sets the "similarity_score" field.
func (m *CategoryScoreMutation) SetSimilarityScore(f float64) {
	m.similarity_score = &f
	m.addsimilarity_score = nil
}

// SimilarityScore returns the value of the "similarity_score" field in the mutation.
func (m *CategoryScoreMutation) SimilarityScore() (r float64, exists bool) {
	v := m.similarity_score
	if v == nil {
		return
	}
	return *v, true
}

// OldSimilarityScore returns the old "similarity_score" field's value of the CategoryScore entity.
// If the CategoryScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryScoreMutation) OldSimilarityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSimilarityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSimilarityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSimilarityScore: %w", err)
	}
	return oldValue.SimilarityScore, nil
}

// AddSimilarityScore adds f to the "similarity_score" field.
func (m *CategoryScoreMutation) AddSimilarityScore(f float64) {
	if m.addsimilarity_score != nil {
		*m.addsimilarity_score += f
	} else {
		m.addsimilarity_score = &f
	}
}

// AddedSimilarityScore returns the value that was added to the "similarity_score" field in this mutation.
func (m *CategoryScoreMutation) AddedSimilarityScore() (r float64, exists bool) {
	v := m.addsimilarity_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetSimilarityScore resets all changes to the "similarity_score" field.
func (m *CategoryScoreMutation) ResetSimilarityScore() {
	m.similarity_score = nil
	m.addsimilarity_score = nil
}

// SetFinalScore sets the "final_score" field.
func (m *CategoryScoreMutation) SetFinalScore(f float64) {
	m.final_score = &f
	m.addfinal_score = nil
}

// FinalScore returns the value of the "final_score" field in the mutation.
func (m *CategoryScoreMutation) FinalScore() (r float64, exists bool) {
	v := m.final_score
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalScore returns the old "final_score" field's value of the CategoryScore entity.
// If the CategoryScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryScoreMutation) OldFinalScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalScore: %w", err)
	}
	return oldValue.FinalScore, nil
}

// AddFinalScore adds f to the "final_score" field.
func (m *CategoryScoreMutation) AddFinalScore(f float64) {
	if m.addfinal_score != nil {
		*m.addfinal_score += f
	} else {
		m.addfinal_score = &f
	}
}

// AddedFinalScore returns the value that was added to the "final_score" field in this mutation.
func (m *CategoryScoreMutation) AddedFinalScore() (r float64, exists bool) {
	v := m.addfinal_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetFinalScore resets all changes to the "final_score" field.
func (m *CategoryScoreMutation) ResetFinalScore() {
	m.final_score = nil
	m.addfinal_score = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *CategoryScoreMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[categoryscore.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *CategoryScoreMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *CategoryScoreMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *CategoryScoreMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the CategoryScoreMutation builder.
func (m *CategoryScoreMutation) Where(ps ...predicate.CategoryScore) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CategoryScoreMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CategoryScoreMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CategoryScore, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CategoryScoreMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CategoryScoreMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CategoryScore).
func (m *CategoryScoreMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CategoryScoreMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.document != nil {
		fields = append(fields, categoryscore.FieldDocumentID)
	}
	if m.category != nil {
		fields = append(fields, categoryscore.FieldCategory)
	}
	if m.model_score != nil {
		fields = append(fields, categoryscore.FieldModelScore)
	}
	if m.keyword_score != nil {
		fields = append(fields, categoryscore.FieldKeywordScore)
	}
	if m.similarity_score != nil {
		fields = append(fields, categoryscore.FieldSimilarityScore)
	}
	if m.final_score != nil {
		fields = append(fields, categoryscore.FieldFinalScore)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CategoryScoreMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case categoryscore.FieldDocumentID:
		return m.DocumentID()
	case categoryscore.FieldCategory:
		return m.Category()
	case categoryscore.FieldModelScore:
		return m.ModelScore()
	case categoryscore.FieldKeywordScore:
		return m.KeywordScore()
	case categoryscore.FieldSimilarityScore:
		return m.SimilarityScore()
	case categoryscore.FieldFinalScore:
		return m.FinalScore()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CategoryScoreMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case categoryscore.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case categoryscore.FieldCategory:
		return m.OldCategory(ctx)
	case categoryscore.FieldModelScore:
		return m.OldModelScore(ctx)
	case categoryscore.FieldKeywordScore:
		return m.OldKeywordScore(ctx)
	case categoryscore.FieldSimilarityScore:
		return m.OldSimilarityScore(ctx)
	case categoryscore.FieldFinalScore:
		return m.OldFinalScore(ctx)
	}
	return nil, fmt.Errorf("unknown CategoryScore field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CategoryScoreMutation) SetField(name string, value ent.Value) error {
	switch name {
	case categoryscore.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case categoryscore.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case categoryscore.FieldModelScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelScore(v)
		return nil
	case categoryscore.FieldKeywordScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeywordScore(v)
		return nil
	case categoryscore.FieldSimilarityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSimilarityScore(v)
		return nil
	case categoryscore.FieldFinalScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalScore(v)
		return nil
	}
	return fmt.Errorf("unknown CategoryScore field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CategoryScoreMutation) AddedFields() []string {
	var fields []string
	if m.addmodel_score != nil {
		fields = append(fields, categoryscore.FieldModelScore)
	}
	if m.addkeyword_score != nil {
		fields = append(fields, categoryscore.FieldKeywordScore)
	}
	if m.addsimilarity_score != nil {
		fields = append(fields, categoryscore.FieldSimilarityScore)
	}
	if m.addfinal_score != nil {
		fields = append(fields, categoryscore.FieldFinalScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CategoryScoreMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case categoryscore.FieldModelScore:
		return m.AddedModelScore()
	case categoryscore.FieldKeywordScore:
		return m.AddedKeywordScore()
	case categoryscore.FieldSimilarityScore:
		return m.AddedSimilarityScore()
	case categoryscore.FieldFinalScore:
		return m.AddedFinalScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CategoryScoreMutation) AddField(name string, value ent.Value) error {
	switch name {
	case categoryscore.FieldModelScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddModelScore(v)
		return nil
	case categoryscore.FieldKeywordScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddKeywordScore(v)
		return nil
	case categoryscore.FieldSimilarityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSimilarityScore(v)
		return nil
	case categoryscore.FieldFinalScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFinalScore(v)
		return nil
	}
	return fmt.Errorf("unknown CategoryScore numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CategoryScoreMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CategoryScoreMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CategoryScoreMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CategoryScore nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CategoryScoreMutation) ResetField(name string) error {
	switch name {
	case categoryscore.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case categoryscore.FieldCategory:
		m.ResetCategory()
		return nil
	case categoryscore.FieldModelScore:
		m.ResetModelScore()
		return nil
	case categoryscore.FieldKeywordScore:
		m.ResetKeywordScore()
		return nil
	case categoryscore.FieldSimilarityScore:
		m.ResetSimilarityScore()
		return nil
	case categoryscore.FieldFinalScore:
		m.ResetFinalScore()
		return nil
	}
	return fmt.Errorf("unknown CategoryScore field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CategoryScoreMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, categoryscore.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CategoryScoreMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case categoryscore.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CategoryScoreMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CategoryScoreMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CategoryScoreMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, categoryscore.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CategoryScoreMutation) EdgeCleared(name string) bool {
	switch name {
	case categoryscore.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CategoryScoreMutation) ClearEdge(name string) error {
	switch name {
	case categoryscore.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown CategoryScore unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CategoryScoreMutation) ResetEdge(name string) error {
	switch name {
	case categoryscore.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown CategoryScore edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	source_file      *string
	source_path      *string
	file_format      *string
	content_hash     *string
	derived_name     *string
	title            *string
	authors          *string
	year_published   *string
	journal          *string
	bibtex_citation  *string
	doc_type         *string
	sample_size      *string
	method           *string
	prediction_model *string
	key_takeaways    *string
	categories       *[]string
	appendcategories []string
	summary_kind     *document.SummaryKind
	raw_summary      *string
	primary_category *string
	word_count       *int
	addword_count    *int
	page_count       *int
	addpage_count    *int
	processed_at     *time.Time
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	keywords         map[uuid.UUID]struct{}
	removedkeywords  map[uuid.UUID]struct{}
	clearedkeywords  bool
	scores           map[uuid.UUID]struct{}
	removedscores    map[uuid.UUID]struct{}
	clearedscores    bool
	findings         map[uuid.UUID]struct{}
	removedfindings  map[uuid.UUID]struct{}
	clearedfindings  bool
	done             bool
	oldValue         func(context.Context) (*Document, error)
	predicates       []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceFile sets the "source_file" field.
func (m *DocumentMutation) SetSourceFile(s string) {
	m.source_file = &s
}

// SourceFile returns the value of the "source_file" field in the mutation.
func (m *DocumentMutation) SourceFile() (r string, exists bool) {
	v := m.source_file
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceFile returns the old "source_file" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSourceFile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceFile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceFile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceFile: %w", err)
	}
	return oldValue.SourceFile, nil
}

// ResetSourceFile resets all changes to the "source_file" field.
func (m *DocumentMutation) ResetSourceFile() {
	m.source_file = nil
}

// SetSourcePath sets the "source_path" field.
func (m *DocumentMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *DocumentMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *DocumentMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetFileFormat sets the "file_format" field.
func (m *DocumentMutation) SetFileFormat(s string) {
	m.file_format = &s
}

// FileFormat returns the value of the "file_format" field in the mutation.
func (m *DocumentMutation) FileFormat() (r string, exists bool) {
	v := m.file_format
	if v == nil {
		return
	}
	return *v, true
}

// OldFileFormat returns the old "file_format" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileFormat: %w", err)
	}
	return oldValue.FileFormat, nil
}

// ResetFileFormat resets all changes to the "file_format" field.
func (m *DocumentMutation) ResetFileFormat() {
	m.file_format = nil
}

// SetContentHash sets the "content_hash" field.
func (m *DocumentMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *DocumentMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *DocumentMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetDerivedName sets the "derived_name" field.
func (m *DocumentMutation) SetDerivedName(s string) {
	m.derived_name = &s
}

// DerivedName returns the value of the "derived_name" field in the mutation.
func (m *DocumentMutation) DerivedName() (r string, exists bool) {
	v := m.derived_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDerivedName returns the old "derived_name" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDerivedName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDerivedName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDerivedName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDerivedName: %w", err)
	}
	return oldValue.DerivedName, nil
}

// ClearDerivedName clears the value of the "derived_name" field.
func (m *DocumentMutation) ClearDerivedName() {
	m.derived_name = nil
	m.clearedFields[document.FieldDerivedName] = struct{}{}
}

// DerivedNameCleared returns if the "derived_name" field was cleared in this mutation.
func (m *DocumentMutation) DerivedNameCleared() bool {
	_, ok := m.clearedFields[document.FieldDerivedName]
	return ok
}

// ResetDerivedName resets all changes to the "derived_name" field.
func (m *DocumentMutation) ResetDerivedName() {
	m.derived_name = nil
	delete(m.clearedFields, document.FieldDerivedName)
}

// SetTitle sets the "title" field.
func (m *DocumentMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *DocumentMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *DocumentMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[document.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *DocumentMutation) TitleCleared() bool {
	_, ok := m.clearedFields[document.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *DocumentMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, document.FieldTitle)
}

// SetAuthors sets the "authors" field.
func (m *DocumentMutation) SetAuthors(s string) {
	m.authors = &s
}

// Authors returns the value of the "authors" field in the mutation.
func (m *DocumentMutation) Authors() (r string, exists bool) {
	v := m.authors
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthors returns the old "authors" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldAuthors(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthors: %w", err)
	}
	return oldValue.Authors, nil
}

// ClearAuthors clears the value of the "authors" field.
func (m *DocumentMutation) ClearAuthors() {
	m.authors = nil
	m.clearedFields[document.FieldAuthors] = struct{}{}
}

// AuthorsCleared returns if the "authors" field was cleared in this mutation.
func (m *DocumentMutation) AuthorsCleared() bool {
	_, ok := m.clearedFields[document.FieldAuthors]
	return ok
}

// ResetAuthors resets all changes to the "authors" field.
func (m *DocumentMutation) ResetAuthors() {
	m.authors = nil
	delete(m.clearedFields, document.FieldAuthors)
}

// SetYearPublished sets the "year_published" field.
func (m *DocumentMutation) SetYearPublished(s string) {
	m.year_published = &s
}

// YearPublished returns the value of the "year_published" field in the mutation.
func (m *DocumentMutation) YearPublished() (r string, exists bool) {
	v := m.year_published
	if v == nil {
		return
	}
	return *v, true
}

// OldYearPublished returns the old "year_published" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldYearPublished(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYearPublished is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYearPublished requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYearPublished: %w", err)
	}
	return oldValue.YearPublished, nil
}

// ClearYearPublished clears the value of the "year_published" field.
func (m *DocumentMutation) ClearYearPublished() {
	m.year_published = nil
	m.clearedFields[document.FieldYearPublished] = struct{}{}
}

// YearPublishedCleared returns if the "year_published" field was cleared in this mutation.
func (m *DocumentMutation) YearPublishedCleared() bool {
	_, ok := m.clearedFields[document.FieldYearPublished]
	return ok
}

// ResetYearPublished resets all changes to the "year_published" field.
func (m *DocumentMutation) ResetYearPublished() {
	m.year_published = nil
	delete(m.clearedFields, document.FieldYearPublished)
}

// SetJournal sets the "journal" field.
func (m *DocumentMutation) SetJournal(s string) {
	m.journal = &s
}

// Journal returns the value of the "journal" field in the mutation.
func (m *DocumentMutation) Journal() (r string, exists bool) {
	v := m.journal
	if v == nil {
		return
	}
	return *v, true
}

// OldJournal returns the old "journal" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldJournal(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJournal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJournal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJournal: %w", err)
	}
	return oldValue.Journal, nil
}

// ClearJournal clears the value of the "journal" field.
func (m *DocumentMutation) ClearJournal() {
	m.journal = nil
	m.clearedFields[document.FieldJournal] = struct{}{}
}

// JournalCleared returns if the "journal" field was cleared in this mutation.
func (m *DocumentMutation) JournalCleared() bool {
	_, ok := m.clearedFields[document.FieldJournal]
	return ok
}

// ResetJournal resets all changes to the "journal" field.
func (m *DocumentMutation) ResetJournal() {
	m.journal = nil
	delete(m.clearedFields, document.FieldJournal)
}

// SetBibtexCitation sets the "bibtex_citation" field.
func (m *DocumentMutation) SetBibtexCitation(s string) {
	m.bibtex_citation = &s
}

// BibtexCitation returns the value of the "bibtex_citation" field in the mutation.
func (m *DocumentMutation) BibtexCitation() (r string, exists bool) {
	v := m.bibtex_citation
	if v == nil {
		return
	}
	return *v, true
}

// OldBibtexCitation returns the old "bibtex_citation" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldBibtexCitation(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBibtexCitation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBibtexCitation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBibtexCitation: %w", err)
	}
	return oldValue.BibtexCitation, nil
}

// ClearBibtexCitation clears the value of the "bibtex_citation" field.
func (m *DocumentMutation) ClearBibtexCitation() {
	m.bibtex_citation = nil
	m.clearedFields[document.FieldBibtexCitation] = struct{}{}
}

// BibtexCitationCleared returns if the "bibtex_citation" field was cleared in this mutation.
func (m *DocumentMutation) BibtexCitationCleared() bool {
	_, ok := m.clearedFields[document.FieldBibtexCitation]
	return ok
}

// ResetBibtexCitation resets all changes to the "bibtex_citation" field.
func (m *DocumentMutation) ResetBibtexCitation() {
	m.bibtex_citation = nil
	delete(m.clearedFields, document.FieldBibtexCitation)
}

// SetDocType sets the "doc_type" field.
func (m *DocumentMutation) SetDocType(s string) {
	m.doc_type = &s
}

// DocType returns the value of the "doc_type" field in the mutation.
func (m *DocumentMutation) DocType() (r string, exists bool) {
	v := m.doc_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocType returns the old "doc_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDocType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocType: %w", err)
	}
	return oldValue.DocType, nil
}

// ClearDocType clears the value of the "doc_type" field.
func (m *DocumentMutation) ClearDocType() {
	m.doc_type = nil
	m.clearedFields[document.FieldDocType] = struct{}{}
}

// DocTypeCleared returns if the "doc_type" field was cleared in this mutation.
func (m *DocumentMutation) DocTypeCleared() bool {
	_, ok := m.clearedFields[document.FieldDocType]
	return ok
}

// ResetDocType resets all changes to the "doc_type" field.
func (m *DocumentMutation) ResetDocType() {
	m.doc_type = nil
	delete(m.clearedFields, document.FieldDocType)
}

// SetSampleSize sets the "sample_size" field.
func (m *DocumentMutation) SetSampleSize(s string) {
	m.sample_size = &s
}

// SampleSize returns the value of the "sample_size" field in the mutation.
func (m *DocumentMutation) SampleSize() (r string, exists bool) {
	v := m.sample_size
	if v == nil {
		return
	}
	return *v, true
}

// OldSampleSize returns the old "sample_size" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSampleSize(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSampleSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSampleSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSampleSize: %w", err)
	}
	return oldValue.SampleSize, nil
}

// ClearSampleSize clears the value of the "sample_size" field.
func (m *DocumentMutation) ClearSampleSize() {
	m.sample_size = nil
	m.clearedFields[document.FieldSampleSize] = struct{}{}
}

// SampleSizeCleared returns if the "sample_size" field was cleared in this mutation.
func (m *DocumentMutation) SampleSizeCleared() bool {
	_, ok := m.clearedFields[document.FieldSampleSize]
	return ok
}

// ResetSampleSize resets all changes to the "sample_size" field.
func (m *DocumentMutation) ResetSampleSize() {
	m.sample_size = nil
	delete(m.clearedFields, document.FieldSampleSize)
}

// SetMethod sets the "method" field.
func (m *DocumentMutation) SetMethod(s string) {
	m.method = &s
}

// Method returns the value of the "method" field in the mutation.
func (m *DocumentMutation) Method() (r string, exists bool) {
	v := m.method
	if v == nil {
		return
	}
	return *v, true
}

// OldMethod returns the old "method" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldMethod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMethod: %w", err)
	}
	return oldValue.Method, nil
}

// ClearMethod clears the value of the "method" field.
func (m *DocumentMutation) ClearMethod() {
	m.method = nil
	m.clearedFields[document.FieldMethod] = struct{}{}
}

// MethodCleared returns if the "method" field was cleared in this mutation.
func (m *DocumentMutation) MethodCleared() bool {
	_, ok := m.clearedFields[document.FieldMethod]
	return ok
}

// ResetMethod resets all changes to the "method" field.
func (m *DocumentMutation) ResetMethod() {
	m.method = nil
	delete(m.clearedFields, document.FieldMethod)
}

// SetPredictionModel sets the "prediction_model" field.
func (m *DocumentMutation) SetPredictionModel(s string) {
	m.prediction_model = &s
}

// PredictionModel returns the value of the "prediction_model" field in the mutation.
func (m *DocumentMutation) PredictionModel() (r string, exists bool) {
	v := m.prediction_model
	if v == nil {
		return
	}
	return *v, true
}

// OldPredictionModel returns the old "prediction_model" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPredictionModel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPredictionModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPredictionModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPredictionModel: %w", err)
	}
	return oldValue.PredictionModel, nil
}

// ClearPredictionModel clears the value of the "prediction_model" field.
func (m *DocumentMutation) ClearPredictionModel() {
	m.prediction_model = nil
	m.clearedFields[document.FieldPredictionModel] = struct{}{}
}

// PredictionModelCleared returns if the "prediction_model" field was cleared in this mutation.
func (m *DocumentMutation) PredictionModelCleared() bool {
	_, ok := m.clearedFields[document.FieldPredictionModel]
	return ok
}

// ResetPredictionModel resets all changes to the "prediction_model" field.
func (m *DocumentMutation) ResetPredictionModel() {
	m.prediction_model = nil
	delete(m.clearedFields, document.FieldPredictionModel)
}

// SetKeyTakeaways sets the "key_takeaways" field.
func (m *DocumentMutation) SetKeyTakeaways(s string) {
	m.key_takeaways = &s
}

// KeyTakeaways returns the value of the "key_takeaways" field in the mutation.
func (m *DocumentMutation) KeyTakeaways() (r string, exists bool) {
	v := m.key_takeaways
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyTakeaways returns the old "key_takeaways" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldKeyTakeaways(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyTakeaways is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyTakeaways requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyTakeaways: %w", err)
	}
	return oldValue.KeyTakeaways, nil
}

// ClearKeyTakeaways clears the value of the "key_takeaways" field.
func (m *DocumentMutation) ClearKeyTakeaways() {
	m.key_takeaways = nil
	m.clearedFields[document.FieldKeyTakeaways] = struct{}{}
}

// KeyTakeawaysCleared returns if the "key_takeaways" field was cleared in this mutation.
func (m *DocumentMutation) KeyTakeawaysCleared() bool {
	_, ok := m.clearedFields[document.FieldKeyTakeaways]
	return ok
}

// ResetKeyTakeaways resets all changes to the "key_takeaways" field.
func (m *DocumentMutation) ResetKeyTakeaways() {
	m.key_takeaways = nil
	delete(m.clearedFields, document.FieldKeyTakeaways)
}

// SetCategories sets the "categories" field.
func (m *DocumentMutation) SetCategories(s []string) {
	m.categories = &s
	m.appendcategories = nil
}

// Categories returns the value of the "categories" field in the mutation.
func (m *DocumentMutation) Categories() (r []string, exists bool) {
	v := m.categories
	if v == nil {
		return
	}
	return *v, true
}

// OldCategories returns the old "categories" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCategories(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategories is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategories requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategories: %w", err)
	}
	return oldValue.Categories, nil
}

// AppendCategories adds s to the "categories" field.
func (m *DocumentMutation) AppendCategories(s []string) {
	m.appendcategories = append(m.appendcategories, s...)
}

// AppendedCategories returns the list of values that were appended to the "categories" field in this mutation.
func (m *DocumentMutation) AppendedCategories() ([]string, bool) {
	if len(m.appendcategories) == 0 {
		return nil, false
	}
	return m.appendcategories, true
}

// ClearCategories clears the value of the "categories" field.
func (m *DocumentMutation) ClearCategories() {
	m.categories = nil
	m.appendcategories = nil
	m.clearedFields[document.FieldCategories] = struct{}{}
}

// CategoriesCleared returns if the "categories" field was cleared in this mutation.
func (m *DocumentMutation) CategoriesCleared() bool {
	_, ok := m.clearedFields[document.FieldCategories]
	return ok
}

// ResetCategories resets all changes to the "categories" field.
func (m *DocumentMutation) ResetCategories() {
	m.categories = nil
	m.appendcategories = nil
	delete(m.clearedFields, document.FieldCategories)
}

// SetSummaryKind sets the "summary_kind" field.
func (m *DocumentMutation) SetSummaryKind(dk document.SummaryKind) {
	m.summary_kind = &dk
}

// SummaryKind returns the value of the "summary_kind" field in the mutation.
func (m *DocumentMutation) SummaryKind() (r document.SummaryKind, exists bool) {
	v := m.summary_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldSummaryKind returns the old "summary_kind" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSummaryKind(ctx context.Context) (v document.SummaryKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummaryKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummaryKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummaryKind: %w", err)
	}
	return oldValue.SummaryKind, nil
}

// ResetSummaryKind resets all changes to the "summary_kind" field.
func (m *DocumentMutation) ResetSummaryKind() {
	m.summary_kind = nil
}

// SetRawSummary sets the "raw_summary" field.
func (m *DocumentMutation) SetRawSummary(s string) {
	m.raw_summary = &s
}

// RawSummary returns the value of the "raw_summary" field in the mutation.
func (m *DocumentMutation) RawSummary() (r string, exists bool) {
	v := m.raw_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldRawSummary returns the old "raw_summary" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldRawSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawSummary: %w", err)
	}
	return oldValue.RawSummary, nil
}

// ClearRawSummary clears the value of the "raw_summary" field.
func (m *DocumentMutation) ClearRawSummary() {
	m.raw_summary = nil
	m.clearedFields[document.FieldRawSummary] = struct{}{}
}

// RawSummaryCleared returns if the "raw_summary" field was cleared in this mutation.
func (m *DocumentMutation) RawSummaryCleared() bool {
	_, ok := m.clearedFields[document.FieldRawSummary]
	return ok
}

// ResetRawSummary resets all changes to the "raw_summary" field.
func (m *DocumentMutation) ResetRawSummary() {
	m.raw_summary = nil
	delete(m.clearedFields, document.FieldRawSummary)
}

// SetPrimaryCategory sets the "primary_category" field.
func (m *DocumentMutation) SetPrimaryCategory(s string) {
	m.primary_category = &s
}

// PrimaryCategory returns the value of the "primary_category" field in the mutation.
func (m *DocumentMutation) PrimaryCategory() (r string, exists bool) {
	v := m.primary_category
	if v == nil {
		return
	}
	return *v, true
}

// OldPrimaryCategory returns the old "primary_category" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPrimaryCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrimaryCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrimaryCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrimaryCategory: %w", err)
	}
	return oldValue.PrimaryCategory, nil
}

// ResetPrimaryCategory resets all changes to the "primary_category" field.
func (m *DocumentMutation) ResetPrimaryCategory() {
	m.primary_category = nil
}

// SetWordCount sets the "word_count" field.
func (m *DocumentMutation) SetWordCount(i int) {
	m.word_count = &i
	m.addword_count = nil
}

// WordCount returns the value of the "word_count" field in the mutation.
func (m *DocumentMutation) WordCount() (r int, exists bool) {
	v := m.word_count
	if v == nil {
		return
	}
	return *v, true
}

// OldWordCount returns the old "word_count" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldWordCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWordCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWordCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWordCount: %w", err)
	}
	return oldValue.WordCount, nil
}

// AddWordCount adds i to the "word_count" field.
func (m *DocumentMutation) AddWordCount(i int) {
	if m.addword_count != nil {
		*m.addword_count += i
	} else {
		m.addword_count = &i
	}
}

// AddedWordCount returns the value that was added to the "word_count" field in this mutation.
func (m *DocumentMutation) AddedWordCount() (r int, exists bool) {
	v := m.addword_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetWordCount resets all changes to the "word_count" field.
func (m *DocumentMutation) ResetWordCount() {
	m.word_count = nil
	m.addword_count = nil
}

// SetPageCount sets the "page_count" field.
func (m *DocumentMutation) SetPageCount(i int) {
	m.page_count = &i
	m.addpage_count = nil
}

// PageCount returns the value of the "page_count" field in the mutation.
func (m *DocumentMutation) PageCount() (r int, exists bool) {
	v := m.page_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPageCount returns the old "page_count" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageCount: %w", err)
	}
	return oldValue.PageCount, nil
}

// AddPageCount adds i to the "page_count" field.
func (m *DocumentMutation) AddPageCount(i int) {
	if m.addpage_count != nil {
		*m.addpage_count += i
	} else {
		m.addpage_count = &i
	}
}

// AddedPageCount returns the value that was added to the "page_count" field in this mutation.
func (m *DocumentMutation) AddedPageCount() (r int, exists bool) {
	v := m.addpage_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearPageCount clears the value of the "page_count" field.
func (m *DocumentMutation) ClearPageCount() {
	m.page_count = nil
	m.addpage_count = nil
	m.clearedFields[document.FieldPageCount] = struct{}{}
}

// PageCountCleared returns if the "page_count" field was cleared in this mutation.
func (m *DocumentMutation) PageCountCleared() bool {
	_, ok := m.clearedFields[document.FieldPageCount]
	return ok
}

// ResetPageCount resets all changes to the "page_count" field.
func (m *DocumentMutation) ResetPageCount() {
	m.page_count = nil
	m.addpage_count = nil
	delete(m.clearedFields, document.FieldPageCount)
}

// SetProcessedAt sets the "processed_at" field.
func (m *DocumentMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *DocumentMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldProcessedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *DocumentMutation) ResetProcessedAt() {
	m.processed_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddKeywordIDs adds the "keywords" edge to the Keyword entity by ids.
func (m *DocumentMutation) AddKeywordIDs(ids ...uuid.UUID) {
	if m.keywords == nil {
		m.keywords = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.keywords[ids[i]] = struct{}{}
	}
}

// ClearKeywords clears the "keywords" edge to the Keyword entity.
func (m *DocumentMutation) ClearKeywords() {
	m.clearedkeywords = true
}

// KeywordsCleared reports if the "keywords" edge to the Keyword entity was cleared.
func (m *DocumentMutation) KeywordsCleared() bool {
	return m.clearedkeywords
}

// RemoveKeywordIDs removes the "keywords" edge to the Keyword entity by IDs.
func (m *DocumentMutation) RemoveKeywordIDs(ids ...uuid.UUID) {
	if m.removedkeywords == nil {
		m.removedkeywords = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.keywords, ids[i])
		m.removedkeywords[ids[i]] = struct{}{}
	}
}

// RemovedKeywords returns the removed IDs of the "keywords" edge to the Keyword entity.
func (m *DocumentMutation) RemovedKeywordsIDs() (ids []uuid.UUID) {
	for id := range m.removedkeywords {
		ids = append(ids, id)
	}
	return
}

// KeywordsIDs returns the "keywords" edge IDs in the mutation.
func (m *DocumentMutation) KeywordsIDs() (ids []uuid.UUID) {
	for id := range m.keywords {
		ids = append(ids, id)
	}
	return
}

// ResetKeywords resets all changes to the "keywords" edge.
func (m *DocumentMutation) ResetKeywords() {
	m.keywords = nil
	m.clearedkeywords = false
	m.removedkeywords = nil
}

// AddScoreIDs adds the "scores" edge to the CategoryScore entity by ids.
func (m *DocumentMutation) AddScoreIDs(ids ...uuid.UUID) {
	if m.scores == nil {
		m.scores = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.scores[ids[i]] = struct{}{}
	}
}

// ClearScores clears the "scores" edge to the CategoryScore entity.
func (m *DocumentMutation) ClearScores() {
	m.clearedscores = true
}

// ScoresCleared reports if the "scores" edge to the CategoryScore entity was cleared.
func (m *DocumentMutation) ScoresCleared() bool {
	return m.clearedscores
}

// RemoveScoreIDs removes the "scores" edge to the CategoryScore entity by IDs.
func (m *DocumentMutation) RemoveScoreIDs(ids ...uuid.UUID) {
	if m.removedscores == nil {
		m.removedscores = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.scores, ids[i])
		m.removedscores[ids[i]] = struct{}{}
	}
}

// RemovedScores returns the removed IDs of the "scores" edge to the CategoryScore entity.
func (m *DocumentMutation) RemovedScoresIDs() (ids []uuid.UUID) {
	for id := range m.removedscores {
		ids = append(ids, id)
	}
	return
}

// ScoresIDs returns the "scores" edge IDs in the mutation.
func (m *DocumentMutation) ScoresIDs() (ids []uuid.UUID) {
	for id := range m.scores {
		ids = append(ids, id)
	}
	return
}

// ResetScores resets all changes to the "scores" edge.
func (m *DocumentMutation) ResetScores() {
	m.scores = nil
	m.clearedscores = false
	m.removedscores = nil
}

// AddFindingIDs adds the "findings" edge to the KeyFinding entity by ids.
func (m *DocumentMutation) AddFindingIDs(ids ...uuid.UUID) {
	if m.findings == nil {
		m.findings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.findings[ids[i]] = struct{}{}
	}
}

// ClearFindings clears the "findings" edge to the KeyFinding entity.
func (m *DocumentMutation) ClearFindings() {
	m.clearedfindings = true
}

// FindingsCleared reports if the "findings" edge to the KeyFinding entity was cleared.
func (m *DocumentMutation) FindingsCleared() bool {
	return m.clearedfindings
}

// RemoveFindingIDs removes the "findings" edge to the KeyFinding entity by IDs.
func (m *DocumentMutation) RemoveFindingIDs(ids ...uuid.UUID) {
	if m.removedfindings == nil {
		m.removedfindings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.findings, ids[i])
		m.removedfindings[ids[i]] = struct{}{}
	}
}

// RemovedFindings returns the removed IDs of the "findings" edge to the KeyFinding entity.
func (m *DocumentMutation) RemovedFindingsIDs() (ids []uuid.UUID) {
	for id := range m.removedfindings {
		ids = append(ids, id)
	}
	return
}

// FindingsIDs returns the "findings" edge IDs in the mutation.
func (m *DocumentMutation) FindingsIDs() (ids []uuid.UUID) {
	for id := range m.findings {
		ids = append(ids, id)
	}
	return
}

// ResetFindings resets all changes to the "findings" edge.
func (m *DocumentMutation) ResetFindings() {
	m.findings = nil
	m.clearedfindings = false
	m.removedfindings = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 24)
	if m.source_file != nil {
		fields = append(fields, document.FieldSourceFile)
	}
	if m.source_path != nil {
		fields = append(fields, document.FieldSourcePath)
	}
	if m.file_format != nil {
		fields = append(fields, document.FieldFileFormat)
	}
	if m.content_hash != nil {
		fields = append(fields, document.FieldContentHash)
	}
	if m.derived_name != nil {
		fields = append(fields, document.FieldDerivedName)
	}
	if m.title != nil {
		fields = append(fields, document.FieldTitle)
	}
	if m.authors != nil {
		fields = append(fields, document.FieldAuthors)
	}
	if m.year_published != nil {
		fields = append(fields, document.FieldYearPublished)
	}
	if m.journal != nil {
		fields = append(fields, document.FieldJournal)
	}
	if m.bibtex_citation != nil {
		fields = append(fields, document.FieldBibtexCitation)
	}
	if m.doc_type != nil {
		fields = append(fields, document.FieldDocType)
	}
	if m.sample_size != nil {
		fields = append(fields, document.FieldSampleSize)
	}
	if m.method != nil {
		fields = append(fields, document.FieldMethod)
	}
	if m.prediction_model != nil {
		fields = append(fields, document.FieldPredictionModel)
	}
	if m.key_takeaways != nil {
		fields = append(fields, document.FieldKeyTakeaways)
	}
	if m.categories != nil {
		fields = append(fields, document.FieldCategories)
	}
	if m.summary_kind != nil {
		fields = append(fields, document.FieldSummaryKind)
	}
	if m.raw_summary != nil {
		fields = append(fields, document.FieldRawSummary)
	}
	if m.primary_category != nil {
		fields = append(fields, document.FieldPrimaryCategory)
	}
	if m.word_count != nil {
		fields = append(fields, document.FieldWordCount)
	}
	if m.page_count != nil {
		fields = append(fields, document.FieldPageCount)
	}
	if m.processed_at != nil {
		fields = append(fields, document.FieldProcessedAt)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, document.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldSourceFile:
		return m.SourceFile()
	case document.FieldSourcePath:
		return m.SourcePath()
	case document.FieldFileFormat:
		return m.FileFormat()
	case document.FieldContentHash:
		return m.ContentHash()
	case document.FieldDerivedName:
		return m.DerivedName()
	case document.FieldTitle:
		return m.Title()
	case document.FieldAuthors:
		return m.Authors()
	case document.FieldYearPublished:
		return m.YearPublished()
	case document.FieldJournal:
		return m.Journal()
	case document.FieldBibtexCitation:
		return m.BibtexCitation()
	case document.FieldDocType:
		return m.DocType()
	case document.FieldSampleSize:
		return m.SampleSize()
	case document.FieldMethod:
		return m.Method()
	case document.FieldPredictionModel:
		return m.PredictionModel()
	case document.FieldKeyTakeaways:
		return m.KeyTakeaways()
	case document.FieldCategories:
		return m.Categories()
	case document.FieldSummaryKind:
		return m.SummaryKind()
	case document.FieldRawSummary:
		return m.RawSummary()
	case document.FieldPrimaryCategory:
		return m.PrimaryCategory()
	case document.FieldWordCount:
		return m.WordCount()
	case document.FieldPageCount:
		return m.PageCount()
	case document.FieldProcessedAt:
		return m.ProcessedAt()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	case document.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldSourceFile:
		return m.OldSourceFile(ctx)
	case document.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case document.FieldFileFormat:
		return m.OldFileFormat(ctx)
	case document.FieldContentHash:
		return m.OldContentHash(ctx)
	case document.FieldDerivedName:
		return m.OldDerivedName(ctx)
	case document.FieldTitle:
		return m.OldTitle(ctx)
	case document.FieldAuthors:
		return m.OldAuthors(ctx)
	case document.FieldYearPublished:
		return m.OldYearPublished(ctx)
	case document.FieldJournal:
		return m.OldJournal(ctx)
	case document.FieldBibtexCitation:
		return m.OldBibtexCitation(ctx)
	case document.FieldDocType:
		return m.OldDocType(ctx)
	case document.FieldSampleSize:
		return m.OldSampleSize(ctx)
	case document.FieldMethod:
		return m.OldMethod(ctx)
	case document.FieldPredictionModel:
		return m.OldPredictionModel(ctx)
	case document.FieldKeyTakeaways:
		return m.OldKeyTakeaways(ctx)
	case document.FieldCategories:
		return m.OldCategories(ctx)
	case document.FieldSummaryKind:
		return m.OldSummaryKind(ctx)
	case document.FieldRawSummary:
		return m.OldRawSummary(ctx)
	case document.FieldPrimaryCategory:
		return m.OldPrimaryCategory(ctx)
	case document.FieldWordCount:
		return m.OldWordCount(ctx)
	case document.FieldPageCount:
		return m.OldPageCount(ctx)
	case document.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case document.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldSourceFile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceFile(v)
		return nil
	case document.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case document.FieldFileFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileFormat(v)
		return nil
	case document.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case document.FieldDerivedName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDerivedName(v)
		return nil
	case document.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case document.FieldAuthors:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthors(v)
		return nil
	case document.FieldYearPublished:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYearPublished(v)
		return nil
	case document.FieldJournal:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJournal(v)
		return nil
	case document.FieldBibtexCitation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBibtexCitation(v)
		return nil
	case document.FieldDocType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocType(v)
		return nil
	case document.FieldSampleSize:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSampleSize(v)
		return nil
	case document.FieldMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMethod(v)
		return nil
	case document.FieldPredictionModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPredictionModel(v)
		return nil
	case document.FieldKeyTakeaways:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyTakeaways(v)
		return nil
	case document.FieldCategories:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategories(v)
		return nil
	case document.FieldSummaryKind:
		v, ok := value.(document.SummaryKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummaryKind(v)
		return nil
	case document.FieldRawSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawSummary(v)
		return nil
	case document.FieldPrimaryCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrimaryCategory(v)
		return nil
	case document.FieldWordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWordCount(v)
		return nil
	case document.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageCount(v)
		return nil
	case document.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case document.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addword_count != nil {
		fields = append(fields, document.FieldWordCount)
	}
	if m.addpage_count != nil {
		fields = append(fields, document.FieldPageCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldWordCount:
		return m.AddedWordCount()
	case document.FieldPageCount:
		return m.AddedPageCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldWordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWordCount(v)
		return nil
	case document.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageCount(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldDerivedName) {
		fields = append(fields, document.FieldDerivedName)
	}
	if m.FieldCleared(document.FieldTitle) {
		fields = append(fields, document.FieldTitle)
	}
	if m.FieldCleared(document.FieldAuthors) {
		fields = append(fields, document.FieldAuthors)
	}
	if m.FieldCleared(document.FieldYearPublished) {
		fields = append(fields, document.FieldYearPublished)
	}
	if m.FieldCleared(document.FieldJournal) {
		fields = append(fields, document.FieldJournal)
	}
	if m.FieldCleared(document.FieldBibtexCitation) {
		fields = append(fields, document.FieldBibtexCitation)
	}
	if m.FieldCleared(document.FieldDocType) {
		fields = append(fields, document.FieldDocType)
	}
	if m.FieldCleared(document.FieldSampleSize) {
		fields = append(fields, document.FieldSampleSize)
	}
	if m.FieldCleared(document.FieldMethod) {
		fields = append(fields, document.FieldMethod)
	}
	if m.FieldCleared(document.FieldPredictionModel) {
		fields = append(fields, document.FieldPredictionModel)
	}
	if m.FieldCleared(document.FieldKeyTakeaways) {
		fields = append(fields, document.FieldKeyTakeaways)
	}
	if m.FieldCleared(document.FieldCategories) {
		fields = append(fields, document.FieldCategories)
	}
	if m.FieldCleared(document.FieldRawSummary) {
		fields = append(fields, document.FieldRawSummary)
	}
	if m.FieldCleared(document.FieldPageCount) {
		fields = append(fields, document.FieldPageCount)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldDerivedName:
		m.ClearDerivedName()
		return nil
	case document.FieldTitle:
		m.ClearTitle()
		return nil
	case document.FieldAuthors:
		m.ClearAuthors()
		return nil
	case document.FieldYearPublished:
		m.ClearYearPublished()
		return nil
	case document.FieldJournal:
		m.ClearJournal()
		return nil
	case document.FieldBibtexCitation:
		m.ClearBibtexCitation()
		return nil
	case document.FieldDocType:
		m.ClearDocType()
		return nil
	case document.FieldSampleSize:
		m.ClearSampleSize()
		return nil
	case document.FieldMethod:
		m.ClearMethod()
		return nil
	case document.FieldPredictionModel:
		m.ClearPredictionModel()
		return nil
	case document.FieldKeyTakeaways:
		m.ClearKeyTakeaways()
		return nil
	case document.FieldCategories:
		m.ClearCategories()
		return nil
	case document.FieldRawSummary:
		m.ClearRawSummary()
		return nil
	case document.FieldPageCount:
		m.ClearPageCount()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldSourceFile:
		m.ResetSourceFile()
		return nil
	case document.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case document.FieldFileFormat:
		m.ResetFileFormat()
		return nil
	case document.FieldContentHash:
		m.ResetContentHash()
		return nil
	case document.FieldDerivedName:
		m.ResetDerivedName()
		return nil
	case document.FieldTitle:
		m.ResetTitle()
		return nil
	case document.FieldAuthors:
		m.ResetAuthors()
		return nil
	case document.FieldYearPublished:
		m.ResetYearPublished()
		return nil
	case document.FieldJournal:
		m.ResetJournal()
		return nil
	case document.FieldBibtexCitation:
		m.ResetBibtexCitation()
		return nil
	case document.FieldDocType:
		m.ResetDocType()
		return nil
	case document.FieldSampleSize:
		m.ResetSampleSize()
		return nil
	case document.FieldMethod:
		m.ResetMethod()
		return nil
	case document.FieldPredictionModel:
		m.ResetPredictionModel()
		return nil
	case document.FieldKeyTakeaways:
		m.ResetKeyTakeaways()
		return nil
	case document.FieldCategories:
		m.ResetCategories()
		return nil
	case document.FieldSummaryKind:
		m.ResetSummaryKind()
		return nil
	case document.FieldRawSummary:
		m.ResetRawSummary()
		return nil
	case document.FieldPrimaryCategory:
		m.ResetPrimaryCategory()
		return nil
	case document.FieldWordCount:
		m.ResetWordCount()
		return nil
	case document.FieldPageCount:
		m.ResetPageCount()
		return nil
	case document.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case document.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.keywords != nil {
		edges = append(edges, document.EdgeKeywords)
	}
	if m.scores != nil {
		edges = append(edges, document.EdgeScores)
	}
	if m.findings != nil {
		edges = append(edges, document.EdgeFindings)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeKeywords:
		ids := make([]ent.Value, 0, len(m.keywords))
		for id := range m.keywords {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeScores:
		ids := make([]ent.Value, 0, len(m.scores))
		for id := range m.scores {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeFindings:
		ids := make([]ent.Value, 0, len(m.findings))
		for id := range m.findings {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedkeywords != nil {
		edges = append(edges, document.EdgeKeywords)
	}
	if m.removedscores != nil {
		edges = append(edges, document.EdgeScores)
	}
	if m.removedfindings != nil {
		edges = append(edges, document.EdgeFindings)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeKeywords:
		ids := make([]ent.Value, 0, len(m.removedkeywords))
		for id := range m.removedkeywords {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeScores:
		ids := make([]ent.Value, 0, len(m.removedscores))
		for id := range m.removedscores {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeFindings:
		ids := make([]ent.Value, 0, len(m.removedfindings))
		for id := range m.removedfindings {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedkeywords {
		edges = append(edges, document.EdgeKeywords)
	}
	if m.clearedscores {
		edges = append(edges, document.EdgeScores)
	}
	if m.clearedfindings {
		edges = append(edges, document.EdgeFindings)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeKeywords:
		return m.clearedkeywords
	case document.EdgeScores:
		return m.clearedscores
	case document.EdgeFindings:
		return m.clearedfindings
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeKeywords:
		m.ResetKeywords()
		return nil
	case document.EdgeScores:
		m.ResetScores()
		return nil
	case document.EdgeFindings:
		m.ResetFindings()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// KeyFindingMutation represents an operation that mutates the KeyFinding nodes in the graph.
type KeyFindingMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	name            *string
	description     *string
	clearedFields   map[string]struct{}
	document        *uuid.UUID
	cleareddocument bool
	done            bool
	oldValue        func(context.Context) (*KeyFinding, error)
	predicates      []predicate.KeyFinding
}

var _ ent.Mutation = (*KeyFindingMutation)(nil)

// keyfindingOption allows management of the mutation configuration using functional options.
type keyfindingOption func(*KeyFindingMutation)

// newKeyFindingMutation creates new mutation for the KeyFinding entity.
func newKeyFindingMutation(c config, op Op, opts ...keyfindingOption) *KeyFindingMutation {
	m := &KeyFindingMutation{
		config:        c,
		op:            op,
		typ:           TypeKeyFinding,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withKeyFindingID sets the ID field of the mutation.
func withKeyFindingID(id uuid.UUID) keyfindingOption {
	return func(m *KeyFindingMutation) {
		var (
			err   error
			once  sync.Once
			value *KeyFinding
		)
		m.oldValue = func(ctx context.Context) (*KeyFinding, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().KeyFinding.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withKeyFinding sets the old KeyFinding of the mutation.
func withKeyFinding(node *KeyFinding) keyfindingOption {
	return func(m *KeyFindingMutation) {
		m.oldValue = func(context.Context) (*KeyFinding, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m KeyFindingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m KeyFindingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of KeyFinding entities.
func (m *KeyFindingMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *KeyFindingMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *KeyFindingMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().KeyFinding.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *KeyFindingMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *KeyFindingMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the KeyFinding entity.
// If the KeyFinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeyFindingMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *KeyFindingMutation) ResetDocumentID() {
	m.document = nil
}

// SetName sets the "name" field.
func (m *KeyFindingMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *KeyFindingMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the KeyFinding entity.
// If the KeyFinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeyFindingMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *KeyFindingMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *KeyFindingMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *KeyFindingMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the KeyFinding entity.
// If the KeyFinding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeyFindingMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *KeyFindingMutation) ResetDescription() {
	m.description = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *KeyFindingMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[keyfinding.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *KeyFindingMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *KeyFindingMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *KeyFindingMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the KeyFindingMutation builder.
func (m *KeyFindingMutation) Where(ps ...predicate.KeyFinding) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the KeyFindingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *KeyFindingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.KeyFinding, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *KeyFindingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *KeyFindingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (KeyFinding).
func (m *KeyFindingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *KeyFindingMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.document != nil {
		fields = append(fields, keyfinding.FieldDocumentID)
	}
	if m.name != nil {
		fields = append(fields, keyfinding.FieldName)
	}
	if m.description != nil {
		fields = append(fields, keyfinding.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *KeyFindingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case keyfinding.FieldDocumentID:
		return m.DocumentID()
	case keyfinding.FieldName:
		return m.Name()
	case keyfinding.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *KeyFindingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case keyfinding.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case keyfinding.FieldName:
		return m.OldName(ctx)
	case keyfinding.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown KeyFinding field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KeyFindingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case keyfinding.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case keyfinding.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case keyfinding.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown KeyFinding field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *KeyFindingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *KeyFindingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KeyFindingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown KeyFinding numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *KeyFindingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *KeyFindingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *KeyFindingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown KeyFinding nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *KeyFindingMutation) ResetField(name string) error {
	switch name {
	case keyfinding.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case keyfinding.FieldName:
		m.ResetName()
		return nil
	case keyfinding.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown KeyFinding field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *KeyFindingMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, keyfinding.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *KeyFindingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case keyfinding.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *KeyFindingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *KeyFindingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *KeyFindingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, keyfinding.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *KeyFindingMutation) EdgeCleared(name string) bool {
	switch name {
	case keyfinding.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *KeyFindingMutation) ClearEdge(name string) error {
	switch name {
	case keyfinding.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown KeyFinding unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *KeyFindingMutation) ResetEdge(name string) error {
	switch name {
	case keyfinding.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown KeyFinding edge %s", name)
}

// KeywordMutation represents an operation that mutates the Keyword nodes in the graph.
type KeywordMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	term            *string
	rank            *int
	addrank         *int
	source          *keyword.Source
	clearedFields   map[string]struct{}
	document        *uuid.UUID
	cleareddocument bool
	done            bool
	oldValue        func(context.Context) (*Keyword, error)
	predicates      []predicate.Keyword
}

var _ ent.Mutation = (*KeywordMutation)(nil)

// keywordOption allows management of the mutation configuration using functional options.
type keywordOption func(*KeywordMutation)

// newKeywordMutation creates new mutation for the Keyword entity.
func newKeywordMutation(c config, op Op, opts ...keywordOption) *KeywordMutation {
	m := &KeywordMutation{
		config:        c,
		op:            op,
		typ:           TypeKeyword,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withKeywordID sets the ID field of the mutation.
func withKeywordID(id uuid.UUID) keywordOption {
	return func(m *KeywordMutation) {
		var (
			err   error
			once  sync.Once
			value *Keyword
		)
		m.oldValue = func(ctx context.Context) (*Keyword, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Keyword.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withKeyword sets the old Keyword of the mutation.
func withKeyword(node *Keyword) keywordOption {
	return func(m *KeywordMutation) {
		m.oldValue = func(context.Context) (*Keyword, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m KeywordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m KeywordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Keyword entities.
func (m *KeywordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *KeywordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *KeywordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Keyword.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *KeywordMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *KeywordMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the Keyword entity.
// If the Keyword object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *KeywordMutation) ResetDocumentID() {
	m.document = nil
}

// SetTerm sets the "term" field.
func (m *KeywordMutation) SetTerm(s string) {
	m.term = &s
}

// Term returns the value of the "term" field in the mutation.
func (m *KeywordMutation) Term() (r string, exists bool) {
	v := m.term
	if v == nil {
		return
	}
	return *v, true
}

// OldTerm returns the old "term" field's value of the Keyword entity.
// If the Keyword object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordMutation) OldTerm(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTerm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTerm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTerm: %w", err)
	}
	return oldValue.Term, nil
}

// ResetTerm resets all changes to the "term" field.
func (m *KeywordMutation) ResetTerm() {
	m.term = nil
}

// SetRank sets the "rank" field.
func (m *KeywordMutation) SetRank(i int) {
	m.rank = &i
	m.addrank = nil
}

// Rank returns the value of the "rank" field in the mutation.
func (m *KeywordMutation) Rank() (r int, exists bool) {
	v := m.rank
	if v == nil {
		return
	}
	return *v, true
}

// OldRank returns the old "rank" field's value of the Keyword entity.
// If the Keyword object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordMutation) OldRank(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRank is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRank requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRank: %w", err)
	}
	return oldValue.Rank, nil
}

// AddRank adds i to the "rank" field.
func (m *KeywordMutation) AddRank(i int) {
	if m.addrank != nil {
		*m.addrank += i
	} else {
		m.addrank = &i
	}
}

// AddedRank returns the value that was added to the "rank" field in this mutation.
func (m *KeywordMutation) AddedRank() (r int, exists bool) {
	v := m.addrank
	if v == nil {
		return
	}
	return *v, true
}

// ResetRank resets all changes to the "rank" field.
func (m *KeywordMutation) ResetRank() {
	m.rank = nil
	m.addrank = nil
}

// SetSource sets the "source" field.
func (m *KeywordMutation) SetSource(k keyword.Source) {
	m.source = &k
}

// Source returns the value of the "source" field in the mutation.
func (m *KeywordMutation) Source() (r keyword.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Keyword entity.
// If the Keyword object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KeywordMutation) OldSource(ctx context.Context) (v keyword.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *KeywordMutation) ResetSource() {
	m.source = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *KeywordMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[keyword.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *KeywordMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *KeywordMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *KeywordMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the KeywordMutation builder.
func (m *KeywordMutation) Where(ps ...predicate.Keyword) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the KeywordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *KeywordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Keyword, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *KeywordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *KeywordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Keyword).
func (m *KeywordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *KeywordMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.document != nil {
		fields = append(fields, keyword.FieldDocumentID)
	}
	if m.term != nil {
		fields = append(fields, keyword.FieldTerm)
	}
	if m.rank != nil {
		fields = append(fields, keyword.FieldRank)
	}
	if m.source != nil {
		fields = append(fields, keyword.FieldSource)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *KeywordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case keyword.FieldDocumentID:
		return m.DocumentID()
	case keyword.FieldTerm:
		return m.Term()
	case keyword.FieldRank:
		return m.Rank()
	case keyword.FieldSource:
		return m.Source()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *KeywordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case keyword.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case keyword.FieldTerm:
		return m.OldTerm(ctx)
	case keyword.FieldRank:
		return m.OldRank(ctx)
	case keyword.FieldSource:
		return m.OldSource(ctx)
	}
	return nil, fmt.Errorf("unknown Keyword field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KeywordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case keyword.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case keyword.FieldTerm:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTerm(v)
		return nil
	case keyword.FieldRank:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRank(v)
		return nil
	case keyword.FieldSource:
		v, ok := value.(keyword.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	}
	return fmt.Errorf("unknown Keyword field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *KeywordMutation) AddedFields() []string {
	var fields []string
	if m.addrank != nil {
		fields = append(fields, keyword.FieldRank)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *KeywordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case keyword.FieldRank:
		return m.AddedRank()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KeywordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case keyword.FieldRank:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRank(v)
		return nil
	}
	return fmt.Errorf("unknown Keyword numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *KeywordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *KeywordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *KeywordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Keyword nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *KeywordMutation) ResetField(name string) error {
	switch name {
	case keyword.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case keyword.FieldTerm:
		m.ResetTerm()
		return nil
	case keyword.FieldRank:
		m.ResetRank()
		return nil
	case keyword.FieldSource:
		m.ResetSource()
		return nil
	}
	return fmt.Errorf("unknown Keyword field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *KeywordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, keyword.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *KeywordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case keyword.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *KeywordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *KeywordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *KeywordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, keyword.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *KeywordMutation) EdgeCleared(name string) bool {
	switch name {
	case keyword.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *KeywordMutation) ClearEdge(name string) error {
	switch name {
	case keyword.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown Keyword unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *KeywordMutation) ResetEdge(name string) error {
	switch name {
	case keyword.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown Keyword edge %s", name)
}
