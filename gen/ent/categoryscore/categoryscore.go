// Code generated by ent, DO NOT EDIT.

package categoryscore

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the categoryscore type in the database.
	Label = "category_score"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldModelScore holds the string denoting the model_score field in the database.
	FieldModelScore = "model_score"
	// FieldKeywordScore holds the string denoting the keyword_score field in the database.
	FieldKeywordScore = "keyword_score"
	// FieldSimilarityScore holds the string denoting the similarity_score field in the database.
	FieldSimilarityScore = "similarity_score"
	// FieldFinalScore holds the string denoting the final_score field in the database.
	FieldFinalScore = "final_score"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// Table holds the table name of the categoryscore in the database.
	Table = "category_scores"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "category_scores"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
)

// Columns holds all SQL columns for categoryscore fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldCategory,
	FieldModelScore,
	FieldKeywordScore,
	FieldSimilarityScore,
	FieldFinalScore,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the CategoryScore queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByModelScore orders the results by the model_score field.
func ByModelScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelScore, opts...).ToFunc()
}

// ByKeywordScore orders the results by the keyword_score field.
func ByKeywordScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKeywordScore, opts...).ToFunc()
}

// BySimilarityScore orders the results by the similarity_score field.
func BySimilarityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSimilarityScore, opts...).ToFunc()
}

// ByFinalScore orders the results by the final_score field.
func ByFinalScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalScore, opts...).ToFunc()
}

// ByDocumentField orders the results by document field.
func ByDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentStep(), sql.OrderByField(field, opts...))
	}
}
func newDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
	)
}
