// Code generated by ent, DO NOT EDIT.

package document

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSourceFile holds the string denoting the source_file field in the database.
	FieldSourceFile = "source_file"
	// FieldSourcePath holds the string denoting the source_path field in the database.
	FieldSourcePath = "source_path"
	// FieldFileFormat holds the string denoting the file_format field in the database.
	FieldFileFormat = "file_format"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldDerivedName holds the string denoting the derived_name field in the database.
	FieldDerivedName = "derived_name"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldAuthors holds the string denoting the authors field in the database.
	FieldAuthors = "authors"
	// FieldYearPublished holds the string denoting the year_published field in the database.
	FieldYearPublished = "year_published"
	// FieldJournal holds the string denoting the journal field in the database.
	FieldJournal = "journal"
	// FieldBibtexCitation holds the string denoting the bibtex_citation field in the database.
	FieldBibtexCitation = "bibtex_citation"
	// FieldDocType holds the string denoting the doc_type field in the database.
	FieldDocType = "doc_type"
	// FieldSampleSize holds the string denoting the sample_size field in the database.
	FieldSampleSize = "sample_size"
	// FieldMethod holds the string denoting the method field in the database.
	FieldMethod = "method"
	// FieldPredictionModel holds the string denoting the prediction_model field in the database.
	FieldPredictionModel = "prediction_model"
	// FieldKeyTakeaways holds the string denoting the key_takeaways field in the database.
	FieldKeyTakeaways = "key_takeaways"
	// FieldCategories holds the string denoting the categories field in the database.
	FieldCategories = "categories_json"
	// FieldSummaryKind holds the string denoting the summary_kind field in the database.
	FieldSummaryKind = "summary_kind"
	// FieldRawSummary holds the string denoting the raw_summary field in the database.
	FieldRawSummary = "raw_summary"
	// FieldPrimaryCategory holds the string denoting the primary_category field in the database.
	FieldPrimaryCategory = "primary_category"
	// FieldWordCount holds the string denoting the word_count field in the database.
	FieldWordCount = "word_count"
	// FieldPageCount holds the string denoting the page_count field in the database.
	FieldPageCount = "page_count"
	// FieldProcessedAt holds the string denoting the processed_at field in the database.
	FieldProcessedAt = "processed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeKeywords holds the string denoting the keywords edge name in mutations.
	EdgeKeywords = "keywords"
	// EdgeScores holds the string denoting the scores edge name in mutations.
	EdgeScores = "scores"
	// EdgeFindings holds the string denoting the findings edge name in mutations.
	EdgeFindings = "findings"
	// Table holds the table name of the document in the database.
	Table = "documents"
	// KeywordsTable is the table that holds the keywords relation/edge.
	KeywordsTable = "keywords"
	// KeywordsInverseTable is the table name for the Keyword entity.
	// It exists in this package in order to avoid circular dependency with the "keyword" package.
	KeywordsInverseTable = "keywords"
	// KeywordsColumn is the table column denoting the keywords relation/edge.
	KeywordsColumn = "document_id"
	// ScoresTable is the table that holds the scores relation/edge.
	ScoresTable = "category_scores"
	// ScoresInverseTable is the table name for the CategoryScore entity.
	// It exists in this package in order to avoid circular dependency with the "categoryscore" package.
	ScoresInverseTable = "category_scores"
	// ScoresColumn is the table column denoting the scores relation/edge.
	ScoresColumn = "document_id"
	// FindingsTable is the table that holds the findings relation/edge.
	FindingsTable = "key_findings"
	// FindingsInverseTable is the table name for the KeyFinding entity.
	// It exists in this package in order to avoid circular dependency with the "keyfinding" package.
	FindingsInverseTable = "key_findings"
	// FindingsColumn is the table column denoting the findings relation/edge.
	FindingsColumn = "document_id"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldSourceFile,
	FieldSourcePath,
	FieldFileFormat,
	FieldContentHash,
	FieldDerivedName,
	FieldTitle,
	FieldAuthors,
	FieldYearPublished,
	FieldJournal,
	FieldBibtexCitation,
	FieldDocType,
	FieldSampleSize,
	FieldMethod,
	FieldPredictionModel,
	FieldKeyTakeaways,
	FieldCategories,
	FieldSummaryKind,
	FieldRawSummary,
	FieldPrimaryCategory,
	FieldWordCount,
	FieldPageCount,
	FieldProcessedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// SourceFileValidator is a validator for the "source_file" field. It is called by the builders before save.
	SourceFileValidator func(string) error
	// SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	SourcePathValidator func(string) error
	// FileFormatValidator is a validator for the "file_format" field. It is called by the builders before save.
	FileFormatValidator func(string) error
	// ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	ContentHashValidator func(string) error
	// YearPublishedValidator is a validator for the "year_published" field. It is called by the builders before save.
	YearPublishedValidator func(string) error
	// PredictionModelValidator is a validator for the "prediction_model" field. It is called by the builders before save.
	PredictionModelValidator func(string) error
	// PrimaryCategoryValidator is a validator for the "primary_category" field. It is called by the builders before save.
	PrimaryCategoryValidator func(string) error
	// WordCountValidator is a validator for the "word_count" field. It is called by the builders before save.
	WordCountValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// SummaryKind defines the type for the "summary_kind" enum field.
type SummaryKind string

// SummaryKind values.
const (
	SummaryKindStructured SummaryKind = "structured"
	SummaryKindRaw        SummaryKind = "raw"
	SummaryKindFailed     SummaryKind = "failed"
)

func (sk SummaryKind) String() string {
	return string(sk)
}

// SummaryKindValidator is a validator for the "summary_kind" field enum values. It is called by the builders before save.
func SummaryKindValidator(sk SummaryKind) error {
	switch sk {
	case SummaryKindStructured, SummaryKindRaw, SummaryKindFailed:
		return nil
	default:
		return fmt.Errorf("document: invalid enum value for summary_kind field: %q", sk)
	}
}

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourceFile orders the results by the source_file field.
func BySourceFile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceFile, opts...).ToFunc()
}

// BySourcePath orders the results by the source_path field.
func BySourcePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourcePath, opts...).ToFunc()
}

// ByFileFormat orders the results by the file_format field.
func ByFileFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileFormat, opts...).ToFunc()
}

// ByContentHash orders the results by the content_hash field.
func ByContentHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentHash, opts...).ToFunc()
}

// ByDerivedName orders the results by the derived_name field.
func ByDerivedName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDerivedName, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByAuthors orders the results by the authors field.
func ByAuthors(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthors, opts...).ToFunc()
}

// ByYearPublished orders the results by the year_published field.
func ByYearPublished(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYearPublished, opts...).ToFunc()
}

// ByJournal orders the results by the journal field.
func ByJournal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJournal, opts...).ToFunc()
}

// ByBibtexCitation orders the results by the bibtex_citation field.
func ByBibtexCitation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBibtexCitation, opts...).ToFunc()
}

// ByDocType orders the results by the doc_type field.
func ByDocType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocType, opts...).ToFunc()
}

// BySampleSize orders the results by the sample_size field.
func BySampleSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSampleSize, opts...).ToFunc()
}

// ByMethod orders the results by the method field.
func ByMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMethod, opts...).ToFunc()
}

// ByPredictionModel orders the results by the prediction_model field.
func ByPredictionModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPredictionModel, opts...).ToFunc()
}

// ByKeyTakeaways orders the results by the key_takeaways field.
func ByKeyTakeaways(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKeyTakeaways, opts...).ToFunc()
}

// BySummaryKind orders the results by the summary_kind field.
func BySummaryKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummaryKind, opts...).ToFunc()
}

// ByRawSummary orders the results by the raw_summary field.
func ByRawSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawSummary, opts...).ToFunc()
}

// ByPrimaryCategory orders the results by the primary_category field.
func ByPrimaryCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrimaryCategory, opts...).ToFunc()
}

// ByWordCount orders the results by the word_count field.
func ByWordCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWordCount, opts...).ToFunc()
}

// ByPageCount orders the results by the page_count field.
func ByPageCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageCount, opts...).ToFunc()
}

// ByProcessedAt orders the results by the processed_at field.
func ByProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByKeywordsCount orders the results by keywords count.
func ByKeywordsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newKeywordsStep(), opts...)
	}
}

// ByKeywords orders the results by keywords terms.
func ByKeywords(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newKeywordsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByScoresCount orders the results by scores count.
func ByScoresCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newScoresStep(), opts...)
	}
}

// ByScores orders the results by scores terms.
func ByScores(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newScoresStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByFindingsCount orders the results by findings count.
func ByFindingsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFindingsStep(), opts...)
	}
}

// ByFindings orders the results by findings terms.
func ByFindings(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFindingsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newKeywordsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(KeywordsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, KeywordsTable, KeywordsColumn),
	)
}
func newScoresStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ScoresInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ScoresTable, ScoresColumn),
	)
}
func newFindingsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FindingsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FindingsTable, FindingsColumn),
	)
}
