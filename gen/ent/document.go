// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/document"
)

// Document is the model entity for the Document schema.
type Document struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SourceFile holds the value of the "source_file" field.
	SourceFile string `json:"source_file,omitempty"`
	// SourcePath holds the value of the "source_path" field.
	SourcePath string `json:"source_path,omitempty"`
	// FileFormat holds the value of the "file_format" field.
	FileFormat string `json:"file_format,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash string `json:"content_hash,omitempty"`
	// DerivedName holds the value of the "derived_name" field.
	DerivedName *string `json:"derived_name,omitempty"`
	// Title holds the value of the "title" field.
	Title *string `json:"title,omitempty"`
	// Authors holds the value of the "authors" field.
	Authors *string `json:"authors,omitempty"`
	// YearPublished holds the value of the "year_published" field.
	YearPublished *string `json:"year_published,omitempty"`
	// Journal holds the value of the "journal" field.
	Journal *string `json:"journal,omitempty"`
	// BibtexCitation holds the value of the "bibtex_citation" field.
	BibtexCitation *string `json:"bibtex_citation,omitempty"`
	// DocType holds the value of the "doc_type" field.
	DocType *string `json:"doc_type,omitempty"`
	// SampleSize holds the value of the "sample_size" field.
	SampleSize *string `json:"sample_size,omitempty"`
	// Method holds the value of the "method" field.
	Method *string `json:"method,omitempty"`
	// PredictionModel holds the value of the "prediction_model" field.
	PredictionModel *string `json:"prediction_model,omitempty"`
	// KeyTakeaways holds the value of the "key_takeaways" field.
	KeyTakeaways *string `json:"key_takeaways,omitempty"`
	// Categories holds the value of the "categories" field.
	Categories []string `json:"categories,omitempty"`
	// SummaryKind holds the value of the "summary_kind" field.
	SummaryKind document.SummaryKind `json:"summary_kind,omitempty"`
	// RawSummary holds the value of the "raw_summary" field.
	RawSummary *string `json:"raw_summary,omitempty"`
	// PrimaryCategory holds the value of the "primary_category" field.
	PrimaryCategory string `json:"primary_category,omitempty"`
	// WordCount holds the value of the "word_count" field.
	WordCount int `json:"word_count,omitempty"`
	// PageCount holds the value of the "page_count" field.
	PageCount int `json:"page_count,omitempty"`
	// ProcessedAt holds the value of the "processed_at" field.
	ProcessedAt time.Time `json:"processed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentQuery when eager-loading is set.
	Edges        DocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentEdges holds the relations/edges for other nodes in the graph.
type DocumentEdges struct {
	// Keywords holds the value of the keywords edge.
	Keywords []*Keyword `json:"keywords,omitempty"`
	// Scores holds the value of the scores edge.
	Scores []*CategoryScore `json:"scores,omitempty"`
	// Findings holds the value of the findings edge.
	Findings []*KeyFinding `json:"findings,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// KeywordsOrErr returns the Keywords value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentEdges) KeywordsOrErr() ([]*Keyword, error) {
	if e.loadedTypes[0] {
		return e.Keywords, nil
	}
	return nil, &NotLoadedError{edge: "keywords"}
}

// ScoresOrErr returns the Scores value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentEdges) ScoresOrErr() ([]*CategoryScore, error) {
	if e.loadedTypes[1] {
		return e.Scores, nil
	}
	return nil, &NotLoadedError{edge: "scores"}
}

// FindingsOrErr returns the Findings value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentEdges) FindingsOrErr() ([]*KeyFinding, error) {
	if e.loadedTypes[2] {
		return e.Findings, nil
	}
	return nil, &NotLoadedError{edge: "findings"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Document) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case document.FieldCategories:
			values[i] = new([]byte)
		case document.FieldWordCount, document.FieldPageCount:
			values[i] = new(sql.NullInt64)
		case document.FieldSourceFile, document.FieldSourcePath, document.FieldFileFormat, document.FieldContentHash, document.FieldDerivedName, document.FieldTitle, document.FieldAuthors, document.FieldYearPublished, document.FieldJournal, document.FieldBibtexCitation, document.FieldDocType, document.FieldSampleSize, document.FieldMethod, document.FieldPredictionModel, document.FieldKeyTakeaways, document.FieldSummaryKind, document.FieldRawSummary, document.FieldPrimaryCategory:
			values[i] = new(sql.NullString)
		case document.FieldProcessedAt, document.FieldCreatedAt, document.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case document.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Document fields.
func (_m *Document) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case document.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case document.FieldSourceFile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_file", values[i])
			} else if value.Valid {
				_m.SourceFile = value.String
			}
		case document.FieldSourcePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_path", values[i])
			} else if value.Valid {
				_m.SourcePath = value.String
			}
		case document.FieldFileFormat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_format", values[i])
			} else if value.Valid {
				_m.FileFormat = value.String
			}
		case document.FieldContentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value.Valid {
				_m.ContentHash = value.String
			}
		case document.FieldDerivedName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field derived_name", values[i])
			} else if value.Valid {
				_m.DerivedName = new(string)
				*_m.DerivedName = value.String
			}
		case document.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = new(string)
				*_m.Title = value.String
			}
		case document.FieldAuthors:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field authors", values[i])
			} else if value.Valid {
				_m.Authors = new(string)
				*_m.Authors = value.String
			}
		case document.FieldYearPublished:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field year_published", values[i])
			} else if value.Valid {
				_m.YearPublished = new(string)
				*_m.YearPublished = value.String
			}
		case document.FieldJournal:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field journal", values[i])
			} else if value.Valid {
				_m.Journal = new(string)
				*_m.Journal = value.String
			}
		case document.FieldBibtexCitation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bibtex_citation", values[i])
			} else if value.Valid {
				_m.BibtexCitation = new(string)
				*_m.BibtexCitation = value.String
			}
		case document.FieldDocType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doc_type", values[i])
			} else if value.Valid {
				_m.DocType = new(string)
				*_m.DocType = value.String
			}
		case document.FieldSampleSize:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sample_size", values[i])
			} else if value.Valid {
				_m.SampleSize = new(string)
				*_m.SampleSize = value.String
			}
		case document.FieldMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field method", values[i])
			} else if value.Valid {
				_m.Method = new(string)
				*_m.Method = value.String
			}
		case document.FieldPredictionModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prediction_model", values[i])
			} else if value.Valid {
				_m.PredictionModel = new(string)
				*_m.PredictionModel = value.String
			}
		case document.FieldKeyTakeaways:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key_takeaways", values[i])
			} else if value.Valid {
				_m.KeyTakeaways = new(string)
				*_m.KeyTakeaways = value.String
			}
		case document.FieldCategories:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field categories", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Categories); err != nil {
					return fmt.Errorf("unmarshal field categories: %w", err)
				}
			}
		case document.FieldSummaryKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary_kind", values[i])
			} else if value.Valid {
				_m.SummaryKind = document.SummaryKind(value.String)
			}
		case document.FieldRawSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_summary", values[i])
			} else if value.Valid {
				_m.RawSummary = new(string)
				*_m.RawSummary = value.String
			}
		case document.FieldPrimaryCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field primary_category", values[i])
			} else if value.Valid {
				_m.PrimaryCategory = value.String
			}
		case document.FieldWordCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field word_count", values[i])
			} else if value.Valid {
				_m.WordCount = int(value.Int64)
			}
		case document.FieldPageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_count", values[i])
			} else if value.Valid {
				_m.PageCount = int(value.Int64)
			}
		case document.FieldProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processed_at", values[i])
			} else if value.Valid {
				_m.ProcessedAt = value.Time
			}
		case document.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case document.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Document.
// This includes values selected through modifiers, order, etc.
func (_m *Document) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryKeywords queries the "keywords" edge of the Document entity.
func (_m *Document) QueryKeywords() *KeywordQuery {
	return NewDocumentClient(_m.config).QueryKeywords(_m)
}

// QueryScores queries the "scores" edge of the Document entity.
func (_m *Document) QueryScores() *CategoryScoreQuery {
	return NewDocumentClient(_m.config).QueryScores(_m)
}

// QueryFindings queries the "findings" edge of the Document entity.
func (_m *Document) QueryFindings() *KeyFindingQuery {
	return NewDocumentClient(_m.config).QueryFindings(_m)
}

// Update returns a builder for updating this Document.
// Note that you need to call Document.Unwrap() before calling this method if this Document
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Document) Update() *DocumentUpdateOne {
	return NewDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Document entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Document) Unwrap() *Document {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Document is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Document) String() string {
	var builder strings.Builder
	builder.WriteString("Document(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_file=")
	builder.WriteString(_m.SourceFile)
	builder.WriteString(", ")
	builder.WriteString("source_path=")
	builder.WriteString(_m.SourcePath)
	builder.WriteString(", ")
	builder.WriteString("file_format=")
	builder.WriteString(_m.FileFormat)
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(_m.ContentHash)
	builder.WriteString(", ")
	if v := _m.DerivedName; v != nil {
		builder.WriteString("derived_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Title; v != nil {
		builder.WriteString("title=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Authors; v != nil {
		builder.WriteString("authors=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.YearPublished; v != nil {
		builder.WriteString("year_published=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Journal; v != nil {
		builder.WriteString("journal=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BibtexCitation; v != nil {
		builder.WriteString("bibtex_citation=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DocType; v != nil {
		builder.WriteString("doc_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SampleSize; v != nil {
		builder.WriteString("sample_size=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Method; v != nil {
		builder.WriteString("method=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PredictionModel; v != nil {
		builder.WriteString("prediction_model=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.KeyTakeaways; v != nil {
		builder.WriteString("key_takeaways=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("categories=")
	builder.WriteString(fmt.Sprintf("%v", _m.Categories))
	builder.WriteString(", ")
	builder.WriteString("summary_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.SummaryKind))
	builder.WriteString(", ")
	if v := _m.RawSummary; v != nil {
		builder.WriteString("raw_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("primary_category=")
	builder.WriteString(_m.PrimaryCategory)
	builder.WriteString(", ")
	builder.WriteString("word_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.WordCount))
	builder.WriteString(", ")
	builder.WriteString("page_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageCount))
	builder.WriteString(", ")
	builder.WriteString("processed_at=")
	builder.WriteString(_m.ProcessedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Documents is a parsable slice of Document.
type Documents []*Document
