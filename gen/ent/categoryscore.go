// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/categoryscore"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/document"
)

// CategoryScore is the model entity for the CategoryScore schema.
type CategoryScore struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// ModelScore holds the value of the "model_score" field.
	ModelScore float64 `json:"model_score,omitempty"`
	// KeywordScore holds the value of the "keyword_score" field.
	KeywordScore float64 `json:"keyword_score,omitempty"`
	// SimilarityScore holds the value of the "similarity_score" field.
	SimilarityScore float64 `json:"similarity_score,omitempty"`
	// FinalScore holds the value of the "final_score" field.
	FinalScore float64 `json:"final_score,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CategoryScoreQuery when eager-loading is set.
	Edges        CategoryScoreEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CategoryScoreEdges holds the relations/edges for other nodes in the graph.
type CategoryScoreEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CategoryScoreEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CategoryScore) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case categoryscore.FieldModelScore, categoryscore.FieldKeywordScore, categoryscore.FieldSimilarityScore, categoryscore.FieldFinalScore:
			values[i] = new(sql.NullFloat64)
		case categoryscore.FieldCategory:
			values[i] = new(sql.NullString)
		case categoryscore.FieldID, categoryscore.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CategoryScore fields.
func (_m *CategoryScore) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case categoryscore.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case categoryscore.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case categoryscore.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case categoryscore.FieldModelScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field model_score", values[i])
			} else if value.Valid {
				_m.ModelScore = value.Float64
			}
		case categoryscore.FieldKeywordScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field keyword_score", values[i])
			} else if value.Valid {
				_m.KeywordScore = value.Float64
			}
		case categoryscore.FieldSimilarityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field similarity_score", values[i])
			} else if value.Valid {
				_m.SimilarityScore = value.Float64
			}
		case categoryscore.FieldFinalScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field final_score", values[i])
			} else if value.Valid {
				_m.FinalScore = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CategoryScore.
// This includes values selected through modifiers, order, etc.
func (_m *CategoryScore) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the CategoryScore entity.
func (_m *CategoryScore) QueryDocument() *DocumentQuery {
	return NewCategoryScoreClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this CategoryScore.
// Note that you need to call CategoryScore.Unwrap() before calling this method if this CategoryScore
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CategoryScore) Update() *CategoryScoreUpdateOne {
	return NewCategoryScoreClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CategoryScore entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CategoryScore) Unwrap() *CategoryScore {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CategoryScore is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CategoryScore) String() string {
	var builder strings.Builder
	builder.WriteString("CategoryScore(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("model_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ModelScore))
	builder.WriteString(", ")
	builder.WriteString("keyword_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.KeywordScore))
	builder.WriteString(", ")
	builder.WriteString("similarity_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.SimilarityScore))
	builder.WriteString(", ")
	builder.WriteString("final_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.FinalScore))
	builder.WriteByte(')')
	return builder.String()
}

// CategoryScores is a parsable slice of CategoryScore.
type CategoryScores []*CategoryScore
