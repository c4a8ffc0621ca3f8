// Code generated by ent, DO NOT EDIT.

package categoryscore

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldEQ(FieldDocumentID, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldEQ(FieldCategory, v))
}

// ModelScore applies equality check predicate on the "model_score" field. It's identical to ModelScoreEQ.
func ModelScore(v float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldEQ(FieldModelScore, v))
}

// KeywordScore applies equality check predicate on the "keyword_score" field. It's identical to KeywordScoreEQ.
func KeywordScore(v float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldEQ(FieldKeywordScore, v))
}

// SimilarityScore applies equality check predicate on the "similarity_score" field. It's identical to SimilarityScoreEQ.
func SimilarityScore(v float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldEQ(FieldSimilarityScore, v))
}

// FinalScore applies equality check predicate on the "final_score" field. It's identical to FinalScoreEQ.
func FinalScore(v float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldEQ(FieldFinalScore, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldNotIn(FieldDocumentID, vs...))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldContainsFold(FieldCategory, v))
}

// ModelScoreEQ applies the EQ predicate on the "model_score" field.
func ModelScoreEQ(v float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldEQ(FieldModelScore, v))
}

// ModelScoreNEQ applies the NEQ predicate on the "model_score" field.
func ModelScoreNEQ(v float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldNEQ(FieldModelScore, v))
}

// ModelScoreIn applies the In predicate on the "model_score" field.
func ModelScoreIn(vs ...float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldIn(FieldModelScore, vs...))
}

// ModelScoreNotIn applies the NotIn predicate on the "model_score" field.
func ModelScoreNotIn(vs ...float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldNotIn(FieldModelScore, vs...))
}

// ModelScoreGT applies the GT predicate on the "model_score" field.
func ModelScoreGT(v float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldGT(FieldModelScore, v))
}

// ModelScoreGTE applies the GTE predicate on the "model_score" field.
func ModelScoreGTE(v float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldGTE(FieldModelScore, v))
}

// ModelScoreLT applies the LT predicate on the "model_score" field.
func ModelScoreLT(v float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldLT(FieldModelScore, v))
}

// ModelScoreLTE applies the LTE predicate on the "model_score" field.
func ModelScoreLTE(v float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldLTE(FieldModelScore, v))
}

// KeywordScoreEQ applies the EQ predicate on the "keyword_score" field.
func KeywordScoreEQ(v float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldEQ(FieldKeywordScore, v))
}

// KeywordScoreNEQ applies the NEQ predicate on the "keyword_score" field.
func KeywordScoreNEQ(v float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldNEQ(FieldKeywordScore, v))
}

// KeywordScoreIn applies the In predicate on the "keyword_score" field.
func KeywordScoreIn(vs ...float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldIn(FieldKeywordScore, vs...))
}

// KeywordScoreNotIn applies the NotIn predicate on the "keyword_score" field.
func KeywordScoreNotIn(vs ...float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldNotIn(FieldKeywordScore, vs...))
}

// KeywordScoreGT applies the GT predicate on the "keyword_score" field.
func KeywordScoreGT(v float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldGT(FieldKeywordScore, v))
}

// KeywordScoreGTE applies the GTE predicate on the "keyword_score" field.
func KeywordScoreGTE(v float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldGTE(FieldKeywordScore, v))
}

// KeywordScoreLT applies the LT predicate on the "keyword_score" field.
func KeywordScoreLT(v float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldLT(FieldKeywordScore, v))
}

// KeywordScoreLTE applies the LTE predicate on the "keyword_score" field.
func KeywordScoreLTE(v float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldLTE(FieldKeywordScore, v))
}

// SimilarityScoreEQ applies the EQ predicate on the "similarity_score" field.
func SimilarityScoreEQ(v float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldEQ(FieldSimilarityScore, v))
}

// SimilarityScoreNEQ applies the NEQ predicate on the "similarity_score" field.
func SimilarityScoreNEQ(v float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldNEQ(FieldSimilarityScore, v))
}

// SimilarityScoreIn applies the In predicate on the "similarity_score" field.
func SimilarityScoreIn(vs ...float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldIn(FieldSimilarityScore, vs...))
}

// SimilarityScoreNotIn applies the NotIn predicate on the "similarity_score" field.
func SimilarityScoreNotIn(vs ...float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldNotIn(FieldSimilarityScore, vs...))
}

// SimilarityScoreGT applies the GT predicate on the "similarity_score" field.
func SimilarityScoreGT(v float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldGT(FieldSimilarityScore, v))
}

// SimilarityScoreGTE applies the GTE predicate on the "similarity_score" field.
func SimilarityScoreGTE(v float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldGTE(FieldSimilarityScore, v))
}

// SimilarityScoreLT applies the LT predicate on the "similarity_score" field.
func SimilarityScoreLT(v float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldLT(FieldSimilarityScore, v))
}

// SimilarityScoreLTE applies the LTE predicate on the "similarity_score" field.
func SimilarityScoreLTE(v float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldLTE(FieldSimilarityScore, v))
}

// FinalScoreEQ applies the EQ predicate on the "final_score" field.
func FinalScoreEQ(v float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldEQ(FieldFinalScore, v))
}

// FinalScoreNEQ applies the NEQ predicate on the "final_score" field.
func FinalScoreNEQ(v float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldNEQ(FieldFinalScore, v))
}

// FinalScoreIn applies the In predicate on the "final_score" field.
func FinalScoreIn(vs ...float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldIn(FieldFinalScore, vs...))
}

// FinalScoreNotIn applies the NotIn predicate on the "final_score" field.
func FinalScoreNotIn(vs ...float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldNotIn(FieldFinalScore, vs...))
}

// FinalScoreGT applies the GT predicate on the "final_score" field.
func FinalScoreGT(v float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldGT(FieldFinalScore, v))
}

// FinalScoreGTE applies the GTE predicate on the "final_score" field.
func FinalScoreGTE(v float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldGTE(FieldFinalScore, v))
}

// FinalScoreLT applies the LT predicate on the "final_score" field.
func FinalScoreLT(v float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldLT(FieldFinalScore, v))
}

// FinalScoreLTE applies the LTE predicate on the "final_score" field.
func FinalScoreLTE(v float64) predicate.CategoryScore {
	return predicate.CategoryScore(sql.FieldLTE(FieldFinalScore, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.CategoryScore {
	return predicate.CategoryScore(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.CategoryScore {
	return predicate.CategoryScore(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CategoryScore) predicate.CategoryScore {
	return predicate.CategoryScore(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CategoryScore) predicate.CategoryScore {
	return predicate.CategoryScore(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CategoryScore) predicate.CategoryScore {
	return predicate.CategoryScore(sql.NotPredicates(p))
}
