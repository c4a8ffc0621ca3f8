// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// SourceFile applies equality check predicate on the "source_file" field. It's identical to SourceFileEQ.
func SourceFile(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSourceFile, v))
}

// SourcePath applies equality check predicate on the "source_path" field. It's identical to SourcePathEQ.
func SourcePath(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSourcePath, v))
}

// FileFormat applies equality check predicate on the "file_format" field. It's identical to FileFormatEQ.
func FileFormat(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileFormat, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContentHash, v))
}

// DerivedName applies equality check predicate on the "derived_name" field. It's identical to DerivedNameEQ.
func DerivedName(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDerivedName, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTitle, v))
}

// Authors applies equality check predicate on the "authors" field. It's identical to AuthorsEQ.
func Authors(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldAuthors, v))
}

// YearPublished applies equality check predicate on the "year_published" field. It's identical to YearPublishedEQ.
func YearPublished(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldYearPublished, v))
}

// Journal applies equality check predicate on the "journal" field. It's identical to JournalEQ.
func Journal(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldJournal, v))
}

// BibtexCitation applies equality check predicate on the "bibtex_citation" field. It's identical to BibtexCitationEQ.
func BibtexCitation(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldBibtexCitation, v))
}

// DocType applies equality check predicate on the "doc_type" field. It's identical to DocTypeEQ.
func DocType(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDocType, v))
}

// SampleSize applies equality check predicate on the "sample_size" field. It's identical to SampleSizeEQ.
func SampleSize(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSampleSize, v))
}

// Method applies equality check predicate on the "method" field. It's identical to MethodEQ.
func Method(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldMethod, v))
}

// PredictionModel applies equality check predicate on the "prediction_model" field. It's identical to PredictionModelEQ.
func PredictionModel(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPredictionModel, v))
}

// KeyTakeaways applies equality check predicate on the "key_takeaways" field. It's identical to KeyTakeawaysEQ.
func KeyTakeaways(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldKeyTakeaways, v))
}

// RawSummary applies equality check predicate on the "raw_summary" field. It's identical to RawSummaryEQ.
func RawSummary(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldRawSummary, v))
}

// PrimaryCategory applies equality check predicate on the "primary_category" field. It's identical to PrimaryCategoryEQ.
func PrimaryCategory(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPrimaryCategory, v))
}

// WordCount applies equality check predicate on the "word_count" field. It's identical to WordCountEQ.
func WordCount(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldWordCount, v))
}

// PageCount applies equality check predicate on the "page_count" field. It's identical to PageCountEQ.
func PageCount(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPageCount, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProcessedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// SourceFileEQ applies the EQ predicate on the "source_file" field.
func SourceFileEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSourceFile, v))
}

// SourceFileNEQ applies the NEQ predicate on the "source_file" field.
func SourceFileNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldSourceFile, v))
}

// SourceFileIn applies the In predicate on the "source_file" field.
func SourceFileIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldSourceFile, vs...))
}

// SourceFileNotIn applies the NotIn predicate on the "source_file" field.
func SourceFileNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldSourceFile, vs...))
}

// SourceFileGT applies the GT predicate on the "source_file" field.
func SourceFileGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldSourceFile, v))
}

// SourceFileGTE applies the GTE predicate on the "source_file" field.
func SourceFileGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldSourceFile, v))
}

// SourceFileLT applies the LT predicate on the "source_file" field.
func SourceFileLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldSourceFile, v))
}

// SourceFileLTE applies the LTE predicate on the "source_file" field.
func SourceFileLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldSourceFile, v))
}

// SourceFileContains applies the Contains predicate on the "source_file" field.
func SourceFileContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldSourceFile, v))
}

// SourceFileHasPrefix applies the HasPrefix predicate on the "source_file" field.
func SourceFileHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldSourceFile, v))
}

// SourceFileHasSuffix applies the HasSuffix predicate on the "source_file" field.
func SourceFileHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldSourceFile, v))
}

// SourceFileEqualFold applies the EqualFold predicate on the "source_file" field.
func SourceFileEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldSourceFile, v))
}

// SourceFileContainsFold applies the ContainsFold predicate on the "source_file" field.
func SourceFileContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldSourceFile, v))
}

// SourcePathEQ applies the EQ predicate on the "source_path" field.
func SourcePathEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSourcePath, v))
}

// SourcePathNEQ applies the NEQ predicate on the "source_path" field.
func SourcePathNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldSourcePath, v))
}

// SourcePathIn applies the In predicate on the "source_path" field.
func SourcePathIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldSourcePath, vs...))
}

// SourcePathNotIn applies the NotIn predicate on the "source_path" field.
func SourcePathNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldSourcePath, vs...))
}

// SourcePathGT applies the GT predicate on the "source_path" field.
func SourcePathGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldSourcePath, v))
}

// SourcePathGTE applies the GTE predicate on the "source_path" field.
func SourcePathGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldSourcePath, v))
}

// SourcePathLT applies the LT predicate on the "source_path" field.
func SourcePathLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldSourcePath, v))
}

// SourcePathLTE applies the LTE predicate on the "source_path" field.
func SourcePathLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldSourcePath, v))
}

// SourcePathContains applies the Contains predicate on the "source_path" field.
func SourcePathContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldSourcePath, v))
}

// SourcePathHasPrefix applies the HasPrefix predicate on the "source_path" field.
func SourcePathHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldSourcePath, v))
}

// SourcePathHasSuffix applies the HasSuffix predicate on the "source_path" field.
func SourcePathHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldSourcePath, v))
}

// SourcePathEqualFold applies the EqualFold predicate on the "source_path" field.
func SourcePathEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldSourcePath, v))
}

// SourcePathContainsFold applies the ContainsFold predicate on the "source_path" field.
func SourcePathContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldSourcePath, v))
}

// FileFormatEQ applies the EQ predicate on the "file_format" field.
func FileFormatEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileFormat, v))
}

// FileFormatNEQ applies the NEQ predicate on the "file_format" field.
func FileFormatNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFileFormat, v))
}

// FileFormatIn applies the In predicate on the "file_format" field.
func FileFormatIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFileFormat, vs...))
}

// FileFormatNotIn applies the NotIn predicate on the "file_format" field.
func FileFormatNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFileFormat, vs...))
}

// FileFormatGT applies the GT predicate on the "file_format" field.
func FileFormatGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFileFormat, v))
}

// FileFormatGTE applies the GTE predicate on the "file_format" field.
func FileFormatGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFileFormat, v))
}

// FileFormatLT applies the LT predicate on the "file_format" field.
func FileFormatLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFileFormat, v))
}

// FileFormatLTE applies the LTE predicate on the "file_format" field.
func FileFormatLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFileFormat, v))
}

// FileFormatContains applies the Contains predicate on the "file_format" field.
func FileFormatContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFileFormat, v))
}

// FileFormatHasPrefix applies the HasPrefix predicate on the "file_format" field.
func FileFormatHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFileFormat, v))
}

// FileFormatHasSuffix applies the HasSuffix predicate on the "file_format" field.
func FileFormatHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFileFormat, v))
}

// FileFormatEqualFold applies the EqualFold predicate on the "file_format" field.
func FileFormatEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFileFormat, v))
}

// FileFormatContainsFold applies the ContainsFold predicate on the "file_format" field.
func FileFormatContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFileFormat, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashContains applies the Contains predicate on the "content_hash" field.
func ContentHashContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldContentHash, v))
}

// ContentHashHasPrefix applies the HasPrefix predicate on the "content_hash" field.
func ContentHashHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldContentHash, v))
}

// ContentHashHasSuffix applies the HasSuffix predicate on the "content_hash" field.
func ContentHashHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldContentHash, v))
}

// ContentHashEqualFold applies the EqualFold predicate on the "content_hash" field.
func ContentHashEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldContentHash, v))
}

// ContentHashContainsFold applies the ContainsFold predicate on the "content_hash" field.
func ContentHashContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldContentHash, v))
}

// DerivedNameEQ applies the EQ predicate on the "derived_name" field.
func DerivedNameEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDerivedName, v))
}

// DerivedNameNEQ applies the NEQ predicate on the "derived_name" field.
func DerivedNameNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldDerivedName, v))
}

// DerivedNameIn applies the In predicate on the "derived_name" field.
func DerivedNameIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldDerivedName, vs...))
}

// DerivedNameNotIn applies the NotIn predicate on the "derived_name" field.
func DerivedNameNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldDerivedName, vs...))
}

// DerivedNameGT applies the GT predicate on the "derived_name" field.
func DerivedNameGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldDerivedName, v))
}

// DerivedNameGTE applies the GTE predicate on the "derived_name" field.
func DerivedNameGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldDerivedName, v))
}

// DerivedNameLT applies the LT predicate on the "derived_name" field.
func DerivedNameLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldDerivedName, v))
}

// DerivedNameLTE applies the LTE predicate on the "derived_name" field.
func DerivedNameLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldDerivedName, v))
}

// DerivedNameContains applies the Contains predicate on the "derived_name" field.
func DerivedNameContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldDerivedName, v))
}

// DerivedNameHasPrefix applies the HasPrefix predicate on the "derived_name" field.
func DerivedNameHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldDerivedName, v))
}

// DerivedNameHasSuffix applies the HasSuffix predicate on the "derived_name" field.
func DerivedNameHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldDerivedName, v))
}

// DerivedNameIsNil applies the IsNil predicate on the "derived_name" field.
func DerivedNameIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldDerivedName))
}

// DerivedNameNotNil applies the NotNil predicate on the "derived_name" field.
func DerivedNameNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldDerivedName))
}

// DerivedNameEqualFold applies the EqualFold predicate on the "derived_name" field.
func DerivedNameEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldDerivedName, v))
}

// DerivedNameContainsFold applies the ContainsFold predicate on the "derived_name" field.
func DerivedNameContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldDerivedName, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldTitle, v))
}

// AuthorsEQ applies the EQ predicate on the "authors" field.
func AuthorsEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldAuthors, v))
}

// AuthorsNEQ applies the NEQ predicate on the "authors" field.
func AuthorsNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldAuthors, v))
}

// AuthorsIn applies the In predicate on the "authors" field.
func AuthorsIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldAuthors, vs...))
}

// AuthorsNotIn applies the NotIn predicate on the "authors" field.
func AuthorsNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldAuthors, vs...))
}

// AuthorsGT applies the GT predicate on the "authors" field.
func AuthorsGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldAuthors, v))
}

// AuthorsGTE applies the GTE predicate on the "authors" field.
func AuthorsGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldAuthors, v))
}

// AuthorsLT applies the LT predicate on the "authors" field.
func AuthorsLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldAuthors, v))
}

// AuthorsLTE applies the LTE predicate on the "authors" field.
func AuthorsLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldAuthors, v))
}

// AuthorsContains applies the Contains predicate on the "authors" field.
func AuthorsContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldAuthors, v))
}

// AuthorsHasPrefix applies the HasPrefix predicate on the "authors" field.
func AuthorsHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldAuthors, v))
}

// AuthorsHasSuffix applies the HasSuffix predicate on the "authors" field.
func AuthorsHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldAuthors, v))
}

// AuthorsIsNil applies the IsNil predicate on the "authors" field.
func AuthorsIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldAuthors))
}

// AuthorsNotNil applies the NotNil predicate on the "authors" field.
func AuthorsNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldAuthors))
}

// AuthorsEqualFold applies the EqualFold predicate on the "authors" field.
func AuthorsEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldAuthors, v))
}

// AuthorsContainsFold applies the ContainsFold predicate on the "authors" field.
func AuthorsContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldAuthors, v))
}

// YearPublishedEQ applies the EQ predicate on the "year_published" field.
func YearPublishedEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldYearPublished, v))
}

// YearPublishedNEQ applies the NEQ predicate on the "year_published" field.
func YearPublishedNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldYearPublished, v))
}

// YearPublishedIn applies the In predicate on the "year_published" field.
func YearPublishedIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldYearPublished, vs...))
}

// YearPublishedNotIn applies the NotIn predicate on the "year_published" field.
func YearPublishedNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldYearPublished, vs...))
}

// YearPublishedGT applies the GT predicate on the "year_published" field.
func YearPublishedGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldYearPublished, v))
}

// YearPublishedGTE applies the GTE predicate on the "year_published" field.
func YearPublishedGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldYearPublished, v))
}

// YearPublishedLT applies the LT predicate on the "year_published" field.
func YearPublishedLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldYearPublished, v))
}

// YearPublishedLTE applies the LTE predicate on the "year_published" field.
func YearPublishedLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldYearPublished, v))
}

// YearPublishedContains applies the Contains predicate on the "year_published" field.
func YearPublishedContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldYearPublished, v))
}

// YearPublishedHasPrefix applies the HasPrefix predicate on the "year_published" field.
func YearPublishedHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldYearPublished, v))
}

// YearPublishedHasSuffix applies the HasSuffix predicate on the "year_published" field.
func YearPublishedHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldYearPublished, v))
}

// YearPublishedIsNil applies the IsNil predicate on the "year_published" field.
func YearPublishedIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldYearPublished))
}

// YearPublishedNotNil applies the NotNil predicate on the "year_published" field.
func YearPublishedNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldYearPublished))
}

// YearPublishedEqualFold applies the EqualFold predicate on the "year_published" field.
func YearPublishedEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldYearPublished, v))
}

// YearPublishedContainsFold applies the ContainsFold predicate on the "year_published" field.
func YearPublishedContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldYearPublished, v))
}

// JournalEQ applies the EQ predicate on the "journal" field.
func JournalEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldJournal, v))
}

// JournalNEQ applies the NEQ predicate on the "journal" field.
func JournalNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldJournal, v))
}

// JournalIn applies the In predicate on the "journal" field.
func JournalIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldJournal, vs...))
}

// JournalNotIn applies the NotIn predicate on the "journal" field.
func JournalNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldJournal, vs...))
}

// JournalGT applies the GT predicate on the "journal" field.
func JournalGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldJournal, v))
}

// JournalGTE applies the GTE predicate on the "journal" field.
func JournalGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldJournal, v))
}

// JournalLT applies the LT predicate on the "journal" field.
func JournalLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldJournal, v))
}

// JournalLTE applies the LTE predicate on the "journal" field.
func JournalLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldJournal, v))
}

// JournalContains applies the Contains predicate on the "journal" field.
func JournalContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldJournal, v))
}

// JournalHasPrefix applies the HasPrefix predicate on the "journal" field.
func JournalHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldJournal, v))
}

// JournalHasSuffix applies the HasSuffix predicate on the "journal" field.
func JournalHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldJournal, v))
}

// JournalIsNil applies the IsNil predicate on the "journal" field.
func JournalIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldJournal))
}

// JournalNotNil applies the NotNil predicate on the "journal" field.
func JournalNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldJournal))
}

// JournalEqualFold applies the EqualFold predicate on the "journal" field.
func JournalEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldJournal, v))
}

// JournalContainsFold applies the ContainsFold predicate on the "journal" field.
func JournalContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldJournal, v))
}

// BibtexCitationEQ applies the EQ predicate on the "bibtex_citation" field.
func BibtexCitationEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldBibtexCitation, v))
}

// BibtexCitationNEQ applies the NEQ predicate on the "bibtex_citation" field.
func BibtexCitationNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldBibtexCitation, v))
}

// BibtexCitationIn applies the In predicate on the "bibtex_citation" field.
func BibtexCitationIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldBibtexCitation, vs...))
}

// BibtexCitationNotIn applies the NotIn predicate on the "bibtex_citation" field.
func BibtexCitationNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldBibtexCitation, vs...))
}

// BibtexCitationGT applies the GT predicate on the "bibtex_citation" field.
func BibtexCitationGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldBibtexCitation, v))
}

// BibtexCitationGTE applies the GTE predicate on the "bibtex_citation" field.
func BibtexCitationGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldBibtexCitation, v))
}

// BibtexCitationLT applies the LT predicate on the "bibtex_citation" field.
func BibtexCitationLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldBibtexCitation, v))
}

// BibtexCitationLTE applies the LTE predicate on the "bibtex_citation" field.
func BibtexCitationLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldBibtexCitation, v))
}

// BibtexCitationContains applies the Contains predicate on the "bibtex_citation" field.
func BibtexCitationContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldBibtexCitation, v))
}

// BibtexCitationHasPrefix applies the HasPrefix predicate on the "bibtex_citation" field.
func BibtexCitationHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldBibtexCitation, v))
}

// BibtexCitationHasSuffix applies the HasSuffix predicate on the "bibtex_citation" field.
func BibtexCitationHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldBibtexCitation, v))
}

// BibtexCitationIsNil applies the IsNil predicate on the "bibtex_citation" field.
func BibtexCitationIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldBibtexCitation))
}

// BibtexCitationNotNil applies the NotNil predicate on the "bibtex_citation" field.
func BibtexCitationNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldBibtexCitation))
}

// BibtexCitationEqualFold applies the EqualFold predicate on the "bibtex_citation" field.
func BibtexCitationEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldBibtexCitation, v))
}

// BibtexCitationContainsFold applies the ContainsFold predicate on the "bibtex_citation" field.
func BibtexCitationContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldBibtexCitation, v))
}

// DocTypeEQ applies the EQ predicate on the "doc_type" field.
func DocTypeEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDocType, v))
}

// DocTypeNEQ applies the NEQ predicate on the "doc_type" field.
func DocTypeNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldDocType, v))
}

// DocTypeIn applies the In predicate on the "doc_type" field.
func DocTypeIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldDocType, vs...))
}

// DocTypeNotIn applies the NotIn predicate on the "doc_type" field.
func DocTypeNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldDocType, vs...))
}

// DocTypeGT applies the GT predicate on the "doc_type" field.
func DocTypeGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldDocType, v))
}

// DocTypeGTE applies the GTE predicate on the "doc_type" field.
func DocTypeGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldDocType, v))
}

// DocTypeLT applies the LT predicate on the "doc_type" field.
func DocTypeLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldDocType, v))
}

// DocTypeLTE applies the LTE predicate on the "doc_type" field.
func DocTypeLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldDocType, v))
}

// DocTypeContains applies the Contains predicate on the "doc_type" field.
func DocTypeContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldDocType, v))
}

// DocTypeHasPrefix applies the HasPrefix predicate on the "doc_type" field.
func DocTypeHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldDocType, v))
}

// DocTypeHasSuffix applies the HasSuffix predicate on the "doc_type" field.
func DocTypeHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldDocType, v))
}

// DocTypeIsNil applies the IsNil predicate on the "doc_type" field.
func DocTypeIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldDocType))
}

// DocTypeNotNil applies the NotNil predicate on the "doc_type" field.
func DocTypeNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldDocType))
}

// DocTypeEqualFold applies the EqualFold predicate on the "doc_type" field.
func DocTypeEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldDocType, v))
}

// DocTypeContainsFold applies the ContainsFold predicate on the "doc_type" field.
func DocTypeContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldDocType, v))
}

// SampleSizeEQ applies the EQ predicate on the "sample_size" field.
func SampleSizeEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSampleSize, v))
}

// SampleSizeNEQ applies the NEQ predicate on the "sample_size" field.
func SampleSizeNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldSampleSize, v))
}

// SampleSizeIn applies the In predicate on the "sample_size" field.
func SampleSizeIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldSampleSize, vs...))
}

// SampleSizeNotIn applies the NotIn predicate on the "sample_size" field.
func SampleSizeNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldSampleSize, vs...))
}

// SampleSizeGT applies the GT predicate on the "sample_size" field.
func SampleSizeGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldSampleSize, v))
}

// SampleSizeGTE applies the GTE predicate on the "sample_size" field.
func SampleSizeGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldSampleSize, v))
}

// SampleSizeLT applies the LT predicate on the "sample_size" field.
func SampleSizeLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldSampleSize, v))
}

// SampleSizeLTE applies the LTE predicate on the "sample_size" field.
func SampleSizeLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldSampleSize, v))
}

// SampleSizeContains applies the Contains predicate on the "sample_size" field.
func SampleSizeContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldSampleSize, v))
}

// SampleSizeHasPrefix applies the HasPrefix predicate on the "sample_size" field.
func SampleSizeHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldSampleSize, v))
}

// SampleSizeHasSuffix applies the HasSuffix predicate on the "sample_size" field.
func SampleSizeHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldSampleSize, v))
}

// SampleSizeIsNil applies the IsNil predicate on the "sample_size" field.
func SampleSizeIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldSampleSize))
}

// SampleSizeNotNil applies the NotNil predicate on the "sample_size" field.
func SampleSizeNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldSampleSize))
}

// SampleSizeEqualFold applies the EqualFold predicate on the "sample_size" field.
func SampleSizeEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldSampleSize, v))
}

// SampleSizeContainsFold applies the ContainsFold predicate on the "sample_size" field.
func SampleSizeContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldSampleSize, v))
}

// MethodEQ applies the EQ predicate on the "method" field.
func MethodEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldMethod, v))
}

// MethodNEQ applies the NEQ predicate on the "method" field.
func MethodNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldMethod, v))
}

// MethodIn applies the In predicate on the "method" field.
func MethodIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldMethod, vs...))
}

// MethodNotIn applies the NotIn predicate on the "method" field.
func MethodNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldMethod, vs...))
}

// MethodGT applies the GT predicate on the "method" field.
func MethodGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldMethod, v))
}

// MethodGTE applies the GTE predicate on the "method" field.
func MethodGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldMethod, v))
}

// MethodLT applies the LT predicate on the "method" field.
func MethodLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldMethod, v))
}

// MethodLTE applies the LTE predicate on the "method" field.
func MethodLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldMethod, v))
}

// MethodContains applies the Contains predicate on the "method" field.
func MethodContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldMethod, v))
}

// MethodHasPrefix applies the HasPrefix predicate on the "method" field.
func MethodHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldMethod, v))
}

// MethodHasSuffix applies the HasSuffix predicate on the "method" field.
func MethodHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldMethod, v))
}

// MethodIsNil applies the IsNil predicate on the "method" field.
func MethodIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldMethod))
}

// MethodNotNil applies the NotNil predicate on the "method" field.
func MethodNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldMethod))
}

// MethodEqualFold applies the EqualFold predicate on the "method" field.
func MethodEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldMethod, v))
}

// MethodContainsFold applies the ContainsFold predicate on the "method" field.
func MethodContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldMethod, v))
}

// PredictionModelEQ applies the EQ predicate on the "prediction_model" field.
func PredictionModelEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPredictionModel, v))
}

// PredictionModelNEQ applies the NEQ predicate on the "prediction_model" field.
func PredictionModelNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldPredictionModel, v))
}

// PredictionModelIn applies the In predicate on the "prediction_model" field.
func PredictionModelIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldPredictionModel, vs...))
}

// PredictionModelNotIn applies the NotIn predicate on the "prediction_model" field.
func PredictionModelNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldPredictionModel, vs...))
}

// PredictionModelGT applies the GT predicate on the "prediction_model" field.
func PredictionModelGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldPredictionModel, v))
}

// PredictionModelGTE applies the GTE predicate on the "prediction_model" field.
func PredictionModelGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldPredictionModel, v))
}

// PredictionModelLT applies the LT predicate on the "prediction_model" field.
func PredictionModelLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldPredictionModel, v))
}

// PredictionModelLTE applies the LTE predicate on the "prediction_model" field.
func PredictionModelLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldPredictionModel, v))
}

// PredictionModelContains applies the Contains predicate on the "prediction_model" field.
func PredictionModelContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldPredictionModel, v))
}

// PredictionModelHasPrefix applies the HasPrefix predicate on the "prediction_model" field.
func PredictionModelHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldPredictionModel, v))
}

// PredictionModelHasSuffix applies the HasSuffix predicate on the "prediction_model" field.
func PredictionModelHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldPredictionModel, v))
}

// PredictionModelIsNil applies the IsNil predicate on the "prediction_model" field.
func PredictionModelIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldPredictionModel))
}

// PredictionModelNotNil applies the NotNil predicate on the "prediction_model" field.
func PredictionModelNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldPredictionModel))
}

// PredictionModelEqualFold applies the EqualFold predicate on the "prediction_model" field.
func PredictionModelEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldPredictionModel, v))
}

// PredictionModelContainsFold applies the ContainsFold predicate on the "prediction_model" field.
func PredictionModelContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldPredictionModel, v))
}

// KeyTakeawaysEQ applies the EQ predicate on the "key_takeaways" field.
func KeyTakeawaysEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldKeyTakeaways, v))
}

// KeyTakeawaysNEQ applies the NEQ predicate on the "key_takeaways" field.
func KeyTakeawaysNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldKeyTakeaways, v))
}

// KeyTakeawaysIn applies the In predicate on the "key_takeaways" field.
func KeyTakeawaysIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldKeyTakeaways, vs...))
}

// KeyTakeawaysNotIn applies the NotIn predicate on the "key_takeaways" field.
func KeyTakeawaysNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldKeyTakeaways, vs...))
}

// KeyTakeawaysGT applies the GT predicate on the "key_takeaways" field.
func KeyTakeawaysGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldKeyTakeaways, v))
}

// KeyTakeawaysGTE applies the GTE predicate on the "key_takeaways" field.
func KeyTakeawaysGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldKeyTakeaways, v))
}

// KeyTakeawaysLT applies the LT predicate on the "key_takeaways" field.
func KeyTakeawaysLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldKeyTakeaways, v))
}

// KeyTakeawaysLTE applies the LTE predicate on the "key_takeaways" field.
func KeyTakeawaysLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldKeyTakeaways, v))
}

// KeyTakeawaysContains applies the Contains predicate on the "key_takeaways" field.
func KeyTakeawaysContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldKeyTakeaways, v))
}

// KeyTakeawaysHasPrefix applies the HasPrefix predicate on the "key_takeaways" field.
func KeyTakeawaysHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldKeyTakeaways, v))
}

// KeyTakeawaysHasSuffix applies the HasSuffix predicate on the "key_takeaways" field.
func KeyTakeawaysHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldKeyTakeaways, v))
}

// KeyTakeawaysIsNil applies the IsNil predicate on the "key_takeaways" field.
func KeyTakeawaysIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldKeyTakeaways))
}

// KeyTakeawaysNotNil applies the NotNil predicate on the "key_takeaways" field.
func KeyTakeawaysNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldKeyTakeaways))
}

// KeyTakeawaysEqualFold applies the EqualFold predicate on the "key_takeaways" field.
func KeyTakeawaysEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldKeyTakeaways, v))
}

// KeyTakeawaysContainsFold applies the ContainsFold predicate on the "key_takeaways" field.
func KeyTakeawaysContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldKeyTakeaways, v))
}

// CategoriesIsNil applies the IsNil predicate on the "categories" field.
func CategoriesIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldCategories))
}

// CategoriesNotNil applies the NotNil predicate on the "categories" field.
func CategoriesNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldCategories))
}

// SummaryKindEQ applies the EQ predicate on the "summary_kind" field.
func SummaryKindEQ(v SummaryKind) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSummaryKind, v))
}

// SummaryKindNEQ applies the NEQ predicate on the "summary_kind" field.
func SummaryKindNEQ(v SummaryKind) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldSummaryKind, v))
}

// SummaryKindIn applies the In predicate on the "summary_kind" field.
func SummaryKindIn(vs ...SummaryKind) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldSummaryKind, vs...))
}

// SummaryKindNotIn applies the NotIn predicate on the "summary_kind" field.
func SummaryKindNotIn(vs ...SummaryKind) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldSummaryKind, vs...))
}

// RawSummaryEQ applies the EQ predicate on the "raw_summary" field.
func RawSummaryEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldRawSummary, v))
}

// RawSummaryNEQ applies the NEQ predicate on the "raw_summary" field.
func RawSummaryNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldRawSummary, v))
}

// RawSummaryIn applies the In predicate on the "raw_summary" field.
func RawSummaryIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldRawSummary, vs...))
}

// RawSummaryNotIn applies the NotIn predicate on the "raw_summary" field.
func RawSummaryNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldRawSummary, vs...))
}

// RawSummaryGT applies the GT predicate on the "raw_summary" field.
func RawSummaryGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldRawSummary, v))
}

// RawSummaryGTE applies the GTE predicate on the "raw_summary" field.
func RawSummaryGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldRawSummary, v))
}

// RawSummaryLT applies the LT predicate on the "raw_summary" field.
func RawSummaryLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldRawSummary, v))
}

// RawSummaryLTE applies the LTE predicate on the "raw_summary" field.
func RawSummaryLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldRawSummary, v))
}

// RawSummaryContains applies the Contains predicate on the "raw_summary" field.
func RawSummaryContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldRawSummary, v))
}

// RawSummaryHasPrefix applies the HasPrefix predicate on the "raw_summary" field.
func RawSummaryHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldRawSummary, v))
}

// RawSummaryHasSuffix applies the HasSuffix predicate on the "raw_summary" field.
func RawSummaryHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldRawSummary, v))
}

// RawSummaryIsNil applies the IsNil predicate on the "raw_summary" field.
func RawSummaryIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldRawSummary))
}

// RawSummaryNotNil applies the NotNil predicate on the "raw_summary" field.
func RawSummaryNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldRawSummary))
}

// RawSummaryEqualFold applies the EqualFold predicate on the "raw_summary" field.
func RawSummaryEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldRawSummary, v))
}

// RawSummaryContainsFold applies the ContainsFold predicate on the "raw_summary" field.
func RawSummaryContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldRawSummary, v))
}

// PrimaryCategoryEQ applies the EQ predicate on the "primary_category" field.
func PrimaryCategoryEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPrimaryCategory, v))
}

// PrimaryCategoryNEQ applies the NEQ predicate on the "primary_category" field.
func PrimaryCategoryNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldPrimaryCategory, v))
}

// PrimaryCategoryIn applies the In predicate on the "primary_category" field.
func PrimaryCategoryIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldPrimaryCategory, vs...))
}

// PrimaryCategoryNotIn applies the NotIn predicate on the "primary_category" field.
func PrimaryCategoryNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldPrimaryCategory, vs...))
}

// PrimaryCategoryGT applies the GT predicate on the "primary_category" field.
func PrimaryCategoryGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldPrimaryCategory, v))
}

// PrimaryCategoryGTE applies the GTE predicate on the "primary_category" field.
func PrimaryCategoryGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldPrimaryCategory, v))
}

// PrimaryCategoryLT applies the LT predicate on the "primary_category" field.
func PrimaryCategoryLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldPrimaryCategory, v))
}

// PrimaryCategoryLTE applies the LTE predicate on the "primary_category" field.
func PrimaryCategoryLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldPrimaryCategory, v))
}

// PrimaryCategoryContains applies the Contains predicate on the "primary_category" field.
func PrimaryCategoryContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldPrimaryCategory, v))
}

// PrimaryCategoryHasPrefix applies the HasPrefix predicate on the "primary_category" field.
func PrimaryCategoryHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldPrimaryCategory, v))
}

// PrimaryCategoryHasSuffix applies the HasSuffix predicate on the "primary_category" field.
func PrimaryCategoryHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldPrimaryCategory, v))
}

// PrimaryCategoryEqualFold applies the EqualFold predicate on the "primary_category" field.
func PrimaryCategoryEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldPrimaryCategory, v))
}

// PrimaryCategoryContainsFold applies the ContainsFold predicate on the "primary_category" field.
func PrimaryCategoryContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldPrimaryCategory, v))
}

// WordCountEQ applies the EQ predicate on the "word_count" field.
func WordCountEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldWordCount, v))
}

// WordCountNEQ applies the NEQ predicate on the "word_count" field.
func WordCountNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldWordCount, v))
}

// WordCountIn applies the In predicate on the "word_count" field.
func WordCountIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldWordCount, vs...))
}

// WordCountNotIn applies the NotIn predicate on the "word_count" field.
func WordCountNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldWordCount, vs...))
}

// WordCountGT applies the GT predicate on the "word_count" field.
func WordCountGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldWordCount, v))
}

// WordCountGTE applies the GTE predicate on the "word_count" field.
func WordCountGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldWordCount, v))
}

// WordCountLT applies the LT predicate on the "word_count" field.
func WordCountLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldWordCount, v))
}

// WordCountLTE applies the LTE predicate on the "word_count" field.
func WordCountLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldWordCount, v))
}

// PageCountEQ applies the EQ predicate on the "page_count" field.
func PageCountEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPageCount, v))
}

// PageCountNEQ applies the NEQ predicate on the "page_count" field.
func PageCountNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldPageCount, v))
}

// PageCountIn applies the In predicate on the "page_count" field.
func PageCountIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldPageCount, vs...))
}

// PageCountNotIn applies the NotIn predicate on the "page_count" field.
func PageCountNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldPageCount, vs...))
}

// PageCountGT applies the GT predicate on the "page_count" field.
func PageCountGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldPageCount, v))
}

// PageCountGTE applies the GTE predicate on the "page_count" field.
func PageCountGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldPageCount, v))
}

// PageCountLT applies the LT predicate on the "page_count" field.
func PageCountLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldPageCount, v))
}

// PageCountLTE applies the LTE predicate on the "page_count" field.
func PageCountLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldPageCount, v))
}

// PageCountIsNil applies the IsNil predicate on the "page_count" field.
func PageCountIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldPageCount))
}

// PageCountNotNil applies the NotNil predicate on the "page_count" field.
func PageCountNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldPageCount))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldProcessedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasKeywords applies the HasEdge predicate on the "keywords" edge.
func HasKeywords() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, KeywordsTable, KeywordsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasKeywordsWith applies the HasEdge predicate on the "keywords" edge with a given conditions (other predicates).
func HasKeywordsWith(preds ...predicate.Keyword) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newKeywordsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasScores applies the HasEdge predicate on the "scores" edge.
func HasScores() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ScoresTable, ScoresColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasScoresWith applies the HasEdge predicate on the "scores" edge with a given conditions (other predicates).
func HasScoresWith(preds ...predicate.CategoryScore) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newScoresStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFindings applies the HasEdge predicate on the "findings" edge.
func HasFindings() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FindingsTable, FindingsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFindingsWith applies the HasEdge predicate on the "findings" edge with a given conditions (other predicates).
func HasFindingsWith(preds ...predicate.KeyFinding) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newFindingsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}
