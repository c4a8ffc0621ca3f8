// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/jsuh-911/pdf-summarizer/db/ent/schema"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/categoryscore"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/document"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/keyfinding"
	"github.com/jsuh-911/pdf-summarizer/gen/ent/keyword"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	categoryscoreFields := schema.CategoryScore{}.Fields()
	_ = categoryscoreFields
	// categoryscoreDescCategory is the schema descriptor for category field.
	categoryscoreDescCategory := categoryscoreFields[2].Descriptor()
	// categoryscore.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	categoryscore.CategoryValidator = categoryscoreDescCategory.Validators[0].(func(string) error)
	// categoryscoreDescID is the schema descriptor for id field.
	categoryscoreDescID := categoryscoreFields[0].Descriptor()
	// categoryscore.DefaultID holds the default value on creation for the id field.
	categoryscore.DefaultID = categoryscoreDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescSourceFile is the schema descriptor for source_file field.
	documentDescSourceFile := documentFields[1].Descriptor()
	// document.SourceFileValidator is a validator for the "source_file" field. It is called by the builders before save.
	document.SourceFileValidator = documentDescSourceFile.Validators[0].(func(string) error)
	// documentDescSourcePath is the schema descriptor for source_path field.
	documentDescSourcePath := documentFields[2].Descriptor()
	// document.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	document.SourcePathValidator = documentDescSourcePath.Validators[0].(func(string) error)
	// documentDescFileFormat is the schema descriptor for file_format field.
	documentDescFileFormat := documentFields[3].Descriptor()
	// document.FileFormatValidator is a validator for the "file_format" field. It is called by the builders before save.
	document.FileFormatValidator = func() func(string) error {
		validators := documentDescFileFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file_format string) error {
			for _, fn := range fns {
				if err := fn(file_format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescContentHash is the schema descriptor for content_hash field.
	documentDescContentHash := documentFields[4].Descriptor()
	// document.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	document.ContentHashValidator = func() func(string) error {
		validators := documentDescContentHash.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(content_hash string) error {
			for _, fn := range fns {
				if err := fn(content_hash); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescYearPublished is the schema descriptor for year_published field.
	documentDescYearPublished := documentFields[8].Descriptor()
	// document.YearPublishedValidator is a validator for the "year_published" field. It is called by the builders before save.
	document.YearPublishedValidator = documentDescYearPublished.Validators[0].(func(string) error)
	// documentDescPredictionModel is the schema descriptor for prediction_model field.
	documentDescPredictionModel := documentFields[14].Descriptor()
	// document.PredictionModelValidator is a validator for the "prediction_model" field. It is called by the builders before save.
	document.PredictionModelValidator = documentDescPredictionModel.Validators[0].(func(string) error)
	// documentDescPrimaryCategory is the schema descriptor for primary_category field.
	documentDescPrimaryCategory := documentFields[19].Descriptor()
	// document.PrimaryCategoryValidator is a validator for the "primary_category" field. It is called by the builders before save.
	document.PrimaryCategoryValidator = documentDescPrimaryCategory.Validators[0].(func(string) error)
	// documentDescWordCount is the schema descriptor for word_count field.
	documentDescWordCount := documentFields[20].Descriptor()
	// document.WordCountValidator is a validator for the "word_count" field. It is called by the builders before save.
	document.WordCountValidator = documentDescWordCount.Validators[0].(func(int) error)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[23].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[24].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	keyfindingFields := schema.KeyFinding{}.Fields()
	_ = keyfindingFields
	// keyfindingDescName is the schema descriptor for name field.
	keyfindingDescName := keyfindingFields[2].Descriptor()
	// keyfinding.NameValidator is a validator for the "name" field. It is called by the builders before save.
	keyfinding.NameValidator = keyfindingDescName.Validators[0].(func(string) error)
	// keyfindingDescDescription is the schema descriptor for description field.
	keyfindingDescDescription := keyfindingFields[3].Descriptor()
	// keyfinding.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	keyfinding.DescriptionValidator = keyfindingDescDescription.Validators[0].(func(string) error)
	// keyfindingDescID is the schema descriptor for id field.
	keyfindingDescID := keyfindingFields[0].Descriptor()
	// keyfinding.DefaultID holds the default value on creation for the id field.
	keyfinding.DefaultID = keyfindingDescID.Default.(func() uuid.UUID)
	keywordFields := schema.Keyword{}.Fields()
	_ = keywordFields
	// keywordDescTerm is the schema descriptor for term field.
	keywordDescTerm := keywordFields[2].Descriptor()
	// keyword.TermValidator is a validator for the "term" field. It is called by the builders before save.
	keyword.TermValidator = keywordDescTerm.Validators[0].(func(string) error)
	// keywordDescRank is the schema descriptor for rank field.
	keywordDescRank := keywordFields[3].Descriptor()
	// keyword.RankValidator is a validator for the "rank" field. It is called by the builders before save.
	keyword.RankValidator = keywordDescRank.Validators[0].(func(int) error)
	// keywordDescID is the schema descriptor for id field.
	keywordDescID := keywordFields[0].Descriptor()
	// keyword.DefaultID holds the default value on creation for the id field.
	keyword.DefaultID = keywordDescID.Default.(func() uuid.UUID)
}
