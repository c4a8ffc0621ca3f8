// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CategoryScoresColumns holds the columns for the "category_scores" table.
	CategoryScoresColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "category", Type: field.TypeString},
		{Name: "model_score", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(6,5)"}},
		{Name: "keyword_score", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(6,5)"}},
		{Name: "similarity_score", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(6,5)"}},
		{Name: "final_score", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(6,5)"}},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// CategoryScoresTable holds the schema information for the "category_scores" table.
	CategoryScoresTable = &schema.Table{
		Name:       "category_scores",
		Columns:    CategoryScoresColumns,
		PrimaryKey: []*schema.Column{CategoryScoresColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "category_scores_documents_scores",
				Columns:    []*schema.Column{CategoryScoresColumns[6]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "categoryscore_document_id_category",
				Unique:  true,
				Columns: []*schema.Column{CategoryScoresColumns[6], CategoryScoresColumns[1]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_file", Type: field.TypeString},
		{Name: "source_path", Type: field.TypeString},
		{Name: "file_format", Type: field.TypeString, Size: 8},
		{Name: "content_hash", Type: field.TypeString, Size: 64, SchemaType: map[string]string{"postgres": "char(64)"}},
		{Name: "derived_name", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "authors", Type: field.TypeString, Nullable: true},
		{Name: "year_published", Type: field.TypeString, Nullable: true, Size: 16},
		{Name: "journal", Type: field.TypeString, Nullable: true},
		{Name: "bibtex_citation", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "doc_type", Type: field.TypeString, Nullable: true},
		{Name: "sample_size", Type: field.TypeString, Nullable: true},
		{Name: "method", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "prediction_model", Type: field.TypeString, Nullable: true, Size: 8},
		{Name: "key_takeaways", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "categories_json", Type: field.TypeJSON, Nullable: true},
		{Name: "summary_kind", Type: field.TypeEnum, Enums: []string{"structured", "raw", "failed"}},
		{Name: "raw_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "primary_category", Type: field.TypeString},
		{Name: "word_count", Type: field.TypeInt},
		{Name: "page_count", Type: field.TypeInt, Nullable: true},
		{Name: "processed_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_content_hash",
				Unique:  true,
				Columns: []*schema.Column{DocumentsColumns[4]},
			},
			{
				Name:    "document_primary_category",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[19]},
			},
			{
				Name:    "document_year_published",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[8]},
			},
		},
	}
	// KeyFindingsColumns holds the columns for the "key_findings" table.
	KeyFindingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// KeyFindingsTable holds the schema information for the "key_findings" table.
	KeyFindingsTable = &schema.Table{
		Name:       "key_findings",
		Columns:    KeyFindingsColumns,
		PrimaryKey: []*schema.Column{KeyFindingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "key_findings_documents_findings",
				Columns:    []*schema.Column{KeyFindingsColumns[3]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// KeywordsColumns holds the columns for the "keywords" table.
	KeywordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "term", Type: field.TypeString},
		{Name: "rank", Type: field.TypeInt},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"tfidf", "frequency", "llm"}},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// KeywordsTable holds the schema information for the "keywords" table.
	KeywordsTable = &schema.Table{
		Name:       "keywords",
		Columns:    KeywordsColumns,
		PrimaryKey: []*schema.Column{KeywordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "keywords_documents_keywords",
				Columns:    []*schema.Column{KeywordsColumns[4]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CategoryScoresTable,
		DocumentsTable,
		KeyFindingsTable,
		KeywordsTable,
	}
)

func init() {
	CategoryScoresTable.ForeignKeys[0].RefTable = DocumentsTable
	CategoryScoresTable.Annotation = &entsql.Annotation{
		Table: "category_scores",
	}
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	KeyFindingsTable.ForeignKeys[0].RefTable = DocumentsTable
	KeyFindingsTable.Annotation = &entsql.Annotation{
		Table: "key_findings",
	}
	KeywordsTable.ForeignKeys[0].RefTable = DocumentsTable
	KeywordsTable.Annotation = &entsql.Annotation{
		Table: "keywords",
	}
}
