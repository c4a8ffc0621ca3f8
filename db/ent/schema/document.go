package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Document is one processed source file together with its structured summary.
type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("source_file").NotEmpty(),
		field.String("source_path").NotEmpty(),
		field.String("file_format").NotEmpty().MaxLen(8),
		field.String("content_hash").NotEmpty().MinLen(64).MaxLen(64).
			SchemaType(map[string]string{dialect.Postgres: "char(64)"}),
		field.String("derived_name").Optional().Nillable(),

		// structured summary fields; absent when summary_kind != structured
		field.String("title").Optional().Nillable(),
		field.String("authors").Optional().Nillable(),
		field.String("year_published").Optional().Nillable().MaxLen(16),
		field.String("journal").Optional().Nillable(),
		field.Text("bibtex_citation").Optional().Nillable(),
		field.String("doc_type").Optional().Nillable(),
		field.String("sample_size").Optional().Nillable(),
		field.Text("method").Optional().Nillable(),
		field.String("prediction_model").Optional().Nillable().MaxLen(8),
		field.Text("key_takeaways").Optional().Nillable(),
		field.JSON("categories", []string{}).Optional().
			StorageKey("categories_json"),

		field.Enum("summary_kind").
			Values("structured", "raw", "failed"),
		field.Text("raw_summary").Optional().Nillable(),

		field.String("primary_category").NotEmpty(),
		field.Int("word_count").NonNegative(),
		field.Int("page_count").Optional(),
		field.Time("processed_at"),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE document -> MANY keywords
		edge.To("keywords", Keyword.Type),
		// ONE document -> MANY category scores
		edge.To("scores", CategoryScore.Type),
		// ONE document -> MANY key findings
		edge.To("findings", KeyFinding.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("content_hash").Unique(),
		index.Fields("primary_category"),
		index.Fields("year_published"),
	}
}
