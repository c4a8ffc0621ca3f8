package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// CategoryScore holds the per-category signal breakdown for a document.
type CategoryScore struct{ ent.Schema }

func (CategoryScore) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "category_scores"},
	}
}

func (CategoryScore) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("document_id", uuid.UUID{}),
		field.String("category").NotEmpty(),
		field.Float("model_score").
			SchemaType(map[string]string{dialect.Postgres: "numeric(6,5)"}),
		field.Float("keyword_score").
			SchemaType(map[string]string{dialect.Postgres: "numeric(6,5)"}),
		field.Float("similarity_score").
			SchemaType(map[string]string{dialect.Postgres: "numeric(6,5)"}),
		field.Float("final_score").
			SchemaType(map[string]string{dialect.Postgres: "numeric(6,5)"}),
	}
}

func (CategoryScore) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY scores -> ONE document (FK: category_scores.document_id)
		edge.From("document", Document.Type).
			Ref("scores").
			Field("document_id").
			Required().
			Unique(),
	}
}

func (CategoryScore) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "category").Unique(),
	}
}
