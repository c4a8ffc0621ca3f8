package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// Keyword is one extracted term, ranked within its document.
type Keyword struct{ ent.Schema }

func (Keyword) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "keywords"},
	}
}

func (Keyword) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("document_id", uuid.UUID{}),
		field.String("term").NotEmpty(),
		field.Int("rank").NonNegative(),
		field.Enum("source").
			Values("tfidf", "frequency", "llm"),
	}
}

func (Keyword) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY keywords -> ONE document (FK: keywords.document_id)
		edge.From("document", Document.Type).
			Ref("keywords").
			Field("document_id").
			Required().
			Unique(),
	}
}
