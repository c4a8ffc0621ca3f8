package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// KeyFinding is one named finding from a structured summary.
type KeyFinding struct{ ent.Schema }

func (KeyFinding) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "key_findings"},
	}
}

func (KeyFinding) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("document_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.Text("description").NotEmpty(),
	}
}

func (KeyFinding) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY findings -> ONE document (FK: key_findings.document_id)
		edge.From("document", Document.Type).
			Ref("findings").
			Field("document_id").
			Required().
			Unique(),
	}
}
