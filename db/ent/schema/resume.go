package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/haidangnguyen/resume-tracker/constants"
	"github.com/haidangnguyen/resume-tracker/db/ent/schema/utils"
)

type Resume struct {
	ent.Schema
}

func (Resume) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "resumes"},
	}
}

func (Resume) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("url").NotEmpty(),
		// opaque foreign keys owned by the jobs/companies services
		field.UUID("company_id", uuid.UUID{}),
		field.UUID("job_id", uuid.UUID{}),
		field.String("email").NotEmpty(),
		field.UUID("user_id", uuid.UUID{}),
		field.String("status").
			Default(string(constants.StatusPending)).
			Validate(utils.EnumValidator(constants.Statuses...)),
		// actor snapshots; updated_by stays nil until the first transition
		field.UUID("created_by_id", uuid.UUID{}).Immutable(),
		field.String("created_by_email").NotEmpty().Immutable(),
		field.UUID("updated_by_id", uuid.UUID{}).Optional().Nillable(),
		field.String("updated_by_email").Optional().Nillable(),
		field.UUID("deleted_by_id", uuid.UUID{}).Optional().Nillable(),
		field.String("deleted_by_email").Optional().Nillable(),
		field.Bool("is_deleted").Default(false),
		field.Time("deleted_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Resume) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE resume -> MANY history events
		edge.To("history", StatusEvent.Type),
	}
}

func (Resume) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("company_id"),
		index.Fields("job_id"),
		index.Fields("is_deleted", "created_at"),
	}
}
