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

// StatusEvent is one immutable entry in a resume's audit history.
// Rows are append-only: nothing in the application updates or deletes them.
type StatusEvent struct{ ent.Schema }

func (StatusEvent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "resume_status_events"},
	}
}

func (StatusEvent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so we can define a composite unique index
		field.UUID("resume_id", uuid.UUID{}).Immutable(),
		field.String("status").NotEmpty().Immutable().
			Validate(utils.EnumValidator(constants.Statuses...)),
		// seq disambiguates ordering when two transitions land within
		// the timestamp resolution of the database
		field.Int("seq").NonNegative().Immutable(),
		field.Time("occurred_at").Default(time.Now).Immutable(),
		field.UUID("actor_id", uuid.UUID{}).Immutable(),
		field.String("actor_email").NotEmpty().Immutable(),
	}
}

func (StatusEvent) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY events -> ONE resume
		edge.From("resume", Resume.Type).
			Ref("history").
			Field("resume_id").
			Required().
			Unique().
			Immutable(),
	}
}

func (StatusEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("resume_id", "seq").Unique(),
	}
}
