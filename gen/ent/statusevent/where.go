// Code generated by ent, DO NOT EDIT.

package statusevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/haidangnguyen/resume-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldLTE(FieldID, id))
}

// ResumeID applies equality check predicate on the "resume_id" field. It's identical to ResumeIDEQ.
func ResumeID(v uuid.UUID) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEQ(FieldResumeID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEQ(FieldStatus, v))
}

// Seq applies equality check predicate on the "seq" field. It's identical to SeqEQ.
func Seq(v int) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEQ(FieldSeq, v))
}

// OccurredAt applies equality check predicate on the "occurred_at" field. It's identical to OccurredAtEQ.
func OccurredAt(v time.Time) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEQ(FieldOccurredAt, v))
}

// ActorID applies equality check predicate on the "actor_id" field. It's identical to ActorIDEQ.
func ActorID(v uuid.UUID) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEQ(FieldActorID, v))
}

// ActorEmail applies equality check predicate on the "actor_email" field. It's identical to ActorEmailEQ.
func ActorEmail(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEQ(FieldActorEmail, v))
}

// ResumeIDEQ applies the EQ predicate on the "resume_id" field.
func ResumeIDEQ(v uuid.UUID) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEQ(FieldResumeID, v))
}

// ResumeIDNEQ applies the NEQ predicate on the "resume_id" field.
func ResumeIDNEQ(v uuid.UUID) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldNEQ(FieldResumeID, v))
}

// ResumeIDIn applies the In predicate on the "resume_id" field.
func ResumeIDIn(vs ...uuid.UUID) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldIn(FieldResumeID, vs...))
}

// ResumeIDNotIn applies the NotIn predicate on the "resume_id" field.
func ResumeIDNotIn(vs ...uuid.UUID) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldNotIn(FieldResumeID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldContainsFold(FieldStatus, v))
}

// SeqEQ applies the EQ predicate on the "seq" field.
func SeqEQ(v int) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEQ(FieldSeq, v))
}

// SeqNEQ applies the NEQ predicate on the "seq" field.
func SeqNEQ(v int) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldNEQ(FieldSeq, v))
}

// SeqIn applies the In predicate on the "seq" field.
func SeqIn(vs ...int) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldIn(FieldSeq, vs...))
}

// SeqNotIn applies the NotIn predicate on the "seq" field.
func SeqNotIn(vs ...int) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldNotIn(FieldSeq, vs...))
}

// SeqGT applies the GT predicate on the "seq" field.
func SeqGT(v int) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldGT(FieldSeq, v))
}

// SeqGTE applies the GTE predicate on the "seq" field.
func SeqGTE(v int) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldGTE(FieldSeq, v))
}

// SeqLT applies the LT predicate on the "seq" field.
func SeqLT(v int) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldLT(FieldSeq, v))
}

// SeqLTE applies the LTE predicate on the "seq" field.
func SeqLTE(v int) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldLTE(FieldSeq, v))
}

// OccurredAtEQ applies the EQ predicate on the "occurred_at" field.
func OccurredAtEQ(v time.Time) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEQ(FieldOccurredAt, v))
}

// OccurredAtNEQ applies the NEQ predicate on the "occurred_at" field.
func OccurredAtNEQ(v time.Time) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldNEQ(FieldOccurredAt, v))
}

// OccurredAtIn applies the In predicate on the "occurred_at" field.
func OccurredAtIn(vs ...time.Time) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldIn(FieldOccurredAt, vs...))
}

// OccurredAtNotIn applies the NotIn predicate on the "occurred_at" field.
func OccurredAtNotIn(vs ...time.Time) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldNotIn(FieldOccurredAt, vs...))
}

// OccurredAtGT applies the GT predicate on the "occurred_at" field.
func OccurredAtGT(v time.Time) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldGT(FieldOccurredAt, v))
}

// OccurredAtGTE applies the GTE predicate on the "occurred_at" field.
func OccurredAtGTE(v time.Time) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldGTE(FieldOccurredAt, v))
}

// OccurredAtLT applies the LT predicate on the "occurred_at" field.
func OccurredAtLT(v time.Time) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldLT(FieldOccurredAt, v))
}

// OccurredAtLTE applies the LTE predicate on the "occurred_at" field.
func OccurredAtLTE(v time.Time) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldLTE(FieldOccurredAt, v))
}

// ActorIDEQ applies the EQ predicate on the "actor_id" field.
func ActorIDEQ(v uuid.UUID) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEQ(FieldActorID, v))
}

// ActorIDNEQ applies the NEQ predicate on the "actor_id" field.
func ActorIDNEQ(v uuid.UUID) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldNEQ(FieldActorID, v))
}

// ActorIDIn applies the In predicate on the "actor_id" field.
func ActorIDIn(vs ...uuid.UUID) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldIn(FieldActorID, vs...))
}

// ActorIDNotIn applies the NotIn predicate on the "actor_id" field.
func ActorIDNotIn(vs ...uuid.UUID) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldNotIn(FieldActorID, vs...))
}

// ActorIDGT applies the GT predicate on the "actor_id" field.
func ActorIDGT(v uuid.UUID) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldGT(FieldActorID, v))
}

// ActorIDGTE applies the GTE predicate on the "actor_id" field.
func ActorIDGTE(v uuid.UUID) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldGTE(FieldActorID, v))
}

// ActorIDLT applies the LT predicate on the "actor_id" field.
func ActorIDLT(v uuid.UUID) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldLT(FieldActorID, v))
}

// ActorIDLTE applies the LTE predicate on the "actor_id" field.
func ActorIDLTE(v uuid.UUID) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldLTE(FieldActorID, v))
}

// ActorEmailEQ applies the EQ predicate on the "actor_email" field.
func ActorEmailEQ(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEQ(FieldActorEmail, v))
}

// ActorEmailNEQ applies the NEQ predicate on the "actor_email" field.
func ActorEmailNEQ(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldNEQ(FieldActorEmail, v))
}

// ActorEmailIn applies the In predicate on the "actor_email" field.
func ActorEmailIn(vs ...string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldIn(FieldActorEmail, vs...))
}

// ActorEmailNotIn applies the NotIn predicate on the "actor_email" field.
func ActorEmailNotIn(vs ...string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldNotIn(FieldActorEmail, vs...))
}

// ActorEmailGT applies the GT predicate on the "actor_email" field.
func ActorEmailGT(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldGT(FieldActorEmail, v))
}

// ActorEmailGTE applies the GTE predicate on the "actor_email" field.
func ActorEmailGTE(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldGTE(FieldActorEmail, v))
}

// ActorEmailLT applies the LT predicate on the "actor_email" field.
func ActorEmailLT(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldLT(FieldActorEmail, v))
}

// ActorEmailLTE applies the LTE predicate on the "actor_email" field.
func ActorEmailLTE(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldLTE(FieldActorEmail, v))
}

// ActorEmailContains applies the Contains predicate on the "actor_email" field.
func ActorEmailContains(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldContains(FieldActorEmail, v))
}

// ActorEmailHasPrefix applies the HasPrefix predicate on the "actor_email" field.
func ActorEmailHasPrefix(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldHasPrefix(FieldActorEmail, v))
}

// ActorEmailHasSuffix applies the HasSuffix predicate on the "actor_email" field.
func ActorEmailHasSuffix(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldHasSuffix(FieldActorEmail, v))
}

// ActorEmailEqualFold applies the EqualFold predicate on the "actor_email" field.
func ActorEmailEqualFold(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldEqualFold(FieldActorEmail, v))
}

// ActorEmailContainsFold applies the ContainsFold predicate on the "actor_email" field.
func ActorEmailContainsFold(v string) predicate.StatusEvent {
	return predicate.StatusEvent(sql.FieldContainsFold(FieldActorEmail, v))
}

// HasResume applies the HasEdge predicate on the "resume" edge.
func HasResume() predicate.StatusEvent {
	return predicate.StatusEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ResumeTable, ResumeColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResumeWith applies the HasEdge predicate on the "resume" edge with a given conditions (other predicates).
func HasResumeWith(preds ...predicate.Resume) predicate.StatusEvent {
	return predicate.StatusEvent(func(s *sql.Selector) {
		step := newResumeStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StatusEvent) predicate.StatusEvent {
	return predicate.StatusEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StatusEvent) predicate.StatusEvent {
	return predicate.StatusEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StatusEvent) predicate.StatusEvent {
	return predicate.StatusEvent(sql.NotPredicates(p))
}
