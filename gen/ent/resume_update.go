// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/haidangnguyen/resume-tracker/gen/ent/predicate"
	"github.com/haidangnguyen/resume-tracker/gen/ent/resume"
	"github.com/haidangnguyen/resume-tracker/gen/ent/statusevent"
)

// ResumeUpdate is the builder for updating Resume entities.
type ResumeUpdate struct {
	config
	hooks    []Hook
	mutation *ResumeMutation
}

// Where appends a list predicates to the ResumeUpdate builder.
func (_u *ResumeUpdate) Where(ps ...predicate.Resume) *ResumeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetURL sets the "url" field.
func (_u *ResumeUpdate) SetURL(v string) *ResumeUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ResumeUpdate) SetNillableURL(v *string) *ResumeUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *ResumeUpdate) SetCompanyID(v uuid.UUID) *ResumeUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *ResumeUpdate) SetNillableCompanyID(v *uuid.UUID) *ResumeUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *ResumeUpdate) SetJobID(v uuid.UUID) *ResumeUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ResumeUpdate) SetNillableJobID(v *uuid.UUID) *ResumeUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ResumeUpdate) SetEmail(v string) *ResumeUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ResumeUpdate) SetNillableEmail(v *string) *ResumeUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ResumeUpdate) SetUserID(v uuid.UUID) *ResumeUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ResumeUpdate) SetNillableUserID(v *uuid.UUID) *ResumeUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ResumeUpdate) SetStatus(v string) *ResumeUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ResumeUpdate) SetNillableStatus(v *string) *ResumeUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedByID sets the "updated_by_id" field.
func (_u *ResumeUpdate) SetUpdatedByID(v uuid.UUID) *ResumeUpdate {
	_u.mutation.SetUpdatedByID(v)
	return _u
}

// SetNillableUpdatedByID sets the "updated_by_id" field if the given value is not nil.
func (_u *ResumeUpdate) SetNillableUpdatedByID(v *uuid.UUID) *ResumeUpdate {
	if v != nil {
		_u.SetUpdatedByID(*v)
	}
	return _u
}

// ClearUpdatedByID clears the value of the "updated_by_id" field.
func (_u *ResumeUpdate) ClearUpdatedByID() *ResumeUpdate {
	_u.mutation.ClearUpdatedByID()
	return _u
}

// SetUpdatedByEmail sets the "updated_by_email" field.
func (_u *ResumeUpdate) SetUpdatedByEmail(v string) *ResumeUpdate {
	_u.mutation.SetUpdatedByEmail(v)
	return _u
}

// SetNillableUpdatedByEmail sets the "updated_by_email" field if the given value is not nil.
func (_u *ResumeUpdate) SetNillableUpdatedByEmail(v *string) *ResumeUpdate {
	if v != nil {
		_u.SetUpdatedByEmail(*v)
	}
	return _u
}

// ClearUpdatedByEmail clears the value of the "updated_by_email" field.
func (_u *ResumeUpdate) ClearUpdatedByEmail() *ResumeUpdate {
	_u.mutation.ClearUpdatedByEmail()
	return _u
}

// SetDeletedByID sets the "deleted_by_id" field.
func (_u *ResumeUpdate) SetDeletedByID(v uuid.UUID) *ResumeUpdate {
	_u.mutation.SetDeletedByID(v)
	return _u
}

// SetNillableDeletedByID sets the "deleted_by_id" field if the given value is not nil.
func (_u *ResumeUpdate) SetNillableDeletedByID(v *uuid.UUID) *ResumeUpdate {
	if v != nil {
		_u.SetDeletedByID(*v)
	}
	return _u
}

// ClearDeletedByID clears the value of the "deleted_by_id" field.
func (_u *ResumeUpdate) ClearDeletedByID() *ResumeUpdate {
	_u.mutation.ClearDeletedByID()
	return _u
}

// SetDeletedByEmail sets the "deleted_by_email" field.
func (_u *ResumeUpdate) SetDeletedByEmail(v string) *ResumeUpdate {
	_u.mutation.SetDeletedByEmail(v)
	return _u
}

// SetNillableDeletedByEmail sets the "deleted_by_email" field if the given value is not nil.
func (_u *ResumeUpdate) SetNillableDeletedByEmail(v *string) *ResumeUpdate {
	if v != nil {
		_u.SetDeletedByEmail(*v)
	}
	return _u
}

// ClearDeletedByEmail clears the value of the "deleted_by_email" field.
func (_u *ResumeUpdate) ClearDeletedByEmail() *ResumeUpdate {
	_u.mutation.ClearDeletedByEmail()
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *ResumeUpdate) SetIsDeleted(v bool) *ResumeUpdate {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *ResumeUpdate) SetNillableIsDeleted(v *bool) *ResumeUpdate {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ResumeUpdate) SetDeletedAt(v time.Time) *ResumeUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ResumeUpdate) SetNillableDeletedAt(v *time.Time) *ResumeUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ResumeUpdate) ClearDeletedAt() *ResumeUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ResumeUpdate) SetUpdatedAt(v time.Time) *ResumeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddHistoryIDs adds the "history" edge to the StatusEvent entity by IDs.
func (_u *ResumeUpdate) AddHistoryIDs(ids ...uuid.UUID) *ResumeUpdate {
	_u.mutation.AddHistoryIDs(ids...)
	return _u
}

// AddHistory adds the "history" edges to the StatusEvent entity.
func (_u *ResumeUpdate) AddHistory(v ...*StatusEvent) *ResumeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHistoryIDs(ids...)
}

// Mutation returns the ResumeMutation object of the builder.
func (_u *ResumeUpdate) Mutation() *ResumeMutation {
	return _u.mutation
}

// ClearHistory clears all "history" edges to the StatusEvent entity.
func (_u *ResumeUpdate) ClearHistory() *ResumeUpdate {
	_u.mutation.ClearHistory()
	return _u
}

// RemoveHistoryIDs removes the "history" edge to StatusEvent entities by IDs.
func (_u *ResumeUpdate) RemoveHistoryIDs(ids ...uuid.UUID) *ResumeUpdate {
	_u.mutation.RemoveHistoryIDs(ids...)
	return _u
}

// RemoveHistory removes "history" edges to StatusEvent entities.
func (_u *ResumeUpdate) RemoveHistory(v ...*StatusEvent) *ResumeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHistoryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResumeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResumeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResumeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResumeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ResumeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := resume.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResumeUpdate) check() error {
	if v, ok := _u.mutation.URL(); ok {
		if err := resume.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "Resume.url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := resume.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Resume.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := resume.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Resume.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ResumeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resume.Table, resume.Columns, sqlgraph.NewFieldSpec(resume.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(resume.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(resume.FieldCompanyID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(resume.FieldJobID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(resume.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(resume.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(resume.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedByID(); ok {
		_spec.SetField(resume.FieldUpdatedByID, field.TypeUUID, value)
	}
	if _u.mutation.UpdatedByIDCleared() {
		_spec.ClearField(resume.FieldUpdatedByID, field.TypeUUID)
	}
	if value, ok := _u.mutation.UpdatedByEmail(); ok {
		_spec.SetField(resume.FieldUpdatedByEmail, field.TypeString, value)
	}
	if _u.mutation.UpdatedByEmailCleared() {
		_spec.ClearField(resume.FieldUpdatedByEmail, field.TypeString)
	}
	if value, ok := _u.mutation.DeletedByID(); ok {
		_spec.SetField(resume.FieldDeletedByID, field.TypeUUID, value)
	}
	if _u.mutation.DeletedByIDCleared() {
		_spec.ClearField(resume.FieldDeletedByID, field.TypeUUID)
	}
	if value, ok := _u.mutation.DeletedByEmail(); ok {
		_spec.SetField(resume.FieldDeletedByEmail, field.TypeString, value)
	}
	if _u.mutation.DeletedByEmailCleared() {
		_spec.ClearField(resume.FieldDeletedByEmail, field.TypeString)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(resume.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(resume.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(resume.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(resume.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.HistoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resume.HistoryTable,
			Columns: []string{resume.HistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(statusevent.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHistoryIDs(); len(nodes) > 0 && !_u.mutation.HistoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resume.HistoryTable,
			Columns: []string{resume.HistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(statusevent.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HistoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resume.HistoryTable,
			Columns: []string{resume.HistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(statusevent.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resume.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResumeUpdateOne is the builder for updating a single Resume entity.
type ResumeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResumeMutation
}

// SetURL sets the "url" field.
func (_u *ResumeUpdateOne) SetURL(v string) *ResumeUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *ResumeUpdateOne) SetNillableURL(v *string) *ResumeUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *ResumeUpdateOne) SetCompanyID(v uuid.UUID) *ResumeUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *ResumeUpdateOne) SetNillableCompanyID(v *uuid.UUID) *ResumeUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *ResumeUpdateOne) SetJobID(v uuid.UUID) *ResumeUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ResumeUpdateOne) SetNillableJobID(v *uuid.UUID) *ResumeUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ResumeUpdateOne) SetEmail(v string) *ResumeUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ResumeUpdateOne) SetNillableEmail(v *string) *ResumeUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ResumeUpdateOne) SetUserID(v uuid.UUID) *ResumeUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ResumeUpdateOne) SetNillableUserID(v *uuid.UUID) *ResumeUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ResumeUpdateOne) SetStatus(v string) *ResumeUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ResumeUpdateOne) SetNillableStatus(v *string) *ResumeUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedByID sets the "updated_by_id" field.
func (_u *ResumeUpdateOne) SetUpdatedByID(v uuid.UUID) *ResumeUpdateOne {
	_u.mutation.SetUpdatedByID(v)
	return _u
}

// SetNillableUpdatedByID sets the "updated_by_id" field if the given value is not nil.
func (_u *ResumeUpdateOne) SetNillableUpdatedByID(v *uuid.UUID) *ResumeUpdateOne {
	if v != nil {
		_u.SetUpdatedByID(*v)
	}
	return _u
}

// ClearUpdatedByID clears the value of the "updated_by_id" field.
func (_u *ResumeUpdateOne) ClearUpdatedByID() *ResumeUpdateOne {
	_u.mutation.ClearUpdatedByID()
	return _u
}

// SetUpdatedByEmail sets the "updated_by_email" field.
func (_u *ResumeUpdateOne) SetUpdatedByEmail(v string) *ResumeUpdateOne {
	_u.mutation.SetUpdatedByEmail(v)
	return _u
}

// SetNillableUpdatedByEmail sets the "updated_by_email" field if the given value is not nil.
func (_u *ResumeUpdateOne) SetNillableUpdatedByEmail(v *string) *ResumeUpdateOne {
	if v != nil {
		_u.SetUpdatedByEmail(*v)
	}
	return _u
}

// ClearUpdatedByEmail clears the value of the "updated_by_email" field.
func (_u *ResumeUpdateOne) ClearUpdatedByEmail() *ResumeUpdateOne {
	_u.mutation.ClearUpdatedByEmail()
	return _u
}

// SetDeletedByID sets the "deleted_by_id" field.
func (_u *ResumeUpdateOne) SetDeletedByID(v uuid.UUID) *ResumeUpdateOne {
	_u.mutation.SetDeletedByID(v)
	return _u
}

// SetNillableDeletedByID sets the "deleted_by_id" field if the given value is not nil.
func (_u *ResumeUpdateOne) SetNillableDeletedByID(v *uuid.UUID) *ResumeUpdateOne {
	if v != nil {
		_u.SetDeletedByID(*v)
	}
	return _u
}

// ClearDeletedByID clears the value of the "deleted_by_id" field.
func (_u *ResumeUpdateOne) ClearDeletedByID() *ResumeUpdateOne {
	_u.mutation.ClearDeletedByID()
	return _u
}

// SetDeletedByEmail sets the "deleted_by_email" field.
func (_u *ResumeUpdateOne) SetDeletedByEmail(v string) *ResumeUpdateOne {
	_u.mutation.SetDeletedByEmail(v)
	return _u
}

// SetNillableDeletedByEmail sets the "deleted_by_email" field if the given value is not nil.
func (_u *ResumeUpdateOne) SetNillableDeletedByEmail(v *string) *ResumeUpdateOne {
	if v != nil {
		_u.SetDeletedByEmail(*v)
	}
	return _u
}

// ClearDeletedByEmail clears the value of the "deleted_by_email" field.
func (_u *ResumeUpdateOne) ClearDeletedByEmail() *ResumeUpdateOne {
	_u.mutation.ClearDeletedByEmail()
	return _u
}

// SetIsDeleted sets the "is_deleted" field.
func (_u *ResumeUpdateOne) SetIsDeleted(v bool) *ResumeUpdateOne {
	_u.mutation.SetIsDeleted(v)
	return _u
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_u *ResumeUpdateOne) SetNillableIsDeleted(v *bool) *ResumeUpdateOne {
	if v != nil {
		_u.SetIsDeleted(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ResumeUpdateOne) SetDeletedAt(v time.Time) *ResumeUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ResumeUpdateOne) SetNillableDeletedAt(v *time.Time) *ResumeUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ResumeUpdateOne) ClearDeletedAt() *ResumeUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ResumeUpdateOne) SetUpdatedAt(v time.Time) *ResumeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddHistoryIDs adds the "history" edge to the StatusEvent entity by IDs.
func (_u *ResumeUpdateOne) AddHistoryIDs(ids ...uuid.UUID) *ResumeUpdateOne {
	_u.mutation.AddHistoryIDs(ids...)
	return _u
}

// AddHistory adds the "history" edges to the StatusEvent entity.
func (_u *ResumeUpdateOne) AddHistory(v ...*StatusEvent) *ResumeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHistoryIDs(ids...)
}

// Mutation returns the ResumeMutation object of the builder.
func (_u *ResumeUpdateOne) Mutation() *ResumeMutation {
	return _u.mutation
}

// ClearHistory clears all "history" edges to the StatusEvent entity.
func (_u *ResumeUpdateOne) ClearHistory() *ResumeUpdateOne {
	_u.mutation.ClearHistory()
	return _u
}

// RemoveHistoryIDs removes the "history" edge to StatusEvent entities by IDs.
func (_u *ResumeUpdateOne) RemoveHistoryIDs(ids ...uuid.UUID) *ResumeUpdateOne {
	_u.mutation.RemoveHistoryIDs(ids...)
	return _u
}

// RemoveHistory removes "history" edges to StatusEvent entities.
func (_u *ResumeUpdateOne) RemoveHistory(v ...*StatusEvent) *ResumeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHistoryIDs(ids...)
}

// Where appends a list predicates to the ResumeUpdate builder.
func (_u *ResumeUpdateOne) Where(ps ...predicate.Resume) *ResumeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResumeUpdateOne) Select(field string, fields ...string) *ResumeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Resume entity.
func (_u *ResumeUpdateOne) Save(ctx context.Context) (*Resume, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResumeUpdateOne) SaveX(ctx context.Context) *Resume {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResumeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResumeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ResumeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := resume.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResumeUpdateOne) check() error {
	if v, ok := _u.mutation.URL(); ok {
		if err := resume.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "Resume.url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := resume.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Resume.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := resume.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Resume.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ResumeUpdateOne) sqlSave(ctx context.Context) (_node *Resume, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resume.Table, resume.Columns, sqlgraph.NewFieldSpec(resume.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Resume.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resume.FieldID)
		for _, f := range fields {
			if !resume.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != resume.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(resume.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(resume.FieldCompanyID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(resume.FieldJobID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(resume.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(resume.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(resume.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedByID(); ok {
		_spec.SetField(resume.FieldUpdatedByID, field.TypeUUID, value)
	}
	if _u.mutation.UpdatedByIDCleared() {
		_spec.ClearField(resume.FieldUpdatedByID, field.TypeUUID)
	}
	if value, ok := _u.mutation.UpdatedByEmail(); ok {
		_spec.SetField(resume.FieldUpdatedByEmail, field.TypeString, value)
	}
	if _u.mutation.UpdatedByEmailCleared() {
		_spec.ClearField(resume.FieldUpdatedByEmail, field.TypeString)
	}
	if value, ok := _u.mutation.DeletedByID(); ok {
		_spec.SetField(resume.FieldDeletedByID, field.TypeUUID, value)
	}
	if _u.mutation.DeletedByIDCleared() {
		_spec.ClearField(resume.FieldDeletedByID, field.TypeUUID)
	}
	if value, ok := _u.mutation.DeletedByEmail(); ok {
		_spec.SetField(resume.FieldDeletedByEmail, field.TypeString, value)
	}
	if _u.mutation.DeletedByEmailCleared() {
		_spec.ClearField(resume.FieldDeletedByEmail, field.TypeString)
	}
	if value, ok := _u.mutation.IsDeleted(); ok {
		_spec.SetField(resume.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(resume.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(resume.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(resume.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.HistoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resume.HistoryTable,
			Columns: []string{resume.HistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(statusevent.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHistoryIDs(); len(nodes) > 0 && !_u.mutation.HistoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resume.HistoryTable,
			Columns: []string{resume.HistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(statusevent.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HistoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resume.HistoryTable,
			Columns: []string{resume.HistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(statusevent.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Resume{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resume.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
