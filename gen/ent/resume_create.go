// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/haidangnguyen/resume-tracker/gen/ent/resume"
	"github.com/haidangnguyen/resume-tracker/gen/ent/statusevent"
)

// ResumeCreate is the builder for creating a Resume entity.
type ResumeCreate struct {
	config
	mutation *ResumeMutation
	hooks    []Hook
}

// SetURL sets the "url" field.
func (_c *ResumeCreate) SetURL(v string) *ResumeCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetCompanyID sets the "company_id" field.
func (_c *ResumeCreate) SetCompanyID(v uuid.UUID) *ResumeCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetJobID sets the "job_id" field.
func (_c *ResumeCreate) SetJobID(v uuid.UUID) *ResumeCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *ResumeCreate) SetEmail(v string) *ResumeCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ResumeCreate) SetUserID(v uuid.UUID) *ResumeCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ResumeCreate) SetStatus(v string) *ResumeCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ResumeCreate) SetNillableStatus(v *string) *ResumeCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedByID sets the "created_by_id" field.
func (_c *ResumeCreate) SetCreatedByID(v uuid.UUID) *ResumeCreate {
	_c.mutation.SetCreatedByID(v)
	return _c
}

// SetCreatedByEmail sets the "created_by_email" field.
func (_c *ResumeCreate) SetCreatedByEmail(v string) *ResumeCreate {
	_c.mutation.SetCreatedByEmail(v)
	return _c
}

// SetUpdatedByID sets the "updated_by_id" field.
func (_c *ResumeCreate) SetUpdatedByID(v uuid.UUID) *ResumeCreate {
	_c.mutation.SetUpdatedByID(v)
	return _c
}

// SetNillableUpdatedByID sets the "updated_by_id" field if the given value is not nil.
func (_c *ResumeCreate) SetNillableUpdatedByID(v *uuid.UUID) *ResumeCreate {
	if v != nil {
		_c.SetUpdatedByID(*v)
	}
	return _c
}

// SetUpdatedByEmail sets the "updated_by_email" field.
func (_c *ResumeCreate) SetUpdatedByEmail(v string) *ResumeCreate {
	_c.mutation.SetUpdatedByEmail(v)
	return _c
}

// SetNillableUpdatedByEmail sets the "updated_by_email" field if the given value is not nil.
func (_c *ResumeCreate) SetNillableUpdatedByEmail(v *string) *ResumeCreate {
	if v != nil {
		_c.SetUpdatedByEmail(*v)
	}
	return _c
}

// SetDeletedByID sets the "deleted_by_id" field.
func (_c *ResumeCreate) SetDeletedByID(v uuid.UUID) *ResumeCreate {
	_c.mutation.SetDeletedByID(v)
	return _c
}

// SetNillableDeletedByID sets the "deleted_by_id" field if the given value is not nil.
func (_c *ResumeCreate) SetNillableDeletedByID(v *uuid.UUID) *ResumeCreate {
	if v != nil {
		_c.SetDeletedByID(*v)
	}
	return _c
}

// SetDeletedByEmail sets the "deleted_by_email" field.
func (_c *ResumeCreate) SetDeletedByEmail(v string) *ResumeCreate {
	_c.mutation.SetDeletedByEmail(v)
	return _c
}

// SetNillableDeletedByEmail sets the "deleted_by_email" field if the given value is not nil.
func (_c *ResumeCreate) SetNillableDeletedByEmail(v *string) *ResumeCreate {
	if v != nil {
		_c.SetDeletedByEmail(*v)
	}
	return _c
}

// SetIsDeleted sets the "is_deleted" field.
func (_c *ResumeCreate) SetIsDeleted(v bool) *ResumeCreate {
	_c.mutation.SetIsDeleted(v)
	return _c
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_c *ResumeCreate) SetNillableIsDeleted(v *bool) *ResumeCreate {
	if v != nil {
		_c.SetIsDeleted(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ResumeCreate) SetDeletedAt(v time.Time) *ResumeCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ResumeCreate) SetNillableDeletedAt(v *time.Time) *ResumeCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResumeCreate) SetCreatedAt(v time.Time) *ResumeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResumeCreate) SetNillableCreatedAt(v *time.Time) *ResumeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ResumeCreate) SetUpdatedAt(v time.Time) *ResumeCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ResumeCreate) SetNillableUpdatedAt(v *time.Time) *ResumeCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ResumeCreate) SetID(v uuid.UUID) *ResumeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ResumeCreate) SetNillableID(v *uuid.UUID) *ResumeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddHistoryIDs adds the "history" edge to the StatusEvent entity by IDs.
func (_c *ResumeCreate) AddHistoryIDs(ids ...uuid.UUID) *ResumeCreate {
	_c.mutation.AddHistoryIDs(ids...)
	return _c
}

// AddHistory adds the "history" edges to the StatusEvent entity.
func (_c *ResumeCreate) AddHistory(v ...*StatusEvent) *ResumeCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddHistoryIDs(ids...)
}

// Mutation returns the ResumeMutation object of the builder.
func (_c *ResumeCreate) Mutation() *ResumeMutation {
	return _c.mutation
}

// Save creates the Resume in the database.
func (_c *ResumeCreate) Save(ctx context.Context) (*Resume, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResumeCreate) SaveX(ctx context.Context) *Resume {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResumeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResumeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResumeCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := resume.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		v := resume.DefaultIsDeleted
		_c.mutation.SetIsDeleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := resume.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := resume.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := resume.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResumeCreate) check() error {
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "Resume.url"`)}
	}
	if v, ok := _c.mutation.URL(); ok {
		if err := resume.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "Resume.url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "Resume.company_id"`)}
	}
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "Resume.job_id"`)}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "Resume.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := resume.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Resume.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Resume.user_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Resume.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := resume.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Resume.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedByID(); !ok {
		return &ValidationError{Name: "created_by_id", err: errors.New(`ent: missing required field "Resume.created_by_id"`)}
	}
	if _, ok := _c.mutation.CreatedByEmail(); !ok {
		return &ValidationError{Name: "created_by_email", err: errors.New(`ent: missing required field "Resume.created_by_email"`)}
	}
	if v, ok := _c.mutation.CreatedByEmail(); ok {
		if err := resume.CreatedByEmailValidator(v); err != nil {
			return &ValidationError{Name: "created_by_email", err: fmt.Errorf(`ent: validator failed for field "Resume.created_by_email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		return &ValidationError{Name: "is_deleted", err: errors.New(`ent: missing required field "Resume.is_deleted"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Resume.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Resume.updated_at"`)}
	}
	return nil
}

func (_c *ResumeCreate) sqlSave(ctx context.Context) (*Resume, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResumeCreate) createSpec() (*Resume, *sqlgraph.CreateSpec) {
	var (
		_node = &Resume{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(resume.Table, sqlgraph.NewFieldSpec(resume.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(resume.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.CompanyID(); ok {
		_spec.SetField(resume.FieldCompanyID, field.TypeUUID, value)
		_node.CompanyID = value
	}
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(resume.FieldJobID, field.TypeUUID, value)
		_node.JobID = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(resume.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(resume.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(resume.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedByID(); ok {
		_spec.SetField(resume.FieldCreatedByID, field.TypeUUID, value)
		_node.CreatedByID = value
	}
	if value, ok := _c.mutation.CreatedByEmail(); ok {
		_spec.SetField(resume.FieldCreatedByEmail, field.TypeString, value)
		_node.CreatedByEmail = value
	}
	if value, ok := _c.mutation.UpdatedByID(); ok {
		_spec.SetField(resume.FieldUpdatedByID, field.TypeUUID, value)
		_node.UpdatedByID = &value
	}
	if value, ok := _c.mutation.UpdatedByEmail(); ok {
		_spec.SetField(resume.FieldUpdatedByEmail, field.TypeString, value)
		_node.UpdatedByEmail = &value
	}
	if value, ok := _c.mutation.DeletedByID(); ok {
		_spec.SetField(resume.FieldDeletedByID, field.TypeUUID, value)
		_node.DeletedByID = &value
	}
	if value, ok := _c.mutation.DeletedByEmail(); ok {
		_spec.SetField(resume.FieldDeletedByEmail, field.TypeString, value)
		_node.DeletedByEmail = &value
	}
	if value, ok := _c.mutation.IsDeleted(); ok {
		_spec.SetField(resume.FieldIsDeleted, field.TypeBool, value)
		_node.IsDeleted = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(resume.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(resume.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(resume.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.HistoryIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ResumeCreateBulk is the builder for creating many Resume entities in bulk.
type ResumeCreateBulk struct {
	config
	err      error
	builders []*ResumeCreate
}

// Save creates the Resume entities in the database.
func (_c *ResumeCreateBulk) Save(ctx context.Context) ([]*Resume, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Resume, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResumeMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ResumeCreateBulk) SaveX(ctx context.Context) []*Resume {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResumeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResumeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
