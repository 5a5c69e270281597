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

// StatusEventCreate is the builder for creating a StatusEvent entity.
type StatusEventCreate struct {
	config
	mutation *StatusEventMutation
	hooks    []Hook
}

// SetResumeID sets the "resume_id" field.
func (_c *StatusEventCreate) SetResumeID(v uuid.UUID) *StatusEventCreate {
	_c.mutation.SetResumeID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *StatusEventCreate) SetStatus(v string) *StatusEventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetSeq sets the "seq" field.
func (_c *StatusEventCreate) SetSeq(v int) *StatusEventCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetOccurredAt sets the "occurred_at" field.
func (_c *StatusEventCreate) SetOccurredAt(v time.Time) *StatusEventCreate {
	_c.mutation.SetOccurredAt(v)
	return _c
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_c *StatusEventCreate) SetNillableOccurredAt(v *time.Time) *StatusEventCreate {
	if v != nil {
		_c.SetOccurredAt(*v)
	}
	return _c
}

// SetActorID sets the "actor_id" field.
func (_c *StatusEventCreate) SetActorID(v uuid.UUID) *StatusEventCreate {
	_c.mutation.SetActorID(v)
	return _c
}

// SetActorEmail sets the "actor_email" field.
func (_c *StatusEventCreate) SetActorEmail(v string) *StatusEventCreate {
	_c.mutation.SetActorEmail(v)
	return _c
}

// SetID sets the "id" field.
func (_c *StatusEventCreate) SetID(v uuid.UUID) *StatusEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *StatusEventCreate) SetNillableID(v *uuid.UUID) *StatusEventCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetResume sets the "resume" edge to the Resume entity.
func (_c *StatusEventCreate) SetResume(v *Resume) *StatusEventCreate {
	return _c.SetResumeID(v.ID)
}

// Mutation returns the StatusEventMutation object of the builder.
func (_c *StatusEventCreate) Mutation() *StatusEventMutation {
	return _c.mutation
}

// Save creates the StatusEvent in the database.
func (_c *StatusEventCreate) Save(ctx context.Context) (*StatusEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StatusEventCreate) SaveX(ctx context.Context) *StatusEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StatusEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StatusEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StatusEventCreate) defaults() {
	if _, ok := _c.mutation.OccurredAt(); !ok {
		v := statusevent.DefaultOccurredAt()
		_c.mutation.SetOccurredAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := statusevent.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StatusEventCreate) check() error {
	if _, ok := _c.mutation.ResumeID(); !ok {
		return &ValidationError{Name: "resume_id", err: errors.New(`ent: missing required field "StatusEvent.resume_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "StatusEvent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := statusevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StatusEvent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "StatusEvent.seq"`)}
	}
	if v, ok := _c.mutation.Seq(); ok {
		if err := statusevent.SeqValidator(v); err != nil {
			return &ValidationError{Name: "seq", err: fmt.Errorf(`ent: validator failed for field "StatusEvent.seq": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OccurredAt(); !ok {
		return &ValidationError{Name: "occurred_at", err: errors.New(`ent: missing required field "StatusEvent.occurred_at"`)}
	}
	if _, ok := _c.mutation.ActorID(); !ok {
		return &ValidationError{Name: "actor_id", err: errors.New(`ent: missing required field "StatusEvent.actor_id"`)}
	}
	if _, ok := _c.mutation.ActorEmail(); !ok {
		return &ValidationError{Name: "actor_email", err: errors.New(`ent: missing required field "StatusEvent.actor_email"`)}
	}
	if v, ok := _c.mutation.ActorEmail(); ok {
		if err := statusevent.ActorEmailValidator(v); err != nil {
			return &ValidationError{Name: "actor_email", err: fmt.Errorf(`ent: validator failed for field "StatusEvent.actor_email": %w`, err)}
		}
	}
	if len(_c.mutation.ResumeIDs()) == 0 {
		return &ValidationError{Name: "resume", err: errors.New(`ent: missing required edge "StatusEvent.resume"`)}
	}
	return nil
}

func (_c *StatusEventCreate) sqlSave(ctx context.Context) (*StatusEvent, error) {
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

func (_c *StatusEventCreate) createSpec() (*StatusEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &StatusEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(statusevent.Table, sqlgraph.NewFieldSpec(statusevent.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(statusevent.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(statusevent.FieldSeq, field.TypeInt, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.OccurredAt(); ok {
		_spec.SetField(statusevent.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = value
	}
	if value, ok := _c.mutation.ActorID(); ok {
		_spec.SetField(statusevent.FieldActorID, field.TypeUUID, value)
		_node.ActorID = value
	}
	if value, ok := _c.mutation.ActorEmail(); ok {
		_spec.SetField(statusevent.FieldActorEmail, field.TypeString, value)
		_node.ActorEmail = value
	}
	if nodes := _c.mutation.ResumeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   statusevent.ResumeTable,
			Columns: []string{statusevent.ResumeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(resume.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ResumeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StatusEventCreateBulk is the builder for creating many StatusEvent entities in bulk.
type StatusEventCreateBulk struct {
	config
	err      error
	builders []*StatusEventCreate
}

// Save creates the StatusEvent entities in the database.
func (_c *StatusEventCreateBulk) Save(ctx context.Context) ([]*StatusEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StatusEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StatusEventMutation)
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
func (_c *StatusEventCreateBulk) SaveX(ctx context.Context) []*StatusEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StatusEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StatusEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
