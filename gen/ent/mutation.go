// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/haidangnguyen/resume-tracker/gen/ent/predicate"
	"github.com/haidangnguyen/resume-tracker/gen/ent/resume"
	"github.com/haidangnguyen/resume-tracker/gen/ent/statusevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeResume      = "Resume"
	TypeStatusEvent = "StatusEvent"
)

// ResumeMutation represents an operation that mutates the Resume nodes in the graph.
type ResumeMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	url              *string
	company_id       *uuid.UUID
	job_id           *uuid.UUID
	email            *string
	user_id          *uuid.UUID
	status           *string
	created_by_id    *uuid.UUID
	created_by_email *string
	updated_by_id    *uuid.UUID
	updated_by_email *string
	deleted_by_id    *uuid.UUID
	deleted_by_email *string
	is_deleted       *bool
	deleted_at       *time.Time
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	history          map[uuid.UUID]struct{}
	removedhistory   map[uuid.UUID]struct{}
	clearedhistory   bool
	done             bool
	oldValue         func(context.Context) (*Resume, error)
	predicates       []predicate.Resume
}

var _ ent.Mutation = (*ResumeMutation)(nil)

// resumeOption allows management of the mutation configuration using functional options.
type resumeOption func(*ResumeMutation)

// newResumeMutation creates new mutation for the Resume entity.
func newResumeMutation(c config, op Op, opts ...resumeOption) *ResumeMutation {
	m := &ResumeMutation{
		config:        c,
		op:            op,
		typ:           TypeResume,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResumeID sets the ID field of the mutation.
func withResumeID(id uuid.UUID) resumeOption {
	return func(m *ResumeMutation) {
		var (
			err   error
			once  sync.Once
			value *Resume
		)
		m.oldValue = func(ctx context.Context) (*Resume, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Resume.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResume sets the old Resume of the mutation.
func withResume(node *Resume) resumeOption {
	return func(m *ResumeMutation) {
		m.oldValue = func(context.Context) (*Resume, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResumeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResumeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Resume entities.
func (m *ResumeMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResumeMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResumeMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Resume.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetURL sets the "url" field.
func (m *ResumeMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *ResumeMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Resume entity.
// If the Resume object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResumeMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *ResumeMutation) ResetURL() {
	m.url = nil
}

// SetCompanyID sets the "company_id" field.
func (m *ResumeMutation) SetCompanyID(u uuid.UUID) {
	m.company_id = &u
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *ResumeMutation) CompanyID() (r uuid.UUID, exists bool) {
	v := m.company_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the Resume entity.
// If the Resume object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResumeMutation) OldCompanyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *ResumeMutation) ResetCompanyID() {
	m.company_id = nil
}

// SetJobID sets the "job_id" field.
func (m *ResumeMutation) SetJobID(u uuid.UUID) {
	m.job_id = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *ResumeMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Resume entity.
// If the Resume object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResumeMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *ResumeMutation) ResetJobID() {
	m.job_id = nil
}

// SetEmail sets the "email" field.
func (m *ResumeMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ResumeMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Resume entity.
// If the Resume object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResumeMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *ResumeMutation) ResetEmail() {
	m.email = nil
}

// SetUserID sets the "user_id" field.
func (m *ResumeMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ResumeMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Resume entity.
// If the Resume object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResumeMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ResumeMutation) ResetUserID() {
	m.user_id = nil
}

// SetStatus sets the "status" field.
func (m *ResumeMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ResumeMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Resume entity.
// If the Resume object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResumeMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ResumeMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedByID sets the "created_by_id" field.
func (m *ResumeMutation) SetCreatedByID(u uuid.UUID) {
	m.created_by_id = &u
}

// CreatedByID returns the value of the "created_by_id" field in the mutation.
func (m *ResumeMutation) CreatedByID() (r uuid.UUID, exists bool) {
	v := m.created_by_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedByID returns the old "created_by_id" field's value of the Resume entity.
// If the Resume object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResumeMutation) OldCreatedByID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedByID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedByID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedByID: %w", err)
	}
	return oldValue.CreatedByID, nil
}

// ResetCreatedByID resets all changes to the "created_by_id" field.
func (m *ResumeMutation) ResetCreatedByID() {
	m.created_by_id = nil
}

// SetCreatedByEmail sets the "created_by_email" field.
func (m *ResumeMutation) SetCreatedByEmail(s string) {
	m.created_by_email = &s
}

// CreatedByEmail returns the value of the "created_by_email" field in the mutation.
func (m *ResumeMutation) CreatedByEmail() (r string, exists bool) {
	v := m.created_by_email
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedByEmail returns the old "created_by_email" field's value of the Resume entity.
// If the Resume object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResumeMutation) OldCreatedByEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedByEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedByEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedByEmail: %w", err)
	}
	return oldValue.CreatedByEmail, nil
}

// ResetCreatedByEmail resets all changes to the "created_by_email" field.
func (m *ResumeMutation) ResetCreatedByEmail() {
	m.created_by_email = nil
}

// SetUpdatedByID sets the "updated_by_id" field.
func (m *ResumeMutation) SetUpdatedByID(u uuid.UUID) {
	m.updated_by_id = &u
}

// UpdatedByID returns the value of the "updated_by_id" field in the mutation.
func (m *ResumeMutation) UpdatedByID() (r uuid.UUID, exists bool) {
	v := m.updated_by_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedByID returns the old "updated_by_id" field's value of the Resume entity.
// If the Resume object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResumeMutation) OldUpdatedByID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedByID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedByID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedByID: %w", err)
	}
	return oldValue.UpdatedByID, nil
}

// ClearUpdatedByID clears the value of the "updated_by_id" field.
func (m *ResumeMutation) ClearUpdatedByID() {
	m.updated_by_id = nil
	m.clearedFields[resume.FieldUpdatedByID] = struct{}{}
}

// UpdatedByIDCleared returns if the "updated_by_id" field was cleared in this mutation.
func (m *ResumeMutation) UpdatedByIDCleared() bool {
	_, ok := m.clearedFields[resume.FieldUpdatedByID]
	return ok
}

// ResetUpdatedByID resets all changes to the "updated_by_id" field.
func (m *ResumeMutation) ResetUpdatedByID() {
	m.updated_by_id = nil
	delete(m.clearedFields, resume.FieldUpdatedByID)
}

// SetUpdatedByEmail sets the "updated_by_email" field.
func (m *ResumeMutation) SetUpdatedByEmail(s string) {
	m.updated_by_email = &s
}

// UpdatedByEmail returns the value of the "updated_by_email" field in the mutation.
func (m *ResumeMutation) UpdatedByEmail() (r string, exists bool) {
	v := m.updated_by_email
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedByEmail returns the old "updated_by_email" field's value of the Resume entity.
// If the Resume object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResumeMutation) OldUpdatedByEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedByEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedByEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedByEmail: %w", err)
	}
	return oldValue.UpdatedByEmail, nil
}

// ClearUpdatedByEmail clears the value of the "updated_by_email" field.
func (m *ResumeMutation) ClearUpdatedByEmail() {
	m.updated_by_email = nil
	m.clearedFields[resume.FieldUpdatedByEmail] = struct{}{}
}

// UpdatedByEmailCleared returns if the "updated_by_email" field was cleared in this mutation.
func (m *ResumeMutation) UpdatedByEmailCleared() bool {
	_, ok := m.clearedFields[resume.FieldUpdatedByEmail]
	return ok
}

// ResetUpdatedByEmail resets all changes to the "updated_by_email" field.
func (m *ResumeMutation) ResetUpdatedByEmail() {
	m.updated_by_email = nil
	delete(m.clearedFields, resume.FieldUpdatedByEmail)
}

// SetDeletedByID sets the "deleted_by_id" field.
func (m *ResumeMutation) SetDeletedByID(u uuid.UUID) {
	m.deleted_by_id = &u
}

// DeletedByID returns the value of the "deleted_by_id" field in the mutation.
func (m *ResumeMutation) DeletedByID() (r uuid.UUID, exists bool) {
	v := m.deleted_by_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedByID returns the old "deleted_by_id" field's value of the Resume entity.
// If the Resume object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResumeMutation) OldDeletedByID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedByID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedByID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedByID: %w", err)
	}
	return oldValue.DeletedByID, nil
}

// ClearDeletedByID clears the value of the "deleted_by_id" field.
func (m *ResumeMutation) ClearDeletedByID() {
	m.deleted_by_id = nil
	m.clearedFields[resume.FieldDeletedByID] = struct{}{}
}

// DeletedByIDCleared returns if the "deleted_by_id" field was cleared in this mutation.
func (m *ResumeMutation) DeletedByIDCleared() bool {
	_, ok := m.clearedFields[resume.FieldDeletedByID]
	return ok
}

// ResetDeletedByID resets all changes to the "deleted_by_id" field.
func (m *ResumeMutation) ResetDeletedByID() {
	m.deleted_by_id = nil
	delete(m.clearedFields, resume.FieldDeletedByID)
}

// SetDeletedByEmail sets the "deleted_by_email" field.
func (m *ResumeMutation) SetDeletedByEmail(s string) {
	m.deleted_by_email = &s
}

// DeletedByEmail returns the value of the "deleted_by_email" field in the mutation.
func (m *ResumeMutation) DeletedByEmail() (r string, exists bool) {
	v := m.deleted_by_email
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedByEmail returns the old "deleted_by_email" field's value of the Resume entity.
// If the Resume object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResumeMutation) OldDeletedByEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedByEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedByEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedByEmail: %w", err)
	}
	return oldValue.DeletedByEmail, nil
}

// ClearDeletedByEmail clears the value of the "deleted_by_email" field.
func (m *ResumeMutation) ClearDeletedByEmail() {
	m.deleted_by_email = nil
	m.clearedFields[resume.FieldDeletedByEmail] = struct{}{}
}

// DeletedByEmailCleared returns if the "deleted_by_email" field was cleared in this mutation.
func (m *ResumeMutation) DeletedByEmailCleared() bool {
	_, ok := m.clearedFields[resume.FieldDeletedByEmail]
	return ok
}

// ResetDeletedByEmail resets all changes to the "deleted_by_email" field.
func (m *ResumeMutation) ResetDeletedByEmail() {
	m.deleted_by_email = nil
	delete(m.clearedFields, resume.FieldDeletedByEmail)
}

// SetIsDeleted sets the "is_deleted" field.
func (m *ResumeMutation) SetIsDeleted(b bool) {
	m.is_deleted = &b
}

// IsDeleted returns the value of the "is_deleted" field in the mutation.
func (m *ResumeMutation) IsDeleted() (r bool, exists bool) {
	v := m.is_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDeleted returns the old "is_deleted" field's value of the Resume entity.
// If the Resume object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResumeMutation) OldIsDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDeleted: %w", err)
	}
	return oldValue.IsDeleted, nil
}

// ResetIsDeleted resets all changes to the "is_deleted" field.
func (m *ResumeMutation) ResetIsDeleted() {
	m.is_deleted = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ResumeMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ResumeMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Resume entity.
// If the Resume object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResumeMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ResumeMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[resume.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ResumeMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[resume.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ResumeMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, resume.FieldDeletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ResumeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ResumeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Resume entity.
// If the Resume object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResumeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ResumeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ResumeMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ResumeMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Resume entity.
// If the Resume object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResumeMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ResumeMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddHistoryIDs adds the "history" edge to the StatusEvent entity by ids.
func (m *ResumeMutation) AddHistoryIDs(ids ...uuid.UUID) {
	if m.history == nil {
		m.history = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.history[ids[i]] = struct{}{}
	}
}

// ClearHistory clears the "history" edge to the StatusEvent entity.
func (m *ResumeMutation) ClearHistory() {
	m.clearedhistory = true
}

// HistoryCleared reports if the "history" edge to the StatusEvent entity was cleared.
func (m *ResumeMutation) HistoryCleared() bool {
	return m.clearedhistory
}

// RemoveHistoryIDs removes the "history" edge to the StatusEvent entity by IDs.
func (m *ResumeMutation) RemoveHistoryIDs(ids ...uuid.UUID) {
	if m.removedhistory == nil {
		m.removedhistory = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.history, ids[i])
		m.removedhistory[ids[i]] = struct{}{}
	}
}

// RemovedHistory returns the removed IDs of the "history" edge to the StatusEvent entity.
func (m *ResumeMutation) RemovedHistoryIDs() (ids []uuid.UUID) {
	for id := range m.removedhistory {
		ids = append(ids, id)
	}
	return
}

// HistoryIDs returns the "history" edge IDs in the mutation.
func (m *ResumeMutation) HistoryIDs() (ids []uuid.UUID) {
	for id := range m.history {
		ids = append(ids, id)
	}
	return
}

// ResetHistory resets all changes to the "history" edge.
func (m *ResumeMutation) ResetHistory() {
	m.history = nil
	m.clearedhistory = false
	m.removedhistory = nil
}

// Where appends a list predicates to the ResumeMutation builder.
func (m *ResumeMutation) Where(ps ...predicate.Resume) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResumeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResumeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Resume, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResumeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResumeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Resume).
func (m *ResumeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResumeMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.url != nil {
		fields = append(fields, resume.FieldURL)
	}
	if m.company_id != nil {
		fields = append(fields, resume.FieldCompanyID)
	}
	if m.job_id != nil {
		fields = append(fields, resume.FieldJobID)
	}
	if m.email != nil {
		fields = append(fields, resume.FieldEmail)
	}
	if m.user_id != nil {
		fields = append(fields, resume.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, resume.FieldStatus)
	}
	if m.created_by_id != nil {
		fields = append(fields, resume.FieldCreatedByID)
	}
	if m.created_by_email != nil {
		fields = append(fields, resume.FieldCreatedByEmail)
	}
	if m.updated_by_id != nil {
		fields = append(fields, resume.FieldUpdatedByID)
	}
	if m.updated_by_email != nil {
		fields = append(fields, resume.FieldUpdatedByEmail)
	}
	if m.deleted_by_id != nil {
		fields = append(fields, resume.FieldDeletedByID)
	}
	if m.deleted_by_email != nil {
		fields = append(fields, resume.FieldDeletedByEmail)
	}
	if m.is_deleted != nil {
		fields = append(fields, resume.FieldIsDeleted)
	}
	if m.deleted_at != nil {
		fields = append(fields, resume.FieldDeletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, resume.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, resume.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResumeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case resume.FieldURL:
		return m.URL()
	case resume.FieldCompanyID:
		return m.CompanyID()
	case resume.FieldJobID:
		return m.JobID()
	case resume.FieldEmail:
		return m.Email()
	case resume.FieldUserID:
		return m.UserID()
	case resume.FieldStatus:
		return m.Status()
	case resume.FieldCreatedByID:
		return m.CreatedByID()
	case resume.FieldCreatedByEmail:
		return m.CreatedByEmail()
	case resume.FieldUpdatedByID:
		return m.UpdatedByID()
	case resume.FieldUpdatedByEmail:
		return m.UpdatedByEmail()
	case resume.FieldDeletedByID:
		return m.DeletedByID()
	case resume.FieldDeletedByEmail:
		return m.DeletedByEmail()
	case resume.FieldIsDeleted:
		return m.IsDeleted()
	case resume.FieldDeletedAt:
		return m.DeletedAt()
	case resume.FieldCreatedAt:
		return m.CreatedAt()
	case resume.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResumeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case resume.FieldURL:
		return m.OldURL(ctx)
	case resume.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case resume.FieldJobID:
		return m.OldJobID(ctx)
	case resume.FieldEmail:
		return m.OldEmail(ctx)
	case resume.FieldUserID:
		return m.OldUserID(ctx)
	case resume.FieldStatus:
		return m.OldStatus(ctx)
	case resume.FieldCreatedByID:
		return m.OldCreatedByID(ctx)
	case resume.FieldCreatedByEmail:
		return m.OldCreatedByEmail(ctx)
	case resume.FieldUpdatedByID:
		return m.OldUpdatedByID(ctx)
	case resume.FieldUpdatedByEmail:
		return m.OldUpdatedByEmail(ctx)
	case resume.FieldDeletedByID:
		return m.OldDeletedByID(ctx)
	case resume.FieldDeletedByEmail:
		return m.OldDeletedByEmail(ctx)
	case resume.FieldIsDeleted:
		return m.OldIsDeleted(ctx)
	case resume.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case resume.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case resume.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Resume field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResumeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case resume.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case resume.FieldCompanyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case resume.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case resume.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case resume.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case resume.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case resume.FieldCreatedByID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedByID(v)
		return nil
	case resume.FieldCreatedByEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedByEmail(v)
		return nil
	case resume.FieldUpdatedByID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedByID(v)
		return nil
	case resume.FieldUpdatedByEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedByEmail(v)
		return nil
	case resume.FieldDeletedByID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedByID(v)
		return nil
	case resume.FieldDeletedByEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedByEmail(v)
		return nil
	case resume.FieldIsDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDeleted(v)
		return nil
	case resume.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case resume.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case resume.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Resume field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResumeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResumeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResumeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Resume numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResumeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(resume.FieldUpdatedByID) {
		fields = append(fields, resume.FieldUpdatedByID)
	}
	if m.FieldCleared(resume.FieldUpdatedByEmail) {
		fields = append(fields, resume.FieldUpdatedByEmail)
	}
	if m.FieldCleared(resume.FieldDeletedByID) {
		fields = append(fields, resume.FieldDeletedByID)
	}
	if m.FieldCleared(resume.FieldDeletedByEmail) {
		fields = append(fields, resume.FieldDeletedByEmail)
	}
	if m.FieldCleared(resume.FieldDeletedAt) {
		fields = append(fields, resume.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResumeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResumeMutation) ClearField(name string) error {
	switch name {
	case resume.FieldUpdatedByID:
		m.ClearUpdatedByID()
		return nil
	case resume.FieldUpdatedByEmail:
		m.ClearUpdatedByEmail()
		return nil
	case resume.FieldDeletedByID:
		m.ClearDeletedByID()
		return nil
	case resume.FieldDeletedByEmail:
		m.ClearDeletedByEmail()
		return nil
	case resume.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Resume nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResumeMutation) ResetField(name string) error {
	switch name {
	case resume.FieldURL:
		m.ResetURL()
		return nil
	case resume.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case resume.FieldJobID:
		m.ResetJobID()
		return nil
	case resume.FieldEmail:
		m.ResetEmail()
		return nil
	case resume.FieldUserID:
		m.ResetUserID()
		return nil
	case resume.FieldStatus:
		m.ResetStatus()
		return nil
	case resume.FieldCreatedByID:
		m.ResetCreatedByID()
		return nil
	case resume.FieldCreatedByEmail:
		m.ResetCreatedByEmail()
		return nil
	case resume.FieldUpdatedByID:
		m.ResetUpdatedByID()
		return nil
	case resume.FieldUpdatedByEmail:
		m.ResetUpdatedByEmail()
		return nil
	case resume.FieldDeletedByID:
		m.ResetDeletedByID()
		return nil
	case resume.FieldDeletedByEmail:
		m.ResetDeletedByEmail()
		return nil
	case resume.FieldIsDeleted:
		m.ResetIsDeleted()
		return nil
	case resume.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case resume.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case resume.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Resume field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResumeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.history != nil {
		edges = append(edges, resume.EdgeHistory)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResumeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case resume.EdgeHistory:
		ids := make([]ent.Value, 0, len(m.history))
		for id := range m.history {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResumeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedhistory != nil {
		edges = append(edges, resume.EdgeHistory)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResumeMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case resume.EdgeHistory:
		ids := make([]ent.Value, 0, len(m.removedhistory))
		for id := range m.removedhistory {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResumeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedhistory {
		edges = append(edges, resume.EdgeHistory)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResumeMutation) EdgeCleared(name string) bool {
	switch name {
	case resume.EdgeHistory:
		return m.clearedhistory
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResumeMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Resume unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResumeMutation) ResetEdge(name string) error {
	switch name {
	case resume.EdgeHistory:
		m.ResetHistory()
		return nil
	}
	return fmt.Errorf("unknown Resume edge %s", name)
}

// StatusEventMutation represents an operation that mutates the StatusEvent nodes in the graph.
type StatusEventMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	status        *string
	seq           *int
	addseq        *int
	occurred_at   *time.Time
	actor_id      *uuid.UUID
	actor_email   *string
	clearedFields map[string]struct{}
	resume        *uuid.UUID
	clearedresume bool
	done          bool
	oldValue      func(context.Context) (*StatusEvent, error)
	predicates    []predicate.StatusEvent
}

var _ ent.Mutation = (*StatusEventMutation)(nil)

// statuseventOption allows management of the mutation configuration using functional options.
type statuseventOption func(*StatusEventMutation)

// newStatusEventMutation creates new mutation for the StatusEvent entity.
func newStatusEventMutation(c config, op Op, opts ...statuseventOption) *StatusEventMutation {
	m := &StatusEventMutation{
		config:        c,
		op:            op,
		typ:           TypeStatusEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStatusEventID sets the ID field of the mutation.
func withStatusEventID(id uuid.UUID) statuseventOption {
	return func(m *StatusEventMutation) {
		var (
			err   error
			once  sync.Once
			value *StatusEvent
		)
		m.oldValue = func(ctx context.Context) (*StatusEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StatusEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStatusEvent sets the old StatusEvent of the mutation.
func withStatusEvent(node *StatusEvent) statuseventOption {
	return func(m *StatusEventMutation) {
		m.oldValue = func(context.Context) (*StatusEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StatusEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StatusEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StatusEvent entities.
func (m *StatusEventMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StatusEventMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StatusEventMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StatusEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetResumeID sets the "resume_id" field.
func (m *StatusEventMutation) SetResumeID(u uuid.UUID) {
	m.resume = &u
}

// ResumeID returns the value of the "resume_id" field in the mutation.
func (m *StatusEventMutation) ResumeID() (r uuid.UUID, exists bool) {
	v := m.resume
	if v == nil {
		return
	}
	return *v, true
}

// OldResumeID returns the old "resume_id" field's value of the StatusEvent entity.
// If the StatusEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusEventMutation) OldResumeID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResumeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResumeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResumeID: %w", err)
	}
	return oldValue.ResumeID, nil
}

// ResetResumeID resets all changes to the "resume_id" field.
func (m *StatusEventMutation) ResetResumeID() {
	m.resume = nil
}

// SetStatus sets the "status" field.
func (m *StatusEventMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StatusEventMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StatusEvent entity.
// If the StatusEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusEventMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StatusEventMutation) ResetStatus() {
	m.status = nil
}

// SetSeq sets the "seq" field.
func (m *StatusEventMutation) SetSeq(i int) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *StatusEventMutation) Seq() (r int, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the StatusEvent entity.
// If the StatusEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusEventMutation) OldSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *StatusEventMutation) AddSeq(i int) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *StatusEventMutation) AddedSeq() (r int, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *StatusEventMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetOccurredAt sets the "occurred_at" field.
func (m *StatusEventMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *StatusEventMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the StatusEvent entity.
// If the StatusEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusEventMutation) OldOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *StatusEventMutation) ResetOccurredAt() {
	m.occurred_at = nil
}

// SetActorID sets the "actor_id" field.
func (m *StatusEventMutation) SetActorID(u uuid.UUID) {
	m.actor_id = &u
}

// ActorID returns the value of the "actor_id" field in the mutation.
func (m *StatusEventMutation) ActorID() (r uuid.UUID, exists bool) {
	v := m.actor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActorID returns the old "actor_id" field's value of the StatusEvent entity.
// If the StatusEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusEventMutation) OldActorID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorID: %w", err)
	}
	return oldValue.ActorID, nil
}

// ResetActorID resets all changes to the "actor_id" field.
func (m *StatusEventMutation) ResetActorID() {
	m.actor_id = nil
}

// SetActorEmail sets the "actor_email" field.
func (m *StatusEventMutation) SetActorEmail(s string) {
	m.actor_email = &s
}

// ActorEmail returns the value of the "actor_email" field in the mutation.
func (m *StatusEventMutation) ActorEmail() (r string, exists bool) {
	v := m.actor_email
	if v == nil {
		return
	}
	return *v, true
}

// OldActorEmail returns the old "actor_email" field's value of the StatusEvent entity.
// If the StatusEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusEventMutation) OldActorEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorEmail: %w", err)
	}
	return oldValue.ActorEmail, nil
}

// ResetActorEmail resets all changes to the "actor_email" field.
func (m *StatusEventMutation) ResetActorEmail() {
	m.actor_email = nil
}

// ClearResume clears the "resume" edge to the Resume entity.
func (m *StatusEventMutation) ClearResume() {
	m.clearedresume = true
	m.clearedFields[statusevent.FieldResumeID] = struct{}{}
}

// ResumeCleared reports if the "resume" edge to the Resume entity was cleared.
func (m *StatusEventMutation) ResumeCleared() bool {
	return m.clearedresume
}

// ResumeIDs returns the "resume" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ResumeID instead. It exists only for internal usage by the builders.
func (m *StatusEventMutation) ResumeIDs() (ids []uuid.UUID) {
	if id := m.resume; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetResume resets all changes to the "resume" edge.
func (m *StatusEventMutation) ResetResume() {
	m.resume = nil
	m.clearedresume = false
}

// Where appends a list predicates to the StatusEventMutation builder.
func (m *StatusEventMutation) Where(ps ...predicate.StatusEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StatusEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StatusEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StatusEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StatusEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StatusEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StatusEvent).
func (m *StatusEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StatusEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.resume != nil {
		fields = append(fields, statusevent.FieldResumeID)
	}
	if m.status != nil {
		fields = append(fields, statusevent.FieldStatus)
	}
	if m.seq != nil {
		fields = append(fields, statusevent.FieldSeq)
	}
	if m.occurred_at != nil {
		fields = append(fields, statusevent.FieldOccurredAt)
	}
	if m.actor_id != nil {
		fields = append(fields, statusevent.FieldActorID)
	}
	if m.actor_email != nil {
		fields = append(fields, statusevent.FieldActorEmail)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StatusEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case statusevent.FieldResumeID:
		return m.ResumeID()
	case statusevent.FieldStatus:
		return m.Status()
	case statusevent.FieldSeq:
		return m.Seq()
	case statusevent.FieldOccurredAt:
		return m.OccurredAt()
	case statusevent.FieldActorID:
		return m.ActorID()
	case statusevent.FieldActorEmail:
		return m.ActorEmail()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StatusEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case statusevent.FieldResumeID:
		return m.OldResumeID(ctx)
	case statusevent.FieldStatus:
		return m.OldStatus(ctx)
	case statusevent.FieldSeq:
		return m.OldSeq(ctx)
	case statusevent.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	case statusevent.FieldActorID:
		return m.OldActorID(ctx)
	case statusevent.FieldActorEmail:
		return m.OldActorEmail(ctx)
	}
	return nil, fmt.Errorf("unknown StatusEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StatusEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case statusevent.FieldResumeID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResumeID(v)
		return nil
	case statusevent.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case statusevent.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case statusevent.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	case statusevent.FieldActorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorID(v)
		return nil
	case statusevent.FieldActorEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorEmail(v)
		return nil
	}
	return fmt.Errorf("unknown StatusEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StatusEventMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, statusevent.FieldSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StatusEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case statusevent.FieldSeq:
		return m.AddedSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StatusEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case statusevent.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	}
	return fmt.Errorf("unknown StatusEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StatusEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StatusEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StatusEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StatusEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StatusEventMutation) ResetField(name string) error {
	switch name {
	case statusevent.FieldResumeID:
		m.ResetResumeID()
		return nil
	case statusevent.FieldStatus:
		m.ResetStatus()
		return nil
	case statusevent.FieldSeq:
		m.ResetSeq()
		return nil
	case statusevent.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	case statusevent.FieldActorID:
		m.ResetActorID()
		return nil
	case statusevent.FieldActorEmail:
		m.ResetActorEmail()
		return nil
	}
	return fmt.Errorf("unknown StatusEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StatusEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.resume != nil {
		edges = append(edges, statusevent.EdgeResume)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StatusEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case statusevent.EdgeResume:
		if id := m.resume; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StatusEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StatusEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StatusEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedresume {
		edges = append(edges, statusevent.EdgeResume)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StatusEventMutation) EdgeCleared(name string) bool {
	switch name {
	case statusevent.EdgeResume:
		return m.clearedresume
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StatusEventMutation) ClearEdge(name string) error {
	switch name {
	case statusevent.EdgeResume:
		m.ClearResume()
		return nil
	}
	return fmt.Errorf("unknown StatusEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StatusEventMutation) ResetEdge(name string) error {
	switch name {
	case statusevent.EdgeResume:
		m.ResetResume()
		return nil
	}
	return fmt.Errorf("unknown StatusEvent edge %s", name)
}
