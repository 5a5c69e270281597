package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/haidangnguyen/resume-tracker/constants"
	"github.com/haidangnguyen/resume-tracker/gen/ent"
	entresume "github.com/haidangnguyen/resume-tracker/gen/ent/resume"
	entstatusevent "github.com/haidangnguyen/resume-tracker/gen/ent/statusevent"
	"github.com/haidangnguyen/resume-tracker/internal/common"
	"github.com/haidangnguyen/resume-tracker/internal/entity"
)

// CreateParams carries everything needed to persist a new resume record.
type CreateParams struct {
	URL       string
	CompanyID uuid.UUID
	JobID     uuid.UUID
	Email     string
	UserID    uuid.UUID
	Actor     entity.Actor
}

// ListFilter narrows listings. Nil fields are not applied.
type ListFilter struct {
	Status    *constants.Status
	CompanyID *uuid.UUID
	JobID     *uuid.UUID
	Email     *string
	UserID    *uuid.UUID
}

type ResumeRepository interface {
	// Create persists the record and its seeded PENDING history entry in
	// one transaction.
	Create(ctx context.Context, p CreateParams) (*ent.Resume, error)
	// GetByID returns the record with ordered history, including
	// soft-deleted rows (audit lookups).
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Resume, error)
	// List returns one page of non-deleted records plus the total match
	// count. page is 1-based.
	List(ctx context.Context, f ListFilter, page, pageSize int) ([]*ent.Resume, int, error)
	// ListAll returns every non-deleted match, newest first.
	ListAll(ctx context.Context, f ListFilter) ([]*ent.Resume, error)
	// ListByUser returns the user's non-deleted records, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ent.Resume, error)
	// UpdateStatus sets status and updated_by and appends the history
	// entry in one transaction. allowedFrom guards the transition: the
	// row's current status must be one of them.
	UpdateStatus(ctx context.Context, id uuid.UUID, to constants.Status, allowedFrom []constants.Status, actor entity.Actor) (*ent.Resume, error)
	// SoftDelete marks the record deleted without touching history.
	SoftDelete(ctx context.Context, id uuid.UUID, actor entity.Actor) error
}

type resumeRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewResumeRepository(entc *ent.Client, logger *slog.Logger) ResumeRepository {
	return &resumeRepo{
		ent:    entc,
		logger: logger,
	}
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: rolling back transaction: %v", err, rerr)
	}
	return err
}

func (r *resumeRepo) Create(ctx context.Context, p CreateParams) (*ent.Resume, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		r.logger.Error("failed to open transaction", "error", err)
		return nil, common.WrapError(err, "begin tx")
	}

	row, err := tx.Resume.Create().
		SetURL(p.URL).
		SetCompanyID(p.CompanyID).
		SetJobID(p.JobID).
		SetEmail(p.Email).
		SetUserID(p.UserID).
		SetStatus(string(constants.StatusPending)).
		SetCreatedByID(p.Actor.ID).
		SetCreatedByEmail(p.Actor.Email).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create resume", "user_id", p.UserID, "error", err)
		return nil, rollback(tx, err)
	}

	// seed history: a record is never without its creation entry
	_, err = tx.StatusEvent.Create().
		SetResumeID(row.ID).
		SetStatus(string(constants.StatusPending)).
		SetSeq(0).
		SetActorID(p.Actor.ID).
		SetActorEmail(p.Actor.Email).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to seed resume history", "resume_id", row.ID, "error", err)
		return nil, rollback(tx, err)
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("failed to commit resume creation", "resume_id", row.ID, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *resumeRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Resume, error) {
	row, err := r.ent.Resume.Query().
		Where(entresume.ID(id)).
		WithHistory(func(q *ent.StatusEventQuery) {
			q.Order(ent.Asc(entstatusevent.FieldSeq))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to get resume", "resume_id", id, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *resumeRepo) filtered(f ListFilter) *ent.ResumeQuery {
	q := r.ent.Resume.Query().Where(entresume.IsDeleted(false))
	if f.Status != nil {
		q = q.Where(entresume.Status(string(*f.Status)))
	}
	if f.CompanyID != nil {
		q = q.Where(entresume.CompanyID(*f.CompanyID))
	}
	if f.JobID != nil {
		q = q.Where(entresume.JobID(*f.JobID))
	}
	if f.Email != nil {
		q = q.Where(entresume.Email(*f.Email))
	}
	if f.UserID != nil {
		q = q.Where(entresume.UserID(*f.UserID))
	}
	return q
}

func (r *resumeRepo) List(ctx context.Context, f ListFilter, page, pageSize int) ([]*ent.Resume, int, error) {
	total, err := r.filtered(f).Count(ctx)
	if err != nil {
		r.logger.Error("failed to count resumes", "error", err)
		return nil, 0, err
	}

	rows, err := r.filtered(f).
		Order(ent.Desc(entresume.FieldCreatedAt)).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		WithHistory(func(q *ent.StatusEventQuery) {
			q.Order(ent.Asc(entstatusevent.FieldSeq))
		}).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list resumes", "error", err)
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *resumeRepo) ListAll(ctx context.Context, f ListFilter) ([]*ent.Resume, error) {
	rows, err := r.filtered(f).
		Order(ent.Desc(entresume.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list resumes", "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *resumeRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ent.Resume, error) {
	rows, err := r.ent.Resume.Query().
		Where(
			entresume.UserID(userID),
			entresume.IsDeleted(false),
		).
		Order(ent.Desc(entresume.FieldCreatedAt)).
		WithHistory(func(q *ent.StatusEventQuery) {
			q.Order(ent.Asc(entstatusevent.FieldSeq))
		}).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list resumes by user", "user_id", userID, "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *resumeRepo) UpdateStatus(ctx context.Context, id uuid.UUID, to constants.Status, allowedFrom []constants.Status, actor entity.Actor) (*ent.Resume, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		r.logger.Error("failed to open transaction", "error", err)
		return nil, common.WrapError(err, "begin tx")
	}

	cur, err := tx.Resume.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, rollback(tx, common.ErrNotFound)
		}
		r.logger.Error("failed to load resume for transition", "resume_id", id, "error", err)
		return nil, rollback(tx, err)
	}

	fromOK := false
	for _, s := range allowedFrom {
		if string(s) == cur.Status {
			fromOK = true
			break
		}
	}
	if !fromOK {
		return nil, rollback(tx, fmt.Errorf("%w: %s -> %s", common.ErrTransitionNotAllowed, cur.Status, to))
	}

	seq, err := tx.StatusEvent.Query().
		Where(entstatusevent.ResumeID(id)).
		Count(ctx)
	if err != nil {
		r.logger.Error("failed to count history", "resume_id", id, "error", err)
		return nil, rollback(tx, err)
	}

	row, err := tx.Resume.UpdateOneID(id).
		SetStatus(string(to)).
		SetUpdatedByID(actor.ID).
		SetUpdatedByEmail(actor.Email).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to update resume status", "resume_id", id, "status", to, "error", err)
		return nil, rollback(tx, err)
	}

	_, err = tx.StatusEvent.Create().
		SetResumeID(id).
		SetStatus(string(to)).
		SetSeq(seq).
		SetActorID(actor.ID).
		SetActorEmail(actor.Email).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to append history", "resume_id", id, "status", to, "error", err)
		return nil, rollback(tx, err)
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("failed to commit transition", "resume_id", id, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *resumeRepo) SoftDelete(ctx context.Context, id uuid.UUID, actor entity.Actor) error {
	err := r.ent.Resume.UpdateOneID(id).
		SetIsDeleted(true).
		SetDeletedAt(time.Now().UTC()).
		SetDeletedByID(actor.ID).
		SetDeletedByEmail(actor.Email).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.logger.Error("failed to soft delete resume", "resume_id", id, "error", err)
		return err
	}
	return nil
}
