package utils

import (
	"time"

	"github.com/haidangnguyen/resume-tracker/gen/ent"
	resumespb "github.com/haidangnguyen/resume-tracker/gen/proto/resumes/v1"
	"github.com/haidangnguyen/resume-tracker/internal/entity"
)

// ToResume maps an ent row (with its history edge loaded) to the transfer
// entity. History order is whatever the query requested; repository queries
// always ask for ascending seq.
func ToResume(e *ent.Resume) *entity.Resume {
	r := &entity.Resume{
		ID:        e.ID,
		URL:       e.URL,
		CompanyID: e.CompanyID,
		JobID:     e.JobID,
		Email:     e.Email,
		UserID:    e.UserID,
		Status:    e.Status,
		CreatedBy: entity.Actor{ID: e.CreatedByID, Email: e.CreatedByEmail},
		IsDeleted: e.IsDeleted,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
		DeletedAt: e.DeletedAt,
	}
	if e.UpdatedByID != nil && e.UpdatedByEmail != nil {
		r.UpdatedBy = &entity.Actor{ID: *e.UpdatedByID, Email: *e.UpdatedByEmail}
	}
	if e.DeletedByID != nil && e.DeletedByEmail != nil {
		r.DeletedBy = &entity.Actor{ID: *e.DeletedByID, Email: *e.DeletedByEmail}
	}
	for _, ev := range e.Edges.History {
		r.History = append(r.History, ToHistoryEntry(ev))
	}
	return r
}

func ToHistoryEntry(ev *ent.StatusEvent) entity.HistoryEntry {
	return entity.HistoryEntry{
		Status:    ev.Status,
		UpdatedAt: ev.OccurredAt,
		UpdatedBy: entity.Actor{ID: ev.ActorID, Email: ev.ActorEmail},
	}
}

func ToPBResume(r *entity.Resume) *resumespb.Resume {
	out := &resumespb.Resume{
		Id:        r.ID.String(),
		Url:       r.URL,
		CompanyId: r.CompanyID.String(),
		JobId:     r.JobID.String(),
		Email:     r.Email,
		UserId:    r.UserID.String(),
		Status:    r.Status,
		CreatedBy: toPBActor(&r.CreatedBy),
		UpdatedBy: toPBActor(r.UpdatedBy),
		DeletedBy: toPBActor(r.DeletedBy),
		IsDeleted: r.IsDeleted,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.UTC().Format(time.RFC3339),
	}
	for _, h := range r.History {
		out.History = append(out.History, &resumespb.HistoryEntry{
			Status:    h.Status,
			UpdatedAt: h.UpdatedAt.UTC().Format(time.RFC3339),
			UpdatedBy: toPBActor(&h.UpdatedBy),
		})
	}
	return out
}

func toPBActor(a *entity.Actor) *resumespb.Actor {
	if a == nil {
		return nil
	}
	return &resumespb.Actor{Id: a.ID.String(), Email: a.Email}
}
