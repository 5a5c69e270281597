package entity

import (
	"time"

	"github.com/google/uuid"
)

// Actor is an identity snapshot captured at mutation time. It is copied
// into the record rather than referenced, so the audit trail survives
// later changes to the user account.
type Actor struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// HistoryEntry is one immutable status transition in a resume's audit trail.
type HistoryEntry struct {
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy Actor     `json:"updated_by"`
}

// Resume represents a resume record for data transfer between layers.
type Resume struct {
	ID        uuid.UUID      `json:"id"`
	URL       string         `json:"url"`
	CompanyID uuid.UUID      `json:"company_id"`
	JobID     uuid.UUID      `json:"job_id"`
	Email     string         `json:"email"`
	UserID    uuid.UUID      `json:"user_id"`
	Status    string         `json:"status"`
	CreatedBy Actor          `json:"created_by"`
	UpdatedBy *Actor         `json:"updated_by,omitempty"`
	DeletedBy *Actor         `json:"deleted_by,omitempty"`
	IsDeleted bool           `json:"is_deleted"`
	History   []HistoryEntry `json:"history"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt *time.Time     `json:"deleted_at,omitempty"`
}
