package export_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/haidangnguyen/resume-tracker/constants"
	"github.com/haidangnguyen/resume-tracker/gen/ent"
	"github.com/haidangnguyen/resume-tracker/internal/entity"
	"github.com/haidangnguyen/resume-tracker/internal/export"
	"github.com/haidangnguyen/resume-tracker/internal/repository"
)

type stubRepo struct {
	rows    []*ent.Resume
	listErr error
}

func (s *stubRepo) Create(context.Context, repository.CreateParams) (*ent.Resume, error) {
	return nil, errors.New("not implemented")
}

func (s *stubRepo) GetByID(context.Context, uuid.UUID) (*ent.Resume, error) {
	return nil, errors.New("not implemented")
}

func (s *stubRepo) List(context.Context, repository.ListFilter, int, int) ([]*ent.Resume, int, error) {
	return nil, 0, errors.New("not implemented")
}

func (s *stubRepo) ListAll(context.Context, repository.ListFilter) ([]*ent.Resume, error) {
	return s.rows, s.listErr
}

func (s *stubRepo) ListByUser(context.Context, uuid.UUID) ([]*ent.Resume, error) {
	return nil, errors.New("not implemented")
}

func (s *stubRepo) UpdateStatus(context.Context, uuid.UUID, constants.Status, []constants.Status, entity.Actor) (*ent.Resume, error) {
	return nil, errors.New("not implemented")
}

func (s *stubRepo) SoftDelete(context.Context, uuid.UUID, entity.Actor) error {
	return errors.New("not implemented")
}

func TestExportResumesXLSX(t *testing.T) {
	hrEmail := "hr@acme.io"
	created := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	rows := []*ent.Resume{
		{
			ID:        uuid.New(),
			URL:       "uploads/alice.pdf",
			CompanyID: uuid.New(),
			JobID:     uuid.New(),
			Email:     "alice@mail.io",
			Status:    "REVIEWING",
			CreatedAt: created,
			UpdatedAt: created.Add(2 * time.Hour),

			UpdatedByEmail: &hrEmail,
		},
		{
			ID:        uuid.New(),
			URL:       "uploads/bob.pdf",
			CompanyID: uuid.New(),
			JobID:     uuid.New(),
			Email:     "bob@mail.io",
			Status:    "PENDING",
			CreatedAt: created.Add(time.Hour),
			UpdatedAt: created.Add(time.Hour),
		},
	}

	svc := export.NewService(&stubRepo{rows: rows}, slog.New(slog.DiscardHandler))

	out, err := svc.ExportResumesXLSX(context.Background(), repository.ListFilter{})
	if err != nil {
		t.Fatalf("ExportResumesXLSX failed: %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer wb.Close()

	got, err := wb.GetRows("Resumes")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(got))
	}

	wantHeader := []string{
		"Submitted At", "Candidate Email", "Status", "Company",
		"Job", "Resume URL", "Last Updated", "Last Updated By",
	}
	for i, h := range wantHeader {
		if got[0][i] != h {
			t.Fatalf("header[%d] = %q, want %q", i, got[0][i], h)
		}
	}

	alice := got[1]
	if alice[0] != "2025-06-02 09:30" {
		t.Fatalf("submitted at = %q", alice[0])
	}
	if alice[1] != "alice@mail.io" || alice[2] != "REVIEWING" {
		t.Fatalf("row = %v", alice)
	}
	if alice[7] != hrEmail {
		t.Fatalf("last updated by = %q, want %q", alice[7], hrEmail)
	}
	// bob was never transitioned, so the reviewer column stays blank
	bob := got[2]
	if len(bob) > 7 && bob[7] != "" {
		t.Fatalf("expected empty reviewer for untouched resume, got %q", bob[7])
	}
}

func TestExportEmptyResultStillValidWorkbook(t *testing.T) {
	svc := export.NewService(&stubRepo{}, slog.New(slog.DiscardHandler))

	out, err := svc.ExportResumesXLSX(context.Background(), repository.ListFilter{})
	if err != nil {
		t.Fatalf("ExportResumesXLSX failed: %v", err)
	}
	wb, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer wb.Close()

	got, err := wb.GetRows("Resumes")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("rows = %d, want header only", len(got))
	}
}

func TestExportPropagatesQueryError(t *testing.T) {
	svc := export.NewService(&stubRepo{listErr: errors.New("connection reset")}, slog.New(slog.DiscardHandler))
	if _, err := svc.ExportResumesXLSX(context.Background(), repository.ListFilter{}); err == nil {
		t.Fatal("expected query error to propagate")
	}
}
