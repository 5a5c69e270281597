package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/haidangnguyen/resume-tracker/constants"
	"github.com/haidangnguyen/resume-tracker/gen/ent"
	"github.com/haidangnguyen/resume-tracker/internal/common"
	"github.com/haidangnguyen/resume-tracker/internal/entity"
	"github.com/haidangnguyen/resume-tracker/internal/repository"
)

func openClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	t.Cleanup(func() { _ = client.Close() })

	if err := client.Schema.Create(context.Background()); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return client
}

func newRepo(t *testing.T) repository.ResumeRepository {
	t.Helper()
	return repository.NewResumeRepository(openClient(t), slog.New(slog.DiscardHandler))
}

func submitter() entity.Actor {
	return entity.Actor{ID: uuid.New(), Email: "candidate@mail.io"}
}

func reviewer() entity.Actor {
	return entity.Actor{ID: uuid.New(), Email: "hr@acme.io"}
}

func createParams(userID uuid.UUID, actor entity.Actor) repository.CreateParams {
	return repository.CreateParams{
		URL:       "uploads/cv.pdf",
		CompanyID: uuid.New(),
		JobID:     uuid.New(),
		Email:     actor.Email,
		UserID:    userID,
		Actor:     actor,
	}
}

func TestCreateSeedsHistory(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	actor := submitter()

	row, err := repo.Create(ctx, createParams(actor.ID, actor))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if row.Status != string(constants.StatusPending) {
		t.Fatalf("status = %q, want PENDING", row.Status)
	}

	got, err := repo.GetByID(ctx, row.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	hist := got.Edges.History
	if len(hist) != 1 {
		t.Fatalf("history length = %d, want 1", len(hist))
	}
	if hist[0].Status != string(constants.StatusPending) || hist[0].Seq != 0 {
		t.Fatalf("seed entry = %+v", hist[0])
	}
	if hist[0].ActorID != actor.ID || hist[0].ActorEmail != actor.Email {
		t.Fatalf("seed actor snapshot = %+v, want %+v", hist[0], actor)
	}
	if got.UpdatedByID != nil {
		t.Fatal("updated_by must stay nil until the first transition")
	}
}

func TestTransitionsAppendOrderedHistory(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	actor := submitter()
	hr := reviewer()

	row, err := repo.Create(ctx, createParams(actor.ID, actor))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	steps := []struct {
		to   constants.Status
		from []constants.Status
	}{
		{constants.StatusReviewing, []constants.Status{constants.StatusPending}},
		{constants.StatusApproved, []constants.Status{constants.StatusReviewing}},
	}
	for _, s := range steps {
		if _, err := repo.UpdateStatus(ctx, row.ID, s.to, s.from, hr); err != nil {
			t.Fatalf("UpdateStatus(%s) failed: %v", s.to, err)
		}
	}

	got, err := repo.GetByID(ctx, row.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Status != string(constants.StatusApproved) {
		t.Fatalf("status = %q, want APPROVED", got.Status)
	}
	if got.UpdatedByID == nil || *got.UpdatedByID != hr.ID {
		t.Fatalf("updated_by = %v, want %s", got.UpdatedByID, hr.ID)
	}

	want := []string{"PENDING", "REVIEWING", "APPROVED"}
	hist := got.Edges.History
	if len(hist) != len(want) {
		t.Fatalf("history length = %d, want %d", len(hist), len(want))
	}
	for i, ev := range hist {
		if ev.Status != want[i] {
			t.Fatalf("history[%d] = %q, want %q", i, ev.Status, want[i])
		}
		if ev.Seq != i {
			t.Fatalf("history[%d].seq = %d, want %d", i, ev.Seq, i)
		}
	}
}

func TestDisallowedTransitionWritesNothing(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	actor := submitter()

	row, err := repo.Create(ctx, createParams(actor.ID, actor))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// PENDING -> APPROVED is not an edge
	_, err = repo.UpdateStatus(ctx, row.ID, constants.StatusApproved,
		[]constants.Status{constants.StatusReviewing}, reviewer())
	if !errors.Is(err, common.ErrTransitionNotAllowed) {
		t.Fatalf("err = %v, want ErrTransitionNotAllowed", err)
	}

	got, err := repo.GetByID(ctx, row.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Status != string(constants.StatusPending) {
		t.Fatalf("status mutated to %q by rejected transition", got.Status)
	}
	if len(got.Edges.History) != 1 {
		t.Fatalf("history grew to %d on rejected transition", len(got.Edges.History))
	}
}

func TestTransitionUnknownID(t *testing.T) {
	repo := newRepo(t)
	_, err := repo.UpdateStatus(context.Background(), uuid.New(), constants.StatusReviewing,
		[]constants.Status{constants.StatusPending}, reviewer())
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSoftDeletePreservesRecord(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	actor := submitter()
	hr := reviewer()

	row, err := repo.Create(ctx, createParams(actor.ID, actor))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := repo.UpdateStatus(ctx, row.ID, constants.StatusReviewing,
		[]constants.Status{constants.StatusPending}, hr); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	if err := repo.SoftDelete(ctx, row.ID, hr); err != nil {
		t.Fatalf("SoftDelete failed: %v", err)
	}

	// still retrievable by id for audit purposes
	got, err := repo.GetByID(ctx, row.ID)
	if err != nil {
		t.Fatalf("GetByID after soft delete failed: %v", err)
	}
	if !got.IsDeleted {
		t.Fatal("is_deleted not set")
	}
	if got.DeletedByID == nil || *got.DeletedByID != hr.ID {
		t.Fatalf("deleted_by = %v, want %s", got.DeletedByID, hr.ID)
	}
	if got.Status != string(constants.StatusReviewing) {
		t.Fatalf("soft delete changed status to %q", got.Status)
	}
	if len(got.Edges.History) != 2 {
		t.Fatalf("soft delete changed history length to %d", len(got.Edges.History))
	}

	// excluded from listings
	rows, total, err := repo.List(ctx, repository.ListFilter{}, 1, 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 0 || len(rows) != 0 {
		t.Fatalf("deleted record still listed: total=%d", total)
	}
	byUser, err := repo.ListByUser(ctx, actor.ID)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(byUser) != 0 {
		t.Fatal("deleted record still listed for user")
	}
}

func TestSoftDeleteUnknownID(t *testing.T) {
	repo := newRepo(t)
	err := repo.SoftDelete(context.Background(), uuid.New(), reviewer())
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListPagination(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	actor := submitter()

	for i := 0; i < 25; i++ {
		if _, err := repo.Create(ctx, createParams(actor.ID, actor)); err != nil {
			t.Fatalf("Create %d failed: %v", i, err)
		}
	}

	rows, total, err := repo.List(ctx, repository.ListFilter{}, 2, 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 25 {
		t.Fatalf("total = %d, want 25", total)
	}
	if len(rows) != 10 {
		t.Fatalf("page length = %d, want 10", len(rows))
	}

	rows, _, err = repo.List(ctx, repository.ListFilter{}, 3, 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("last page length = %d, want 5", len(rows))
	}
}

func TestListFilters(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	actor := submitter()
	hr := reviewer()

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		row, err := repo.Create(ctx, createParams(actor.ID, actor))
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		ids = append(ids, row.ID)
	}
	if _, err := repo.UpdateStatus(ctx, ids[0], constants.StatusReviewing,
		[]constants.Status{constants.StatusPending}, hr); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	st := constants.StatusReviewing
	rows, total, err := repo.List(ctx, repository.ListFilter{Status: &st}, 1, 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 1 || len(rows) != 1 || rows[0].ID != ids[0] {
		t.Fatalf("status filter returned %d rows (total %d)", len(rows), total)
	}

	all, err := repo.ListAll(ctx, repository.ListFilter{})
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("ListAll = %d rows, want 3", len(all))
	}
}
