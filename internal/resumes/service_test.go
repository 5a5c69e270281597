package resumes_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/haidangnguyen/resume-tracker/constants"
	"github.com/haidangnguyen/resume-tracker/gen/ent"
	"github.com/haidangnguyen/resume-tracker/internal/common"
	"github.com/haidangnguyen/resume-tracker/internal/entity"
	"github.com/haidangnguyen/resume-tracker/internal/repository"
	"github.com/haidangnguyen/resume-tracker/internal/resumes"
)

// fakeRepo records calls and returns canned rows.
type fakeRepo struct {
	createCalls []repository.CreateParams
	updateCalls int
	deleteCalls int

	row       *ent.Resume
	rows      []*ent.Resume
	total     int
	updateErr error
	getErr    error
}

func (f *fakeRepo) Create(_ context.Context, p repository.CreateParams) (*ent.Resume, error) {
	f.createCalls = append(f.createCalls, p)
	return &ent.Resume{ID: uuid.New(), CreatedAt: time.Now()}, nil
}

func (f *fakeRepo) GetByID(context.Context, uuid.UUID) (*ent.Resume, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.row, nil
}

func (f *fakeRepo) List(context.Context, repository.ListFilter, int, int) ([]*ent.Resume, int, error) {
	return f.rows, f.total, nil
}

func (f *fakeRepo) ListAll(context.Context, repository.ListFilter) ([]*ent.Resume, error) {
	return f.rows, nil
}

func (f *fakeRepo) ListByUser(context.Context, uuid.UUID) ([]*ent.Resume, error) {
	return f.rows, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id uuid.UUID, to constants.Status, _ []constants.Status, _ entity.Actor) (*ent.Resume, error) {
	f.updateCalls++
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &ent.Resume{ID: id, Status: string(to), UpdatedAt: time.Now()}, nil
}

func (f *fakeRepo) SoftDelete(context.Context, uuid.UUID, entity.Actor) error {
	f.deleteCalls++
	return nil
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func actorRef() resumes.ActorRef {
	return resumes.ActorRef{ID: uuid.NewString(), Email: "hr@acme.io"}
}

func wantCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error")
	}
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("not a status error: %v", err)
	}
	if st.Code() != code {
		t.Fatalf("code = %v, want %v (%v)", st.Code(), code, err)
	}
}

func TestCreateValidatesInput(t *testing.T) {
	repo := &fakeRepo{}
	svc := resumes.NewService(repo, discard())
	ctx := context.Background()

	valid := resumes.CreateRequest{
		URL:       "uploads/cv.pdf",
		CompanyID: uuid.NewString(),
		JobID:     uuid.NewString(),
		Email:     "dev@acme.io",
		UserID:    uuid.NewString(),
		Actor:     actorRef(),
	}

	cases := []struct {
		name   string
		mutate func(*resumes.CreateRequest)
	}{
		{"missing url", func(r *resumes.CreateRequest) { r.URL = " " }},
		{"missing email", func(r *resumes.CreateRequest) { r.Email = "" }},
		{"bad company id", func(r *resumes.CreateRequest) { r.CompanyID = "nope" }},
		{"bad job id", func(r *resumes.CreateRequest) { r.JobID = "nope" }},
		{"bad user id", func(r *resumes.CreateRequest) { r.UserID = "nope" }},
		{"bad actor id", func(r *resumes.CreateRequest) { r.Actor.ID = "nope" }},
		{"missing actor email", func(r *resumes.CreateRequest) { r.Actor.Email = "" }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := valid
			c.mutate(&req)
			_, err := svc.Create(ctx, req)
			wantCode(t, err, codes.InvalidArgument)
		})
	}
	if len(repo.createCalls) != 0 {
		t.Fatalf("invalid input reached the repository: %d calls", len(repo.createCalls))
	}

	res, err := svc.Create(ctx, valid)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if res.ID == uuid.Nil || res.CreatedAt.IsZero() {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(repo.createCalls) != 1 {
		t.Fatalf("create calls = %d, want 1", len(repo.createCalls))
	}
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	repo := &fakeRepo{}
	svc := resumes.NewService(repo, discard())

	_, err := svc.Transition(context.Background(), uuid.NewString(), "SHIPPED", actorRef())
	wantCode(t, err, codes.InvalidArgument)
	if repo.updateCalls != 0 {
		t.Fatal("rejected transition must not write")
	}
}

func TestTransitionRejectsUnreachableStatus(t *testing.T) {
	repo := &fakeRepo{}
	svc := resumes.NewService(repo, discard())

	// nothing transitions back to PENDING
	_, err := svc.Transition(context.Background(), uuid.NewString(), "PENDING", actorRef())
	wantCode(t, err, codes.InvalidArgument)
	if repo.updateCalls != 0 {
		t.Fatal("rejected transition must not write")
	}
}

func TestTransitionMalformedID(t *testing.T) {
	repo := &fakeRepo{}
	svc := resumes.NewService(repo, discard())

	_, err := svc.Transition(context.Background(), "12345", "REVIEWING", actorRef())
	wantCode(t, err, codes.InvalidArgument)
	if repo.updateCalls != 0 {
		t.Fatal("malformed id must not write")
	}
}

func TestTransitionErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"not found", common.ErrNotFound, codes.NotFound},
		{"disallowed edge", common.ErrTransitionNotAllowed, codes.InvalidArgument},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			repo := &fakeRepo{updateErr: c.err}
			svc := resumes.NewService(repo, discard())
			_, err := svc.Transition(context.Background(), uuid.NewString(), "REVIEWING", actorRef())
			wantCode(t, err, c.code)
		})
	}
}

func TestTransitionSuccess(t *testing.T) {
	repo := &fakeRepo{}
	svc := resumes.NewService(repo, discard())

	res, err := svc.Transition(context.Background(), uuid.NewString(), "REVIEWING", actorRef())
	if err != nil {
		t.Fatalf("Transition failed: %v", err)
	}
	if res.Status != "REVIEWING" {
		t.Fatalf("status = %q, want REVIEWING", res.Status)
	}
	if repo.updateCalls != 1 {
		t.Fatalf("update calls = %d, want 1", repo.updateCalls)
	}
}

func TestTransitionGraphOverride(t *testing.T) {
	repo := &fakeRepo{}
	svc := resumes.NewService(repo, discard(), resumes.WithTransitions(map[constants.Status][]constants.Status{
		constants.StatusApproved: {constants.StatusReviewing},
	}))

	// the override allows re-opening an approved application
	if _, err := svc.Transition(context.Background(), uuid.NewString(), "REVIEWING", actorRef()); err != nil {
		t.Fatalf("Transition failed under override: %v", err)
	}
	// and drops the default edges entirely
	_, err := svc.Transition(context.Background(), uuid.NewString(), "APPROVED", actorRef())
	wantCode(t, err, codes.InvalidArgument)
}

func TestListPaginationMeta(t *testing.T) {
	repo := &fakeRepo{total: 25}
	for i := 0; i < 10; i++ {
		repo.rows = append(repo.rows, &ent.Resume{ID: uuid.New(), Status: "PENDING"})
	}
	svc := resumes.NewService(repo, discard())

	page, err := svc.List(context.Background(), resumes.ListRequest{CurrentPage: 2, PageSize: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(page.Items) != 10 {
		t.Fatalf("items = %d, want 10", len(page.Items))
	}
	meta := page.Meta
	if meta.Current != 2 || meta.PageSize != 10 || meta.Pages != 3 || meta.Total != 25 {
		t.Fatalf("meta = %+v, want {2 10 3 25}", meta)
	}
}

func TestListDefaultsAndBadFilter(t *testing.T) {
	repo := &fakeRepo{}
	svc := resumes.NewService(repo, discard())
	ctx := context.Background()

	page, err := svc.List(ctx, resumes.ListRequest{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if page.Meta.Current != 1 || page.Meta.PageSize != 10 {
		t.Fatalf("meta = %+v, want defaults {1 10}", page.Meta)
	}

	_, err = svc.List(ctx, resumes.ListRequest{Filter: `{"bogus":1}`})
	wantCode(t, err, codes.InvalidArgument)
}

func TestGetMapsHistory(t *testing.T) {
	actorID := uuid.New()
	repo := &fakeRepo{row: &ent.Resume{
		ID:             uuid.New(),
		Status:         "REVIEWING",
		CreatedByID:    actorID,
		CreatedByEmail: "dev@acme.io",
		Edges: ent.ResumeEdges{History: []*ent.StatusEvent{
			{Status: "PENDING", Seq: 0, OccurredAt: time.Now().Add(-time.Hour), ActorID: actorID, ActorEmail: "dev@acme.io"},
			{Status: "REVIEWING", Seq: 1, OccurredAt: time.Now(), ActorID: actorID, ActorEmail: "hr@acme.io"},
		}},
	}}
	svc := resumes.NewService(repo, discard())

	r, err := svc.Get(context.Background(), uuid.NewString())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(r.History) != 2 {
		t.Fatalf("history length = %d, want 2", len(r.History))
	}
	if r.History[0].Status != "PENDING" || r.History[1].Status != "REVIEWING" {
		t.Fatalf("history out of order: %+v", r.History)
	}
	if r.History[1].UpdatedBy.Email != "hr@acme.io" {
		t.Fatalf("actor snapshot lost: %+v", r.History[1])
	}
}

func TestGetNotFound(t *testing.T) {
	repo := &fakeRepo{getErr: common.ErrNotFound}
	svc := resumes.NewService(repo, discard())

	_, err := svc.Get(context.Background(), uuid.NewString())
	wantCode(t, err, codes.NotFound)

	_, err = svc.Get(context.Background(), "not-a-uuid")
	wantCode(t, err, codes.InvalidArgument)
}

func TestSoftDelete(t *testing.T) {
	repo := &fakeRepo{}
	svc := resumes.NewService(repo, discard())

	if err := svc.SoftDelete(context.Background(), uuid.NewString(), actorRef()); err != nil {
		t.Fatalf("SoftDelete failed: %v", err)
	}
	if repo.deleteCalls != 1 {
		t.Fatalf("delete calls = %d, want 1", repo.deleteCalls)
	}

	err := svc.SoftDelete(context.Background(), "garbage", actorRef())
	wantCode(t, err, codes.InvalidArgument)
	if repo.deleteCalls != 1 {
		t.Fatal("malformed id must not write")
	}
}
