package resumes

import (
	"context"
	"errors"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/haidangnguyen/resume-tracker/constants"
	"github.com/haidangnguyen/resume-tracker/internal/common"
	"github.com/haidangnguyen/resume-tracker/internal/entity"
	"github.com/haidangnguyen/resume-tracker/internal/repository"
	"github.com/haidangnguyen/resume-tracker/internal/utils"
)

const defaultPageSize = 10

// Service owns the resume lifecycle: creation seeds the audit history,
// transitions are validated against the allowed graph and committed
// atomically with their history entry, deletion is always soft.
type Service struct {
	repo        repository.ResumeRepository
	transitions map[constants.Status][]constants.Status
	logger      *slog.Logger
}

type Option func(*Service)

// WithTransitions overrides the allowed transition graph. Deployments that
// need review reverts can add the edges here.
func WithTransitions(graph map[constants.Status][]constants.Status) Option {
	return func(s *Service) {
		if graph != nil {
			s.transitions = graph
		}
	}
}

func NewService(repo repository.ResumeRepository, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		repo:        repo,
		transitions: constants.DefaultTransitions,
		logger:      logger,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// ActorRef is the authenticated principal as the API layer hands it over.
type ActorRef struct {
	ID    string
	Email string
}

// CreateRequest represents a resume submission.
type CreateRequest struct {
	URL       string
	CompanyID string
	JobID     string
	Email     string
	UserID    string
	Actor     ActorRef
}

// CreateResult is the deliberately minimal creation response.
type CreateResult struct {
	ID        uuid.UUID
	CreatedAt time.Time
}

// TransitionResult acknowledges an applied transition.
type TransitionResult struct {
	ID        uuid.UUID
	Status    string
	UpdatedAt time.Time
}

// ListRequest represents listing parameters.
type ListRequest struct {
	CurrentPage int
	PageSize    int
	Filter      string // JSON document, see filter schema
}

func parseActor(a ActorRef) (entity.Actor, error) {
	id, err := uuid.Parse(strings.TrimSpace(a.ID))
	if err != nil {
		return entity.Actor{}, status.Error(codes.InvalidArgument, "actor id must be a UUID")
	}
	email := strings.TrimSpace(a.Email)
	if email == "" {
		return entity.Actor{}, status.Error(codes.InvalidArgument, "actor email is required")
	}
	return entity.Actor{ID: id, Email: email}, nil
}

// Create persists a new resume with status PENDING and a single seeded
// history entry.
func (s *Service) Create(ctx context.Context, req CreateRequest) (CreateResult, error) {
	url := strings.TrimSpace(req.URL)
	if url == "" {
		s.logger.Error("create resume request missing url")
		return CreateResult{}, status.Error(codes.InvalidArgument, "url is required")
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		s.logger.Error("create resume request missing email")
		return CreateResult{}, status.Error(codes.InvalidArgument, "email is required")
	}
	companyID, err := uuid.Parse(strings.TrimSpace(req.CompanyID))
	if err != nil {
		s.logger.Error("invalid company_id format for create", "company_id", req.CompanyID, "error", err)
		return CreateResult{}, status.Error(codes.InvalidArgument, "company_id must be a UUID")
	}
	jobID, err := uuid.Parse(strings.TrimSpace(req.JobID))
	if err != nil {
		s.logger.Error("invalid job_id format for create", "job_id", req.JobID, "error", err)
		return CreateResult{}, status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}
	userID, err := uuid.Parse(strings.TrimSpace(req.UserID))
	if err != nil {
		s.logger.Error("invalid user_id format for create", "user_id", req.UserID, "error", err)
		return CreateResult{}, status.Error(codes.InvalidArgument, "user_id must be a UUID")
	}
	actor, err := parseActor(req.Actor)
	if err != nil {
		return CreateResult{}, err
	}

	row, err := s.repo.Create(ctx, repository.CreateParams{
		URL:       url,
		CompanyID: companyID,
		JobID:     jobID,
		Email:     email,
		UserID:    userID,
		Actor:     actor,
	})
	if err != nil {
		s.logger.Error("failed to create resume", "user_id", userID, "error", err)
		return CreateResult{}, status.Errorf(codes.Internal, "create resume: %v", err)
	}

	s.logger.Info("resume created", "resume_id", row.ID, "user_id", userID)
	return CreateResult{ID: row.ID, CreatedAt: row.CreatedAt}, nil
}

// Get returns a record by id, including soft-deleted ones (audit lookups).
func (s *Service) Get(ctx context.Context, id string) (*entity.Resume, error) {
	rid, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		s.logger.Error("invalid resume id format", "id", id, "error", err)
		return nil, status.Error(codes.InvalidArgument, "resume not found")
	}
	row, err := s.repo.GetByID(ctx, rid)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "resume not found")
		}
		s.logger.Error("failed to get resume", "resume_id", rid, "error", err)
		return nil, status.Errorf(codes.Internal, "get resume: %v", err)
	}
	return utils.ToResume(row), nil
}

// List returns one page of non-deleted records matching the filter.
func (s *Service) List(ctx context.Context, req ListRequest) (*entity.Page, error) {
	page := req.CurrentPage
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	filter, err := ParseFilter(req.Filter)
	if err != nil {
		s.logger.Error("invalid list filter", "filter", req.Filter, "error", err)
		return nil, status.Errorf(codes.InvalidArgument, "invalid filter: %v", err)
	}

	rows, total, err := s.repo.List(ctx, filter, page, pageSize)
	if err != nil {
		s.logger.Error("failed to list resumes", "error", err)
		return nil, status.Errorf(codes.Internal, "list resumes: %v", err)
	}

	pages := (total + pageSize - 1) / pageSize
	out := &entity.Page{
		Meta: entity.PageMeta{
			Current:  page,
			PageSize: pageSize,
			Pages:    pages,
			Total:    total,
		},
	}
	for _, row := range rows {
		out.Items = append(out.Items, utils.ToResume(row))
	}
	return out, nil
}

// ListByUser returns the user's non-deleted records, newest first.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]*entity.Resume, error) {
	uid, err := uuid.Parse(strings.TrimSpace(userID))
	if err != nil {
		s.logger.Error("invalid user_id format for list", "user_id", userID, "error", err)
		return nil, status.Error(codes.InvalidArgument, "user_id must be a UUID")
	}
	rows, err := s.repo.ListByUser(ctx, uid)
	if err != nil {
		s.logger.Error("failed to list resumes by user", "user_id", uid, "error", err)
		return nil, status.Errorf(codes.Internal, "list resumes: %v", err)
	}
	out := make([]*entity.Resume, 0, len(rows))
	for _, row := range rows {
		out = append(out, utils.ToResume(row))
	}
	return out, nil
}

// Transition applies a status change. The status update and its history
// entry commit together or not at all.
func (s *Service) Transition(ctx context.Context, id, newStatus string, actorRef ActorRef) (TransitionResult, error) {
	rid, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		s.logger.Error("invalid resume id format for transition", "id", id, "error", err)
		return TransitionResult{}, status.Error(codes.InvalidArgument, "resume not found")
	}
	to, ok := constants.ParseStatus(strings.TrimSpace(newStatus))
	if !ok {
		s.logger.Error("unknown status for transition", "resume_id", rid, "status", newStatus)
		return TransitionResult{}, status.Errorf(codes.InvalidArgument, "unknown status %q", newStatus)
	}
	actor, err := parseActor(actorRef)
	if err != nil {
		return TransitionResult{}, err
	}

	// states with an edge into the target; empty means the target is
	// unreachable (e.g. nothing transitions back to PENDING)
	var allowedFrom []constants.Status
	for from, outs := range s.transitions {
		for _, next := range outs {
			if next == to {
				allowedFrom = append(allowedFrom, from)
			}
		}
	}
	if len(allowedFrom) == 0 {
		s.logger.Error("status has no inbound transitions", "resume_id", rid, "status", to)
		return TransitionResult{}, status.Errorf(codes.InvalidArgument, "no transition leads to %s", to)
	}

	row, err := s.repo.UpdateStatus(ctx, rid, to, allowedFrom, actor)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			return TransitionResult{}, status.Error(codes.NotFound, "resume not found")
		case errors.Is(err, common.ErrTransitionNotAllowed):
			return TransitionResult{}, status.Errorf(codes.InvalidArgument, "%v", err)
		default:
			s.logger.Error("failed to transition resume", "resume_id", rid, "status", to, "error", err)
			return TransitionResult{}, status.Errorf(codes.Internal, "transition resume: %v", err)
		}
	}

	s.logger.Info("resume transitioned", "resume_id", rid, "status", to, "actor_id", actor.ID)
	return TransitionResult{ID: row.ID, Status: row.Status, UpdatedAt: row.UpdatedAt}, nil
}

// SoftDelete marks the record deleted. History and status stay untouched;
// the record remains readable via Get.
func (s *Service) SoftDelete(ctx context.Context, id string, actorRef ActorRef) error {
	rid, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		s.logger.Error("invalid resume id format for delete", "id", id, "error", err)
		return status.Error(codes.InvalidArgument, "resume not found")
	}
	actor, err := parseActor(actorRef)
	if err != nil {
		return err
	}

	if err := s.repo.SoftDelete(ctx, rid, actor); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return status.Error(codes.NotFound, "resume not found")
		}
		s.logger.Error("failed to soft delete resume", "resume_id", rid, "error", err)
		return status.Errorf(codes.Internal, "delete resume: %v", err)
	}

	s.logger.Info("resume soft deleted", "resume_id", rid, "actor_id", actor.ID)
	return nil
}
