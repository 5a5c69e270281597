package server

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	resumespb "github.com/haidangnguyen/resume-tracker/gen/proto/resumes/v1"
	"github.com/haidangnguyen/resume-tracker/internal/export"
	"github.com/haidangnguyen/resume-tracker/internal/resumes"
	"github.com/haidangnguyen/resume-tracker/internal/utils"
)

// ResumeService adapts the resume lifecycle service to the gRPC surface.
// Auth happens upstream; actor fields arrive pre-authenticated.
type ResumeService struct {
	resumespb.UnimplementedResumeServiceServer
	svc      *resumes.Service
	exporter *export.Service
	logger   *slog.Logger
}

func NewResumeService(svc *resumes.Service, exporter *export.Service, logger *slog.Logger) *ResumeService {
	return &ResumeService{
		svc:      svc,
		exporter: exporter,
		logger:   logger,
	}
}

func (s *ResumeService) CreateResume(ctx context.Context, req *resumespb.CreateResumeRequest) (*resumespb.CreateResumeResponse, error) {
	res, err := s.svc.Create(ctx, resumes.CreateRequest{
		URL:       req.GetUrl(),
		CompanyID: req.GetCompanyId(),
		JobID:     req.GetJobId(),
		Email:     req.GetEmail(),
		UserID:    req.GetUserId(),
		Actor:     resumes.ActorRef{ID: req.GetActorId(), Email: req.GetActorEmail()},
	})
	if err != nil {
		return nil, err
	}
	return &resumespb.CreateResumeResponse{
		Id:        res.ID.String(),
		CreatedAt: res.CreatedAt.UTC().Format(time.RFC3339),
	}, nil
}

func (s *ResumeService) GetResume(ctx context.Context, req *resumespb.GetResumeRequest) (*resumespb.GetResumeResponse, error) {
	r, err := s.svc.Get(ctx, req.GetId())
	if err != nil {
		return nil, err
	}
	return &resumespb.GetResumeResponse{Resume: utils.ToPBResume(r)}, nil
}

func (s *ResumeService) ListResumes(ctx context.Context, req *resumespb.ListResumesRequest) (*resumespb.ListResumesResponse, error) {
	page, err := s.svc.List(ctx, resumes.ListRequest{
		CurrentPage: int(req.GetCurrentPage()),
		PageSize:    int(req.GetPageSize()),
		Filter:      req.GetFilter(),
	})
	if err != nil {
		return nil, err
	}

	out := &resumespb.ListResumesResponse{
		Meta: &resumespb.PageMeta{
			Current:  int32(page.Meta.Current),
			PageSize: int32(page.Meta.PageSize),
			Pages:    int32(page.Meta.Pages),
			Total:    int32(page.Meta.Total),
		},
	}
	for _, r := range page.Items {
		out.Results = append(out.Results, utils.ToPBResume(r))
	}
	return out, nil
}

func (s *ResumeService) ListResumesForUser(ctx context.Context, req *resumespb.ListResumesForUserRequest) (*resumespb.ListResumesForUserResponse, error) {
	recs, err := s.svc.ListByUser(ctx, req.GetUserId())
	if err != nil {
		return nil, err
	}
	out := &resumespb.ListResumesForUserResponse{}
	for _, r := range recs {
		out.Resumes = append(out.Resumes, utils.ToPBResume(r))
	}
	return out, nil
}

func (s *ResumeService) TransitionStatus(ctx context.Context, req *resumespb.TransitionStatusRequest) (*resumespb.TransitionStatusResponse, error) {
	res, err := s.svc.Transition(ctx, req.GetId(), req.GetStatus(),
		resumes.ActorRef{ID: req.GetActorId(), Email: req.GetActorEmail()})
	if err != nil {
		return nil, err
	}
	return &resumespb.TransitionStatusResponse{
		Id:        res.ID.String(),
		Status:    res.Status,
		UpdatedAt: res.UpdatedAt.UTC().Format(time.RFC3339),
	}, nil
}

func (s *ResumeService) SoftDeleteResume(ctx context.Context, req *resumespb.SoftDeleteResumeRequest) (*resumespb.SoftDeleteResumeResponse, error) {
	err := s.svc.SoftDelete(ctx, req.GetId(),
		resumes.ActorRef{ID: req.GetActorId(), Email: req.GetActorEmail()})
	if err != nil {
		return nil, err
	}
	return &resumespb.SoftDeleteResumeResponse{}, nil
}

func (s *ResumeService) ExportResumes(ctx context.Context, req *resumespb.ExportResumesRequest) (*resumespb.ExportResumesResponse, error) {
	filter, err := resumes.ParseFilter(req.GetFilter())
	if err != nil {
		s.logger.Error("invalid export filter", "filter", req.GetFilter(), "error", err)
		return nil, status.Errorf(codes.InvalidArgument, "invalid filter: %v", err)
	}
	b, err := s.exporter.ExportResumesXLSX(ctx, filter)
	if err != nil {
		s.logger.Error("failed to export resumes", "error", err)
		return nil, status.Errorf(codes.Internal, "export resumes: %v", err)
	}
	return &resumespb.ExportResumesResponse{Xlsx: b}, nil
}
