package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	resumespb "github.com/haidangnguyen/resume-tracker/gen/proto/resumes/v1"
	"github.com/haidangnguyen/resume-tracker/internal/common"
	"github.com/haidangnguyen/resume-tracker/internal/export"
	"github.com/haidangnguyen/resume-tracker/internal/ingest"
	"github.com/haidangnguyen/resume-tracker/internal/repository"
	"github.com/haidangnguyen/resume-tracker/internal/resumes"
	"github.com/haidangnguyen/resume-tracker/internal/server"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	logger.Info("database health OK")

	resumeRepo := repository.NewResumeRepository(entc, logger)
	resumeSvc := resumes.NewService(resumeRepo, logger)
	exportSvc := export.NewService(resumeRepo, logger)

	// background sync pipeline: watch the resume directory and push PDFs
	// to the analysis service
	dispatcher := ingest.NewDispatcher(ingest.DispatchConfig{
		UploadURL:     cfg.Sync.UploadURL,
		UploadTimeout: cfg.Sync.UploadTimeout,
		MaxAttempts:   cfg.Sync.MaxAttempts,
		BaseBackoff:   cfg.Sync.BaseBackoff,
		MaxBackoff:    cfg.Sync.MaxBackoff,
	}, logger)
	pipeline := ingest.NewPipeline(ingest.PipelineConfig{
		Dir:      cfg.Sync.Dir,
		Debounce: cfg.Sync.Debounce,
	}, dispatcher, logger)
	pipeline.Start(ctx)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewResumeService(resumeSvc, exportSvc, logger)
	resumespb.RegisterResumeServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	pipeline.Stop()
	logger.Info("stopped")
}
