package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/haidangnguyen/resume-tracker/internal/ingest"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

// resume-sync runs a single dispatch pass over a directory: every .pdf in it
// is uploaded to the analysis endpoint and the batch report is printed.
// Useful for backfills and for testing the upload contract without the
// daemon.
func main() {
	_ = godotenv.Load()

	var (
		dir     = flag.String("dir", "", "directory containing resume PDFs (required)")
		url     = flag.String("url", "http://localhost:8000/api/upload_pdf", "analysis service upload endpoint")
		timeout = flag.Duration("timeout", 30*time.Second, "per-upload timeout")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	dispatcher := ingest.NewDispatcher(ingest.DispatchConfig{
		UploadURL:     *url,
		UploadTimeout: *timeout,
	}, logger)

	report, err := dispatcher.Dispatch(context.Background(), *dir)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("uploaded: %d, failed: %d, skipped: %d\n",
		len(report.Succeeded), len(report.Failed), len(report.Skipped))
	for _, f := range report.Failed {
		fmt.Printf("  FAILED %s: %s\n", f.Path, f.Reason)
	}
	if len(report.Failed) > 0 {
		os.Exit(1)
	}
}
