package ingest

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/haidangnguyen/resume-tracker/constants"
)

// FileFailure records why one file could not be uploaded.
type FileFailure struct {
	Path   string
	Reason string
}

// BatchReport summarizes one dispatch pass. A failed file never aborts the
// pass; it lands in Failed and the loop moves on.
type BatchReport struct {
	Succeeded []string
	Failed    []FileFailure
	Skipped   []string // quarantined or still inside their backoff window
}

type DispatchConfig struct {
	UploadURL     string
	UploadTimeout time.Duration
	// MaxAttempts quarantines a file after this many consecutive failed
	// uploads. The quarantine lifts when the file's content changes.
	MaxAttempts int
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
}

// attemptState tracks upload failures per path. Keyed by content hash too:
// a rewritten file is a new document and starts clean.
type attemptState struct {
	hashHex     string
	count       int
	nextTry     time.Time
	quarantined bool
}

// Dispatcher uploads PDF files to the analysis endpoint with per-file
// failure isolation. There is no retry within a pass: the next resync pass
// is the retry mechanism, bounded by the backoff/quarantine bookkeeping.
type Dispatcher struct {
	cfg    DispatchConfig
	client *http.Client
	logger *slog.Logger

	mu       sync.Mutex
	attempts map[string]*attemptState
}

func NewDispatcher(cfg DispatchConfig, logger *slog.Logger) *Dispatcher {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	if cfg.UploadTimeout <= 0 {
		cfg.UploadTimeout = 30 * time.Second
	}
	return &Dispatcher{
		cfg:      cfg,
		client:   &http.Client{Timeout: cfg.UploadTimeout},
		logger:   logger,
		attempts: make(map[string]*attemptState),
	}
}

// Dispatch scans dir for .pdf files and uploads each one. The returned
// error covers the scan only; upload outcomes are in the report.
//
// Each file is read whole rather than streamed: the attempt bookkeeping
// hashes the full content anyway, and resume PDFs are small.
func (d *Dispatcher) Dispatch(ctx context.Context, dir string) (BatchReport, error) {
	var report BatchReport

	entries, err := os.ReadDir(dir)
	if err != nil {
		d.logger.Error("failed to scan resume directory", "dir", dir, "error", err)
		return report, fmt.Errorf("scan %s: %w", dir, err)
	}

	for _, e := range entries {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		if e.IsDir() || !constants.IsPDF(e.Name()) {
			continue
		}
		path := filepath.Join(dir, e.Name())

		data, err := os.ReadFile(path)
		if err != nil {
			// deleted between scan and read, or unreadable; next pass
			// will pick it up if it still exists
			d.logger.Error("failed to read pdf", "path", path, "error", err)
			report.Failed = append(report.Failed, FileFailure{Path: path, Reason: err.Error()})
			continue
		}

		sum := sha256.Sum256(data)
		hashHex := hex.EncodeToString(sum[:])
		if !d.eligible(path, hashHex) {
			report.Skipped = append(report.Skipped, path)
			continue
		}

		if err := d.upload(ctx, path, data); err != nil {
			d.logger.Error("failed to upload pdf", "path", path, "error", err)
			report.Failed = append(report.Failed, FileFailure{Path: path, Reason: err.Error()})
			d.recordFailure(path, hashHex)
			continue
		}
		report.Succeeded = append(report.Succeeded, path)
		d.clear(path)
	}

	return report, nil
}

func (d *Dispatcher) upload(ctx context.Context, path string, data []byte) error {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return fmt.Errorf("multipart: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("multipart write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("multipart close: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.cfg.UploadURL, &body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("post: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			d.logger.Error("failed to close response body", "error", err)
		}
	}()

	// the response payload is opaque; log it, never parse it
	payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("upload rejected: %s: %s", resp.Status, payload)
	}

	d.logger.Info("uploaded pdf", "path", path, "status", resp.StatusCode, "response", string(payload))
	return nil
}

// eligible reports whether path should be attempted now. A changed content
// hash resets all bookkeeping for the path.
func (d *Dispatcher) eligible(path, hashHex string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	st, ok := d.attempts[path]
	if !ok {
		return true
	}
	if st.hashHex != hashHex {
		delete(d.attempts, path)
		return true
	}
	if st.quarantined {
		d.logger.Warn("skipping quarantined pdf", "path", path, "attempts", st.count)
		return false
	}
	return !time.Now().Before(st.nextTry)
}

func (d *Dispatcher) recordFailure(path, hashHex string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	st, ok := d.attempts[path]
	if !ok || st.hashHex != hashHex {
		st = &attemptState{hashHex: hashHex}
		d.attempts[path] = st
	}
	st.count++
	if st.count >= d.cfg.MaxAttempts {
		st.quarantined = true
		d.logger.Error("pdf quarantined after repeated upload failures", "path", path, "attempts", st.count)
		return
	}
	st.nextTry = time.Now().Add(d.backoff(st.count))
}

func (d *Dispatcher) clear(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.attempts, path)
}

func (d *Dispatcher) backoff(failures int) time.Duration {
	wait := d.cfg.BaseBackoff
	for i := 1; i < failures; i++ {
		wait *= 2
		if d.cfg.MaxBackoff > 0 && wait >= d.cfg.MaxBackoff {
			return d.cfg.MaxBackoff
		}
	}
	if d.cfg.MaxBackoff > 0 && wait > d.cfg.MaxBackoff {
		wait = d.cfg.MaxBackoff
	}
	return wait
}
