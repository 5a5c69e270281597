package ingest_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/haidangnguyen/resume-tracker/internal/ingest"
)

// uploadServer fakes the analysis endpoint. Filenames in fail get a 500.
type uploadServer struct {
	mu       sync.Mutex
	received []string
	fail     map[string]bool
}

func (u *uploadServer) handler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	_, hdr, err := r.FormFile("file")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	u.mu.Lock()
	u.received = append(u.received, hdr.Filename)
	failed := u.fail[hdr.Filename]
	u.mu.Unlock()

	if failed {
		http.Error(w, "analysis unavailable", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"filename":"` + hdr.Filename + `"}`))
}

func (u *uploadServer) names() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.received...)
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func newDispatcher(t *testing.T, url string, cfg ingest.DispatchConfig) *ingest.Dispatcher {
	t.Helper()
	cfg.UploadURL = url
	cfg.UploadTimeout = 5 * time.Second
	return ingest.NewDispatcher(cfg, discard())
}

func TestDispatchUploadsOnlyPDFs(t *testing.T) {
	srv := &uploadServer{}
	ts := httptest.NewServer(http.HandlerFunc(srv.handler))
	defer ts.Close()

	dir := t.TempDir()
	writeFile(t, dir, "a.pdf", "%PDF-1.4 a")
	writeFile(t, dir, "b.txt", "not a resume")
	writeFile(t, dir, "c.pdf", "%PDF-1.4 c")

	d := newDispatcher(t, ts.URL, ingest.DispatchConfig{})
	report, err := d.Dispatch(context.Background(), dir)
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if len(report.Succeeded) != 2 || len(report.Failed) != 0 || len(report.Skipped) != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}

	got := map[string]bool{}
	for _, n := range srv.names() {
		got[n] = true
	}
	if !got["a.pdf"] || !got["c.pdf"] || got["b.txt"] {
		t.Fatalf("uploaded files = %v, want exactly a.pdf and c.pdf", srv.names())
	}
}

func TestDispatchIsolatesPerFileFailure(t *testing.T) {
	srv := &uploadServer{fail: map[string]bool{"a.pdf": true}}
	ts := httptest.NewServer(http.HandlerFunc(srv.handler))
	defer ts.Close()

	dir := t.TempDir()
	aPath := writeFile(t, dir, "a.pdf", "%PDF-1.4 a")
	cPath := writeFile(t, dir, "c.pdf", "%PDF-1.4 c")

	d := newDispatcher(t, ts.URL, ingest.DispatchConfig{})
	report, err := d.Dispatch(context.Background(), dir)
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if len(report.Failed) != 1 || report.Failed[0].Path != aPath {
		t.Fatalf("failed = %+v, want just %s", report.Failed, aPath)
	}
	if report.Failed[0].Reason == "" {
		t.Fatal("failure reason missing")
	}
	if len(report.Succeeded) != 1 || report.Succeeded[0] != cPath {
		t.Fatalf("succeeded = %v, want just %s", report.Succeeded, cPath)
	}
}

func TestDispatchUnreadableFileIsPerFileFailure(t *testing.T) {
	srv := &uploadServer{}
	ts := httptest.NewServer(http.HandlerFunc(srv.handler))
	defer ts.Close()

	dir := t.TempDir()
	writeFile(t, dir, "ok.pdf", "%PDF-1.4")
	// dangling symlink: scanned, but gone by read time
	if err := os.Symlink(filepath.Join(dir, "vanished"), filepath.Join(dir, "gone.pdf")); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	d := newDispatcher(t, ts.URL, ingest.DispatchConfig{})
	report, err := d.Dispatch(context.Background(), dir)
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if len(report.Succeeded) != 1 || len(report.Failed) != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestDispatchIdempotentRerun(t *testing.T) {
	srv := &uploadServer{}
	ts := httptest.NewServer(http.HandlerFunc(srv.handler))
	defer ts.Close()

	dir := t.TempDir()
	writeFile(t, dir, "a.pdf", "%PDF-1.4 a")
	writeFile(t, dir, "c.pdf", "%PDF-1.4 c")

	d := newDispatcher(t, ts.URL, ingest.DispatchConfig{})
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		report, err := d.Dispatch(ctx, dir)
		if err != nil {
			t.Fatalf("pass %d failed: %v", i+1, err)
		}
		if len(report.Succeeded) != 2 {
			t.Fatalf("pass %d: succeeded = %d, want 2", i+1, len(report.Succeeded))
		}
	}
	// both passes re-upload everything: the rescan is the retry mechanism
	if got := len(srv.names()); got != 4 {
		t.Fatalf("uploads = %d, want 4", got)
	}
}

func TestDispatchBackoffSkipsRecentFailure(t *testing.T) {
	srv := &uploadServer{fail: map[string]bool{"a.pdf": true}}
	ts := httptest.NewServer(http.HandlerFunc(srv.handler))
	defer ts.Close()

	dir := t.TempDir()
	aPath := writeFile(t, dir, "a.pdf", "%PDF-1.4 a")

	d := newDispatcher(t, ts.URL, ingest.DispatchConfig{MaxAttempts: 5, BaseBackoff: time.Hour})
	ctx := context.Background()

	if report, _ := d.Dispatch(ctx, dir); len(report.Failed) != 1 {
		t.Fatal("expected first pass to fail the upload")
	}
	report, err := d.Dispatch(ctx, dir)
	if err != nil {
		t.Fatalf("second pass failed: %v", err)
	}
	if len(report.Skipped) != 1 || report.Skipped[0] != aPath {
		t.Fatalf("second pass = %+v, want a.pdf skipped inside backoff window", report)
	}
	if got := len(srv.names()); got != 1 {
		t.Fatalf("uploads = %d, want 1", got)
	}
}

func TestDispatchQuarantineAndRelease(t *testing.T) {
	srv := &uploadServer{fail: map[string]bool{"a.pdf": true}}
	ts := httptest.NewServer(http.HandlerFunc(srv.handler))
	defer ts.Close()

	dir := t.TempDir()
	aPath := writeFile(t, dir, "a.pdf", "%PDF-1.4 v1")

	// zero backoff: every pass is an attempt until quarantine engages
	d := newDispatcher(t, ts.URL, ingest.DispatchConfig{MaxAttempts: 2, BaseBackoff: 0})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if report, _ := d.Dispatch(ctx, dir); len(report.Failed) != 1 {
			t.Fatalf("pass %d: expected failure", i+1)
		}
	}
	report, err := d.Dispatch(ctx, dir)
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if len(report.Skipped) != 1 || report.Skipped[0] != aPath {
		t.Fatalf("quarantined file not skipped: %+v", report)
	}
	if got := len(srv.names()); got != 2 {
		t.Fatalf("uploads = %d, want attempts capped at 2", got)
	}

	// rewriting the file is a new document: quarantine lifts
	srv.mu.Lock()
	srv.fail["a.pdf"] = false
	srv.mu.Unlock()
	writeFile(t, dir, "a.pdf", "%PDF-1.4 v2")

	report, err = d.Dispatch(ctx, dir)
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if len(report.Succeeded) != 1 {
		t.Fatalf("rewritten file not retried: %+v", report)
	}
}

func TestDispatchScanErrorIsFatalToPass(t *testing.T) {
	d := newDispatcher(t, "http://127.0.0.1:0", ingest.DispatchConfig{})
	if _, err := d.Dispatch(context.Background(), filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected scan error for missing directory")
	}
}
