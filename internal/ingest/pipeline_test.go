package ingest

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// blockingRunner counts passes and holds each one until released.
type blockingRunner struct {
	mu      sync.Mutex
	passes  int
	release chan struct{}
}

func (b *blockingRunner) Dispatch(ctx context.Context, _ string) (BatchReport, error) {
	b.mu.Lock()
	b.passes++
	b.mu.Unlock()
	if b.release != nil {
		select {
		case <-b.release:
		case <-ctx.Done():
		}
	}
	return BatchReport{}, nil
}

func (b *blockingRunner) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.passes
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// levelRecorder keeps the level of every emitted record.
type levelRecorder struct {
	mu     sync.Mutex
	levels []slog.Level
}

func (r *levelRecorder) Enabled(context.Context, slog.Level) bool { return true }

func (r *levelRecorder) Handle(_ context.Context, rec slog.Record) error {
	r.mu.Lock()
	r.levels = append(r.levels, rec.Level)
	r.mu.Unlock()
	return nil
}

func (r *levelRecorder) WithAttrs([]slog.Attr) slog.Handler { return r }
func (r *levelRecorder) WithGroup(string) slog.Handler      { return r }

func (r *levelRecorder) errorCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, l := range r.levels {
		if l >= slog.LevelError {
			n++
		}
	}
	return n
}

// ctxWaitRunner holds the pass open until the context is cancelled.
type ctxWaitRunner struct {
	started chan struct{}
}

func (c *ctxWaitRunner) Dispatch(ctx context.Context, _ string) (BatchReport, error) {
	select {
	case c.started <- struct{}{}:
	default:
	}
	<-ctx.Done()
	return BatchReport{}, ctx.Err()
}

func TestTriggerSerializesPasses(t *testing.T) {
	runner := &blockingRunner{release: make(chan struct{})}
	p := NewPipeline(PipelineConfig{Dir: t.TempDir()}, runner, testLogger())
	ctx := context.Background()

	p.trigger(ctx)
	// wait for the pass to be in flight
	deadline := time.After(2 * time.Second)
	for runner.count() == 0 {
		select {
		case <-deadline:
			t.Fatal("first pass never started")
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}

	// a burst of triggers mid-pass collapses into one queued follow-up
	p.trigger(ctx)
	p.trigger(ctx)
	p.trigger(ctx)

	close(runner.release)
	p.passWG.Wait()

	if got := runner.count(); got != 2 {
		t.Fatalf("passes = %d, want 2 (one active + one queued)", got)
	}
}

func TestTriggerAfterDrainRunsAgain(t *testing.T) {
	runner := &blockingRunner{}
	p := NewPipeline(PipelineConfig{Dir: t.TempDir()}, runner, testLogger())
	ctx := context.Background()

	p.trigger(ctx)
	p.passWG.Wait()
	p.trigger(ctx)
	p.passWG.Wait()

	if got := runner.count(); got != 2 {
		t.Fatalf("passes = %d, want 2", got)
	}
}

func TestPipelineCreatesDirAndRunsStartupPass(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "resume")
	runner := &blockingRunner{}
	p := NewPipeline(PipelineConfig{Dir: dir, Debounce: 20 * time.Millisecond}, runner, testLogger())

	p.Start(context.Background())
	defer p.Stop()

	deadline := time.After(3 * time.Second)
	for runner.count() == 0 {
		select {
		case <-deadline:
			t.Fatal("startup pass never ran")
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("watch directory not created: %v", err)
	}
}

func TestPipelineTriggersOnPDFWrite(t *testing.T) {
	dir := t.TempDir()
	runner := &blockingRunner{}
	p := NewPipeline(PipelineConfig{Dir: dir, Debounce: 20 * time.Millisecond}, runner, testLogger())

	p.Start(context.Background())
	defer p.Stop()

	// let the startup pass settle
	waitFor(t, func() bool { return runner.count() >= 1 })
	base := runner.count()

	if err := os.WriteFile(filepath.Join(dir, "new.pdf"), []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	waitFor(t, func() bool { return runner.count() > base })
}

func TestPipelineIgnoresNonPDFWrites(t *testing.T) {
	dir := t.TempDir()
	runner := &blockingRunner{}
	p := NewPipeline(PipelineConfig{Dir: dir, Debounce: 20 * time.Millisecond}, runner, testLogger())

	p.Start(context.Background())
	defer p.Stop()

	waitFor(t, func() bool { return runner.count() >= 1 })
	base := runner.count()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	time.Sleep(300 * time.Millisecond)
	if got := runner.count(); got != base {
		t.Fatalf("passes = %d, want %d (txt writes must not trigger)", got, base)
	}
}

func TestStopDuringPassLogsNoError(t *testing.T) {
	runner := &ctxWaitRunner{started: make(chan struct{}, 1)}
	rec := &levelRecorder{}
	p := NewPipeline(PipelineConfig{Dir: t.TempDir()}, runner, slog.New(rec))
	ctx, cancel := context.WithCancel(context.Background())

	p.trigger(ctx)
	select {
	case <-runner.started:
	case <-time.After(2 * time.Second):
		t.Fatal("pass never started")
	}

	cancel()
	p.passWG.Wait()

	if n := rec.errorCount(); n != 0 {
		t.Fatalf("clean shutdown emitted %d error-level records", n)
	}
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	trig, err := StartWatcher(ctx, WatchConfig{Dir: dir, Debounce: 100 * time.Millisecond}, testLogger())
	if err != nil {
		t.Fatalf("StartWatcher failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		name := filepath.Join(dir, "cv"+string(rune('a'+i))+".pdf")
		if err := os.WriteFile(name, []byte("%PDF-1.4"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	select {
	case <-trig:
	case <-time.After(2 * time.Second):
		t.Fatal("no trigger after pdf burst")
	}
	// the burst coalesced into one trigger
	select {
	case <-trig:
		t.Fatal("burst produced more than one trigger")
	case <-time.After(300 * time.Millisecond):
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for !cond() {
		select {
		case <-deadline:
			t.Fatal("condition never met")
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}
