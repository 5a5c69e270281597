package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// Shutdown while a debounce timer is pending must end with a clean channel
// close, never a stray send. The jittered cancel walks across the timer
// expiry so some iterations cancel just before the fire and some just after.
func TestWatcherShutdownDuringDebounce(t *testing.T) {
	dir := t.TempDir()

	for i := 0; i < 200; i++ {
		ctx, cancel := context.WithCancel(context.Background())

		trig, err := StartWatcher(ctx, WatchConfig{Dir: dir, Debounce: 200 * time.Microsecond}, testLogger())
		if err != nil {
			cancel()
			t.Fatalf("StartWatcher failed: %v", err)
		}

		name := filepath.Join(dir, fmt.Sprintf("cv%d.pdf", i))
		if err := os.WriteFile(name, []byte("%PDF-1.4"), 0o644); err != nil {
			cancel()
			t.Fatalf("write: %v", err)
		}

		time.Sleep(time.Duration(i%5) * 100 * time.Microsecond)
		cancel()

		// drain until the watcher closes the channel
		for range trig {
		}
	}
}

func TestWatcherReusableAfterCancel(t *testing.T) {
	dir := t.TempDir()

	ctx1, cancel1 := context.WithCancel(context.Background())
	trig1, err := StartWatcher(ctx1, WatchConfig{Dir: dir, Debounce: 10 * time.Millisecond}, testLogger())
	if err != nil {
		t.Fatalf("StartWatcher failed: %v", err)
	}
	cancel1()
	for range trig1 {
	}

	// the directory can be watched again, as the pipeline does on watch loss
	ctx2, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	trig2, err := StartWatcher(ctx2, WatchConfig{Dir: dir, Debounce: 10 * time.Millisecond}, testLogger())
	if err != nil {
		t.Fatalf("second StartWatcher failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "again.pdf"), []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	select {
	case <-trig2:
	case <-time.After(2 * time.Second):
		t.Fatal("re-established watcher never triggered")
	}
}
