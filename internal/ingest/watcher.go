package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/haidangnguyen/resume-tracker/constants"
)

type WatchConfig struct {
	Dir      string        // directory to watch (non-recursive)
	Debounce time.Duration // coalesce rapid create/write bursts
}

// StartWatcher watches cfg.Dir and emits one trigger per coalesced burst of
// PDF events. A trigger means "the directory changed, resync it", never
// "this file changed": the pipeline re-scans the whole directory so a
// dropped OS event can not lose a file permanently.
//
// The trigger channel is closed when the watcher dies or ctx is cancelled.
func StartWatcher(ctx context.Context, cfg WatchConfig, logger *slog.Logger) (<-chan struct{}, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Error("failed to create fsnotify watcher", "error", err)
		return nil, err
	}
	if err := w.Add(cfg.Dir); err != nil {
		logger.Error("failed to watch directory", "dir", cfg.Dir, "error", err)
		_ = w.Close()
		return nil, err
	}

	trig := make(chan struct{}, 1)

	go func() {
		defer close(trig)
		defer func() {
			if err := w.Close(); err != nil {
				logger.Error("failed to close watcher", "error", err)
			}
		}()

		// The debounce timer is drained here, in the same goroutine that
		// closes trig. Nothing else ever sends on trig, so a late timer
		// fire can not race the close.
		var timer *time.Timer
		var timerC <-chan time.Time
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()

		fire := func() {
			select {
			case trig <- struct{}{}:
			default:
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-timerC:
				timerC = nil
				fire()
			case e, ok := <-w.Events:
				if !ok {
					return
				}
				if !constants.IsPDF(e.Name) {
					continue
				}
				if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
					continue
				}
				logger.Debug("pdf changed", "path", e.Name, "op", e.Op.String())
				if cfg.Debounce > 0 {
					if timer == nil {
						timer = time.NewTimer(cfg.Debounce)
					} else {
						if !timer.Stop() && timerC != nil {
							select {
							case <-timer.C:
							default:
							}
						}
						timer.Reset(cfg.Debounce)
					}
					timerC = timer.C
				} else {
					fire()
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Error("watcher error", "error", err)
			}
		}
	}()

	return trig, nil
}
