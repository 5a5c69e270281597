// Package ingest owns the watched resume directory: it observes filesystem
// events and pushes the directory's PDF files to the external document
// analysis service.
package ingest

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"time"
)

// PassRunner runs one full resync pass over the watched directory.
type PassRunner interface {
	Dispatch(ctx context.Context, dir string) (BatchReport, error)
}

// Pipeline ties the watcher to the dispatcher. It serializes resync passes:
// at most one pass is active, and at most one follow-up is queued behind it.
// The pipeline is an explicitly owned background component with a
// start/stop lifecycle; constructing it has no side effects.
type Pipeline struct {
	dir       string
	debounce  time.Duration
	retryWait time.Duration
	runner    PassRunner
	logger    *slog.Logger

	mu      sync.Mutex
	running bool
	pending bool

	cancel context.CancelFunc
	wg     sync.WaitGroup
	passWG sync.WaitGroup
}

type PipelineConfig struct {
	Dir       string
	Debounce  time.Duration
	RetryWait time.Duration // wait before retrying a failed watch setup
}

func NewPipeline(cfg PipelineConfig, runner PassRunner, logger *slog.Logger) *Pipeline {
	if cfg.RetryWait <= 0 {
		cfg.RetryWait = 5 * time.Second
	}
	return &Pipeline{
		dir:       cfg.Dir,
		debounce:  cfg.Debounce,
		retryWait: cfg.RetryWait,
		runner:    runner,
		logger:    logger,
	}
}

// Start launches the watch loop. Failures to create or watch the directory
// are logged and retried on a backoff; they never crash the host process.
func (p *Pipeline) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)
	p.wg.Add(1)
	go p.run(ctx)
}

// Stop cancels the watch loop and waits for the in-flight pass to drain.
func (p *Pipeline) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
	p.passWG.Wait()
}

func (p *Pipeline) run(ctx context.Context) {
	defer p.wg.Done()

	for ctx.Err() == nil {
		if err := os.MkdirAll(p.dir, 0o755); err != nil {
			p.logger.Error("failed to create watch directory", "dir", p.dir, "error", err)
			sleepCtx(ctx, p.retryWait)
			continue
		}

		trig, err := StartWatcher(ctx, WatchConfig{Dir: p.dir, Debounce: p.debounce}, p.logger)
		if err != nil {
			p.logger.Error("failed to establish watch", "dir", p.dir, "error", err)
			sleepCtx(ctx, p.retryWait)
			continue
		}
		p.logger.Info("watching resume directory", "dir", p.dir)

		// files that landed before the watch began
		p.trigger(ctx)

	events:
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-trig:
				if !ok {
					p.logger.Warn("watch lost, re-establishing", "dir", p.dir)
					break events
				}
				p.trigger(ctx)
			}
		}
		sleepCtx(ctx, p.retryWait)
	}
}

// trigger requests a resync pass. If one is already running the request is
// remembered and exactly one follow-up pass runs after it.
func (p *Pipeline) trigger(ctx context.Context) {
	p.mu.Lock()
	if p.running {
		p.pending = true
		p.mu.Unlock()
		return
	}
	p.running = true
	p.mu.Unlock()

	p.passWG.Add(1)
	go func() {
		defer p.passWG.Done()
		for {
			report, err := p.runner.Dispatch(ctx, p.dir)
			if errors.Is(err, context.Canceled) {
				p.logger.Debug("resync pass cancelled", "dir", p.dir)
			} else if err != nil {
				p.logger.Error("resync pass failed", "dir", p.dir, "error", err)
			} else {
				p.logger.Info("resync pass complete",
					"dir", p.dir,
					"succeeded", len(report.Succeeded),
					"failed", len(report.Failed),
					"skipped", len(report.Skipped),
				)
			}

			p.mu.Lock()
			if p.pending && ctx.Err() == nil {
				p.pending = false
				p.mu.Unlock()
				continue
			}
			p.running = false
			p.mu.Unlock()
			return
		}
	}()
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
