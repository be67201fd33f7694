package staging

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

const defaultSweepInterval = 5 * time.Minute

type ExpiredDeleter interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

type SweepRecorder interface {
	StagingSwept(n int64)
}

// Sweeper periodically removes staged batches nobody approved.
type Sweeper struct {
	store    ExpiredDeleter
	recorder SweepRecorder
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewSweeper(store ExpiredDeleter, recorder SweepRecorder, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &Sweeper{
		store:    store,
		recorder: recorder,
		interval: interval,
	}
}

func (w *Sweeper) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.done = make(chan struct{})

	go func() {
		defer close(w.done)
		w.Run(ctx)
	}()
	slog.Info("staging sweeper started", "interval", w.interval.String())
}

func (w *Sweeper) Stop(ctx context.Context) error {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel = nil
	w.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run sweeps once immediately and then on every tick until ctx is cancelled.
func (w *Sweeper) Run(ctx context.Context) {
	w.sweep(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *Sweeper) sweep(ctx context.Context) {
	n, err := w.store.DeleteExpired(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		slog.Warn("staging sweep failed", "error", err.Error())
		return
	}
	if w.recorder != nil {
		w.recorder.StagingSwept(n)
	}
	if n > 0 {
		slog.Info("expired staged batches removed", "deleted", n)
	}
}
