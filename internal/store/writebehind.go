package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/GregMSThompson/hsbooks/internal/models"
)

const writeTimeout = 30 * time.Second

type snapshotWriter interface {
	Write(ctx context.Context, snap models.Snapshot) error
}

// WriteBehind persists snapshots on a background goroutine. Only the newest
// pending snapshot is written, older ones are dropped.
type WriteBehind struct {
	writer snapshotWriter
	log    *slog.Logger

	mu     sync.Mutex
	latest *models.Snapshot
	closed bool
	wake   chan struct{}
	done   chan struct{}
}

func NewWriteBehind(writer snapshotWriter, log *slog.Logger) *WriteBehind {
	w := &WriteBehind{
		writer: writer,
		log:    log,
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go w.run()
	return w
}

// Save queues snap and returns immediately.
func (w *WriteBehind) Save(_ context.Context, snap models.Snapshot) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		w.log.Warn("snapshot dropped after close")
		return
	}
	w.latest = &snap
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Close writes any pending snapshot and stops the worker.
func (w *WriteBehind) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	close(w.wake)
	w.mu.Unlock()
	<-w.done
}

func (w *WriteBehind) run() {
	defer close(w.done)
	for range w.wake {
		w.flush()
	}
	w.flush()
}

func (w *WriteBehind) flush() {
	w.mu.Lock()
	snap := w.latest
	w.latest = nil
	w.mu.Unlock()
	if snap == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := w.writer.Write(ctx, *snap); err != nil {
		w.log.Error("failed to persist snapshot", "error", err)
		return
	}
	w.log.Debug("snapshot persisted")
}
