// Package writeback persists settings patches asynchronously.
//
// Writer wraps a SettingsRepository so that Set returns as soon as the patch
// is queued. Patches are written one at a time in the order they were queued,
// so a later write for a key always wins over an earlier one.
package writeback

import (
	"context"
	"sync"

	"github.com/bnema/readably/internal/domain/entity"
	"github.com/bnema/readably/internal/domain/repository"
	"github.com/bnema/readably/internal/logging"
)

// Writer is a fire-and-forget settings repository.
type Writer struct {
	repo repository.SettingsRepository
	ctx  context.Context

	mu       sync.Mutex
	idle     *sync.Cond // signalled when pending drops to zero
	queue    []entity.Patch
	draining bool
	pending  int
	failures int
}

var _ repository.SettingsRepository = (*Writer)(nil)

// NewWriter wraps repo. The context supplies the logger used for failed
// writes; its cancellation is ignored so queued patches still land on shutdown.
func NewWriter(ctx context.Context, repo repository.SettingsRepository) *Writer {
	w := &Writer{
		repo: repo,
		ctx:  context.WithoutCancel(logging.WithComponent(ctx, "writeback")),
	}
	w.idle = sync.NewCond(&w.mu)
	return w
}

// Get waits for queued patches, then reads through to the wrapped repository.
func (w *Writer) Get(ctx context.Context, defaults entity.Settings) (entity.Settings, error) {
	w.Flush()
	return w.repo.Get(ctx, defaults)
}

// Set queues the patch and returns immediately. Write errors are logged, never returned.
func (w *Writer) Set(_ context.Context, patch entity.Patch) error {
	if len(patch) == 0 {
		return nil
	}

	w.mu.Lock()
	w.queue = append(w.queue, patch)
	w.pending++
	if !w.draining {
		w.draining = true
		go w.drain()
	}
	w.mu.Unlock()
	return nil
}

// Reset waits for queued patches, then clears the store synchronously.
func (w *Writer) Reset(ctx context.Context) error {
	w.Flush()
	return w.repo.Reset(ctx)
}

// Flush blocks until every queued patch has been written or has failed.
func (w *Writer) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for w.pending > 0 {
		w.idle.Wait()
	}
}

// Close flushes pending writes.
func (w *Writer) Close() error {
	w.Flush()
	return nil
}

// Failures returns how many queued writes have failed so far.
func (w *Writer) Failures() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.failures
}

func (w *Writer) drain() {
	log := logging.FromContext(w.ctx)

	for {
		w.mu.Lock()
		if len(w.queue) == 0 {
			w.draining = false
			w.mu.Unlock()
			return
		}
		patch := w.queue[0]
		w.queue = w.queue[1:]
		w.mu.Unlock()

		err := w.repo.Set(w.ctx, patch)
		if err != nil {
			log.Warn().Err(err).Int("keys", len(patch)).Msg("async settings write failed")
		}

		w.mu.Lock()
		if err != nil {
			w.failures++
		}
		w.pending--
		if w.pending == 0 {
			w.idle.Broadcast()
		}
		w.mu.Unlock()
	}
}
