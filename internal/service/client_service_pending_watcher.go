package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-game-keeper/internal/store"
	"github.com/MKhiriev/go-game-keeper/models"
)

// pendingWatcher keeps at most one subscriber stream. The stream is buffered
// with capacity one and always holds the latest count only.
type pendingWatcher struct {
	records store.RecordStorage
	domains []models.Domain

	mu     sync.Mutex
	stream chan int
	gen    uint64
}

// NewPendingWatcher returns a PendingWatcher counting the pending records of
// domains in records.
func NewPendingWatcher(records store.RecordStorage, domains []models.Domain) PendingWatcher {
	return &pendingWatcher{records: records, domains: domains}
}

func (w *pendingWatcher) Subscribe() (<-chan int, func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stream == nil {
		w.gen++
		w.stream = make(chan int, 1)
		w.stream <- 0
	}

	gen := w.gen
	return w.stream, func() { w.cancel(gen) }
}

// cancel closes the stream of generation gen. Stale or repeated cancels are
// ignored.
func (w *pendingWatcher) cancel(gen uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stream == nil || w.gen != gen {
		return
	}
	close(w.stream)
	w.stream = nil
}

func (w *pendingWatcher) Refresh(ctx context.Context, ownerID string) (int, error) {
	total := 0
	for _, d := range w.domains {
		n, err := w.records.CountPending(ctx, d, ownerID)
		if err != nil {
			return 0, fmt.Errorf("count pending %s: %w", d, err)
		}
		total += n
	}
	w.publish(total)
	return total, nil
}

func (w *pendingWatcher) publish(count int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stream == nil {
		return
	}
	select {
	case <-w.stream:
	default:
	}
	w.stream <- count
}
