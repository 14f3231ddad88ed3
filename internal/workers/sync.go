package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-game-keeper/internal/service"
)

// SyncWorker keeps a [service.ClientSyncJob] running for one owner. The
// first pass is requested immediately instead of after a full interval.
type SyncWorker struct {
	job      service.ClientSyncJob
	ownerID  string
	interval time.Duration
}

func NewSyncWorker(job service.ClientSyncJob, ownerID string, interval time.Duration) *SyncWorker {
	return &SyncWorker{job: job, ownerID: ownerID, interval: interval}
}

func (w *SyncWorker) Run(ctx context.Context) error {
	w.job.Start(ctx, w.ownerID, w.interval)
	w.job.RunNow()

	<-ctx.Done()
	w.job.Stop()
	return nil
}

// PendingWorker forwards every pending-count change to onChange.
type PendingWorker struct {
	watcher  service.PendingWatcher
	onChange func(pending int)
}

func NewPendingWorker(watcher service.PendingWatcher, onChange func(pending int)) *PendingWorker {
	return &PendingWorker{watcher: watcher, onChange: onChange}
}

func (w *PendingWorker) Run(ctx context.Context) error {
	counts, cancel := w.watcher.Subscribe()
	defer cancel()

	last := -1
	for {
		select {
		case <-ctx.Done():
			return nil
		case n, ok := <-counts:
			if !ok {
				return nil
			}
			if n != last {
				last = n
				w.onChange(n)
			}
		}
	}
}
