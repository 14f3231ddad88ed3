package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-game-keeper/internal/logger"
	"github.com/MKhiriev/go-game-keeper/models"
)

type clientSyncJob struct {
	runner  SyncRunner
	watcher PendingWatcher
	probe   ReachabilityProbe

	trigger chan struct{}

	mu     sync.Mutex
	jobCtx context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	reportMu   sync.Mutex
	lastReport *models.SyncReport

	logger *logger.Logger
}

// NewClientSyncJob creates a clientSyncJob that calls runner.SyncAll on a
// ticker. The job is idle until Start is called. probe may be nil, in which
// case the backend is always considered reachable.
func NewClientSyncJob(runner SyncRunner, watcher PendingWatcher, probe ReachabilityProbe, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{
		runner:  runner,
		watcher: watcher,
		probe:   probe,
		trigger: make(chan struct{}, 1),
		logger:  logger,
	}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a background goroutine that runs a pass every interval, on RunNow
// and when the probe reports the backend is back. If interval is zero or
// negative it defaults to 5 minutes. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, ownerID string, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.jobCtx = jobCtx
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	var reachable <-chan bool
	if j.probe != nil {
		reachable = j.probe.Changes()
		j.wg.Add(1)
		go func() {
			defer j.wg.Done()
			j.probe.Run(jobCtx)
		}()
	}

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.pass(jobCtx, ownerID)
			case <-j.trigger:
				j.pass(jobCtx, ownerID)
			case up := <-reachable:
				if up {
					j.pass(jobCtx, ownerID)
				}
			}
		}
	}()
}

func (j *clientSyncJob) RunNow() {
	select {
	case j.trigger <- struct{}{}:
	default:
	}
}

func (j *clientSyncJob) Running() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.jobCtx != nil && j.jobCtx.Err() == nil
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.jobCtx = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *clientSyncJob) LastReport() (models.SyncReport, bool) {
	j.reportMu.Lock()
	defer j.reportMu.Unlock()

	if j.lastReport == nil {
		return models.SyncReport{}, false
	}
	return *j.lastReport, true
}

func (j *clientSyncJob) pass(ctx context.Context, ownerID string) {
	if j.probe != nil && !j.probe.Available() {
		j.logger.Debug().Str("func", "*clientSyncJob.pass").Msg("backend unreachable, pass skipped")
		return
	}

	report := j.runner.SyncAll(ctx, ownerID)

	j.reportMu.Lock()
	j.lastReport = &report
	j.reportMu.Unlock()

	if _, err := j.watcher.Refresh(ctx, ownerID); err != nil {
		j.logger.Err(err).Str("func", "*clientSyncJob.pass").Msg("pending refresh failed")
	}
}
