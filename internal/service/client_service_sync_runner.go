package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-game-keeper/internal/logger"
	"github.com/MKhiriev/go-game-keeper/internal/store"
	"github.com/MKhiriev/go-game-keeper/models"
	"golang.org/x/sync/errgroup"
)

type syncRunner struct {
	coordinators []SyncCoordinator
	byDomain     map[models.Domain]SyncCoordinator
	cursors      store.CursorStorage

	now    func() time.Time
	logger *logger.Logger
}

// NewSyncRunner returns a SyncRunner over coordinators. The order of
// coordinators is the order of the domains in every report.
func NewSyncRunner(coordinators []SyncCoordinator, cursors store.CursorStorage, logger *logger.Logger) SyncRunner {
	byDomain := make(map[models.Domain]SyncCoordinator, len(coordinators))
	for _, c := range coordinators {
		byDomain[c.Domain()] = c
	}
	return &syncRunner{
		coordinators: coordinators,
		byDomain:     byDomain,
		cursors:      cursors,
		now:          time.Now,
		logger:       logger,
	}
}

func (r *syncRunner) SyncAll(ctx context.Context, ownerID string) models.SyncReport {
	return r.run(ctx, ownerID, r.coordinators)
}

func (r *syncRunner) SyncDomains(ctx context.Context, ownerID string, domains ...models.Domain) models.SyncReport {
	selected := make([]SyncCoordinator, 0, len(domains))
	for _, d := range domains {
		if c, ok := r.byDomain[d]; ok {
			selected = append(selected, c)
		}
	}
	return r.run(ctx, ownerID, selected)
}

func (r *syncRunner) Status(ctx context.Context, ownerID string) ([]models.DomainStatus, error) {
	statuses := make([]models.DomainStatus, 0, len(r.coordinators))
	for _, c := range r.coordinators {
		pending, err := c.CountPending(ctx, ownerID)
		if err != nil {
			return nil, fmt.Errorf("count pending %s: %w", c.Domain(), err)
		}
		cursor, err := r.cursors.GetCursor(ctx, c.Domain(), ownerID)
		if err != nil {
			return nil, fmt.Errorf("read cursor %s: %w", c.Domain(), err)
		}
		statuses = append(statuses, models.DomainStatus{Domain: c.Domain(), Pending: pending, Cursor: cursor})
	}
	return statuses, nil
}

// run syncs every coordinator concurrently. Each goroutine writes only its
// own slot of the report and never returns an error, so one failing domain
// cannot cancel the others.
func (r *syncRunner) run(ctx context.Context, ownerID string, coordinators []SyncCoordinator) models.SyncReport {
	report := models.SyncReport{
		OwnerID:   ownerID,
		StartedAt: r.now(),
		Domains:   make([]models.DomainReport, len(coordinators)),
	}

	var g errgroup.Group
	for i, c := range coordinators {
		g.Go(func() error {
			report.Domains[i] = r.syncDomain(ctx, ownerID, c)
			return nil
		})
	}
	_ = g.Wait()

	report.FinishedAt = r.now()

	for _, d := range report.Failed() {
		r.logger.Err(d.Err).
			Str("func", "*syncRunner.run").
			Str("domain", d.Domain.String()).
			Msg("domain sync failed")
	}

	return report
}

func (r *syncRunner) syncDomain(ctx context.Context, ownerID string, c SyncCoordinator) models.DomainReport {
	report := models.DomainReport{Domain: c.Domain()}

	initial, err := c.InitialSyncIfNeeded(ctx, ownerID)
	if err != nil {
		report.Err = err
		return report
	}
	report.Initial = &initial

	report.Down, err = c.SyncDownIncremental(ctx, ownerID, nil)
	if err != nil {
		report.Err = err
		return report
	}

	report.Flush, err = c.SyncPending(ctx, ownerID)
	if err != nil {
		report.Err = err
	}

	// pending is reported even after a failed flush
	pending, countErr := c.CountPending(ctx, ownerID)
	if countErr != nil && report.Err == nil {
		report.Err = countErr
	}
	report.Pending = pending

	return report
}
