package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/MKhiriev/go-game-keeper/internal/adapter"
	"github.com/MKhiriev/go-game-keeper/internal/logger"
	"github.com/MKhiriev/go-game-keeper/internal/store"
	"github.com/MKhiriev/go-game-keeper/models"
)

// syncCoordinator implements SyncCoordinator for a single domain. It is the
// only writer of CLEAN records and of the domain's cursor.
type syncCoordinator struct {
	domain   models.Domain
	local    store.LocalStorage
	remote   adapter.RemoteStore
	lookback time.Duration

	logger *logger.Logger
}

// CoordinatorOption configures a coordinator built by [NewSyncCoordinator].
type CoordinatorOption func(*syncCoordinator)

// WithPullLookback makes incremental pulls start d before the stored cursor.
// The remote store stamps a change before its transaction commits, so a
// change can become visible with a timestamp the cursor has already passed.
// Entries replayed by the overlap are skipped by last-writer-wins.
func WithPullLookback(d time.Duration) CoordinatorOption {
	return func(c *syncCoordinator) {
		if d > 0 {
			c.lookback = d
		}
	}
}

// NewSyncCoordinator returns the coordinator of domain. local and remote are
// shared between coordinators; each coordinator only touches its own domain.
func NewSyncCoordinator(domain models.Domain, local store.LocalStorage, remote adapter.RemoteStore, logger *logger.Logger, opts ...CoordinatorOption) SyncCoordinator {
	c := &syncCoordinator{
		domain: domain,
		local:  local,
		remote: remote,
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *syncCoordinator) Domain() models.Domain {
	return c.domain
}

func (c *syncCoordinator) InitialSyncIfNeeded(ctx context.Context, ownerID string) (models.SyncResult, error) {
	result := models.SyncResult{Domain: c.domain}

	cursor, err := c.local.GetCursor(ctx, c.domain, ownerID)
	if err != nil {
		return result, fmt.Errorf("read cursor: %w", err)
	}
	if cursor != nil {
		result.Cursor = cursor
		return result, nil
	}

	changes, err := c.remote.PullChangedSince(ctx, c.domain, ownerID, nil)
	if err != nil {
		return result, fmt.Errorf("initial pull: %w", err)
	}
	sortChanges(changes)

	var newest *time.Time
	for _, change := range changes {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := c.applyRemote(ctx, ownerID, change); err != nil {
			return result, err
		}
		result.Applied++
		newest = laterOf(newest, change.UpdatedAtRemote)
	}

	if newest != nil {
		if err := c.local.SetCursor(ctx, c.domain, ownerID, *newest); err != nil {
			return result, fmt.Errorf("write cursor: %w", err)
		}
		result.Cursor = newest
	}

	c.logger.Info().
		Str("func", "*syncCoordinator.InitialSyncIfNeeded").
		Str("domain", c.domain.String()).
		Int("applied", result.Applied).
		Msg("initial sync done")

	return result, nil
}

func (c *syncCoordinator) SyncDownIncremental(ctx context.Context, ownerID string, sinceOverride *time.Time) (models.SyncResult, error) {
	result := models.SyncResult{Domain: c.domain}

	since := sinceOverride
	if since == nil {
		cursor, err := c.local.GetCursor(ctx, c.domain, ownerID)
		if err != nil {
			return result, fmt.Errorf("read cursor: %w", err)
		}
		if cursor != nil && c.lookback > 0 {
			overlap := cursor.Add(-c.lookback)
			cursor = &overlap
		}
		since = cursor
	}

	changes, err := c.remote.PullChangedSince(ctx, c.domain, ownerID, since)
	if err != nil {
		return result, fmt.Errorf("incremental pull: %w", err)
	}
	sortChanges(changes)

	var newest *time.Time
	for _, change := range changes {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		current, err := c.local.Get(ctx, c.domain, ownerID, change.ID)
		if err != nil {
			return result, fmt.Errorf("read local %s: %w", change.ID, err)
		}

		newest = laterOf(newest, change.UpdatedAtRemote)

		if !remoteWins(current, change) {
			result.Skipped++
			continue
		}
		if err := c.applyRemote(ctx, ownerID, change); err != nil {
			return result, err
		}
		result.Applied++
	}

	// the cursor moves only once every entry of the batch is applied
	if newest != nil {
		if err := c.local.SetCursor(ctx, c.domain, ownerID, *newest); err != nil {
			return result, fmt.Errorf("write cursor: %w", err)
		}
	}

	result.Cursor, err = c.local.GetCursor(ctx, c.domain, ownerID)
	if err != nil {
		return result, fmt.Errorf("read cursor: %w", err)
	}

	c.logger.Debug().
		Str("func", "*syncCoordinator.SyncDownIncremental").
		Str("domain", c.domain.String()).
		Int("applied", result.Applied).
		Int("skipped", result.Skipped).
		Msg("incremental pull done")

	return result, nil
}

func (c *syncCoordinator) SyncPending(ctx context.Context, ownerID string) (models.FlushResult, error) {
	result := models.FlushResult{Domain: c.domain}

	pending, err := c.local.ListPending(ctx, c.domain, ownerID)
	if err != nil {
		return result, fmt.Errorf("list pending: %w", err)
	}

	for _, rec := range pending {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		err := c.flushOne(ctx, ownerID, rec)
		if err == nil {
			result.Flushed++
			continue
		}

		var rejected *adapter.RejectedError
		switch {
		case errors.As(err, &rejected):
			result.Warnings = append(result.Warnings, models.Warning{ID: rec.ID, Reason: rejected.Reason})
			c.logger.Warn().
				Str("func", "*syncCoordinator.SyncPending").
				Str("domain", c.domain.String()).
				Str("id", rec.ID).
				Str("reason", rejected.Reason).
				Msg("record rejected by remote store")
		case errors.Is(err, adapter.ErrRejected):
			result.Warnings = append(result.Warnings, models.Warning{ID: rec.ID, Reason: err.Error()})
		default:
			return result, fmt.Errorf("flush %s: %w", rec.ID, err)
		}
	}

	return result, nil
}

func (c *syncCoordinator) CountPending(ctx context.Context, ownerID string) (int, error) {
	return c.local.CountPending(ctx, c.domain, ownerID)
}

func (c *syncCoordinator) flushOne(ctx context.Context, ownerID string, rec models.Record) error {
	if rec.IsDeleted() {
		// never reached the remote store, nothing to delete there
		if rec.UpdatedAtRemote == nil {
			return c.local.Purge(ctx, c.domain, ownerID, rec.ID)
		}
		if _, err := c.remote.PushDelete(ctx, c.domain, ownerID, rec.ID); err != nil {
			return err
		}
		return c.local.Purge(ctx, c.domain, ownerID, rec.ID)
	}

	ack, err := c.remote.Push(ctx, c.domain, ownerID, rec)
	if err != nil {
		return err
	}

	current, err := c.local.Get(ctx, c.domain, ownerID, rec.ID)
	if err != nil {
		return err
	}
	if current == nil {
		return nil
	}

	// edited or deleted while the push was in flight: keep it pending but
	// remember that the remote store now knows the id
	if current.SyncStatus != rec.SyncStatus || !current.UpdatedAtLocal.Equal(rec.UpdatedAtLocal) {
		at := ack.UpdatedAtRemote
		current.UpdatedAtRemote = &at
		current.Version = ack.Version
		return c.local.Upsert(ctx, c.domain, *current)
	}

	return c.local.MarkClean(ctx, c.domain, ownerID, rec.ID, ack.UpdatedAtRemote, ack.Version)
}

// applyRemote writes a remote change as CLEAN or drops a remote tombstone.
func (c *syncCoordinator) applyRemote(ctx context.Context, ownerID string, change models.RemoteChange) error {
	if change.IsDeleted {
		if err := c.local.Purge(ctx, c.domain, ownerID, change.ID); err != nil {
			return fmt.Errorf("purge %s: %w", change.ID, err)
		}
		return nil
	}

	at := change.UpdatedAtRemote
	rec := models.Record{
		ID:              change.ID,
		OwnerID:         ownerID,
		Domain:          c.domain,
		Payload:         change.Payload,
		SyncStatus:      models.StatusClean,
		UpdatedAtLocal:  at,
		UpdatedAtRemote: &at,
		Version:         change.Version,
	}
	if err := c.local.Upsert(ctx, c.domain, rec); err != nil {
		return fmt.Errorf("upsert %s: %w", change.ID, err)
	}
	return nil
}

// remoteWins decides last-writer-wins for one incoming change. A pending
// local write survives unless the remote one is strictly newer; ties keep
// the local write. Changes not newer than what the record already reflects
// are skipped.
func remoteWins(current *models.Record, change models.RemoteChange) bool {
	if current == nil {
		return true
	}
	if current.SyncStatus.IsPending() {
		return change.UpdatedAtRemote.After(current.UpdatedAtLocal)
	}
	if current.UpdatedAtRemote != nil && !change.UpdatedAtRemote.After(*current.UpdatedAtRemote) {
		return false
	}
	return true
}

func sortChanges(changes []models.RemoteChange) {
	sort.SliceStable(changes, func(i, j int) bool {
		return changes[i].UpdatedAtRemote.Before(changes[j].UpdatedAtRemote)
	})
}

func laterOf(cur *time.Time, t time.Time) *time.Time {
	if cur == nil || t.After(*cur) {
		return &t
	}
	return cur
}
