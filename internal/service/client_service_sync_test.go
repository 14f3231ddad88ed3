// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-game-keeper/internal/adapter"
	"github.com/MKhiriev/go-game-keeper/internal/logger"
	"github.com/MKhiriev/go-game-keeper/internal/mock"
	"github.com/MKhiriev/go-game-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testOwner = "owner-1"

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// newTestCoordinator: хелпер для создания syncCoordinator с моками
func newTestCoordinator(t *testing.T, domain models.Domain) (SyncCoordinator, *mock.MockLocalStorage, *mock.MockRemoteStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	local := mock.NewMockLocalStorage(ctrl)
	remote := mock.NewMockRemoteStore(ctrl)
	return NewSyncCoordinator(domain, local, remote, logger.Nop()), local, remote
}

func gamePayload(title string) json.RawMessage {
	raw, _ := json.Marshal(models.Game{Title: title, Status: models.GameBacklog})
	return raw
}

func pendingRecord(id string, at time.Time) models.Record {
	return models.Record{
		ID:             id,
		OwnerID:        testOwner,
		Domain:         models.DomainGames,
		Payload:        gamePayload(id),
		SyncStatus:     models.StatusPending,
		UpdatedAtLocal: at,
	}
}

func ptr[T any](v T) *T { return &v }

// ── InitialSyncIfNeeded ──────────────────────────────────────────────────────

func TestSyncCoordinator_InitialSync_CursorExists_NoPull(t *testing.T) {
	c, local, _ := newTestCoordinator(t, models.DomainGames)
	ctx := context.Background()

	local.EXPECT().GetCursor(ctx, models.DomainGames, testOwner).Return(ptr(t0), nil)

	res, err := c.InitialSyncIfNeeded(ctx, testOwner)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Applied)
	require.NotNil(t, res.Cursor)
	assert.True(t, res.Cursor.Equal(t0))
}

func TestSyncCoordinator_InitialSync_AppliesRemoteWinsAndSetsCursor(t *testing.T) {
	c, local, remote := newTestCoordinator(t, models.DomainGames)
	ctx := context.Background()

	// сервер вернул записи не по порядку: координатор обязан их отсортировать
	changes := []models.RemoteChange{
		{ID: "b", UpdatedAtRemote: t0.Add(2 * time.Second), Version: 3, Payload: gamePayload("b")},
		{ID: "a", UpdatedAtRemote: t0.Add(time.Second), IsDeleted: true, Version: 2},
	}

	local.EXPECT().GetCursor(ctx, models.DomainGames, testOwner).Return(nil, nil)
	remote.EXPECT().PullChangedSince(ctx, models.DomainGames, testOwner, nil).Return(changes, nil)
	gomock.InOrder(
		local.EXPECT().Purge(ctx, models.DomainGames, testOwner, "a").Return(nil),
		local.EXPECT().Upsert(ctx, models.DomainGames, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ models.Domain, rec models.Record) error {
				assert.Equal(t, "b", rec.ID)
				assert.Equal(t, models.StatusClean, rec.SyncStatus)
				assert.Equal(t, int64(3), rec.Version)
				require.NotNil(t, rec.UpdatedAtRemote)
				assert.True(t, rec.UpdatedAtRemote.Equal(t0.Add(2*time.Second)))
				return nil
			}),
		local.EXPECT().SetCursor(ctx, models.DomainGames, testOwner, t0.Add(2*time.Second)).Return(nil),
	)

	res, err := c.InitialSyncIfNeeded(ctx, testOwner)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Applied)
	require.NotNil(t, res.Cursor)
	assert.True(t, res.Cursor.Equal(t0.Add(2*time.Second)))
}

func TestSyncCoordinator_InitialSync_EmptyBatch_LeavesCursorUnset(t *testing.T) {
	c, local, remote := newTestCoordinator(t, models.DomainFriends)
	ctx := context.Background()

	local.EXPECT().GetCursor(ctx, models.DomainFriends, testOwner).Return(nil, nil)
	remote.EXPECT().PullChangedSince(ctx, models.DomainFriends, testOwner, nil).Return([]models.RemoteChange{}, nil)

	res, err := c.InitialSyncIfNeeded(ctx, testOwner)
	require.NoError(t, err)
	assert.Nil(t, res.Cursor)
}

func TestSyncCoordinator_InitialSync_PullError(t *testing.T) {
	c, local, remote := newTestCoordinator(t, models.DomainGames)
	ctx := context.Background()

	local.EXPECT().GetCursor(ctx, models.DomainGames, testOwner).Return(nil, nil)
	remote.EXPECT().PullChangedSince(ctx, models.DomainGames, testOwner, nil).Return(nil, adapter.ErrTransientNetwork)

	_, err := c.InitialSyncIfNeeded(ctx, testOwner)
	require.ErrorIs(t, err, adapter.ErrTransientNetwork)
}

// ── SyncDownIncremental ──────────────────────────────────────────────────────

func TestSyncCoordinator_Incremental_LastWriterWins(t *testing.T) {
	t1 := t0.Add(10 * time.Second)

	tests := []struct {
		name        string
		remoteAt    time.Time
		wantApplied int
		wantSkipped int
	}{
		{name: "remote older keeps local", remoteAt: t1.Add(-time.Second), wantSkipped: 1},
		{name: "tie keeps local", remoteAt: t1, wantSkipped: 1},
		{name: "remote newer wins", remoteAt: t1.Add(time.Second), wantApplied: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, local, remote := newTestCoordinator(t, models.DomainGames)
			ctx := context.Background()

			local.EXPECT().GetCursor(ctx, models.DomainGames, testOwner).Return(ptr(t0), nil)
			remote.EXPECT().PullChangedSince(ctx, models.DomainGames, testOwner, ptr(t0)).Return([]models.RemoteChange{
				{ID: "g1", UpdatedAtRemote: tt.remoteAt, Version: 2, Payload: gamePayload("remote")},
			}, nil)
			rec := pendingRecord("g1", t1)
			local.EXPECT().Get(ctx, models.DomainGames, testOwner, "g1").Return(&rec, nil)
			if tt.wantApplied > 0 {
				local.EXPECT().Upsert(ctx, models.DomainGames, gomock.Any()).Return(nil)
			}
			local.EXPECT().SetCursor(ctx, models.DomainGames, testOwner, tt.remoteAt).Return(nil)
			local.EXPECT().GetCursor(ctx, models.DomainGames, testOwner).Return(ptr(tt.remoteAt), nil)

			res, err := c.SyncDownIncremental(ctx, testOwner, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantApplied, res.Applied)
			assert.Equal(t, tt.wantSkipped, res.Skipped)
		})
	}
}

func TestSyncCoordinator_Incremental_SkipsStaleCleanEntry(t *testing.T) {
	c, local, remote := newTestCoordinator(t, models.DomainGames)
	ctx := context.Background()

	clean := models.Record{ID: "g1", OwnerID: testOwner, SyncStatus: models.StatusClean, UpdatedAtRemote: ptr(t0)}

	local.EXPECT().GetCursor(ctx, models.DomainGames, testOwner).Return(nil, nil)
	remote.EXPECT().PullChangedSince(ctx, models.DomainGames, testOwner, nil).Return([]models.RemoteChange{
		{ID: "g1", UpdatedAtRemote: t0, Version: 1},
	}, nil)
	local.EXPECT().Get(ctx, models.DomainGames, testOwner, "g1").Return(&clean, nil)
	local.EXPECT().SetCursor(ctx, models.DomainGames, testOwner, t0).Return(nil)
	local.EXPECT().GetCursor(ctx, models.DomainGames, testOwner).Return(ptr(t0), nil)

	res, err := c.SyncDownIncremental(ctx, testOwner, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Skipped)
}

func TestSyncCoordinator_Incremental_RemoteTombstonePurgesCleanRecord(t *testing.T) {
	c, local, remote := newTestCoordinator(t, models.DomainFriends)
	ctx := context.Background()

	clean := models.Record{ID: "f1", SyncStatus: models.StatusClean, UpdatedAtRemote: ptr(t0)}

	local.EXPECT().GetCursor(ctx, models.DomainFriends, testOwner).Return(ptr(t0), nil)
	remote.EXPECT().PullChangedSince(ctx, models.DomainFriends, testOwner, ptr(t0)).Return([]models.RemoteChange{
		{ID: "f1", IsDeleted: true, UpdatedAtRemote: t0.Add(time.Minute)},
	}, nil)
	local.EXPECT().Get(ctx, models.DomainFriends, testOwner, "f1").Return(&clean, nil)
	local.EXPECT().Purge(ctx, models.DomainFriends, testOwner, "f1").Return(nil)
	local.EXPECT().SetCursor(ctx, models.DomainFriends, testOwner, t0.Add(time.Minute)).Return(nil)
	local.EXPECT().GetCursor(ctx, models.DomainFriends, testOwner).Return(ptr(t0.Add(time.Minute)), nil)

	res, err := c.SyncDownIncremental(ctx, testOwner, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Applied)
}

func TestSyncCoordinator_Incremental_CursorUntouchedOnFailure(t *testing.T) {
	c, local, remote := newTestCoordinator(t, models.DomainGames)
	ctx := context.Background()

	local.EXPECT().GetCursor(ctx, models.DomainGames, testOwner).Return(ptr(t0), nil)
	remote.EXPECT().PullChangedSince(ctx, models.DomainGames, testOwner, ptr(t0)).Return([]models.RemoteChange{
		{ID: "a", UpdatedAtRemote: t0.Add(time.Second), Payload: gamePayload("a")},
		{ID: "b", UpdatedAtRemote: t0.Add(2 * time.Second), Payload: gamePayload("b")},
	}, nil)
	local.EXPECT().Get(ctx, models.DomainGames, testOwner, "a").Return(nil, nil)
	local.EXPECT().Upsert(ctx, models.DomainGames, gomock.Any()).Return(nil)
	local.EXPECT().Get(ctx, models.DomainGames, testOwner, "b").Return(nil, nil)
	local.EXPECT().Upsert(ctx, models.DomainGames, gomock.Any()).Return(errors.New("disk full"))
	// SetCursor не ожидается: курсор не двигается, пока пачка не применена целиком

	_, err := c.SyncDownIncremental(ctx, testOwner, nil)
	require.Error(t, err)
}

func TestSyncCoordinator_Incremental_SinceOverride(t *testing.T) {
	c, local, remote := newTestCoordinator(t, models.DomainGames)
	ctx := context.Background()
	since := t0.Add(-time.Hour)

	remote.EXPECT().PullChangedSince(ctx, models.DomainGames, testOwner, &since).Return(nil, nil)
	local.EXPECT().GetCursor(ctx, models.DomainGames, testOwner).Return(ptr(t0), nil)

	res, err := c.SyncDownIncremental(ctx, testOwner, &since)
	require.NoError(t, err)
	require.NotNil(t, res.Cursor)
	assert.True(t, res.Cursor.Equal(t0))
}

func TestSyncCoordinator_Incremental_CancelledContext(t *testing.T) {
	c, local, remote := newTestCoordinator(t, models.DomainGames)
	ctx, cancel := context.WithCancel(context.Background())

	local.EXPECT().GetCursor(ctx, models.DomainGames, testOwner).Return(nil, nil)
	remote.EXPECT().PullChangedSince(ctx, models.DomainGames, testOwner, nil).DoAndReturn(
		func(context.Context, models.Domain, string, *time.Time) ([]models.RemoteChange, error) {
			cancel()
			return []models.RemoteChange{{ID: "a", UpdatedAtRemote: t0}}, nil
		})

	_, err := c.SyncDownIncremental(ctx, testOwner, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSyncCoordinator_Incremental_LookbackOverlapsCursor(t *testing.T) {
	ctrl := gomock.NewController(t)
	local := mock.NewMockLocalStorage(ctrl)
	remote := mock.NewMockRemoteStore(ctrl)
	c := NewSyncCoordinator(models.DomainGroups, local, remote, logger.Nop(), WithPullLookback(30*time.Second))
	ctx := context.Background()

	cursor := t0.Add(time.Hour)
	seen := models.Record{ID: "grp", OwnerID: testOwner, SyncStatus: models.StatusClean, UpdatedAtRemote: ptr(cursor)}

	local.EXPECT().GetCursor(ctx, models.DomainGroups, testOwner).Return(ptr(cursor), nil)
	remote.EXPECT().PullChangedSince(ctx, models.DomainGroups, testOwner, ptr(cursor.Add(-30*time.Second))).Return([]models.RemoteChange{
		{ID: "grp", UpdatedAtRemote: cursor, Version: 2},
	}, nil)
	local.EXPECT().Get(ctx, models.DomainGroups, testOwner, "grp").Return(&seen, nil)
	local.EXPECT().SetCursor(ctx, models.DomainGroups, testOwner, cursor).Return(nil)
	local.EXPECT().GetCursor(ctx, models.DomainGroups, testOwner).Return(ptr(cursor), nil)

	res, err := c.SyncDownIncremental(ctx, testOwner, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Skipped)
	assert.Zero(t, res.Applied)
}

func TestSyncCoordinator_Incremental_OverrideIgnoresLookback(t *testing.T) {
	ctrl := gomock.NewController(t)
	local := mock.NewMockLocalStorage(ctrl)
	remote := mock.NewMockRemoteStore(ctrl)
	c := NewSyncCoordinator(models.DomainGroups, local, remote, logger.Nop(), WithPullLookback(time.Minute))
	ctx := context.Background()

	remote.EXPECT().PullChangedSince(ctx, models.DomainGroups, testOwner, ptr(t0)).Return(nil, nil)
	local.EXPECT().GetCursor(ctx, models.DomainGroups, testOwner).Return(nil, nil)

	_, err := c.SyncDownIncremental(ctx, testOwner, ptr(t0))
	require.NoError(t, err)
}

// ── SyncPending ──────────────────────────────────────────────────────────────

func TestSyncCoordinator_SyncPending_PushAndMarkClean(t *testing.T) {
	c, local, remote := newTestCoordinator(t, models.DomainGames)
	ctx := context.Background()

	rec := pendingRecord("g1", t0)
	ack := models.PushResponse{ID: "g1", UpdatedAtRemote: t0.Add(time.Second), Version: 1}

	local.EXPECT().ListPending(ctx, models.DomainGames, testOwner).Return([]models.Record{rec}, nil)
	remote.EXPECT().Push(ctx, models.DomainGames, testOwner, rec).Return(ack, nil)
	local.EXPECT().Get(ctx, models.DomainGames, testOwner, "g1").Return(&rec, nil)
	local.EXPECT().MarkClean(ctx, models.DomainGames, testOwner, "g1", ack.UpdatedAtRemote, int64(1)).Return(nil)

	res, err := c.SyncPending(ctx, testOwner)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Flushed)
	assert.Empty(t, res.Warnings)
}

func TestSyncCoordinator_SyncPending_EditedDuringPushStaysPending(t *testing.T) {
	c, local, remote := newTestCoordinator(t, models.DomainGames)
	ctx := context.Background()

	rec := pendingRecord("g1", t0)
	edited := pendingRecord("g1", t0.Add(time.Millisecond))
	ack := models.PushResponse{ID: "g1", UpdatedAtRemote: t0.Add(time.Second), Version: 4}

	local.EXPECT().ListPending(ctx, models.DomainGames, testOwner).Return([]models.Record{rec}, nil)
	remote.EXPECT().Push(ctx, models.DomainGames, testOwner, rec).Return(ack, nil)
	local.EXPECT().Get(ctx, models.DomainGames, testOwner, "g1").Return(&edited, nil)
	local.EXPECT().Upsert(ctx, models.DomainGames, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.Domain, got models.Record) error {
			assert.Equal(t, models.StatusPending, got.SyncStatus)
			assert.True(t, got.UpdatedAtLocal.Equal(edited.UpdatedAtLocal))
			require.NotNil(t, got.UpdatedAtRemote)
			assert.Equal(t, int64(4), got.Version)
			return nil
		})

	res, err := c.SyncPending(ctx, testOwner)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Flushed)
}

func TestSyncCoordinator_SyncPending_DeleteNeverPushedIsPurgedLocally(t *testing.T) {
	c, local, _ := newTestCoordinator(t, models.DomainGames)
	ctx := context.Background()

	rec := pendingRecord("g1", t0)
	rec.SyncStatus = models.StatusDeletedPending

	local.EXPECT().ListPending(ctx, models.DomainGames, testOwner).Return([]models.Record{rec}, nil)
	local.EXPECT().Purge(ctx, models.DomainGames, testOwner, "g1").Return(nil)

	res, err := c.SyncPending(ctx, testOwner)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Flushed)
}

func TestSyncCoordinator_SyncPending_DeletePushedThenPurged(t *testing.T) {
	c, local, remote := newTestCoordinator(t, models.DomainGames)
	ctx := context.Background()

	rec := pendingRecord("g1", t0)
	rec.SyncStatus = models.StatusDeletedPending
	rec.UpdatedAtRemote = ptr(t0.Add(-time.Hour))

	local.EXPECT().ListPending(ctx, models.DomainGames, testOwner).Return([]models.Record{rec}, nil)
	gomock.InOrder(
		remote.EXPECT().PushDelete(ctx, models.DomainGames, testOwner, "g1").Return(models.PushResponse{ID: "g1", UpdatedAtRemote: t0}, nil),
		local.EXPECT().Purge(ctx, models.DomainGames, testOwner, "g1").Return(nil),
	)

	res, err := c.SyncPending(ctx, testOwner)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Flushed)
}

func TestSyncCoordinator_SyncPending_TransientStopsPass(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "transient", err: adapter.ErrTransientNetwork},
		{name: "unauthorized", err: adapter.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, local, remote := newTestCoordinator(t, models.DomainGames)
			ctx := context.Background()

			first := pendingRecord("g1", t0)
			second := pendingRecord("g2", t0.Add(time.Second))

			local.EXPECT().ListPending(ctx, models.DomainGames, testOwner).Return([]models.Record{first, second}, nil)
			remote.EXPECT().Push(ctx, models.DomainGames, testOwner, first).Return(models.PushResponse{}, tt.err)
			// g2 не должен уйти на сервер

			res, err := c.SyncPending(ctx, testOwner)
			require.ErrorIs(t, err, tt.err)
			assert.True(t, adapter.IsTransient(err))
			assert.Equal(t, 0, res.Flushed)
		})
	}
}

func TestSyncCoordinator_SyncPending_RejectedBecomesWarning(t *testing.T) {
	c, local, remote := newTestCoordinator(t, models.DomainGames)
	ctx := context.Background()

	bad := pendingRecord("bad", t0)
	good := pendingRecord("good", t0.Add(time.Second))
	ack := models.PushResponse{ID: "good", UpdatedAtRemote: t0.Add(time.Minute), Version: 1}

	local.EXPECT().ListPending(ctx, models.DomainGames, testOwner).Return([]models.Record{bad, good}, nil)
	remote.EXPECT().Push(ctx, models.DomainGames, testOwner, bad).Return(models.PushResponse{}, &adapter.RejectedError{ID: "bad", Reason: "invalid data provided"})
	remote.EXPECT().Push(ctx, models.DomainGames, testOwner, good).Return(ack, nil)
	local.EXPECT().Get(ctx, models.DomainGames, testOwner, "good").Return(&good, nil)
	local.EXPECT().MarkClean(ctx, models.DomainGames, testOwner, "good", ack.UpdatedAtRemote, int64(1)).Return(nil)

	res, err := c.SyncPending(ctx, testOwner)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Flushed)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, models.Warning{ID: "bad", Reason: "invalid data provided"}, res.Warnings[0])
}

func TestSyncCoordinator_CountPending(t *testing.T) {
	c, local, _ := newTestCoordinator(t, models.DomainSessions)
	ctx := context.Background()

	local.EXPECT().CountPending(ctx, models.DomainSessions, testOwner).Return(3, nil)

	n, err := c.CountPending(ctx, testOwner)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, models.DomainSessions, c.Domain())
}
