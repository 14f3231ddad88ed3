package service

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-game-keeper/internal/adapter"
	"github.com/MKhiriev/go-game-keeper/internal/logger"
	"github.com/MKhiriev/go-game-keeper/internal/store"
	"github.com/MKhiriev/go-game-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRemote is an in-memory remote store with a step clock. failOn makes
// Push fail for the given ids.
type fakeRemote struct {
	mu      sync.Mutex
	rows    map[models.Domain]map[string]models.RemoteChange
	clock   time.Time
	failOn  map[string]error
	pushed  []string
	deleted []string
}

func newFakeRemote(start time.Time) *fakeRemote {
	return &fakeRemote{
		rows:   make(map[models.Domain]map[string]models.RemoteChange),
		clock:  start,
		failOn: make(map[string]error),
	}
}

func (f *fakeRemote) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeRemote) put(domain models.Domain, change models.RemoteChange) {
	if f.rows[domain] == nil {
		f.rows[domain] = make(map[string]models.RemoteChange)
	}
	f.rows[domain][change.ID] = change
}

func (f *fakeRemote) Push(_ context.Context, domain models.Domain, _ string, rec models.Record) (models.PushResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err, ok := f.failOn[rec.ID]; ok {
		return models.PushResponse{}, err
	}
	prev := f.rows[domain][rec.ID]
	at := f.tick()
	f.put(domain, models.RemoteChange{ID: rec.ID, UpdatedAtRemote: at, Version: prev.Version + 1, Payload: rec.Payload})
	f.pushed = append(f.pushed, rec.ID)
	return models.PushResponse{ID: rec.ID, UpdatedAtRemote: at, Version: prev.Version + 1}, nil
}

func (f *fakeRemote) PushDelete(_ context.Context, domain models.Domain, _ string, id string) (models.PushResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	prev := f.rows[domain][id]
	at := f.tick()
	f.put(domain, models.RemoteChange{ID: id, IsDeleted: true, UpdatedAtRemote: at, Version: prev.Version + 1})
	f.deleted = append(f.deleted, id)
	return models.PushResponse{ID: id, UpdatedAtRemote: at, Version: prev.Version + 1}, nil
}

func (f *fakeRemote) PullChangedSince(_ context.Context, domain models.Domain, _ string, since *time.Time) ([]models.RemoteChange, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]models.RemoteChange, 0)
	for _, c := range f.rows[domain] {
		if since == nil || c.UpdatedAtRemote.After(*since) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAtRemote.Before(out[j].UpdatedAtRemote) })
	return out, nil
}

type device struct {
	local   store.LocalStorage
	library LibraryService
	games   SyncCoordinator
}

func newDevice(remote adapter.RemoteStore, now func() time.Time) device {
	local := store.NewMemoryStorage(now)
	lib := NewLibraryService(local, nil, logger.Nop()).(*libraryService)
	lib.now = now
	return device{
		local:   local,
		library: lib,
		games:   NewSyncCoordinator(models.DomainGames, local, remote, logger.Nop()),
	}
}

func syncDevice(t *testing.T, d device) {
	t.Helper()
	ctx := context.Background()
	_, err := d.games.InitialSyncIfNeeded(ctx, testOwner)
	require.NoError(t, err)
	_, err = d.games.SyncDownIncremental(ctx, testOwner, nil)
	require.NoError(t, err)
	_, err = d.games.SyncPending(ctx, testOwner)
	require.NoError(t, err)
}

// ── Сценарии ─────────────────────────────────────────────────────────────────

func TestSyncScenario_OfflineEditSurvivesOlderRemoteChange(t *testing.T) {
	ctx := context.Background()
	remote := newFakeRemote(t0)
	local := store.NewMemoryStorage(nil)
	c := NewSyncCoordinator(models.DomainGames, local, remote, logger.Nop())

	require.NoError(t, local.SetCursor(ctx, models.DomainGames, testOwner, t0.Add(-time.Hour)))

	edit := pendingRecord("g1", t0.Add(100*time.Second))
	edit.Payload = gamePayload("local edit")
	require.NoError(t, local.Upsert(ctx, models.DomainGames, edit))

	remote.put(models.DomainGames, models.RemoteChange{ID: "g1", UpdatedAtRemote: t0.Add(50 * time.Second), Version: 7, Payload: gamePayload("remote")})

	res, err := c.SyncDownIncremental(ctx, testOwner, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Skipped)

	got, err := local.Get(ctx, models.DomainGames, testOwner, "g1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.StatusPending, got.SyncStatus)
	assert.JSONEq(t, string(gamePayload("local edit")), string(got.Payload))
}

func TestSyncScenario_InitialSyncOfThreeRecords(t *testing.T) {
	ctx := context.Background()
	remote := newFakeRemote(t0)
	local := store.NewMemoryStorage(nil)
	c := NewSyncCoordinator(models.DomainGames, local, remote, logger.Nop())

	stamps := []time.Time{t0.Add(5 * time.Second), t0.Add(9 * time.Second), t0.Add(2 * time.Second)}
	for i, at := range stamps {
		id := string(rune('a' + i))
		remote.put(models.DomainGames, models.RemoteChange{ID: id, UpdatedAtRemote: at, Version: 1, Payload: gamePayload(id)})
	}

	res, err := c.InitialSyncIfNeeded(ctx, testOwner)
	require.NoError(t, err)
	require.NotNil(t, res.Cursor)
	assert.True(t, res.Cursor.Equal(t0.Add(9*time.Second)))

	recs, err := local.List(ctx, models.DomainGames, testOwner)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	for _, r := range recs {
		assert.Equal(t, models.StatusClean, r.SyncStatus)
		require.NotNil(t, r.UpdatedAtRemote)
	}
}

func TestSyncScenario_TransientFailureKeepsQueueOrder(t *testing.T) {
	ctx := context.Background()
	remote := newFakeRemote(t0)
	local := store.NewMemoryStorage(nil)
	c := NewSyncCoordinator(models.DomainGames, local, remote, logger.Nop())

	require.NoError(t, local.Upsert(ctx, models.DomainGames, pendingRecord("first", t0)))
	require.NoError(t, local.Upsert(ctx, models.DomainGames, pendingRecord("second", t0.Add(time.Second))))
	remote.failOn["first"] = adapter.ErrTransientNetwork

	res, err := c.SyncPending(ctx, testOwner)
	require.ErrorIs(t, err, adapter.ErrTransientNetwork)
	assert.Equal(t, 0, res.Flushed)
	assert.Empty(t, remote.pushed)

	n, err := local.CountPending(ctx, models.DomainGames, testOwner)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// связь восстановилась: очередь уходит целиком и по порядку
	delete(remote.failOn, "first")
	res, err = c.SyncPending(ctx, testOwner)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Flushed)
	assert.Equal(t, []string{"first", "second"}, remote.pushed)
}

func TestSyncScenario_TwoDevicesConverge(t *testing.T) {
	ctx := context.Background()
	remote := newFakeRemote(t0)

	clock := t0.Add(time.Hour)
	now := func() time.Time {
		clock = clock.Add(time.Millisecond)
		return clock
	}

	a := newDevice(remote, now)
	b := newDevice(remote, now)

	entry, err := a.library.AddGame(ctx, testOwner, models.Game{Title: "Outer Wilds", Status: models.GamePlaying})
	require.NoError(t, err)
	syncDevice(t, a)
	syncDevice(t, b)

	games, err := b.library.ListGames(ctx, testOwner)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Outer Wilds", games[0].Game.Title)
	assert.Equal(t, models.StatusClean, games[0].SyncStatus)

	// B удаляет, A после синхронизации тоже не видит запись
	require.NoError(t, b.library.DeleteGame(ctx, testOwner, entry.ID))
	syncDevice(t, b)
	syncDevice(t, a)

	games, err = a.library.ListGames(ctx, testOwner)
	require.NoError(t, err)
	assert.Empty(t, games)
	assert.Equal(t, []string{entry.ID}, remote.deleted)
}

func TestSyncScenario_DeleteBeforeFirstPushNeverReachesRemote(t *testing.T) {
	ctx := context.Background()
	remote := newFakeRemote(t0)
	d := newDevice(remote, time.Now)

	entry, err := d.library.AddGame(ctx, testOwner, models.Game{Title: "Tunic", Status: models.GameBacklog})
	require.NoError(t, err)
	require.NoError(t, d.library.DeleteGame(ctx, testOwner, entry.ID))

	syncDevice(t, d)

	assert.Empty(t, remote.pushed)
	assert.Empty(t, remote.deleted)
	got, err := d.local.Get(ctx, models.DomainGames, testOwner, entry.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSyncScenario_LateCommitBelowCursorIsPulled(t *testing.T) {
	ctx := context.Background()
	remote := newFakeRemote(t0)
	local := store.NewMemoryStorage(nil)
	c := NewSyncCoordinator(models.DomainFriends, local, remote, logger.Nop(), WithPullLookback(time.Minute))

	remote.put(models.DomainFriends, models.RemoteChange{ID: "u-2", UpdatedAtRemote: t0.Add(10 * time.Second), Version: 1, Payload: gamePayload("bob")})

	_, err := c.InitialSyncIfNeeded(ctx, testOwner)
	require.NoError(t, err)

	// stamped before u-2 but committed after the pull above
	remote.put(models.DomainFriends, models.RemoteChange{ID: "u-3", UpdatedAtRemote: t0.Add(5 * time.Second), Version: 1, Payload: gamePayload("carol")})

	res, err := c.SyncDownIncremental(ctx, testOwner, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Applied)
	assert.Equal(t, 1, res.Skipped)
	require.NotNil(t, res.Cursor)
	assert.True(t, res.Cursor.Equal(t0.Add(10*time.Second)), "cursor never moves back")

	got, err := local.Get(ctx, models.DomainFriends, testOwner, "u-3")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.StatusClean, got.SyncStatus)

	// without the overlap the same commit order loses the change
	remote = newFakeRemote(t0)
	local = store.NewMemoryStorage(nil)
	plain := NewSyncCoordinator(models.DomainFriends, local, remote, logger.Nop())

	remote.put(models.DomainFriends, models.RemoteChange{ID: "u-2", UpdatedAtRemote: t0.Add(10 * time.Second), Version: 1, Payload: gamePayload("bob")})
	_, err = plain.InitialSyncIfNeeded(ctx, testOwner)
	require.NoError(t, err)
	remote.put(models.DomainFriends, models.RemoteChange{ID: "u-3", UpdatedAtRemote: t0.Add(5 * time.Second), Version: 1, Payload: gamePayload("carol")})

	_, err = plain.SyncDownIncremental(ctx, testOwner, nil)
	require.NoError(t, err)
	got, err = local.Get(ctx, models.DomainFriends, testOwner, "u-3")
	require.NoError(t, err)
	assert.Nil(t, got)
}
