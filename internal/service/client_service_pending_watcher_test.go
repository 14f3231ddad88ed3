package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-game-keeper/internal/store"
	"github.com/MKhiriev/go-game-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingWatcher_FirstValueIsZero(t *testing.T) {
	w := NewPendingWatcher(store.NewMemoryStorage(nil), models.AllDomains)

	ch, cancel := w.Subscribe()
	defer cancel()

	assert.Equal(t, 0, <-ch)
}

func TestPendingWatcher_DuplicateSubscribeReturnsSameStream(t *testing.T) {
	w := NewPendingWatcher(store.NewMemoryStorage(nil), models.AllDomains)

	first, cancel := w.Subscribe()
	second, _ := w.Subscribe()
	defer cancel()

	assert.Equal(t, first, second)
}

func TestPendingWatcher_CancelIsIdempotent(t *testing.T) {
	w := NewPendingWatcher(store.NewMemoryStorage(nil), models.AllDomains)

	ch, cancel := w.Subscribe()
	<-ch
	cancel()
	assert.NotPanics(t, cancel)

	_, open := <-ch
	assert.False(t, open)
}

func TestPendingWatcher_StaleCancelKeepsNewStream(t *testing.T) {
	w := NewPendingWatcher(store.NewMemoryStorage(nil), models.AllDomains)

	_, oldCancel := w.Subscribe()
	oldCancel()

	ch, cancel := w.Subscribe()
	defer cancel()
	oldCancel()

	v, open := <-ch
	assert.True(t, open)
	assert.Equal(t, 0, v)
}

func TestPendingWatcher_RefreshPublishesLatestCount(t *testing.T) {
	ctx := context.Background()
	local := store.NewMemoryStorage(nil)
	w := NewPendingWatcher(local, models.AllDomains)

	ch, cancel := w.Subscribe()
	defer cancel()

	require.NoError(t, local.Upsert(ctx, models.DomainGames, pendingRecord("g1", t0)))
	n, err := w.Refresh(ctx, testOwner)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	rec := pendingRecord("s1", t0)
	rec.Domain = models.DomainSessions
	require.NoError(t, local.Upsert(ctx, models.DomainSessions, rec))
	_, err = w.Refresh(ctx, testOwner)
	require.NoError(t, err)

	// буфер хранит только последнее значение
	assert.Equal(t, 2, <-ch)
}

func TestPendingWatcher_RefreshWithoutSubscriber(t *testing.T) {
	w := NewPendingWatcher(store.NewMemoryStorage(nil), models.AllDomains)

	n, err := w.Refresh(context.Background(), testOwner)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
