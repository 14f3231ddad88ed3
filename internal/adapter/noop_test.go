package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-game-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopRemoteStore(t *testing.T) {
	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	n := NewNoopRemoteStore(func() time.Time { return at })
	ctx := context.Background()

	ack, err := n.Push(ctx, models.DomainGames, "o", models.Record{ID: "g1", Version: 2})
	require.NoError(t, err)
	assert.Equal(t, at, ack.UpdatedAtRemote)
	assert.Equal(t, int64(3), ack.Version)

	ack, err = n.PushDelete(ctx, models.DomainGames, "o", "g1")
	require.NoError(t, err)
	assert.Equal(t, at, ack.UpdatedAtRemote)

	changes, err := n.PullChangedSince(ctx, models.DomainGames, "o", nil)
	require.NoError(t, err)
	assert.NotNil(t, changes)
	assert.Empty(t, changes)
}
