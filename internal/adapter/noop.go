package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-game-keeper/models"
)

// NoopRemoteStore is the [RemoteStore] of local mode. Pushes succeed
// immediately with the clock's time and pulls return nothing, so records
// become CLEAN without ever leaving the machine.
type NoopRemoteStore struct {
	now func() time.Time
}

// NewNoopRemoteStore returns a [NoopRemoteStore] driven by now. A nil now
// falls back to [time.Now].
func NewNoopRemoteStore(now func() time.Time) *NoopRemoteStore {
	if now == nil {
		now = time.Now
	}
	return &NoopRemoteStore{now: now}
}

func (n *NoopRemoteStore) Push(_ context.Context, _ models.Domain, _ string, record models.Record) (models.PushResponse, error) {
	return models.PushResponse{ID: record.ID, UpdatedAtRemote: n.now().UTC(), Version: record.Version + 1}, nil
}

func (n *NoopRemoteStore) PushDelete(_ context.Context, _ models.Domain, _ string, id string) (models.PushResponse, error) {
	return models.PushResponse{ID: id, UpdatedAtRemote: n.now().UTC()}, nil
}

func (n *NoopRemoteStore) PullChangedSince(context.Context, models.Domain, string, *time.Time) ([]models.RemoteChange, error) {
	return []models.RemoteChange{}, nil
}
