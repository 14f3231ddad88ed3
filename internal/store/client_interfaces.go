package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-game-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// RecordStorage is the local persistent cache of synchronized records.
// Records are keyed by (domain, owner, id): every operation touches only the
// addressed owner's partition of one domain.
type RecordStorage interface {
	// Get returns nil, nil when the record does not exist.
	Get(ctx context.Context, domain models.Domain, ownerID, id string) (*models.Record, error)
	// ListPending returns PENDING and DELETED_PENDING records ordered by
	// UpdatedAtLocal ascending.
	ListPending(ctx context.Context, domain models.Domain, ownerID string) ([]models.Record, error)
	Upsert(ctx context.Context, domain models.Domain, record models.Record) error
	MarkClean(ctx context.Context, domain models.Domain, ownerID, id string, remoteTimestamp time.Time, version int64) error
	// SoftDelete marks the record DELETED_PENDING and bumps UpdatedAtLocal.
	SoftDelete(ctx context.Context, domain models.Domain, ownerID, id string) error
	Purge(ctx context.Context, domain models.Domain, ownerID, id string) error
	CountPending(ctx context.Context, domain models.Domain, ownerID string) (int, error)
	// List returns the records that are not tombstones.
	List(ctx context.Context, domain models.Domain, ownerID string) ([]models.Record, error)
}

// CursorStorage keeps the incremental pull watermark per (domain, owner).
type CursorStorage interface {
	// GetCursor returns nil, nil when no cursor was ever written.
	GetCursor(ctx context.Context, domain models.Domain, ownerID string) (*time.Time, error)
	// SetCursor never moves an existing cursor backwards.
	SetCursor(ctx context.Context, domain models.Domain, ownerID string, at time.Time) error
}

// LocalStorage is a record store that also keeps the sync cursors.
type LocalStorage interface {
	RecordStorage
	CursorStorage
}

// SessionStorage persists the logged-in session of the CLI.
type SessionStorage interface {
	Load() (models.Session, error)
	Save(session models.Session) error
	Clear() error
}
