package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-game-keeper/internal/config"
	"github.com/MKhiriev/go-game-keeper/internal/logger"
)

// memoryDSN selects the in-process record store instead of SQLite.
const memoryDSN = ":memory:"

// ClientStorages groups all client-side storages into a single value that
// can be passed around the service layer.
type ClientStorages struct {
	// Records holds the local copy of every synchronized domain together
	// with the sync cursors.
	Records LocalStorage

	// Session persists the logged-in user between invocations.
	Session SessionStorage

	db *DB
}

// NewClientStorages initialises the client storage layer. It performs the
// following steps:
//  1. Opens an SQLite connection to cfg.DSN, creating the parent directory
//     if needed. The DSN ":memory:" selects the in-process store instead.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the record store and the file session store.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Debug().Str("func", "NewClientStorages").Msg("creating client storages")

	storages := &ClientStorages{
		Session: NewFileSessionStorage(cfg.TokenFile),
	}

	if cfg.DSN == memoryDSN {
		storages.Records = NewMemoryStorage(time.Now)
		return storages, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	storages.db = db
	storages.Records = NewLocalRecordRepository(db, log, time.Now)
	return storages, nil
}

// Close releases the SQLite connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
