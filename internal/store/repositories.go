package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-game-keeper/internal/config"
	"github.com/MKhiriev/go-game-keeper/internal/logger"
)

// Repositories groups the server-side persistence components.
type Repositories struct {
	UserRepository         UserRepository
	RemoteRecordRepository RemoteRecordRepository
	Transactor             Transactor

	db *DB
}

// NewRepositories connects to PostgreSQL, applies migrations and wires every
// repository. Friend code lookups are cached for cfg.Services.FriendCodeCacheTTL.
func NewRepositories(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Repositories, error) {
	log.Info().Str("func", "NewRepositories").Msg("creating repositories...")

	db, err := NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newRepositories(db, cfg.Services, log), nil
}

func newRepositories(db *DB, cfg config.Services, log *logger.Logger) *Repositories {
	users := NewUserRepository(db, log)
	if cfg.FriendCodeCacheTTL > 0 {
		users = NewCachedUserRepository(users, cfg.FriendCodeCacheTTL)
	}

	return &Repositories{
		UserRepository:         users,
		RemoteRecordRepository: NewRemoteRecordRepository(db, log),
		Transactor:             NewTransactor(db, cfg),
		db:                     db,
	}
}

// Close releases the database connection pool.
func (r *Repositories) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}
