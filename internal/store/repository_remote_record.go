package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-game-keeper/internal/logger"
	"github.com/MKhiriev/go-game-keeper/models"
)

// remoteRecordRepository stores the authoritative copy of synchronized
// records in the "remote_records" table.
type remoteRecordRepository struct {
	*DB
	logger *logger.Logger
}

// NewRemoteRecordRepository constructs a [RemoteRecordRepository].
func NewRemoteRecordRepository(db *DB, logger *logger.Logger) RemoteRecordRepository {
	logger.Debug().Msg("creating remote record repository")
	return &remoteRecordRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *remoteRecordRepository) Upsert(ctx context.Context, rec models.RemoteRecord) (models.RemoteRecord, error) {
	log := logger.FromContext(ctx)

	stored, err := putRemoteRecord(ctx, r.DB.DB, rec)
	if err != nil {
		log.Err(err).
			Str("func", "*remoteRecordRepository.Upsert").
			Str("domain", rec.Domain.String()).
			Str("id", rec.ID).
			Msg("failed to upsert remote record")
		return models.RemoteRecord{}, err
	}

	return stored, nil
}

func (r *remoteRecordRepository) ListChangedSince(ctx context.Context, domain models.Domain, ownerID string, since *time.Time) ([]models.RemoteRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListChangedSinceQuery(ctx, domain, ownerID, since)
	if err != nil {
		log.Err(err).Str("func", "*remoteRecordRepository.ListChangedSince").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*remoteRecordRepository.ListChangedSince").
			Str("domain", domain.String()).
			Msg("failed to execute query for changed records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.RemoteRecord, 0, 16)
	for rows.Next() {
		var (
			rec     models.RemoteRecord
			domain  string
			payload []byte
		)
		if err := rows.Scan(&domain, &rec.OwnerID, &rec.ID, &payload, &rec.Deleted, &rec.Version, &rec.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*remoteRecordRepository.ListChangedSince").Msg("failed to scan remote record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		rec.Domain = models.Domain(domain)
		rec.UpdatedAt = rec.UpdatedAt.UTC()
		if len(payload) > 0 {
			rec.Payload = payload
		}
		results = append(results, rec)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*remoteRecordRepository.ListChangedSince").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

// putRemoteRecord is shared by the repository and relationship transactions.
func putRemoteRecord(ctx context.Context, q queryer, rec models.RemoteRecord) (models.RemoteRecord, error) {
	payload := rec.Payload
	if rec.Deleted {
		payload = nil
	}

	err := q.QueryRowContext(ctx, upsertRemoteRecord,
		string(rec.Domain),
		rec.OwnerID,
		rec.ID,
		nullableJSON(payload),
		rec.Deleted,
		rec.UpdatedAt.UTC(),
	).Scan(&rec.Version, &rec.UpdatedAt)
	if err != nil {
		return models.RemoteRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rec.Payload = payload
	rec.UpdatedAt = rec.UpdatedAt.UTC()
	return rec, nil
}
