package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-game-keeper/internal/logger"
	"github.com/MKhiriev/go-game-keeper/models"
)

// localRecordRepository is the SQLite-backed [RecordStorage] and
// [CursorStorage] of the client.
type localRecordRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewLocalRecordRepository returns the SQLite record store. now stamps
// soft deletes; nil means time.Now.
func NewLocalRecordRepository(db *DB, logger *logger.Logger, now func() time.Time) LocalStorage {
	if now == nil {
		now = time.Now
	}
	return &localRecordRepository{
		DB:     db,
		logger: logger,
		now:    now,
	}
}

func (l *localRecordRepository) Get(ctx context.Context, domain models.Domain, ownerID, id string) (*models.Record, error) {
	log := logger.FromContext(ctx)

	rec, err := scanRecord(l.DB.QueryRowContext(ctx, getRecord, string(domain), ownerID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "*localRecordRepository.Get").
			Str("domain", domain.String()).
			Str("id", id).
			Msg("failed to scan record row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &rec, nil
}

func (l *localRecordRepository) ListPending(ctx context.Context, domain models.Domain, ownerID string) ([]models.Record, error) {
	return l.list(ctx, "*localRecordRepository.ListPending", domain, ownerID, models.StatusPending, models.StatusDeletedPending)
}

func (l *localRecordRepository) List(ctx context.Context, domain models.Domain, ownerID string) ([]models.Record, error) {
	return l.list(ctx, "*localRecordRepository.List", domain, ownerID, models.StatusClean, models.StatusPending)
}

func (l *localRecordRepository) list(ctx context.Context, funcName string, domain models.Domain, ownerID string, statuses ...models.SyncStatus) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecordsQuery(domain, ownerID, statuses...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to create query")
		return nil, err
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("domain", domain.String()).Msg("failed to query records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0, 16)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (l *localRecordRepository) Upsert(ctx context.Context, domain models.Domain, record models.Record) error {
	log := logger.FromContext(ctx)

	var remote sql.NullInt64
	if record.UpdatedAtRemote != nil {
		remote = sql.NullInt64{Int64: record.UpdatedAtRemote.UnixNano(), Valid: true}
	}

	_, err := l.DB.ExecContext(ctx, upsertRecord,
		string(domain),
		record.ID,
		record.OwnerID,
		[]byte(record.Payload),
		string(record.SyncStatus),
		record.UpdatedAtLocal.UnixNano(),
		remote,
		record.Version,
	)
	if err != nil {
		log.Err(err).
			Str("func", "*localRecordRepository.Upsert").
			Str("domain", domain.String()).
			Str("id", record.ID).
			Msg("failed to upsert record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localRecordRepository) MarkClean(ctx context.Context, domain models.Domain, ownerID, id string, remoteTimestamp time.Time, version int64) error {
	return l.exec(ctx, "*localRecordRepository.MarkClean", markRecordClean, remoteTimestamp.UnixNano(), version, string(domain), ownerID, id)
}

func (l *localRecordRepository) SoftDelete(ctx context.Context, domain models.Domain, ownerID, id string) error {
	return l.exec(ctx, "*localRecordRepository.SoftDelete", softDeleteRecord, l.now().UnixNano(), string(domain), ownerID, id)
}

func (l *localRecordRepository) Purge(ctx context.Context, domain models.Domain, ownerID, id string) error {
	return l.exec(ctx, "*localRecordRepository.Purge", purgeRecord, string(domain), ownerID, id)
}

func (l *localRecordRepository) CountPending(ctx context.Context, domain models.Domain, ownerID string) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	if err := l.DB.QueryRowContext(ctx, countPendingRecords, string(domain), ownerID).Scan(&count); err != nil {
		log.Err(err).Str("func", "*localRecordRepository.CountPending").Msg("failed to count pending records")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (l *localRecordRepository) GetCursor(ctx context.Context, domain models.Domain, ownerID string) (*time.Time, error) {
	log := logger.FromContext(ctx)

	var nanos int64
	err := l.DB.QueryRowContext(ctx, getSyncCursor, string(domain), ownerID).Scan(&nanos)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*localRecordRepository.GetCursor").Msg("failed to read cursor")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	cursor := time.Unix(0, nanos).UTC()
	return &cursor, nil
}

func (l *localRecordRepository) SetCursor(ctx context.Context, domain models.Domain, ownerID string, at time.Time) error {
	return l.exec(ctx, "*localRecordRepository.SetCursor", setSyncCursor, string(domain), ownerID, at.UnixNano())
}

func (l *localRecordRepository) exec(ctx context.Context, funcName, query string, args ...any) error {
	log := logger.FromContext(ctx)

	if _, err := l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.Record, error) {
	var (
		rec     models.Record
		domain  string
		status  string
		payload []byte
		local   int64
		remote  sql.NullInt64
	)

	if err := row.Scan(&domain, &rec.ID, &rec.OwnerID, &payload, &status, &local, &remote, &rec.Version); err != nil {
		return models.Record{}, err
	}

	rec.Domain = models.Domain(domain)
	rec.SyncStatus = models.SyncStatus(status)
	rec.UpdatedAtLocal = time.Unix(0, local).UTC()
	if len(payload) > 0 {
		rec.Payload = payload
	}
	if remote.Valid {
		t := time.Unix(0, remote.Int64).UTC()
		rec.UpdatedAtRemote = &t
	}

	return rec, nil
}
