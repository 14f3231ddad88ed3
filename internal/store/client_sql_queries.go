// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-game-keeper/models"
)

// Timestamps are stored as Unix nanoseconds so SQLite compares them as integers.
const (
	getRecord = `
		SELECT
			domain,
			id,
			owner_id,
			payload,
			sync_status,
			updated_at_local,
			updated_at_remote,
			version
		FROM records
		WHERE domain = ? AND owner_id = ? AND id = ?;`

	upsertRecord = `
		INSERT INTO records (
			domain,
			id,
			owner_id,
			payload,
			sync_status,
			updated_at_local,
			updated_at_remote,
			version
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (domain, owner_id, id) DO UPDATE SET
			payload           = excluded.payload,
			sync_status       = excluded.sync_status,
			updated_at_local  = excluded.updated_at_local,
			updated_at_remote = excluded.updated_at_remote,
			version           = excluded.version;`

	markRecordClean = `
		UPDATE records SET
			sync_status       = 'CLEAN',
			updated_at_remote = ?,
			version           = ?
		WHERE domain = ? AND owner_id = ? AND id = ?;`

	softDeleteRecord = `
		UPDATE records SET
			sync_status      = 'DELETED_PENDING',
			updated_at_local = MAX(?, updated_at_local + 1)
		WHERE domain = ? AND owner_id = ? AND id = ?;`

	purgeRecord = `DELETE FROM records WHERE domain = ? AND owner_id = ? AND id = ?;`

	countPendingRecords = `
		SELECT COUNT(*)
		FROM records
		WHERE domain = ? AND owner_id = ? AND sync_status IN ('PENDING', 'DELETED_PENDING');`

	getSyncCursor = `SELECT last_synced_at FROM sync_cursors WHERE domain = ? AND owner_id = ?;`

	setSyncCursor = `
		INSERT INTO sync_cursors (domain, owner_id, last_synced_at)
		VALUES (?, ?, ?)
		ON CONFLICT (domain, owner_id) DO UPDATE SET
			last_synced_at = MAX(last_synced_at, excluded.last_synced_at);`
)

var recordColumns = []string{
	"domain",
	"id",
	"owner_id",
	"payload",
	"sync_status",
	"updated_at_local",
	"updated_at_remote",
	"version",
}

// buildListRecordsQuery selects the records of one partition having one of
// statuses, in local write order.
func buildListRecordsQuery(domain models.Domain, ownerID string, statuses ...models.SyncStatus) (string, []any, error) {
	in := make([]string, 0, len(statuses))
	for _, s := range statuses {
		in = append(in, string(s))
	}

	query, args, err := sq.Select(recordColumns...).
		From("records").
		Where(sq.Eq{
			"domain":      string(domain),
			"owner_id":    ownerID,
			"sync_status": in,
		}).
		OrderBy("updated_at_local ASC", "id ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
