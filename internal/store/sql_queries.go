package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-game-keeper/models"
)

const (
	createUser = `INSERT INTO users (user_id, login, name, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING created_at;`

	createFriendCode = `INSERT INTO friend_codes (code, user_id) VALUES ($1, $2);`

	findUserByLogin = `SELECT u.user_id, u.login, u.name, u.password_hash, COALESCE(f.code, ''), u.created_at
    FROM users u LEFT JOIN friend_codes f ON f.user_id = u.user_id
    WHERE u.login = $1;`

	findUserByID = `SELECT u.user_id, u.login, u.name, u.password_hash, COALESCE(f.code, ''), u.created_at
    FROM users u LEFT JOIN friend_codes f ON f.user_id = u.user_id
    WHERE u.user_id = $1;`

	findUserByFriendCode = `SELECT u.user_id, u.login, u.name, u.password_hash, f.code, u.created_at
    FROM friend_codes f JOIN users u ON u.user_id = f.user_id
    WHERE f.code = $1;`
)

const (
	getRelation = `SELECT subject_id, counterpart_id, status, code, display_name, created_at, updated_at
		FROM relations
		WHERE subject_id = $1 AND counterpart_id = $2;`

	putRelation = `INSERT INTO relations (subject_id, counterpart_id, status, code, display_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (subject_id, counterpart_id) DO UPDATE SET
			status       = EXCLUDED.status,
			code         = EXCLUDED.code,
			display_name = EXCLUDED.display_name,
			created_at   = EXCLUDED.created_at,
			updated_at   = EXCLUDED.updated_at;`

	deleteRelation = `DELETE FROM relations WHERE subject_id = $1 AND counterpart_id = $2;`
)

const (
	getGroup = `SELECT group_id, name, owner_id, created_at, updated_at FROM groups WHERE group_id = $1;`

	putGroup = `INSERT INTO groups (group_id, name, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (group_id) DO UPDATE SET
			name       = EXCLUDED.name,
			owner_id   = EXCLUDED.owner_id,
			updated_at = EXCLUDED.updated_at;`

	deleteGroup = `DELETE FROM groups WHERE group_id = $1;`

	listGroupMembers = `SELECT group_id, user_id, role, joined_at
		FROM group_members
		WHERE group_id = $1
		ORDER BY joined_at, user_id;`

	addGroupMember = `INSERT INTO group_members (group_id, user_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (group_id, user_id) DO NOTHING;`

	removeGroupMember = `DELETE FROM group_members WHERE group_id = $1 AND user_id = $2;`

	getGroupInvite = `SELECT group_id, invitee_id, inviter_id, status, created_at, updated_at
		FROM group_invites
		WHERE group_id = $1 AND invitee_id = $2;`

	putGroupInvite = `INSERT INTO group_invites (group_id, invitee_id, inviter_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (group_id, invitee_id) DO UPDATE SET
			inviter_id = EXCLUDED.inviter_id,
			status     = EXCLUDED.status,
			created_at = EXCLUDED.created_at,
			updated_at = EXCLUDED.updated_at;`

	deleteGroupInvite = `DELETE FROM group_invites WHERE group_id = $1 AND invitee_id = $2;`

	listGroupInvites = `SELECT group_id, invitee_id, inviter_id, status, created_at, updated_at
		FROM group_invites
		WHERE group_id = $1
		ORDER BY created_at, invitee_id;`
)

// upsertRemoteRecord bumps the version on every write. updated_at is kept
// strictly increasing per row so a pull never misses a rewrite that landed
// in the same microsecond.
const upsertRemoteRecord = `INSERT INTO remote_records (domain, owner_id, id, payload, deleted, version, updated_at)
	VALUES ($1, $2, $3, $4, $5, 1, $6)
	ON CONFLICT (domain, owner_id, id) DO UPDATE SET
		payload    = EXCLUDED.payload,
		deleted    = EXCLUDED.deleted,
		version    = remote_records.version + 1,
		updated_at = GREATEST(EXCLUDED.updated_at, remote_records.updated_at + INTERVAL '1 microsecond')
	RETURNING version, updated_at;`

// buildListChangedSinceQuery selects the rows of one (domain, owner)
// partition newer than since, oldest first.
func buildListChangedSinceQuery(_ context.Context, domain models.Domain, ownerID string, since *time.Time) (string, []any, error) {
	builder := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select("domain", "owner_id", "id", "payload", "deleted", "version", "updated_at").
		From("remote_records").
		Where(sq.Eq{"domain": string(domain), "owner_id": ownerID})

	if since != nil {
		builder = builder.Where(sq.Gt{"updated_at": since.UTC()})
	}

	query, args, err := builder.OrderBy("updated_at ASC", "id ASC").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// nullableJSON turns an empty payload into SQL NULL.
func nullableJSON(payload []byte) any {
	if len(payload) == 0 {
		return nil
	}
	return string(payload)
}
