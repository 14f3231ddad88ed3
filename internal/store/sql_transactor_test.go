package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-game-keeper/internal/config"
	"github.com/MKhiriev/go-game-keeper/models"
)

func newTestTransactor(t *testing.T, retries uint64) (Transactor, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return NewTransactor(newDBFromSQL(db), config.Services{
		TxMaxRetries:     retries,
		TxRetryBaseDelay: time.Millisecond,
	}), mock
}

func TestTransactor_CommitsOnSuccess(t *testing.T) {
	tr, mock := newTestTransactor(t, 3)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM relations").WithArgs("a", "b").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := tr.InTx(context.Background(), func(ctx context.Context, tx RelationTx) error {
		return tx.DeleteRelation(ctx, "a", "b")
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_RetriesSerializationFailure(t *testing.T) {
	tr, mock := newTestTransactor(t, 3)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM relations").WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM relations").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	attempts := 0
	err := tr.InTx(context.Background(), func(ctx context.Context, tx RelationTx) error {
		attempts++
		return tx.DeleteRelation(ctx, "a", "b")
	})
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_GivesUpAfterMaxRetries(t *testing.T) {
	tr, mock := newTestTransactor(t, 1)

	for range 2 {
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM relations").WillReturnError(pgError(pgerrcode.DeadlockDetected))
		mock.ExpectRollback()
	}

	err := tr.InTx(context.Background(), func(ctx context.Context, tx RelationTx) error {
		return tx.DeleteRelation(ctx, "a", "b")
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetryable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_DoesNotRetryBusinessErrors(t *testing.T) {
	tr, mock := newTestTransactor(t, 3)
	errBusiness := errors.New("precondition failed")

	mock.ExpectBegin()
	mock.ExpectRollback()

	attempts := 0
	err := tr.InTx(context.Background(), func(ctx context.Context, tx RelationTx) error {
		attempts++
		return errBusiness
	})
	assert.ErrorIs(t, err, errBusiness)
	assert.Equal(t, 1, attempts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_BeginFails(t *testing.T) {
	tr, mock := newTestTransactor(t, 0)

	mock.ExpectBegin().WillReturnError(assert.AnError)

	err := tr.InTx(context.Background(), func(ctx context.Context, tx RelationTx) error { return nil })
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

// ── relationTx statements ─────────────────────────────────────────────────────

func TestRelationTx_GetRelation(t *testing.T) {
	db, mock := newTestDB(t)
	tx := &relationTx{tx: db}
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM relations").
		WithArgs("a", "b").
		WillReturnRows(sqlmock.NewRows([]string{"subject_id", "counterpart_id", "status", "code", "display_name", "created_at", "updated_at"}).
			AddRow("a", "b", "PENDING_OUTGOING", "BBB234", "Bob", now, now))

	rel, err := tx.GetRelation(context.Background(), "a", "b")
	require.NoError(t, err)
	require.NotNil(t, rel)
	assert.Equal(t, models.RelationPendingOutgoing, rel.Status)
	assert.Equal(t, "Bob", rel.DisplayName)
}

func TestRelationTx_GetRelation_Absent(t *testing.T) {
	db, mock := newTestDB(t)
	tx := &relationTx{tx: db}

	mock.ExpectQuery("FROM relations").
		WithArgs("a", "b").
		WillReturnRows(sqlmock.NewRows([]string{"subject_id"}))

	rel, err := tx.GetRelation(context.Background(), "a", "b")
	require.NoError(t, err)
	assert.Nil(t, rel)
}

func TestRelationTx_AddGroupMember(t *testing.T) {
	db, mock := newTestDB(t)
	tx := &relationTx{tx: db}
	member := models.GroupMember{GroupID: "g", UserID: "u", Role: models.RoleMember, JoinedAt: time.Now()}

	mock.ExpectExec("ON CONFLICT \\(group_id, user_id\\) DO NOTHING").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("ON CONFLICT \\(group_id, user_id\\) DO NOTHING").
		WillReturnResult(sqlmock.NewResult(0, 0))

	inserted, err := tx.AddGroupMember(context.Background(), member)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = tx.AddGroupMember(context.Background(), member)
	require.NoError(t, err)
	assert.False(t, inserted)
}

func TestRelationTx_ListGroupMembers(t *testing.T) {
	db, mock := newTestDB(t)
	tx := &relationTx{tx: db}
	now := time.Now().UTC()

	mock.ExpectQuery("FROM group_members").
		WithArgs("g").
		WillReturnRows(sqlmock.NewRows([]string{"group_id", "user_id", "role", "joined_at"}).
			AddRow("g", "owner", "OWNER", now).
			AddRow("g", "member", "MEMBER", now))

	members, err := tx.ListGroupMembers(context.Background(), "g")
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, models.RoleOwner, members[0].Role)
}

func TestRelationTx_PutRelation_Error(t *testing.T) {
	db, mock := newTestDB(t)
	tx := &relationTx{tx: db}

	mock.ExpectExec("INSERT INTO relations").WillReturnError(pgError(pgerrcode.SerializationFailure))

	err := tx.PutRelation(context.Background(), models.Relationship{SubjectID: "a", CounterpartID: "b"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.Equal(t, Retryable, NewPostgresErrorClassifier().Classify(err))
}
