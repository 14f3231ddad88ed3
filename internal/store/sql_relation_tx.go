package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-game-keeper/models"
)

// relationTx implements [RelationTx] on an open *sql.Tx. Errors are returned
// wrapped so that the transactor can classify the underlying driver error.
type relationTx struct {
	tx queryer
}

func (t *relationTx) GetUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := scanUser(t.tx.QueryRowContext(ctx, findUserByID, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	user = user.Public()
	return &user, nil
}

func (t *relationTx) GetRelation(ctx context.Context, subjectID, counterpartID string) (*models.Relationship, error) {
	var (
		rel    models.Relationship
		status string
	)
	err := t.tx.QueryRowContext(ctx, getRelation, subjectID, counterpartID).
		Scan(&rel.SubjectID, &rel.CounterpartID, &status, &rel.Code, &rel.DisplayName, &rel.CreatedAt, &rel.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	rel.Status = models.RelationStatus(status)
	return &rel, nil
}

func (t *relationTx) PutRelation(ctx context.Context, rel models.Relationship) error {
	_, err := t.tx.ExecContext(ctx, putRelation,
		rel.SubjectID,
		rel.CounterpartID,
		string(rel.Status),
		rel.Code,
		rel.DisplayName,
		rel.CreatedAt.UTC(),
		rel.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (t *relationTx) DeleteRelation(ctx context.Context, subjectID, counterpartID string) error {
	if _, err := t.tx.ExecContext(ctx, deleteRelation, subjectID, counterpartID); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (t *relationTx) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	var group models.Group
	err := t.tx.QueryRowContext(ctx, getGroup, groupID).
		Scan(&group.GroupID, &group.Name, &group.OwnerID, &group.CreatedAt, &group.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return &group, nil
}

func (t *relationTx) PutGroup(ctx context.Context, group models.Group) error {
	_, err := t.tx.ExecContext(ctx, putGroup, group.GroupID, group.Name, group.OwnerID, group.CreatedAt.UTC(), group.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (t *relationTx) DeleteGroup(ctx context.Context, groupID string) error {
	if _, err := t.tx.ExecContext(ctx, deleteGroup, groupID); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (t *relationTx) ListGroupMembers(ctx context.Context, groupID string) ([]models.GroupMember, error) {
	rows, err := t.tx.QueryContext(ctx, listGroupMembers, groupID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	members := make([]models.GroupMember, 0, 8)
	for rows.Next() {
		var (
			member models.GroupMember
			role   string
		)
		if err := rows.Scan(&member.GroupID, &member.UserID, &role, &member.JoinedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		member.Role = models.MemberRole(role)
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return members, nil
}

func (t *relationTx) AddGroupMember(ctx context.Context, member models.GroupMember) (bool, error) {
	res, err := t.tx.ExecContext(ctx, addGroupMember, member.GroupID, member.UserID, string(member.Role), member.JoinedAt.UTC())
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

func (t *relationTx) RemoveGroupMember(ctx context.Context, groupID, userID string) error {
	if _, err := t.tx.ExecContext(ctx, removeGroupMember, groupID, userID); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (t *relationTx) GetGroupInvite(ctx context.Context, groupID, inviteeID string) (*models.GroupInvite, error) {
	var (
		invite models.GroupInvite
		status string
	)
	err := t.tx.QueryRowContext(ctx, getGroupInvite, groupID, inviteeID).
		Scan(&invite.GroupID, &invite.InviteeID, &invite.InviterID, &status, &invite.CreatedAt, &invite.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	invite.Status = models.RelationStatus(status)
	return &invite, nil
}

func (t *relationTx) PutGroupInvite(ctx context.Context, invite models.GroupInvite) error {
	_, err := t.tx.ExecContext(ctx, putGroupInvite,
		invite.GroupID,
		invite.InviteeID,
		invite.InviterID,
		string(invite.Status),
		invite.CreatedAt.UTC(),
		invite.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (t *relationTx) DeleteGroupInvite(ctx context.Context, groupID, inviteeID string) error {
	if _, err := t.tx.ExecContext(ctx, deleteGroupInvite, groupID, inviteeID); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (t *relationTx) ListGroupInvites(ctx context.Context, groupID string) ([]models.GroupInvite, error) {
	rows, err := t.tx.QueryContext(ctx, listGroupInvites, groupID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	invites := make([]models.GroupInvite, 0, 4)
	for rows.Next() {
		var (
			invite models.GroupInvite
			status string
		)
		err := rows.Scan(&invite.GroupID, &invite.InviteeID, &invite.InviterID, &status, &invite.CreatedAt, &invite.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		invite.Status = models.RelationStatus(status)
		invites = append(invites, invite)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return invites, nil
}

func (t *relationTx) PutRemoteRecord(ctx context.Context, rec models.RemoteRecord) (models.RemoteRecord, error) {
	return putRemoteRecord(ctx, t.tx, rec)
}
