package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-game-keeper/internal/store"
	"github.com/MKhiriev/go-game-keeper/models"
)

// serverClock returns now truncated to the precision Postgres keeps, so a
// timestamp read back from the database equals the one that was written.
func serverClock(now func() time.Time) func() time.Time {
	return func() time.Time {
		return now().UTC().Truncate(time.Microsecond)
	}
}

func projectFriend(ctx context.Context, tx store.RelationTx, rel models.Relationship) error {
	payload, err := json.Marshal(models.FriendPayload{
		FriendUID:   rel.CounterpartID,
		FriendCode:  rel.Code,
		DisplayName: rel.DisplayName,
		Status:      rel.Status,
		CreatedAt:   rel.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", store.ErrEncodingPayload, err)
	}

	_, err = tx.PutRemoteRecord(ctx, models.RemoteRecord{
		Domain:    models.DomainFriends,
		OwnerID:   rel.SubjectID,
		ID:        rel.CounterpartID,
		Payload:   payload,
		UpdatedAt: rel.UpdatedAt,
	})
	return err
}

// projectGroup rewrites the groups record of every member.
func projectGroup(ctx context.Context, tx store.RelationTx, group models.Group, members []models.GroupMember) error {
	payload, err := json.Marshal(models.GroupPayload{
		GroupID: group.GroupID,
		Name:    group.Name,
		OwnerID: group.OwnerID,
		Members: members,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", store.ErrEncodingPayload, err)
	}

	for _, member := range members {
		_, err = tx.PutRemoteRecord(ctx, models.RemoteRecord{
			Domain:    models.DomainGroups,
			OwnerID:   member.UserID,
			ID:        group.GroupID,
			Payload:   payload,
			UpdatedAt: group.UpdatedAt,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func projectInvite(ctx context.Context, tx store.RelationTx, group models.Group, invite models.GroupInvite) error {
	payload, err := json.Marshal(models.InvitePayload{
		GroupID:   group.GroupID,
		GroupName: group.Name,
		InviterID: invite.InviterID,
		Status:    invite.Status,
		CreatedAt: invite.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", store.ErrEncodingPayload, err)
	}

	_, err = tx.PutRemoteRecord(ctx, models.RemoteRecord{
		Domain:    models.DomainInvites,
		OwnerID:   invite.InviteeID,
		ID:        invite.GroupID,
		Payload:   payload,
		UpdatedAt: invite.UpdatedAt,
	})
	return err
}

// tombstone deletes a projected record so that the delete itself is pulled.
func tombstone(ctx context.Context, tx store.RelationTx, domain models.Domain, ownerID, id string, at time.Time) error {
	_, err := tx.PutRemoteRecord(ctx, models.RemoteRecord{
		Domain:    domain,
		OwnerID:   ownerID,
		ID:        id,
		Deleted:   true,
		UpdatedAt: at,
	})
	return err
}
