package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-game-keeper/internal/logger"
	"github.com/MKhiriev/go-game-keeper/internal/store"
	"github.com/MKhiriev/go-game-keeper/internal/utils"
	"github.com/MKhiriev/go-game-keeper/models"
)

type groupService struct {
	transactor store.Transactor
	ids        *utils.UUIDGenerator

	now    func() time.Time
	logger *logger.Logger
}

// NewGroupService constructs a GroupService. Every mutation runs in one
// transaction together with the projections it affects.
func NewGroupService(transactor store.Transactor, logger *logger.Logger) GroupService {
	return &groupService{
		transactor: transactor,
		ids:        utils.NewUUIDGenerator(),
		now:        serverClock(time.Now),
		logger:     logger,
	}
}

func (s *groupService) CreateGroup(ctx context.Context, ownerID, name string, clientCreatedAt time.Time) (models.Group, error) {
	name = strings.TrimSpace(name)
	if ownerID == "" || name == "" {
		return models.Group{}, fmt.Errorf("%w: group name is required", ErrInvalidArgument)
	}

	groupID := s.ids.Generate()

	var group models.Group
	err := s.transactor.InTx(ctx, func(ctx context.Context, tx store.RelationTx) error {
		owner, err := tx.GetUser(ctx, ownerID)
		if err != nil {
			return err
		}
		if owner == nil {
			return fmt.Errorf("%w: owner %s does not exist", ErrUnauthenticated, ownerID)
		}

		now := s.now()
		createdAt := clientCreatedAt.UTC()
		if createdAt.IsZero() {
			createdAt = now
		}

		group = models.Group{GroupID: groupID, Name: name, OwnerID: ownerID, CreatedAt: createdAt, UpdatedAt: now}
		if err = tx.PutGroup(ctx, group); err != nil {
			return err
		}
		if _, err = tx.AddGroupMember(ctx, models.GroupMember{GroupID: groupID, UserID: ownerID, Role: models.RoleOwner, JoinedAt: now}); err != nil {
			return err
		}

		return s.reproject(ctx, tx, group)
	})
	if err != nil {
		s.logFailure(ctx, err, "*groupService.CreateGroup", groupID, ownerID)
		return models.Group{}, err
	}

	return group, nil
}

// InviteToGroup invites an accepted friend of the inviter. Inviting a user
// who is already a member succeeds without writes.
func (s *groupService) InviteToGroup(ctx context.Context, inviterID, groupID, inviteeID string, clientCreatedAt time.Time) error {
	if inviterID == "" || groupID == "" || inviteeID == "" {
		return fmt.Errorf("%w: groupId and friendUid are required", ErrInvalidArgument)
	}
	if inviterID == inviteeID {
		return ErrSelfInvite
	}

	err := s.transactor.InTx(ctx, func(ctx context.Context, tx store.RelationTx) error {
		group, members, err := s.loadGroup(ctx, tx, groupID)
		if err != nil {
			return err
		}
		if !isMember(members, inviterID) {
			return ErrNotGroupMember
		}
		if isMember(members, inviteeID) {
			return nil
		}

		friendship, err := tx.GetRelation(ctx, inviterID, inviteeID)
		if err != nil {
			return err
		}
		if !isAccepted(friendship) {
			return ErrNotFriends
		}

		existing, err := tx.GetGroupInvite(ctx, groupID, inviteeID)
		if err != nil {
			return err
		}

		now := s.now()
		createdAt := clientCreatedAt.UTC()
		if existing != nil {
			createdAt = existing.CreatedAt
		} else if createdAt.IsZero() {
			createdAt = now
		}

		invite := models.GroupInvite{
			GroupID:   groupID,
			InviteeID: inviteeID,
			InviterID: inviterID,
			Status:    models.RelationPendingIncoming,
			CreatedAt: createdAt,
			UpdatedAt: now,
		}
		if err = tx.PutGroupInvite(ctx, invite); err != nil {
			return err
		}
		return projectInvite(ctx, tx, *group, invite)
	})
	if err != nil {
		s.logFailure(ctx, err, "*groupService.InviteToGroup", groupID, inviterID)
	}
	return err
}

// AcceptGroupInvite adds the membership and marks the invite ACCEPTED. The
// membership insert is keyed by (group, user), so one accepted invite maps to
// exactly one membership even when the call is repeated.
func (s *groupService) AcceptGroupInvite(ctx context.Context, userID, groupID string) error {
	if userID == "" || groupID == "" {
		return fmt.Errorf("%w: groupId is required", ErrInvalidArgument)
	}

	err := s.transactor.InTx(ctx, func(ctx context.Context, tx store.RelationTx) error {
		invite, err := tx.GetGroupInvite(ctx, groupID, userID)
		if err != nil {
			return err
		}
		if invite == nil {
			return ErrGroupInviteNotFound
		}

		group, err := tx.GetGroup(ctx, groupID)
		if err != nil {
			return err
		}
		if group == nil {
			return ErrGroupNotFound
		}

		now := s.now()
		inserted, err := tx.AddGroupMember(ctx, models.GroupMember{GroupID: groupID, UserID: userID, Role: models.RoleMember, JoinedAt: now})
		if err != nil {
			return err
		}
		if invite.Status == models.RelationAccepted && !inserted {
			return nil
		}

		invite.Status = models.RelationAccepted
		invite.UpdatedAt = now
		if err = tx.PutGroupInvite(ctx, *invite); err != nil {
			return err
		}
		if err = projectInvite(ctx, tx, *group, *invite); err != nil {
			return err
		}

		group.UpdatedAt = now
		if err = tx.PutGroup(ctx, *group); err != nil {
			return err
		}
		return s.reproject(ctx, tx, *group)
	})
	if err != nil {
		s.logFailure(ctx, err, "*groupService.AcceptGroupInvite", groupID, userID)
	}
	return err
}

// RejectGroupInvite deletes a pending invite. Rejecting an absent invite is
// a no-op; an accepted one has to be left instead.
func (s *groupService) RejectGroupInvite(ctx context.Context, userID, groupID string) error {
	if userID == "" || groupID == "" {
		return fmt.Errorf("%w: groupId is required", ErrInvalidArgument)
	}

	err := s.transactor.InTx(ctx, func(ctx context.Context, tx store.RelationTx) error {
		invite, err := tx.GetGroupInvite(ctx, groupID, userID)
		if err != nil {
			return err
		}
		if invite == nil {
			return nil
		}
		if invite.Status == models.RelationAccepted {
			return ErrAlreadyGroupMember
		}

		if err = tx.DeleteGroupInvite(ctx, groupID, userID); err != nil {
			return err
		}
		return tombstone(ctx, tx, models.DomainInvites, userID, groupID, s.now())
	})
	if err != nil {
		s.logFailure(ctx, err, "*groupService.RejectGroupInvite", groupID, userID)
	}
	return err
}

// LeaveGroup removes the caller's membership and invite. The last member
// leaving deletes the group; an owner leaving hands ownership to the
// longest-standing remaining member.
func (s *groupService) LeaveGroup(ctx context.Context, userID, groupID string) error {
	if userID == "" || groupID == "" {
		return fmt.Errorf("%w: groupId is required", ErrInvalidArgument)
	}

	err := s.transactor.InTx(ctx, func(ctx context.Context, tx store.RelationTx) error {
		group, members, err := s.loadGroup(ctx, tx, groupID)
		if err != nil {
			return err
		}
		if !isMember(members, userID) {
			return nil
		}

		now := s.now()
		if err = tx.RemoveGroupMember(ctx, groupID, userID); err != nil {
			return err
		}
		if err = s.dropInvite(ctx, tx, groupID, userID, now); err != nil {
			return err
		}
		if err = tombstone(ctx, tx, models.DomainGroups, userID, groupID, now); err != nil {
			return err
		}

		remaining := make([]models.GroupMember, 0, len(members))
		for _, m := range members {
			if m.UserID != userID {
				remaining = append(remaining, m)
			}
		}

		if len(remaining) == 0 {
			pending, err := tx.ListGroupInvites(ctx, groupID)
			if err != nil {
				return err
			}
			for _, invite := range pending {
				if err = s.dropInvite(ctx, tx, groupID, invite.InviteeID, now); err != nil {
					return err
				}
			}
			return tx.DeleteGroup(ctx, groupID)
		}

		if group.OwnerID == userID {
			heir := remaining[0]
			if err = tx.RemoveGroupMember(ctx, groupID, heir.UserID); err != nil {
				return err
			}
			heir.Role = models.RoleOwner
			if _, err = tx.AddGroupMember(ctx, heir); err != nil {
				return err
			}
			group.OwnerID = heir.UserID
		}

		group.UpdatedAt = now
		if err = tx.PutGroup(ctx, *group); err != nil {
			return err
		}
		return s.reproject(ctx, tx, *group)
	})
	if err != nil {
		s.logFailure(ctx, err, "*groupService.LeaveGroup", groupID, userID)
	}
	return err
}

func (s *groupService) loadGroup(ctx context.Context, tx store.RelationTx, groupID string) (*models.Group, []models.GroupMember, error) {
	group, err := tx.GetGroup(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}
	if group == nil {
		return nil, nil, ErrGroupNotFound
	}

	members, err := tx.ListGroupMembers(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}
	return group, members, nil
}

// reproject rewrites the groups record of every current member.
func (s *groupService) reproject(ctx context.Context, tx store.RelationTx, group models.Group) error {
	members, err := tx.ListGroupMembers(ctx, group.GroupID)
	if err != nil {
		return err
	}
	return projectGroup(ctx, tx, group, members)
}

func (s *groupService) dropInvite(ctx context.Context, tx store.RelationTx, groupID, inviteeID string, at time.Time) error {
	invite, err := tx.GetGroupInvite(ctx, groupID, inviteeID)
	if err != nil {
		return err
	}
	if invite == nil {
		return nil
	}
	if err = tx.DeleteGroupInvite(ctx, groupID, inviteeID); err != nil {
		return err
	}
	return tombstone(ctx, tx, models.DomainInvites, inviteeID, groupID, at)
}

func (s *groupService) logFailure(ctx context.Context, err error, funcName, groupID, userID string) {
	logger.FromContext(ctx).Err(err).
		Str("func", funcName).
		Str("group_id", groupID).
		Str("user_id", userID).
		Msg("group transaction failed")
}

func isMember(members []models.GroupMember, userID string) bool {
	for _, m := range members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}
