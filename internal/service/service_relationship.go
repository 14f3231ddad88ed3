package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-game-keeper/internal/logger"
	"github.com/MKhiriev/go-game-keeper/internal/store"
	"github.com/MKhiriev/go-game-keeper/internal/utils"
	"github.com/MKhiriev/go-game-keeper/models"
)

// relationshipService implements RelationshipService on top of a Transactor.
// Both directed edges of a pair and both friends projections are written in
// the same transaction, so the pair is either complementary or absent.
type relationshipService struct {
	users      store.UserRepository
	transactor store.Transactor

	now    func() time.Time
	logger *logger.Logger
}

// NewRelationshipService constructs a RelationshipService. users is used
// for the friend code lookup, which runs outside the transaction.
func NewRelationshipService(users store.UserRepository, transactor store.Transactor, logger *logger.Logger) RelationshipService {
	return &relationshipService{
		users:      users,
		transactor: transactor,
		now:        serverClock(time.Now),
		logger:     logger,
	}
}

// SendInviteByCode writes PENDING_OUTGOING on the requester's side and
// PENDING_INCOMING on the target's side. A pair that is already ACCEPTED on
// both sides is left untouched.
func (s *relationshipService) SendInviteByCode(ctx context.Context, requesterID, code string, clientCreatedAt time.Time) (models.InviteResult, error) {
	log := logger.FromContext(ctx)

	code = utils.NormalizeFriendCode(code)
	if code == "" || requesterID == "" {
		return models.InviteResult{}, fmt.Errorf("%w: code and requester are required", ErrInvalidArgument)
	}

	target, err := s.users.FindUserByFriendCode(ctx, code)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.InviteResult{}, ErrFriendCodeNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*relationshipService.SendInviteByCode").Msg("friend code lookup failed")
		return models.InviteResult{}, fmt.Errorf("friend code lookup: %w", err)
	}
	if target.UserID == requesterID {
		return models.InviteResult{}, ErrSelfInvite
	}

	result := models.InviteResult{
		FriendUID:   target.UserID,
		FriendCode:  target.FriendCode,
		DisplayName: target.Name,
	}

	err = s.transactor.InTx(ctx, func(ctx context.Context, tx store.RelationTx) error {
		requester, err := tx.GetUser(ctx, requesterID)
		if err != nil {
			return err
		}
		if requester == nil {
			return fmt.Errorf("%w: requester %s does not exist", ErrUnauthenticated, requesterID)
		}

		mine, err := tx.GetRelation(ctx, requesterID, target.UserID)
		if err != nil {
			return err
		}
		theirs, err := tx.GetRelation(ctx, target.UserID, requesterID)
		if err != nil {
			return err
		}

		if isAccepted(mine) && isAccepted(theirs) {
			return nil
		}

		now := s.now()
		createdAt := clientCreatedAt.UTC()
		if createdAt.IsZero() {
			createdAt = now
		}

		outgoing := models.Relationship{
			SubjectID:     requesterID,
			CounterpartID: target.UserID,
			Status:        models.RelationPendingOutgoing,
			CreatedAt:     createdOr(mine, createdAt),
			UpdatedAt:     now,
			Code:          target.FriendCode,
			DisplayName:   target.Name,
		}
		incoming := models.Relationship{
			SubjectID:     target.UserID,
			CounterpartID: requesterID,
			Status:        models.RelationPendingIncoming,
			CreatedAt:     createdOr(theirs, createdAt),
			UpdatedAt:     now,
			Code:          requester.FriendCode,
			DisplayName:   requester.Name,
		}

		return s.putPair(ctx, tx, outgoing, incoming)
	})
	if err != nil {
		log.Err(err).
			Str("func", "*relationshipService.SendInviteByCode").
			Str("requester", requesterID).
			Str("target", target.UserID).
			Msg("invite transaction failed")
		return models.InviteResult{}, err
	}

	return result, nil
}

// Accept turns an incoming invite into an accepted friendship on both sides.
// Accepting an already accepted pair succeeds without writes.
func (s *relationshipService) Accept(ctx context.Context, acceptorID, counterpartID string) error {
	if err := checkPair(acceptorID, counterpartID); err != nil {
		return err
	}

	err := s.transactor.InTx(ctx, func(ctx context.Context, tx store.RelationTx) error {
		mine, err := tx.GetRelation(ctx, acceptorID, counterpartID)
		if err != nil {
			return err
		}
		if mine == nil {
			return ErrRelationNotFound
		}
		if mine.Status == models.RelationAccepted {
			return nil
		}
		if mine.Status != models.RelationPendingIncoming {
			return ErrNotIncomingInvite
		}

		theirs, err := tx.GetRelation(ctx, counterpartID, acceptorID)
		if err != nil {
			return err
		}
		if theirs == nil {
			// the outgoing side is gone; rebuild it from the acceptor's user row
			acceptor, err := tx.GetUser(ctx, acceptorID)
			if err != nil {
				return err
			}
			if acceptor == nil {
				return fmt.Errorf("%w: acceptor %s does not exist", ErrUnauthenticated, acceptorID)
			}
			theirs = &models.Relationship{
				SubjectID:     counterpartID,
				CounterpartID: acceptorID,
				CreatedAt:     mine.CreatedAt,
				Code:          acceptor.FriendCode,
				DisplayName:   acceptor.Name,
			}
		}

		now := s.now()
		accepted, mirrored := *mine, *theirs
		accepted.Status, mirrored.Status = models.RelationAccepted, models.RelationAccepted
		accepted.UpdatedAt, mirrored.UpdatedAt = now, now

		return s.putPair(ctx, tx, accepted, mirrored)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*relationshipService.Accept").
			Str("acceptor", acceptorID).
			Str("counterpart", counterpartID).
			Msg("accept transaction failed")
	}
	return err
}

// Reject deletes both sides of the pair. Rejecting an absent pair is a no-op.
func (s *relationshipService) Reject(ctx context.Context, rejectorID, counterpartID string) error {
	return s.deletePair(ctx, "*relationshipService.Reject", rejectorID, counterpartID)
}

// Remove deletes both sides of the pair in one transaction, like Reject.
func (s *relationshipService) Remove(ctx context.Context, ownerID, counterpartID string) error {
	return s.deletePair(ctx, "*relationshipService.Remove", ownerID, counterpartID)
}

func (s *relationshipService) deletePair(ctx context.Context, funcName, subjectID, counterpartID string) error {
	if err := checkPair(subjectID, counterpartID); err != nil {
		return err
	}

	err := s.transactor.InTx(ctx, func(ctx context.Context, tx store.RelationTx) error {
		now := s.now()
		for _, side := range [][2]string{{subjectID, counterpartID}, {counterpartID, subjectID}} {
			rel, err := tx.GetRelation(ctx, side[0], side[1])
			if err != nil {
				return err
			}
			if rel == nil {
				continue
			}
			if err = tx.DeleteRelation(ctx, side[0], side[1]); err != nil {
				return err
			}
			if err = tombstone(ctx, tx, models.DomainFriends, side[0], side[1], now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", funcName).
			Str("subject", subjectID).
			Str("counterpart", counterpartID).
			Msg("delete transaction failed")
	}
	return err
}

func (s *relationshipService) putPair(ctx context.Context, tx store.RelationTx, a, b models.Relationship) error {
	for _, rel := range []models.Relationship{a, b} {
		if err := tx.PutRelation(ctx, rel); err != nil {
			return err
		}
		if err := projectFriend(ctx, tx, rel); err != nil {
			return err
		}
	}
	return nil
}

func checkPair(subjectID, counterpartID string) error {
	if subjectID == "" || counterpartID == "" {
		return fmt.Errorf("%w: friendUid is required", ErrInvalidArgument)
	}
	if subjectID == counterpartID {
		return fmt.Errorf("%w: friendUid must differ from the caller", ErrInvalidArgument)
	}
	return nil
}

func isAccepted(rel *models.Relationship) bool {
	return rel != nil && rel.Status == models.RelationAccepted
}

func createdOr(rel *models.Relationship, fallback time.Time) time.Time {
	if rel != nil && !rel.CreatedAt.IsZero() {
		return rel.CreatedAt
	}
	return fallback
}
