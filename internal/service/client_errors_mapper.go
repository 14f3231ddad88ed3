// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-game-keeper/internal/adapter"
	"github.com/MKhiriev/go-game-keeper/internal/app"
	"github.com/MKhiriev/go-game-keeper/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error.
// Transient and cancellation errors are returned unchanged so callers can still
// match them with [adapter.IsTransient] and [context.Canceled].
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var rejected *adapter.RejectedError
	if !errors.As(err, &rejected) {
		if errors.Is(err, adapter.ErrUnauthorized) {
			return errors.Join(ErrTokenIsExpiredOrInvalid, err)
		}
		return err
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		if rejected.Reason == app.MsgUnknownDomain {
			return ErrUnknownDomain
		}
		return errors.Join(ErrInvalidArgument, err)

	case errors.Is(err, adapter.ErrForbidden):
		switch rejected.Reason {
		case app.MsgDomainNotWritable:
			return ErrDomainNotWritable
		case app.MsgAccessDenied:
			return ErrOwnerMismatch
		}
		return errors.Join(ErrForbidden, err)

	case errors.Is(err, adapter.ErrNotFound):
		switch rejected.Reason {
		case app.MsgFriendCodeNotFound:
			return ErrFriendCodeNotFound
		case app.MsgRelationNotFound:
			return ErrRelationNotFound
		case app.MsgGroupNotFound:
			return ErrGroupNotFound
		case app.MsgGroupInviteNotFound:
			return ErrGroupInviteNotFound
		}
		return errors.Join(ErrNotFound, err)

	case errors.Is(err, adapter.ErrConflict):
		switch rejected.Reason {
		case app.MsgLoginAlreadyExists:
			return store.ErrLoginAlreadyExists
		case app.MsgSelfInvite:
			return ErrSelfInvite
		case app.MsgNotIncomingInvite:
			return ErrNotIncomingInvite
		case app.MsgNotFriends:
			return ErrNotFriends
		case app.MsgNotGroupMember:
			return ErrNotGroupMember
		case app.MsgAlreadyGroupMember:
			return ErrAlreadyGroupMember
		}
		return errors.Join(ErrFailedPrecondition, err)
	}

	return err
}
