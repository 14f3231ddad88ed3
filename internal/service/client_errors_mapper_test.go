package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-game-keeper/internal/adapter"
	"github.com/MKhiriev/go-game-keeper/internal/app"
	"github.com/MKhiriev/go-game-keeper/internal/store"
	"github.com/stretchr/testify/assert"
)

func rejected(kind error, reason string) error {
	return adapter.NewRejectedError("", reason, kind)
}

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "unknown domain", in: rejected(adapter.ErrBadRequest, app.MsgUnknownDomain), want: ErrUnknownDomain},
		{name: "bad request", in: rejected(adapter.ErrBadRequest, app.MsgInvalidDataProvided), want: ErrInvalidArgument},
		{name: "not writable", in: rejected(adapter.ErrForbidden, app.MsgDomainNotWritable), want: ErrDomainNotWritable},
		{name: "owner mismatch", in: rejected(adapter.ErrForbidden, app.MsgAccessDenied), want: ErrOwnerMismatch},
		{name: "friend code", in: rejected(adapter.ErrNotFound, app.MsgFriendCodeNotFound), want: ErrFriendCodeNotFound},
		{name: "group", in: rejected(adapter.ErrNotFound, app.MsgGroupNotFound), want: ErrGroupNotFound},
		{name: "group invite", in: rejected(adapter.ErrNotFound, app.MsgGroupInviteNotFound), want: ErrGroupInviteNotFound},
		{name: "other not found", in: rejected(adapter.ErrNotFound, "gone"), want: ErrNotFound},
		{name: "login exists", in: rejected(adapter.ErrConflict, app.MsgLoginAlreadyExists), want: store.ErrLoginAlreadyExists},
		{name: "self invite", in: rejected(adapter.ErrConflict, app.MsgSelfInvite), want: ErrSelfInvite},
		{name: "not incoming", in: rejected(adapter.ErrConflict, app.MsgNotIncomingInvite), want: ErrNotIncomingInvite},
		{name: "not friends", in: rejected(adapter.ErrConflict, app.MsgNotFriends), want: ErrNotFriends},
		{name: "not member", in: rejected(adapter.ErrConflict, app.MsgNotGroupMember), want: ErrNotGroupMember},
		{name: "already member", in: rejected(adapter.ErrConflict, app.MsgAlreadyGroupMember), want: ErrAlreadyGroupMember},
		{name: "other conflict", in: rejected(adapter.ErrConflict, "?"), want: ErrFailedPrecondition},
		{name: "unauthorized", in: fmt.Errorf("%w: expired", adapter.ErrUnauthorized), want: ErrTokenIsExpiredOrInvalid},
		{name: "transient passes through", in: adapter.ErrTransientNetwork, want: adapter.ErrTransientNetwork},
		{name: "cancel passes through", in: fmt.Errorf("op: %w", context.Canceled), want: context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.True(t, errors.Is(got, tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestMapAdapterError_UnauthorizedStaysTransient(t *testing.T) {
	err := mapAdapterError(adapter.ErrUnauthorized)
	assert.True(t, adapter.IsTransient(err))
}
