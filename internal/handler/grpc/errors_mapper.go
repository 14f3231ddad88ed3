package grpc

import (
	"errors"

	"github.com/MKhiriev/go-game-keeper/internal/app"
	"github.com/MKhiriev/go-game-keeper/internal/service"
	"github.com/MKhiriev/go-game-keeper/internal/store"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type errorCode struct {
	target  error
	code    codes.Code
	message string
}

// errorCodes is matched in order; specific errors come before the taxonomy
// sentinels they wrap.
var errorCodes = []errorCode{
	{service.ErrWrongPassword, codes.Unauthenticated, app.MsgInvalidLoginPassword},
	{service.ErrUnauthenticated, codes.Unauthenticated, app.MsgTokenIsExpiredOrInvalid},

	{service.ErrUnknownDomain, codes.InvalidArgument, app.MsgUnknownDomain},
	{service.ErrInvalidArgument, codes.InvalidArgument, app.MsgInvalidDataProvided},

	{service.ErrForbidden, codes.PermissionDenied, app.MsgAccessDenied},

	{service.ErrFriendCodeNotFound, codes.NotFound, app.MsgFriendCodeNotFound},
	{service.ErrRelationNotFound, codes.NotFound, app.MsgRelationNotFound},
	{service.ErrGroupNotFound, codes.NotFound, app.MsgGroupNotFound},
	{service.ErrGroupInviteNotFound, codes.NotFound, app.MsgGroupInviteNotFound},
	{service.ErrNotFound, codes.NotFound, app.MsgDataNotFound},

	{service.ErrSelfInvite, codes.FailedPrecondition, app.MsgSelfInvite},
	{service.ErrNotIncomingInvite, codes.FailedPrecondition, app.MsgNotIncomingInvite},
	{service.ErrNotFriends, codes.FailedPrecondition, app.MsgNotFriends},
	{service.ErrNotGroupMember, codes.FailedPrecondition, app.MsgNotGroupMember},
	{service.ErrAlreadyGroupMember, codes.FailedPrecondition, app.MsgAlreadyGroupMember},
	{service.ErrFailedPrecondition, codes.FailedPrecondition, app.MsgPreconditionFailed},

	{store.ErrRetryable, codes.Unavailable, app.MsgServiceUnavailable},
	{service.ErrUnsupportedInOfflineMode, codes.Unimplemented, service.ErrUnsupportedInOfflineMode.Error()},
}

// statusFromError maps err to a gRPC status. Errors that already carry a
// status, such as decoding failures raised by grpc itself, keep it.
func statusFromError(err error) *status.Status {
	if st, found := status.FromError(err); found {
		return st
	}

	for _, ec := range errorCodes {
		if errors.Is(err, ec.target) {
			return status.New(ec.code, ec.message)
		}
	}

	return status.New(codes.Internal, app.MsgInternalServerError)
}

func isServerFault(code codes.Code) bool {
	switch code {
	case codes.Internal, codes.Unavailable, codes.Unknown, codes.DataLoss:
		return true
	default:
		return false
	}
}
