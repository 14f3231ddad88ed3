package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-game-keeper/internal/app"
	"github.com/MKhiriev/go-game-keeper/internal/logger"
	"github.com/MKhiriev/go-game-keeper/internal/service"
	"github.com/MKhiriev/go-game-keeper/internal/store"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is matched in order. Specific errors go before the
// taxonomy sentinel they wrap.
var errorResponses = []errorResponse{
	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrUnauthenticated, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{service.ErrUnknownDomain, http.StatusBadRequest, app.MsgUnknownDomain},
	{service.ErrInvalidArgument, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{service.ErrDomainNotWritable, http.StatusForbidden, app.MsgDomainNotWritable},
	{service.ErrOwnerMismatch, http.StatusForbidden, app.MsgAccessDenied},
	{service.ErrForbidden, http.StatusForbidden, app.MsgAccessDenied},

	{service.ErrFriendCodeNotFound, http.StatusNotFound, app.MsgFriendCodeNotFound},
	{service.ErrRelationNotFound, http.StatusNotFound, app.MsgRelationNotFound},
	{service.ErrGroupNotFound, http.StatusNotFound, app.MsgGroupNotFound},
	{service.ErrGroupInviteNotFound, http.StatusNotFound, app.MsgGroupInviteNotFound},
	{service.ErrNotFound, http.StatusNotFound, app.MsgDataNotFound},

	{store.ErrLoginAlreadyExists, http.StatusConflict, app.MsgLoginAlreadyExists},
	{service.ErrSelfInvite, http.StatusConflict, app.MsgSelfInvite},
	{service.ErrNotIncomingInvite, http.StatusConflict, app.MsgNotIncomingInvite},
	{service.ErrNotFriends, http.StatusConflict, app.MsgNotFriends},
	{service.ErrNotGroupMember, http.StatusConflict, app.MsgNotGroupMember},
	{service.ErrAlreadyGroupMember, http.StatusConflict, app.MsgAlreadyGroupMember},
	{service.ErrFailedPrecondition, http.StatusConflict, app.MsgPreconditionFailed},

	{store.ErrRetryable, http.StatusServiceUnavailable, app.MsgServiceUnavailable},
}

// statusFromError returns the status code and body for err. Unknown errors
// are internal.
func statusFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and answers with the mapped status. 5xx are logged as
// errors, the rest as warnings.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg(message)

	http.Error(w, message, status)
}
