package service

import (
	"errors"
	"fmt"
)

// Taxonomy sentinels. Transport layers map them to status codes; specific
// errors below wrap one of them so that a single errors.Is check is enough.
var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrNotFound           = errors.New("not found")
	ErrFailedPrecondition = errors.New("failed precondition")
	ErrForbidden          = errors.New("forbidden")

	// ErrUnsupportedInOfflineMode is returned by operations that need the
	// server while the client runs in local mode.
	ErrUnsupportedInOfflineMode = errors.New("operation is not supported in offline mode")
)

var (
	ErrWrongPassword           = fmt.Errorf("%w: wrong password", ErrUnauthenticated)
	ErrTokenIsExpiredOrInvalid = fmt.Errorf("%w: token is expired or invalid", ErrUnauthenticated)
	ErrNotLoggedIn             = fmt.Errorf("%w: not logged in", ErrUnauthenticated)
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrUnknownDomain       = fmt.Errorf("%w: unknown domain", ErrInvalidArgument)
	ErrDomainNotWritable   = fmt.Errorf("%w: domain is written by the server only", ErrForbidden)
	ErrOwnerMismatch       = fmt.Errorf("%w: records of another owner", ErrForbidden)
	ErrFriendCodeNotFound  = fmt.Errorf("%w: friend code not found", ErrNotFound)
	ErrRelationNotFound    = fmt.Errorf("%w: relationship not found", ErrNotFound)
	ErrGroupNotFound       = fmt.Errorf("%w: group not found", ErrNotFound)
	ErrGroupInviteNotFound = fmt.Errorf("%w: group invite not found", ErrNotFound)
	ErrRecordNotFound      = fmt.Errorf("%w: record not found", ErrNotFound)
	ErrSelfInvite          = fmt.Errorf("%w: cannot invite yourself", ErrFailedPrecondition)
	ErrNotIncomingInvite   = fmt.Errorf("%w: only an incoming invite can be accepted", ErrFailedPrecondition)
	ErrNotFriends          = fmt.Errorf("%w: only accepted friends can be invited to a group", ErrFailedPrecondition)
	ErrNotGroupMember      = fmt.Errorf("%w: not a member of the group", ErrFailedPrecondition)
	ErrAlreadyGroupMember  = fmt.Errorf("%w: invite already accepted", ErrFailedPrecondition)

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// UnsupportedOperationError names the operation refused in the current mode.
type UnsupportedOperationError struct {
	Op string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, ErrUnsupportedInOfflineMode)
}

func (e *UnsupportedOperationError) Unwrap() error {
	return ErrUnsupportedInOfflineMode
}
