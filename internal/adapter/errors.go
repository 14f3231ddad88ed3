package adapter

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the server adapters. Callers match them with
// [errors.Is]; a single error may match several of them (for example a 404
// matches both [ErrRejected] and [ErrNotFound]).
var (
	// ErrTransientNetwork marks failures worth retrying later: connection
	// errors, timeouts, 5xx and 429 responses.
	ErrTransientNetwork = errors.New("transient network error")

	// ErrRejected marks a request the server refused. Retrying the same
	// request will not succeed.
	ErrRejected = errors.New("request rejected by server")

	// ErrUnauthorized is returned on 401. The token has to be refreshed
	// before any further call.
	ErrUnauthorized = errors.New("client unauthorized")

	ErrBadRequest = errors.New("bad request")
	ErrForbidden  = errors.New("forbidden")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

// RejectedError describes a record (or request) the server refused.
type RejectedError struct {
	ID     string
	Reason string

	kind error
}

// NewRejectedError returns a RejectedError that also matches kind, one of
// [ErrBadRequest], [ErrForbidden], [ErrNotFound] or [ErrConflict]. kind may be nil.
func NewRejectedError(id, reason string, kind error) *RejectedError {
	return &RejectedError{ID: id, Reason: reason, kind: kind}
}

func (e *RejectedError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s: %s", ErrRejected, e.Reason)
	}
	return fmt.Sprintf("%s: id %s: %s", ErrRejected, e.ID, e.Reason)
}

// Unwrap exposes both [ErrRejected] and the status specific sentinel.
func (e *RejectedError) Unwrap() []error {
	if e.kind == nil {
		return []error{ErrRejected}
	}
	return []error{ErrRejected, e.kind}
}

// IsTransient reports whether err should stop a flush pass and be retried on
// the next one. Unauthorized errors behave the same way.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransientNetwork) || errors.Is(err, ErrUnauthorized)
}
