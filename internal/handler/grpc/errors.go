package grpc

import "errors"

// ErrEmptyAuthorizationMetadata is returned when a call carries no
// authorization metadata.
var ErrEmptyAuthorizationMetadata = errors.New("empty authorization metadata")
