package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID      = errors.New("invalid record id")
	ErrInvalidOwnerID = errors.New("invalid owner id")
	ErrInvalidDomain  = errors.New("invalid domain")
	ErrEmptyPayload   = errors.New("payload is required")
	ErrInvalidPayload = errors.New("payload is not valid JSON for the domain")
	ErrInvalidVersion = errors.New("invalid version")

	ErrEmptyTitle        = errors.New("game title is required")
	ErrInvalidGameStatus = errors.New("invalid game status")
	ErrInvalidRating     = errors.New("rating must be between 0 and 10")
	ErrEmptyGameID       = errors.New("session game id is required")
	ErrInvalidMinutes    = errors.New("session minutes must not be negative")
	ErrEmptyStartedAt    = errors.New("session start time is required")

	ErrEmptyLogin     = errors.New("login is required")
	ErrEmptyPassword  = errors.New("password is required")
	ErrEmptyCode      = errors.New("friend code is required")
	ErrEmptyFriendUID = errors.New("friend uid is required")
	ErrEmptyGroupName = errors.New("group name is required")
	ErrEmptyGroupID   = errors.New("group id is required")
)
