// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// GameKeeper server handlers, the gRPC interceptors and the client error
// mapper.
//
// All Msg* constants are human-readable message strings that are written into
// response bodies or log entries to describe the outcome of an operation.
// The client matches on them to restore the precise service error.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// pair does not match a registered user.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// error occurs.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token cannot
	// be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires a user ID that
	// the auth middleware did not put into the context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgAccessDenied is returned when the authenticated user addresses the
	// records of another owner.
	MsgAccessDenied = "access denied"

	// MsgDomainNotWritable is returned on a push to a server-projected domain.
	MsgDomainNotWritable = "domain is written by the server only"

	// MsgUnknownDomain is returned when the {domain} path segment is not a
	// synchronized domain.
	MsgUnknownDomain = "unknown domain"

	MsgRegistrationFailed = "registration failed"
	MsgLoginFailed        = "login failed"
	MsgLoginAlreadyExists = "login already exists"

	// MsgDataNotFound is returned when an addressed record does not exist.
	MsgDataNotFound = "data not found"

	MsgFriendCodeNotFound  = "friend code not found"
	MsgRelationNotFound    = "relationship not found"
	MsgGroupNotFound       = "group not found"
	MsgGroupInviteNotFound = "group invite not found"

	MsgSelfInvite         = "cannot invite yourself"
	MsgNotIncomingInvite  = "only an incoming invite can be accepted"
	MsgNotFriends         = "only accepted friends can be invited to a group"
	MsgNotGroupMember     = "not a member of the group"
	MsgAlreadyGroupMember = "invite already accepted"

	// MsgPreconditionFailed is the generic conflict answer when no more
	// specific message applies.
	MsgPreconditionFailed = "precondition failed"

	// MsgServiceUnavailable is returned when a transaction kept conflicting
	// after all retries. The client treats it as transient.
	MsgServiceUnavailable = "service temporarily unavailable, retry later"
)
