// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the go-game-keeper server.
//
// [RemoteStore] is the per-domain record API the sync coordinators push to
// and pull from. It has two implementations: the HTTP/REST adapter
// ([NewHTTPServerAdapter]) used in online mode and [NoopRemoteStore] used in
// local mode. [AuthClient] and [RelationshipClient] cover the remaining
// server calls of the CLI.
//
// Transport failures are mapped onto [ErrTransientNetwork], [ErrUnauthorized]
// and [*RejectedError] so that callers can decide between stopping a pass and
// recording a warning with [errors.Is].
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-game-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteStore is the authoritative record store as seen by one client.
type RemoteStore interface {
	// Push uploads a PENDING record and returns the remote acknowledgement.
	Push(ctx context.Context, domain models.Domain, ownerID string, record models.Record) (models.PushResponse, error)

	// PushDelete tombstones the record remotely.
	PushDelete(ctx context.Context, domain models.Domain, ownerID, id string) (models.PushResponse, error)

	// PullChangedSince returns the changes strictly after since, ascending by
	// UpdatedAtRemote. A nil since returns the whole partition.
	PullChangedSince(ctx context.Context, domain models.Domain, ownerID string, since *time.Time) ([]models.RemoteChange, error)
}

// AuthClient registers and logs users in. On success the bearer token is
// kept by the adapter and attached to every following request.
type AuthClient interface {
	SetToken(token string)
	Token() string

	Register(ctx context.Context, user models.User) (models.Session, error)
	Login(ctx context.Context, user models.User) (models.Session, error)

	// FriendCode returns the caller's own friend code.
	FriendCode(ctx context.Context) (models.FriendCodeResponse, error)
}

// RelationshipClient calls the server relationship transactions.
type RelationshipClient interface {
	SendInviteByCode(ctx context.Context, req models.SendInviteRequest) (models.InviteResult, error)
	Accept(ctx context.Context, friendUID string) error
	Reject(ctx context.Context, friendUID string) error
	Remove(ctx context.Context, friendUID string) error

	CreateGroup(ctx context.Context, req models.CreateGroupRequest) (models.Group, error)
	InviteToGroup(ctx context.Context, req models.GroupInviteRequest) error
	AcceptGroupInvite(ctx context.Context, groupID string) error
	RejectGroupInvite(ctx context.Context, groupID string) error
	LeaveGroup(ctx context.Context, groupID string) error
}

// ReachabilityChecker reports whether the backend answers.
type ReachabilityChecker interface {
	Ping(ctx context.Context) error
}

// ServerAdapter bundles every server call of the CLI.
type ServerAdapter interface {
	RemoteStore
	AuthClient
	RelationshipClient
	ReachabilityChecker
}
