package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-game-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=RemoteSyncServiceWrapper

// AuthService registers users, checks credentials and issues bearer tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	FriendCode(ctx context.Context, userID string) (models.FriendCodeResponse, error)
}

// RelationshipService runs the two-party friend transactions. Every call is
// one atomic transaction that also rewrites the friends projection of both
// users.
type RelationshipService interface {
	SendInviteByCode(ctx context.Context, requesterID, code string, clientCreatedAt time.Time) (models.InviteResult, error)
	Accept(ctx context.Context, acceptorID, counterpartID string) error
	Reject(ctx context.Context, rejectorID, counterpartID string) error
	Remove(ctx context.Context, ownerID, counterpartID string) error
}

// GroupService runs the group transactions and keeps the groups and invites
// projections in step with them.
type GroupService interface {
	CreateGroup(ctx context.Context, ownerID, name string, clientCreatedAt time.Time) (models.Group, error)
	InviteToGroup(ctx context.Context, inviterID, groupID, inviteeID string, clientCreatedAt time.Time) error
	AcceptGroupInvite(ctx context.Context, userID, groupID string) error
	RejectGroupInvite(ctx context.Context, userID, groupID string) error
	LeaveGroup(ctx context.Context, userID, groupID string) error
}

// RemoteSyncService is the server end of the record sync protocol.
type RemoteSyncService interface {
	Push(ctx context.Context, ownerID string, domain models.Domain, req models.PushRequest) (models.PushResponse, error)
	Delete(ctx context.Context, ownerID string, domain models.Domain, id string) (models.PushResponse, error)
	Changes(ctx context.Context, ownerID string, domain models.Domain, since *time.Time) (models.ChangesResponse, error)
}

// RemoteSyncServiceWrapper defines middleware composition for RemoteSyncService.
// Implementations wrap an existing RemoteSyncService to add behavior such as
// validation.
type RemoteSyncServiceWrapper interface {
	Wrap(RemoteSyncService) RemoteSyncService
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
