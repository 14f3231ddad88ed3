package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-game-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository manages accounts and the friend code index.
type UserRepository interface {
	// CreateUser stores the user and its friend code in one transaction.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	// FindUserByFriendCode resolves a normalized friend code.
	FindUserByFriendCode(ctx context.Context, code string) (models.User, error)
}

// RemoteRecordRepository is the server side of the record sync protocol.
type RemoteRecordRepository interface {
	// Upsert writes rec, bumps its version and returns the stored row.
	// The stored updated_at never goes backwards for the same id.
	Upsert(ctx context.Context, rec models.RemoteRecord) (models.RemoteRecord, error)
	// ListChangedSince returns rows strictly newer than since, ascending by
	// updated_at. A nil since returns the whole partition.
	ListChangedSince(ctx context.Context, domain models.Domain, ownerID string, since *time.Time) ([]models.RemoteRecord, error)
}

// Transactor runs relationship mutations atomically.
type Transactor interface {
	// InTx runs fn inside one SERIALIZABLE transaction. Serialization
	// conflicts re-run fn from the start; fn must therefore not keep state
	// between attempts.
	InTx(ctx context.Context, fn func(ctx context.Context, tx RelationTx) error) error
}

// RelationTx is the set of statements available inside a relationship
// transaction. Getters return nil, nil when the row does not exist.
type RelationTx interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)

	GetRelation(ctx context.Context, subjectID, counterpartID string) (*models.Relationship, error)
	PutRelation(ctx context.Context, rel models.Relationship) error
	DeleteRelation(ctx context.Context, subjectID, counterpartID string) error

	GetGroup(ctx context.Context, groupID string) (*models.Group, error)
	PutGroup(ctx context.Context, group models.Group) error
	DeleteGroup(ctx context.Context, groupID string) error
	ListGroupMembers(ctx context.Context, groupID string) ([]models.GroupMember, error)
	// AddGroupMember inserts the membership unless it exists and reports
	// whether a row was inserted.
	AddGroupMember(ctx context.Context, member models.GroupMember) (bool, error)
	RemoveGroupMember(ctx context.Context, groupID, userID string) error

	GetGroupInvite(ctx context.Context, groupID, inviteeID string) (*models.GroupInvite, error)
	PutGroupInvite(ctx context.Context, invite models.GroupInvite) error
	DeleteGroupInvite(ctx context.Context, groupID, inviteeID string) error
	ListGroupInvites(ctx context.Context, groupID string) ([]models.GroupInvite, error)

	// PutRemoteRecord writes a projection row in the same transaction.
	PutRemoteRecord(ctx context.Context, rec models.RemoteRecord) (models.RemoteRecord, error)
}
