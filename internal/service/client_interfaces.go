package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-game-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SyncCoordinator reconciles one domain of the local store with the remote
// store. Calls for the same (domain, owner) must not overlap; the caller
// (normally [ClientSyncJob]) guarantees single flight.
type SyncCoordinator interface {
	Domain() models.Domain

	// InitialSyncIfNeeded pulls the whole partition when no cursor exists and
	// applies it remote-wins. The cursor is set to the newest remote
	// timestamp of the batch, or left unset when the batch is empty.
	InitialSyncIfNeeded(ctx context.Context, ownerID string) (models.SyncResult, error)

	// SyncDownIncremental pulls the changes after the cursor (or after
	// sinceOverride) and applies them last-writer-wins against pending local
	// writes. The cursor only moves forward and only after the whole batch
	// was applied.
	SyncDownIncremental(ctx context.Context, ownerID string, sinceOverride *time.Time) (models.SyncResult, error)

	// SyncPending pushes pending records in queue order. A transient error
	// stops the pass; a rejected record stays pending and is reported as a
	// warning.
	SyncPending(ctx context.Context, ownerID string) (models.FlushResult, error)

	CountPending(ctx context.Context, ownerID string) (int, error)
}

// SyncRunner drives the coordinators of every domain for one owner.
type SyncRunner interface {
	// SyncAll runs a full pass over every domain. A failing domain is
	// reported in its DomainReport and never affects another domain.
	SyncAll(ctx context.Context, ownerID string) models.SyncReport

	// SyncDomains runs a full pass over the given domains only.
	SyncDomains(ctx context.Context, ownerID string, domains ...models.Domain) models.SyncReport

	// Status returns the pending count and cursor of every domain.
	Status(ctx context.Context, ownerID string) ([]models.DomainStatus, error)
}

// ClientSyncJob runs sync passes in the background, one at a time.
type ClientSyncJob interface {
	// Start launches the background goroutine. It syncs every interval and
	// whenever the backend becomes reachable again. Any previously running
	// job is stopped first.
	Start(ctx context.Context, ownerID string, interval time.Duration)

	// RunNow requests a pass as soon as possible. Requests made while a pass
	// is queued are coalesced into it.
	RunNow()

	// Running reports whether the background goroutine is active.
	Running() bool

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()

	// LastReport returns the report of the most recent pass.
	LastReport() (models.SyncReport, bool)
}

// PendingWatcher publishes the number of records waiting to be pushed.
type PendingWatcher interface {
	// Subscribe returns the count stream and its cancel func. A second
	// Subscribe while a stream is attached returns the same stream. The
	// first value on a new stream is 0.
	Subscribe() (<-chan int, func())

	// Refresh recounts the pending records of ownerID and publishes the sum.
	Refresh(ctx context.Context, ownerID string) (int, error)
}

// ReachabilityProbe watches whether the backend answers.
type ReachabilityProbe interface {
	// Run pings the backend until ctx is done.
	Run(ctx context.Context)

	// Available reports the result of the last ping.
	Available() bool

	// Changes receives the new availability each time it flips.
	Changes() <-chan bool
}

// ClientAuthService registers and logs the CLI user in and keeps the session
// between invocations.
type ClientAuthService interface {
	Register(ctx context.Context, user models.User) (models.Session, error)
	Login(ctx context.Context, user models.User) (models.Session, error)
	Logout(ctx context.Context) error

	// RestoreSession loads the saved session and arms the adapter with its
	// token. Returns ErrNotLoggedIn when there is none.
	RestoreSession(ctx context.Context) (models.Session, error)

	FriendCode(ctx context.Context) (models.FriendCodeResponse, error)
}

// LibraryService edits the local game library. Writes land as PENDING
// records and are pushed by the next sync pass.
type LibraryService interface {
	AddGame(ctx context.Context, ownerID string, game models.Game) (models.GameEntry, error)
	EditGame(ctx context.Context, ownerID, id string, game models.Game) (models.GameEntry, error)
	DeleteGame(ctx context.Context, ownerID, id string) error
	ListGames(ctx context.Context, ownerID string) ([]models.GameEntry, error)

	LogSession(ctx context.Context, ownerID string, session models.PlaySession) (models.SessionEntry, error)
	DeleteSession(ctx context.Context, ownerID, id string) error
	// ListSessions returns every session, or those of gameID when it is set.
	ListSessions(ctx context.Context, ownerID, gameID string) ([]models.SessionEntry, error)

	ListFriends(ctx context.Context, ownerID string) ([]models.FriendPayload, error)
	ListGroups(ctx context.Context, ownerID string) ([]models.GroupPayload, error)
	ListInvites(ctx context.Context, ownerID string) ([]models.InvitePayload, error)
}

// ClientRelationshipService calls the server relationship transactions and
// then pulls the projected domains so the local store reflects the result.
type ClientRelationshipService interface {
	SendInvite(ctx context.Context, ownerID, code string) (models.InviteResult, error)
	Accept(ctx context.Context, ownerID, friendUID string) error
	Reject(ctx context.Context, ownerID, friendUID string) error
	Remove(ctx context.Context, ownerID, friendUID string) error

	CreateGroup(ctx context.Context, ownerID, name string) (models.Group, error)
	InviteToGroup(ctx context.Context, ownerID, groupID, friendUID string) error
	AcceptGroupInvite(ctx context.Context, ownerID, groupID string) error
	RejectGroupInvite(ctx context.Context, ownerID, groupID string) error
	LeaveGroup(ctx context.Context, ownerID, groupID string) error
}
