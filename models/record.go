// Package models contains the data types shared by the client sync engine,
// the server-side relationship service and the transport layers.
package models

import (
	"encoding/json"
	"time"
)

// Domain names an independently synchronized collection. Every domain has
// its own cursor per owner and is pulled and flushed on its own.
type Domain string

const (
	// DomainGames holds the user's game library.
	DomainGames Domain = "games"
	// DomainSessions holds recorded play sessions.
	DomainSessions Domain = "sessions"
	// DomainFriends holds the server-projected friend edges of the owner.
	DomainFriends Domain = "friends"
	// DomainGroups holds the groups the owner is a member of.
	DomainGroups Domain = "groups"
	// DomainInvites holds pending group invites addressed to the owner.
	DomainInvites Domain = "invites"
)

// AllDomains lists every synchronized domain in the order the client syncs them.
var AllDomains = []Domain{DomainGames, DomainSessions, DomainFriends, DomainGroups, DomainInvites}

// IsValid reports whether d is a known domain.
func (d Domain) IsValid() bool {
	for _, known := range AllDomains {
		if d == known {
			return true
		}
	}
	return false
}

// IsClientWritable reports whether clients may push records of domain d.
// Friends, groups and invites are written only by the relationship service.
func (d Domain) IsClientWritable() bool {
	return d == DomainGames || d == DomainSessions
}

func (d Domain) String() string {
	return string(d)
}

// SyncStatus is the local sync-state tag carried by every [Record].
type SyncStatus string

const (
	// StatusClean means the record matches the last value observed remotely.
	StatusClean SyncStatus = "CLEAN"
	// StatusPending means the record carries a local write not yet pushed.
	StatusPending SyncStatus = "PENDING"
	// StatusDeletedPending marks a tombstone whose delete is not yet pushed.
	StatusDeletedPending SyncStatus = "DELETED_PENDING"
)

// IsPending reports whether the record still has to be flushed to the remote store.
func (s SyncStatus) IsPending() bool {
	return s == StatusPending || s == StatusDeletedPending
}

// Record is the generic unit of synchronized state.
//
// A CLEAN record always has UpdatedAtRemote set to the last value observed
// from the remote store for that id.
type Record struct {
	// ID is stable across the local and the remote store.
	ID string `json:"id"`

	// OwnerID partitions records per user (or per group).
	OwnerID string `json:"owner_id"`

	// Domain is the collection the record belongs to.
	Domain Domain `json:"domain"`

	// Payload holds the domain-specific fields as JSON.
	Payload json.RawMessage `json:"payload,omitempty"`

	SyncStatus SyncStatus `json:"sync_status"`

	// UpdatedAtLocal is bumped on every local mutation.
	UpdatedAtLocal time.Time `json:"updated_at_local"`

	// UpdatedAtRemote is nil until the first successful push or pull.
	UpdatedAtRemote *time.Time `json:"updated_at_remote,omitempty"`

	// Version grows by one with each accepted remote write.
	Version int64 `json:"version"`
}

// IsDeleted reports whether r is a local tombstone.
func (r Record) IsDeleted() bool {
	return r.SyncStatus == StatusDeletedPending
}

// RemoteChange is one entry of a pullChangedSince batch.
type RemoteChange struct {
	ID              string          `json:"id"`
	IsDeleted       bool            `json:"is_deleted"`
	UpdatedAtRemote time.Time       `json:"updated_at_remote"`
	Version         int64           `json:"version"`
	Payload         json.RawMessage `json:"payload,omitempty"`
}

// SyncCursor is the incremental-pull watermark of one (domain, owner) pair.
type SyncCursor struct {
	Domain       Domain    `json:"domain"`
	OwnerID      string    `json:"owner_id"`
	LastSyncedAt time.Time `json:"last_synced_at"`
}
