package models

import (
	"encoding/json"
	"time"
)

// RemoteRecord is the server-side row of a synchronized record. Tombstones
// keep their row with Deleted set so that the delete itself can be pulled.
type RemoteRecord struct {
	Domain    Domain
	OwnerID   string
	ID        string
	Payload   json.RawMessage
	Deleted   bool
	Version   int64
	UpdatedAt time.Time
}

// ToChange converts the row into the wire form returned by pulls.
func (r RemoteRecord) ToChange() RemoteChange {
	change := RemoteChange{
		ID:              r.ID,
		IsDeleted:       r.Deleted,
		UpdatedAtRemote: r.UpdatedAt,
		Version:         r.Version,
	}
	if !r.Deleted {
		change.Payload = r.Payload
	}
	return change
}
