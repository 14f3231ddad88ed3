package models

import (
	"encoding/json"
	"time"
)

// PushRequest uploads one pending record of a client-writable domain.
type PushRequest struct {
	ID             string          `json:"id"`
	Payload        json.RawMessage `json:"payload"`
	Version        int64           `json:"version"`
	UpdatedAtLocal time.Time       `json:"updated_at_local"`
}

// DeleteRequest tombstones one record of a client-writable domain.
type DeleteRequest struct {
	ID string `json:"id"`
}

// PushResponse acknowledges a push or a delete.
type PushResponse struct {
	ID              string    `json:"id"`
	UpdatedAtRemote time.Time `json:"updated_at_remote"`
	Version         int64     `json:"version"`
}

// ChangesResponse is the result of pullChangedSince.
type ChangesResponse struct {
	Changes []RemoteChange `json:"changes"`

	// Length is len(Changes), provided so clients can validate the body.
	Length int `json:"length"`
}

// FriendCodeResponse carries the caller's own friend code.
type FriendCodeResponse struct {
	FriendCode  string `json:"friend_code"`
	DisplayName string `json:"display_name"`
}
