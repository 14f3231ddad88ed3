package models

import "time"

// RelationStatus is the state of one side of a two-party relationship.
type RelationStatus string

const (
	// RelationPendingIncoming is stored on the invited side.
	RelationPendingIncoming RelationStatus = "PENDING_INCOMING"
	// RelationPendingOutgoing is stored on the inviting side.
	RelationPendingOutgoing RelationStatus = "PENDING_OUTGOING"
	// RelationAccepted is stored on both sides once the invite is accepted.
	RelationAccepted RelationStatus = "ACCEPTED"
)

// Complement returns the status the mirrored edge must carry.
func (s RelationStatus) Complement() RelationStatus {
	switch s {
	case RelationPendingIncoming:
		return RelationPendingOutgoing
	case RelationPendingOutgoing:
		return RelationPendingIncoming
	default:
		return s
	}
}

// Relationship is one directed edge of a friend relationship, stored under
// the subject's partition and keyed by the counterpart.
//
// For every edge A->B a mirrored edge B->A with the complementary status
// exists. Both are written and removed in the same transaction.
type Relationship struct {
	SubjectID     string         `json:"subject_id"`
	CounterpartID string         `json:"counterpart_id"`
	Status        RelationStatus `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`

	// Code and DisplayName snapshot the counterpart at write time.
	Code        string `json:"code,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

// FriendPayload is the payload of a record in the friends domain.
type FriendPayload struct {
	FriendUID   string         `json:"friend_uid"`
	FriendCode  string         `json:"friend_code"`
	DisplayName string         `json:"display_name"`
	Status      RelationStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
}

// InviteResult is returned by sendInviteByCode.
type InviteResult struct {
	FriendUID   string `json:"friendUid"`
	FriendCode  string `json:"friendCode"`
	DisplayName string `json:"displayName"`
}

// SendInviteRequest is the input of sendInviteByCode.
type SendInviteRequest struct {
	Code            string    `json:"code"`
	ClientCreatedAt time.Time `json:"clientCreatedAt"`
}

// CounterpartRequest is the input of accept, reject and remove.
type CounterpartRequest struct {
	FriendUID string `json:"friendUid"`
}

// OKResponse is the result of accept, reject and remove.
type OKResponse struct {
	OK bool `json:"ok"`
}
