package models

import "time"

// MemberRole is the role of a user inside a group.
type MemberRole string

const (
	RoleOwner  MemberRole = "OWNER"
	RoleMember MemberRole = "MEMBER"
)

// Group is the shared group document.
type Group struct {
	GroupID   string    `json:"group_id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GroupMember is one entry of the member subcollection of a group.
// There is at most one membership per (group, user).
type GroupMember struct {
	GroupID  string     `json:"group_id"`
	UserID   string     `json:"user_id"`
	Role     MemberRole `json:"role"`
	JoinedAt time.Time  `json:"joined_at"`
}

// GroupInvite is a group invite edge. The group keeps the outgoing side and
// the invitee keeps the incoming side; both share the same status.
type GroupInvite struct {
	GroupID   string         `json:"group_id"`
	InviteeID string         `json:"invitee_id"`
	InviterID string         `json:"inviter_id"`
	Status    RelationStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// GroupPayload is the payload of a record in the groups domain.
type GroupPayload struct {
	GroupID string        `json:"group_id"`
	Name    string        `json:"name"`
	OwnerID string        `json:"owner_id"`
	Members []GroupMember `json:"members"`
}

// InvitePayload is the payload of a record in the invites domain.
type InvitePayload struct {
	GroupID   string         `json:"group_id"`
	GroupName string         `json:"group_name"`
	InviterID string         `json:"inviter_id"`
	Status    RelationStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}

// CreateGroupRequest is the input of createGroup.
type CreateGroupRequest struct {
	Name            string    `json:"name"`
	ClientCreatedAt time.Time `json:"clientCreatedAt"`
}

// GroupInviteRequest is the input of inviteToGroup.
type GroupInviteRequest struct {
	GroupID         string    `json:"groupId"`
	FriendUID       string    `json:"friendUid"`
	ClientCreatedAt time.Time `json:"clientCreatedAt"`
}

// GroupRequest addresses a group on accept, reject and leave.
type GroupRequest struct {
	GroupID string `json:"groupId"`
}
