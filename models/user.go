package models

import "time"

// User represents an account entity used for authentication and as the
// owner of synchronized records.
type User struct {
	// UserID is the uuid v7 identifier assigned at registration. It is the
	// owner id of every record the user syncs and the JWT subject.
	UserID string `json:"user_id,omitempty"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Name is the display name shown to friends.
	Name string `json:"name"`

	// Password carries the plaintext password on register/login requests and
	// the bcrypt hash inside the server. It is never written back to clients.
	Password string `json:"password,omitempty"`

	// FriendCode is the human-shareable code other users invite by.
	FriendCode string `json:"friend_code,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of u without credential fields.
func (u User) Public() User {
	u.Password = ""
	return u
}
