package models

import "time"

// Session is the client-side login state persisted between CLI invocations.
type Session struct {
	UserID   string    `json:"user_id"`
	Login    string    `json:"login"`
	Token    string    `json:"token"`
	LoggedAt time.Time `json:"logged_at"`
}

// IsZero reports whether no user is logged in.
func (s Session) IsZero() bool {
	return s.Token == "" || s.UserID == ""
}
