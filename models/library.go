package models

import "time"

// GameStatus is the progress of a game in the user's library.
type GameStatus string

const (
	GameBacklog   GameStatus = "BACKLOG"
	GamePlaying   GameStatus = "PLAYING"
	GameCompleted GameStatus = "COMPLETED"
	GameDropped   GameStatus = "DROPPED"
)

// Game is the payload of a record in the games domain.
type Game struct {
	Title    string     `json:"title"`
	Platform string     `json:"platform,omitempty"`
	Status   GameStatus `json:"status"`
	Rating   int        `json:"rating,omitempty"`
	Notes    string     `json:"notes,omitempty"`
}

// PlaySession is the payload of a record in the sessions domain.
type PlaySession struct {
	GameID    string    `json:"game_id"`
	StartedAt time.Time `json:"started_at"`
	Minutes   int       `json:"minutes"`
	Note      string    `json:"note,omitempty"`
}

// GameEntry is a decoded game together with its sync metadata.
type GameEntry struct {
	ID         string     `json:"id"`
	Game       Game       `json:"game"`
	SyncStatus SyncStatus `json:"sync_status"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// SessionEntry is a decoded play session together with its sync metadata.
type SessionEntry struct {
	ID         string      `json:"id"`
	Session    PlaySession `json:"session"`
	SyncStatus SyncStatus  `json:"sync_status"`
	UpdatedAt  time.Time   `json:"updated_at"`
}
