package models

import "time"

type Participant struct {
	ID       int       `json:"id"`
	ItemID   int       `json:"item_id"`
	UserID   int       `json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`
}

type ParticipantInfo struct {
	UserID   int       `json:"user_id"`
	Username string    `json:"username"`
	Name     string    `json:"name"`
	JoinedAt time.Time `json:"joined_at"`
}
