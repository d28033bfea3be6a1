package models

import "time"

type Tweet struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Likes     int64     `json:"likes"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	// User is eagerly loaded by the repository list queries.
	User *User `json:"user,omitempty"`
}
