package models

import (
	"html"
	"strings"
	"time"
)

// User matches the users table.
// Password holds the Argon2id encoded hash and must never be serialized.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) Prepare() {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = html.EscapeString(strings.TrimSpace(u.Email))
}
