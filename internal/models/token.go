package models

import (
	"time"

	"github.com/google/uuid"
)

// Token is one issued bearer token. The JTI is the revocation handle:
// deleting the row invalidates the matching JWT on the next request.
type Token struct {
	JTI       uuid.UUID `json:"jti"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
