package models

import "time"

// Clown statuses accepted by the API.
const (
	ClownStatusActive   = "active"
	ClownStatusInactive = "inactive"
	ClownStatusPassive  = "passive"
	ClownStatusUnknown  = "unknown"
)

type Clown struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Rating      int       `json:"rating"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
