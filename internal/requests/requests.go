// Package requests holds the request bodies of all mutating endpoints
// together with the translation of validation failures into the
// {"errors": {field: [messages]}} body.
package requests

import (
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type ClownRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Rating      *int   `json:"rating" binding:"required,gte=1,lte=5"`
	Status      string `json:"status" binding:"required,oneof=active inactive passive unknown"`
	Description string `json:"description" binding:"omitempty"`
}

type StoreTransactionRequest struct {
	Name       string   `json:"name" binding:"required"`
	Type       string   `json:"type" binding:"required,oneof=income expense"`
	Amount     *float64 `json:"amount" binding:"required,gte=0"`
	CategoryID int64    `json:"category_id" binding:"required"`
	CreatedAt  string   `json:"created_at" binding:"required"`
	Comment    string   `json:"comment" binding:"omitempty"`
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type StoreTweetRequest struct {
	Text string `json:"text" binding:"required,max=280"`
}

type UpdateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"omitempty"`
}

// createdAtLayouts are the accepted input formats for transaction dates.
var createdAtLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a transaction date in any accepted layout.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func init() {
	// Report fields under their JSON names so validation errors line up
	// with the request body the client sent.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}
