package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rest-playground/internal/responses"
	"rest-playground/internal/services"
	"rest-playground/internal/utils"
)

// CurrentUserKey is the context key the authenticated *models.User is
// stored under.
const CurrentUserKey = "currentUser"

// Authenticate gates protected routes. Every request re-validates the
// bearer token: the signature must verify and the jti must still exist in
// the tokens table, so logout and account deletion take effect immediately.
func Authenticate(tokens services.TokenStore, users services.UserStore, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			responses.Unauthenticated(c)
			return
		}

		// Expected format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			responses.Unauthenticated(c)
			return
		}

		claims, err := utils.VerifyToken(parts[1], secret)
		if err != nil {
			responses.Unauthenticated(c)
			return
		}

		jti, err := uuid.Parse(claims.ID)
		if err != nil {
			responses.Unauthenticated(c)
			return
		}

		// Revocation check: a deleted jti row means the token is dead even
		// though its signature still verifies.
		if _, err := tokens.Find(c.Request.Context(), jti); err != nil {
			responses.Unauthenticated(c)
			return
		}

		userID, err := utils.UserIDFromClaims(claims)
		if err != nil {
			responses.Unauthenticated(c)
			return
		}

		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			responses.Unauthenticated(c)
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}
