package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rest-playground/internal/requests"
	"rest-playground/internal/resources"
	"rest-playground/internal/responses"
	"rest-playground/internal/services"
)

// loginFailedMessage never reveals whether the email exists.
const loginFailedMessage = "Die E-Mail-Adresse oder das Passwort ist falsch."

type AuthHandler struct {
	auth  *services.AuthService
	users *services.UserService
}

func NewAuthHandler(auth *services.AuthService, users *services.UserService) *AuthHandler {
	return &AuthHandler{
		auth:  auth,
		users: users,
	}
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req requests.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrors(c, requests.Translate(err))
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			responses.GeneralError(c, http.StatusUnprocessableEntity, loginFailedMessage)
			return
		}
		responses.GeneralError(c, http.StatusInternalServerError, "Login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// CheckAuth handles GET /auth (protected)
func (h *AuthHandler) CheckAuth(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	_, totalLikes, err := h.users.Show(c.Request.Context(), user.ID)
	if err != nil {
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to load user")
		return
	}

	responses.Data(c, http.StatusOK, resources.MakeUser(*user, totalLikes))
}

// Logout handles POST /logout and GET /logout (protected). It revokes all
// of the caller's tokens.
func (h *AuthHandler) Logout(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.auth.Logout(c.Request.Context(), user.ID); err != nil {
		responses.GeneralError(c, http.StatusInternalServerError, "Logout failed")
		return
	}

	responses.Message(c, http.StatusOK, "Logged out.")
}
