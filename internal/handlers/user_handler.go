package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rest-playground/internal/repositories"
	"rest-playground/internal/requests"
	"rest-playground/internal/resources"
	"rest-playground/internal/responses"
	"rest-playground/internal/services"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// MyAccount handles GET /users/my-account (protected, finance shape).
func (h *UserHandler) MyAccount(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	responses.Data(c, http.StatusOK, resources.MakeAccount(*user))
}

// DestroyMyAccount handles DELETE /users/my-account (protected). Removes the
// account together with its transactions and tokens.
func (h *UserHandler) DestroyMyAccount(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.users.DeleteAccount(c.Request.Context(), user.ID); err != nil {
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to delete account")
		return
	}

	responses.Message(c, http.StatusOK, "Benutzer erfolgreich gelöscht.")
}

// Show handles GET /users/:id.
func (h *UserHandler) Show(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, totalLikes, err := h.users.Show(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			responses.GeneralError(c, http.StatusNotFound, "User not found")
			return
		}
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to load user")
		return
	}

	responses.Data(c, http.StatusOK, resources.MakeUser(*user, totalLikes))
}

// Tweets handles GET /users/:id/tweets.
func (h *UserHandler) Tweets(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	tweets, err := h.users.Tweets(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			responses.GeneralError(c, http.StatusNotFound, "User not found")
			return
		}
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to load tweets")
		return
	}

	responses.Data(c, http.StatusOK, resources.MakeTweets(tweets))
}

// Me handles GET /me (protected). Carries is_verified like any user resource.
func (h *UserHandler) Me(c *gin.Context) {
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

// UpdateMe handles PUT /me (protected).
func (h *UserHandler) UpdateMe(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req requests.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrors(c, requests.Translate(err))
		return
	}

	if err := h.users.UpdateProfile(c.Request.Context(), user, req); err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			responses.ValidationErrors(c, map[string][]string{
				"email": {requests.EmailTakenMessage},
			})
			return
		}
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to update user")
		return
	}

	_, totalLikes, err := h.users.Show(c.Request.Context(), user.ID)
	if err != nil {
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to load user")
		return
	}

	responses.Data(c, http.StatusOK, resources.MakeUser(*user, totalLikes))
}

// DeleteMe handles DELETE /me (protected).
func (h *UserHandler) DeleteMe(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.users.DeleteAccount(c.Request.Context(), user.ID); err != nil {
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	responses.Message(c, http.StatusOK, "User deleted successfully.")
}

// Top handles GET /users/top (protected): the users with the most tweets.
func (h *UserHandler) Top(c *gin.Context) {
	users, totals, err := h.users.Top(c.Request.Context())
	if err != nil {
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to load users")
		return
	}

	out := make([]resources.UserResource, 0, len(users))
	for _, user := range users {
		out = append(out, resources.MakeUser(user, totals[user.ID]))
	}

	responses.Data(c, http.StatusOK, out)
}

// New handles GET /users/new (protected): the most recently registered users.
func (h *UserHandler) New(c *gin.Context) {
	users, err := h.users.Newest(c.Request.Context())
	if err != nil {
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to load users")
		return
	}

	responses.Data(c, http.StatusOK, resources.MakeUserSummaries(users))
}
