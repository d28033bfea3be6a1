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

type TweetHandler struct {
	tweets *services.TweetService
}

func NewTweetHandler(tweets *services.TweetService) *TweetHandler {
	return &TweetHandler{tweets: tweets}
}

// Index handles GET /tweets: newest first, capped.
func (h *TweetHandler) Index(c *gin.Context) {
	tweets, err := h.tweets.List(c.Request.Context())
	if err != nil {
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to load tweets")
		return
	}

	responses.Data(c, http.StatusOK, resources.MakeTweets(tweets))
}

// Store handles POST /tweets (protected).
func (h *TweetHandler) Store(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req requests.StoreTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrors(c, requests.Translate(err))
		return
	}

	tweet, err := h.tweets.Create(c.Request.Context(), user.ID, req.Text)
	if err != nil {
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to create tweet")
		return
	}

	responses.Data(c, http.StatusCreated, resources.MakeTweet(*tweet))
}

// Like handles POST /tweets/:id/like (protected). Authors cannot like their
// own tweets.
func (h *TweetHandler) Like(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	tweet, err := h.tweets.Like(c.Request.Context(), user.ID, id)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			responses.GeneralError(c, http.StatusNotFound, "Tweet not found")
		case errors.Is(err, services.ErrOwnTweet):
			responses.GeneralError(c, http.StatusForbidden, "You cannot like your own tweet")
		default:
			responses.GeneralError(c, http.StatusInternalServerError, "Failed to like tweet")
		}
		return
	}

	responses.Data(c, http.StatusOK, resources.MakeTweet(*tweet))
}
