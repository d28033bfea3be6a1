package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rest-playground/internal/middlewares"
	"rest-playground/internal/models"
	"rest-playground/internal/responses"
)

// parseID reads a numeric path parameter. A non-numeric id can never match
// a row, so it is answered like a missing one.
func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		responses.GeneralError(c, http.StatusNotFound, "Not found")
		return 0, false
	}
	return id, true
}

// currentUser returns the user set by the auth middleware.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(middlewares.CurrentUserKey)
	if !ok {
		responses.Unauthenticated(c)
		return nil, false
	}

	user, ok := v.(*models.User)
	if !ok || user == nil {
		responses.Unauthenticated(c)
		return nil, false
	}

	return user, true
}
