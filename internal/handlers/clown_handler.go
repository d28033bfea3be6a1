package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rest-playground/internal/models"
	"rest-playground/internal/repositories"
	"rest-playground/internal/requests"
	"rest-playground/internal/resources"
	"rest-playground/internal/responses"
)

type ClownStore interface {
	List(ctx context.Context) ([]models.Clown, error)
	Create(ctx context.Context, clown *models.Clown) error
	Update(ctx context.Context, clown *models.Clown) error
	Delete(ctx context.Context, id int64) error
}

type ClownHandler struct {
	clowns ClownStore
}

func NewClownHandler(clowns ClownStore) *ClownHandler {
	return &ClownHandler{clowns: clowns}
}

// Index handles GET /clowns
func (h *ClownHandler) Index(c *gin.Context) {
	clowns, err := h.clowns.List(c.Request.Context())
	if err != nil {
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to load clowns")
		return
	}

	responses.Data(c, http.StatusOK, resources.MakeClowns(clowns))
}

// Store handles POST /clowns
func (h *ClownHandler) Store(c *gin.Context) {
	var req requests.ClownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrors(c, requests.Translate(err))
		return
	}

	clown := models.Clown{
		Name:        req.Name,
		Email:       req.Email,
		Rating:      *req.Rating,
		Status:      req.Status,
		Description: req.Description,
	}

	if err := h.clowns.Create(c.Request.Context(), &clown); err != nil {
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to create clown")
		return
	}

	responses.Data(c, http.StatusCreated, resources.MakeClown(clown))
}

// Update handles PUT /clowns/:id
func (h *ClownHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req requests.ClownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrors(c, requests.Translate(err))
		return
	}

	clown := models.Clown{
		ID:          id,
		Name:        req.Name,
		Email:       req.Email,
		Rating:      *req.Rating,
		Status:      req.Status,
		Description: req.Description,
	}

	if err := h.clowns.Update(c.Request.Context(), &clown); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			responses.GeneralError(c, http.StatusNotFound, "Clown not found")
			return
		}
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to update clown")
		return
	}

	responses.Data(c, http.StatusOK, resources.MakeClown(clown))
}

// Destroy handles DELETE /clowns/:id
func (h *ClownHandler) Destroy(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.clowns.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			responses.GeneralError(c, http.StatusNotFound, "Clown not found")
			return
		}
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to delete clown")
		return
	}

	responses.Message(c, http.StatusOK, "Clown wurde entfernt.")
}
