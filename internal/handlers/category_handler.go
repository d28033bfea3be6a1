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

type CategoryHandler struct {
	categories   *services.CategoryService
	transactions *services.TransactionService
}

func NewCategoryHandler(categories *services.CategoryService, transactions *services.TransactionService) *CategoryHandler {
	return &CategoryHandler{
		categories:   categories,
		transactions: transactions,
	}
}

// Index handles GET /categories
func (h *CategoryHandler) Index(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to load categories")
		return
	}

	responses.Data(c, http.StatusOK, resources.MakeCategories(categories))
}

// Show handles GET /categories/:id
func (h *CategoryHandler) Show(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	category, err := h.categories.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			responses.GeneralError(c, http.StatusNotFound, "Category not found")
			return
		}
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to load category")
		return
	}

	responses.Data(c, http.StatusOK, resources.MakeCategory(*category))
}

// Update handles PUT /categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req requests.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrors(c, requests.Translate(err))
		return
	}

	category, err := h.categories.Rename(c.Request.Context(), id, req.Name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			responses.GeneralError(c, http.StatusNotFound, "Category not found")
			return
		}
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to update category")
		return
	}

	responses.Data(c, http.StatusOK, resources.MakeCategory(*category))
}

// Transactions handles GET /categories/:id/transactions
func (h *CategoryHandler) Transactions(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	transactions, err := h.transactions.ListByCategory(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			responses.GeneralError(c, http.StatusNotFound, "Category not found")
			return
		}
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to load transactions")
		return
	}

	responses.Data(c, http.StatusOK, resources.MakeTransactions(transactions))
}
