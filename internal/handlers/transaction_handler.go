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

type TransactionHandler struct {
	transactions *services.TransactionService
}

func NewTransactionHandler(transactions *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

// Index handles GET /transactions
func (h *TransactionHandler) Index(c *gin.Context) {
	transactions, err := h.transactions.List(c.Request.Context())
	if err != nil {
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to load transactions")
		return
	}

	responses.Data(c, http.StatusOK, resources.MakeTransactions(transactions))
}

// SwitchType handles PUT /transactions/:id/switch-type
func (h *TransactionHandler) SwitchType(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	transaction, err := h.transactions.SwitchType(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			responses.GeneralError(c, http.StatusNotFound, "Transaction does not exist")
			return
		}
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to switch transaction type")
		return
	}

	responses.Data(c, http.StatusOK, resources.MakeTransaction(*transaction))
}

// Destroy handles DELETE /transactions/:id
func (h *TransactionHandler) Destroy(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.transactions.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			responses.GeneralError(c, http.StatusNotFound, "Transaction does not exist")
			return
		}
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to delete transaction")
		return
	}

	responses.Message(c, http.StatusOK, "Transaktion wurde erfolgreich entfernt.")
}

// Store handles POST /transactions (protected)
func (h *TransactionHandler) Store(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req requests.StoreTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrors(c, requests.Translate(err))
		return
	}

	createdAt, ok := requests.ParseDate(req.CreatedAt)
	if !ok {
		responses.ValidationErrors(c, map[string][]string{
			"created_at": {requests.InvalidDateMessage},
		})
		return
	}

	transaction, err := h.transactions.Create(c.Request.Context(), user.ID, req, createdAt)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryMissing) {
			responses.ValidationErrors(c, map[string][]string{
				"category_id": {requests.CategoryMissingMessage},
			})
			return
		}
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to create transaction")
		return
	}

	responses.Data(c, http.StatusCreated, resources.MakeTransaction(*transaction))
}

// Totals handles GET /transactions/totals
func (h *TransactionHandler) Totals(c *gin.Context) {
	totals, err := h.transactions.Totals(c.Request.Context())
	if err != nil {
		responses.GeneralError(c, http.StatusInternalServerError, "Failed to load totals")
		return
	}

	responses.Data(c, http.StatusOK, totals)
}
