package services

import (
	"context"
	"time"

	"rest-playground/internal/models"
	"rest-playground/internal/requests"
)

type TransactionService struct {
	transactions TransactionStore
	categories   CategoryStore
}

func NewTransactionService(transactions TransactionStore, categories CategoryStore) *TransactionService {
	return &TransactionService{
		transactions: transactions,
		categories:   categories,
	}
}

// List returns the newest transactions, categories eagerly loaded, capped
// at the documented limit.
func (s *TransactionService) List(ctx context.Context) ([]models.Transaction, error) {
	return s.transactions.Latest(ctx, ListLimit)
}

// ListByCategory requires the category to exist so an unknown id is a 404,
// not an empty list.
func (s *TransactionService) ListByCategory(ctx context.Context, categoryID int64) ([]models.Transaction, error) {
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.transactions.LatestByCategory(ctx, categoryID, ListLimit)
}

// Create stores a new transaction owned by the authenticated caller. The
// amount is persisted as an unsigned magnitude regardless of type.
func (s *TransactionService) Create(ctx context.Context, userID int64, req requests.StoreTransactionRequest, createdAt time.Time) (*models.Transaction, error) {
	transaction := &models.Transaction{
		Name:       req.Name,
		Type:       req.Type,
		Amount:     *req.Amount,
		Comment:    req.Comment,
		CategoryID: req.CategoryID,
		UserID:     &userID,
		CreatedAt:  createdAt,
	}

	if err := s.transactions.Create(ctx, transaction); err != nil {
		return nil, err
	}

	// Reload with the category joined so the response carries the nested
	// sub-object without a second round trip per field.
	return s.transactions.GetByID(ctx, transaction.ID)
}

// SwitchType toggles strictly between income and expense.
func (s *TransactionService) SwitchType(ctx context.Context, id int64) (*models.Transaction, error) {
	return s.transactions.SwitchType(ctx, id)
}

func (s *TransactionService) Delete(ctx context.Context, id int64) error {
	return s.transactions.Delete(ctx, id)
}

func (s *TransactionService) Totals(ctx context.Context) (models.TransactionTotals, error) {
	return s.transactions.Totals(ctx)
}
