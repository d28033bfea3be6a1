package models

import "time"

// Transaction types.
const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// Transaction stores Amount as an unsigned magnitude; the sign shown to
// clients is derived from Type at presentation time.
type Transaction struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Amount     float64   `json:"amount"`
	Comment    string    `json:"comment"`
	CategoryID int64     `json:"category_id"`
	UserID     *int64    `json:"user_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`

	// Category is eagerly loaded by the repository list queries so callers
	// never issue one lookup per row.
	Category *Category `json:"category,omitempty"`
}

// TransactionTotals holds the unsigned sums per type.
type TransactionTotals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}
