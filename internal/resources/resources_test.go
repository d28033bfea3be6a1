package resources

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rest-playground/internal/models"
)

func TestMakeTransactionSignsAmountByType(t *testing.T) {
	base := models.Transaction{
		ID:     1,
		Name:   "Gehalt",
		Amount: 120.50,
		Category: &models.Category{
			ID:   3,
			Name: "Einkommen",
		},
		CreatedAt: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}

	income := base
	income.Type = models.TransactionTypeIncome
	assert.Equal(t, 120.50, MakeTransaction(income).Amount)

	expense := base
	expense.Type = models.TransactionTypeExpense
	assert.Equal(t, -120.50, MakeTransaction(expense).Amount)
}

func TestMakeTransactionShape(t *testing.T) {
	transaction := models.Transaction{
		ID:         7,
		Name:       "Miete",
		Type:       models.TransactionTypeExpense,
		Amount:     850,
		Comment:    "monatlich",
		CategoryID: 2,
		CreatedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Category:   &models.Category{ID: 2, Name: "Wohnen"},
	}

	raw, err := json.Marshal(MakeTransaction(transaction))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.Equal(t, "2026-01-02T03:04:05Z", got["created_at"])
	assert.Equal(t, map[string]any{"id": float64(2), "name": "Wohnen"}, got["category"])
	assert.NotContains(t, got, "updated_at")
	assert.NotContains(t, got, "category_id")
	assert.NotContains(t, got, "user_id")
}

func TestMakeUserVerifiedThreshold(t *testing.T) {
	user := models.User{
		ID:        1,
		Name:      "Ada",
		Email:     "ada@example.com",
		Password:  "hash",
		CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	assert.False(t, MakeUser(user, VerifiedLikesThreshold-1).IsVerified)
	assert.True(t, MakeUser(user, VerifiedLikesThreshold).IsVerified)
	assert.True(t, MakeUser(user, VerifiedLikesThreshold+1).IsVerified)
}

func TestMakeUserNeverExposesPassword(t *testing.T) {
	user := models.User{ID: 1, Name: "Ada", Email: "ada@example.com", Password: "argon2id$..."}

	raw, err := json.Marshal(MakeUser(user, 0))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.NotContains(t, got, "password")
	assert.ElementsMatch(t,
		[]string{"id", "name", "email", "created_at", "is_verified"},
		mapKeys(got),
	)
}

func TestMakeAccountShape(t *testing.T) {
	user := models.User{
		ID:        9,
		Name:      "Ada",
		Email:     "ada@example.com",
		CreatedAt: time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(MakeAccount(user))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))

	assert.ElementsMatch(t, []string{"name", "email", "created_at"}, mapKeys(got))
	assert.Equal(t, "2025-06-01T08:30:00Z", got["created_at"])
}

func TestMakeTweetNestsAuthor(t *testing.T) {
	tweet := models.Tweet{
		ID:        5,
		Text:      "hallo",
		Likes:     42,
		UserID:    2,
		CreatedAt: time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
		User:      &models.User{ID: 2, Name: "Bob", Email: "bob@example.com"},
	}

	got := MakeTweet(tweet)
	assert.Equal(t, int64(2), got.User.ID)
	assert.Equal(t, "Bob", got.User.Name)

	raw, err := json.Marshal(got)
	require.NoError(t, err)

	var asMap map[string]any
	require.NoError(t, json.Unmarshal(raw, &asMap))

	user, ok := asMap["user"].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, user, "email")
}

func TestMakeTransactionsEmptySliceNotNull(t *testing.T) {
	raw, err := json.Marshal(MakeTransactions(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func mapKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
