package services

import (
	"context"

	"github.com/google/uuid"

	"rest-playground/internal/models"
)

// The stores are the slices of the repository layer each service consumes.
// Tests substitute fakes for them.

type UserStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
	Newest(ctx context.Context, limit int) ([]models.User, error)
	TopByTweets(ctx context.Context, limit int) ([]models.User, error)
	SumLikes(ctx context.Context, userID int64) (int64, error)
	SumLikesByUsers(ctx context.Context, userIDs []int64) (map[int64]int64, error)
}

type TokenStore interface {
	Create(ctx context.Context, token *models.Token) error
	Find(ctx context.Context, jti uuid.UUID) (*models.Token, error)
	DeleteByUser(ctx context.Context, userID int64) error
}

type TransactionStore interface {
	Latest(ctx context.Context, limit int) ([]models.Transaction, error)
	LatestByCategory(ctx context.Context, categoryID int64, limit int) ([]models.Transaction, error)
	GetByID(ctx context.Context, id int64) (*models.Transaction, error)
	Create(ctx context.Context, transaction *models.Transaction) error
	SwitchType(ctx context.Context, id int64) (*models.Transaction, error)
	Delete(ctx context.Context, id int64) error
	DeleteByUser(ctx context.Context, userID int64) error
	Totals(ctx context.Context) (models.TransactionTotals, error)
}

type CategoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	UpdateName(ctx context.Context, id int64, name string) (*models.Category, error)
}

type TweetStore interface {
	Latest(ctx context.Context, limit int) ([]models.Tweet, error)
	LatestByUser(ctx context.Context, userID int64, limit int) ([]models.Tweet, error)
	GetByID(ctx context.Context, id int64) (*models.Tweet, error)
	Create(ctx context.Context, tweet *models.Tweet) error
	IncrementLikes(ctx context.Context, id int64) (*models.Tweet, error)
}
