package services

import (
	"context"

	"github.com/google/uuid"

	"rest-playground/internal/models"
)

// Function-field fakes for the store interfaces. Unset methods panic so a
// test only wires what it expects to be called.

type fakeUserStore struct {
	getByIDFn         func(ctx context.Context, id int64) (*models.User, error)
	getByEmailFn      func(ctx context.Context, email string) (*models.User, error)
	updateFn          func(ctx context.Context, user *models.User) error
	deleteFn          func(ctx context.Context, id int64) error
	newestFn          func(ctx context.Context, limit int) ([]models.User, error)
	topByTweetsFn     func(ctx context.Context, limit int) ([]models.User, error)
	sumLikesFn        func(ctx context.Context, userID int64) (int64, error)
	sumLikesByUsersFn func(ctx context.Context, userIDs []int64) (map[int64]int64, error)
}

func (f *fakeUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.getByEmailFn(ctx, email)
}

func (f *fakeUserStore) Update(ctx context.Context, user *models.User) error {
	return f.updateFn(ctx, user)
}

func (f *fakeUserStore) Delete(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeUserStore) Newest(ctx context.Context, limit int) ([]models.User, error) {
	return f.newestFn(ctx, limit)
}

func (f *fakeUserStore) TopByTweets(ctx context.Context, limit int) ([]models.User, error) {
	return f.topByTweetsFn(ctx, limit)
}

func (f *fakeUserStore) SumLikes(ctx context.Context, userID int64) (int64, error) {
	return f.sumLikesFn(ctx, userID)
}

func (f *fakeUserStore) SumLikesByUsers(ctx context.Context, userIDs []int64) (map[int64]int64, error) {
	return f.sumLikesByUsersFn(ctx, userIDs)
}

type fakeTokenStore struct {
	createFn       func(ctx context.Context, token *models.Token) error
	findFn         func(ctx context.Context, jti uuid.UUID) (*models.Token, error)
	deleteByUserFn func(ctx context.Context, userID int64) error
}

func (f *fakeTokenStore) Create(ctx context.Context, token *models.Token) error {
	return f.createFn(ctx, token)
}

func (f *fakeTokenStore) Find(ctx context.Context, jti uuid.UUID) (*models.Token, error) {
	return f.findFn(ctx, jti)
}

func (f *fakeTokenStore) DeleteByUser(ctx context.Context, userID int64) error {
	return f.deleteByUserFn(ctx, userID)
}

type fakeTransactionStore struct {
	latestFn           func(ctx context.Context, limit int) ([]models.Transaction, error)
	latestByCategoryFn func(ctx context.Context, categoryID int64, limit int) ([]models.Transaction, error)
	getByIDFn          func(ctx context.Context, id int64) (*models.Transaction, error)
	createFn           func(ctx context.Context, transaction *models.Transaction) error
	switchTypeFn       func(ctx context.Context, id int64) (*models.Transaction, error)
	deleteFn           func(ctx context.Context, id int64) error
	deleteByUserFn     func(ctx context.Context, userID int64) error
	totalsFn           func(ctx context.Context) (models.TransactionTotals, error)
}

func (f *fakeTransactionStore) Latest(ctx context.Context, limit int) ([]models.Transaction, error) {
	return f.latestFn(ctx, limit)
}

func (f *fakeTransactionStore) LatestByCategory(ctx context.Context, categoryID int64, limit int) ([]models.Transaction, error) {
	return f.latestByCategoryFn(ctx, categoryID, limit)
}

func (f *fakeTransactionStore) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeTransactionStore) Create(ctx context.Context, transaction *models.Transaction) error {
	return f.createFn(ctx, transaction)
}

func (f *fakeTransactionStore) SwitchType(ctx context.Context, id int64) (*models.Transaction, error) {
	return f.switchTypeFn(ctx, id)
}

func (f *fakeTransactionStore) Delete(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeTransactionStore) DeleteByUser(ctx context.Context, userID int64) error {
	return f.deleteByUserFn(ctx, userID)
}

func (f *fakeTransactionStore) Totals(ctx context.Context) (models.TransactionTotals, error) {
	return f.totalsFn(ctx)
}

type fakeCategoryStore struct {
	listFn       func(ctx context.Context) ([]models.Category, error)
	getByIDFn    func(ctx context.Context, id int64) (*models.Category, error)
	updateNameFn func(ctx context.Context, id int64, name string) (*models.Category, error)
}

func (f *fakeCategoryStore) List(ctx context.Context) ([]models.Category, error) {
	return f.listFn(ctx)
}

func (f *fakeCategoryStore) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeCategoryStore) UpdateName(ctx context.Context, id int64, name string) (*models.Category, error) {
	return f.updateNameFn(ctx, id, name)
}

type fakeTweetStore struct {
	latestFn         func(ctx context.Context, limit int) ([]models.Tweet, error)
	latestByUserFn   func(ctx context.Context, userID int64, limit int) ([]models.Tweet, error)
	getByIDFn        func(ctx context.Context, id int64) (*models.Tweet, error)
	createFn         func(ctx context.Context, tweet *models.Tweet) error
	incrementLikesFn func(ctx context.Context, id int64) (*models.Tweet, error)
}

func (f *fakeTweetStore) Latest(ctx context.Context, limit int) ([]models.Tweet, error) {
	return f.latestFn(ctx, limit)
}

func (f *fakeTweetStore) LatestByUser(ctx context.Context, userID int64, limit int) ([]models.Tweet, error) {
	return f.latestByUserFn(ctx, userID, limit)
}

func (f *fakeTweetStore) GetByID(ctx context.Context, id int64) (*models.Tweet, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeTweetStore) Create(ctx context.Context, tweet *models.Tweet) error {
	return f.createFn(ctx, tweet)
}

func (f *fakeTweetStore) IncrementLikes(ctx context.Context, id int64) (*models.Tweet, error) {
	return f.incrementLikesFn(ctx, id)
}
