package services

import (
	"context"
	"fmt"

	"rest-playground/internal/models"
	"rest-playground/internal/requests"
	"rest-playground/internal/utils"
)

type UserService struct {
	users        UserStore
	tweets       TweetStore
	transactions TransactionStore
	tokens       TokenStore
}

func NewUserService(users UserStore, tweets TweetStore, transactions TransactionStore, tokens TokenStore) *UserService {
	return &UserService{
		users:        users,
		tweets:       tweets,
		transactions: transactions,
		tokens:       tokens,
	}
}

// Show loads the user together with the likes total its resource needs.
func (s *UserService) Show(ctx context.Context, id int64) (*models.User, int64, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	totalLikes, err := s.users.SumLikes(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	return user, totalLikes, nil
}

// Tweets returns the user's newest tweets; an unknown user is a 404, not an
// empty list.
func (s *UserService) Tweets(ctx context.Context, userID int64) ([]models.Tweet, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.tweets.LatestByUser(ctx, userID, UserTweetsLimit)
}

// UpdateProfile changes name and email; the password only when one is sent.
func (s *UserService) UpdateProfile(ctx context.Context, user *models.User, req requests.UpdateUserRequest) error {
	user.Name = req.Name
	user.Email = req.Email

	if req.Password != "" {
		hashed, err := utils.HashPassword(req.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		user.Password = hashed
	}

	return s.users.Update(ctx, user)
}

// DeleteAccount removes the user and everything they own. Transactions and
// tokens are explicit business-rule cascades; tweets fall to the FK cascade.
func (s *UserService) DeleteAccount(ctx context.Context, userID int64) error {
	if err := s.transactions.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("delete transactions: %w", err)
	}
	if err := s.tokens.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("revoke tokens: %w", err)
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// Top returns the users with most tweets plus their likes totals, aggregated
// in one grouped query for the whole list.
func (s *UserService) Top(ctx context.Context) ([]models.User, map[int64]int64, error) {
	users, err := s.users.TopByTweets(ctx, LeaderboardLimit)
	if err != nil {
		return nil, nil, err
	}

	ids := make([]int64, 0, len(users))
	for _, user := range users {
		ids = append(ids, user.ID)
	}

	totals, err := s.users.SumLikesByUsers(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	return users, totals, nil
}

func (s *UserService) Newest(ctx context.Context) ([]models.User, error) {
	return s.users.Newest(ctx, LeaderboardLimit)
}
