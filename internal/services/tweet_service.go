package services

import (
	"context"

	"rest-playground/internal/models"
)

type TweetService struct {
	tweets TweetStore
}

func NewTweetService(tweets TweetStore) *TweetService {
	return &TweetService{tweets: tweets}
}

func (s *TweetService) List(ctx context.Context) ([]models.Tweet, error) {
	return s.tweets.Latest(ctx, ListLimit)
}

func (s *TweetService) Create(ctx context.Context, userID int64, text string) (*models.Tweet, error) {
	tweet := &models.Tweet{Text: text, UserID: userID}
	if err := s.tweets.Create(ctx, tweet); err != nil {
		return nil, err
	}

	// Reload with the author joined for the response.
	return s.tweets.GetByID(ctx, tweet.ID)
}

// Like increments the counter by exactly one. Repeated likes from the same
// caller keep incrementing; there is no dedup set and no upper bound.
// Liking one's own tweet is forbidden.
func (s *TweetService) Like(ctx context.Context, callerID, tweetID int64) (*models.Tweet, error) {
	tweet, err := s.tweets.GetByID(ctx, tweetID)
	if err != nil {
		return nil, err
	}

	if tweet.UserID == callerID {
		return nil, ErrOwnTweet
	}

	return s.tweets.IncrementLikes(ctx, tweetID)
}
