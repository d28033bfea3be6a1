package services

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so a login failure never reveals whether the email exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrOwnTweet is returned when a user tries to like their own tweet.
	ErrOwnTweet = errors.New("cannot like own tweet")
)

// List caps for general lists, a user's tweet page and the leaderboards.
const (
	ListLimit        = 100
	UserTweetsLimit  = 10
	LeaderboardLimit = 3
)
