// Package resources maps stored entities to their external JSON shapes.
// The functions are pure: relations and aggregates are loaded by the caller
// and passed in, so lists are transformed without extra queries.
package resources

import (
	"time"

	"rest-playground/internal/models"
)

// VerifiedLikesThreshold is the total-likes sum at which a user counts as
// verified. Computed at read time, never persisted.
const VerifiedLikesThreshold = 100000

type CategoryResource struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type TransactionResource struct {
	ID        int64            `json:"id"`
	Amount    float64          `json:"amount"`
	Name      string           `json:"name"`
	Type      string           `json:"type"`
	CreatedAt string           `json:"created_at"`
	Comment   string           `json:"comment"`
	Category  CategoryResource `json:"category"`
}

type ClownResource struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Rating      int    `json:"rating"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

type UserResource struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	CreatedAt  string `json:"created_at"`
	IsVerified bool   `json:"is_verified"`
}

// AccountResource is the finance my-account shape.
type AccountResource struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// UserSummaryResource is the users/new shape.
type UserSummaryResource struct {
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

type TweetAuthorResource struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type TweetResource struct {
	ID        int64               `json:"id"`
	Text      string              `json:"text"`
	Likes     int64               `json:"likes"`
	CreatedAt string              `json:"created_at"`
	User      TweetAuthorResource `json:"user"`
}

func MakeCategory(category models.Category) CategoryResource {
	return CategoryResource{
		ID:   category.ID,
		Name: category.Name,
	}
}

func MakeCategories(categories []models.Category) []CategoryResource {
	out := make([]CategoryResource, 0, len(categories))
	for _, category := range categories {
		out = append(out, MakeCategory(category))
	}
	return out
}

// MakeTransaction derives the signed amount: expenses are negative, the
// stored magnitude is never exposed with an ambiguous sign.
func MakeTransaction(transaction models.Transaction) TransactionResource {
	amount := transaction.Amount
	if transaction.Type == models.TransactionTypeExpense {
		amount = -amount
	}

	var category CategoryResource
	if transaction.Category != nil {
		category = MakeCategory(*transaction.Category)
	}

	return TransactionResource{
		ID:        transaction.ID,
		Amount:    amount,
		Name:      transaction.Name,
		Type:      transaction.Type,
		CreatedAt: transaction.CreatedAt.Format(time.RFC3339),
		Comment:   transaction.Comment,
		Category:  category,
	}
}

func MakeTransactions(transactions []models.Transaction) []TransactionResource {
	out := make([]TransactionResource, 0, len(transactions))
	for _, transaction := range transactions {
		out = append(out, MakeTransaction(transaction))
	}
	return out
}

func MakeClown(clown models.Clown) ClownResource {
	return ClownResource{
		ID:          clown.ID,
		Name:        clown.Name,
		Email:       clown.Email,
		Rating:      clown.Rating,
		Status:      clown.Status,
		Description: clown.Description,
	}
}

func MakeClowns(clowns []models.Clown) []ClownResource {
	out := make([]ClownResource, 0, len(clowns))
	for _, clown := range clowns {
		out = append(out, MakeClown(clown))
	}
	return out
}

// MakeUser takes the precomputed likes total of the user's tweets.
func MakeUser(user models.User, totalLikes int64) UserResource {
	return UserResource{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		CreatedAt:  user.CreatedAt.Format(time.RFC3339),
		IsVerified: totalLikes >= VerifiedLikesThreshold,
	}
}

func MakeAccount(user models.User) AccountResource {
	return AccountResource{
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

func MakeUserSummary(user models.User) UserSummaryResource {
	return UserSummaryResource{
		Name:      user.Name,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

func MakeUserSummaries(users []models.User) []UserSummaryResource {
	out := make([]UserSummaryResource, 0, len(users))
	for _, user := range users {
		out = append(out, MakeUserSummary(user))
	}
	return out
}

func MakeTweet(tweet models.Tweet) TweetResource {
	var author TweetAuthorResource
	if tweet.User != nil {
		author = TweetAuthorResource{ID: tweet.User.ID, Name: tweet.User.Name}
	}

	return TweetResource{
		ID:        tweet.ID,
		Text:      tweet.Text,
		Likes:     tweet.Likes,
		CreatedAt: tweet.CreatedAt.Format(time.RFC3339),
		User:      author,
	}
}

func MakeTweets(tweets []models.Tweet) []TweetResource {
	out := make([]TweetResource, 0, len(tweets))
	for _, tweet := range tweets {
		out = append(out, MakeTweet(tweet))
	}
	return out
}
