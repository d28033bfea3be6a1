package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rest-playground/internal/models"
)

// tweetSelect joins the author so list responses never trigger a per-row
// user lookup.
const tweetSelect = `
	SELECT t.id, t.text, t.likes, t.user_id, t.created_at,
	       u.id, u.name, u.email, u.created_at
	FROM tweets t
	JOIN users u ON u.id = t.user_id
`

type TweetRepository struct {
	pool *pgxpool.Pool
}

func NewTweetRepository(pool *pgxpool.Pool) *TweetRepository {
	return &TweetRepository{pool: pool}
}

func (r *TweetRepository) Latest(ctx context.Context, limit int) ([]models.Tweet, error) {
	query := tweetSelect + ` ORDER BY t.created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTweets(rows)
}

func (r *TweetRepository) LatestByUser(ctx context.Context, userID int64, limit int) ([]models.Tweet, error) {
	query := tweetSelect + ` WHERE t.user_id = $1 ORDER BY t.created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTweets(rows)
}

func (r *TweetRepository) GetByID(ctx context.Context, id int64) (*models.Tweet, error) {
	query := tweetSelect + ` WHERE t.id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	tweet, err := scanTweetRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return tweet, nil
}

func (r *TweetRepository) Create(ctx context.Context, tweet *models.Tweet) error {
	query := `
		INSERT INTO tweets (text, user_id)
		VALUES ($1, $2)
		RETURNING id, likes, created_at
	`

	return r.pool.QueryRow(ctx, query, tweet.Text, tweet.UserID).
		Scan(&tweet.ID, &tweet.Likes, &tweet.CreatedAt)
}

// IncrementLikes bumps the counter atomically in SQL; concurrent likes are
// serialized by the row lock.
func (r *TweetRepository) IncrementLikes(ctx context.Context, id int64) (*models.Tweet, error) {
	result, err := r.pool.Exec(ctx, `UPDATE tweets SET likes = likes + 1 WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func scanTweets(rows pgx.Rows) ([]models.Tweet, error) {
	tweets := []models.Tweet{}
	for rows.Next() {
		tweet, err := scanTweetRow(rows)
		if err != nil {
			return nil, err
		}
		tweets = append(tweets, *tweet)
	}

	return tweets, rows.Err()
}

func scanTweetRow(row pgx.Row) (*models.Tweet, error) {
	var tweet models.Tweet
	var user models.User

	err := row.Scan(
		&tweet.ID,
		&tweet.Text,
		&tweet.Likes,
		&tweet.UserID,
		&tweet.CreatedAt,
		&user.ID,
		&user.Name,
		&user.Email,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	tweet.User = &user
	return &tweet, nil
}
