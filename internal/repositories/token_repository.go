package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rest-playground/internal/models"
)

// TokenRepository is the revocable set of issued bearer tokens. A token is
// live while its jti row exists.
type TokenRepository struct {
	pool *pgxpool.Pool
}

func NewTokenRepository(pool *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{pool: pool}
}

func (r *TokenRepository) Create(ctx context.Context, token *models.Token) error {
	query := `INSERT INTO tokens (jti, user_id) VALUES ($1, $2) RETURNING created_at`
	return r.pool.QueryRow(ctx, query, token.JTI, token.UserID).Scan(&token.CreatedAt)
}

func (r *TokenRepository) Find(ctx context.Context, jti uuid.UUID) (*models.Token, error) {
	query := `SELECT jti, user_id, created_at FROM tokens WHERE jti = $1`

	var token models.Token
	err := r.pool.QueryRow(ctx, query, jti).Scan(&token.JTI, &token.UserID, &token.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &token, nil
}

// DeleteByUser revokes every outstanding token of the user.
func (r *TokenRepository) DeleteByUser(ctx context.Context, userID int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM tokens WHERE user_id = $1`, userID)
	return err
}
