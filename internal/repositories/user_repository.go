package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"rest-playground/internal/models"
)

const userColumns = "id, name, email, password, created_at"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getOne(ctx, query, email)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	var user models.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	user.Prepare()

	query := `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query, user.Name, user.Email, user.Password).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrEmailTaken
		}
		return err
	}

	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	user.Prepare()

	query := `UPDATE users SET name = $2, email = $3, password = $4 WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, user.ID, user.Name, user.Email, user.Password)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrEmailTaken
		}
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes the user row. Tweets fall to the FK cascade; transactions
// and tokens are deleted explicitly by the user service beforehand.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Newest returns the most recently created users.
func (r *UserRepository) Newest(ctx context.Context, limit int) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanUsers(rows)
}

// TopByTweets returns the users with the most tweets.
func (r *UserRepository) TopByTweets(ctx context.Context, limit int) ([]models.User, error) {
	query := `
		SELECT u.id, u.name, u.email, u.password, u.created_at
		FROM users u
		LEFT JOIN tweets t ON t.user_id = u.id
		GROUP BY u.id
		ORDER BY COUNT(t.id) DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanUsers(rows)
}

// SumLikes totals the likes over all of one user's tweets.
func (r *UserRepository) SumLikes(ctx context.Context, userID int64) (int64, error) {
	query := `SELECT COALESCE(SUM(likes), 0) FROM tweets WHERE user_id = $1`

	var total int64
	err := r.pool.QueryRow(ctx, query, userID).Scan(&total)
	return total, err
}

// SumLikesByUsers totals likes for several users in one grouped query, so
// resource lists don't aggregate per row.
func (r *UserRepository) SumLikesByUsers(ctx context.Context, userIDs []int64) (map[int64]int64, error) {
	totals := make(map[int64]int64, len(userIDs))
	if len(userIDs) == 0 {
		return totals, nil
	}

	query := `SELECT user_id, COALESCE(SUM(likes), 0) FROM tweets WHERE user_id = ANY($1) GROUP BY user_id`

	rows, err := r.pool.Query(ctx, query, userIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var userID, total int64
		if err := rows.Scan(&userID, &total); err != nil {
			return nil, err
		}
		totals[userID] = total
	}

	return totals, rows.Err()
}

func scanUsers(rows pgx.Rows) ([]models.User, error) {
	users := []models.User{}
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Password,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}
