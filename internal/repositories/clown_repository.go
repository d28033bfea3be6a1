package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rest-playground/internal/models"
)

type ClownRepository struct {
	pool *pgxpool.Pool
}

func NewClownRepository(pool *pgxpool.Pool) *ClownRepository {
	return &ClownRepository{pool: pool}
}

func (r *ClownRepository) List(ctx context.Context) ([]models.Clown, error) {
	query := `
		SELECT id, name, email, rating, status, description, created_at
		FROM clowns ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clowns := []models.Clown{}
	for rows.Next() {
		var clown models.Clown
		err := rows.Scan(
			&clown.ID,
			&clown.Name,
			&clown.Email,
			&clown.Rating,
			&clown.Status,
			&clown.Description,
			&clown.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		clowns = append(clowns, clown)
	}

	return clowns, rows.Err()
}

func (r *ClownRepository) Create(ctx context.Context, clown *models.Clown) error {
	query := `
		INSERT INTO clowns (name, email, rating, status, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	return r.pool.QueryRow(ctx, query,
		clown.Name,
		clown.Email,
		clown.Rating,
		clown.Status,
		clown.Description,
	).Scan(&clown.ID, &clown.CreatedAt)
}

func (r *ClownRepository) Update(ctx context.Context, clown *models.Clown) error {
	query := `
		UPDATE clowns SET
			name = $2, email = $3, rating = $4, status = $5, description = $6
		WHERE id = $1
		RETURNING created_at
	`

	err := r.pool.QueryRow(ctx, query,
		clown.ID,
		clown.Name,
		clown.Email,
		clown.Rating,
		clown.Status,
		clown.Description,
	).Scan(&clown.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	return nil
}

func (r *ClownRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM clowns WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
