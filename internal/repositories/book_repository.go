package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rest-playground/internal/models"
)

// psql builds queries with Postgres $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const bookColumns = "id, title, author, slug, year, pages"

type BookRepository struct {
	pool *pgxpool.Pool
}

func NewBookRepository(pool *pgxpool.Pool) *BookRepository {
	return &BookRepository{pool: pool}
}

func (r *BookRepository) List(ctx context.Context) ([]models.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBooks(rows)
}

func (r *BookRepository) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	var book models.Book
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.Slug,
		&book.Year,
		&book.Pages,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &book, nil
}

func (r *BookRepository) FindBySlug(ctx context.Context, slug string) ([]models.Book, error) {
	return r.findWhere(ctx, sq.Eq{"slug": slug})
}

func (r *BookRepository) FindByYear(ctx context.Context, year int) ([]models.Book, error) {
	return r.findWhere(ctx, sq.Eq{"year": year})
}

// FindMaxPages returns books with strictly fewer pages than the limit.
func (r *BookRepository) FindMaxPages(ctx context.Context, pages int) ([]models.Book, error) {
	return r.findWhere(ctx, sq.Lt{"pages": pages})
}

// Search matches the term as a substring of either title or author.
func (r *BookRepository) Search(ctx context.Context, term string) ([]models.Book, error) {
	pattern := "%" + term + "%"
	return r.findWhere(ctx, sq.Or{
		sq.ILike{"title": pattern},
		sq.ILike{"author": pattern},
	})
}

func (r *BookRepository) findWhere(ctx context.Context, pred interface{}) ([]models.Book, error) {
	query, args, err := psql.
		Select("id", "title", "author", "slug", "year", "pages").
		From("books").
		Where(pred).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBooks(rows)
}

func (r *BookRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM books`).Scan(&count)
	return count, err
}

func (r *BookRepository) AvgPages(ctx context.Context) (float64, error) {
	var avg float64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(AVG(pages), 0) FROM books`).Scan(&avg)
	return avg, err
}

// Dashboard aggregates the whole catalog in a single statement.
func (r *BookRepository) Dashboard(ctx context.Context) (models.BookDashboard, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(pages), 0),
		       COALESCE(MIN(year), 0),
		       COALESCE(MAX(year), 0)
		FROM books
	`

	var d models.BookDashboard
	err := r.pool.QueryRow(ctx, query).Scan(&d.Books, &d.Pages, &d.Oldest, &d.Newest)
	return d, err
}

func scanBooks(rows pgx.Rows) ([]models.Book, error) {
	books := []models.Book{}
	for rows.Next() {
		var book models.Book
		err := rows.Scan(
			&book.ID,
			&book.Title,
			&book.Author,
			&book.Slug,
			&book.Year,
			&book.Pages,
		)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}

	return books, rows.Err()
}
