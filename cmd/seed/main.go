// Command seed wipes and refills the playground database with demo data:
// a fixed book catalog, finance categories and transactions, and a set of
// users with tweets. The first user logs in as user1@example.com / secret.
package main

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rest-playground/internal/config"
	"rest-playground/internal/database"
	"rest-playground/internal/logger"
	"rest-playground/internal/utils"
)

const (
	userCount        = 60
	tweetAuthorCount = 20
	transactionCount = 250 // per type
)

func main() {
	log := logger.New("seed")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()

	pool, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	defer pool.Close()

	if err := database.RunMigrations(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	if err := run(ctx, pool, log); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}

	log.Info().Msg("seed complete")
	os.Exit(0)
}

func run(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger) error {
	if err := truncate(ctx, pool); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	if err := seedBooks(ctx, pool); err != nil {
		return fmt.Errorf("books: %w", err)
	}
	log.Info().Int("count", len(books)).Msg("books seeded")

	categoryIDs, err := seedCategories(ctx, pool)
	if err != nil {
		return fmt.Errorf("categories: %w", err)
	}
	log.Info().Int("count", len(categoryIDs)).Msg("categories seeded")

	if err := seedTransactions(ctx, pool, categoryIDs); err != nil {
		return fmt.Errorf("transactions: %w", err)
	}
	log.Info().Int("count", 2*transactionCount).Msg("transactions seeded")

	userIDs, err := seedUsers(ctx, pool)
	if err != nil {
		return fmt.Errorf("users: %w", err)
	}
	log.Info().Int("count", len(userIDs)).Msg("users seeded")

	tweets, err := seedTweets(ctx, pool, userIDs[:tweetAuthorCount])
	if err != nil {
		return fmt.Errorf("tweets: %w", err)
	}
	log.Info().Int("count", tweets).Msg("tweets seeded")

	return nil
}

func truncate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		TRUNCATE books, clowns, transactions, categories, tweets, tokens, users
		RESTART IDENTITY CASCADE
	`)
	return err
}

var books = []struct {
	Title  string
	Author string
	Slug   string
	Year   int
	Pages  int
}{
	{"The Pragmatic Programmer", "Andrew Hunt", "the-pragmatic-programmer", 1999, 352},
	{"Clean Code", "Robert C. Martin", "clean-code", 2008, 464},
	{"The Mythical Man-Month", "Frederick P. Brooks", "the-mythical-man-month", 1975, 322},
	{"Structure and Interpretation of Computer Programs", "Harold Abelson", "sicp", 1985, 657},
	{"Design Patterns", "Erich Gamma", "design-patterns", 1994, 395},
	{"Refactoring", "Martin Fowler", "refactoring", 1999, 448},
	{"Code Complete", "Steve McConnell", "code-complete", 1993, 960},
	{"Working Effectively with Legacy Code", "Michael Feathers", "working-effectively-with-legacy-code", 2004, 456},
	{"The C Programming Language", "Brian W. Kernighan", "the-c-programming-language", 1978, 272},
	{"Introduction to Algorithms", "Thomas H. Cormen", "introduction-to-algorithms", 1990, 1312},
	{"The Art of Computer Programming", "Donald E. Knuth", "the-art-of-computer-programming", 1968, 672},
	{"Domain-Driven Design", "Eric Evans", "domain-driven-design", 2003, 560},
}

func seedBooks(ctx context.Context, pool *pgxpool.Pool) error {
	batch := &pgx.Batch{}
	for _, b := range books {
		batch.Queue(
			`INSERT INTO books (title, author, slug, year, pages) VALUES ($1, $2, $3, $4, $5)`,
			b.Title, b.Author, b.Slug, b.Year, b.Pages,
		)
	}
	return pool.SendBatch(ctx, batch).Close()
}

var categoryNames = []string{
	"Lebensmittel", "Miete", "Gehalt", "Freizeit", "Versicherung",
	"Transport", "Restaurant", "Kleidung", "Gesundheit", "Sonstiges",
}

func seedCategories(ctx context.Context, pool *pgxpool.Pool) ([]int64, error) {
	ids := make([]int64, 0, len(categoryNames))
	for _, name := range categoryNames {
		var id int64
		err := pool.QueryRow(ctx,
			`INSERT INTO categories (name) VALUES ($1) RETURNING id`, name,
		).Scan(&id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func seedTransactions(ctx context.Context, pool *pgxpool.Pool, categoryIDs []int64) error {
	batch := &pgx.Batch{}
	for _, txType := range []string{"income", "expense"} {
		for i := 0; i < transactionCount; i++ {
			// Amounts between 1.00 and 10000.00 with two decimals.
			amount := math.Round((1+rand.Float64()*9999)*100) / 100
			createdAt := time.Now().Add(-time.Duration(rand.IntN(20*24)) * time.Hour)
			categoryID := categoryIDs[rand.IntN(len(categoryIDs))]

			batch.Queue(
				`INSERT INTO transactions (name, type, amount, comment, category_id, created_at)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				fmt.Sprintf("%s #%d", txType, i+1), txType, amount, "", categoryID, createdAt,
			)
		}
	}
	return pool.SendBatch(ctx, batch).Close()
}

func seedUsers(ctx context.Context, pool *pgxpool.Pool) ([]int64, error) {
	password, err := utils.HashPassword("secret")
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, userCount)
	for i := 1; i <= userCount; i++ {
		var id int64
		err := pool.QueryRow(ctx,
			`INSERT INTO users (name, email, password) VALUES ($1, $2, $3) RETURNING id`,
			fmt.Sprintf("User %d", i), fmt.Sprintf("user%d@example.com", i), password,
		).Scan(&id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

var tweetTexts = []string{
	"Der Kaffee ist alle.",
	"Heute wieder den ganzen Tag refactored.",
	"Warum ist Freitag so weit weg?",
	"Neues Lieblingsbuch gefunden!",
	"Die Tests sind endlich grün.",
	"Wer hat den Build kaputt gemacht?",
	"Mittagspause ist die beste Pause.",
	"Deployment am Freitagabend, was soll schon schiefgehen.",
}

func seedTweets(ctx context.Context, pool *pgxpool.Pool, authorIDs []int64) (int, error) {
	batch := &pgx.Batch{}
	total := 0
	for _, userID := range authorIDs {
		for i := 0; i < rand.IntN(51); i++ {
			text := tweetTexts[rand.IntN(len(tweetTexts))]
			likes := rand.IntN(5001)
			createdAt := time.Now().Add(-time.Duration(rand.IntN(365*24)) * time.Hour)

			batch.Queue(
				`INSERT INTO tweets (text, user_id, likes, created_at) VALUES ($1, $2, $3, $4)`,
				text, userID, likes, createdAt,
			)
			total++
		}
	}
	return total, pool.SendBatch(ctx, batch).Close()
}
