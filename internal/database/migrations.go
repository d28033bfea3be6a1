package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RunMigrations applies the schema statements in order. Every statement is
// idempotent so restarting the server is safe.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	migrations := []string{
		createEnumTypes,
		createUsersTable,
		createTokensTable,
		createBooksTable,
		createClownsTable,
		createCategoriesTable,
		createTransactionsTable,
		createTweetsTable,
	}

	for i, migration := range migrations {
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d/%d failed: %w", i+1, len(migrations), err)
		}
	}

	return nil
}

const createEnumTypes = `
DO $$
BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'clown_status_t') THEN
    CREATE TYPE clown_status_t AS ENUM ('active', 'inactive', 'passive', 'unknown');
  END IF;
END$$;

DO $$
BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'transaction_type_t') THEN
    CREATE TYPE transaction_type_t AS ENUM ('income', 'expense');
  END IF;
END$$;
`

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
  id BIGSERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  password TEXT NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);
CREATE INDEX IF NOT EXISTS idx_users_created_at ON users(created_at);
`

const createTokensTable = `
CREATE TABLE IF NOT EXISTS tokens (
  jti UUID PRIMARY KEY,
  user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_tokens_user_id ON tokens(user_id);
`

const createBooksTable = `
CREATE TABLE IF NOT EXISTS books (
  id BIGSERIAL PRIMARY KEY,
  title TEXT NOT NULL,
  author TEXT NOT NULL,
  slug TEXT NOT NULL,
  year INT NOT NULL,
  pages INT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_books_slug ON books(slug);
`

const createClownsTable = `
CREATE TABLE IF NOT EXISTS clowns (
  id BIGSERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  rating INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
  status clown_status_t NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

const createCategoriesTable = `
CREATE TABLE IF NOT EXISTS categories (
  id BIGSERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Transactions keep amount as an unsigned magnitude. user_id is nullable:
// seeded rows have no owner, authenticated creations set the caller.
// The user cascade is an explicit business rule handled in the user service,
// not an FK default.
const createTransactionsTable = `
CREATE TABLE IF NOT EXISTS transactions (
  id BIGSERIAL PRIMARY KEY,
  name TEXT NOT NULL,
  type transaction_type_t NOT NULL,
  amount NUMERIC(10,2) NOT NULL CHECK (amount >= 0),
  comment TEXT NOT NULL DEFAULT '',
  category_id BIGINT NOT NULL REFERENCES categories(id),
  user_id BIGINT REFERENCES users(id),
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_transactions_category_id ON transactions(category_id);
CREATE INDEX IF NOT EXISTS idx_transactions_user_id ON transactions(user_id);
CREATE INDEX IF NOT EXISTS idx_transactions_created_at ON transactions(created_at);
`

const createTweetsTable = `
CREATE TABLE IF NOT EXISTS tweets (
  id BIGSERIAL PRIMARY KEY,
  text TEXT NOT NULL,
  likes BIGINT NOT NULL DEFAULT 0,
  user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_tweets_user_id ON tweets(user_id);
CREATE INDEX IF NOT EXISTS idx_tweets_created_at ON tweets(created_at);
`
