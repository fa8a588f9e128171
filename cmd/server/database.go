package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	// Registers the pgx stdlib driver under the "pgx" name.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/phrazzld/vocab-api/internal/session"
	"github.com/phrazzld/vocab-api/internal/store"
)

const (
	dbPingTimeout  = 5 * time.Second
	dbMaxOpenConns = 10
	dbMaxIdleConns = 5
	dbConnMaxIdle  = 5 * time.Minute
	dbConnMaxLife  = 30 * time.Minute
)

// openDatabase opens a connection pool to Postgres and verifies it with a
// ping before returning.
func openDatabase(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(dbMaxOpenConns)
	db.SetMaxIdleConns(dbMaxIdleConns)
	db.SetConnMaxIdleTime(dbConnMaxIdle)
	db.SetConnMaxLifetime(dbConnMaxLife)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			return nil, fmt.Errorf("failed to ping database: %w (close error: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// seedStarterWords populates an empty words table with the built-in starter
// deck so a fresh database has something to learn from. A table that already
// has words is left untouched.
func seedStarterWords(
	ctx context.Context,
	db *sql.DB,
	words store.WordStore,
	log *slog.Logger,
) error {
	count, err := words.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count words: %w", err)
	}
	if count > 0 {
		log.Debug("words table already populated, skipping seed",
			slog.Int("word_count", count))
		return nil
	}

	starter := session.StarterWords()
	err = store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		return words.WithTx(tx).CreateMultiple(ctx, starter)
	})
	if err != nil {
		return fmt.Errorf("failed to insert starter words: %w", err)
	}

	log.Info("seeded starter words", slog.Int("word_count", len(starter)))
	return nil
}
