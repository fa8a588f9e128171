package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/vocab-api/internal/domain"
	"github.com/phrazzld/vocab-api/internal/store"
)

// PostgresWordStore implements the store.WordStore interface
// using a PostgreSQL database as the storage backend.
type PostgresWordStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresWordStore creates a new PostgreSQL implementation of the
// WordStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller. If logger is nil, a
// default logger will be used.
func NewPostgresWordStore(db store.DBTX, logger *slog.Logger) *PostgresWordStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresWordStore{
		db:     db,
		logger: logger.With(slog.String("component", "word_store")),
	}
}

// Ensure PostgresWordStore implements store.WordStore interface
var _ store.WordStore = (*PostgresWordStore)(nil)

// CreateMultiple implements store.WordStore.CreateMultiple.
// It validates every word first so either all rows are inserted or none;
// run it inside a transaction via WithTx for true atomicity.
func (s *PostgresWordStore) CreateMultiple(ctx context.Context, words []*domain.Word) error {
	for _, word := range words {
		if err := word.Validate(); err != nil {
			return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
		}
	}

	const query = `
		INSERT INTO words
			(id, target_text, prompt_text, frequency_rank, is_new,
			 prompt_sentence, target_sentence, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	for _, word := range words {
		var promptSentence, targetSentence sql.NullString
		if word.Context != nil {
			promptSentence = sql.NullString{String: word.Context.PromptSentence, Valid: true}
			targetSentence = sql.NullString{String: word.Context.TargetSentence, Valid: true}
		}

		_, err := s.db.ExecContext(ctx, query,
			word.ID,
			word.TargetText,
			word.PromptText,
			word.FrequencyRank,
			word.IsNew,
			promptSentence,
			targetSentence,
			word.CreatedAt,
			word.UpdatedAt,
		)
		if err != nil {
			s.logger.Error("failed to insert word",
				slog.String("error", err.Error()),
				slog.String("word_id", word.ID.String()))
			return MapError(err)
		}
	}

	s.logger.Debug("inserted words", slog.Int("count", len(words)))
	return nil
}

// GetByID implements store.WordStore.GetByID.
// Returns store.ErrWordNotFound if the word does not exist.
func (s *PostgresWordStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	const query = `
		SELECT id, target_text, prompt_text, frequency_rank, is_new,
		       prompt_sentence, target_sentence, created_at, updated_at
		FROM words
		WHERE id = $1`

	word, err := scanWord(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrWordNotFound
		}
		return nil, MapError(err)
	}

	return word, nil
}

// ListOrdered implements store.WordStore.ListOrdered.
// Words come back in deck order: ascending frequency rank, with creation
// time as the deterministic tie-breaker.
func (s *PostgresWordStore) ListOrdered(ctx context.Context) ([]*domain.Word, error) {
	const query = `
		SELECT id, target_text, prompt_text, frequency_rank, is_new,
		       prompt_sentence, target_sentence, created_at, updated_at
		FROM words
		ORDER BY frequency_rank ASC, created_at ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	var words []*domain.Word
	for rows.Next() {
		word, err := scanWord(rows)
		if err != nil {
			return nil, MapError(err)
		}
		words = append(words, word)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return words, nil
}

// Count implements store.WordStore.Count.
func (s *PostgresWordStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM words`).Scan(&count)
	if err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// WithTx implements store.WordStore.WithTx.
func (s *PostgresWordStore) WithTx(tx *sql.Tx) store.WordStore {
	return &PostgresWordStore{
		db:     tx,
		logger: s.logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanWord(row rowScanner) (*domain.Word, error) {
	var (
		word           domain.Word
		promptSentence sql.NullString
		targetSentence sql.NullString
	)

	err := row.Scan(
		&word.ID,
		&word.TargetText,
		&word.PromptText,
		&word.FrequencyRank,
		&word.IsNew,
		&promptSentence,
		&targetSentence,
		&word.CreatedAt,
		&word.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if promptSentence.Valid && targetSentence.Valid {
		word.Context = &domain.SentenceContext{
			PromptSentence: promptSentence.String,
			TargetSentence: targetSentence.String,
		}
	}

	return &word, nil
}
