package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/vocab-api/internal/domain"
	"github.com/phrazzld/vocab-api/internal/store"
)

// PostgresReviewStore implements the store.ReviewStore interface
// using a PostgreSQL database as the storage backend.
type PostgresReviewStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresReviewStore creates a new PostgreSQL implementation of the
// ReviewStore interface. If logger is nil, a default logger will be used.
func NewPostgresReviewStore(db store.DBTX, logger *slog.Logger) *PostgresReviewStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresReviewStore{
		db:     db,
		logger: logger.With(slog.String("component", "review_store")),
	}
}

// Ensure PostgresReviewStore implements store.ReviewStore interface
var _ store.ReviewStore = (*PostgresReviewStore)(nil)

// Create implements store.ReviewStore.Create.
func (s *PostgresReviewStore) Create(ctx context.Context, record *domain.ReviewRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	const query = `
		INSERT INTO reviews
			(id, word_id, answer, correct, revealed,
			 next_review_days, next_review_at, reviewed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.db.ExecContext(ctx, query,
		record.ID,
		record.WordID,
		record.Answer,
		record.Correct,
		record.Revealed,
		record.NextReviewDays,
		record.NextReviewAt,
		record.ReviewedAt,
	)
	if err != nil {
		s.logger.Error("failed to insert review record",
			slog.String("error", err.Error()),
			slog.String("review_id", record.ID.String()),
			slog.String("word_id", record.WordID.String()))
		return MapError(err)
	}

	return nil
}

// ListByWord implements store.ReviewStore.ListByWord.
func (s *PostgresReviewStore) ListByWord(
	ctx context.Context,
	wordID uuid.UUID,
) ([]*domain.ReviewRecord, error) {
	const query = `
		SELECT id, word_id, answer, correct, revealed,
		       next_review_days, next_review_at, reviewed_at
		FROM reviews
		WHERE word_id = $1
		ORDER BY reviewed_at DESC`

	rows, err := s.db.QueryContext(ctx, query, wordID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	var records []*domain.ReviewRecord
	for rows.Next() {
		var record domain.ReviewRecord
		err := rows.Scan(
			&record.ID,
			&record.WordID,
			&record.Answer,
			&record.Correct,
			&record.Revealed,
			&record.NextReviewDays,
			&record.NextReviewAt,
			&record.ReviewedAt,
		)
		if err != nil {
			return nil, MapError(err)
		}
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return records, nil
}

// WithTx implements store.ReviewStore.WithTx.
func (s *PostgresReviewStore) WithTx(tx *sql.Tx) store.ReviewStore {
	return &PostgresReviewStore{
		db:     tx,
		logger: s.logger,
	}
}
