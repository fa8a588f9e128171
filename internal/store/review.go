package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/phrazzld/vocab-api/internal/domain"
)

// ReviewStore defines the interface for review record persistence. The
// session core calls it once per submission; a failure here must surface
// before any session state is committed.
type ReviewStore interface {
	// Create saves one review record.
	// Returns validation errors if the record is invalid.
	Create(ctx context.Context, record *domain.ReviewRecord) error

	// ListByWord returns the review history for a word, most recent first.
	ListByWord(ctx context.Context, wordID uuid.UUID) ([]*domain.ReviewRecord, error)

	// WithTx returns a ReviewStore bound to the given transaction.
	WithTx(tx *sql.Tx) ReviewStore
}
