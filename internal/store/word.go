// Package store provides persistence interfaces and sentinel errors for the
// vocabulary learning session. Implementations live under internal/platform.
package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/phrazzld/vocab-api/internal/domain"
)

// WordStore defines the interface for word persistence.
type WordStore interface {
	// CreateMultiple saves multiple words to the store. It must be run
	// within a transaction (use WithTx together with RunInTransaction) so
	// either all words are created or none. Returns validation errors if
	// any word is invalid.
	CreateMultiple(ctx context.Context, words []*domain.Word) error

	// GetByID retrieves a word by its unique ID.
	// Returns ErrWordNotFound if the word does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)

	// ListOrdered returns every word in deck order. The ordering is the
	// store's prioritization policy and must be deterministic; the
	// Postgres implementation orders by frequency rank, then creation
	// time. An empty slice (not an error) means there is nothing to learn.
	ListOrdered(ctx context.Context) ([]*domain.Word, error)

	// Count returns the total number of words in the store.
	Count(ctx context.Context) (int, error)

	// WithTx returns a WordStore bound to the given transaction so
	// multiple operations can run atomically. The transaction is created
	// and managed by the caller.
	WithTx(tx *sql.Tx) WordStore
}
