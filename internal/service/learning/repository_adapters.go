package learning

import (
	"context"

	"github.com/phrazzld/vocab-api/internal/domain"
	"github.com/phrazzld/vocab-api/internal/store"
)

// WordRepository is the narrow word-source interface the learning service
// depends on. Defined here (not in store) so the service states exactly what
// it needs and tests can substitute fakes without a database.
type WordRepository interface {
	// ListOrdered returns every word in deck order.
	ListOrdered(ctx context.Context) ([]*domain.Word, error)
}

// ReviewRecorder persists one review record per submission.
type ReviewRecorder interface {
	Record(ctx context.Context, record *domain.ReviewRecord) error
}

// wordStoreAdapter adapts a store.WordStore to the WordRepository interface.
type wordStoreAdapter struct {
	store store.WordStore
}

// NewWordRepositoryAdapter creates a WordRepository backed by the given store.
func NewWordRepositoryAdapter(s store.WordStore) WordRepository {
	return &wordStoreAdapter{store: s}
}

// ListOrdered implements WordRepository.
func (a *wordStoreAdapter) ListOrdered(ctx context.Context) ([]*domain.Word, error) {
	return a.store.ListOrdered(ctx)
}

// reviewStoreAdapter adapts a store.ReviewStore to the ReviewRecorder interface.
type reviewStoreAdapter struct {
	store store.ReviewStore
}

// NewReviewRecorderAdapter creates a ReviewRecorder backed by the given store.
func NewReviewRecorderAdapter(s store.ReviewStore) ReviewRecorder {
	return &reviewStoreAdapter{store: s}
}

// Record implements ReviewRecorder.
func (a *reviewStoreAdapter) Record(ctx context.Context, record *domain.ReviewRecord) error {
	return a.store.Create(ctx, record)
}
