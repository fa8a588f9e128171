package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ReviewRecord validation errors
var (
	// ErrReviewIDEmpty is returned when a review record's ID is empty or nil.
	ErrReviewIDEmpty = errors.New("review ID cannot be empty")

	// ErrReviewWordIDEmpty is returned when a review record's word ID is empty or nil.
	ErrReviewWordIDEmpty = errors.New("review word ID cannot be empty")

	// ErrReviewDaysNegative is returned when a review's next-review interval is negative.
	ErrReviewDaysNegative = errors.New("next review days cannot be negative")
)

// ReviewRecord captures the outcome of one submitted answer: whether it was
// correct, what was typed, whether the answer had been revealed first, and
// how far forward the next review was scheduled. The session core produces
// one record per submission; persisting it is the store's job.
type ReviewRecord struct {
	ID             uuid.UUID `json:"id"`
	WordID         uuid.UUID `json:"word_id"`
	Answer         string    `json:"answer"`
	Correct        bool      `json:"correct"`
	Revealed       bool      `json:"revealed"`
	NextReviewDays int       `json:"next_review_days"`
	NextReviewAt   time.Time `json:"next_review_at"`
	ReviewedAt     time.Time `json:"reviewed_at"`
}

// NewReviewRecord creates a review record for a submission evaluated at the
// given time. NextReviewAt is derived from nextReviewDays: zero days means
// the word is due again immediately.
func NewReviewRecord(
	wordID uuid.UUID,
	answer string,
	correct, revealed bool,
	nextReviewDays int,
	now time.Time,
) (*ReviewRecord, error) {
	record := &ReviewRecord{
		ID:             uuid.New(),
		WordID:         wordID,
		Answer:         answer,
		Correct:        correct,
		Revealed:       revealed,
		NextReviewDays: nextReviewDays,
		NextReviewAt:   now.AddDate(0, 0, nextReviewDays),
		ReviewedAt:     now,
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate checks if the ReviewRecord has valid data.
func (r *ReviewRecord) Validate() error {
	if r.ID == uuid.Nil {
		return ErrReviewIDEmpty
	}

	if r.WordID == uuid.Nil {
		return ErrReviewWordIDEmpty
	}

	if r.NextReviewDays < 0 {
		return ErrReviewDaysNegative
	}

	return nil
}
