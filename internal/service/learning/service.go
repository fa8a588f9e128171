// Package learning orchestrates one vocabulary learning session: it asks the
// card source for the current word, evaluates submitted answers, and feeds
// the verdict into the scheduling policy. It owns no session state itself;
// every operation takes an explicit session.State and returns the successor
// state, so multiple sessions can run side by side and every transition is
// deterministic and testable.
package learning

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/phrazzld/vocab-api/internal/domain"
	"github.com/phrazzld/vocab-api/internal/session"
)

// CardKind distinguishes words seen for the first time from review words.
type CardKind string

// Possible card kinds in a learn response.
const (
	CardKindNew    CardKind = "new"
	CardKindReview CardKind = "review"
)

// User-facing session messages.
const (
	// CompletionMessage is shown once the deck is exhausted.
	CompletionMessage = "All caught up! Great work! 🎉"

	// CorrectMessage is shown after a correct submission.
	CorrectMessage = "Correct! 🎉"

	// NotFoundMessage is shown when a submission names an unknown word.
	NotFoundMessage = "Card not found"
)

// LearnCard is the response to a next-card request: either the word to
// present, or a completion signal with a human-readable message.
type LearnCard struct {
	Kind CardKind
	Word *domain.Word
	Done bool
	// Message carries the completion text when Done is set.
	Message string
}

// SubmitRequest is one submitted answer for a word.
type SubmitRequest struct {
	WordID   uuid.UUID
	Answer   string
	Revealed bool
}

// SubmitResult describes the outcome of one evaluation: the verdict, the
// canonical answer for display, and how far forward the next review was
// scheduled (zero means due again immediately).
type SubmitResult struct {
	Correct        bool
	CorrectAnswer  string
	NextReviewDays int
	Message        string
}

// Service orchestrates the learning session.
//
// All operations are total over their documented input domain: an unknown
// word ID or an empty answer is an ordinary response, not an error. Only
// collaborator failures (deck loading, review persistence) produce errors,
// and those never leave the passed-in state half-mutated.
type Service interface {
	// BuildDeck produces the deck for a new session. A transient source
	// failure is retried once before the error is surfaced. Without a word
	// repository the built-in starter deck is used.
	BuildDeck(ctx context.Context) (session.Deck, error)

	// NextCard returns the word the session state points at, or a
	// completion signal once the deck is exhausted. Deterministic for a
	// given (deck, state) pair; it never modifies state.
	NextCard(ctx context.Context, deck session.Deck, st session.State) (*LearnCard, error)

	// Submit evaluates one answer against the deck and returns the
	// successor state together with the result. The state only advances on
	// a correct answer, and only after the review record was persisted; on
	// a persistence error the input state is returned unchanged.
	Submit(
		ctx context.Context,
		deck session.Deck,
		st session.State,
		req SubmitRequest,
	) (session.State, *SubmitResult, error)
}

// Common error types for the learning service
var (
	// ErrDeckUnavailable indicates the word source failed even after the
	// automatic retry. Recoverable: the caller may try again.
	ErrDeckUnavailable = errors.New("word deck unavailable")

	// ErrReviewNotRecorded indicates the review record could not be
	// persisted. No session state was mutated.
	ErrReviewNotRecorded = errors.New("review not recorded")
)

// ServiceError wraps errors from the learning service with additional
// context, so consumers can differentiate failure sites with errors.As
// instead of string matching.
type ServiceError struct {
	// Operation is the operation that failed (e.g. "build_deck", "submit_answer")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewBuildDeckError returns a new ServiceError for the build_deck operation.
func NewBuildDeckError(message string, err error) *ServiceError {
	return &ServiceError{
		Operation: "build_deck",
		Message:   message,
		Err:       err,
	}
}

// NewSubmitAnswerError returns a new ServiceError for the submit_answer operation.
func NewSubmitAnswerError(message string, err error) *ServiceError {
	return &ServiceError{
		Operation: "submit_answer",
		Message:   message,
		Err:       err,
	}
}
