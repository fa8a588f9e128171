package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/vocab-api/internal/service/learning"
	"github.com/phrazzld/vocab-api/internal/session"
	"github.com/phrazzld/vocab-api/internal/store"
)

// MapErrorToStatusCode maps service and store errors to HTTP status codes.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, session.ErrSubmissionInFlight):
		return http.StatusConflict
	case errors.Is(err, learning.ErrDeckUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-safe message for an error, hiding
// internal details behind generic phrasing.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, session.ErrSubmissionInFlight):
		return "A submission is already being processed"
	case errors.Is(err, learning.ErrDeckUnavailable):
		return "Card data is temporarily unavailable, please retry"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid request data"
	case errors.Is(err, learning.ErrReviewNotRecorded):
		return "Failed to record the review, please retry"
	default:
		return "An internal error occurred"
	}
}
