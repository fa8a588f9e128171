// Package schedule decides how far forward a review is scheduled after a
// submission. The current policy is a single fixed tier (correct answers
// come back in a few days, incorrect ones stay due immediately); it sits
// behind a Service interface so a graduated spaced-repetition curve can be
// substituted without touching callers.
package schedule

import (
	"errors"
	"time"
)

// ErrNilParams is returned when a service is constructed with nil parameters.
var ErrNilParams = errors.New("schedule params cannot be nil")

// Service defines the interface for review scheduling decisions.
type Service interface {
	// NextReviewDays returns the number of days until the word is due
	// again, given whether the submitted answer was correct. The result is
	// never negative; zero means "due again immediately".
	NextReviewDays(correct bool) int

	// NextReviewAt converts the interval for the given outcome into an
	// absolute due time relative to now.
	NextReviewAt(correct bool, now time.Time) time.Time
}

// fixedIntervalService is the standard implementation of the Service
// interface: one interval for correct answers, one for incorrect.
type fixedIntervalService struct {
	params *Params
}

// NewDefaultService creates a scheduling service with default parameters.
func NewDefaultService() Service {
	return &fixedIntervalService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a scheduling service with custom parameters.
// Returns an error if params is nil.
func NewServiceWithParams(params *Params) (Service, error) {
	if params == nil {
		return nil, ErrNilParams
	}
	return &fixedIntervalService{
		params: params,
	}, nil
}

// NextReviewDays implements the Service interface.
func (s *fixedIntervalService) NextReviewDays(correct bool) int {
	days := s.params.IncorrectIntervalDays
	if correct {
		days = s.params.CorrectIntervalDays
	}
	if days < 0 {
		return 0
	}
	return days
}

// NextReviewAt implements the Service interface.
func (s *fixedIntervalService) NextReviewAt(correct bool, now time.Time) time.Time {
	return now.AddDate(0, 0, s.NextReviewDays(correct))
}
