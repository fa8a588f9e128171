package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextReviewDays(t *testing.T) {
	t.Parallel()

	svc := NewDefaultService()

	assert.Equal(t, 3, svc.NextReviewDays(true), "correct answer schedules 3 days forward")
	assert.Equal(t, 0, svc.NextReviewDays(false), "incorrect answer stays due immediately")
}

func TestNextReviewDaysWithCustomParams(t *testing.T) {
	t.Parallel()

	svc, err := NewServiceWithParams(NewParams(ParamsConfig{
		CorrectIntervalDays:   7,
		IncorrectIntervalDays: 1,
	}))
	require.NoError(t, err)

	assert.Equal(t, 7, svc.NextReviewDays(true))
	assert.Equal(t, 1, svc.NextReviewDays(false))
}

func TestNewServiceWithNilParams(t *testing.T) {
	t.Parallel()

	_, err := NewServiceWithParams(nil)
	assert.ErrorIs(t, err, ErrNilParams)
}

func TestNextReviewDaysNeverNegative(t *testing.T) {
	t.Parallel()

	svc, err := NewServiceWithParams(&Params{
		CorrectIntervalDays:   -3,
		IncorrectIntervalDays: -1,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, svc.NextReviewDays(true))
	assert.Equal(t, 0, svc.NextReviewDays(false))
}

func TestNextReviewAt(t *testing.T) {
	t.Parallel()

	svc := NewDefaultService()
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, now.AddDate(0, 0, 3), svc.NextReviewAt(true, now))
	assert.Equal(t, now, svc.NextReviewAt(false, now))
}

func TestNewParamsKeepsDefaultsForZeroValues(t *testing.T) {
	t.Parallel()

	params := NewParams(ParamsConfig{})
	assert.Equal(t, 3, params.CorrectIntervalDays)
	assert.Equal(t, 0, params.IncorrectIntervalDays)
}
