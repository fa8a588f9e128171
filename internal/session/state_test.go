package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewState(t *testing.T) {
	t.Parallel()

	st := NewState()
	assert.Equal(t, 0, st.Position)
	assert.Equal(t, 0, st.CompletedCount())
	assert.False(t, st.Revealed)
	assert.Equal(t, 1, st.Generation)
}

func TestAdvance(t *testing.T) {
	t.Parallel()

	wordID := uuid.New()
	st := NewState().Reveal()

	next := st.Advance(wordID)

	assert.Equal(t, 1, next.Position)
	assert.True(t, next.IsCompleted(wordID))
	assert.False(t, next.Revealed, "advancing resets the reveal flag")

	// The original state value is untouched.
	assert.Equal(t, 0, st.Position)
	assert.False(t, st.IsCompleted(wordID))
	assert.True(t, st.Revealed)
}

func TestSkipAdvancesWithoutCompleting(t *testing.T) {
	t.Parallel()

	wordID := uuid.New()
	st := NewState()

	next := st.Skip()

	assert.Equal(t, 1, next.Position)
	assert.False(t, next.IsCompleted(wordID))
	assert.Equal(t, 0, next.CompletedCount())
}

func TestRevealDoesNotAdvance(t *testing.T) {
	t.Parallel()

	st := NewState()
	next := st.Reveal()

	assert.True(t, next.Revealed)
	assert.Equal(t, st.Position, next.Position)
	assert.Equal(t, st.CompletedCount(), next.CompletedCount())
}

func TestReset(t *testing.T) {
	t.Parallel()

	st := NewState().Advance(uuid.New()).Advance(uuid.New()).Reveal()
	fresh := st.Reset()

	assert.Equal(t, 0, fresh.Position)
	assert.Equal(t, 0, fresh.CompletedCount())
	assert.False(t, fresh.Revealed)
	assert.Equal(t, st.Generation+1, fresh.Generation, "reset bumps the generation")
}

func TestAdvanceOnZeroValueState(t *testing.T) {
	t.Parallel()

	// A zero-value State has a nil completed set; Advance must still work.
	var st State
	wordID := uuid.New()

	next := st.Advance(wordID)
	assert.True(t, next.IsCompleted(wordID))
	assert.Equal(t, 1, next.Position)
}

func TestPositionIsMonotonic(t *testing.T) {
	t.Parallel()

	st := NewState()
	positions := []int{st.Position}

	st = st.Advance(uuid.New())
	positions = append(positions, st.Position)
	st = st.Skip()
	positions = append(positions, st.Position)
	st = st.Reveal()
	positions = append(positions, st.Position)

	for i := 1; i < len(positions); i++ {
		assert.GreaterOrEqual(t, positions[i], positions[i-1])
	}
}
