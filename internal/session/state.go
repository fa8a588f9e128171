// Package session holds the explicit state of one learning session: the
// position in the deck, the set of words completed so far, and the reveal
// flag for the current word. State is a value; every mutation returns a new
// State so there is no hidden package-level session data and operations stay
// deterministic and testable.
package session

import (
	"maps"

	"github.com/google/uuid"
)

// State is the explicit, self-contained state of one learning session.
type State struct {
	// Position is the index into the ordered deck. It is monotonically
	// non-decreasing within a session and only resets when a new session
	// starts.
	Position int

	// Completed is the set of word IDs answered correctly this session.
	Completed map[uuid.UUID]struct{}

	// Revealed reports whether the answer for the current word was shown
	// before submission. It resets whenever the position advances.
	Revealed bool

	// Generation increments on every reset. Responses computed against an
	// older generation are stale and must be discarded.
	Generation int
}

// NewState creates the state for a fresh session at position zero.
func NewState() State {
	return State{
		Completed:  make(map[uuid.UUID]struct{}),
		Generation: 1,
	}
}

// Advance returns the state after a correct submission for the given word:
// the position moves forward, the word is recorded as completed, and the
// reveal flag resets.
func (s State) Advance(wordID uuid.UUID) State {
	completed := maps.Clone(s.Completed)
	if completed == nil {
		completed = make(map[uuid.UUID]struct{})
	}
	completed[wordID] = struct{}{}

	return State{
		Position:   s.Position + 1,
		Completed:  completed,
		Revealed:   false,
		Generation: s.Generation,
	}
}

// Skip returns the state after skipping the current word: the position moves
// forward and the reveal flag resets, but the word is not recorded as
// completed.
func (s State) Skip() State {
	return State{
		Position:   s.Position + 1,
		Completed:  s.Completed,
		Revealed:   false,
		Generation: s.Generation,
	}
}

// Reveal returns the state with the reveal flag set. It does not advance the
// position and does not count as progress.
func (s State) Reveal() State {
	return State{
		Position:   s.Position,
		Completed:  s.Completed,
		Revealed:   true,
		Generation: s.Generation,
	}
}

// Reset returns the state for a new session: position zero, no completed
// words, and a bumped generation so stale in-flight results are discarded.
func (s State) Reset() State {
	return State{
		Completed:  make(map[uuid.UUID]struct{}),
		Generation: s.Generation + 1,
	}
}

// IsCompleted reports whether the given word was answered correctly this
// session.
func (s State) IsCompleted(wordID uuid.UUID) bool {
	_, ok := s.Completed[wordID]
	return ok
}

// CompletedCount returns the number of words completed this session.
func (s State) CompletedCount() int {
	return len(s.Completed)
}
