package session

import (
	"errors"
	"sync"
)

// ErrSubmissionInFlight is returned when a submission arrives while another
// submission for the same session is still being processed. Callers must
// serialize submissions; the second one is rejected, not queued.
var ErrSubmissionInFlight = errors.New("a submission is already in flight for this session")

// Manager owns the State for the lifetime of one learning session and
// serializes the state transitions triggered by user actions. All methods
// are safe for concurrent use, but at most one submission may be in flight
// at a time and results computed before a reset are discarded.
type Manager struct {
	mu       sync.Mutex
	state    State
	inFlight bool
}

// NewManager creates a manager holding the state of a fresh session.
func NewManager() *Manager {
	return &Manager{
		state: NewState(),
	}
}

// Snapshot returns the current session state.
func (m *Manager) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// BeginSubmit marks a submission as in flight and returns the state it
// should be evaluated against. Returns ErrSubmissionInFlight if another
// submission has begun but not yet ended; the caller must not process the
// new submission in that case.
func (m *Manager) BeginSubmit() (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.inFlight {
		return State{}, ErrSubmissionInFlight
	}

	m.inFlight = true
	return m.state, nil
}

// EndSubmit clears the in-flight marker. It must be called exactly once for
// every successful BeginSubmit, typically via defer.
func (m *Manager) EndSubmit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inFlight = false
}

// Commit applies a state produced by a submission. The new state is
// discarded when its generation no longer matches the current one, which
// happens when the session was reset while the submission was in flight.
// Reports whether the state was applied.
func (m *Manager) Commit(next State) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if next.Generation != m.state.Generation {
		return false
	}

	m.state = next
	return true
}

// Update applies fn to the current state under the session lock and returns
// the result. Used for synchronous transitions (reveal, skip) that do not
// go through the submit path.
func (m *Manager) Update(fn func(State) State) State {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = fn(m.state)
	return m.state
}

// Reset starts a new session: position zero, no completed words, and a new
// generation so any stale in-flight result is discarded on Commit.
func (m *Manager) Reset() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = m.state.Reset()
	return m.state
}
