package session

import (
	"github.com/google/uuid"

	"github.com/phrazzld/vocab-api/internal/domain"
)

// Deck is an ordered, finite collection of words exposed one at a time.
// Implementations must be deterministic for a given state: the same state
// always yields the same current word, and words completed in this session
// are excluded. A nil current word means the session is exhausted.
type Deck interface {
	// Current returns the word at the state's position, skipping any words
	// already completed this session. Returns nil when the deck is
	// exhausted.
	Current(st State) *domain.Word

	// ByID returns the word with the given ID, or nil if the deck does not
	// contain it.
	ByID(id uuid.UUID) *domain.Word

	// Len returns the total number of words in the deck.
	Len() int
}

// SliceDeck is the reference Deck implementation: words in their definition
// order. A production source substitutes a real prioritization policy (due
// dates, frequency buckets) behind the same interface by ordering the slice
// it is built from.
type SliceDeck struct {
	words []*domain.Word
	byID  map[uuid.UUID]*domain.Word
}

// Ensure SliceDeck implements the Deck interface
var _ Deck = (*SliceDeck)(nil)

// NewSliceDeck creates a deck over the given words, preserving their order.
// The deck holds the words by reference and never mutates them.
func NewSliceDeck(words []*domain.Word) *SliceDeck {
	byID := make(map[uuid.UUID]*domain.Word, len(words))
	for _, w := range words {
		byID[w.ID] = w
	}
	return &SliceDeck{
		words: words,
		byID:  byID,
	}
}

// Current implements Deck.Current.
func (d *SliceDeck) Current(st State) *domain.Word {
	for i := st.Position; i < len(d.words); i++ {
		if !st.IsCompleted(d.words[i].ID) {
			return d.words[i]
		}
	}
	return nil
}

// ByID implements Deck.ByID.
func (d *SliceDeck) ByID(id uuid.UUID) *domain.Word {
	return d.byID[id]
}

// Len implements Deck.Len.
func (d *SliceDeck) Len() int {
	return len(d.words)
}
