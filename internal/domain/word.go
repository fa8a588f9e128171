package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/vocab-api/internal/vntext"
)

// Word-specific validation errors
var (
	// ErrWordIDEmpty is returned when a word ID is empty or nil.
	ErrWordIDEmpty = errors.New("word ID cannot be empty")

	// ErrWordTargetEmpty is returned when a word's target text is empty.
	ErrWordTargetEmpty = errors.New("word target text cannot be empty")

	// ErrWordPromptEmpty is returned when a word's prompt text is empty.
	ErrWordPromptEmpty = errors.New("word prompt text cannot be empty")

	// ErrWordRankNegative is returned when a word's frequency rank is negative.
	ErrWordRankNegative = errors.New("word frequency rank cannot be negative")

	// ErrContextMissingTarget is returned when a sentence context's target
	// sentence does not contain the target text anywhere.
	ErrContextMissingTarget = errors.New("target sentence does not contain the target text")
)

// SentenceContext is a pair of parallel example sentences for a word. The
// target sentence contains the target text so the presentation layer can
// highlight it in place.
type SentenceContext struct {
	PromptSentence string `json:"promptSentence"`
	TargetSentence string `json:"targetSentence"`
}

// Word represents one vocabulary unit: a target-language answer, a prompt
// gloss, and optional example-sentence context. Words are immutable once
// created and are shared by ID across a session.
type Word struct {
	ID            uuid.UUID        `json:"id"`
	TargetText    string           `json:"targetText"`
	PromptText    string           `json:"promptText"`
	FrequencyRank int              `json:"frequencyRank"`
	IsNew         bool             `json:"isNew"`
	Context       *SentenceContext `json:"context,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// NewWord creates a new Word with a generated ID and creation timestamps.
// Returns an error if validation fails.
func NewWord(
	targetText, promptText string,
	frequencyRank int,
	isNew bool,
	context *SentenceContext,
) (*Word, error) {
	now := time.Now().UTC()
	word := &Word{
		ID:            uuid.New(),
		TargetText:    targetText,
		PromptText:    promptText,
		FrequencyRank: frequencyRank,
		IsNew:         isNew,
		Context:       context,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := word.Validate(); err != nil {
		return nil, err
	}

	return word, nil
}

// Validate checks if the Word has valid data.
// Returns an error if any field fails validation.
func (w *Word) Validate() error {
	if w.ID == uuid.Nil {
		return ErrWordIDEmpty
	}

	if strings.TrimSpace(w.TargetText) == "" {
		return ErrWordTargetEmpty
	}

	if strings.TrimSpace(w.PromptText) == "" {
		return ErrWordPromptEmpty
	}

	if w.FrequencyRank < 0 {
		return ErrWordRankNegative
	}

	if w.Context != nil {
		// The target text must be locatable inside the target sentence,
		// case-insensitively, or highlighting can never line up.
		lowerSentence := strings.ToLower(w.Context.TargetSentence)
		lowerTarget := strings.ToLower(w.TargetText)
		if !strings.Contains(lowerSentence, lowerTarget) {
			return ErrContextMissingTarget
		}
	}

	return nil
}

// HighlightTarget splits the context's target sentence around the target
// text. Returns empty segments and the whole sentence when the word has no
// context or the target cannot be located.
func (w *Word) HighlightTarget() (before, match, after string) {
	if w.Context == nil {
		return "", "", ""
	}
	return vntext.SplitSentence(w.Context.TargetSentence, w.TargetText)
}
