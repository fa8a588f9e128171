package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWord(t *testing.T) {
	t.Parallel()

	t.Run("creates a valid word with context", func(t *testing.T) {
		t.Parallel()
		word, err := NewWord("trộn", "mix", 150, true, &SentenceContext{
			PromptSentence: "Do you want to mix colors?",
			TargetSentence: "Bạn có muốn trộn màu không?",
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, word.ID)
		assert.Equal(t, "trộn", word.TargetText)
		assert.True(t, word.IsNew)
		assert.False(t, word.CreatedAt.IsZero())
	})

	t.Run("creates a valid word without context", func(t *testing.T) {
		t.Parallel()
		word, err := NewWord("nhà", "house", 30, false, nil)
		require.NoError(t, err)
		assert.Nil(t, word.Context)
	})

	t.Run("rejects empty target text", func(t *testing.T) {
		t.Parallel()
		_, err := NewWord("  ", "mix", 150, true, nil)
		assert.ErrorIs(t, err, ErrWordTargetEmpty)
	})

	t.Run("rejects empty prompt text", func(t *testing.T) {
		t.Parallel()
		_, err := NewWord("trộn", "", 150, true, nil)
		assert.ErrorIs(t, err, ErrWordPromptEmpty)
	})

	t.Run("rejects negative frequency rank", func(t *testing.T) {
		t.Parallel()
		_, err := NewWord("trộn", "mix", -1, true, nil)
		assert.ErrorIs(t, err, ErrWordRankNegative)
	})

	t.Run("rejects context whose target sentence lacks the target text", func(t *testing.T) {
		t.Parallel()
		_, err := NewWord("trộn", "mix", 150, true, &SentenceContext{
			PromptSentence: "She is very beautiful.",
			TargetSentence: "Cô ấy rất đẹp.",
		})
		assert.ErrorIs(t, err, ErrContextMissingTarget)
	})
}

func TestWordValidateRejectsNilID(t *testing.T) {
	t.Parallel()

	word := &Word{TargetText: "ăn", PromptText: "to eat"}
	assert.ErrorIs(t, word.Validate(), ErrWordIDEmpty)
}

func TestHighlightTarget(t *testing.T) {
	t.Parallel()

	t.Run("splits the target sentence around the target text", func(t *testing.T) {
		t.Parallel()
		word, err := NewWord("trộn", "mix", 150, true, &SentenceContext{
			PromptSentence: "Do you want to mix colors?",
			TargetSentence: "Bạn có muốn trộn màu không?",
		})
		require.NoError(t, err)

		before, match, after := word.HighlightTarget()
		assert.Equal(t, "Bạn có muốn ", before)
		assert.Equal(t, "trộn", match)
		assert.Equal(t, " màu không?", after)
	})

	t.Run("returns empty segments without context", func(t *testing.T) {
		t.Parallel()
		word, err := NewWord("nhà", "house", 30, false, nil)
		require.NoError(t, err)

		before, match, after := word.HighlightTarget()
		assert.Empty(t, before)
		assert.Empty(t, match)
		assert.Empty(t, after)
	})
}
