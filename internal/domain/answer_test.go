package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateAnswer(t *testing.T) {
	t.Parallel()

	word, err := NewWord("trộn", "mix", 150, true, nil)
	require.NoError(t, err)

	testCases := []struct {
		name      string
		submitted string
		correct   bool
	}{
		{
			name:      "exact match is correct",
			submitted: "trộn",
			correct:   true,
		},
		{
			name:      "diacritic-insensitive match is correct",
			submitted: "tron",
			correct:   true,
		},
		{
			name:      "case-insensitive match is correct",
			submitted: "TRỘN",
			correct:   true,
		},
		{
			name:      "surrounding whitespace is ignored",
			submitted: "  trộn ",
			correct:   true,
		},
		{
			name:      "wrong word is incorrect",
			submitted: "đẹp",
			correct:   false,
		},
		{
			name:      "partial answer gets no credit",
			submitted: "trộ",
			correct:   false,
		},
		{
			name:      "empty submission is incorrect",
			submitted: "",
			correct:   false,
		},
		{
			name:      "whitespace-only submission is incorrect",
			submitted: "   ",
			correct:   false,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			verdict := EvaluateAnswer(tc.submitted, word)
			assert.Equal(t, tc.correct, verdict.Correct)
			assert.Equal(t, "trộn", verdict.CanonicalAnswer, "canonical answer is returned regardless of correctness")
		})
	}
}

func TestEvaluateAnswerDoesNotMutateWord(t *testing.T) {
	t.Parallel()

	word, err := NewWord("ăn", "to eat", 45, true, nil)
	require.NoError(t, err)
	original := *word

	EvaluateAnswer("an", word)
	EvaluateAnswer("wrong", word)

	assert.Equal(t, original, *word)
}
