package domain

import "github.com/phrazzld/vocab-api/internal/vntext"

// Verdict is the result of evaluating a submitted answer against a word.
type Verdict struct {
	// Correct reports whether the normalized submission matched the
	// normalized target exactly.
	Correct bool

	// CanonicalAnswer is always the word's target text, regardless of
	// correctness, so callers can display it.
	CanonicalAnswer string
}

// EvaluateAnswer compares a submitted answer to the word's target text.
// Both sides are normalized (case and diacritic folding, trimming) before
// comparison; the match is total-string equality with no partial credit and
// no edit-distance tolerance. An empty or whitespace-only submission is an
// ordinary incorrect answer. The word is never mutated.
func EvaluateAnswer(submitted string, word *Word) Verdict {
	verdict := Verdict{CanonicalAnswer: word.TargetText}

	normalized := vntext.Normalize(submitted)
	if normalized == "" {
		return verdict
	}

	verdict.Correct = normalized == vntext.Normalize(word.TargetText)
	return verdict
}
