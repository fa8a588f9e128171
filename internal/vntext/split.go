package vntext

import (
	"regexp"
	"strings"
)

// SplitSentence locates target inside sentence and returns the three
// segments (before, match, after) so callers can highlight the matched
// word. The match segment preserves the original characters from sentence,
// not from target.
//
// The search runs in two stages:
//  1. a case-insensitive whole-word match, with regex metacharacters in
//     target escaped;
//  2. on failure, a case-insensitive raw substring search.
//
// If both stages fail (or target is empty), it returns ("", "", sentence)
// so no highlighting occurs. It never fails and never returns overlapping
// or out-of-range segments.
func SplitSentence(sentence, target string) (before, match, after string) {
	if target == "" {
		return "", "", sentence
	}

	wordBoundary, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(target) + `\b`)
	if err == nil {
		if loc := wordBoundary.FindStringIndex(sentence); loc != nil {
			return sentence[:loc[0]], sentence[loc[0]:loc[1]], sentence[loc[1]:]
		}
	}

	// Word-boundary matching misses targets that begin or end with a
	// non-ASCII letter (\b only recognizes ASCII word characters), so a
	// plain substring search handles the rest.
	lowerSentence := strings.ToLower(sentence)
	lowerTarget := strings.ToLower(target)

	idx := strings.Index(lowerSentence, lowerTarget)
	if idx < 0 {
		return "", "", sentence
	}

	end := idx + len(lowerTarget)
	if end > len(sentence) {
		// Lowercasing changed byte lengths; give up on highlighting rather
		// than slice past the end of the original sentence.
		return "", "", sentence
	}

	return sentence[:idx], sentence[idx:end], sentence[end:]
}
