package api

import (
	"github.com/phrazzld/vocab-api/internal/domain"
	"github.com/phrazzld/vocab-api/internal/vntext"
)

// SentenceContextResponse carries a word's parallel example sentences.
type SentenceContextResponse struct {
	PromptSentence string `json:"promptSentence"`
	TargetSentence string `json:"targetSentence"`
}

// CardResponse represents the response data for a word card.
type CardResponse struct {
	ID            string                   `json:"id"`
	TargetText    string                   `json:"targetText"`
	PromptText    string                   `json:"promptText"`
	FrequencyRank int                      `json:"frequencyRank"`
	IsNew         bool                     `json:"isNew"`
	Context       *SentenceContextResponse `json:"context,omitempty"`
}

// HighlightSegments is one sentence split around the word occurrence:
// before + match + after reassembles the original sentence. An empty match
// means the word could not be located and no highlighting should occur.
type HighlightSegments struct {
	Before string `json:"before"`
	Match  string `json:"match"`
	After  string `json:"after"`
}

// HighlightResponse carries the aligned sentence splits for both the prompt
// and the target sentence.
type HighlightResponse struct {
	Prompt HighlightSegments `json:"prompt"`
	Target HighlightSegments `json:"target"`
}

// LearnResponse is the response body for a next-card request. When the
// session is complete, Card and Highlight are absent and Message carries the
// completion text.
type LearnResponse struct {
	Type      string             `json:"type"`
	Card      *CardResponse      `json:"card,omitempty"`
	Message   string             `json:"message,omitempty"`
	Highlight *HighlightResponse `json:"highlight,omitempty"`
}

// ReviewRequest is the request body for submitting an answer.
type ReviewRequest struct {
	CardID     string `json:"cardId"     validate:"required,uuid"`
	UserAnswer string `json:"userAnswer"`
	Revealed   bool   `json:"revealed"`
}

// ReviewResponse is the response body for a submitted answer.
type ReviewResponse struct {
	Correct        bool   `json:"correct"`
	CorrectAnswer  string `json:"correctAnswer"`
	NextReviewDays int    `json:"nextReviewDays"`
	Message        string `json:"message"`
}

// cardToResponse transforms a domain word into its response shape.
func cardToResponse(word *domain.Word) *CardResponse {
	resp := &CardResponse{
		ID:            word.ID.String(),
		TargetText:    word.TargetText,
		PromptText:    word.PromptText,
		FrequencyRank: word.FrequencyRank,
		IsNew:         word.IsNew,
	}
	if word.Context != nil {
		resp.Context = &SentenceContextResponse{
			PromptSentence: word.Context.PromptSentence,
			TargetSentence: word.Context.TargetSentence,
		}
	}
	return resp
}

// buildHighlight splits both context sentences around the word so the
// presentation layer can highlight the same occurrence in each language.
// Returns nil when the word has no sentence context.
func buildHighlight(word *domain.Word) *HighlightResponse {
	if word.Context == nil {
		return nil
	}

	pb, pm, pa := vntext.SplitSentence(word.Context.PromptSentence, word.PromptText)
	tb, tm, ta := vntext.SplitSentence(word.Context.TargetSentence, word.TargetText)

	return &HighlightResponse{
		Prompt: HighlightSegments{Before: pb, Match: pm, After: pa},
		Target: HighlightSegments{Before: tb, Match: tm, After: ta},
	}
}
