package api

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/phrazzld/vocab-api/internal/api/shared"
	"github.com/phrazzld/vocab-api/internal/service/learning"
	"github.com/phrazzld/vocab-api/internal/session"
)

// SessionHandler serves the learning session endpoints: fetching the next
// card, submitting answers, and the reveal/skip/reset session actions. It
// holds the deck for the current session and swaps it atomically on reset.
type SessionHandler struct {
	service learning.Service
	manager *session.Manager
	logger  *slog.Logger

	deckMu sync.RWMutex
	deck   session.Deck
}

// NewSessionHandler creates a new SessionHandler with the given dependencies.
func NewSessionHandler(
	service learning.Service,
	manager *session.Manager,
	deck session.Deck,
	logger *slog.Logger,
) *SessionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionHandler{
		service: service,
		manager: manager,
		deck:    deck,
		logger:  logger.With(slog.String("component", "session_handler")),
	}
}

func (h *SessionHandler) currentDeck() session.Deck {
	h.deckMu.RLock()
	defer h.deckMu.RUnlock()
	return h.deck
}

func (h *SessionHandler) swapDeck(deck session.Deck) {
	h.deckMu.Lock()
	defer h.deckMu.Unlock()
	h.deck = deck
}

// GetLearnCard handles GET /api/learn. It returns the word the session
// currently points at, or a completion message once every word in the deck
// has been answered correctly.
func (h *SessionHandler) GetLearnCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	st := h.manager.Snapshot()
	card, err := h.service.NextCard(ctx, h.currentDeck(), st)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, learnCardToResponse(card))
}

// SubmitReview handles POST /api/review. At most one submission is processed
// at a time; a second submission arriving while the first is still in flight
// is rejected with 409. A result computed before the session was reset is
// discarded rather than applied to the fresh session.
func (h *SessionHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := h.logger.With(slog.String("trace_id", shared.GetTraceID(ctx)))

	var req ReviewRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request data")
		return
	}

	wordID, err := uuid.Parse(req.CardID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid card ID format")
		return
	}

	st, err := h.manager.BeginSubmit()
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	defer h.manager.EndSubmit()

	next, result, err := h.service.Submit(ctx, h.currentDeck(), st, learning.SubmitRequest{
		WordID:   wordID,
		Answer:   req.UserAnswer,
		Revealed: req.Revealed,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if !errors.Is(err, learning.ErrReviewNotRecorded) {
			status = MapErrorToStatusCode(err)
		}
		shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
		return
	}

	if !h.manager.Commit(next) {
		log.DebugContext(ctx, "discarding submission result from a reset session",
			slog.String("word_id", wordID.String()),
			slog.Int("generation", next.Generation))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ReviewResponse{
		Correct:        result.Correct,
		CorrectAnswer:  result.CorrectAnswer,
		NextReviewDays: result.NextReviewDays,
		Message:        result.Message,
	})
}

// RevealAnswer handles POST /api/session/reveal. It marks the answer for the
// current word as shown; the session position does not move.
func (h *SessionHandler) RevealAnswer(w http.ResponseWriter, _ *http.Request) {
	h.manager.Update(session.State.Reveal)
	w.WriteHeader(http.StatusNoContent)
}

// SkipCard handles POST /api/session/skip. The session moves past the
// current word without marking it completed, and the next card is returned.
func (h *SessionHandler) SkipCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	st := h.manager.Update(session.State.Skip)
	card, err := h.service.NextCard(ctx, h.currentDeck(), st)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, learnCardToResponse(card))
}

// ResetSession handles POST /api/session/reset. The deck is rebuilt from the
// word source and the session starts over; any submission still in flight
// against the old session is discarded when it completes.
func (h *SessionHandler) ResetSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := h.logger.With(slog.String("trace_id", shared.GetTraceID(ctx)))

	deck, err := h.service.BuildDeck(ctx)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.swapDeck(deck)
	st := h.manager.Reset()
	log.InfoContext(ctx, "session reset",
		slog.Int("deck_size", deck.Len()),
		slog.Int("generation", st.Generation))

	w.WriteHeader(http.StatusNoContent)
}

// learnCardToResponse shapes a learn card into the wire response. Completion
// carries only the message; a word carries the card plus its highlight split.
func learnCardToResponse(card *learning.LearnCard) LearnResponse {
	if card.Done {
		return LearnResponse{
			Type:    string(card.Kind),
			Message: card.Message,
		}
	}
	return LearnResponse{
		Type:      string(card.Kind),
		Card:      cardToResponse(card.Word),
		Highlight: buildHighlight(card.Word),
	}
}
