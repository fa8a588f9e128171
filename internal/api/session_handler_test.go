package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/vocab-api/internal/api"
	"github.com/phrazzld/vocab-api/internal/domain/schedule"
	"github.com/phrazzld/vocab-api/internal/service/learning"
	"github.com/phrazzld/vocab-api/internal/session"
)

func newTestHandler(t *testing.T) *api.SessionHandler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := learning.NewService(nil, nil, schedule.NewDefaultService(), logger)

	deck, err := svc.BuildDeck(context.Background())
	require.NoError(t, err)

	return api.NewSessionHandler(svc, session.NewManager(), deck, logger)
}

func getLearn(t *testing.T, h *api.SessionHandler) (int, api.LearnResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/learn", nil)
	rec := httptest.NewRecorder()
	h.GetLearnCard(rec, req)

	var resp api.LearnResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	}
	return rec.Code, resp
}

func postReview(t *testing.T, h *api.SessionHandler, body string) (int, api.ReviewResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/review", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.SubmitReview(rec, req)

	var resp api.ReviewResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	}
	return rec.Code, resp
}

func reviewBody(cardID, answer string) string {
	b, _ := json.Marshal(map[string]any{
		"cardId":     cardID,
		"userAnswer": answer,
		"revealed":   false,
	})
	return string(b)
}

func TestGetLearnCard_FirstCard(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	code, resp := getLearn(t, h)

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "new", resp.Type)
	require.NotNil(t, resp.Card)
	assert.Equal(t, "trộn", resp.Card.TargetText)
	assert.Equal(t, "mix", resp.Card.PromptText)
	require.NotNil(t, resp.Card.Context)
	assert.Equal(t, "Bạn có muốn trộn màu không?", resp.Card.Context.TargetSentence)

	require.NotNil(t, resp.Highlight)
	assert.Equal(t, "trộn", resp.Highlight.Target.Match)
	assert.Equal(t, "Bạn có muốn ", resp.Highlight.Target.Before)
	assert.Equal(t, " màu không?", resp.Highlight.Target.After)
	assert.Equal(t, "mix", resp.Highlight.Prompt.Match)
}

func TestSubmitReview_CorrectAdvancesSession(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	_, first := getLearn(t, h)
	require.NotNil(t, first.Card)

	// Missing diacritics and different case still count as correct.
	code, resp := postReview(t, h, reviewBody(first.Card.ID, "TRON"))

	require.Equal(t, http.StatusOK, code)
	assert.True(t, resp.Correct)
	assert.Equal(t, "trộn", resp.CorrectAnswer)
	assert.Equal(t, 3, resp.NextReviewDays)
	assert.Equal(t, "Correct! 🎉", resp.Message)

	_, next := getLearn(t, h)
	require.NotNil(t, next.Card)
	assert.Equal(t, "đẹp", next.Card.TargetText)
	assert.Equal(t, "review", next.Type)
}

func TestSubmitReview_IncorrectKeepsPosition(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	_, first := getLearn(t, h)
	require.NotNil(t, first.Card)

	code, resp := postReview(t, h, reviewBody(first.Card.ID, "wrong"))

	require.Equal(t, http.StatusOK, code)
	assert.False(t, resp.Correct)
	assert.Equal(t, "trộn", resp.CorrectAnswer)
	assert.Equal(t, 0, resp.NextReviewDays)
	assert.Equal(t, `The correct answer is "trộn"`, resp.Message)

	_, again := getLearn(t, h)
	require.NotNil(t, again.Card)
	assert.Equal(t, first.Card.ID, again.Card.ID)
}

func TestSubmitReview_UnknownCardID(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	code, resp := postReview(t, h, reviewBody(uuid.New().String(), "trộn"))

	require.Equal(t, http.StatusOK, code)
	assert.False(t, resp.Correct)
	assert.Equal(t, "Card not found", resp.Message)
}

func TestSubmitReview_InvalidRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed JSON", body: `{"cardId":`},
		{name: "missing card ID", body: `{"userAnswer":"x"}`},
		{name: "non-UUID card ID", body: reviewBody("not-a-uuid", "x")},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			h := newTestHandler(t)

			code, _ := postReview(t, h, tc.body)
			assert.Equal(t, http.StatusBadRequest, code)
		})
	}
}

func TestRevealAnswer_DoesNotAdvance(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	_, first := getLearn(t, h)

	req := httptest.NewRequest(http.MethodPost, "/api/session/reveal", nil)
	rec := httptest.NewRecorder()
	h.RevealAnswer(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	_, again := getLearn(t, h)
	require.NotNil(t, again.Card)
	assert.Equal(t, first.Card.ID, again.Card.ID)
}

func TestSkipCard_ReturnsNextWithoutCompleting(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/session/skip", nil)
	rec := httptest.NewRecorder()
	h.SkipCard(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp api.LearnResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotNil(t, resp.Card)
	assert.Equal(t, "đẹp", resp.Card.TargetText)
}

func TestResetSession_StartsOver(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	_, first := getLearn(t, h)
	_, resp := postReview(t, h, reviewBody(first.Card.ID, "trộn"))
	require.True(t, resp.Correct)

	req := httptest.NewRequest(http.MethodPost, "/api/session/reset", nil)
	rec := httptest.NewRecorder()
	h.ResetSession(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	_, again := getLearn(t, h)
	require.NotNil(t, again.Card)
	assert.Equal(t, "trộn", again.Card.TargetText)
}

func TestSession_CompletesAfterAllCorrect(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	for {
		code, resp := getLearn(t, h)
		require.Equal(t, http.StatusOK, code)
		if resp.Card == nil {
			assert.Equal(t, "All caught up! Great work! 🎉", resp.Message)
			assert.Equal(t, "review", resp.Type)
			return
		}

		_, review := postReview(t, h, reviewBody(resp.Card.ID, resp.Card.TargetText))
		require.True(t, review.Correct, "answer %q rejected", resp.Card.TargetText)
	}
}

// blockingService holds Submit until released so a second concurrent
// submission can be observed being rejected.
type blockingService struct {
	learning.Service
	entered  chan struct{}
	release  chan struct{}
	enterOne sync.Once
}

func (s *blockingService) Submit(
	ctx context.Context,
	deck session.Deck,
	st session.State,
	req learning.SubmitRequest,
) (session.State, *learning.SubmitResult, error) {
	s.enterOne.Do(func() { close(s.entered) })
	<-s.release
	return s.Service.Submit(ctx, deck, st, req)
}

func TestSubmitReview_ConcurrentSubmissionRejected(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	inner := learning.NewService(nil, nil, schedule.NewDefaultService(), logger)
	deck, err := inner.BuildDeck(context.Background())
	require.NoError(t, err)

	blocking := &blockingService{
		Service: inner,
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	h := api.NewSessionHandler(blocking, session.NewManager(), deck, logger)

	st := session.NewState()
	wordID := deck.Current(st).ID
	body := reviewBody(wordID.String(), "trộn")

	firstDone := make(chan int, 1)
	go func() {
		req := httptest.NewRequest(http.MethodPost, "/api/review", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		h.SubmitReview(rec, req)
		firstDone <- rec.Code
	}()

	<-blocking.entered

	code, _ := postReview(t, h, body)
	assert.Equal(t, http.StatusConflict, code)

	close(blocking.release)
	assert.Equal(t, http.StatusOK, <-firstDone)
}

func TestSubmitReview_StaleResultDiscardedAfterReset(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	inner := learning.NewService(nil, nil, schedule.NewDefaultService(), logger)
	deck, err := inner.BuildDeck(context.Background())
	require.NoError(t, err)

	blocking := &blockingService{
		Service: inner,
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	manager := session.NewManager()
	h := api.NewSessionHandler(blocking, manager, deck, logger)

	wordID := deck.Current(session.NewState()).ID
	body := reviewBody(wordID.String(), "trộn")

	firstDone := make(chan int, 1)
	go func() {
		req := httptest.NewRequest(http.MethodPost, "/api/review", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		h.SubmitReview(rec, req)
		firstDone <- rec.Code
	}()

	<-blocking.entered

	// Reset while the submission is still being processed.
	req := httptest.NewRequest(http.MethodPost, "/api/session/reset", nil)
	rec := httptest.NewRecorder()
	h.ResetSession(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	close(blocking.release)
	require.Equal(t, http.StatusOK, <-firstDone)

	// The correct answer from the stale submission must not have advanced
	// the fresh session.
	_, resp := getLearn(t, h)
	require.NotNil(t, resp.Card)
	assert.Equal(t, "trộn", resp.Card.TargetText)

	st := manager.Snapshot()
	assert.Equal(t, 0, st.Position)
	assert.Equal(t, 0, st.CompletedCount())
}

func TestLearnResponse_HighlightReassembles(t *testing.T) {
	t.Parallel()
	h := newTestHandler(t)

	for i := 0; ; i++ {
		_, resp := getLearn(t, h)
		if resp.Card == nil {
			break
		}

		hl := resp.Highlight
		require.NotNil(t, hl, "card %d", i)
		full := hl.Target.Before + hl.Target.Match + hl.Target.After
		assert.Equal(t, resp.Card.Context.TargetSentence, full,
			fmt.Sprintf("target sentence for %q must reassemble", resp.Card.TargetText))
		full = hl.Prompt.Before + hl.Prompt.Match + hl.Prompt.After
		assert.Equal(t, resp.Card.Context.PromptSentence, full)

		req := httptest.NewRequest(http.MethodPost, "/api/session/skip", nil)
		rec := httptest.NewRecorder()
		h.SkipCard(rec, req)
	}
}
