package learning

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/vocab-api/internal/domain"
	"github.com/phrazzld/vocab-api/internal/domain/schedule"
	"github.com/phrazzld/vocab-api/internal/platform/logger"
	"github.com/phrazzld/vocab-api/internal/session"
)

// Verify interface compliance at compile time
var _ Service = (*learningServiceImpl)(nil)

// learningServiceImpl implements the Service interface.
type learningServiceImpl struct {
	words    WordRepository
	recorder ReviewRecorder
	sched    schedule.Service
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates a new learning Service implementation.
//
// words may be nil, in which case BuildDeck serves the built-in starter
// deck. recorder may be nil, in which case review outcomes are not
// persisted (memory mode). sched is required.
func NewService(
	words WordRepository,
	recorder ReviewRecorder,
	sched schedule.Service,
	log *slog.Logger,
) Service {
	if sched == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("sched cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &learningServiceImpl{
		words:    words,
		recorder: recorder,
		sched:    sched,
		logger:   log.With(slog.String("component", "learning_service")),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// BuildDeck implements Service.BuildDeck.
func (s *learningServiceImpl) BuildDeck(ctx context.Context) (session.Deck, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if s.words == nil {
		log.Debug("no word repository configured, using starter deck")
		return session.StarterDeck(), nil
	}

	words, err := s.words.ListOrdered(ctx)
	if err != nil {
		// One automatic retry on a transient source failure, then give up
		// and surface the error for user-visible handling.
		log.Warn("deck load failed, retrying once",
			slog.String("error", err.Error()))
		words, err = s.words.ListOrdered(ctx)
	}
	if err != nil {
		log.Error("failed to load deck",
			slog.String("error", err.Error()))
		return nil, NewBuildDeckError("failed to load words", fmt.Errorf("%w: %v", ErrDeckUnavailable, err))
	}

	log.Debug("deck loaded", slog.Int("words", len(words)))
	return session.NewSliceDeck(words), nil
}

// NextCard implements Service.NextCard.
func (s *learningServiceImpl) NextCard(
	ctx context.Context,
	deck session.Deck,
	st session.State,
) (*LearnCard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	word := deck.Current(st)
	if word == nil {
		// Terminal state: the session stays complete until a new one starts.
		log.Debug("session complete",
			slog.Int("position", st.Position),
			slog.Int("completed", st.CompletedCount()))
		return &LearnCard{
			Kind:    CardKindReview,
			Done:    true,
			Message: CompletionMessage,
		}, nil
	}

	kind := CardKindReview
	if word.IsNew {
		kind = CardKindNew
	}

	log.Debug("presenting card",
		slog.String("word_id", word.ID.String()),
		slog.String("kind", string(kind)),
		slog.Int("position", st.Position))

	return &LearnCard{
		Kind: kind,
		Word: word,
	}, nil
}

// Submit implements Service.Submit.
func (s *learningServiceImpl) Submit(
	ctx context.Context,
	deck session.Deck,
	st session.State,
	req SubmitRequest,
) (session.State, *SubmitResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	word := deck.ByID(req.WordID)
	if word == nil {
		// Not an error by contract: the caller gets a descriptive result
		// and the session state stays put.
		log.Warn("submission for unknown word",
			slog.String("word_id", req.WordID.String()))
		return st, &SubmitResult{
			Correct:        false,
			CorrectAnswer:  "",
			NextReviewDays: 0,
			Message:        NotFoundMessage,
		}, nil
	}

	verdict := domain.EvaluateAnswer(req.Answer, word)
	days := s.sched.NextReviewDays(verdict.Correct)

	record, err := domain.NewReviewRecord(
		word.ID,
		req.Answer,
		verdict.Correct,
		req.Revealed,
		days,
		s.now(),
	)
	if err != nil {
		return st, nil, NewSubmitAnswerError("failed to build review record", err)
	}

	// The state advance is committed only after the record is persisted, so
	// a collaborator failure cannot leave the session half-updated.
	if s.recorder != nil {
		if err := s.recorder.Record(ctx, record); err != nil {
			log.Error("failed to record review",
				slog.String("error", err.Error()),
				slog.String("word_id", word.ID.String()))
			return st, nil, NewSubmitAnswerError(
				"failed to record review",
				fmt.Errorf("%w: %v", ErrReviewNotRecorded, err),
			)
		}
	}

	next := st
	message := fmt.Sprintf("The correct answer is %q", verdict.CanonicalAnswer)
	if verdict.Correct {
		next = st.Advance(word.ID)
		message = CorrectMessage
	}

	log.Debug("processed submission",
		slog.String("word_id", word.ID.String()),
		slog.Bool("correct", verdict.Correct),
		slog.Bool("revealed", req.Revealed),
		slog.Int("next_review_days", days),
		slog.Int("position", next.Position))

	return next, &SubmitResult{
		Correct:        verdict.Correct,
		CorrectAnswer:  verdict.CanonicalAnswer,
		NextReviewDays: days,
		Message:        message,
	}, nil
}
