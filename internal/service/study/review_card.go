package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/alhidayah/hidayah-backend/internal/domain"
	"github.com/alhidayah/hidayah-backend/internal/service/study/sm2"
	"github.com/alhidayah/hidayah-backend/pkg/ctxutil"
)

// ReviewCard records a review of the given quality, advances the card's SM-2
// schedule and persists the new state together with a review log entry.
//
// A concurrent write to the same (user, card) state is detected by the
// version check in the store; the whole read-modify-write cycle is then
// retried up to the configured number of times before domain.ErrConflict
// surfaces to the caller.
func (s *Service) ReviewCard(ctx context.Context, input ReviewCardInput) (*domain.ReviewState, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		saved    domain.ReviewState
		attempts int
	)
	err := retry.Do(ctx, s.conflictBackoff(), func(ctx context.Context) error {
		attempts++
		var err error
		saved, err = s.reviewOnce(ctx, userID, input.CardID, input.Quality)
		if errors.Is(err, domain.ErrConflict) {
			s.log.WarnContext(ctx, "review state conflict",
				slog.String("user_id", userID.String()),
				slog.String("card_id", input.CardID.String()),
				slog.Int("attempt", attempts),
			)
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "card reviewed",
		slog.String("user_id", userID.String()),
		slog.String("card_id", input.CardID.String()),
		slog.Int("quality", int(input.Quality)),
		slog.Int("interval_days", saved.IntervalDays),
		slog.Float64("ease_factor", saved.EaseFactor),
		slog.Bool("mastered", saved.IsMastered),
	)

	return &saved, nil
}

// reviewOnce runs a single load, schedule and persist cycle.
func (s *Service) reviewOnce(ctx context.Context, userID, cardID uuid.UUID, quality domain.Quality) (domain.ReviewState, error) {
	now := s.now()

	state, err := s.loadState(ctx, userID, cardID, now)
	if err != nil {
		return domain.ReviewState{}, err
	}

	current := stateToSM2(state)
	next, err := sm2.Advance(s.params, current, int(quality), now)
	if err != nil {
		if errors.Is(err, sm2.ErrInvalidQuality) {
			return domain.ReviewState{}, domain.ErrInvalidQuality
		}
		return domain.ReviewState{}, fmt.Errorf("advance schedule: %w", err)
	}
	next.Mastered = current.Mastered || sm2.EvaluateMastery(s.params, next)

	updated := applySM2(state, next, now)

	var saved domain.ReviewState
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var txErr error
		saved, txErr = s.states.Upsert(ctx, updated)
		if txErr != nil {
			return fmt.Errorf("save review state: %w", txErr)
		}

		txErr = s.reviewLogs.Create(ctx, domain.ReviewLog{
			ID:           uuid.New(),
			UserID:       userID,
			CardID:       cardID,
			Quality:      quality,
			IntervalDays: saved.IntervalDays,
			EaseFactor:   saved.EaseFactor,
			Repetitions:  saved.Repetitions,
			ReviewedAt:   now,
		})
		if txErr != nil {
			return fmt.Errorf("create review log: %w", txErr)
		}
		return nil
	})
	if err != nil {
		return domain.ReviewState{}, err
	}

	return saved, nil
}

// loadState returns the stored state, or a fresh one when the user has never
// reviewed the card. A fresh state is only created for an active card.
func (s *Service) loadState(ctx context.Context, userID, cardID uuid.UUID, now time.Time) (domain.ReviewState, error) {
	state, err := s.states.Get(ctx, userID, cardID)
	if err == nil {
		return state, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.ReviewState{}, fmt.Errorf("get review state: %w", err)
	}

	if _, err := s.catalog.GetActiveByID(ctx, cardID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ReviewState{}, domain.ErrCardNotFound
		}
		return domain.ReviewState{}, fmt.Errorf("get flashcard: %w", err)
	}

	state = domain.NewReviewState(userID, cardID, now)
	state.EaseFactor = s.params.InitialEaseFactor
	return state, nil
}

func (s *Service) conflictBackoff() retry.Backoff {
	wait := s.cfg.ConflictBackoff
	if wait <= 0 {
		wait = time.Millisecond
	}
	retries := s.cfg.MaxConflictRetries
	if retries < 0 {
		retries = 0
	}
	return retry.WithMaxRetries(uint64(retries), retry.NewConstant(wait))
}
