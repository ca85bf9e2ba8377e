package study

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/alhidayah/hidayah-backend/internal/domain"
	"github.com/alhidayah/hidayah-backend/pkg/ctxutil"
)

// ListFlashCards returns the active catalog, optionally filtered by category.
func (s *Service) ListFlashCards(ctx context.Context, input ListFlashCardsInput) ([]domain.FlashCard, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	cards, err := s.catalog.ListActive(ctx, domain.FlashCardFilter{Category: input.Category})
	if err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}
	return cards, nil
}

// GetFlashCard returns one active card.
func (s *Service) GetFlashCard(ctx context.Context, cardID uuid.UUID) (*domain.FlashCard, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	card, err := s.catalog.GetActiveByID(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("get flashcard: %w", err)
	}
	return &card, nil
}

// GetCardProgress returns the caller's review state for a card. It fails with
// domain.ErrNotFound when the card has never been reviewed.
func (s *Service) GetCardProgress(ctx context.Context, cardID uuid.UUID) (*domain.ReviewState, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	state, err := s.states.Get(ctx, userID, cardID)
	if err != nil {
		return nil, fmt.Errorf("get review state: %w", err)
	}
	return &state, nil
}

// GetCardHistory returns a page of the caller's review log for a card, newest
// first, and the total number of entries.
func (s *Service) GetCardHistory(ctx context.Context, input GetCardHistoryInput) ([]domain.ReviewLog, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = 50
	}

	logs, total, err := s.reviewLogs.ListByCard(ctx, userID, input.CardID, limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list review logs: %w", err)
	}
	return logs, total, nil
}
