package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/alhidayah/hidayah-backend/internal/domain"
	"github.com/alhidayah/hidayah-backend/pkg/ctxutil"
)

// GetDueCards returns the cards the user should study now: overdue and due
// review states first, then never-seen active cards to fill up to the limit.
// Mastered and inactive cards are never returned.
func (s *Service) GetDueCards(ctx context.Context, input GetDueCardsInput) ([]domain.FlashCard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := s.dueLimit(input.Limit)
	now := s.now()

	due, err := s.states.GetDue(ctx, userID, now, limit)
	if err != nil {
		return nil, fmt.Errorf("get due cards: %w", err)
	}
	if len(due) >= limit {
		return due[:limit], nil
	}

	reviewed, err := s.states.ListCardIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list reviewed cards: %w", err)
	}

	fresh, err := s.catalog.ListActive(ctx, domain.FlashCardFilter{
		ExcludeIDs: reviewed,
		Limit:      limit - len(due),
	})
	if err != nil {
		return nil, fmt.Errorf("list new cards: %w", err)
	}

	seen := make(map[uuid.UUID]struct{}, len(due)+len(fresh))
	result := make([]domain.FlashCard, 0, len(due)+len(fresh))
	for _, group := range [][]domain.FlashCard{due, fresh} {
		for _, c := range group {
			if len(result) == limit {
				break
			}
			if _, dup := seen[c.ID]; dup || !c.IsActive {
				continue
			}
			seen[c.ID] = struct{}{}
			result = append(result, c)
		}
	}

	s.log.DebugContext(ctx, "due set selected",
		slog.String("user_id", userID.String()),
		slog.Int("due", len(due)),
		slog.Int("selected", len(result)),
		slog.Int("limit", limit),
	)

	return result, nil
}

func (s *Service) dueLimit(requested int) int {
	limit := requested
	if limit == 0 {
		limit = s.cfg.DefaultDueLimit
	}
	if s.cfg.MaxDueLimit > 0 && limit > s.cfg.MaxDueLimit {
		limit = s.cfg.MaxDueLimit
	}
	if limit <= 0 {
		limit = maxDueLimit
	}
	return limit
}
