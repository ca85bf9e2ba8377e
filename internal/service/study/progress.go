package study

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/alhidayah/hidayah-backend/internal/domain"
	"github.com/alhidayah/hidayah-backend/pkg/ctxutil"
)

// GetProgress returns the caller's dashboard counts.
func (s *Service) GetProgress(ctx context.Context) (domain.StudyProgress, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.StudyProgress{}, domain.ErrUnauthorized
	}

	now := s.now()

	var (
		active int
		counts domain.ReviewStatusCounts
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		active, err = s.catalog.CountActive(gctx)
		if err != nil {
			return fmt.Errorf("count active cards: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		counts, err = s.states.CountByStatus(gctx, userID, now)
		if err != nil {
			return fmt.Errorf("count review states: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.StudyProgress{}, err
	}

	// The two counts are not read in one snapshot.
	newCount := max(active-(counts.Learning+counts.Mastered), 0)

	return domain.StudyProgress{
		DueCount:      counts.Due,
		NewCount:      newCount,
		LearningCount: counts.Learning,
		MasteredCount: counts.Mastered,
		TotalReviews:  counts.Reviews,
	}, nil
}
