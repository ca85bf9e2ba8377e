package study

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/alhidayah/hidayah-backend/internal/domain"
	"github.com/alhidayah/hidayah-backend/internal/service/study/sm2"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type catalog interface {
	GetActiveByID(ctx context.Context, cardID uuid.UUID) (domain.FlashCard, error)
	ListActive(ctx context.Context, filter domain.FlashCardFilter) ([]domain.FlashCard, error)
	CountActive(ctx context.Context) (int, error)
}

type stateRepo interface {
	Get(ctx context.Context, userID, cardID uuid.UUID) (domain.ReviewState, error)
	Upsert(ctx context.Context, state domain.ReviewState) (domain.ReviewState, error)
	GetDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.FlashCard, error)
	ListCardIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	CountByStatus(ctx context.Context, userID uuid.UUID, now time.Time) (domain.ReviewStatusCounts, error)
}

type reviewLogRepo interface {
	Create(ctx context.Context, rl domain.ReviewLog) error
	ListByCard(ctx context.Context, userID, cardID uuid.UUID, limit, offset int) ([]domain.ReviewLog, int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the flashcard review engine: due selection, SM-2
// scheduling of reviews and the read-only progress views around them.
type Service struct {
	catalog    catalog
	states     stateRepo
	reviewLogs reviewLogRepo
	tx         txManager
	log        *slog.Logger
	cfg        domain.ReviewConfig
	params     sm2.Parameters
	now        func() time.Time
}

// NewService creates a new study service.
func NewService(
	logger *slog.Logger,
	catalog catalog,
	states stateRepo,
	reviewLogs reviewLogRepo,
	tx txManager,
	cfg domain.ReviewConfig,
	params sm2.Parameters,
) (*Service, error) {
	if err := sm2.ValidateParameters(params); err != nil {
		return nil, fmt.Errorf("invalid sm2 parameters: %w", err)
	}
	return &Service{
		catalog:    catalog,
		states:     states,
		reviewLogs: reviewLogs,
		tx:         tx,
		log:        logger.With("service", "study"),
		cfg:        cfg,
		params:     params,
		now:        func() time.Time { return time.Now().UTC() },
	}, nil
}
