package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alhidayah/hidayah-backend/internal/domain"
)

// CardOption customizes a seeded flashcard.
type CardOption func(*domain.FlashCard)

// WithCategory sets the card category.
func WithCategory(category string) CardOption {
	return func(c *domain.FlashCard) { c.Category = category }
}

// Inactive marks the card as retired from the catalog.
func Inactive() CardOption {
	return func(c *domain.FlashCard) { c.IsActive = false }
}

// WithCreatedAt sets the card creation time.
func WithCreatedAt(t time.Time) CardOption {
	return func(c *domain.FlashCard) { c.CreatedAt = t }
}

// SeedFlashCard inserts an active flashcard and returns it.
func SeedFlashCard(t *testing.T, pool *pgxpool.Pool, opts ...CardOption) domain.FlashCard {
	t.Helper()

	id := uuid.New()
	card := domain.FlashCard{
		ID:              id,
		Front:           "front-" + id.String()[:8],
		Back:            "back-" + id.String()[:8],
		Category:        domain.CategoryArabicVocab,
		DifficultyLevel: domain.DefaultDifficultyLevel,
		IsActive:        true,
		CreatedAt:       time.Now().UTC().Truncate(time.Microsecond),
	}
	for _, opt := range opts {
		opt(&card)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO flashcards (id, front, back, category, difficulty_level, reference, notes, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		card.ID, card.Front, card.Back, card.Category, card.DifficultyLevel,
		card.Reference, card.Notes, card.IsActive, card.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed flashcard: %v", err)
	}

	return card
}

// SeedReviewState inserts a review state with version 1 for the given user and card.
func SeedReviewState(t *testing.T, pool *pgxpool.Pool, s domain.ReviewState) domain.ReviewState {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	if s.EaseFactor == 0 {
		s.EaseFactor = domain.InitialEaseFactor
	}
	if s.NextReviewDate.IsZero() {
		s.NextReviewDate = now
	}
	s.Version = 1
	s.CreatedAt = now
	s.UpdatedAt = now

	_, err := pool.Exec(context.Background(),
		`INSERT INTO review_states (user_id, card_id, ease_factor, interval_days, repetitions,
		     next_review_date, last_review_date, total_reviews, success_rate, is_mastered,
		     version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		s.UserID, s.CardID, s.EaseFactor, s.IntervalDays, s.Repetitions,
		s.NextReviewDate, s.LastReviewDate, s.TotalReviews, s.SuccessRate, s.IsMastered,
		s.Version, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed review state: %v", err)
	}

	return s
}
