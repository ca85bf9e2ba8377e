// Package seeder imports the flashcard catalog from a YAML file.
package seeder

import (
	"context"

	"github.com/alhidayah/hidayah-backend/internal/domain"
)

// CardWriter is the batch write contract consumed by the pipeline.
// Implemented by the PostgreSQL flashcard.Repo and sqlite.FlashCardRepo.
type CardWriter interface {
	// UpsertBatch inserts cards or refreshes them by ID, keeping created_at
	// of cards that already exist.
	UpsertBatch(ctx context.Context, cards []domain.FlashCard) (int, error)
}
