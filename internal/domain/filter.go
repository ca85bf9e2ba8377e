package domain

import "github.com/google/uuid"

// FlashCardFilter contains filtering parameters for catalog listings.
// Only active cards are ever listed.
type FlashCardFilter struct {
	Category   *string
	ExcludeIDs []uuid.UUID
	Limit      int
}
