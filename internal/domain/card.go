package domain

import (
	"time"

	"github.com/google/uuid"
)

// Card categories used by the seeded content.
const (
	CategoryVerseMemorization = "verse_memorization"
	CategoryArabicVocab       = "arabic_vocab"
	CategoryHadith            = "hadith"
)

// DefaultDifficultyLevel is assigned to cards created without an explicit level.
const DefaultDifficultyLevel = "beginner"

// FlashCard is a catalog card. The review engine never mutates it.
type FlashCard struct {
	ID              uuid.UUID
	Front           string
	Back            string
	Category        string
	DifficultyLevel string
	Reference       *string
	Notes           *string
	IsActive        bool
	CreatedAt       time.Time
}

// ReviewState is the SM-2 scheduling record of one user for one card.
// Version is an optimistic concurrency token: 0 means the state has never
// been persisted, persisted rows start at 1 and grow by one per write.
type ReviewState struct {
	UserID         uuid.UUID
	CardID         uuid.UUID
	EaseFactor     float64
	IntervalDays   int
	Repetitions    int
	NextReviewDate time.Time
	LastReviewDate *time.Time
	TotalReviews   int
	SuccessRate    float64
	IsMastered     bool
	Version        int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// InitialEaseFactor is the ease factor of a freshly created review state.
const InitialEaseFactor = 2.5

// NewReviewState returns the default state for a (user, card) pair that has
// never been reviewed. It is due immediately.
func NewReviewState(userID, cardID uuid.UUID, now time.Time) ReviewState {
	return ReviewState{
		UserID:         userID,
		CardID:         cardID,
		EaseFactor:     InitialEaseFactor,
		IntervalDays:   0,
		Repetitions:    0,
		NextReviewDate: now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// IsDue reports whether the card should be presented at the given time.
// Mastered cards are never due.
func (s *ReviewState) IsDue(now time.Time) bool {
	if s.IsMastered {
		return false
	}
	return !s.NextReviewDate.After(now)
}

// IsNew reports whether the state has not been written to the store yet.
func (s *ReviewState) IsNew() bool {
	return s.Version == 0
}

// ReviewLog records a single review event.
type ReviewLog struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	CardID       uuid.UUID
	Quality      Quality
	IntervalDays int
	EaseFactor   float64
	Repetitions  int
	ReviewedAt   time.Time
}
