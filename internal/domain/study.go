package domain

import "time"

// ReviewConfig holds the tunables of the review service (pure domain type).
type ReviewConfig struct {
	DefaultDueLimit    int
	MaxDueLimit        int
	MaxConflictRetries int
	ConflictBackoff    time.Duration
}

// ReviewStatusCounts holds the number of review states per scheduling bucket.
type ReviewStatusCounts struct {
	Due      int
	Learning int
	Mastered int
	Reviews  int
}

// StudyProgress holds aggregated flashcard statistics for the user.
type StudyProgress struct {
	DueCount      int
	NewCount      int
	LearningCount int
	MasteredCount int
	TotalReviews  int
}
