package study

import (
	"time"

	"github.com/alhidayah/hidayah-backend/internal/domain"
	"github.com/alhidayah/hidayah-backend/internal/service/study/sm2"
)

// stateToSM2 extracts the scheduling fields of a review state.
func stateToSM2(s domain.ReviewState) sm2.State {
	return sm2.State{
		EaseFactor:   s.EaseFactor,
		IntervalDays: s.IntervalDays,
		Repetitions:  s.Repetitions,
		NextReview:   s.NextReviewDate,
		LastReview:   copyTime(s.LastReviewDate),
		TotalReviews: s.TotalReviews,
		SuccessRate:  s.SuccessRate,
		Mastered:     s.IsMastered,
	}
}

// applySM2 writes a scheduling result back onto the review state, keeping
// identity and version untouched.
func applySM2(s domain.ReviewState, next sm2.State, now time.Time) domain.ReviewState {
	s.EaseFactor = next.EaseFactor
	s.IntervalDays = next.IntervalDays
	s.Repetitions = next.Repetitions
	s.NextReviewDate = next.NextReview
	s.LastReviewDate = copyTime(next.LastReview)
	s.TotalReviews = next.TotalReviews
	s.SuccessRate = next.SuccessRate
	s.IsMastered = next.Mastered
	s.UpdatedAt = now
	return s
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
