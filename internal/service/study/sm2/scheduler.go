package sm2

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidQuality is returned by Advance for a quality outside [MinQuality, MaxQuality].
var ErrInvalidQuality = errors.New("sm2: quality out of range")

// State holds the SM-2 scheduling state of a card for one learner.
type State struct {
	EaseFactor   float64
	IntervalDays int
	Repetitions  int
	NextReview   time.Time
	LastReview   *time.Time
	TotalReviews int
	SuccessRate  float64
	Mastered     bool
}

// MasteryThresholds are the minimums a state must reach, all at once, to be
// considered mastered.
type MasteryThresholds struct {
	MinSuccessRate  float64
	MinReviews      int
	MinIntervalDays int
}

// Parameters holds all SM-2 configuration.
type Parameters struct {
	InitialEaseFactor float64
	MinEaseFactor     float64
	// PassingQuality is the lowest quality counted as a successful recall.
	PassingQuality int
	// FirstInterval is used after the first success and after every failure.
	FirstInterval  int
	SecondInterval int
	Mastery        MasteryThresholds
}

// DefaultParameters returns the classic SM-2 constants.
func DefaultParameters() Parameters {
	return Parameters{
		InitialEaseFactor: 2.5,
		MinEaseFactor:     1.3,
		PassingQuality:    3,
		FirstInterval:     1,
		SecondInterval:    6,
		Mastery: MasteryThresholds{
			MinSuccessRate:  90,
			MinReviews:      10,
			MinIntervalDays: 30,
		},
	}
}

// ValidateParameters checks that the parameters describe a usable scheduler.
func ValidateParameters(p Parameters) error {
	if p.MinEaseFactor <= 0 {
		return fmt.Errorf("min ease factor must be > 0 (got %v)", p.MinEaseFactor)
	}
	if p.InitialEaseFactor < p.MinEaseFactor {
		return fmt.Errorf("initial ease factor %v is below min ease factor %v", p.InitialEaseFactor, p.MinEaseFactor)
	}
	if p.PassingQuality <= MinQuality || p.PassingQuality > MaxQuality {
		return fmt.Errorf("passing quality must be in (%d, %d] (got %d)", MinQuality, MaxQuality, p.PassingQuality)
	}
	if p.FirstInterval < 1 || p.SecondInterval < 1 {
		return fmt.Errorf("intervals must be >= 1 (got %d, %d)", p.FirstInterval, p.SecondInterval)
	}
	if p.Mastery.MinSuccessRate < 0 || p.Mastery.MinSuccessRate > 100 {
		return fmt.Errorf("mastery success rate must be in [0, 100] (got %v)", p.Mastery.MinSuccessRate)
	}
	if p.Mastery.MinReviews < 0 || p.Mastery.MinIntervalDays < 0 {
		return fmt.Errorf("mastery thresholds must be >= 0")
	}
	return nil
}

// NewState returns the state of a card that has never been reviewed.
func NewState(p Parameters, now time.Time) State {
	return State{
		EaseFactor: p.InitialEaseFactor,
		NextReview: now,
	}
}

// Advance computes the state that follows a review of the given quality at now.
// It is pure: the input state is never modified and an invalid quality leaves
// nothing changed.
//
// The interval update uses the ease factor from before this review; the ease
// factor update is applied on both success and failure.
func Advance(p Parameters, s State, quality int, now time.Time) (State, error) {
	if quality < MinQuality || quality > MaxQuality {
		return s, fmt.Errorf("%w: %d", ErrInvalidQuality, quality)
	}

	next := s
	success := quality >= p.PassingQuality

	if success {
		switch s.Repetitions {
		case 0:
			next.IntervalDays = p.FirstInterval
		case 1:
			next.IntervalDays = p.SecondInterval
		default:
			next.IntervalDays = NextInterval(s.IntervalDays, s.EaseFactor)
		}
		next.Repetitions = s.Repetitions + 1
	} else {
		next.Repetitions = 0
		next.IntervalDays = p.FirstInterval
	}

	next.EaseFactor = NextEaseFactor(s.EaseFactor, quality, p.MinEaseFactor)

	reviewedAt := now
	next.LastReview = &reviewedAt
	next.NextReview = now.Add(time.Duration(next.IntervalDays) * 24 * time.Hour)

	next.TotalReviews = s.TotalReviews + 1
	next.SuccessRate = NextSuccessRate(s.SuccessRate, next.TotalReviews, success)

	return next, nil
}
