package sm2

// EvaluateMastery reports whether the state counts as mastered. It is meant to
// run once per review, right after Advance. A state that is already mastered
// stays mastered.
func EvaluateMastery(p Parameters, s State) bool {
	if s.Mastered {
		return true
	}
	m := p.Mastery
	return s.SuccessRate >= m.MinSuccessRate &&
		s.TotalReviews >= m.MinReviews &&
		s.IntervalDays >= m.MinIntervalDays
}
