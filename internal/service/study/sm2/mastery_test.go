package sm2

import "testing"

func TestEvaluateMastery(t *testing.T) {
	p := DefaultParameters()

	tests := []struct {
		name  string
		state State
		want  bool
	}{
		{"all thresholds met", State{SuccessRate: 100, TotalReviews: 10, IntervalDays: 30}, true},
		{"exact boundaries", State{SuccessRate: 90, TotalReviews: 10, IntervalDays: 30}, true},
		{"interval short", State{SuccessRate: 100, TotalReviews: 10, IntervalDays: 29}, false},
		{"too few reviews", State{SuccessRate: 100, TotalReviews: 9, IntervalDays: 300}, false},
		{"success rate low", State{SuccessRate: 89.9, TotalReviews: 20, IntervalDays: 300}, false},
		{"sticky once mastered", State{Mastered: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvaluateMastery(p, tt.state); got != tt.want {
				t.Errorf("EvaluateMastery(%+v) = %v, want %v", tt.state, got, tt.want)
			}
		})
	}
}

func TestMastery_ReachedOnTenthGoodReview(t *testing.T) {
	states := replay(t, []int{4, 4, 4, 4, 4, 4, 4, 4, 4, 4})

	for i, s := range states[:9] {
		if s.Mastered {
			t.Errorf("review %d: mastered too early (interval %d)", i+1, s.IntervalDays)
		}
	}
	last := states[9]
	if !last.Mastered {
		t.Errorf("review 10: Mastered = false, want true (%+v)", last)
	}
	if last.IntervalDays != 9300 {
		t.Errorf("review 10: IntervalDays = %d, want 9300", last.IntervalDays)
	}
}

func TestMastery_LowSuccessRateBlocks(t *testing.T) {
	// 9 successes out of 11 reviews is ~81.8%.
	states := replay(t, []int{0, 0, 4, 4, 4, 4, 4, 4, 4, 4, 4})
	for i, s := range states {
		if s.Mastered {
			t.Errorf("review %d: Mastered = true with success rate %v", i+1, s.SuccessRate)
		}
	}
}

func TestMastery_StaysAfterFailure(t *testing.T) {
	p := DefaultParameters()
	s := State{EaseFactor: 2.5, IntervalDays: 95, Repetitions: 5, TotalReviews: 12, SuccessRate: 100, Mastered: true}

	next, err := Advance(p, s, 0, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !EvaluateMastery(p, next) {
		t.Error("mastered state lost mastery after a failed review")
	}
}
