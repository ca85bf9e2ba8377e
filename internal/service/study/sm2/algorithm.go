// Package sm2 implements the SuperMemo-2 spaced repetition algorithm.
// Ease factor and success rate arithmetic is done in exact decimal so that
// repeated updates never drift below the ease floor or away from the
// lifetime mean.
package sm2

import (
	"github.com/shopspring/decimal"
)

// Quality bounds on the SM-2 scale.
const (
	MinQuality = 0
	MaxQuality = 5
)

var (
	easeBase      = decimal.New(1, -1) // 0.1
	easeLinear    = decimal.New(8, -2) // 0.08
	easeQuadratic = decimal.New(2, -2) // 0.02
	hundred       = decimal.NewFromInt(100)
)

// NextEaseFactor applies the SM-2 ease update and clamps the result to minEase.
//
//	EF' = EF + (0.1 - (5-q) * (0.08 + (5-q) * 0.02))
func NextEaseFactor(ease float64, quality int, minEase float64) float64 {
	k := decimal.NewFromInt(int64(MaxQuality - quality))
	delta := easeBase.Sub(k.Mul(easeLinear.Add(k.Mul(easeQuadratic))))

	next := decimal.NewFromFloat(ease).Add(delta)
	floor := decimal.NewFromFloat(minEase)
	if next.LessThan(floor) {
		next = floor
	}

	f, _ := next.Float64()
	return f
}

// NextInterval grows an interval by the ease factor, rounding half to even.
//
//	I' = round(I * EF)
func NextInterval(intervalDays int, ease float64) int {
	product := decimal.NewFromInt(int64(intervalDays)).Mul(decimal.NewFromFloat(ease))
	return int(product.RoundBank(0).IntPart())
}

// NextSuccessRate folds one outcome into the lifetime mean. totalReviews is
// the count including the review being recorded.
//
//	SR' = (SR * (n-1) + outcome) / n,  outcome = 100 on success, 0 otherwise
func NextSuccessRate(rate float64, totalReviews int, success bool) float64 {
	if totalReviews <= 0 {
		return rate
	}

	outcome := decimal.Zero
	if success {
		outcome = hundred
	}

	n := decimal.NewFromInt(int64(totalReviews))
	prev := decimal.NewFromFloat(rate).Mul(n.Sub(decimal.NewFromInt(1)))

	f, _ := prev.Add(outcome).Div(n).Float64()
	return f
}
