package domain

// Quality is the self-reported recall quality of a review on the SM-2 scale:
// 0 is a complete blackout, 5 is perfect recall.
type Quality int

const (
	QualityBlackout Quality = iota
	QualityIncorrect
	QualityIncorrectFamiliar
	QualityCorrectDifficult
	QualityCorrectHesitation
	QualityPerfect
)

// PassingQuality is the lowest quality counted as a successful recall.
const PassingQuality = QualityCorrectDifficult

func (q Quality) IsValid() bool {
	return q >= QualityBlackout && q <= QualityPerfect
}

// IsSuccess reports whether the review counts as a successful recall.
func (q Quality) IsSuccess() bool {
	return q >= PassingQuality
}
