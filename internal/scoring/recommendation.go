package scoring

type Recommendation string

const (
	HighlyRecommended Recommendation = "Highly recommended"
	Recommended       Recommendation = "Recommended"
	Consider          Recommendation = "Consider"
	NotAFit           Recommendation = "Not a fit"
)

// Recommend maps a final score to its tier. Each lower bound is inclusive.
func Recommend(final float64) Recommendation {
	switch {
	case final >= 0.8:
		return HighlyRecommended
	case final >= 0.6:
		return Recommended
	case final >= 0.4:
		return Consider
	default:
		return NotAFit
	}
}
