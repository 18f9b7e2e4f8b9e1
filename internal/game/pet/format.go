package pet

import "fmt"

// FormatGrowthRate renders a growth rate as a percentage with one decimal,
// e.g. 1.067 -> "106.7%".
func FormatGrowthRate(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate*100)
}

// RatingDescription returns the display text for a per-stat rating.
func RatingDescription(r Rating) string {
	switch r {
	case RatingExcellent:
		return "Top-tier growth"
	case RatingGood:
		return "Excellent growth"
	case RatingAverage:
		return "Good growth"
	case RatingPoor:
		return "Ordinary growth"
	case RatingBad:
		return "Needs improvement"
	case RatingNotRated:
		return "Fixed stat, not rated"
	}
	return "Good growth"
}

// OverallRatingDescription returns the display text for an overall rating.
func OverallRatingDescription(r OverallRating) string {
	switch r {
	case OverallGodTier:
		return "God-tier pet! Growth far exceeds expectation, well worth raising."
	case OverallHighQuality:
		return "High-quality pet! Growth is strong, recommended for raising."
	case OverallNormalPet:
		return "Normal pet. Growth matches expectation and it is fine to use."
	case OverallNeedImprovement:
		return "Growth is below expectation; consider raising a new pet."
	case OverallTragic:
		return "Tragic pet. Growth is far below expectation; strongly consider starting over."
	}
	return "Normal pet. Growth matches expectation and it is fine to use."
}
