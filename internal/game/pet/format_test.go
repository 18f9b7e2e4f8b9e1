package pet

import "testing"

func TestFormatGrowthRate(t *testing.T) {
	cases := []struct {
		rate float64
		want string
	}{
		{1.0, "100.0%"},
		{16.0 / 15.0, "106.7%"},
		{0.8, "80.0%"},
		{0, "0.0%"},
	}
	for _, tc := range cases {
		if got := FormatGrowthRate(tc.rate); got != tc.want {
			t.Fatalf("rate %v: expected %q got %q", tc.rate, tc.want, got)
		}
	}
}

func TestRatingDescription_AllRatingsCovered(t *testing.T) {
	for _, r := range []Rating{RatingExcellent, RatingGood, RatingAverage, RatingPoor, RatingBad, RatingNotRated} {
		if RatingDescription(r) == "" {
			t.Fatalf("%s: empty description", r)
		}
	}
}

func TestOverallRatingDescription_FallsBackToNormal(t *testing.T) {
	if got := OverallRatingDescription(OverallRating("???")); got != OverallRatingDescription(OverallNormalPet) {
		t.Fatalf("expected the normalPet fallback, got %q", got)
	}
}
