package pet

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func wolf(t testing.TB) *Pet {
	t.Helper()
	p, err := DefaultRegistry().Get("wolf")
	if err != nil {
		t.Fatalf("default registry is missing the wolf: %v", err)
	}
	return p
}

func TestExpectedStats_LevelOneIsBase(t *testing.T) {
	for _, p := range DefaultRegistry().All() {
		got := ExpectedStats(p, 1)
		if got != p.BaseStats {
			t.Fatalf("%s: expected base stats %+v at level 1, got %+v", p.ID, p.BaseStats, got)
		}
	}
}

func TestExpectedStats_WolfLevelFive(t *testing.T) {
	got := ExpectedStats(wolf(t), 5)
	if got.HP != 29.0 {
		t.Fatalf("expected hp 29.0 got %v", got.HP)
	}
	if got.Endurance != 11.0 {
		t.Fatalf("expected endurance 11.0 got %v", got.Endurance)
	}
	if got.Aggressiveness != 8.0 {
		t.Fatalf("expected aggressiveness 8.0 got %v", got.Aggressiveness)
	}
}

func TestScoreGrowthRate_Bands(t *testing.T) {
	cases := []struct {
		rate float64
		want int
	}{
		{1.5, 100},
		{1.4, 100},
		{1.39, 85},
		{1.2, 85},
		{1.19, 70},
		{1.0, 70},
		{0.99, 55},
		{0.85, 55},
		{0.84, 30},
		{0, 30},
		{-1, 30},
	}
	for _, tc := range cases {
		if got := ScoreGrowthRate(tc.rate); got != tc.want {
			t.Fatalf("rate %v: expected %d got %d", tc.rate, tc.want, got)
		}
	}
}

func TestRatingForScore_MirrorsScoreBands(t *testing.T) {
	cases := []struct {
		score int
		want  Rating
	}{
		{100, RatingExcellent},
		{85, RatingGood},
		{70, RatingAverage},
		{55, RatingPoor},
		{30, RatingBad},
	}
	for _, tc := range cases {
		if got := RatingForScore(tc.score); got != tc.want {
			t.Fatalf("score %d: expected %s got %s", tc.score, tc.want, got)
		}
	}
}

func TestOverallRatingForScore_Bands(t *testing.T) {
	cases := []struct {
		score float64
		want  OverallRating
	}{
		{100, OverallGodTier},
		{95, OverallGodTier},
		{94.99, OverallHighQuality},
		{80, OverallHighQuality},
		{79.99, OverallNormalPet},
		{60, OverallNormalPet},
		{59.99, OverallNeedImprovement},
		{45, OverallNeedImprovement},
		{44.99, OverallTragic},
		{0, OverallTragic},
	}
	for _, tc := range cases {
		if got := OverallRatingForScore(tc.score); got != tc.want {
			t.Fatalf("score %v: expected %s got %s", tc.score, tc.want, got)
		}
	}
}

func TestAnalyzeStat_WolfWorkedExample(t *testing.T) {
	p := wolf(t)
	expected := ExpectedStats(p, 5)

	hp := AnalyzeStat(StatHP, 30, expected.HP, p.BaseStats.HP, p)
	if math.Abs(hp.GrowthRate-16.0/15.0) > 1e-9 {
		t.Fatalf("hp growth rate: expected %v got %v", 16.0/15.0, hp.GrowthRate)
	}
	if hp.Score != 70 || hp.Rating != RatingAverage {
		t.Fatalf("hp: expected score 70/average, got %d/%s", hp.Score, hp.Rating)
	}
	if !hp.IsMainStat {
		t.Fatal("hp is the wolf's main stat")
	}

	endurance := AnalyzeStat(StatEndurance, 10, expected.Endurance, p.BaseStats.Endurance, p)
	if math.Abs(endurance.GrowthRate-0.8) > 1e-9 {
		t.Fatalf("endurance growth rate: expected 0.8 got %v", endurance.GrowthRate)
	}
	if endurance.Score != 30 || endurance.Rating != RatingBad {
		t.Fatalf("endurance: expected score 30/bad, got %d/%s", endurance.Score, endurance.Rating)
	}
}

func TestAnalyzeStat_ZeroExpectedGrowth(t *testing.T) {
	p := wolf(t)

	// 0/0 is a perfect match.
	sa := AnalyzeStat(StatEndurance, 6, 6, 6, p)
	if sa.GrowthRate != 1.0 {
		t.Fatalf("0/0: expected rate 1.0 got %v", sa.GrowthRate)
	}
	if sa.Score != 70 {
		t.Fatalf("0/0: expected score 70 got %d", sa.Score)
	}

	// Growth with no expected growth scores as zero rate.
	sa = AnalyzeStat(StatEndurance, 8, 6, 6, p)
	if sa.GrowthRate != 0 {
		t.Fatalf("x/0: expected rate 0 got %v", sa.GrowthRate)
	}
	if sa.Score != 30 {
		t.Fatalf("x/0: expected score 30 got %d", sa.Score)
	}
}

func TestAnalyzeStat_AggressivenessIsFixed(t *testing.T) {
	p := wolf(t)
	sa := AnalyzeStat(StatAggressiveness, 3, 8, 3, p)
	if sa.Score != 70 {
		t.Fatalf("expected score 70 got %d", sa.Score)
	}
	if sa.Rating != RatingNotRated {
		t.Fatalf("expected not_rated got %s", sa.Rating)
	}
	if sa.GrowthRate != 1.0 {
		t.Fatalf("expected rate 1.0 got %v", sa.GrowthRate)
	}
	if sa.IsMainStat {
		t.Fatal("aggressiveness is never a main stat")
	}
}

func TestEvaluate_WolfWorkedExample(t *testing.T) {
	p := wolf(t)
	current := StatSet{Endurance: 10, Loyalty: 11, Speed: 11, Aggressiveness: 3, HP: 30}

	result := Evaluate(p, 5, current)

	if len(result.Analysis) != 5 {
		t.Fatalf("expected 5 analyses got %d", len(result.Analysis))
	}
	// hp 70*1.5 + endurance 30 + loyalty 70 + speed 70, over weight 4.5.
	want := math.Round((70*1.5+30+70+70)/4.5*100) / 100
	if result.OverallScore != want {
		t.Fatalf("expected overall %v got %v", want, result.OverallScore)
	}
	if result.OverallRating != OverallNormalPet {
		t.Fatalf("expected normalPet got %s", result.OverallRating)
	}
}

func TestEvaluate_AnalysisOrderIsStable(t *testing.T) {
	p := wolf(t)
	result := Evaluate(p, 1, p.BaseStats)
	for i, key := range StatKeys() {
		if result.Analysis[i].Stat != key {
			t.Fatalf("analysis[%d]: expected %s got %s", i, key, result.Analysis[i].Stat)
		}
	}
}

func TestProperty_CurrentEqualsExpectedScoresAverage(t *testing.T) {
	registry := DefaultRegistry()
	rapid.Check(t, func(t *rapid.T) {
		p, err := registry.Get(rapid.SampledFrom([]string{"wolf", "dog", "shepherd", "hound"}).Draw(t, "species"))
		if err != nil {
			t.Fatalf("lookup failed: %v", err)
		}
		level := rapid.IntRange(MinLevel, MaxLevel).Draw(t, "level")

		expected := ExpectedStats(p, level)
		result := Evaluate(p, level, expected)

		for _, sa := range result.Analysis {
			if sa.Stat == StatAggressiveness {
				continue
			}
			if sa.GrowthRate != 1.0 {
				t.Fatalf("%s: expected rate 1.0 got %v", sa.Stat, sa.GrowthRate)
			}
			if sa.Score != 70 {
				t.Fatalf("%s: expected score 70 got %d", sa.Stat, sa.Score)
			}
		}
	})
}

func TestProperty_AggressivenessNeverAffectsOverall(t *testing.T) {
	registry := DefaultRegistry()
	rapid.Check(t, func(t *rapid.T) {
		p, err := registry.Get(rapid.SampledFrom([]string{"wolf", "dog", "shepherd", "hound"}).Draw(t, "species"))
		if err != nil {
			t.Fatalf("lookup failed: %v", err)
		}
		level := rapid.IntRange(MinLevel, MaxLevel).Draw(t, "level")

		current := p.BaseStats
		for _, key := range StatKeys() {
			if key == StatAggressiveness {
				continue
			}
			bump := rapid.Float64Range(0, 60).Draw(t, string(key))
			current = current.WithValue(key, current.Value(key)+bump)
		}

		base := Evaluate(p, level, current)
		perturbed := Evaluate(p, level, current.WithValue(StatAggressiveness, rapid.Float64Range(0, 50).Draw(t, "agg")))

		if base.OverallScore != perturbed.OverallScore {
			t.Fatalf("overall changed with aggressiveness: %v vs %v", base.OverallScore, perturbed.OverallScore)
		}
	})
}
