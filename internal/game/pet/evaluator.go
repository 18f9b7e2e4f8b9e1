package pet

import "math"

// Rating classifies a single stat's growth.
type Rating string

const (
	RatingExcellent Rating = "excellent"
	RatingGood      Rating = "good"
	RatingAverage   Rating = "average"
	RatingPoor      Rating = "poor"
	RatingBad       Rating = "bad"
	// RatingNotRated marks the fixed aggressiveness slot, which is excluded
	// from growth scoring.
	RatingNotRated Rating = "not_rated"
)

// OverallRating classifies the weighted overall score. Its breakpoints are
// a separate table from the per-stat Rating breakpoints.
type OverallRating string

const (
	OverallGodTier         OverallRating = "godTier"
	OverallHighQuality     OverallRating = "highQuality"
	OverallNormalPet       OverallRating = "normalPet"
	OverallNeedImprovement OverallRating = "needImprovement"
	OverallTragic          OverallRating = "tragic"
)

// MainStatWeight is the overall-score weight of the species' main stat;
// every other scored stat weighs 1.0.
const MainStatWeight = 1.5

// StatAnalysis is the evaluation of a single stat. Built fresh on every
// Evaluate call and never mutated afterwards.
type StatAnalysis struct {
	Stat           StatKey `json:"stat"`
	StatName       string  `json:"statName"`
	Current        float64 `json:"currentValue"`
	Expected       float64 `json:"expectedValue"`
	Base           float64 `json:"baseValue"`
	Growth         float64 `json:"growthValue"`
	GrowthRate     float64 `json:"growthRate"`
	Score          int     `json:"score"`
	Rating         Rating  `json:"rating"`
	IsMainStat     bool    `json:"isMainStat"`
	CharacterBonus string  `json:"characterBonus"`
}

// Evaluation is the full result of evaluating one pet.
type Evaluation struct {
	Pet           *Pet           `json:"pet"`
	Level         int            `json:"level"`
	CurrentStats  StatSet        `json:"currentStats"`
	ExpectedStats StatSet        `json:"expectedStats"`
	Analysis      []StatAnalysis `json:"analysis"`
	OverallScore  float64        `json:"overallScore"`
	OverallRating OverallRating  `json:"rating"`
}

// round2 rounds to 2 decimal places, half away from zero. The reference
// behavior only pins "nearest hundredth"; half-away-from-zero is the
// documented choice here.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ExpectedStats computes the statistically expected stat set for a species
// at the given level: base + (level-1) × per-level expectation, where the
// main stat uses MainStatPerLevel and every other stat SubStatPerLevel.
// Each value is rounded to 2 decimals.
//
// Precondition: level >= 1. Level 1 yields the base stats exactly.
func ExpectedStats(p *Pet, level int) StatSet {
	growthLevels := float64(level - 1)
	out := p.BaseStats
	for _, key := range statOrder {
		perLevel := SubStatPerLevel
		if p.IsMainStat(key) {
			perLevel = MainStatPerLevel
		}
		out = out.WithValue(key, round2(p.BaseStats.Value(key)+growthLevels*perLevel))
	}
	return out
}

// ScoreGrowthRate maps a growth rate to its numeric score, evaluated
// top-down from the highest band.
func ScoreGrowthRate(rate float64) int {
	switch {
	case rate >= 1.4:
		return 100
	case rate >= 1.2:
		return 85
	case rate >= 1.0:
		return 70
	case rate >= 0.85:
		return 55
	default:
		return 30
	}
}

// RatingForScore maps a numeric score to its per-stat rating. The
// breakpoints intentionally mirror the ScoreGrowthRate output values and
// must stay numerically aligned with them, even though score generation
// and rating classification are distinct concerns.
func RatingForScore(score int) Rating {
	switch {
	case score >= 100:
		return RatingExcellent
	case score >= 85:
		return RatingGood
	case score >= 70:
		return RatingAverage
	case score >= 55:
		return RatingPoor
	default:
		return RatingBad
	}
}

// OverallRatingForScore maps a weighted overall score to its band.
func OverallRatingForScore(score float64) OverallRating {
	switch {
	case score >= 95:
		return OverallGodTier
	case score >= 80:
		return OverallHighQuality
	case score >= 60:
		return OverallNormalPet
	case score >= 45:
		return OverallNeedImprovement
	default:
		return OverallTragic
	}
}

// AnalyzeStat evaluates a single stat against its expectation.
//
// Growth rate is growth/expectedGrowth, with two defined edge cases: 0/0 is
// a perfect 1.0, and nonzero/0 is 0. Aggressiveness is fixed at 3 in-game
// and never scored: it always reports score 70, RatingNotRated, rate 1.0,
// and IsMainStat false.
func AnalyzeStat(key StatKey, current, expected, base float64, p *Pet) StatAnalysis {
	growth := current - base
	expectedGrowth := expected - base

	var growthRate float64
	if expectedGrowth > 0 {
		growthRate = growth / expectedGrowth
	} else if growth == 0 && expectedGrowth == 0 {
		growthRate = 1.0
	}

	if key == StatAggressiveness {
		return StatAnalysis{
			Stat:           key,
			StatName:       StatName(key),
			Current:        current,
			Expected:       expected,
			Base:           base,
			Growth:         growth,
			GrowthRate:     1.0,
			Score:          70,
			Rating:         RatingNotRated,
			IsMainStat:     false,
			CharacterBonus: CharacterBonus(key, current),
		}
	}

	score := ScoreGrowthRate(growthRate)
	return StatAnalysis{
		Stat:           key,
		StatName:       StatName(key),
		Current:        current,
		Expected:       expected,
		Base:           base,
		Growth:         growth,
		GrowthRate:     growthRate,
		Score:          score,
		Rating:         RatingForScore(score),
		IsMainStat:     p.IsMainStat(key),
		CharacterBonus: CharacterBonus(key, current),
	}
}

// Evaluate scores a pet's observed stats against expectation at level.
//
// Precondition: inputs must satisfy ValidateInput; Evaluate does not
// re-validate.
// Postcondition: Returns an Evaluation with one StatAnalysis per stat in
// canonical order. The overall score excludes aggressiveness from both
// numerator and denominator, weighs the main stat at MainStatWeight, and is
// rounded to 2 decimals.
func Evaluate(p *Pet, level int, current StatSet) Evaluation {
	expected := ExpectedStats(p, level)

	analysis := make([]StatAnalysis, 0, len(statOrder))
	var totalScore, totalWeight float64

	for _, key := range statOrder {
		sa := AnalyzeStat(key, current.Value(key), expected.Value(key), p.BaseStats.Value(key), p)
		analysis = append(analysis, sa)

		if key == StatAggressiveness {
			continue
		}
		weight := 1.0
		if sa.IsMainStat {
			weight = MainStatWeight
		}
		totalScore += float64(sa.Score) * weight
		totalWeight += weight
	}

	overall := round2(totalScore / totalWeight)
	return Evaluation{
		Pet:           p,
		Level:         level,
		CurrentStats:  current,
		ExpectedStats: expected,
		Analysis:      analysis,
		OverallScore:  overall,
		OverallRating: OverallRatingForScore(overall),
	}
}
