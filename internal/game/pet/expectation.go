package pet

// GrowthOutcome is one entry of a level-up probability table: a stat delta
// and the probability of rolling it.
type GrowthOutcome struct {
	Delta       float64 `yaml:"delta"`
	Probability float64 `yaml:"probability"`
}

// GrowthDistribution is an ordered discrete probability distribution over
// per-level stat deltas. The probabilities of a canonical table sum to 1.0;
// the engine does not re-validate this at runtime, callers own the tables.
type GrowthDistribution []GrowthOutcome

// ExpectedValue reduces the distribution to its expected per-level delta.
//
// Postcondition: Returns Σ(delta × probability) over all outcomes.
func (d GrowthDistribution) ExpectedValue() float64 {
	var sum float64
	for _, o := range d {
		sum += o.Delta * o.Probability
	}
	return sum
}

// MainStatDistribution is the level-up delta table for a species' main stat.
var MainStatDistribution = GrowthDistribution{
	{Delta: 1, Probability: 0.05},
	{Delta: 2, Probability: 0.15},
	{Delta: 3, Probability: 0.30},
	{Delta: 4, Probability: 0.20},
	{Delta: 5, Probability: 0.15},
	{Delta: 6, Probability: 0.10},
	{Delta: 7, Probability: 0.05},
}

// SubStatDistribution is the level-up delta table for every non-main stat.
var SubStatDistribution = GrowthDistribution{
	{Delta: 0, Probability: 0.15},
	{Delta: 1, Probability: 0.50},
	{Delta: 2, Probability: 0.30},
	{Delta: 3, Probability: 0.05},
}

// MainStatPerLevel is the expected main-stat growth per level (3.75 for the
// canonical table).
var MainStatPerLevel = MainStatDistribution.ExpectedValue()

// SubStatPerLevel is the expected secondary-stat growth per level (1.25 for
// the canonical table).
var SubStatPerLevel = SubStatDistribution.ExpectedValue()
