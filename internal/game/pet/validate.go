package pet

import "fmt"

// MinLevel and MaxLevel bound valid pet levels.
const (
	MinLevel = 1
	MaxLevel = 15
)

// ValidateInput checks an evaluation input and returns one human-readable
// message per violation. An empty slice means the input may be passed to
// Evaluate.
//
// Checks: level within [MinLevel, MaxLevel]; no negative stat values; no
// non-aggressiveness stat below its species base.
func ValidateInput(p *Pet, level int, current StatSet) []string {
	var errs []string

	if p == nil {
		return []string{"a pet species must be selected"}
	}

	if level < MinLevel || level > MaxLevel {
		errs = append(errs, fmt.Sprintf("pet level must be between %d and %d, got %d", MinLevel, MaxLevel, level))
	}

	for _, key := range statOrder {
		value := current.Value(key)
		base := p.BaseStats.Value(key)

		if value < 0 {
			errs = append(errs, fmt.Sprintf("%s must not be negative, got %g", StatName(key), value))
		}
		if key != StatAggressiveness && value < base {
			errs = append(errs, fmt.Sprintf("%s must not be below its base value %g, got %g", StatName(key), base, value))
		}
	}

	return errs
}
