// Package pet implements the pet growth evaluation engine: expected-stat
// baselines derived from the level-up probability tables, per-stat growth
// scoring, and the weighted overall rating.
package pet

import (
	"fmt"
	"math"
)

// StatKey identifies one of the five pet stats.
type StatKey string

const (
	StatEndurance      StatKey = "endurance"
	StatLoyalty        StatKey = "loyalty"
	StatSpeed          StatKey = "speed"
	StatAggressiveness StatKey = "aggressiveness"
	StatHP             StatKey = "hp"
)

// statOrder is the canonical display and iteration order for stats.
var statOrder = []StatKey{StatEndurance, StatLoyalty, StatSpeed, StatAggressiveness, StatHP}

// StatKeys returns the five stat keys in canonical order.
//
// Postcondition: Returns a fresh slice; callers may modify it freely.
func StatKeys() []StatKey {
	out := make([]StatKey, len(statOrder))
	copy(out, statOrder)
	return out
}

// StatSet is a fixed-shape record of the five stat values. The struct form
// guarantees the "exactly five keys" invariant at the type level.
type StatSet struct {
	Endurance      float64 `yaml:"endurance" json:"endurance"`
	Loyalty        float64 `yaml:"loyalty" json:"loyalty"`
	Speed          float64 `yaml:"speed" json:"speed"`
	Aggressiveness float64 `yaml:"aggressiveness" json:"aggressiveness"`
	HP             float64 `yaml:"hp" json:"hp"`
}

// Value returns the stat value for key.
//
// Precondition: key must be one of the five StatKey constants.
func (s StatSet) Value(key StatKey) float64 {
	switch key {
	case StatEndurance:
		return s.Endurance
	case StatLoyalty:
		return s.Loyalty
	case StatSpeed:
		return s.Speed
	case StatAggressiveness:
		return s.Aggressiveness
	case StatHP:
		return s.HP
	}
	panic(fmt.Sprintf("pet.StatSet.Value: unknown stat key %q", key))
}

// WithValue returns a copy of s with key set to v.
//
// Precondition: key must be one of the five StatKey constants.
func (s StatSet) WithValue(key StatKey, v float64) StatSet {
	switch key {
	case StatEndurance:
		s.Endurance = v
	case StatLoyalty:
		s.Loyalty = v
	case StatSpeed:
		s.Speed = v
	case StatAggressiveness:
		s.Aggressiveness = v
	case StatHP:
		s.HP = v
	default:
		panic(fmt.Sprintf("pet.StatSet.WithValue: unknown stat key %q", key))
	}
	return s
}

// Add returns the member-wise sum of s and other. Used to apply skill
// bonuses on top of observed stats.
func (s StatSet) Add(other StatSet) StatSet {
	return StatSet{
		Endurance:      s.Endurance + other.Endurance,
		Loyalty:        s.Loyalty + other.Loyalty,
		Speed:          s.Speed + other.Speed,
		Aggressiveness: s.Aggressiveness + other.Aggressiveness,
		HP:             s.HP + other.HP,
	}
}

// Pet is the static definition of a pet species.
type Pet struct {
	ID       string  `yaml:"id" json:"id"`
	Name     string  `yaml:"name" json:"name"`
	MainStat StatKey `yaml:"main_stat" json:"mainStat"`
	// BaseStats are the level-1 stats for the species.
	BaseStats StatSet `yaml:"base_stats" json:"baseStats"`
}

// IsMainStat reports whether key is the species' designated main stat.
func (p *Pet) IsMainStat(key StatKey) bool {
	return p.MainStat == key
}

// StatName returns the display name for a stat key, or the raw key string
// if it is not one of the five known stats.
func StatName(key StatKey) string {
	switch key {
	case StatEndurance:
		return "Endurance"
	case StatLoyalty:
		return "Loyalty"
	case StatSpeed:
		return "Speed"
	case StatAggressiveness:
		return "Aggressiveness"
	case StatHP:
		return "HP"
	}
	return string(key)
}

// CharacterBonus returns the display string for the character-side bonus a
// stat value grants. Presentation metadata only; it does not influence
// scoring.
//
// Postcondition: Returns a non-empty string for the five known stats.
func CharacterBonus(key StatKey, value float64) string {
	if value < 0 {
		return "no bonus"
	}
	switch key {
	case StatEndurance:
		return fmt.Sprintf("+%d physical defense", int(math.Floor(value/5)))
	case StatLoyalty:
		return fmt.Sprintf("+%d hit", int(math.Floor(value/5)))
	case StatSpeed:
		return fmt.Sprintf("+%d dodge", int(math.Floor(value/10)))
	case StatHP:
		return fmt.Sprintf("+%d HP", int(value)*30)
	case StatAggressiveness:
		return fmt.Sprintf("+%d attack", int(math.Floor(value/3)))
	}
	return ""
}
