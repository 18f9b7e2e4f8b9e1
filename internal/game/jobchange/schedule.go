package jobchange

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Lookup failures are hard errors: a silently defaulted rule would corrupt
// every total built on it.
var (
	ErrUnknownCategory = errors.New("unknown item category")
	ErrUnknownSubtype  = errors.New("unknown equipment subtype")
	ErrUnknownQuality  = errors.New("unknown quality tier")
)

// PriceTier is one step of a progressive price schedule: once cumulative
// quantity exceeds Threshold, further units cost UnitCost each.
type PriceTier struct {
	Threshold int `yaml:"threshold" json:"threshold"`
	UnitCost  int `yaml:"unit_cost" json:"unitCost"`
}

// TieredRule is a progressive price-per-unit schedule: the first
// Tiers[0].Threshold units cost Base each, then each tier's UnitCost
// applies up to the next threshold, uncapped past the last.
type TieredRule struct {
	Base  int         `yaml:"base" json:"base"`
	Tiers []PriceTier `yaml:"tiers" json:"tiers,omitempty"`
}

// EquipmentRule holds the flat per-quality unit costs and the per-basket
// quantity cap for one equipment slot.
type EquipmentRule struct {
	Max   int             `yaml:"max" json:"max"`
	Costs map[Quality]int `yaml:"costs" json:"costs"`
}

// CashRule holds the flat unit cost and quantity cap for one cash-shop
// slot. Cash equipment is quality-less.
type CashRule struct {
	Max  int `yaml:"max" json:"max"`
	Cost int `yaml:"cost" json:"cost"`
}

// Schedule is the full pricing table set: a typed two-level lookup, never
// keyed by concatenated strings.
type Schedule struct {
	Equipment     map[string]EquipmentRule `yaml:"equipment" json:"equipment"`
	CashEquipment map[string]CashRule      `yaml:"cash_equipment" json:"cashEquipment"`
	Skills        map[Quality]TieredRule   `yaml:"skills" json:"skills"`
	Spells        map[Quality]TieredRule   `yaml:"spells" json:"spells"`
}

// TieredCost prices quantity units under a progressive schedule.
//
// The quantity is partitioned across ordered bands with no overlap and no
// gap: units 1..tiers[0].Threshold at base, units in
// (tiers[i].Threshold, tiers[i+1].Threshold] at tiers[i].UnitCost, and
// units beyond the last threshold at the last tier's UnitCost.
//
// Precondition: quantity >= 0; tiers ascending by Threshold (re-sorted
// defensively since rules may arrive from config files).
// Postcondition: Returns 0 for quantity 0; quantity×base for empty tiers.
func TieredCost(quantity, base int, tiers []PriceTier) int {
	if quantity == 0 {
		return 0
	}
	if len(tiers) == 0 {
		return quantity * base
	}

	sorted := make([]PriceTier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Threshold < sorted[j].Threshold })

	remaining := quantity
	cost := 0

	baseQty := min(remaining, sorted[0].Threshold)
	cost += baseQty * base
	remaining -= baseQty

	for i := 0; i < len(sorted) && remaining > 0; i++ {
		bandWidth := remaining
		if i+1 < len(sorted) {
			bandWidth = min(remaining, sorted[i+1].Threshold-sorted[i].Threshold)
		}
		cost += bandWidth * sorted[i].UnitCost
		remaining -= bandWidth
	}

	return cost
}

// FlatCost prices quantity units at a fixed unit cost.
func FlatCost(quantity, unitCost int) int {
	return quantity * unitCost
}

// Cost prices quantity units under the rule.
func (r TieredRule) Cost(quantity int) int {
	return TieredCost(quantity, r.Base, r.Tiers)
}

// EquipmentUnitCost returns the flat unit cost for an equipment slot at a
// quality tier.
func (s *Schedule) EquipmentUnitCost(subtype string, quality Quality) (int, error) {
	rule, ok := s.Equipment[subtype]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSubtype, subtype)
	}
	cost, ok := rule.Costs[quality]
	if !ok {
		return 0, fmt.Errorf("%w: %q for subtype %q", ErrUnknownQuality, quality, subtype)
	}
	return cost, nil
}

// CashUnitCost returns the flat unit cost for a cash-shop slot.
func (s *Schedule) CashUnitCost(subtype string) (int, error) {
	rule, ok := s.CashEquipment[subtype]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSubtype, subtype)
	}
	return rule.Cost, nil
}

// SkillRule returns the progressive rule for skills of a quality tier.
func (s *Schedule) SkillRule(quality Quality) (TieredRule, error) {
	rule, ok := s.Skills[quality]
	if !ok {
		return TieredRule{}, fmt.Errorf("%w: %q for skills", ErrUnknownQuality, quality)
	}
	return rule, nil
}

// SpellRule returns the progressive rule for spell cards of a quality tier.
func (s *Schedule) SpellRule(quality Quality) (TieredRule, error) {
	rule, ok := s.Spells[quality]
	if !ok {
		return TieredRule{}, fmt.Errorf("%w: %q for spell cards", ErrUnknownQuality, quality)
	}
	return rule, nil
}

// EquipmentMax returns the per-basket quantity cap for an equipment slot.
func (s *Schedule) EquipmentMax(subtype string) (int, error) {
	rule, ok := s.Equipment[subtype]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSubtype, subtype)
	}
	return rule.Max, nil
}

// standardCosts is the 1/9/27/81 coin ladder shared by every equipment slot.
func standardCosts() map[Quality]int {
	return map[Quality]int{
		QualityRare:   1,
		QualityHero:   9,
		QualityLegend: 27,
		QualityMythic: 81,
	}
}

// DefaultSchedule returns the canonical pricing tables.
//
// The source material carries two divergent copies of these tables; this is
// the rewritten-module copy, which prices runes at all four qualities with
// a cap of 2. See DESIGN.md for the divergence record.
func DefaultSchedule() *Schedule {
	return &Schedule{
		Equipment: map[string]EquipmentRule{
			SlotWeapon:   {Max: 3, Costs: standardCosts()},
			SlotHelmet:   {Max: 2, Costs: standardCosts()},
			SlotChest:    {Max: 2, Costs: standardCosts()},
			SlotArms:     {Max: 2, Costs: standardCosts()},
			SlotGloves:   {Max: 2, Costs: standardCosts()},
			SlotLegs:     {Max: 2, Costs: standardCosts()},
			SlotBoots:    {Max: 2, Costs: standardCosts()},
			SlotBelt:     {Max: 2, Costs: standardCosts()},
			SlotCloak:    {Max: 2, Costs: standardCosts()},
			SlotNecklace: {Max: 2, Costs: standardCosts()},
			SlotEarring:  {Max: 2, Costs: standardCosts()},
			SlotRing:     {Max: 4, Costs: standardCosts()},
			SlotRune:     {Max: 2, Costs: standardCosts()},
		},
		CashEquipment: map[string]CashRule{
			CashShirt:    {Max: 3, Cost: 5},
			CashShoulder: {Max: 1, Cost: 5},
			CashMask:     {Max: 1, Cost: 5},
		},
		Skills: map[Quality]TieredRule{
			QualityRare: {Base: 1},
			QualityHero: {Base: 9, Tiers: []PriceTier{
				{Threshold: 6, UnitCost: 18},
				{Threshold: 7, UnitCost: 27},
			}},
			QualityLegend: {Base: 27, Tiers: []PriceTier{
				{Threshold: 3, UnitCost: 54},
				{Threshold: 4, UnitCost: 81},
			}},
			QualityMythic: {Base: 81, Tiers: []PriceTier{
				{Threshold: 1, UnitCost: 162},
			}},
		},
		Spells: map[Quality]TieredRule{
			QualityRare: {Base: 1, Tiers: []PriceTier{
				{Threshold: 10, UnitCost: 1},
			}},
			QualityHero: {Base: 9, Tiers: []PriceTier{
				{Threshold: 10, UnitCost: 18},
				{Threshold: 11, UnitCost: 27},
			}},
			QualityLegend: {Base: 27, Tiers: []PriceTier{
				{Threshold: 10, UnitCost: 54},
				{Threshold: 11, UnitCost: 81},
			}},
			QualityMythic: {Base: 81},
		},
	}
}

// LoadSchedule reads a full pricing schedule from a YAML file, letting an
// embedding application override the built-in tables.
//
// Precondition: path must be a readable YAML file.
// Postcondition: Returns a schedule with all four table sets non-empty, or
// a non-nil error.
func LoadSchedule(path string) (*Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pricing file %q: %w", path, err)
	}
	var s Schedule
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing pricing file %q: %w", path, err)
	}
	if len(s.Equipment) == 0 || len(s.CashEquipment) == 0 || len(s.Skills) == 0 || len(s.Spells) == 0 {
		return nil, fmt.Errorf("pricing file %q: all four table sets must be present", path)
	}
	return &s, nil
}
