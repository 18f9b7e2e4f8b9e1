// Package jobchange implements the job-change (reclass) cost engine: flat
// equipment pricing, progressive skill and spell-card pricing, and full
// basket costing with the package discount and base fee.
package jobchange

// Quality is an item quality tier. Cash-shop equipment is quality-less and
// uses QualityCash.
type Quality string

const (
	QualityRare   Quality = "rare"
	QualityHero   Quality = "hero"
	QualityLegend Quality = "legend"
	QualityMythic Quality = "mythic"
	QualityCash   Quality = "cash"
)

// Qualities lists the four priced quality tiers in ascending order.
var Qualities = []Quality{QualityRare, QualityHero, QualityLegend, QualityMythic}

// Category is a line-item category, dispatching the pricing mode: equipment
// and cash equipment are flat-priced per (subtype, quality); skills and
// spell cards are progressively priced per quality.
type Category string

const (
	CategoryEquipment Category = "equipment"
	CategorySkill     Category = "skill"
	CategorySpell     Category = "spell"
	CategoryCash      Category = "cash"
)

// Equipment subtypes. Skills and spell cards have no subtype.
const (
	SlotWeapon   = "weapon"
	SlotHelmet   = "helmet"
	SlotChest    = "chest"
	SlotArms     = "arms"
	SlotGloves   = "gloves"
	SlotLegs     = "legs"
	SlotBoots    = "boots"
	SlotBelt     = "belt"
	SlotCloak    = "cloak"
	SlotNecklace = "necklace"
	SlotEarring  = "earring"
	SlotRing     = "ring"
	SlotRune     = "rune"
)

// Cash-shop equipment subtypes.
const (
	CashShirt    = "shirt"
	CashShoulder = "shoulder"
	CashMask     = "mask"
)

// LineItem is one basket entry. Any cost a caller attaches to its own view
// of an item is never trusted; the engine always recomputes from the
// schedule.
type LineItem struct {
	// ID is an optional caller- or server-assigned identifier, carried
	// through to cost responses.
	ID       string   `json:"id,omitempty"`
	Category Category `json:"category"`
	// Subtype is the equipment or cash-equipment slot; empty for skills and
	// spell cards.
	Subtype  string  `json:"subtype,omitempty"`
	Quality  Quality `json:"quality"`
	Quantity int     `json:"quantity"`
}
