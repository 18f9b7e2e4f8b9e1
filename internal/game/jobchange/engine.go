package jobchange

import "fmt"

const (
	// BaseFeeDiamonds is the fixed job-change fee, charged in diamonds (a
	// separate currency from coins).
	BaseFeeDiamonds = 2000
	// PackageDiscountCoins is the flat coin discount granted by the
	// job-change package.
	PackageDiscountCoins = 300
)

// Breakdown is the full result of costing one basket. Immutable once
// returned.
type Breakdown struct {
	// Per-category coin subtotals.
	EquipmentCoins int `json:"equipmentCost"`
	SkillCoins     int `json:"skillCost"`
	SpellCoins     int `json:"spellCost"`
	CashCoins      int `json:"cashCost"`
	// TotalCoins is the sum of the four subtotals before any discount.
	TotalCoins int `json:"totalCoinCost"`
	// Discount is the coin discount actually applied.
	Discount int `json:"packageDiscount"`
	// FinalCoins is max(0, TotalCoins - Discount); never negative.
	FinalCoins int `json:"finalCoinCost"`
	// BaseFee is the fixed diamond fee.
	BaseFee int `json:"baseCost"`
	// GrandTotal is BaseFee + FinalCoins. The two addends are different
	// currency units; the sum mirrors the in-game receipt line.
	GrandTotal int `json:"totalCost"`
}

// Engine totals job-change baskets against a pricing schedule. Stateless
// beyond the read-only schedule; safe for concurrent use.
type Engine struct {
	schedule *Schedule
}

// NewEngine creates an Engine over the given schedule.
//
// Precondition: schedule must be non-nil.
func NewEngine(schedule *Schedule) *Engine {
	if schedule == nil {
		panic("jobchange.NewEngine: precondition violated: schedule must be non-nil")
	}
	return &Engine{schedule: schedule}
}

// Schedule returns the engine's pricing schedule.
func (e *Engine) Schedule() *Schedule { return e.schedule }

// CostLineItem prices a single line item in coins, dispatching on its
// category: equipment and cash equipment flat, skills and spell cards
// progressive over the item's own quantity.
//
// Postcondition: Returns a non-negative cost, or an error for unknown
// category, subtype, or quality keys.
func (e *Engine) CostLineItem(item LineItem) (int, error) {
	switch item.Category {
	case CategoryEquipment:
		unit, err := e.schedule.EquipmentUnitCost(item.Subtype, item.Quality)
		if err != nil {
			return 0, err
		}
		return FlatCost(item.Quantity, unit), nil
	case CategoryCash:
		unit, err := e.schedule.CashUnitCost(item.Subtype)
		if err != nil {
			return 0, err
		}
		return FlatCost(item.Quantity, unit), nil
	case CategorySkill:
		rule, err := e.schedule.SkillRule(item.Quality)
		if err != nil {
			return 0, err
		}
		return rule.Cost(item.Quantity), nil
	case CategorySpell:
		rule, err := e.schedule.SpellRule(item.Quality)
		if err != nil {
			return 0, err
		}
		return rule.Cost(item.Quantity), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, item.Category)
}

// CostBasket totals a basket of line items.
//
// Equipment and cash items are priced per line. Skill and spell quantities
// are aggregated per quality tier across the whole basket before the
// progressive rule is applied, so splitting a quantity across lines never
// changes the total.
//
// Postcondition: Returns a full Breakdown, or an error for any unknown
// lookup key; no partial result is produced.
func (e *Engine) CostBasket(items []LineItem, hasDiscount bool) (Breakdown, error) {
	var equipment, cash int
	skillQty := make(map[Quality]int)
	spellQty := make(map[Quality]int)

	for _, item := range items {
		switch item.Category {
		case CategoryEquipment:
			unit, err := e.schedule.EquipmentUnitCost(item.Subtype, item.Quality)
			if err != nil {
				return Breakdown{}, err
			}
			equipment += FlatCost(item.Quantity, unit)
		case CategoryCash:
			unit, err := e.schedule.CashUnitCost(item.Subtype)
			if err != nil {
				return Breakdown{}, err
			}
			cash += FlatCost(item.Quantity, unit)
		case CategorySkill:
			if _, err := e.schedule.SkillRule(item.Quality); err != nil {
				return Breakdown{}, err
			}
			skillQty[item.Quality] += item.Quantity
		case CategorySpell:
			if _, err := e.schedule.SpellRule(item.Quality); err != nil {
				return Breakdown{}, err
			}
			spellQty[item.Quality] += item.Quantity
		default:
			return Breakdown{}, fmt.Errorf("%w: %q", ErrUnknownCategory, item.Category)
		}
	}

	var skills int
	for quality, qty := range skillQty {
		rule, _ := e.schedule.SkillRule(quality)
		skills += rule.Cost(qty)
	}
	var spells int
	for quality, qty := range spellQty {
		rule, _ := e.schedule.SpellRule(quality)
		spells += rule.Cost(qty)
	}

	total := equipment + skills + spells + cash
	discount := 0
	if hasDiscount {
		discount = PackageDiscountCoins
	}
	final := total - discount
	if final < 0 {
		final = 0
	}

	return Breakdown{
		EquipmentCoins: equipment,
		SkillCoins:     skills,
		SpellCoins:     spells,
		CashCoins:      cash,
		TotalCoins:     total,
		Discount:       discount,
		FinalCoins:     final,
		BaseFee:        BaseFeeDiamonds,
		GrandTotal:     BaseFeeDiamonds + final,
	}, nil
}
