package jobchange

import "fmt"

// SkillCountWarningThreshold and SpellCountWarningThreshold bound the
// skill/spell totals above which a basket draws a plausibility warning.
const (
	SkillCountWarningThreshold = 20
	SpellCountWarningThreshold = 20
)

// BasketReport is the result of validating a basket: errors make the
// basket invalid, warnings are advisory and never block computation.
type BasketReport struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// IsValid reports whether the basket carries no errors.
func (r BasketReport) IsValid() bool { return len(r.Errors) == 0 }

// ValidateBasket checks a basket against quantity caps and key validity.
//
// Errors: non-positive quantities, unknown category/subtype/quality keys,
// and per-subtype totals above the schedule's caps (summed across
// qualities and lines). Warnings: an empty basket, and skill or spell
// totals above the plausibility thresholds.
//
// Validation is reported, not enforced: CostBasket will happily price an
// over-cap basket.
func (e *Engine) ValidateBasket(items []LineItem) BasketReport {
	var report BasketReport

	if len(items) == 0 {
		report.Warnings = append(report.Warnings, "basket is empty, add items to price a job change")
		return report
	}

	equipmentTotals := make(map[string]int)
	cashTotals := make(map[string]int)
	var skillTotal, spellTotal int

	for _, item := range items {
		if item.Quantity <= 0 {
			report.Errors = append(report.Errors, fmt.Sprintf("quantity for %s must be positive, got %d", describeItem(item), item.Quantity))
			continue
		}

		switch item.Category {
		case CategoryEquipment:
			if _, err := e.schedule.EquipmentUnitCost(item.Subtype, item.Quality); err != nil {
				report.Errors = append(report.Errors, err.Error())
				continue
			}
			equipmentTotals[item.Subtype] += item.Quantity
		case CategoryCash:
			if _, err := e.schedule.CashUnitCost(item.Subtype); err != nil {
				report.Errors = append(report.Errors, err.Error())
				continue
			}
			cashTotals[item.Subtype] += item.Quantity
		case CategorySkill:
			if _, err := e.schedule.SkillRule(item.Quality); err != nil {
				report.Errors = append(report.Errors, err.Error())
				continue
			}
			skillTotal += item.Quantity
		case CategorySpell:
			if _, err := e.schedule.SpellRule(item.Quality); err != nil {
				report.Errors = append(report.Errors, err.Error())
				continue
			}
			spellTotal += item.Quantity
		default:
			report.Errors = append(report.Errors, fmt.Sprintf("unknown item category %q", item.Category))
		}
	}

	// Caps apply to the subtype total across all qualities and lines.
	for subtype, total := range equipmentTotals {
		if max, err := e.schedule.EquipmentMax(subtype); err == nil && total > max {
			report.Errors = append(report.Errors, fmt.Sprintf("%s count %d exceeds the limit of %d across all qualities", subtype, total, max))
		}
	}
	for subtype, total := range cashTotals {
		rule := e.schedule.CashEquipment[subtype]
		if total > rule.Max {
			report.Errors = append(report.Errors, fmt.Sprintf("cash %s count %d exceeds the limit of %d", subtype, total, rule.Max))
		}
	}

	if skillTotal > SkillCountWarningThreshold {
		report.Warnings = append(report.Warnings, fmt.Sprintf("skill count %d is unusually high, double-check the basket", skillTotal))
	}
	if spellTotal > SpellCountWarningThreshold {
		report.Warnings = append(report.Warnings, fmt.Sprintf("spell card count %d is unusually high, double-check the basket", spellTotal))
	}

	return report
}

func describeItem(item LineItem) string {
	if item.Subtype != "" {
		return fmt.Sprintf("%s %s", item.Quality, item.Subtype)
	}
	return fmt.Sprintf("%s %s", item.Quality, item.Category)
}
