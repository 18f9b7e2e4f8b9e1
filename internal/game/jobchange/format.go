package jobchange

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// FormatCoins renders a coin amount with thousands separators and the coin
// unit, e.g. 12345 -> "12,345 coins".
func FormatCoins(amount int) string {
	return fmt.Sprintf("%s coins", humanize.Comma(int64(amount)))
}

// FormatDiamonds renders a diamond amount with thousands separators.
func FormatDiamonds(amount int) string {
	return fmt.Sprintf("%s diamonds", humanize.Comma(int64(amount)))
}

// Summary renders a breakdown as display lines: the base fee, each non-zero
// category subtotal, the discount if any, and the final totals.
func Summary(b Breakdown) []string {
	lines := []string{
		fmt.Sprintf("Base job-change fee: %s", FormatDiamonds(b.BaseFee)),
	}

	if b.EquipmentCoins > 0 {
		lines = append(lines, fmt.Sprintf("Equipment coins: %s", FormatCoins(b.EquipmentCoins)))
	}
	if b.SkillCoins > 0 {
		lines = append(lines, fmt.Sprintf("Skill coins: %s", FormatCoins(b.SkillCoins)))
	}
	if b.SpellCoins > 0 {
		lines = append(lines, fmt.Sprintf("Spell card coins: %s", FormatCoins(b.SpellCoins)))
	}
	if b.CashCoins > 0 {
		lines = append(lines, fmt.Sprintf("Cash equipment coins: %s", FormatCoins(b.CashCoins)))
	}
	if b.Discount > 0 {
		lines = append(lines, fmt.Sprintf("Package discount: -%s", FormatCoins(b.Discount)))
	}

	lines = append(lines,
		fmt.Sprintf("Coin subtotal: %s", FormatCoins(b.FinalCoins)),
		fmt.Sprintf("Total: %s + %s", FormatDiamonds(b.BaseFee), FormatCoins(b.FinalCoins)),
	)
	return lines
}
