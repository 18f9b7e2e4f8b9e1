package jobchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewEngine_NilSchedulePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a nil schedule")
		}
	}()
	NewEngine(nil)
}

func TestCostLineItem(t *testing.T) {
	e := NewEngine(DefaultSchedule())

	cases := []struct {
		name string
		item LineItem
		want int
	}{
		{"rare weapon", LineItem{Category: CategoryEquipment, Subtype: SlotWeapon, Quality: QualityRare, Quantity: 1}, 1},
		{"mythic rune pair", LineItem{Category: CategoryEquipment, Subtype: SlotRune, Quality: QualityMythic, Quantity: 2}, 162},
		{"cash shirts", LineItem{Category: CategoryCash, Subtype: CashShirt, Quantity: 3}, 15},
		{"hero skills at the worked example", LineItem{Category: CategorySkill, Quality: QualityHero, Quantity: 9}, 126},
		{"rare spells at the worked example", LineItem{Category: CategorySpell, Quality: QualityRare, Quantity: 12}, 12},
		{"mythic spells flat", LineItem{Category: CategorySpell, Quality: QualityMythic, Quantity: 3}, 243},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := e.CostLineItem(tc.item)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCostLineItem_UnknownKeys(t *testing.T) {
	e := NewEngine(DefaultSchedule())

	_, err := e.CostLineItem(LineItem{Category: Category("mount"), Quantity: 1})
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = e.CostLineItem(LineItem{Category: CategoryEquipment, Subtype: "halo", Quality: QualityRare, Quantity: 1})
	assert.ErrorIs(t, err, ErrUnknownSubtype)

	_, err = e.CostLineItem(LineItem{Category: CategorySkill, Quality: QualityCash, Quantity: 1})
	assert.ErrorIs(t, err, ErrUnknownQuality)
}

func TestCostBasket_Subtotals(t *testing.T) {
	e := NewEngine(DefaultSchedule())

	b, err := e.CostBasket([]LineItem{
		{Category: CategoryEquipment, Subtype: SlotWeapon, Quality: QualityLegend, Quantity: 2},
		{Category: CategorySkill, Quality: QualityHero, Quantity: 9},
		{Category: CategorySpell, Quality: QualityRare, Quantity: 12},
		{Category: CategoryCash, Subtype: CashMask, Quantity: 1},
	}, false)
	require.NoError(t, err)

	assert.Equal(t, 54, b.EquipmentCoins)
	assert.Equal(t, 126, b.SkillCoins)
	assert.Equal(t, 12, b.SpellCoins)
	assert.Equal(t, 5, b.CashCoins)
	assert.Equal(t, 197, b.TotalCoins)
	assert.Equal(t, 0, b.Discount)
	assert.Equal(t, 197, b.FinalCoins)
	assert.Equal(t, BaseFeeDiamonds, b.BaseFee)
	assert.Equal(t, BaseFeeDiamonds+197, b.GrandTotal)
}

func TestCostBasket_DiscountClampsAtZero(t *testing.T) {
	e := NewEngine(DefaultSchedule())

	// One rare weapon costs 1 coin; the 300 coin package discount clamps
	// the final coin cost to zero rather than going negative.
	b, err := e.CostBasket([]LineItem{
		{Category: CategoryEquipment, Subtype: SlotWeapon, Quality: QualityRare, Quantity: 1},
	}, true)
	require.NoError(t, err)

	assert.Equal(t, 1, b.TotalCoins)
	assert.Equal(t, PackageDiscountCoins, b.Discount)
	assert.Equal(t, 0, b.FinalCoins)
	assert.Equal(t, BaseFeeDiamonds, b.GrandTotal)
}

func TestCostBasket_DiscountAppliedInFull(t *testing.T) {
	e := NewEngine(DefaultSchedule())

	b, err := e.CostBasket([]LineItem{
		{Category: CategorySkill, Quality: QualityMythic, Quantity: 5},
	}, true)
	require.NoError(t, err)

	// 81 + 4×162 = 729 coins before the discount.
	assert.Equal(t, 729, b.TotalCoins)
	assert.Equal(t, 429, b.FinalCoins)
	assert.Equal(t, BaseFeeDiamonds+429, b.GrandTotal)
}

func TestCostBasket_EmptyBasket(t *testing.T) {
	e := NewEngine(DefaultSchedule())

	b, err := e.CostBasket(nil, false)
	require.NoError(t, err)
	assert.Equal(t, 0, b.TotalCoins)
	assert.Equal(t, BaseFeeDiamonds, b.GrandTotal)
}

func TestCostBasket_AggregatesSkillsAcrossLines(t *testing.T) {
	e := NewEngine(DefaultSchedule())

	// 9 hero skills on one line and 4+5 across two lines must price
	// identically: tiering applies to the basket-wide total.
	one, err := e.CostBasket([]LineItem{
		{Category: CategorySkill, Quality: QualityHero, Quantity: 9},
	}, false)
	require.NoError(t, err)

	split, err := e.CostBasket([]LineItem{
		{Category: CategorySkill, Quality: QualityHero, Quantity: 4},
		{Category: CategorySkill, Quality: QualityHero, Quantity: 5},
	}, false)
	require.NoError(t, err)

	assert.Equal(t, one.SkillCoins, split.SkillCoins)
	assert.Equal(t, 126, split.SkillCoins)
}

func TestCostBasket_FailsFastOnUnknownKey(t *testing.T) {
	e := NewEngine(DefaultSchedule())

	_, err := e.CostBasket([]LineItem{
		{Category: CategoryEquipment, Subtype: SlotWeapon, Quality: QualityRare, Quantity: 1},
		{Category: CategorySpell, Quality: Quality("divine"), Quantity: 1},
	}, false)
	assert.ErrorIs(t, err, ErrUnknownQuality)
}

func TestProperty_SplittingLinesNeverChangesTotal(t *testing.T) {
	e := NewEngine(DefaultSchedule())

	rapid.Check(t, func(t *rapid.T) {
		quality := rapid.SampledFrom([]Quality{
			QualityRare, QualityHero, QualityLegend, QualityMythic,
		}).Draw(t, "quality")
		category := rapid.SampledFrom([]Category{CategorySkill, CategorySpell}).Draw(t, "category")
		total := rapid.IntRange(1, 30).Draw(t, "total")
		cut := rapid.IntRange(0, total).Draw(t, "cut")

		whole, err := e.CostBasket([]LineItem{
			{Category: category, Quality: quality, Quantity: total},
		}, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		split, err := e.CostBasket([]LineItem{
			{Category: category, Quality: quality, Quantity: cut},
			{Category: category, Quality: quality, Quantity: total - cut},
		}, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if whole.TotalCoins != split.TotalCoins {
			t.Fatalf("splitting %d as %d+%d changed the total: %d vs %d",
				total, cut, total-cut, whole.TotalCoins, split.TotalCoins)
		}
	})
}
