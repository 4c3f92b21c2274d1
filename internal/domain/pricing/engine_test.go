package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var listPrice = decimal.NewFromInt(400)

func referenceTiers() []Tier {
	return []Tier{
		{MinQuantity: 6, PricePerUnit: decimal.NewFromInt(375), DiscountPercent: 6},
		{MinQuantity: 12, PricePerUnit: decimal.NewFromInt(350), DiscountPercent: 13},
		{MinQuantity: 24, PricePerUnit: decimal.NewFromInt(325), DiscountPercent: 19},
		{MinQuantity: 36, PricePerUnit: decimal.NewFromInt(290), DiscountPercent: 28},
		{MinQuantity: 54, PricePerUnit: decimal.NewFromInt(275), DiscountPercent: 31},
		{MinQuantity: 102, PricePerUnit: decimal.NewFromInt(250), DiscountPercent: 38},
	}
}

func TestResolveTierPrice(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		expected int64
	}{
		{name: "lowest boundary", quantity: 6, expected: 375},
		{name: "just below second tier", quantity: 11, expected: 375},
		{name: "second tier boundary is inclusive", quantity: 12, expected: 350},
		{name: "between tiers", quantity: 30, expected: 325},
		{name: "mid table boundary", quantity: 54, expected: 275},
		{name: "top tier boundary", quantity: 102, expected: 250},
		{name: "above top tier saturates", quantity: 500, expected: 250},
		{name: "below every threshold falls back to lowest tier", quantity: 1, expected: 375},
		{name: "zero falls back to lowest tier", quantity: 0, expected: 375},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveTierPrice(tt.quantity, referenceTiers())
			assert.True(t, decimal.NewFromInt(tt.expected).Equal(got), "expected %d, got %s", tt.expected, got)
		})
	}
}

func TestResolveTierPrice_EmptyTable(t *testing.T) {
	assert.True(t, ResolveTierPrice(12, nil).IsZero())

	_, ok := ResolveTier(12, nil)
	assert.False(t, ok)
}

func TestResolveTierPrice_MatchesGreatestThresholdNotAbove(t *testing.T) {
	tiers := referenceTiers()
	for q := tiers[0].MinQuantity; q <= 200; q++ {
		var want Tier
		for _, tier := range tiers {
			if tier.MinQuantity <= q {
				want = tier
			}
		}
		got, ok := ResolveTier(q, tiers)
		require.True(t, ok)
		assert.Equal(t, want.MinQuantity, got.MinQuantity, "quantity %d", q)
	}
}

func TestResolveTierPrice_Monotonic(t *testing.T) {
	tiers := referenceTiers()
	prev := ResolveTierPrice(1, tiers)
	for q := 2; q <= 300; q++ {
		cur := ResolveTierPrice(q, tiers)
		assert.True(t, cur.LessThanOrEqual(prev), "price rose from %s to %s at quantity %d", prev, cur, q)
		prev = cur
	}
}

func TestResolveCommitmentPrice(t *testing.T) {
	plan := CommitmentPlan{PlanQuantity: 54, PricePerUnit: decimal.NewFromInt(275)}
	assert.True(t, decimal.NewFromInt(275).Equal(ResolveCommitmentPrice(plan)))
}

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		price    string
		expected string
	}{
		{name: "whole price", quantity: 36, price: "290", expected: "10440"},
		{name: "fractional price", quantity: 33, price: "287.5", expected: "9487.5"},
		{name: "cents", quantity: 7, price: "0.15", expected: "1.05"},
		{name: "zero quantity", quantity: 0, price: "375", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotal(tt.quantity, decimal.RequireFromString(tt.price))
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(got), "got %s", got)
		})
	}
}

func TestComputeTotal_IsExact(t *testing.T) {
	price := decimal.RequireFromString("0.1")
	total := decimal.Zero
	for i := 0; i < 1000; i++ {
		total = total.Add(price)
	}
	assert.True(t, total.Equal(ComputeTotal(1000, price)))
}

func TestComputeSavings(t *testing.T) {
	t.Run("36 vial plan matches catalog savings", func(t *testing.T) {
		got := ComputeSavings(36, decimal.NewFromInt(290), listPrice)
		assert.True(t, decimal.NewFromInt(3960).Equal(got))
	})

	t.Run("price above list is negative", func(t *testing.T) {
		got := ComputeSavings(6, decimal.NewFromInt(410), listPrice)
		assert.True(t, decimal.NewFromInt(-60).Equal(got))
	})

	t.Run("list price saves nothing", func(t *testing.T) {
		assert.True(t, ComputeSavings(12, listPrice, listPrice).IsZero())
	})
}

func TestComputeDiscountPercent(t *testing.T) {
	tests := []struct {
		price    int64
		expected int
	}{
		{price: 375, expected: 6},
		{price: 350, expected: 13},
		{price: 325, expected: 19},
		{price: 290, expected: 28},
		{price: 275, expected: 31},
		{price: 250, expected: 38},
		{price: 400, expected: 0},
		{price: 0, expected: 100},
	}

	for _, tt := range tests {
		got := ComputeDiscountPercent(decimal.NewFromInt(tt.price), listPrice)
		assert.Equal(t, tt.expected, got, "price %d", tt.price)
	}

	assert.Equal(t, 0, ComputeDiscountPercent(decimal.NewFromInt(10), decimal.Zero))
}

func TestComputeDiscountPercent_ReferenceTableIsConsistent(t *testing.T) {
	for _, tier := range referenceTiers() {
		assert.Equal(t, tier.DiscountPercent, ComputeDiscountPercent(tier.PricePerUnit, listPrice),
			"tier %d", tier.MinQuantity)
	}
}

func TestDiscountPercentAgreesWithSavings(t *testing.T) {
	for _, tier := range referenceTiers() {
		for _, q := range []int{6, 12, 36, 102} {
			savings := ComputeSavings(q, tier.PricePerUnit, listPrice)
			ratio := savings.Div(listPrice.Mul(decimal.NewFromInt(int64(q)))).Mul(hundred)
			assert.Equal(t, ComputeDiscountPercent(tier.PricePerUnit, listPrice), int(roundHalfUp(ratio, 0).IntPart()))
		}
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in       string
		places   int32
		expected string
	}{
		{"37.5", 0, "38"},
		{"12.5", 0, "13"},
		{"12.49", 0, "12"},
		{"-2.5", 0, "-2"},
		{"-2.51", 0, "-3"},
		{"287.505", 2, "287.51"},
		{"287.5", 2, "287.5"},
	}
	for _, tt := range tests {
		got := roundHalfUp(decimal.RequireFromString(tt.in), tt.places)
		assert.True(t, decimal.RequireFromString(tt.expected).Equal(got), "%s -> %s", tt.in, got)
	}
}
