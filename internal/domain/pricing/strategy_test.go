package pricing

import (
	"testing"

	ierr "github.com/letybo/ordering/internal/errors"
	"github.com/letybo/ordering/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Both strategies run through the same checks: boundaries, monotonicity, and
// exact totals
func TestStrategies(t *testing.T) {
	curve := referenceCurve()

	tests := []struct {
		name       string
		strategy   types.PricingStrategy
		minimum    int
		maximum    int
		boundaries map[int]string
	}{
		{
			name:     "tiered",
			strategy: types.PricingStrategyTiered,
			minimum:  6,
			maximum:  102,
			boundaries: map[int]string{
				6:   "375",
				11:  "375",
				12:  "350",
				102: "250",
			},
		},
		{
			name:     "linear",
			strategy: types.PricingStrategyLinear,
			minimum:  6,
			maximum:  60,
			boundaries: map[int]string{
				6:  "350",
				33: "287.5",
				60: "225",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStrategy(tt.strategy, referenceTiers(), &curve)
			require.NoError(t, err)
			assert.Equal(t, tt.strategy, s.Name())

			for q, want := range tt.boundaries {
				got := s.UnitPrice(q)
				assert.True(t, decimal.RequireFromString(want).Equal(got), "quantity %d: expected %s, got %s", q, want, got)
			}

			prev := s.UnitPrice(tt.minimum)
			for q := tt.minimum + 1; q <= tt.maximum; q++ {
				cur := s.UnitPrice(q)
				assert.True(t, cur.LessThanOrEqual(prev), "quantity %d", q)
				assert.True(t, ComputeTotal(q, cur).Equal(cur.Mul(decimal.NewFromInt(int64(q)))))
				prev = cur
			}
		})
	}
}

func TestNewStrategy_Misconfigured(t *testing.T) {
	_, err := NewStrategy(types.PricingStrategyTiered, nil, nil)
	assert.True(t, ierr.IsDataIntegrity(err))

	_, err = NewStrategy(types.PricingStrategyLinear, referenceTiers(), nil)
	assert.True(t, ierr.IsDataIntegrity(err))

	_, err = NewStrategy("STEPPED", referenceTiers(), nil)
	assert.True(t, ierr.IsValidation(err))
}
