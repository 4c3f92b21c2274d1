package selection

import (
	"testing"

	"github.com/letybo/ordering/internal/domain/catalog"
	"github.com/letybo/ordering/internal/domain/pricing"
	ierr "github.com/letybo/ordering/internal/errors"
	"github.com/letybo/ordering/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c := catalog.Reference()
	s := New("sel_1", c)

	assert.Equal(t, types.OrderModeVolume, s.Mode)
	assert.Equal(t, 6, s.Quantity)
	assert.Nil(t, s.Plan)
	assert.Equal(t, 6, s.ChargedQuantity())
	require.NoError(t, s.Validate(c))
}

func TestSelectPlan_ResetsInitialOrderToMinimum(t *testing.T) {
	c := catalog.Reference()
	s := New("sel_1", c)

	require.NoError(t, s.SelectPlan(c, 102))
	require.NoError(t, s.SetInitialOrderQuantity(c, 48))
	assert.Equal(t, 48, s.InitialOrderQuantity)

	// a different plan, and the same plan again, both start over at the minimum
	require.NoError(t, s.SelectPlan(c, 36))
	assert.Equal(t, 6, s.InitialOrderQuantity)

	require.NoError(t, s.SetInitialOrderQuantity(c, 30))
	require.NoError(t, s.SelectPlan(c, 36))
	assert.Equal(t, 6, s.InitialOrderQuantity)

	assert.Equal(t, types.OrderModeCommitment, s.Mode)
	assert.Equal(t, 36, s.Quantity)
	assert.Equal(t, 6, s.ChargedQuantity())
}

func TestSelectPlan_PlanQuantityPolicy(t *testing.T) {
	c := loadCatalog(t, func(data *catalog.Catalog) {
		data.PlanResetPolicy = types.PlanResetPlanQuantity
	})
	s := New("sel_1", c)

	require.NoError(t, s.SelectPlan(c, 54))
	assert.Equal(t, 54, s.InitialOrderQuantity)

	require.NoError(t, s.SetInitialOrderQuantity(c, 12))
	require.NoError(t, s.SelectPlan(c, 102))
	assert.Equal(t, 102, s.InitialOrderQuantity)
}

func TestTierAndSliderClearPlan(t *testing.T) {
	c := catalog.Reference()

	s := New("sel_1", c)
	require.NoError(t, s.SelectPlan(c, 54))
	require.NoError(t, s.SelectTier(c, 24))
	assert.Equal(t, types.OrderModeVolume, s.Mode)
	assert.Equal(t, 24, s.Quantity)
	assert.Nil(t, s.Plan)
	assert.Zero(t, s.InitialOrderQuantity)

	require.NoError(t, s.SelectPlan(c, 54))
	require.NoError(t, s.SetQuantity(c, 66))
	assert.Equal(t, types.OrderModeCustom, s.Mode)
	assert.Equal(t, 66, s.Quantity)
	assert.False(t, s.HasPlan())
}

func TestMutations_RejectInvalidInput(t *testing.T) {
	c := catalog.Reference()

	tests := []struct {
		name   string
		setup  func(s *Selection)
		mutate func(s *Selection) error
	}{
		{
			name:   "quantity not a multiple of step",
			mutate: func(s *Selection) error { return s.SetQuantity(c, 7) },
		},
		{
			name:   "quantity below minimum",
			mutate: func(s *Selection) error { return s.SetQuantity(c, 0) },
		},
		{
			name:   "quantity above maximum",
			mutate: func(s *Selection) error { return s.SetQuantity(c, 108) },
		},
		{
			name:   "unknown tier",
			mutate: func(s *Selection) error { return s.SelectTier(c, 18) },
		},
		{
			name:   "unknown plan",
			mutate: func(s *Selection) error { return s.SelectPlan(c, 48) },
		},
		{
			name:   "initial order without plan",
			mutate: func(s *Selection) error { return s.SetInitialOrderQuantity(c, 6) },
		},
		{
			name:   "initial order above plan",
			setup:  func(s *Selection) { require.NoError(t, s.SelectPlan(c, 36)) },
			mutate: func(s *Selection) error { return s.SetInitialOrderQuantity(c, 42) },
		},
		{
			name:   "initial order off step",
			setup:  func(s *Selection) { require.NoError(t, s.SelectPlan(c, 36)) },
			mutate: func(s *Selection) error { return s.SetInitialOrderQuantity(c, 10) },
		},
		{
			name:   "initial order below minimum",
			setup:  func(s *Selection) { require.NoError(t, s.SelectPlan(c, 36)) },
			mutate: func(s *Selection) error { return s.SetInitialOrderQuantity(c, 0) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("sel_1", c)
			if tt.setup != nil {
				tt.setup(s)
			}
			before := *s.Clone()

			err := tt.mutate(s)
			require.Error(t, err)
			assert.True(t, ierr.IsInvalidSelection(err))

			assert.Equal(t, before.Mode, s.Mode)
			assert.Equal(t, before.Quantity, s.Quantity)
			assert.Equal(t, before.InitialOrderQuantity, s.InitialOrderQuantity)
			assert.Equal(t, before.Plan, s.Plan)
		})
	}
}

func TestValidate(t *testing.T) {
	c := catalog.Reference()
	plan, _ := c.FindPlan(36)
	tampered := plan
	tampered.PricePerUnit = decimal.NewFromInt(1)

	tests := []struct {
		name    string
		sel     Selection
		wantErr bool
	}{
		{name: "volume tier", sel: Selection{Mode: types.OrderModeVolume, Quantity: 12}},
		{name: "volume off tier", sel: Selection{Mode: types.OrderModeVolume, Quantity: 18}, wantErr: true},
		{name: "custom", sel: Selection{Mode: types.OrderModeCustom, Quantity: 18}},
		{name: "custom off step", sel: Selection{Mode: types.OrderModeCustom, Quantity: 19}, wantErr: true},
		{name: "commitment", sel: Selection{Mode: types.OrderModeCommitment, Quantity: 36, Plan: &plan, InitialOrderQuantity: 12}},
		{name: "commitment without plan", sel: Selection{Mode: types.OrderModeCommitment, Quantity: 36}, wantErr: true},
		{name: "commitment with tampered price", sel: Selection{Mode: types.OrderModeCommitment, Plan: &tampered, InitialOrderQuantity: 6}, wantErr: true},
		{name: "plan outside commitment", sel: Selection{Mode: types.OrderModeCustom, Quantity: 36, Plan: &plan}, wantErr: true},
		{name: "unknown mode", sel: Selection{Mode: "BULK", Quantity: 36}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sel.Validate(c)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, ierr.IsInvalidSelection(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestClone(t *testing.T) {
	c := catalog.Reference()
	s := New("sel_1", c)
	require.NoError(t, s.SelectPlan(c, 36))

	clone := s.Clone()
	clone.Plan.PlanQuantity = 999
	clone.InitialOrderQuantity = 30

	assert.Equal(t, 36, s.Plan.PlanQuantity)
	assert.Equal(t, 6, s.InitialOrderQuantity)
}

func loadCatalog(t *testing.T, mutate func(data *catalog.Catalog)) *catalog.Catalog {
	t.Helper()
	data := *catalog.Reference()
	data.Tiers = append([]pricing.Tier(nil), data.Tiers...)
	data.Plans = append([]pricing.CommitmentPlan(nil), data.Plans...)
	mutate(&data)
	c, err := catalog.New(data)
	require.NoError(t, err)
	return c
}
