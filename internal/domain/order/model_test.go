package order

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/letybo/ordering/internal/domain/catalog"
	"github.com/letybo/ordering/internal/domain/selection"
	ierr "github.com/letybo/ordering/internal/errors"
	"github.com/letybo/ordering/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromQuote(t *testing.T) {
	c := catalog.Reference()
	s := selection.New("sel_1", c)
	require.NoError(t, s.SelectPlan(c, 36))
	require.NoError(t, s.SetInitialOrderQuantity(c, 12))

	ctx := types.SetUserEmail(types.SetUserID(context.Background(), "user_42"), "dr@example.com")
	o := FromQuote(ctx, s.Quote(c))

	assert.Equal(t, "user_42", o.UserID)
	assert.Equal(t, "dr@example.com", o.Email)
	assert.Equal(t, "36 Vials Plan", o.SelectedPackage)
	assert.Equal(t, types.OrderModeCommitment, o.Mode)
	assert.Equal(t, 12, o.Vials)
	assert.Equal(t, 36, o.PlanVials)
	assert.True(t, decimal.NewFromInt(3480).Equal(o.Total))
	assert.Equal(t, "user_42", o.CreatedBy)
	require.NoError(t, o.Validate())
}

func TestFromQuote_AnonymousUser(t *testing.T) {
	c := catalog.Reference()
	o := FromQuote(context.Background(), selection.New("sel_1", c).Quote(c))
	assert.Equal(t, types.DefaultUserID, o.UserID)
	assert.Empty(t, o.Email)
}

func TestAssignIdentity(t *testing.T) {
	o := &Order{}
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	o.AssignIdentity(now)

	assert.True(t, strings.HasPrefix(o.ID, types.UUID_PREFIX_ORDER+"_"))
	assert.True(t, strings.HasPrefix(o.OrderNumber, types.SHORT_ID_PREFIX_ORDER))
	assert.LessOrEqual(t, len(o.OrderNumber), 12)
	assert.Equal(t, now, o.CreatedAt)

	id := o.ID
	later := now.Add(time.Minute)
	o.AssignIdentity(later)
	assert.Equal(t, id, o.ID)
	assert.Equal(t, now, o.CreatedAt)
	assert.Equal(t, later, o.UpdatedAt)
}

func TestValidate(t *testing.T) {
	valid := func() *Order {
		return &Order{
			UserID:       "user_1",
			Mode:         types.OrderModeVolume,
			Vials:        12,
			PricePerVial: decimal.NewFromInt(350),
			Total:        decimal.NewFromInt(4200),
			Currency:     "usd",
		}
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(o *Order)
	}{
		{"missing user", func(o *Order) { o.UserID = "" }},
		{"zero vials", func(o *Order) { o.Vials = 0 }},
		{"free vials", func(o *Order) { o.PricePerVial = decimal.Zero }},
		{"total mismatch", func(o *Order) { o.Total = decimal.NewFromInt(4000) }},
		{"missing currency", func(o *Order) { o.Currency = "" }},
		{"bad mode", func(o *Order) { o.Mode = "BULK" }},
		{"commitment smaller than shipment", func(o *Order) { o.Mode = types.OrderModeCommitment; o.PlanVials = 6 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := valid()
			tt.mutate(o)
			err := o.Validate()
			require.Error(t, err)
			assert.True(t, ierr.IsValidation(err))
		})
	}
}
