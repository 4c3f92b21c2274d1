package dto

import (
	"testing"

	"github.com/letybo/ordering/internal/domain/catalog"
	ierr "github.com/letybo/ordering/internal/errors"
	"github.com/letybo/ordering/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     QuoteRequest
		wantErr bool
	}{
		{"volume", QuoteRequest{Mode: types.OrderModeVolume, Quantity: 36}, false},
		{"commitment", QuoteRequest{Mode: types.OrderModeCommitment, PlanQuantity: 54}, false},
		{"missing mode", QuoteRequest{Quantity: 36}, true},
		{"unknown mode", QuoteRequest{Mode: "BULK", Quantity: 36}, true},
		{"volume without quantity", QuoteRequest{Mode: types.OrderModeVolume}, true},
		{"commitment without plan", QuoteRequest{Mode: types.OrderModeCommitment, InitialOrderQuantity: 6}, true},
		{"negative quantity", QuoteRequest{Mode: types.OrderModeCustom, Quantity: -6}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, ierr.IsValidation(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestQuoteRequestToSelection(t *testing.T) {
	c := catalog.Reference()

	req := QuoteRequest{Mode: types.OrderModeCommitment, PlanQuantity: 54, InitialOrderQuantity: 18}
	s, err := req.ToSelection(c)
	require.NoError(t, err)

	q := s.Quote(c)
	assert.Equal(t, 18, q.Quantity)
	assert.True(t, q.PricePerUnit.Equal(decimal.NewFromInt(275)))
	assert.Equal(t, 36, q.RemainingQuantity)

	bad := QuoteRequest{Mode: types.OrderModeCustom, Quantity: 7}
	_, err = bad.ToSelection(c)
	require.Error(t, err)
	assert.True(t, ierr.IsInvalidSelection(err))
}

func TestNewCatalogResponse(t *testing.T) {
	resp := NewCatalogResponse(catalog.Reference())
	assert.Equal(t, 6, resp.DefaultQuantity)
	assert.Equal(t, 6, resp.SelectableQuantities[0])
	assert.Equal(t, 102, resp.SelectableQuantities[len(resp.SelectableQuantities)-1])
}
