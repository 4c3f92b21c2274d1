package dto

import (
	"github.com/letybo/ordering/internal/domain/order"
	"github.com/letybo/ordering/internal/types"
)

type OrderResponse struct {
	*order.Order
	// TotalDisplay is Total formatted for the order table, e.g. $10,440
	TotalDisplay string `json:"total_display"`
}

func NewOrderResponse(o *order.Order) *OrderResponse {
	return &OrderResponse{
		Order:        o,
		TotalDisplay: types.FormatAmount(o.Total, o.Currency),
	}
}

type ListOrdersResponse = types.ListResponse[*OrderResponse]
