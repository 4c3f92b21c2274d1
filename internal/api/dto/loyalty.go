package dto

import "github.com/letybo/ordering/internal/domain/loyalty"

type LoyaltyResponse struct {
	loyalty.Progress
	Ladder []loyalty.TierName `json:"ladder"`
}
