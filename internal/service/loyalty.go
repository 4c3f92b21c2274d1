package service

import (
	"context"

	"github.com/letybo/ordering/internal/api/dto"
	"github.com/letybo/ordering/internal/types"
)

type LoyaltyService interface {
	// GetProgress places the calling user's shipped vials on the loyalty ladder
	GetProgress(ctx context.Context) (*dto.LoyaltyResponse, error)
}

type loyaltyService struct {
	ServiceParams
}

func NewLoyaltyService(params ServiceParams) LoyaltyService {
	return &loyaltyService{ServiceParams: params}
}

func (s *loyaltyService) GetProgress(ctx context.Context) (*dto.LoyaltyResponse, error) {
	userID := types.GetUserIDOrDefault(ctx)

	cumulative, err := s.OrderRepo.SumQuantityByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.LoyaltyResponse{
		Progress: s.Tracker.Update(cumulative),
		Ladder:   s.Tracker.Ladder(),
	}, nil
}
