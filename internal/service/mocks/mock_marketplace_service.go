package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"petcare/internal/model"
	"petcare/internal/service"
)

type MockMarketplaceService struct {
	mock.Mock
}

func (m *MockMarketplaceService) List(ctx context.Context, f model.PetFilter) ([]model.MarketplacePet, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MarketplacePet), args.Error(1)
}

func (m *MockMarketplaceService) Create(ctx context.Context, ownerID string, in service.PostInput) (*model.MarketplacePet, error) {
	args := m.Called(ctx, ownerID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MarketplacePet), args.Error(1)
}

func (m *MockMarketplaceService) Withdraw(ctx context.Context, ownerID, petID string) error {
	return m.Called(ctx, ownerID, petID).Error(0)
}
