package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"petcare/internal/model"
	"petcare/internal/notify"
	"petcare/internal/service"
)

type MockRewardService struct {
	mock.Mock
}

func (m *MockRewardService) Award(ctx context.Context, userID, systemName, reference, description string) (*service.AwardResult, error) {
	args := m.Called(ctx, userID, systemName, reference, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AwardResult), args.Error(1)
}

func (m *MockRewardService) Redeem(ctx context.Context, userID, systemName string) (*service.RedeemResult, error) {
	args := m.Called(ctx, userID, systemName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RedeemResult), args.Error(1)
}

func (m *MockRewardService) Balance(ctx context.Context, userID string) (*model.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Wallet), args.Error(1)
}

func (m *MockRewardService) Summary(ctx context.Context, userID string) (*service.RewardSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RewardSummary), args.Error(1)
}

func (m *MockRewardService) Coupons(ctx context.Context, userID string) ([]model.RewardCoupon, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RewardCoupon), args.Error(1)
}

func (m *MockRewardService) Activities(ctx context.Context) ([]model.Activity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Activity), args.Error(1)
}

func (m *MockRewardService) Logs(ctx context.Context, userID string) ([]model.PointsTransaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PointsTransaction), args.Error(1)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Register(ctx context.Context, userID, token, platform string) (*model.PushToken, error) {
	args := m.Called(ctx, userID, token, platform)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PushToken), args.Error(1)
}

func (m *MockNotificationService) Unregister(ctx context.Context, userID, token string) error {
	return m.Called(ctx, userID, token).Error(0)
}

func (m *MockNotificationService) NotifyUser(ctx context.Context, userID string, n notify.Notification) {
	m.Called(ctx, userID, n)
}
