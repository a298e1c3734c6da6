package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"petcare/internal/model"
)

type MockRewardRepository struct {
	mock.Mock
}

func (m *MockRewardRepository) ActivityBySystemName(ctx context.Context, systemName string) (*model.Activity, error) {
	args := m.Called(ctx, systemName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Activity), args.Error(1)
}

func (m *MockRewardRepository) ListActivities(ctx context.Context) ([]model.Activity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Activity), args.Error(1)
}

func (m *MockRewardRepository) HasTransaction(ctx context.Context, userID, activityID, reference string) (bool, error) {
	args := m.Called(ctx, userID, activityID, reference)
	return args.Bool(0), args.Error(1)
}

func (m *MockRewardRepository) EnsureWallet(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockRewardRepository) GetWallet(ctx context.Context, userID string) (*model.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Wallet), args.Error(1)
}

func (m *MockRewardRepository) LockWallet(ctx context.Context, userID string) (*model.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Wallet), args.Error(1)
}

func (m *MockRewardRepository) AddPoints(ctx context.Context, userID string, delta int) (int, error) {
	args := m.Called(ctx, userID, delta)
	return args.Int(0), args.Error(1)
}

func (m *MockRewardRepository) AppendTransaction(ctx context.Context, t *model.PointsTransaction) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockRewardRepository) ListTransactions(ctx context.Context, userID string) ([]model.PointsTransaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PointsTransaction), args.Error(1)
}

func (m *MockRewardRepository) CreateCoupon(ctx context.Context, c *model.RewardCoupon) (*model.RewardCoupon, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RewardCoupon), args.Error(1)
}

func (m *MockRewardRepository) ListCoupons(ctx context.Context, userID string) ([]model.RewardCoupon, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RewardCoupon), args.Error(1)
}

type MockPushTokenRepository struct {
	mock.Mock
}

func (m *MockPushTokenRepository) Upsert(ctx context.Context, t *model.PushToken) (*model.PushToken, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PushToken), args.Error(1)
}

func (m *MockPushTokenRepository) Delete(ctx context.Context, userID, token string) error {
	return m.Called(ctx, userID, token).Error(0)
}

func (m *MockPushTokenRepository) TokensForUser(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
