package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"petcare/internal/auth"
	"petcare/internal/notify"
)

// passthroughTx runs fn directly, standing in for a database transaction.
type passthroughTx struct{}

func (passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockRewards struct {
	RewardService
	mock.Mock
}

func (m *mockRewards) Award(ctx context.Context, userID, systemName, reference, description string) (*AwardResult, error) {
	args := m.Called(ctx, userID, systemName, reference, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*AwardResult), args.Error(1)
}

type mockNotifier struct {
	NotificationService
	mock.Mock
}

func (m *mockNotifier) NotifyUser(ctx context.Context, userID string, n notify.Notification) {
	m.Called(ctx, userID, n)
}

type mockTokens struct {
	mock.Mock
}

func (m *mockTokens) IssuePair(userID string) (*auth.TokenPair, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.TokenPair), args.Error(1)
}

func (m *mockTokens) Refresh(refreshToken string) (string, error) {
	args := m.Called(refreshToken)
	return args.String(0), args.Error(1)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(ctx context.Context, to, subject, body string) error {
	return m.Called(ctx, to, subject, body).Error(0)
}

type mockThrottle struct {
	mock.Mock
}

func (m *mockThrottle) Allow(ctx context.Context, key string, window time.Duration) (bool, error) {
	args := m.Called(ctx, key, window)
	return args.Bool(0), args.Error(1)
}
