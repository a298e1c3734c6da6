package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"petcare/internal/auth"
	"petcare/internal/model"
	"petcare/internal/service"
)

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) pair(args mock.Arguments) (*auth.TokenPair, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.TokenPair), args.Error(1)
}

func (m *MockAccountService) user(args mock.Arguments) (*model.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAccountService) RequestSignup(ctx context.Context, in service.SignupInput) error {
	return m.Called(ctx, in).Error(0)
}

func (m *MockAccountService) VerifySignup(ctx context.Context, email, code string) (*auth.TokenPair, error) {
	return m.pair(m.Called(ctx, email, code))
}

func (m *MockAccountService) Login(ctx context.Context, email, password string) (*auth.TokenPair, error) {
	return m.pair(m.Called(ctx, email, password))
}

func (m *MockAccountService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAccountService) ForgotPassword(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *MockAccountService) ResetPassword(ctx context.Context, in service.ResetPasswordInput) error {
	return m.Called(ctx, in).Error(0)
}

func (m *MockAccountService) Me(ctx context.Context, userID string) (*model.User, error) {
	return m.user(m.Called(ctx, userID))
}

func (m *MockAccountService) UpdateProfile(ctx context.Context, userID string, patch service.ProfilePatch) (*model.User, error) {
	return m.user(m.Called(ctx, userID, patch))
}
