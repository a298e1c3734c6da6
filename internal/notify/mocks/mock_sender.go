package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"petcare/internal/notify"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, tokens []string, n notify.Notification) error {
	return m.Called(ctx, tokens, n).Error(0)
}
