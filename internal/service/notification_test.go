package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"petcare/internal/model"
	"petcare/internal/notify"
	notifyMocks "petcare/internal/notify/mocks"
	repoMocks "petcare/internal/repository/mocks"
)

func TestNotificationService_Register(t *testing.T) {
	ctx := context.Background()
	tokens := new(repoMocks.MockPushTokenRepository)
	tokens.On("Upsert", ctx, &model.PushToken{UserID: "u1", Token: "dev-1", Platform: "android"}).
		Return(&model.PushToken{ID: "t1", UserID: "u1", Token: "dev-1", Platform: "android"}, nil)
	svc := NewNotificationService(tokens, nil, zap.NewNop())

	got, err := svc.Register(ctx, "u1", " dev-1 ", "Android")
	require.NoError(t, err)
	assert.Equal(t, "t1", got.ID)

	_, err = svc.Register(ctx, "u1", "  ", "ios")
	assert.ErrorIs(t, err, ErrValidation)
	tokens.AssertExpectations(t)
}

func TestNotificationService_NotifyUser(t *testing.T) {
	ctx := context.Background()
	n := notify.Notification{Title: "Hi", Body: "there"}

	t.Run("sends to all devices", func(t *testing.T) {
		tokens := new(repoMocks.MockPushTokenRepository)
		sender := new(notifyMocks.MockSender)
		tokens.On("TokensForUser", ctx, "u1").Return([]string{"a", "b"}, nil)
		sender.On("Send", ctx, []string{"a", "b"}, n).Return(nil)

		NewNotificationService(tokens, sender, zap.NewNop()).NotifyUser(ctx, "u1", n)
		sender.AssertExpectations(t)
	})

	t.Run("no devices", func(t *testing.T) {
		tokens := new(repoMocks.MockPushTokenRepository)
		sender := new(notifyMocks.MockSender)
		tokens.On("TokensForUser", ctx, "u1").Return([]string{}, nil)

		NewNotificationService(tokens, sender, zap.NewNop()).NotifyUser(ctx, "u1", n)
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("send failure is logged", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		tokens := new(repoMocks.MockPushTokenRepository)
		sender := new(notifyMocks.MockSender)
		tokens.On("TokensForUser", ctx, "u1").Return([]string{"a"}, nil)
		sender.On("Send", ctx, []string{"a"}, n).Return(errors.New("pushy 500"))

		NewNotificationService(tokens, sender, zap.New(core)).NotifyUser(ctx, "u1", n)
		require.Equal(t, 1, logs.FilterMessage("push notification failed").Len())
	})
}
