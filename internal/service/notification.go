package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"petcare/internal/model"
	"petcare/internal/notify"
	"petcare/internal/repository"
)

// NotificationService manages device registrations and delivers pushes to users.
type NotificationService interface {
	Register(ctx context.Context, userID, token, platform string) (*model.PushToken, error)
	Unregister(ctx context.Context, userID, token string) error
	// NotifyUser pushes to all devices of userID. Failures are logged only.
	NotifyUser(ctx context.Context, userID string, n notify.Notification)
}

type notificationService struct {
	tokens repository.PushTokenRepository
	sender notify.Sender
	log    *zap.Logger
}

func NewNotificationService(tokens repository.PushTokenRepository, sender notify.Sender, log *zap.Logger) NotificationService {
	return &notificationService{tokens: tokens, sender: sender, log: log}
}

func (s *notificationService) Register(ctx context.Context, userID, token, platform string) (*model.PushToken, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, validation("token is required")
	}
	return s.tokens.Upsert(ctx, &model.PushToken{
		UserID:   userID,
		Token:    token,
		Platform: strings.ToLower(strings.TrimSpace(platform)),
	})
}

func (s *notificationService) Unregister(ctx context.Context, userID, token string) error {
	if token == "" {
		return validation("token is required")
	}
	return notFound(s.tokens.Delete(ctx, userID, token), "token")
}

func (s *notificationService) NotifyUser(ctx context.Context, userID string, n notify.Notification) {
	tokens, err := s.tokens.TokensForUser(ctx, userID)
	if err != nil {
		s.log.Warn("load push tokens failed", zap.String("user_id", userID), zap.Error(err))
		return
	}
	if len(tokens) == 0 {
		return
	}
	if err := s.sender.Send(ctx, tokens, n); err != nil {
		s.log.Warn("push notification failed",
			zap.String("user_id", userID),
			zap.String("title", n.Title),
			zap.Error(err),
		)
	}
}
