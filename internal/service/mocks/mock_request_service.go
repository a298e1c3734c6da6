package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"petcare/internal/model"
	"petcare/internal/service"
)

type MockRequestService struct {
	mock.Mock
}

func (m *MockRequestService) list(args mock.Arguments) ([]service.RequestListItem, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.RequestListItem), args.Error(1)
}

func (m *MockRequestService) Create(ctx context.Context, senderID string, in service.RequestInput) (*service.CreatedRequest, error) {
	args := m.Called(ctx, senderID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CreatedRequest), args.Error(1)
}

func (m *MockRequestService) Inbox(ctx context.Context, userID string) ([]service.RequestListItem, error) {
	return m.list(m.Called(ctx, userID))
}

func (m *MockRequestService) Sent(ctx context.Context, userID string) ([]service.RequestListItem, error) {
	return m.list(m.Called(ctx, userID))
}

func (m *MockRequestService) Get(ctx context.Context, userID, id string) (*service.RequestDetail, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RequestDetail), args.Error(1)
}

func (m *MockRequestService) UpdateStatus(ctx context.Context, userID, id string, status model.RequestStatus, response string) (*service.StatusResult, error) {
	args := m.Called(ctx, userID, id, status, response)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StatusResult), args.Error(1)
}
