package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"petcare/internal/model"
	"petcare/internal/service"
)

type MockPetService struct {
	mock.Mock
}

func (m *MockPetService) detail(args mock.Arguments) (*service.PetDetail, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PetDetail), args.Error(1)
}

func (m *MockPetService) png(args mock.Arguments) ([]byte, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockPetService) List(ctx context.Context, ownerID string) ([]service.PetDetail, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.PetDetail), args.Error(1)
}

func (m *MockPetService) Create(ctx context.Context, ownerID string, in service.PetInput) (*service.PetDetail, error) {
	return m.detail(m.Called(ctx, ownerID, in))
}

func (m *MockPetService) Get(ctx context.Context, ownerID, id string) (*service.PetDetail, error) {
	return m.detail(m.Called(ctx, ownerID, id))
}

func (m *MockPetService) Update(ctx context.Context, ownerID, id string, patch service.PetPatch) (*service.PetDetail, error) {
	return m.detail(m.Called(ctx, ownerID, id, patch))
}

func (m *MockPetService) Delete(ctx context.Context, ownerID, id string) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

func (m *MockPetService) QRList(ctx context.Context, ownerID string) ([]service.PetQR, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.PetQR), args.Error(1)
}

func (m *MockPetService) QRCode(ctx context.Context, ownerID, id string) ([]byte, error) {
	return m.png(m.Called(ctx, ownerID, id))
}

func (m *MockPetService) PublicProfile(ctx context.Context, token string) (*model.PetProfile, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PetProfile), args.Error(1)
}

func (m *MockPetService) PublicQRCode(ctx context.Context, token string) ([]byte, error) {
	return m.png(m.Called(ctx, token))
}
