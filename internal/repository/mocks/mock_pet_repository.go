package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"petcare/internal/model"
)

type MockPetRepository struct {
	mock.Mock
}

func (m *MockPetRepository) pet(args mock.Arguments) (*model.Pet, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pet), args.Error(1)
}

func (m *MockPetRepository) Create(ctx context.Context, p *model.Pet) (*model.Pet, error) {
	return m.pet(m.Called(ctx, p))
}

func (m *MockPetRepository) FindByID(ctx context.Context, id string) (*model.Pet, error) {
	return m.pet(m.Called(ctx, id))
}

func (m *MockPetRepository) FindOwned(ctx context.Context, id, ownerID string) (*model.Pet, error) {
	return m.pet(m.Called(ctx, id, ownerID))
}

func (m *MockPetRepository) FindOwnedByName(ctx context.Context, ownerID, name string) (*model.Pet, error) {
	return m.pet(m.Called(ctx, ownerID, name))
}

func (m *MockPetRepository) FindProfileByQRToken(ctx context.Context, token string) (*model.PetProfile, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PetProfile), args.Error(1)
}

func (m *MockPetRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Pet, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Pet), args.Error(1)
}

func (m *MockPetRepository) Update(ctx context.Context, p *model.Pet) (*model.Pet, error) {
	return m.pet(m.Called(ctx, p))
}

func (m *MockPetRepository) TransferOwnership(ctx context.Context, petID, newOwnerID string) error {
	return m.Called(ctx, petID, newOwnerID).Error(0)
}

func (m *MockPetRepository) Delete(ctx context.Context, id, ownerID string) error {
	return m.Called(ctx, id, ownerID).Error(0)
}

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, petID, ownerMessage string) (*model.Post, error) {
	args := m.Called(ctx, petID, ownerMessage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepository) ExistsForPet(ctx context.Context, petID string) (bool, error) {
	args := m.Called(ctx, petID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) DeleteByPet(ctx context.Context, petID string) error {
	return m.Called(ctx, petID).Error(0)
}

func (m *MockPostRepository) List(ctx context.Context, f model.PetFilter) ([]model.MarketplacePet, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MarketplacePet), args.Error(1)
}

func (m *MockPostRepository) GetByPet(ctx context.Context, petID string) (*model.MarketplacePet, error) {
	args := m.Called(ctx, petID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MarketplacePet), args.Error(1)
}

type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) Create(ctx context.Context, r *model.InteractionRequest) (*model.InteractionRequest, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InteractionRequest), args.Error(1)
}

func (m *MockRequestRepository) FindByID(ctx context.Context, id string) (*model.RequestView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RequestView), args.Error(1)
}

func (m *MockRequestRepository) HasPending(ctx context.Context, senderID, petID string) (bool, error) {
	args := m.Called(ctx, senderID, petID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRequestRepository) ListInbox(ctx context.Context, receiverID string) ([]model.RequestView, error) {
	args := m.Called(ctx, receiverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RequestView), args.Error(1)
}

func (m *MockRequestRepository) ListSent(ctx context.Context, senderID string) ([]model.RequestView, error) {
	args := m.Called(ctx, senderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RequestView), args.Error(1)
}

func (m *MockRequestRepository) UpdateStatus(ctx context.Context, id string, status model.RequestStatus, response string) error {
	return m.Called(ctx, id, status, response).Error(0)
}

func (m *MockRequestRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRequestRepository) DeleteByPet(ctx context.Context, petID string) error {
	return m.Called(ctx, petID).Error(0)
}
