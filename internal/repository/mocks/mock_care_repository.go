package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"petcare/internal/model"
)

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(ctx context.Context, a *model.Appointment) (*model.Appointment, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, id, ownerID string) (*model.Appointment, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Appointment, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) ListByPet(ctx context.Context, petID, ownerID string) ([]model.Appointment, error) {
	args := m.Called(ctx, petID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) Update(ctx context.Context, a *model.Appointment) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAppointmentRepository) Delete(ctx context.Context, id, ownerID string) error {
	return m.Called(ctx, id, ownerID).Error(0)
}

type MockVaccinationRepository struct {
	mock.Mock
}

func (m *MockVaccinationRepository) Create(ctx context.Context, v *model.Vaccination) (*model.Vaccination, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vaccination), args.Error(1)
}

func (m *MockVaccinationRepository) FindByID(ctx context.Context, id, ownerID string) (*model.Vaccination, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vaccination), args.Error(1)
}

func (m *MockVaccinationRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Vaccination, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vaccination), args.Error(1)
}

func (m *MockVaccinationRepository) Update(ctx context.Context, v *model.Vaccination) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVaccinationRepository) Delete(ctx context.Context, id, ownerID string) error {
	return m.Called(ctx, id, ownerID).Error(0)
}

type MockMoodRepository struct {
	mock.Mock
}

func (m *MockMoodRepository) Create(ctx context.Context, in *model.Mood) (*model.Mood, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Mood), args.Error(1)
}

func (m *MockMoodRepository) History(ctx context.Context, petID string, since model.Date) ([]model.Mood, error) {
	args := m.Called(ctx, petID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Mood), args.Error(1)
}

type MockAlertRepository struct {
	mock.Mock
}

func (m *MockAlertRepository) Create(ctx context.Context, a *model.Alert) (*model.Alert, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Alert), args.Error(1)
}

func (m *MockAlertRepository) FindByID(ctx context.Context, id, ownerID string) (*model.Alert, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Alert), args.Error(1)
}

func (m *MockAlertRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Alert, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Alert), args.Error(1)
}

func (m *MockAlertRepository) Update(ctx context.Context, a *model.Alert) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAlertRepository) Delete(ctx context.Context, id, ownerID string) error {
	return m.Called(ctx, id, ownerID).Error(0)
}

func (m *MockAlertRepository) ListDue(ctx context.Context, clock string) ([]model.Alert, error) {
	args := m.Called(ctx, clock)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Alert), args.Error(1)
}
