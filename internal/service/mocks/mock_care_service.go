package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"petcare/internal/model"
	"petcare/internal/service"
)

type MockAppointmentService struct {
	mock.Mock
}

func (m *MockAppointmentService) one(args mock.Arguments) (*model.Appointment, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Appointment), args.Error(1)
}

func (m *MockAppointmentService) many(args mock.Arguments) ([]model.Appointment, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Appointment), args.Error(1)
}

func (m *MockAppointmentService) List(ctx context.Context, ownerID string) ([]model.Appointment, error) {
	return m.many(m.Called(ctx, ownerID))
}

func (m *MockAppointmentService) ListByPet(ctx context.Context, ownerID, petID string) ([]model.Appointment, error) {
	return m.many(m.Called(ctx, ownerID, petID))
}

func (m *MockAppointmentService) Create(ctx context.Context, ownerID string, in service.AppointmentInput) (*model.Appointment, error) {
	return m.one(m.Called(ctx, ownerID, in))
}

func (m *MockAppointmentService) Get(ctx context.Context, ownerID, id string) (*model.Appointment, error) {
	return m.one(m.Called(ctx, ownerID, id))
}

func (m *MockAppointmentService) Update(ctx context.Context, ownerID, id string, patch service.AppointmentPatch) (*model.Appointment, error) {
	return m.one(m.Called(ctx, ownerID, id, patch))
}

func (m *MockAppointmentService) Delete(ctx context.Context, ownerID, id string) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

type MockVaccinationService struct {
	mock.Mock
}

func (m *MockVaccinationService) one(args mock.Arguments) (*model.Vaccination, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vaccination), args.Error(1)
}

func (m *MockVaccinationService) List(ctx context.Context, ownerID string) ([]model.Vaccination, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vaccination), args.Error(1)
}

func (m *MockVaccinationService) Create(ctx context.Context, ownerID string, in service.VaccinationInput) (*model.Vaccination, error) {
	return m.one(m.Called(ctx, ownerID, in))
}

func (m *MockVaccinationService) Get(ctx context.Context, ownerID, id string) (*model.Vaccination, error) {
	return m.one(m.Called(ctx, ownerID, id))
}

func (m *MockVaccinationService) Update(ctx context.Context, ownerID, id string, patch service.VaccinationPatch) (*model.Vaccination, error) {
	return m.one(m.Called(ctx, ownerID, id, patch))
}

func (m *MockVaccinationService) Delete(ctx context.Context, ownerID, id string) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

type MockMoodService struct {
	mock.Mock
}

func (m *MockMoodService) Record(ctx context.Context, ownerID string, in service.MoodInput) (*model.Mood, error) {
	args := m.Called(ctx, ownerID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Mood), args.Error(1)
}

func (m *MockMoodService) History(ctx context.Context, ownerID, petID string) ([]model.Mood, error) {
	args := m.Called(ctx, ownerID, petID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Mood), args.Error(1)
}

type MockAlertService struct {
	mock.Mock
}

func (m *MockAlertService) one(args mock.Arguments) (*model.Alert, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Alert), args.Error(1)
}

func (m *MockAlertService) List(ctx context.Context, ownerID string) ([]model.Alert, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Alert), args.Error(1)
}

func (m *MockAlertService) Create(ctx context.Context, ownerID string, in service.AlertInput) (*model.Alert, error) {
	return m.one(m.Called(ctx, ownerID, in))
}

func (m *MockAlertService) Get(ctx context.Context, ownerID, id string) (*model.Alert, error) {
	return m.one(m.Called(ctx, ownerID, id))
}

func (m *MockAlertService) Update(ctx context.Context, ownerID, id string, patch service.AlertPatch) (*model.Alert, error) {
	return m.one(m.Called(ctx, ownerID, id, patch))
}

func (m *MockAlertService) Delete(ctx context.Context, ownerID, id string) error {
	return m.Called(ctx, ownerID, id).Error(0)
}
