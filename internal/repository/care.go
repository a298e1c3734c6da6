package repository

import (
	"context"

	"petcare/internal/model"
)

// AppointmentRepository scopes every read to the pets of ownerID.
type AppointmentRepository interface {
	Create(ctx context.Context, a *model.Appointment) (*model.Appointment, error)
	FindByID(ctx context.Context, id, ownerID string) (*model.Appointment, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Appointment, error)
	ListByPet(ctx context.Context, petID, ownerID string) ([]model.Appointment, error)
	Update(ctx context.Context, a *model.Appointment) error
	Delete(ctx context.Context, id, ownerID string) error
}

// VaccinationRepository scopes every read to the pets of ownerID.
type VaccinationRepository interface {
	Create(ctx context.Context, v *model.Vaccination) (*model.Vaccination, error)
	FindByID(ctx context.Context, id, ownerID string) (*model.Vaccination, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Vaccination, error)
	Update(ctx context.Context, v *model.Vaccination) error
	Delete(ctx context.Context, id, ownerID string) error
}

// MoodRepository stores daily mood entries.
type MoodRepository interface {
	Create(ctx context.Context, m *model.Mood) (*model.Mood, error)
	// History returns entries dated on or after since, oldest first.
	History(ctx context.Context, petID string, since model.Date) ([]model.Mood, error)
}

// AlertRepository stores reminder alerts.
type AlertRepository interface {
	Create(ctx context.Context, a *model.Alert) (*model.Alert, error)
	FindByID(ctx context.Context, id, ownerID string) (*model.Alert, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Alert, error)
	Update(ctx context.Context, a *model.Alert) error
	Delete(ctx context.Context, id, ownerID string) error
	// ListDue returns active alerts scheduled at clock (HH:MM).
	ListDue(ctx context.Context, clock string) ([]model.Alert, error)
}
