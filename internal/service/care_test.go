package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"petcare/internal/model"
	repoMocks "petcare/internal/repository/mocks"
)

func TestAppointmentService_Create(t *testing.T) {
	ctx := context.Background()
	day, _ := model.ParseDate("2025-04-01")

	t.Run("own pet", func(t *testing.T) {
		repo := new(repoMocks.MockAppointmentRepository)
		pets := new(repoMocks.MockPetRepository)
		pets.On("FindOwned", ctx, "p1", "u1").Return(&model.Pet{ID: "p1"}, nil)
		repo.On("Create", ctx, mock.MatchedBy(func(a *model.Appointment) bool {
			return a.Time == "09:30" && a.Service == "Grooming"
		})).Return(&model.Appointment{ID: "a1"}, nil)
		repo.On("FindByID", ctx, "a1", "u1").Return(&model.Appointment{ID: "a1", PetDetails: &model.PetBrief{PetName: "Milo"}}, nil)

		got, err := NewAppointmentService(repo, pets).Create(ctx, "u1", AppointmentInput{
			PetID: "p1", Service: "Grooming", Date: day, Time: "09:30:00",
		})
		require.NoError(t, err)
		assert.Equal(t, "Milo", got.PetDetails.PetName)
		repo.AssertExpectations(t)
	})

	t.Run("foreign pet is forbidden", func(t *testing.T) {
		repo := new(repoMocks.MockAppointmentRepository)
		pets := new(repoMocks.MockPetRepository)
		pets.On("FindOwned", ctx, "p2", "u1").Return(nil, sql.ErrNoRows)

		_, err := NewAppointmentService(repo, pets).Create(ctx, "u1", AppointmentInput{
			PetID: "p2", Service: "Vet", Date: day, Time: "10:00",
		})
		assert.ErrorIs(t, err, ErrForbidden)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("bad time", func(t *testing.T) {
		_, err := NewAppointmentService(nil, nil).Create(ctx, "u1", AppointmentInput{
			PetID: "p1", Service: "Vet", Date: day, Time: "noon",
		})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestAppointmentService_UpdateMovesToForeignPet(t *testing.T) {
	ctx := context.Background()
	day, _ := model.ParseDate("2025-04-01")
	repo := new(repoMocks.MockAppointmentRepository)
	pets := new(repoMocks.MockPetRepository)
	repo.On("FindByID", ctx, "a1", "u1").Return(&model.Appointment{ID: "a1", PetID: "p1", Service: "Vet", Date: day, Time: "10:00"}, nil)
	pets.On("FindOwned", ctx, "p2", "u1").Return(nil, sql.ErrNoRows)
	foreign := "p2"

	_, err := NewAppointmentService(repo, pets).Update(ctx, "u1", "a1", AppointmentPatch{PetID: &foreign})
	assert.ErrorIs(t, err, ErrForbidden)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestVaccinationService(t *testing.T) {
	ctx := context.Background()
	day, _ := model.ParseDate("2024-11-20")
	repo := new(repoMocks.MockVaccinationRepository)
	pets := new(repoMocks.MockPetRepository)
	pets.On("FindOwned", ctx, "p1", "u1").Return(&model.Pet{ID: "p1"}, nil)
	repo.On("Create", ctx, mock.Anything).Return(&model.Vaccination{ID: "v1"}, nil)
	repo.On("FindByID", ctx, "v1", "u1").Return(&model.Vaccination{ID: "v1", PetName: "Milo", VaccName: "Rabies", VaccDate: day}, nil)
	repo.On("Delete", ctx, "v9", "u1").Return(sql.ErrNoRows)
	svc := NewVaccinationService(repo, pets)

	got, err := svc.Create(ctx, "u1", VaccinationInput{PetID: "p1", VaccName: "Rabies", VaccDate: day})
	require.NoError(t, err)
	assert.Equal(t, "Milo", got.PetName)

	_, err = svc.Create(ctx, "u1", VaccinationInput{PetID: "p1", VaccDate: day})
	assert.ErrorIs(t, err, ErrValidation)

	assert.ErrorIs(t, svc.Delete(ctx, "u1", "v9"), ErrNotFound)
}

func TestMoodService(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockMoodRepository)
	pets := new(repoMocks.MockPetRepository)
	svc := NewMoodService(repo, pets).(*moodService)
	svc.now = func() time.Time { return fixedNow }

	t.Run("record resolves pet by name and defaults date", func(t *testing.T) {
		pets.On("FindOwnedByName", ctx, "u1", "Milo").Return(&model.Pet{ID: "p1", PetName: "Milo"}, nil).Once()
		repo.On("Create", ctx, mock.MatchedBy(func(m *model.Mood) bool {
			return m.PetID == "p1" && m.Mood == 4 && m.Date.String() == "2025-03-10"
		})).Return(&model.Mood{ID: "m1", PetID: "p1", Mood: 4}, nil).Once()

		got, err := svc.Record(ctx, "u1", MoodInput{PetName: "Milo", Mood: 4})
		require.NoError(t, err)
		assert.Equal(t, "Milo", got.PetName)
	})

	t.Run("unknown pet name", func(t *testing.T) {
		pets.On("FindOwnedByName", ctx, "u1", "Ghost").Return(nil, sql.ErrNoRows).Once()
		_, err := svc.Record(ctx, "u1", MoodInput{PetName: "Ghost", Mood: 3})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("mood out of range", func(t *testing.T) {
		_, err := svc.Record(ctx, "u1", MoodInput{PetName: "Milo", Mood: 6})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("history covers last seven days", func(t *testing.T) {
		since, _ := model.ParseDate("2025-03-03")
		pets.On("FindOwned", ctx, "p1", "u1").Return(&model.Pet{ID: "p1"}, nil).Once()
		repo.On("History", ctx, "p1", since).Return([]model.Mood{{ID: "m1"}}, nil).Once()

		got, err := svc.History(ctx, "u1", "p1")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestAlertService(t *testing.T) {
	ctx := context.Background()

	t.Run("create defaults to active and normalizes time", func(t *testing.T) {
		repo := new(repoMocks.MockAlertRepository)
		repo.On("Create", ctx, &model.Alert{OwnerID: "u1", Name: "Feed", Time: "07:05", IsActive: true}).
			Return(&model.Alert{ID: "al1", Name: "Feed", Time: "07:05", IsActive: true}, nil)

		got, err := NewAlertService(repo).Create(ctx, "u1", AlertInput{Name: "Feed", Time: "07:05:00"})
		require.NoError(t, err)
		assert.True(t, got.IsActive)
		repo.AssertExpectations(t)
	})

	t.Run("patch toggles active", func(t *testing.T) {
		repo := new(repoMocks.MockAlertRepository)
		off := false
		repo.On("FindByID", ctx, "al1", "u1").Return(&model.Alert{ID: "al1", OwnerID: "u1", Name: "Feed", Time: "07:05", IsActive: true}, nil)
		repo.On("Update", ctx, mock.MatchedBy(func(a *model.Alert) bool { return !a.IsActive })).Return(nil)

		got, err := NewAlertService(repo).Update(ctx, "u1", "al1", AlertPatch{IsActive: &off})
		require.NoError(t, err)
		assert.False(t, got.IsActive)
	})

	t.Run("other owner", func(t *testing.T) {
		repo := new(repoMocks.MockAlertRepository)
		repo.On("FindByID", ctx, "al1", "u2").Return(nil, sql.ErrNoRows)
		_, err := NewAlertService(repo).Get(ctx, "u2", "al1")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
