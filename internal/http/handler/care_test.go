package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"petcare/internal/model"
	"petcare/internal/service"
	serviceMocks "petcare/internal/service/mocks"
)

func TestCreateAppointment(t *testing.T) {
	mockSvc := new(serviceMocks.MockAppointmentService)
	app := newTestApp()
	app.Post("/appointments", CreateAppointment(mockSvc))
	petID := uuid.New().String()
	date, _ := model.ParseDate("2025-04-01")

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, testUserID, service.AppointmentInput{
			PetID:   petID,
			Service: "Checkup",
			Date:    date,
			Time:    "10:30",
		}).Return(&model.Appointment{ID: "a1", PetID: petID}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/appointments", map[string]string{
			"pet_id":  petID,
			"service": "Checkup",
			"date":    "2025-04-01",
			"time":    "10:30",
		}))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("foreign pet", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, testUserID, mock.Anything).Return(nil, service.ErrForbidden).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/appointments", map[string]string{
			"pet_id":  petID,
			"service": "Checkup",
			"time":    "10:30",
		}))

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

func TestPatchAppointment(t *testing.T) {
	mockSvc := new(serviceMocks.MockAppointmentService)
	app := newTestApp()
	app.Patch("/appointments/:id", PatchAppointment(mockSvc))
	id := uuid.New().String()

	mockSvc.On("Update", mock.Anything, testUserID, id, mock.MatchedBy(func(p service.AppointmentPatch) bool {
		return p.Provider != nil && *p.Provider == "Dr. Omar" && p.PetID == nil && p.Date == nil
	})).Return(&model.Appointment{ID: id, Provider: "Dr. Omar"}, nil).Once()

	resp, _ := app.Test(jsonRequest(http.MethodPatch, "/appointments/"+id, map[string]string{"provider": "Dr. Omar"}))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestPetAppointments(t *testing.T) {
	mockSvc := new(serviceMocks.MockAppointmentService)
	app := newTestApp()
	app.Get("/pets/:id/appointments", PetAppointments(mockSvc))
	petID := uuid.New().String()

	mockSvc.On("ListByPet", mock.Anything, testUserID, petID).Return([]model.Appointment{{ID: "a1"}, {ID: "a2"}}, nil).Once()

	resp, _ := app.Test(jsonRequest(http.MethodGet, "/pets/"+petID+"/appointments", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var list []model.Appointment
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Len(t, list, 2)
}

func TestVaccinationHandlers(t *testing.T) {
	mockSvc := new(serviceMocks.MockVaccinationService)
	app := newTestApp()
	app.Post("/vaccinations", CreateVaccination(mockSvc))
	app.Delete("/vaccinations/:id", DeleteVaccination(mockSvc))
	petID := uuid.New().String()

	t.Run("create", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, testUserID, mock.MatchedBy(func(in service.VaccinationInput) bool {
			return in.PetID == petID && in.VaccName == "Rabies" && in.VaccDate.String() == "2025-01-15"
		})).Return(&model.Vaccination{ID: "v1", PetID: petID, VaccName: "Rabies"}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/vaccinations", map[string]string{
			"pet_id":    petID,
			"vacc_name": "Rabies",
			"vacc_date": "2025-01-15",
		}))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("vacc_name required", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/vaccinations", map[string]string{"pet_id": petID}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("delete missing", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, testUserID, id).Return(service.ErrNotFound).Once()

		resp, _ := app.Test(jsonRequest(http.MethodDelete, "/vaccinations/"+id, nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	mockSvc.AssertExpectations(t)
}

func TestRecordMood(t *testing.T) {
	mockSvc := new(serviceMocks.MockMoodService)
	app := newTestApp()
	app.Post("/moods", RecordMood(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Record", mock.Anything, testUserID, service.MoodInput{
			PetName: "Luna",
			Mood:    4,
			Notes:   "playful",
		}).Return(&model.Mood{ID: "m1", PetName: "Luna", Mood: 4}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/moods", map[string]any{
			"pet_name": "Luna",
			"mood":     4,
			"notes":    "playful",
		}))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("out of range", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/moods", map[string]any{
			"pet_name": "Luna",
			"mood":     9,
		}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "validation failed: mood must be at most 5", decodeError(t, resp).Error.Message)
	})
}

func TestMoodHistory(t *testing.T) {
	mockSvc := new(serviceMocks.MockMoodService)
	app := newTestApp()
	app.Get("/pets/:id/mood-history", MoodHistory(mockSvc))
	petID := uuid.New().String()

	mockSvc.On("History", mock.Anything, testUserID, petID).Return([]model.Mood{{Mood: 3}, {Mood: 5}}, nil).Once()

	resp, _ := app.Test(jsonRequest(http.MethodGet, "/pets/"+petID+"/mood-history", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var list []model.Mood
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Len(t, list, 2)
}

func TestAlertHandlers(t *testing.T) {
	mockSvc := new(serviceMocks.MockAlertService)
	app := newTestApp()
	app.Post("/alerts", CreateAlert(mockSvc))
	app.Put("/alerts/:id", ReplaceAlert(mockSvc))
	app.Patch("/alerts/:id", PatchAlert(mockSvc))
	id := uuid.New().String()

	t.Run("create without is_active", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, testUserID, service.AlertInput{Name: "Feed", Time: "08:00"}).
			Return(&model.Alert{ID: id, Name: "Feed", Time: "08:00", IsActive: true}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/alerts", map[string]string{"name": "Feed", "time": "08:00"}))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("patch deactivates", func(t *testing.T) {
		mockSvc.On("Update", mock.Anything, testUserID, id, mock.MatchedBy(func(p service.AlertPatch) bool {
			return p.IsActive != nil && !*p.IsActive && p.Name == nil
		})).Return(&model.Alert{ID: id, IsActive: false}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPatch, "/alerts/"+id, map[string]any{"is_active": false}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("put requires time", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPut, "/alerts/"+id, map[string]string{"name": "Feed"}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	mockSvc.AssertExpectations(t)
}
