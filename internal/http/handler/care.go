package handler

import (
	"github.com/gofiber/fiber/v2"

	"petcare/internal/model"
	"petcare/internal/service"
)

type appointmentRequest struct {
	PetID    string     `json:"pet_id" validate:"required,uuid"`
	Service  string     `json:"service" validate:"required,max=100"`
	Date     model.Date `json:"date"`
	Time     string     `json:"time" validate:"required"`
	Provider string     `json:"provider" validate:"max=100"`
}

type appointmentPatchRequest struct {
	PetID    *string     `json:"pet_id" validate:"omitempty,uuid"`
	Service  *string     `json:"service" validate:"omitempty,max=100"`
	Date     *model.Date `json:"date"`
	Time     *string     `json:"time"`
	Provider *string     `json:"provider" validate:"omitempty,max=100"`
}

func ListAppointments(svc service.AppointmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := svc.List(c.UserContext(), userID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(list)
	}
}

// PetAppointments lists the appointments of the pet in :id.
func PetAppointments(svc service.AppointmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		petID, err := pathID(c, "id")
		if err != nil {
			return writeServiceError(c, err)
		}
		list, err := svc.ListByPet(c.UserContext(), userID(c), petID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(list)
	}
}

func CreateAppointment(svc service.AppointmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req appointmentRequest
		if err := bind(c, &req); err != nil {
			return writeServiceError(c, err)
		}
		a, err := svc.Create(c.UserContext(), userID(c), service.AppointmentInput(req))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(a)
	}
}

func GetAppointment(svc service.AppointmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return writeServiceError(c, err)
		}
		a, err := svc.Get(c.UserContext(), userID(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(a)
	}
}

// ReplaceAppointment handles PUT, where every field is required.
func ReplaceAppointment(svc service.AppointmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return writeServiceError(c, err)
		}
		var req appointmentRequest
		if err := bind(c, &req); err != nil {
			return writeServiceError(c, err)
		}
		a, err := svc.Update(c.UserContext(), userID(c), id, service.AppointmentPatch{
			PetID:    &req.PetID,
			Service:  &req.Service,
			Date:     &req.Date,
			Time:     &req.Time,
			Provider: &req.Provider,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(a)
	}
}

func PatchAppointment(svc service.AppointmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return writeServiceError(c, err)
		}
		var req appointmentPatchRequest
		if err := bind(c, &req); err != nil {
			return writeServiceError(c, err)
		}
		a, err := svc.Update(c.UserContext(), userID(c), id, service.AppointmentPatch(req))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(a)
	}
}

func DeleteAppointment(svc service.AppointmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return writeServiceError(c, err)
		}
		if err := svc.Delete(c.UserContext(), userID(c), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

type vaccinationRequest struct {
	PetID           string     `json:"pet_id" validate:"required,uuid"`
	VaccName        string     `json:"vacc_name" validate:"required,max=100"`
	VaccDate        model.Date `json:"vacc_date"`
	VaccCertificate string     `json:"vacc_certificate"`
}

type vaccinationPatchRequest struct {
	PetID           *string     `json:"pet_id" validate:"omitempty,uuid"`
	VaccName        *string     `json:"vacc_name" validate:"omitempty,max=100"`
	VaccDate        *model.Date `json:"vacc_date"`
	VaccCertificate *string     `json:"vacc_certificate"`
}

func ListVaccinations(svc service.VaccinationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := svc.List(c.UserContext(), userID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(list)
	}
}

func CreateVaccination(svc service.VaccinationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req vaccinationRequest
		if err := bind(c, &req); err != nil {
			return writeServiceError(c, err)
		}
		v, err := svc.Create(c.UserContext(), userID(c), service.VaccinationInput(req))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(v)
	}
}

func GetVaccination(svc service.VaccinationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return writeServiceError(c, err)
		}
		v, err := svc.Get(c.UserContext(), userID(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(v)
	}
}

func ReplaceVaccination(svc service.VaccinationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return writeServiceError(c, err)
		}
		var req vaccinationRequest
		if err := bind(c, &req); err != nil {
			return writeServiceError(c, err)
		}
		v, err := svc.Update(c.UserContext(), userID(c), id, service.VaccinationPatch{
			PetID:           &req.PetID,
			VaccName:        &req.VaccName,
			VaccDate:        &req.VaccDate,
			VaccCertificate: &req.VaccCertificate,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(v)
	}
}

func PatchVaccination(svc service.VaccinationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return writeServiceError(c, err)
		}
		var req vaccinationPatchRequest
		if err := bind(c, &req); err != nil {
			return writeServiceError(c, err)
		}
		v, err := svc.Update(c.UserContext(), userID(c), id, service.VaccinationPatch(req))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(v)
	}
}

func DeleteVaccination(svc service.VaccinationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return writeServiceError(c, err)
		}
		if err := svc.Delete(c.UserContext(), userID(c), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

type moodRequest struct {
	PetName string     `json:"pet_name" validate:"required"`
	Mood    int        `json:"mood" validate:"required,min=1,max=5"`
	Notes   string     `json:"notes"`
	Date    model.Date `json:"date"`
}

// RecordMood stores a mood entry for one of the caller's pets.
func RecordMood(svc service.MoodService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req moodRequest
		if err := bind(c, &req); err != nil {
			return writeServiceError(c, err)
		}
		m, err := svc.Record(c.UserContext(), userID(c), service.MoodInput(req))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(m)
	}
}

// MoodHistory returns the last week of moods for the pet in :id.
func MoodHistory(svc service.MoodService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		petID, err := pathID(c, "id")
		if err != nil {
			return writeServiceError(c, err)
		}
		list, err := svc.History(c.UserContext(), userID(c), petID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(list)
	}
}

type alertRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Time     string `json:"time" validate:"required"`
	IsActive *bool  `json:"is_active"`
}

type alertPatchRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Time     *string `json:"time"`
	IsActive *bool   `json:"is_active"`
}

func ListAlerts(svc service.AlertService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := svc.List(c.UserContext(), userID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(list)
	}
}

func CreateAlert(svc service.AlertService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req alertRequest
		if err := bind(c, &req); err != nil {
			return writeServiceError(c, err)
		}
		a, err := svc.Create(c.UserContext(), userID(c), service.AlertInput(req))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(a)
	}
}

func GetAlert(svc service.AlertService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return writeServiceError(c, err)
		}
		a, err := svc.Get(c.UserContext(), userID(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(a)
	}
}

// ReplaceAlert handles PUT. An omitted is_active keeps the current value.
func ReplaceAlert(svc service.AlertService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return writeServiceError(c, err)
		}
		var req alertRequest
		if err := bind(c, &req); err != nil {
			return writeServiceError(c, err)
		}
		a, err := svc.Update(c.UserContext(), userID(c), id, service.AlertPatch{
			Name:     &req.Name,
			Time:     &req.Time,
			IsActive: req.IsActive,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(a)
	}
}

func PatchAlert(svc service.AlertService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return writeServiceError(c, err)
		}
		var req alertPatchRequest
		if err := bind(c, &req); err != nil {
			return writeServiceError(c, err)
		}
		a, err := svc.Update(c.UserContext(), userID(c), id, service.AlertPatch(req))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(a)
	}
}

func DeleteAlert(svc service.AlertService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "id")
		if err != nil {
			return writeServiceError(c, err)
		}
		if err := svc.Delete(c.UserContext(), userID(c), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
