package handler

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"petcare/internal/service"
)

type symptomsRequest struct {
	Symptoms map[string]float64 `json:"symptoms" validate:"required"`
}

// DiagnoseSymptoms runs the symptom classifier.
func DiagnoseSymptoms(svc service.DiagnosisService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req symptomsRequest
		if err := bind(c, &req); err != nil {
			return writeServiceError(c, err)
		}
		res, err := svc.Symptoms(c.UserContext(), req.Symptoms)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// DiagnoseCatImage sends the multipart field image_file to the detector.
func DiagnoseCatImage(svc service.DiagnosisService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("image_file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "image_file is required")
		}
		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		img, err := io.ReadAll(f)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot read uploaded file")
		}
		res, err := svc.CatImage(c.UserContext(), img)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}
