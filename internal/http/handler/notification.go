package handler

import (
	"github.com/gofiber/fiber/v2"

	"petcare/internal/service"
)

type pushTokenRequest struct {
	Token    string `json:"token" validate:"required,max=255"`
	Platform string `json:"platform" validate:"max=20"`
}

// RegisterPushToken binds a device token to the caller.
func RegisterPushToken(svc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req pushTokenRequest
		if err := bind(c, &req); err != nil {
			return writeServiceError(c, err)
		}
		tok, err := svc.Register(c.UserContext(), userID(c), req.Token, req.Platform)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(tok)
	}
}

// UnregisterPushToken removes a device token of the caller. The token is
// read from the body, or from the token query parameter.
func UnregisterPushToken(svc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req pushTokenRequest
		if len(c.Body()) > 0 {
			if err := bind(c, &req); err != nil {
				return writeServiceError(c, err)
			}
		} else {
			req.Token = c.Query("token")
		}
		if req.Token == "" {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "token is required")
		}
		if err := svc.Unregister(c.UserContext(), userID(c), req.Token); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
