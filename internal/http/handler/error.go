package handler

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"petcare/internal/http/middleware"
	"petcare/internal/service"
)

// errInvalidID is returned when a path parameter is not a UUID.
var errInvalidID = errors.New("invalid id format")

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// errorMapping pairs a service sentinel with its HTTP status and code.
// More specific sentinels come before the ones they wrap.
var errorMapping = []struct {
	target error
	status int
	code   string
}{
	{errInvalidID, fiber.StatusBadRequest, "INVALID_ID"},
	{service.ErrEmailTaken, fiber.StatusConflict, "EMAIL_TAKEN"},
	{service.ErrAlreadyAwarded, fiber.StatusConflict, "ALREADY_AWARDED"},
	{service.ErrInvalidCredentials, fiber.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{service.ErrAccountInactive, fiber.StatusForbidden, "ACCOUNT_INACTIVE"},
	{service.ErrOTPInvalid, fiber.StatusBadRequest, "OTP_INVALID"},
	{service.ErrOTPExpired, fiber.StatusBadRequest, "OTP_EXPIRED"},
	{service.ErrTooManyRequests, fiber.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
	{service.ErrInsufficientPoints, fiber.StatusBadRequest, "INSUFFICIENT_POINTS"},
	{service.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{sql.ErrNoRows, fiber.StatusNotFound, "NOT_FOUND"},
	{service.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{service.ErrConflict, fiber.StatusConflict, "CONFLICT"},
	{service.ErrValidation, fiber.StatusBadRequest, "VALIDATION_ERROR"},
	{service.ErrReaderNil, fiber.StatusBadRequest, "FILE_REQUIRED"},
	{service.ErrUnavailable, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
}

// writeServiceError translates a service error into the error envelope.
// Unknown errors become 500 INTERNAL_ERROR and are kept in locals for the access log.
func writeServiceError(c *fiber.Ctx, err error) error {
	for _, m := range errorMapping {
		if errors.Is(err, m.target) {
			msg := err.Error()
			if errors.Is(err, sql.ErrNoRows) {
				msg = "resource not found"
			}
			return writeError(c, m.status, m.code, msg)
		}
	}
	c.Locals(middleware.ErrorLocalKey, err)
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusUnauthorized:
			return writeError(c, status, "UNAUTHORIZED", "authentication required")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		default:
			c.Locals(middleware.ErrorLocalKey, err)
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
