package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// UserIDLocalKey is the Fiber locals key holding the authenticated user id.
const UserIDLocalKey = "user_id"

// AccessTokenParser validates an access token and returns its subject.
type AccessTokenParser interface {
	ParseAccess(token string) (string, error)
}

// Auth requires a valid "Authorization: Bearer <token>" header.
// Rejections use the standard error envelope with code UNAUTHORIZED.
func Auth(tokens AccessTokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return unauthorized(c, "authentication credentials were not provided")
		}
		userID, err := tokens.ParseAccess(strings.TrimSpace(token))
		if err != nil {
			return unauthorized(c, "token is invalid or expired")
		}
		c.Locals(UserIDLocalKey, userID)
		return c.Next()
	}
}

// UserID returns the id stored by Auth, or "" on public routes.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDLocalKey).(string)
	return id
}

func unauthorized(c *fiber.Ctx, msg string) error {
	rid, _ := c.Locals(RequestIDLocalKey).(string)
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"request_id": rid,
		"error": fiber.Map{
			"code":    "UNAUTHORIZED",
			"message": msg,
		},
	})
}
