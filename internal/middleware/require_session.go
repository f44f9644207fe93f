package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sabermais/sabermais-backend/internal/dto"
	"github.com/sabermais/sabermais-backend/internal/session"
)

// RequireSession rejects API calls that carry no authenticated session.
func RequireSession(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := sessions.Current(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Success: false,
				Message: "Not authenticated",
			})
		}
		session.ToCtx(c, identity)
		return c.Next()
	}
}
