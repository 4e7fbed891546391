package middleware

import (
	"jobcard-backend/config"
	"jobcard-backend/token"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ProtectedRoute verifies the session cookie minted by the sessions endpoint
// and stashes the staff payload in locals for downstream handlers.
func ProtectedRoute(maker token.Maker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accessToken := c.Cookies("access_token")
		if accessToken == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
				"error":   "Authentication required",
			})
		}

		payload, err := maker.VerifyToken(accessToken)
		if err != nil {
			// Log internally, keep the client-facing message generic.
			config.Logger.Debug("Invalid access token encountered", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
				"error":   "Session expired or invalid. Please sign in again.",
			})
		}

		c.Locals("staff", payload)
		return c.Next()
	}
}
