package auth

import (
	"go.uber.org/zap"

	"github.com/gofiber/fiber/v2"

	helper "github.com/Tafsirchy/VitalFlow-BackendNew/internals/helpers"
	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/logger"
)

// AuthMiddleware verifies the bearer token and stores the verified email in
// Locals. The core only ever sees that email; token mechanics stop here.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized access",
			})
		}

		email, err := verifyToken(tokenString)
		if err != nil {
			logger.Log.Warn("token verification failed", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized access",
			})
		}

		c.Locals(helper.LocVerifiedEmail, email)
		return c.Next()
	}
}

// OptionalAuthMiddleware verifies a token when one is present but lets
// anonymous callers through. Used on checkout initiation, where guests donate.
func OptionalAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return c.Next()
		}
		if email, err := verifyToken(tokenString); err == nil {
			c.Locals(helper.LocVerifiedEmail, email)
		}
		return c.Next()
	}
}
