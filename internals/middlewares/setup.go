package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMW "github.com/Tafsirchy/VitalFlow-BackendNew/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain in order.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMW.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
