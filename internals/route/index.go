package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	donorRoute "github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/donors/route"
	fundingRoute "github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/funding/route"
	fundingService "github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/funding/service"
	requestRoute "github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/requests/route"
	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/logger"
	authMW "github.com/Tafsirchy/VitalFlow-BackendNew/internals/middlewares/auth"
)

var startTime time.Time

// SetupRoutes mounts the whole operation surface. Mutating operations and
// donor listing require a verified identity; discovery endpoints (urgent,
// search, request detail, donor lookup, funding feed) stay public.
func SetupRoutes(app *fiber.App, db *gorm.DB, gateway fundingService.Gateway) {
	startTime = time.Now()

	BaseRoutes(app, db)

	auth := authMW.AuthMiddleware()

	logger.Log.Info("setting up donor routes")
	donorRoute.DonorRoutes(app.Group("/api/donors"), db, auth)

	logger.Log.Info("setting up request routes")
	requestRoute.RequestRoutes(app.Group("/api/requests"), db, auth)
	requestRoute.RequestAdminRoutes(app.Group("/api/admin/requests"), db, auth)

	logger.Log.Info("setting up funding routes", zap.String("gateway", gateway.Name()))
	fundingRoute.FundingRoutes(app.Group("/api/funding"), db, gateway)
}
