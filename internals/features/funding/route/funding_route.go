package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fundingController "github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/funding/controller"
	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/funding/service"
	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/middlewares"
	authMW "github.com/Tafsirchy/VitalFlow-BackendNew/internals/middlewares/auth"
)

// FundingRoutes wires the funding endpoints. All public — the payment
// provider's redirect carries no platform token, and the funding feed is a
// public transparency page. Checkout picks up a verified identity when one is
// present.
func FundingRoutes(api fiber.Router, db *gorm.DB, gateway service.Gateway) {
	ctrl := fundingController.NewFundingController(db, gateway)

	api.Post("/checkout",
		middlewares.CheckoutRateLimiter(),
		authMW.OptionalAuthMiddleware(),
		ctrl.InitiateCheckout,
	)
	api.Post("/reconcile", ctrl.Reconcile)
	api.Get("/total", ctrl.Totals)
	api.Get("/", ctrl.List)
}
