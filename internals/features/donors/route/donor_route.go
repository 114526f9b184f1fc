package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	donorController "github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/donors/controller"
	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/middlewares"
)

// DonorRoutes wires every donor endpoint onto the /donors router.
// Authenticated routes carry authMW per route; the ":email" catch-all stays
// last so it cannot shadow the fixed paths.
func DonorRoutes(api fiber.Router, db *gorm.DB, authMW fiber.Handler) {
	ctrl := donorController.NewDonorController(db)

	// authenticated
	api.Get("/", authMW, ctrl.List)
	api.Patch("/status", authMW, ctrl.UpdateStatus)
	api.Patch("/role", authMW, ctrl.UpdateRole) // admin gate inside the controller
	api.Put("/profile", authMW, ctrl.UpdateProfile)

	// public
	api.Post("/", middlewares.RegisterRateLimiter(), ctrl.Register)
	api.Get("/:email", ctrl.GetByEmail)
}
