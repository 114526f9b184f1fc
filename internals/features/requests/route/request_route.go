package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	requestController "github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/requests/controller"
)

// RequestRoutes wires every request endpoint onto the /requests router.
// Authenticated routes carry authMW per route; registration order matters,
// the ":id" catch-all must come after "/mine" and friends.
func RequestRoutes(api fiber.Router, db *gorm.DB, authMW fiber.Handler) {
	ctrl := requestController.NewRequestController(db)

	// authenticated
	api.Post("/", authMW, ctrl.Create)
	api.Get("/mine", authMW, ctrl.ListOwn)
	api.Get("/mine/recent", authMW, ctrl.RecentOwn)
	api.Patch("/:id/accept", authMW, ctrl.Accept)
	api.Patch("/:id/status", authMW, ctrl.UpdateStatus)
	api.Delete("/:id", authMW, ctrl.DeleteOwn)

	// public discovery
	api.Get("/urgent", ctrl.Urgent)
	api.Get("/search", ctrl.Search)
	api.Get("/:id", ctrl.GetByID)
}

// RequestAdminRoutes wires the Admin/Volunteer administration surface.
func RequestAdminRoutes(api fiber.Router, db *gorm.DB, authMW fiber.Handler) {
	ctrl := requestController.NewRequestController(db)

	api.Get("/", authMW, ctrl.ListAll)         // admin or volunteer, checked in controller
	api.Delete("/:id", authMW, ctrl.DeleteAny) // admin only
}
