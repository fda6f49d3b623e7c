package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"exodus_backend/internals/features/public/artistrequest/controller"
)

func ArtistRequestRoutes(public fiber.Router, private fiber.Router, db *gorm.DB) {
	ctrl := controller.NewArtistRequestController(db)

	public.Group("/artist-requests").Post("/submit", ctrl.Submit)

	admin := private.Group("/artist-requests")
	admin.Get("/admin-list", ctrl.List)
	admin.Patch("/admin-update-status/:request_id", ctrl.UpdateStatus)
	admin.Delete("/admin-remove-request/:request_id", ctrl.Delete)
}
