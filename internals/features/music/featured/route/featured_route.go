package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"exodus_backend/internals/features/music/featured/controller"
)

func FeaturedRoutes(public fiber.Router, private fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFeaturedController(db)

	public.Group("/new-music").Get("/", ctrl.List)

	admin := private.Group("/new-music")
	admin.Post("/admin-add", ctrl.Add)
	admin.Delete("/admin-remove/:song_id", ctrl.Remove)
	admin.Patch("/admin-reorder", ctrl.Reorder)
}
