package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"exodus_backend/internals/features/music/videos/controller"
)

func VideoRoutes(public fiber.Router, private fiber.Router, db *gorm.DB) {
	ctrl := controller.NewVideoController(db)

	public.Group("/videos").Get("/", ctrl.List)

	admin := private.Group("/videos")
	admin.Post("/admin-add-video", ctrl.Add)
	admin.Patch("/admin-edit-video/:video_id", ctrl.Edit)
	admin.Delete("/admin-delete-video/:video_id", ctrl.Delete)
}
