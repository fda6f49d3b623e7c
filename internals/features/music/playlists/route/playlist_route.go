package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"exodus_backend/internals/features/music/playlists/controller"
	"exodus_backend/internals/helpers/media"
)

func PlaylistRoutes(public fiber.Router, private fiber.Router, db *gorm.DB, up media.Uploader) {
	ctrl := controller.NewPlaylistController(db, up)

	public.Group("/playlists").Get("/", ctrl.List)

	admin := private.Group("/playlists")
	admin.Post("/admin-add", ctrl.Add)
	admin.Patch("/admin-edit/:playlist_id", ctrl.Edit)
	admin.Delete("/admin-delete/:playlist_id", ctrl.Delete)
}
