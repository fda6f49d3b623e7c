package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"exodus_backend/internals/features/music/songs/controller"
	"exodus_backend/internals/helpers/media"
)

func SongRoutes(public fiber.Router, private fiber.Router, db *gorm.DB, up media.Uploader) {
	ctrl := controller.NewSongController(db, up)

	public.Group("/songs").Get("/", ctrl.List)

	admin := private.Group("/songs")
	admin.Post("/admin-add-song", ctrl.Add)
	admin.Patch("/admin-edit-song/:song_id", ctrl.Edit)
	admin.Delete("/admin-delete-song/:song_id", ctrl.Delete)
}
