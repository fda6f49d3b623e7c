package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"exodus_backend/internals/features/music/artists/controller"
	"exodus_backend/internals/helpers/media"
)

func ArtistRoutes(public fiber.Router, private fiber.Router, db *gorm.DB, up media.Uploader) {
	ctrl := controller.NewArtistController(db, up)

	pub := public.Group("/artists")
	pub.Get("/", ctrl.List)
	pub.Get("/:artist_id", ctrl.GetByID)

	admin := private.Group("/artists")
	admin.Post("/admin-add-artist", ctrl.Add)
	admin.Patch("/admin-edit-artist/:artist_id", ctrl.Edit)
	admin.Delete("/admin-delete-artist/:artist_id", ctrl.Delete)
	admin.Patch("/:artist_id/admin-reorder-songs", ctrl.ReorderSongs)
	admin.Patch("/:artist_id/admin-reorder-videos", ctrl.ReorderVideos)
}
