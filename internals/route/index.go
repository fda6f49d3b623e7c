package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	artistRoute "exodus_backend/internals/features/music/artists/route"
	featuredRoute "exodus_backend/internals/features/music/featured/route"
	playlistRoute "exodus_backend/internals/features/music/playlists/route"
	songRoute "exodus_backend/internals/features/music/songs/route"
	videoRoute "exodus_backend/internals/features/music/videos/route"
	requestRoute "exodus_backend/internals/features/public/artistrequest/route"
	newsletterRoute "exodus_backend/internals/features/public/newsletter/route"
	authRoute "exodus_backend/internals/features/users/auth/route"
	"exodus_backend/internals/helpers/mailer"
	"exodus_backend/internals/helpers/media"
	"exodus_backend/internals/middlewares"
)

// SetupRoutes mounts the whole API. Everything hangs off two groups: a
// public one and a private one that requires a valid access token.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	uploader, err := media.NewCloudinaryService()
	if err != nil {
		log.Fatalf("[ERROR] image host init: %v", err)
	}
	m := mailer.NewResendMailer()

	setupBaseRoutes(app, db)

	public := app.Group("/")
	private := app.Group("/", middlewares.AuthMiddleware(db))

	authRoute.AuthRoutes(public, private, db, m)
	newsletterRoute.NewsletterRoutes(public, db)
	requestRoute.ArtistRequestRoutes(public, private, db)

	artistRoute.ArtistRoutes(public, private, db, uploader)
	songRoute.SongRoutes(public, private, db, uploader)
	videoRoute.VideoRoutes(public, private, db)
	playlistRoute.PlaylistRoutes(public, private, db, uploader)
	featuredRoute.FeaturedRoutes(public, private, db)
}

func setupBaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Exodus Records API"})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "degraded",
				"db":     err.Error(),
			})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
