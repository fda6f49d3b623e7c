package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"exodus_backend/internals/features/public/newsletter/controller"
)

func NewsletterRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNewsletterController(db)

	newsletter := public.Group("/newsletter")
	newsletter.Post("/subscribe", ctrl.Subscribe)
}
