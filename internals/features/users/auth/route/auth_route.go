package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"exodus_backend/internals/features/users/auth/controller"
	"exodus_backend/internals/helpers/mailer"
)

func AuthRoutes(public fiber.Router, private fiber.Router, db *gorm.DB, m mailer.Mailer) {
	ctrl := controller.NewAuthController(db, m)

	auth := public.Group("/auth")
	auth.Post("/signup", ctrl.Signup)
	auth.Post("/login", ctrl.Login)
	auth.Post("/google", ctrl.GoogleLogin)
	auth.Post("/forgot-password", ctrl.ForgotPassword)
	auth.Post("/reset-password", ctrl.ResetPassword)

	private.Group("/auth").Get("/me", ctrl.Me)
}
