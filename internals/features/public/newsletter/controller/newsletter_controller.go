package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"exodus_backend/internals/features/public/newsletter/dto"
	"exodus_backend/internals/features/public/newsletter/model"
	helper "exodus_backend/internals/helpers"
)

var validate = validator.New()

type NewsletterController struct {
	DB *gorm.DB
}

func NewNewsletterController(db *gorm.DB) *NewsletterController {
	return &NewsletterController{DB: db}
}

// 🟢 SUBSCRIBE (public)
func (nc *NewsletterController) Subscribe(c *fiber.Ctx) error {
	var req dto.SubscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	sub := model.NewsletterSubscriptionModel{Email: email}
	if err := nc.DB.Create(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusBadRequest, "This email is already subscribed to the newsletter")
		}
		log.Printf("[ERROR] newsletter subscribe: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to subscribe")
	}

	log.Printf("[SUCCESS] newsletter subscription %d", sub.ID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Subscribed to newsletter",
		dto.FromModelSubscription(&sub))
}
