package middlewares

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authModel "exodus_backend/internals/features/users/auth/model"
	helper "exodus_backend/internals/helpers"
)

// AuthMiddleware validates the bearer token and stores the user id in
// c.Locals("user_id"). Everything below the HTTP boundary receives the actor
// id as an explicit argument, never by reaching into ambient state.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, err.Error())
		}

		claims, err := helper.ParseAccessToken(tokenString)
		if err != nil {
			log.Printf("[ERROR] token parse: %v", err)
			return helper.Error(c, fiber.StatusUnauthorized, "Could not validate credentials")
		}

		rawID, ok := claims["user_id"].(float64)
		if !ok || rawID <= 0 {
			return helper.Error(c, fiber.StatusUnauthorized, "Could not validate credentials")
		}
		userID := int(rawID)

		// The token outlives account deletion, so the user row is checked on
		// every authenticated request.
		var user authModel.UserModel
		if err := db.Select("id").First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.Error(c, fiber.StatusUnauthorized, "User not found")
			}
			log.Printf("[ERROR] auth user lookup: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := c.Get(fiber.HeaderAuthorization)
	if auth == "" {
		return "", errors.New("missing Authorization header")
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid Authorization header")
	}
	return parts[1], nil
}
