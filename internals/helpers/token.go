package helper

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"exodus_backend/internals/configs"
)

// Access tokens are long-lived on purpose: the admin dashboard is the only
// consumer and has no refresh flow.
const accessTokenTTL = 14 * 24 * time.Hour

func CreateAccessToken(userID int, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(accessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

func ParseAccessToken(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// GetUserID reads the authenticated user id stored by the auth middleware.
// Controllers pass this id explicitly into service calls that need an actor.
func GetUserID(c *fiber.Ctx) (int, error) {
	v := c.Locals("user_id")
	id, ok := v.(int)
	if !ok || id <= 0 {
		return 0, errors.New("missing authenticated user")
	}
	return id, nil
}
