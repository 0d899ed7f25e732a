package middleware

import (
	"strings"

	"peoplepulse/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Auth validates the bearer token and stores the raw identity in the
// request context. Role and tenant are NOT read from claims; the session
// middleware resolves them fresh so sign-out and membership changes take
// effect without waiting for token expiry.
func Auth(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing authorization token"})
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return config.JWTSecret(), nil
	})
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
	}

	claims := token.Claims.(jwt.MapClaims)
	c.Locals("user_id", claims["user_id"])
	c.Locals("email", claims["email"])

	return c.Next()
}

// UserID reads the identity set by Auth.
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("user_id").(float64)
	return uint(id)
}

// Email reads the identity email set by Auth.
func Email(c *fiber.Ctx) string {
	email, _ := c.Locals("email").(string)
	return email
}
