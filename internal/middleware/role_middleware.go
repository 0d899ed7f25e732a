package middleware

import "github.com/gofiber/fiber/v2"

// Role gates a route on the resolved role. Must run after Session.
func Role(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap := Current(c)
		for _, role := range allowedRoles {
			if role == snap.Role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Insufficient role for this action"})
	}
}
