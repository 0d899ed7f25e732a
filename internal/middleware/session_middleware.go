package middleware

import (
	"peoplepulse/internal/session"

	"github.com/gofiber/fiber/v2"
)

// Session resolves the caller's membership/role/tenant once per request and
// stores the snapshot for handlers. Authenticated identities without an
// active membership are told to onboard, not treated as logged out.
func Session(resolver *session.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap := resolver.Resolve(UserID(c), Email(c))

		if !snap.HasMembership() || !snap.HasTenant() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":            "No active company membership",
				"needs_onboarding": true,
			})
		}

		c.Locals("session", snap)
		return c.Next()
	}
}

// Current returns the snapshot stored by the Session middleware.
func Current(c *fiber.Ctx) session.Snapshot {
	snap, _ := c.Locals("session").(session.Snapshot)
	return snap
}
