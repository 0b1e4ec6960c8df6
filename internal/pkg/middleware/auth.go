package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/carlimendez/aulareserva/internal/pkg/constants"
	"github.com/carlimendez/aulareserva/internal/pkg/rbac"
	"github.com/carlimendez/aulareserva/internal/pkg/usercontext"
)

// RequireAuth ensures a logged-in web session; redirects to /login if missing.
func RequireAuth(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return c.Redirect(constants.LoginRoute, fiber.StatusSeeOther)
	}
	return c.Next()
}

// RequireAPIAuth ensures a logged-in session for API routes and returns JSON 401 instead of redirect.
func RequireAPIAuth(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "login required",
		})
	}
	return c.Next()
}

// RequireCapability gates a route on the role→capability table. It implies
// RequireAPIAuth.
func RequireCapability(cap rbac.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userCtx := usercontext.GetUserContext(c)
		if !userCtx.IsLoggedIn {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   "unauthorized",
				"message": "login required",
			})
		}
		if !rbac.Allowed(userCtx.Role, cap) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":   "forbidden",
				"message": "insufficient permissions",
			})
		}
		return c.Next()
	}
}
