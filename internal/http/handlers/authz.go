package handlers

import (
	"opticaluna/internal/domain"
	applog "opticaluna/internal/log"
	"opticaluna/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireAdmin gates the back office. The session is resolved before any
// protected content is produced: visitors with no session go to the login
// page, signed-in non-admins go back to the storefront. Both redirects use
// 303 so the guarded URL does not survive in history.
func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		if u.Role != domain.RoleAdmin {
			applog.Security(c, "access.denied.admin", map[string]any{"user_id": u.ID, "role": u.Role})
			return c.Redirect("/", fiber.StatusSeeOther)
		}
		c.Locals("user", u)
		return c.Next()
	}
}

// RequireUser enforces that a user is logged in; otherwise redirect to login.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		c.Locals("user", u)
		return c.Next()
	}
}
