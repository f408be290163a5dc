package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CSRFExempt reports routes the form-token CSRF check must skip: JSON
// endpoints carry no form body, so the token cannot travel in one. The
// public /api/ endpoints are rate-limited and the /admin/api/ ones sit
// behind the admin session guard.
func CSRFExempt(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/api/") || strings.HasPrefix(c.Path(), "/admin/api/")
}
