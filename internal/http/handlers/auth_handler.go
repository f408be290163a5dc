package handlers

import (
	"time"

	"opticaluna/internal/log"
	"opticaluna/internal/services"
	"opticaluna/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	tok, _ := c.Locals("CSRFToken").(string)
	if tok == "" {
		tok = c.Cookies("csrf_")
	}
	return render(c, "login", fiber.Map{"Err": "", "CSRFToken": tok})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")
	if _, ok := validate.Email(email); !ok {
		tok := c.Cookies("csrf_")
		log.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_format"})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": tok})
	}
	if !validate.Password(pass) {
		tok := c.Cookies("csrf_")
		log.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_password_format"})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": tok})
	}

	_, err := h.Auth.Login(sid, email, pass)
	if err != nil {
		tok := c.Cookies("csrf_")
		log.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(401).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": tok})
	}

	log.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.Redirect("/")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(sid)
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	log.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/")
}

// ForgotPassword accepts a JSON body and always answers 202 for a
// well-formed email, whether or not an account exists.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var p forgotPasswordPayload
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := payloadValidator.Struct(p); err != nil {
		log.Security(c, "validation.fail", map[string]any{"field": "email"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "enter a valid email"})
	}

	if !h.Auth.RequestPasswordReset(p.Email) {
		log.Error(c, "auth.reset.request.fail", nil, map[string]any{"email": p.Email})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not send reset email"})
	}
	log.Audit(c, "auth.reset.request", map[string]any{"email": p.Email})
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"ok": true})
}

// ResetPassword verifies the token and stores the new password.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var p resetPasswordPayload
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := payloadValidator.Struct(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid token or password"})
	}
	if !validate.Password(p.Password) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "password needs upper, lower, digit and symbol"})
	}

	if err := h.Auth.ResetPassword(p.Token, p.Password); err != nil {
		log.Security(c, "auth.reset.fail", map[string]any{"reason": err.Error()})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
	}
	log.Audit(c, "auth.reset.success", nil)
	return c.JSON(fiber.Map{"ok": true})
}
