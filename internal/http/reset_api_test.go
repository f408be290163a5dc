package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"opticaluna/internal/http/handlers"
	"opticaluna/internal/repos"
	"opticaluna/internal/services"
)

type stubMailer struct {
	email, name, token string
	sent               int
	ok                 bool
}

func (s *stubMailer) SendPasswordReset(email, name, token string) bool {
	s.email, s.name, s.token = email, name, token
	s.sent++
	return s.ok
}

func newResetApp(t *testing.T) (*fiber.App, *services.AuthService, *stubMailer) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mailer := &stubMailer{ok: true}
	authSvc := &services.AuthService{
		Users:  repos.NewUserRepo(db),
		Tokens: services.NewResetTokenService("test-secret"),
		Mail:   mailer,
	}
	authH := &handlers.AuthHandler{Auth: authSvc}

	app := fiber.New()
	app.Post("/api/v1/forgot-password", authH.ForgotPassword)
	app.Post("/api/v1/reset-password", authH.ResetPassword)
	return app, authSvc, mailer
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestForgotThenResetPasswordFlow(t *testing.T) {
	app, authSvc, mailer := newResetApp(t)

	resp := postJSON(t, app, "/api/v1/forgot-password", `{"email":"ana@opticaluna.test"}`)
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("forgot: expected 202, got %d", resp.StatusCode)
	}
	if mailer.sent != 1 || mailer.email != "ana@opticaluna.test" || mailer.token == "" {
		t.Fatalf("mail not sent as expected: %+v", mailer)
	}

	body, _ := json.Marshal(fiber.Map{"token": mailer.token, "password": "NuevaClave1!"})
	resp2 := postJSON(t, app, "/api/v1/reset-password", string(body))
	if resp2.StatusCode != http.StatusOK {
		t.Fatalf("reset: expected 200, got %d", resp2.StatusCode)
	}

	if _, err := authSvc.Login("sid-1", "ana@opticaluna.test", "NuevaClave1!"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
	if _, err := authSvc.Login("sid-2", "ana@opticaluna.test", "Passw0rd!"); err == nil {
		t.Fatal("old password still accepted after reset")
	}
}

// An unknown address gets the same 202 and no mail goes out.
func TestForgotPasswordUnknownEmailNoLeak(t *testing.T) {
	app, _, mailer := newResetApp(t)

	resp := postJSON(t, app, "/api/v1/forgot-password", `{"email":"nadie@opticaluna.test"}`)
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("expected 202 for unknown email, got %d", resp.StatusCode)
	}
	if mailer.sent != 0 {
		t.Fatalf("mail was sent for unknown email")
	}
}

func TestForgotPasswordRejectsBadEmail(t *testing.T) {
	app, _, _ := newResetApp(t)

	for _, body := range []string{
		`{"email":"not-an-email"}`,
		`{"email":""}`,
		`{}`,
	} {
		resp := postJSON(t, app, "/api/v1/forgot-password", body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, resp.StatusCode)
		}
	}
}

func TestResetPasswordRejectsBadToken(t *testing.T) {
	app, _, _ := newResetApp(t)

	resp := postJSON(t, app, "/api/v1/reset-password", `{"token":"bogus","password":"NuevaClave1!"}`)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad token, got %d", resp.StatusCode)
	}
}

func TestResetPasswordRejectsWeakPassword(t *testing.T) {
	app, _, mailer := newResetApp(t)

	_ = postJSON(t, app, "/api/v1/forgot-password", `{"email":"ana@opticaluna.test"}`)
	body, _ := json.Marshal(fiber.Map{"token": mailer.token, "password": "todominusculas"})
	resp := postJSON(t, app, "/api/v1/reset-password", string(body))
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for weak password, got %d", resp.StatusCode)
	}
}
