package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"

	"opticaluna/internal/http/handlers"
	"opticaluna/internal/repos"
	"opticaluna/internal/services"
)

// The JSON admin endpoint carries no form body, so the form-token CSRF
// check must skip it; the admin session guard still applies.
func TestAdminAttributeUpsertJSONSkipsFormCSRF(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	userRepo := repos.NewUserRepo(db)
	attrRepo := repos.NewAttributeRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	adminH := &handlers.AdminHandler{Attrs: attrRepo}

	app := fiber.New()
	app.Use(csrf.New(csrf.Config{
		KeyLookup:  "form:csrf",
		CookieName: "csrf_",
		Next:       handlers.CSRFExempt,
	}))
	admin := app.Group("/admin", handlers.RequireAdmin(authSvc))
	admin.Put("/api/attributes", adminH.UpsertAttribute)

	_ = userRepo.BindSession("sid-admin", "u-admin")

	put := func(sid string) *http.Response {
		req := httptest.NewRequest("PUT", "/admin/api/attributes",
			strings.NewReader(`{"type":"color","code":"verde","label":"Verde","order":8}`))
		req.Header.Set("Content-Type", "application/json")
		if sid != "" {
			req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
		}
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		return resp
	}

	// No csrf token anywhere in the request; the admin session is enough.
	resp := put("sid-admin")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	got, err := attrRepo.Get("color", "verde")
	if err != nil {
		t.Fatalf("attribute not stored: %v", err)
	}
	if got.Label != "Verde" || got.SortOrder != 8 {
		t.Fatalf("unexpected stored attribute: %+v", got)
	}

	// The session guard still gates the exempted path.
	respAnon := put("")
	if respAnon.StatusCode != http.StatusSeeOther {
		t.Fatalf("anonymous: expected 303, got %d", respAnon.StatusCode)
	}
}
