package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	html "github.com/gofiber/template/html/v2"

	"opticaluna/internal/http/handlers"
	"opticaluna/internal/repos"
	"opticaluna/internal/services"
)

func newCatalogApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	catalog := services.NewCatalogService(
		repos.NewCategoryRepo(db),
		repos.NewProductRepo(db),
		repos.NewAttributeRepo(db),
	)
	searchH := &handlers.SearchHandler{Catalog: catalog}
	prodH := &handlers.ProductHandler{Catalog: catalog}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Get("/search", searchH.Search)
	app.Get("/api/v1/availability", prodH.Availability)
	return app
}

func TestSearchRejectsHostileQuery(t *testing.T) {
	app := newCatalogApp(t)

	for _, q := range []string{
		"<script>alert(1)</script>",
		"'; DROP TABLE products;--",
	} {
		resp, err := app.Test(httptest.NewRequest("GET", "/search?q="+url.QueryEscape(q), nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("q=%q: expected 400, got %d", q, resp.StatusCode)
		}
	}
}

func TestSearchAcceptsAccentedQuery(t *testing.T) {
	app := newCatalogApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/search?q="+url.QueryEscape("montaña"), nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for accented query, got %d", resp.StatusCode)
	}
}

// A category filter with no keyword still runs the search.
func TestSearchCategoryFilterAlone(t *testing.T) {
	app := newCatalogApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/search?category=cat-sol", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	body := string(raw)
	if !strings.Contains(body, "Aviador Clásico") {
		t.Fatal("sunglasses product missing from category-filtered results")
	}
	if strings.Contains(body, "Montura Redonda Dorada") {
		t.Fatal("product from another category leaked into results")
	}
}

func TestAvailabilityRejectsBadProductID(t *testing.T) {
	app := newCatalogApp(t)

	for _, raw := range []string{"", "../../etc/passwd", "id with spaces"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/availability?productId="+url.QueryEscape(raw), nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("productId=%q: expected 400, got %d", raw, resp.StatusCode)
		}
	}
}

func TestAvailabilityUnknownProductReportsOutOfStock(t *testing.T) {
	app := newCatalogApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/availability?productId=no-such-product", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
