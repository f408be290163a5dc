package handlers

import (
	"strings"

	"opticaluna/internal/log"
	"opticaluna/internal/repos"
	"opticaluna/internal/services"
	"opticaluna/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type SearchHandler struct {
	Catalog *services.CatalogService
}

func (h *SearchHandler) Search(c *fiber.Ctx) error {
	rawQ := c.Query("q")
	if strings.TrimSpace(rawQ) == "" && c.Query("category") == "" && c.Query("shape") == "" && c.Query("color") == "" && c.Query("brand") == "" {
		// Initial page load: empty search form without errors
		return render(c, "search", fiber.Map{"Q": "", "Products": []any{}, "Count": 0})
	}

	f := repos.SearchFilter{}
	if rawQ != "" {
		q, ok := validate.Q(rawQ)
		if !ok {
			log.Security(c, "validation.fail", map[string]any{"field": "q", "value": rawQ})
			return c.Status(fiber.StatusBadRequest).Render("search", fiber.Map{
				"Q": "", "Products": []any{}, "Count": 0, "Err": "Enter a valid keyword (letters/numbers only)",
			})
		}
		f.Query = strings.ToLower(q)
	}
	for field, dst := range map[string]*string{
		"category": &f.Category,
		"shape":    &f.Shape,
		"color":    &f.Color,
		"brand":    &f.Brand,
	} {
		v := strings.TrimSpace(c.Query(field))
		if v == "" {
			continue
		}
		if _, ok := validate.Code(v); !ok {
			log.Security(c, "validation.fail", map[string]any{"field": field})
			return c.Status(fiber.StatusBadRequest).Render("search", fiber.Map{
				"Q": f.Query, "Products": []any{}, "Count": 0, "Err": "Invalid filter",
			})
		}
		*dst = v
	}

	products, err := h.Catalog.Search(f, 1, 20)
	if err != nil {
		log.Error(c, "search.error", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load results. Please retry."})
	}

	shapes, _ := h.Catalog.AttributesByType("shape")
	colors, _ := h.Catalog.AttributesByType("color")
	brands, _ := h.Catalog.AttributesByType("brand")

	return render(c, "search", fiber.Map{
		"Q": f.Query, "Shape": f.Shape, "Color": f.Color, "Brand": f.Brand,
		"Shapes": shapes, "Colors": colors, "Brands": brands,
		"Products": products, "Count": len(products),
	})
}
