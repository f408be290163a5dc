package handlers

import (
	"strconv"

	"opticaluna/internal/domain"
	applog "opticaluna/internal/log"
	"opticaluna/internal/repos"
	"opticaluna/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Orders *repos.OrderRepo
	Prods  *repos.ProductRepo
	Users  *repos.UserRepo
	Cats   *repos.CategoryRepo
	Attrs  *repos.AttributeRepo
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	return render(c, "admin_dashboard", fiber.Map{})
}

// GET /admin/orders
func (h *AdminHandler) OrdersPage(c *fiber.Ctx) error {
	ords, err := h.Orders.ListLatest(100)
	if err != nil {
		applog.Error(c, "admin.orders.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load orders"})
	}
	return render(c, "admin_orders", fiber.Map{"Orders": ords})
}

// POST /admin/orders/:id/status
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	status := c.FormValue("status")
	if !ok || status == "" {
		return c.Status(400).SendString("missing id or status")
	}
	if err := h.Orders.UpdateStatus(id, status); err != nil {
		applog.Error(c, "admin.orders.update.fail", err, map[string]any{"order_id": id})
		return c.Status(400).SendString("could not update status")
	}
	applog.Audit(c, "admin.orders.update", map[string]any{"order_id": id, "status": status})
	return c.Redirect("/admin/orders")
}

// GET /admin/stock
func (h *AdminHandler) StockPage(c *fiber.Ctx) error {
	rows, err := h.Prods.ListStock()
	if err != nil {
		applog.Error(c, "admin.stock.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load stock"})
	}
	return render(c, "admin_stock", fiber.Map{"Rows": rows})
}

// POST /admin/stock
func (h *AdminHandler) UpdateStock(c *fiber.Ctx) error {
	pid, okID := validate.ID(c.FormValue("product_id"))
	qty, err := strconv.Atoi(c.FormValue("qty"))
	if !okID || err != nil || qty < 0 {
		return c.Status(400).SendString("invalid input")
	}
	if err := h.Prods.SetStock(pid, qty); err != nil {
		applog.Error(c, "admin.stock.save.fail", err, map[string]any{"product": pid, "qty": qty})
		return c.Status(400).SendString("could not save stock")
	}
	applog.Audit(c, "admin.stock.save", map[string]any{"product": pid, "qty": qty})
	return c.Redirect("/admin/stock")
}

// GET /admin/users
func (h *AdminHandler) UsersPage(c *fiber.Ctx) error {
	users, err := h.Users.ListNonAdmin()
	if err != nil {
		applog.Error(c, "admin.users.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load users"})
	}
	return render(c, "admin_users", fiber.Map{"Users": users})
}

// POST /admin/users/:id/delete
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if err := h.Users.DeleteUserCascade(id); err != nil {
		applog.Error(c, "admin.users.delete.fail", err, map[string]any{"user_id": id})
		return c.Status(400).SendString("could not delete user")
	}
	applog.Audit(c, "admin.users.delete", map[string]any{"user_id": id})
	return c.Redirect("/admin/users")
}

// GET /admin/attributes
func (h *AdminHandler) AttributesPage(c *fiber.Ctx) error {
	attrs, err := h.Attrs.All()
	if err != nil {
		applog.Error(c, "admin.attributes.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load attributes"})
	}
	return render(c, "admin_attributes", fiber.Map{"Attributes": attrs})
}

// PUT /admin/api/attributes, JSON upsert keyed on (type, code).
func (h *AdminHandler) UpsertAttribute(c *fiber.Ctx) error {
	var p attributePayload
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := payloadValidator.Struct(p); err != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "attribute"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid attribute"})
	}
	if _, ok := validate.Code(p.Type); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid type"})
	}
	if _, ok := validate.Code(p.Code); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid code"})
	}

	a := domain.Attribute{Type: p.Type, Code: p.Code, Label: p.Label, SortOrder: p.SortOrder}
	if err := h.Attrs.Upsert(a); err != nil {
		applog.Error(c, "admin.attributes.save.fail", err, map[string]any{"type": p.Type, "code": p.Code})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not save attribute"})
	}
	applog.Audit(c, "admin.attributes.save", map[string]any{"type": p.Type, "code": p.Code})
	return c.JSON(fiber.Map{"ok": true})
}

// POST /admin/categories/:slug/image
func (h *AdminHandler) UpdateCategoryImage(c *fiber.Ctx) error {
	slug, ok := validate.Slug(c.Params("slug"))
	imageURL := c.FormValue("image_url")
	if !ok || imageURL == "" {
		return c.Status(400).SendString("missing slug or image_url")
	}
	n, err := h.Cats.UpdateImageBySlug(slug, imageURL)
	if err != nil {
		applog.Error(c, "admin.categories.image.fail", err, map[string]any{"slug": slug})
		return c.Status(400).SendString("could not update image")
	}
	if n == 0 {
		return c.Status(404).SendString("category not found")
	}
	applog.Audit(c, "admin.categories.image", map[string]any{"slug": slug, "image_url": imageURL})
	return c.Redirect("/admin")
}
