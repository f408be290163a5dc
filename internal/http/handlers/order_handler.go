package handlers

import (
	"opticaluna/internal/domain"
	applog "opticaluna/internal/log"
	"opticaluna/internal/repos"
	"opticaluna/internal/services"
	"opticaluna/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	Cart  *services.CartService
	Order *services.OrderService
	Repo  *repos.OrderRepo
	Auth  *services.AuthService
}

func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	cv, err := h.Cart.View(ensureSID(c))
	if err != nil {
		applog.Error(c, "checkout.load", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load your cart"})
	}
	return render(c, "checkout", fiber.Map{"Cart": cv})
}

func (h *OrderHandler) Place(c *fiber.Ctx) error {
	sid := ensureSID(c)

	email, ok := validate.Email(c.FormValue("email"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "email"})
		return c.Status(fiber.StatusBadRequest).SendString("invalid email")
	}
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "name"})
		return c.Status(fiber.StatusBadRequest).SendString("name must be 1-60 characters")
	}
	address, ok := validate.Name(c.FormValue("address"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "address"})
		return c.Status(fiber.StatusBadRequest).SendString("address must be 1-60 characters")
	}

	contact := services.Contact{Name: name, Email: email, Address: address}

	orderID, err := h.Order.Place(sid, contact)
	if err != nil {
		// business rule errors (e.g. insufficient stock) surface as 400
		applog.Security(c, "order.place.fail", map[string]any{"sid": sid, "error": err.Error()})
		return c.Status(fiber.StatusBadRequest).SendString("Could not place order. Please review quantities and try again.")
	}
	applog.Audit(c, "order.place", map[string]any{"order_id": orderID})

	return c.Redirect("/order/" + orderID)
}

func (h *OrderHandler) View(c *fiber.Ctx) error {
	oid, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Order not found"})
	}

	o, items, err := h.Repo.Get(oid)
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Order not found"})
	}

	// Ownership check: the placing session sees its order; admins see all.
	sid := c.Cookies("sid")
	if o.SessionID != sid {
		var u *domain.User
		if h.Auth != nil && sid != "" {
			u, _ = h.Auth.CurrentUser(sid)
		}
		if u == nil || u.Role != domain.RoleAdmin {
			applog.Security(c, "order.view.denied", map[string]any{"order_id": oid})
			return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Order not found"})
		}
	}

	return render(c, "order", fiber.Map{"Order": o, "Items": items})
}

func (h *OrderHandler) History(c *fiber.Ctx) error {
	sid := ensureSID(c)
	orders, err := h.Repo.ListBySession(sid)
	if err != nil {
		applog.Error(c, "orders.history.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load your orders"})
	}
	return render(c, "orders", fiber.Map{"Orders": orders})
}
