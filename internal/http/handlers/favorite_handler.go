package handlers

import (
	applog "opticaluna/internal/log"
	"opticaluna/internal/repos"
	"opticaluna/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type FavoriteHandler struct {
	Favs *repos.FavoriteRepo
}

func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	sid := ensureSID(c)
	items, err := h.Favs.List(sid)
	if err != nil {
		applog.Error(c, "favorites.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load favorites"})
	}
	return render(c, "favorites", fiber.Map{"Items": items})
}

func (h *FavoriteHandler) Save(c *fiber.Ctx) error {
	sid := ensureSID(c)
	pid, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	if err := h.Favs.Add(sid, pid); err != nil {
		applog.Error(c, "favorites.save.fail", err, map[string]any{"product": pid})
		return c.Status(500).SendString("Could not save item")
	}
	applog.Audit(c, "favorites.save", map[string]any{"product": pid})
	back := c.Get("Referer")
	if back == "" {
		back = "/favorites"
	}
	return c.Redirect(back)
}

func (h *FavoriteHandler) Unsave(c *fiber.Ctx) error {
	sid := ensureSID(c)
	pid, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	if err := h.Favs.Remove(sid, pid); err != nil {
		applog.Error(c, "favorites.unsave.fail", err, map[string]any{"product": pid})
		return c.Status(500).SendString("Could not remove item")
	}
	applog.Audit(c, "favorites.unsave", map[string]any{"product": pid})
	return c.Redirect("/favorites")
}
