package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"

	applog "campos/internal/log"
	"campos/internal/services"
	"campos/internal/validate"
)

type CartHandler struct {
	Cart     *services.CartService
	Catalog  *services.CatalogService
	Settings *services.SettingsService
}

func (h *CartHandler) ensureSID(c *fiber.Ctx) string {
	// Copy out of fasthttp's reusable buffer: the sid becomes a long-lived
	// cart map key and must not mutate when the next request overwrites it.
	sid := utils.CopyString(c.Cookies("sid"))
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{Name: "sid", Value: sid, Path: "/", HTTPOnly: true})
	}
	return sid
}

// View returns the order lines plus derived totals at the current tax rate.
func (h *CartHandler) View(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	lines := h.Cart.Lines(sid)
	totals := services.ComputeTotals(lines, h.Settings.TaxRate())
	return c.JSON(fiber.Map{
		"lines":     lines,
		"lineCount": len(lines),
		"totals":    totals,
	})
}

// Add puts one unit of a product into the order, merging with an existing line.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	var body struct {
		ProductID string `json:"productId"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	id, ok := validate.ID(body.ProductID)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	p, err := h.Catalog.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	if err := h.Cart.AddItem(sid, p); err != nil {
		if errors.Is(err, services.ErrOutOfStock) {
			applog.Info(c, "cart.add.outofstock", map[string]any{"product": id})
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": p.Name + " is currently out of stock"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return h.View(c)
}

// SetQuantity sets a line to an absolute quantity; zero or below removes it.
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	id, ok := validate.ID(c.Params("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	var body struct {
		Quantity *int `json:"quantity"`
	}
	if err := c.BodyParser(&body); err != nil || body.Quantity == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing quantity"})
	}
	qty := *body.Quantity
	if qty > 99 {
		qty = 99 // clamp to avoid abuse
	}
	if err := h.Cart.SetQuantity(sid, id, qty); err != nil {
		if errors.Is(err, services.ErrLineNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "item is not in the order; add it first"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return h.View(c)
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	h.Cart.Clear(sid)
	return h.View(c)
}
