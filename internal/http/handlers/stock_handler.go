package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"campos/internal/domain"
	applog "campos/internal/log"
	"campos/internal/services"
	"campos/internal/validate"
)

type StockHandler struct {
	Stock   *services.StockService
	Catalog *services.CatalogService
}

// List returns every product with its stock status plus the page's counters.
func (h *StockHandler) List(c *fiber.Ctx) error {
	products := h.Catalog.Products()
	low, out := 0, 0
	var value int64
	for _, p := range products {
		switch p.Status {
		case domain.StockLow:
			low++
		case domain.StockOut:
			out++
		}
		value += p.Price * int64(p.Stock)
	}
	return c.JSON(fiber.Map{
		"items":      products,
		"totalItems": len(products),
		"lowStock":   low,
		"outOfStock": out,
		"stockValue": value,
	})
}

// Adjust applies a bounded delta to one product's stock.
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	var body struct {
		Delta *int `json:"delta"`
	}
	if err := c.BodyParser(&body); err != nil || body.Delta == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing delta"})
	}
	delta := *body.Delta
	if delta < -1000 || delta > 1000 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "delta out of range"})
	}
	p, err := h.Stock.Adjust(id, delta)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
		}
		applog.Error(c, "stock.adjust.error", err, map[string]any{"product": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	applog.Audit(c, "stock.adjust", map[string]any{"product": id, "delta": delta, "stock": p.Stock, "status": p.Status})
	return c.JSON(p)
}

// SetMinStock changes the low-stock threshold for one product.
func (h *StockHandler) SetMinStock(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	var body struct {
		MinStock *int `json:"minStock"`
	}
	if err := c.BodyParser(&body); err != nil || body.MinStock == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing minStock"})
	}
	p, err := h.Stock.SetMinStock(id, *body.MinStock)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	applog.Audit(c, "stock.minstock", map[string]any{"product": id, "minStock": p.MinStock})
	return c.JSON(p)
}
