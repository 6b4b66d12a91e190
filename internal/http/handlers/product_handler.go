package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"campos/internal/domain"
	applog "campos/internal/log"
	"campos/internal/services"
	"campos/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// List returns the catalog filtered by the query parameters. An empty query
// string returns the full catalog in its original order.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	spec := domain.DefaultFilterSpec()

	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		if _, ok := validate.ID(cat); !ok && cat != "all" {
			applog.Warn(c, "validation.fail", map[string]any{"field": "category"})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid category"})
		}
		spec.Category = cat
	}
	if rawQ := c.Query("q"); strings.TrimSpace(rawQ) != "" {
		q, ok := validate.Q(rawQ)
		if !ok {
			applog.Warn(c, "validation.fail", map[string]any{"field": "q", "value": rawQ})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "enter a valid keyword"})
		}
		spec.Search = q
	}
	for _, cond := range splitList(c.Query("condition")) {
		v, ok := validate.Condition(cond)
		if !ok {
			applog.Warn(c, "validation.fail", map[string]any{"field": "condition"})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid condition filter"})
		}
		spec.Conditions = append(spec.Conditions, domain.Condition(v).Display())
	}
	spec.Brands = splitList(c.Query("brands"))
	if v := c.Query("minPrice"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid minPrice"})
		}
		spec.PriceMin = n
	}
	if v := c.Query("maxPrice"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid maxPrice"})
		}
		spec.PriceMax = n
	}
	spec.InStock = c.QueryBool("inStock")
	spec.SortBy = validate.SortKey(c.Query("sort"))

	products := h.Catalog.Filtered(spec)
	return c.JSON(fiber.Map{"products": products, "count": len(products)})
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	p, err := h.Catalog.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	return c.JSON(p)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
