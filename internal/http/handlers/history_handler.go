package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "campos/internal/log"
	"campos/internal/repos"
	"campos/internal/validate"
)

type HistoryHandler struct {
	Txns *repos.TransactionRepo
}

// List returns transaction history narrowed by the query parameters.
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	f := repos.ListFilter{
		Limit:  c.QueryInt("limit", 50),
		Offset: c.QueryInt("offset", 0),
	}
	if rawQ := c.Query("q"); strings.TrimSpace(rawQ) != "" {
		q, ok := validate.Q(rawQ)
		if !ok {
			applog.Warn(c, "validation.fail", map[string]any{"field": "q"})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "enter a valid keyword"})
		}
		f.Query = strings.ToLower(q)
	}
	switch status := strings.ToUpper(strings.TrimSpace(c.Query("status"))); status {
	case "", "COMPLETED", "REFUNDED":
		f.Status = status
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid status filter"})
	}
	if v := c.Query("from"); v != "" {
		d, ok := validate.Date(v)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid from date"})
		}
		f.DateFrom = d
	}
	if v := c.Query("to"); v != "" {
		d, ok := validate.Date(v)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid to date"})
		}
		f.DateTo = d
	}

	txns, err := h.Txns.List(f)
	if err != nil {
		applog.Error(c, "history.list.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load history"})
	}
	return c.JSON(fiber.Map{"transactions": txns, "count": len(txns)})
}

// Detail returns one transaction with its line items.
func (h *HistoryHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid transaction id"})
	}
	t, err := h.Txns.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "transaction not found"})
	}
	items, err := h.Txns.Items(id)
	if err != nil {
		applog.Error(c, "history.detail.error", err, map[string]any{"transaction": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load transaction"})
	}
	return c.JSON(fiber.Map{"transaction": t, "items": items})
}
