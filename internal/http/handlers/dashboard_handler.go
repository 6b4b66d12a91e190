package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "campos/internal/log"
	"campos/internal/repos"
	"campos/internal/services"
)

type DashboardHandler struct {
	Txns  *repos.TransactionRepo
	Order *services.OrderService
}

// Overview returns the dashboard datasets: the stats strip, the monthly
// revenue series and the category breakdown. Chart drawing is the client's
// concern; this only ships numbers.
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	summary, err := h.Txns.Summarize()
	if err != nil {
		applog.Error(c, "dashboard.summary.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load dashboard"})
	}
	monthly, err := h.Txns.MonthlyRevenue()
	if err != nil {
		applog.Error(c, "dashboard.monthly.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load dashboard"})
	}
	categories, err := h.Txns.CategorySales()
	if err != nil {
		applog.Error(c, "dashboard.categories.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load dashboard"})
	}
	return c.JSON(fiber.Map{
		"summary":    summary,
		"monthly":    monthly,
		"categories": categories,
		"running":    h.Order.FinancialSummary(),
	})
}
