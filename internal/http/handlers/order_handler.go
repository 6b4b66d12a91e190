package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "campos/internal/log"
	"campos/internal/repos"
	"campos/internal/services"
	"campos/internal/validate"
)

type OrderHandler struct {
	Order    *services.OrderService
	Settings *services.SettingsService
	Txns     *repos.TransactionRepo
}

// Place checks out the session's cart. Payment is mocked: the method is
// validated and recorded, nothing is charged.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	sid := c.Cookies("sid")
	if sid == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no active order session"})
	}
	var body struct {
		Customer string `json:"customer"`
		Cashier  string `json:"cashier"`
		Payment  string `json:"payment"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	customer, ok := validate.Name(body.Customer)
	if !ok {
		customer = "Anonymous Customer"
	}
	payment, okPay := validate.PaymentMethod(body.Payment)
	if !okPay {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "select a valid payment method"})
	}

	t, err := h.Order.Place(sid, customer, body.Cashier, payment)
	if err != nil {
		if errors.Is(err, services.ErrCartEmpty) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cart is empty"})
		}
		applog.Error(c, "checkout.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not place order"})
	}
	applog.Audit(c, "checkout.placed", map[string]any{"transaction": t.ID, "total": t.Total.String(), "payment": payment})
	return c.Status(fiber.StatusCreated).JSON(t)
}

// Refund reverses a completed transaction in history.
func (h *OrderHandler) Refund(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid transaction id"})
	}
	t, err := h.Order.Refund(id)
	if err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "transaction not found"})
		}
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	applog.Audit(c, "transaction.refund", map[string]any{"transaction": id})
	return c.JSON(t)
}

// Receipt renders a printable HTML receipt for a recorded transaction.
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("invalid transaction id")
	}
	t, err := h.Txns.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("transaction not found")
	}
	items, err := h.Txns.Items(id)
	if err != nil {
		applog.Error(c, "receipt.error", err, map[string]any{"transaction": id})
		return c.Status(fiber.StatusInternalServerError).SendString("could not load receipt")
	}
	store := h.Settings.Get()
	return c.Render("receipt", fiber.Map{
		"Store":       store,
		"Transaction": t,
		"Items":       items,
	})
}
