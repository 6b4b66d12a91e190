package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	applog "campos/internal/log"
	"campos/internal/repos"
	"campos/internal/services"
	"campos/internal/validate"
)

type SettingsHandler struct {
	Settings *services.SettingsService
}

func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.Settings.Get())
}

// Update replaces the store profile wholesale.
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var body struct {
		StoreName string `json:"storeName"`
		Address   string `json:"address"`
		Currency  string `json:"currency"`
		TaxRate   string `json:"taxRate"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	rate, err := decimal.NewFromString(body.TaxRate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid tax rate"})
	}
	next := services.StoreSettings{
		StoreName: body.StoreName,
		Address:   body.Address,
		Currency:  body.Currency,
		TaxRate:   rate,
	}
	if err := h.Settings.Update(next); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	applog.Audit(c, "settings.update", map[string]any{"taxRate": rate.String()})
	return c.JSON(h.Settings.Get())
}

func (h *SettingsHandler) ListCashiers(c *fiber.Ctx) error {
	cashiers, err := h.Settings.ListCashiers()
	if err != nil {
		applog.Error(c, "cashiers.list.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load cashiers"})
	}
	return c.JSON(fiber.Map{"cashiers": cashiers})
}

func (h *SettingsHandler) AddCashier(c *fiber.Ctx) error {
	var body struct {
		Name string `json:"name"`
		PIN  string `json:"pin"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	name, ok := validate.Name(body.Name)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid cashier name"})
	}
	if !validate.PIN(body.PIN) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "PIN must be 4-6 digits"})
	}
	cashier, err := h.Settings.AddCashier(name, body.PIN)
	if err != nil {
		if errors.Is(err, repos.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "cashier name already taken"})
		}
		applog.Error(c, "cashier.add.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not add cashier"})
	}
	applog.Audit(c, "cashier.add", map[string]any{"id": cashier.ID})
	return c.Status(fiber.StatusCreated).JSON(cashier)
}

// VerifyCashier checks a name/PIN pair at the register before a cashier
// switch. It identifies who rings up sales; it grants nothing.
func (h *SettingsHandler) VerifyCashier(c *fiber.Ctx) error {
	var body struct {
		Name string `json:"name"`
		PIN  string `json:"pin"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	name, ok := validate.Name(body.Name)
	if !ok || !validate.PIN(body.PIN) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cashier name and a 4-6 digit PIN required"})
	}
	if !h.Settings.VerifyPIN(name, body.PIN) {
		applog.Warn(c, "cashier.verify.fail", map[string]any{"name": name})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "cashier name or PIN incorrect"})
	}
	applog.Audit(c, "cashier.verify", map[string]any{"name": name})
	return c.JSON(fiber.Map{"ok": true, "name": name})
}

func (h *SettingsHandler) DeactivateCashier(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid cashier id"})
	}
	if err := h.Settings.DeactivateCashier(id); err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "cashier not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	applog.Audit(c, "cashier.deactivate", map[string]any{"id": id})
	return c.JSON(fiber.Map{"ok": true})
}
