package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "campos/internal/log"
	"campos/internal/services"
	"campos/internal/validate"
)

type CategoryHandler struct {
	Catalog *services.CatalogService
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": h.Catalog.Categories()})
}

func (h *CategoryHandler) Add(c *fiber.Ctx) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	name, ok := validate.Name(body.Name)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid category name"})
	}
	cat, err := h.Catalog.AddCategory(name)
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	applog.Audit(c, "category.add", map[string]any{"id": cat.ID})
	return c.Status(fiber.StatusCreated).JSON(cat)
}

func (h *CategoryHandler) Rename(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid category id"})
	}
	var body struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	name, okName := validate.Name(body.Name)
	if !okName {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid category name"})
	}
	if err := h.Catalog.RenameCategory(id, name); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "category not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	applog.Audit(c, "category.rename", map[string]any{"id": id})
	return c.JSON(fiber.Map{"ok": true})
}

func (h *CategoryHandler) Remove(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid category id"})
	}
	if err := h.Catalog.RemoveCategory(id); err != nil {
		switch {
		case errors.Is(err, services.ErrCategoryInUse):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "category still has products"})
		case errors.Is(err, services.ErrCategoryNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "category not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	applog.Audit(c, "category.remove", map[string]any{"id": id})
	return c.JSON(fiber.Map{"ok": true})
}
