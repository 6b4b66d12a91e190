package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"campos/internal/config"
	"campos/internal/http/handlers"
	"campos/internal/kv"
	applog "campos/internal/log"
	"campos/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Key-value persistence: Redis when configured and reachable, the
	// app database otherwise. Never fatal — worst case is in-memory only.
	var store kv.Store = kv.NewSQLite(db)
	if cfg.RedisAddr != "" {
		if r, err := kv.NewRedis(cfg.RedisAddr); err != nil {
			log.Printf("[kv] redis %s unavailable, using sqlite: %v", cfg.RedisAddr, err)
		} else {
			store = r
		}
	}

	// Templates (receipts) & app
	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and answer without leaking internals
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Something went wrong. Please try again.",
			})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, cfg, store)

	api := app.Group("/api/v1")

	// Catalog
	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/:id", deps.ProductHandler.Detail)
	api.Get("/categories", deps.CategoryHandler.List)
	api.Post("/categories", deps.CategoryHandler.Add)
	api.Put("/categories/:id", deps.CategoryHandler.Rename)
	api.Delete("/categories/:id", deps.CategoryHandler.Remove)

	// Order in progress
	api.Get("/cart", deps.CartHandler.View)
	api.Post("/cart", deps.CartHandler.Add)
	api.Put("/cart/:productId", deps.CartHandler.SetQuantity)
	api.Delete("/cart", deps.CartHandler.Clear)
	api.Post("/checkout", deps.OrderHandler.Place)

	// Stock
	api.Get("/stock", deps.StockHandler.List)
	api.Post("/stock/:id/adjust", deps.StockHandler.Adjust)
	api.Put("/stock/:id/min", deps.StockHandler.SetMinStock)

	// History & dashboard
	api.Get("/transactions", deps.HistoryHandler.List)
	api.Get("/transactions/:id", deps.HistoryHandler.Detail)
	api.Post("/transactions/:id/refund", deps.OrderHandler.Refund)
	api.Get("/dashboard", deps.DashboardHandler.Overview)

	// Settings & cashiers
	api.Get("/settings", deps.SettingsHandler.Get)
	api.Put("/settings", deps.SettingsHandler.Update)
	api.Get("/cashiers", deps.SettingsHandler.ListCashiers)
	api.Post("/cashiers", deps.SettingsHandler.AddCashier)
	api.Post("/cashiers/verify", deps.SettingsHandler.VerifyCashier)
	api.Delete("/cashiers/:id", deps.SettingsHandler.DeactivateCashier)

	// Printable receipt
	app.Get("/transactions/:id/receipt", deps.OrderHandler.Receipt)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
