package handlers

import (
	"packcatalog/internal/config"
	"packcatalog/internal/log"
	"packcatalog/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// NewApp builds the fiber application with every route mounted.
func NewApp(d *Deps, cfg config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "packcatalog",
		Views:        Views(),
		ErrorHandler: ErrorHandler,
		BodyLimit:    cfg.BodyLimit,
	})

	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{Output: log.Writer()}))
	app.Use(helmet.New())
	app.Use(metrics.Middleware())
	app.Use(recover.New())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateMax,
		Expiration: cfg.RateWindow,
		Next: func(c *fiber.Ctx) bool {
			p := c.Path()
			return p == "/healthz" || p == "/metrics"
		},
		LimitReached: func(c *fiber.Ctx) error {
			log.Security(c, "rate.global.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"message": "Too many requests. Please slow down."})
		},
	}))
	app.Use(LoadUser(d.Auth))

	app.Get("/healthz", d.Health.Check)
	app.Get("/metrics", metrics.Handler())

	api := app.Group("/api")
	auth := RequireUser()

	api.Get("/products", d.Products.List)
	api.Get("/products/:id", d.Products.Get)
	api.Post("/products", auth, d.Products.Create)
	api.Put("/products/:id", auth, d.Products.Update)
	api.Patch("/products/:id", auth, d.Products.Update)
	api.Delete("/products/:id", auth, d.Products.Delete)

	api.Get("/categories", d.Categories.List)
	api.Post("/categories", auth, d.Categories.Create)
	api.Put("/categories/:id", auth, d.Categories.Update)
	api.Patch("/categories/:id", auth, d.Categories.Update)
	api.Delete("/categories/:id", auth, d.Categories.Delete)

	api.Post("/inquiries", d.Inquiries.Create)
	api.Get("/inquiries", auth, d.Inquiries.List)

	api.Post("/login", limiter.New(limiter.Config{
		Max:        cfg.Auth.LoginRateMax,
		Expiration: cfg.Auth.LoginRateWin,
		LimitReached: func(c *fiber.Ctx) error {
			log.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"message": "Too many login attempts. Please try again later."})
		},
	}), d.AuthH.Login)
	api.Post("/logout", d.AuthH.Logout)
	api.Get("/user", auth, d.AuthH.Me)

	app.Use(NotFound)
	return app
}
