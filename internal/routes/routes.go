package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/okapibank/teller/internal/account"
	"github.com/okapibank/teller/internal/card"
	"github.com/okapibank/teller/internal/config"
	"github.com/okapibank/teller/internal/middleware"
	"github.com/okapibank/teller/internal/receipt"
	"github.com/okapibank/teller/internal/session"
	"github.com/okapibank/teller/internal/teller"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes. The account
// directory is seeded here and owned by the wired services; no package
// holds ambient state.
func Setup(app *fiber.App, d Deps) error {
	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	// Health
	RegisterHealthRoutes(app, d)

	// Services and handlers
	directory := account.NewDirectory()
	gen := card.NewRandomGenerator(time.Now().UnixNano())
	if err := account.Seed(directory, gen); err != nil {
		return fmt.Errorf("seed directory: %w", err)
	}

	sessions := session.NewManager(directory, d.Cfg.SessionTTL)
	printer := receipt.NewLogPrinter(d.Logger)
	tellerSvc := teller.NewService(sessions, printer)
	tellerHandler := teller.NewHandler(tellerSvc, d.Cfg.HistoryLimit)

	// API routes
	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals(middleware.RequestIDHeader).(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	rateLimiter := middleware.LoginRateLimit(d.Cache, 5)
	RegisterTellerRoutes(api, tellerHandler, rateLimiter)

	return nil
}
