package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Farhad0111/YouTube-Script-Writer/internal/handler"
	"github.com/Farhad0111/YouTube-Script-Writer/internal/metrics"
	"github.com/Farhad0111/YouTube-Script-Writer/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Script  *handler.ScriptHandler
	Channel *handler.ChannelHandler
	Health  *handler.HealthHandler

	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware(h.Metrics))

	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	if h.Gatherer != nil {
		app.Get("/metrics", handler.MetricsHandler(h.Gatherer))
	}

	api := app.Group("/api")

	api.Get("/tones", h.Channel.Tones)

	// Channel routes
	api.Get("/channels", h.Channel.GetByRef)
	api.Get("/channels/:channelId", h.Channel.GetByChannelID)

	// Script routes
	api.Post("/scripts", h.Script.Generate)
	api.Post("/scripts/channel", h.Script.GenerateFromChannel)
	api.Get("/scripts", h.Script.List)
	api.Get("/scripts/:id", h.Script.GetByID)
}
