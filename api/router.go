package api

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduling-simulator/config"
)

// NewApp wires the HTTP routes onto a fiber app.
func NewApp(cfg *config.SchedulerConfig, logger *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(requestLogger(logger))

	handler := NewSchedulerHandlerImpl(cfg, logger)
	app.Get("/health", handler.Health)

	api := app.Group("/api")
	v1 := api.Group("/v1")
	{
		v1.Get("/algorithms", handler.Algorithms)
		v1.Post("/schedule/:algorithm", handler.Schedule)
		v1.Post("/compare", handler.Compare)
		v1.Post("/generate", handler.Generate)
	}

	return app
}

func requestLogger(logger *slog.Logger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		logger.Debug("http request",
			"method", ctx.Method(),
			"path", ctx.Path(),
			"status", ctx.Response().StatusCode(),
			"duration", time.Since(start),
		)
		return err
	}
}
