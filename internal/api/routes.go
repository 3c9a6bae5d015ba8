package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(app *fiber.App, handler *Handler, gatherer prometheus.Gatherer) {
	app.Get("/healthz", handler.Health)
	if gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	registerAPIRoutes(app, handler)
	app.Use(handler.NotFound)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api", handler.AuthRequired)

	api.Post("/profile", handler.CreateProfile)
	api.Get("/profile/:id", handler.GetUserProfile)

	api.Post("/exercise", handler.CreateExerciseLog)
	api.Get("/exercise/count", handler.CountExerciseLogs)
}
