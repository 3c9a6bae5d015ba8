package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	corsAllowHeaders = "authorization, x-client-info, apikey, content-type"
	corsAllowMethods = "GET, POST, OPTIONS, PUT, DELETE"
)

type AppOptions struct {
	CORSOrigins []string
	// Gatherer backs GET /metrics; nil disables the endpoint.
	Gatherer prometheus.Gatherer
}

func NewApp(handler *Handler, options AppOptions) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "daystreak",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: contextRequestIDKey,
	}))
	app.Use(handler.AccessLog)
	app.Use(Metrics)
	app.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins(options.CORSOrigins),
		AllowHeaders: corsAllowHeaders,
		AllowMethods: corsAllowMethods,
	}))

	RegisterRoutes(app, handler, options.Gatherer)
	return app
}

func corsOrigins(origins []string) string {
	cleaned := make([]string, 0, len(origins))
	for _, origin := range origins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) == 0 {
		return "*"
	}
	return strings.Join(cleaned, ",")
}
