package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dkuznetsov13/enginehealth/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App,
	auth *handlers.AuthHandler,
	predict *handlers.PredictHandler,
	predictions *handlers.PredictionsHandler,
	history *handlers.HistoryHandler,
	health *handlers.HealthHandler,
	authMW fiber.Handler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	// Open inference and dataset pass-through
	v1.Post("/predict", predict.Predict)
	v1.Get("/historical-data", history.Get)

	// Persisted predictions require a valid bearer token
	p := v1.Group("/predictions", authMW)
	p.Post("/create", predictions.Create)
	p.Get("/", predictions.List)
}
