package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shift-profile-service/internal/api/http/handlers"
	"github.com/spec-kit/shift-profile-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Profile        *handlers.ProfileHandler
	Provision      *handlers.ProvisionHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. /user/me is registered before /user/:id so
// the literal segment wins.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/token", cfg.Auth.Token)

	app.Get("/user/me", cfg.AuthMiddleware.Handle, cfg.Profile.Me)
	app.Get("/salary/me", cfg.AuthMiddleware.Handle, cfg.Profile.Salary)
	app.Get("/promotion/me", cfg.AuthMiddleware.Handle, cfg.Profile.NextPromotion)

	app.Get("/user/:id", cfg.Profile.ByID)
	app.Post("/user/create", cfg.Profile.Create)

	app.Get("/create_schema", cfg.Provision.CreateSchema)
	app.Get("/load_data", cfg.Provision.LoadData)

	app.Use(notFoundHandler)
}

func notFoundHandler(c *fiber.Ctx) error {
	return c.Status(http.StatusNotFound).JSON(fiber.Map{
		"message": "Resource Not Found",
	})
}
