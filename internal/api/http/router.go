package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rumman321/e-Commerce-server/internal/api/http/handlers"
	"github.com/rumman321/e-Commerce-server/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Users     *handlers.UsersHandler
	Session   *handlers.SessionHandler
	Plants    *handlers.PlantsHandler
	Orders    *handlers.OrdersHandler
	Sessions  *auth.SessionMiddleware
	Authority *auth.RoleAuthority
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	requireSession := cfg.Sessions.Handle
	requireAdmin := auth.RequireAdmin(cfg.Authority)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello from plantNet Server..")
	})
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/users/:email", cfg.Users.Upsert)
	app.Patch("/users/:email", cfg.Users.RequestRoleUpgrade)
	app.Get("/all-users/:email", requireSession, requireAdmin, cfg.Users.ListOthers)
	app.Patch("/user/role/:email", requireSession, requireAdmin, cfg.Users.SetRole)
	app.Get("/users/role/:email", cfg.Users.GetRole)

	app.Post("/jwt", cfg.Session.Issue)
	app.Get("/logout", cfg.Session.Logout)

	app.Post("/plants", requireSession, cfg.Plants.Create)
	app.Get("/plants", cfg.Plants.List)
	app.Get("/plants/:id", cfg.Plants.Get)
	app.Patch("/plants/quantity/:id", requireSession, cfg.Plants.AdjustQuantity)

	app.Post("/order", requireSession, cfg.Orders.Create)
	app.Get("/customer-orders/:email", requireSession, cfg.Orders.ListForCustomer)
	app.Delete("/order/:id", requireSession, cfg.Orders.Cancel)
}
