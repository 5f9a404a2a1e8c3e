package routes

import (
	"github.com/gofiber/fiber/v2"

	"optica-backend/controllers"
	"optica-backend/middlewares"
)

// Register wires all HTTP routes.
func Register(app *fiber.App) {
	api := app.Group("/api")

	// Idempotency guard FIRST (not tied to the request TX)
	api.Use(middlewares.Idempotency())

	// Then the per-request transaction (commits/rolls back around the handler)
	api.Use(middlewares.RequestTx())

	// Clients
	api.Post("/client", controllers.CreateClient)
	api.Get("/clients", controllers.GetClients)
	api.Get("/client/:id", controllers.GetClient)
	api.Put("/client/:id", controllers.UpdateClient)
	api.Delete("/client/:id", controllers.DeleteClient)

	// Products (catalog + stock adjustments)
	api.Post("/product", controllers.CreateProduct)
	api.Get("/products", controllers.GetProducts)
	api.Get("/product/:id", controllers.GetProduct)
	api.Put("/product/:id", controllers.UpdateProduct)
	api.Patch("/product/:id/stock", controllers.AdjustStock)

	// Sales (POS checkout; create-only)
	api.Post("/sale", controllers.CreateSale)
	api.Get("/sales", controllers.GetSales)
	api.Get("/sale/:id", controllers.GetSale)

	// Derived metrics
	api.Get("/dashboard", controllers.GetDashboard)
	api.Get("/reports", controllers.GetReport)
}
