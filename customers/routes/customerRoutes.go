package routes

import (
	"jobcard-backend/customers/controllers"
	"jobcard-backend/middleware"
	"jobcard-backend/token"

	"github.com/gofiber/fiber/v2"
)

func InitCustomerRoutes(app *fiber.App, customerController *controllers.CustomerController, tokenMaker token.Maker) {
	api := app.Group("/api/v1", middleware.ProtectedRoute(tokenMaker))

	api.Post("/customers", customerController.CreateCustomerController)
	api.Get("/customers", customerController.GetFilteredCustomersController)
	api.Get("/customers/:id", customerController.GetCustomerController)
	api.Put("/customers/:id", customerController.UpdateCustomerController)
	api.Delete("/customers/:id", customerController.DeleteCustomerController)
}
