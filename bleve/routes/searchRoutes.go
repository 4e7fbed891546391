package routes

import (
	"jobcard-backend/bleve/controllers"
	"jobcard-backend/middleware"
	"jobcard-backend/token"

	"github.com/gofiber/fiber/v2"
)

func InitSearchRoutes(app *fiber.App, searchController *controllers.SearchController, tokenMaker token.Maker) {
	api := app.Group("/api/v1", middleware.ProtectedRoute(tokenMaker))

	api.Get("/search/jobcards", searchController.SearchJobCardsController)
	api.Get("/search/customers", searchController.SearchCustomersController)
}
