package routes

import (
	"jobcard-backend/sessions/controllers"

	"github.com/gofiber/fiber/v2"
)

func InitSessionRoutes(app *fiber.App, sessionController *controllers.SessionController) {
	api := app.Group("/api/v1")

	api.Post("/sessions", sessionController.CreateSessionController)
	api.Delete("/sessions", sessionController.DeleteSessionController)
}
