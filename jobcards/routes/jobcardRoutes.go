package routes

import (
	"jobcard-backend/jobcards/controllers"
	"jobcard-backend/middleware"
	"jobcard-backend/token"

	"github.com/gofiber/fiber/v2"
)

func InitJobCardRoutes(app *fiber.App, jobCardController *controllers.JobCardController, tokenMaker token.Maker) {
	api := app.Group("/api/v1", middleware.ProtectedRoute(tokenMaker))

	api.Post("/jobcards", jobCardController.CreateJobCardController)
	api.Get("/jobcards", jobCardController.GetFilteredJobCardsController)
	api.Get("/jobcards/next-number", jobCardController.NextJobNumberController)
	api.Get("/jobcards/export", jobCardController.ExportJobCardsController)
	api.Get("/jobcards/:id", jobCardController.GetJobCardController)
	api.Put("/jobcards/:id", jobCardController.UpdateJobCardController)
	api.Patch("/jobcards/:id/flags", jobCardController.UpdateJobCardFlagsController)
	api.Patch("/jobcards/:id/checklists/:list/tasks/:index", jobCardController.UpdateChecklistTaskController)
	api.Delete("/jobcards/:id", jobCardController.DeleteJobCardController)
}
