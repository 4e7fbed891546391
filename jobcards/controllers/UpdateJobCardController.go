package controllers

import (
	"errors"

	"jobcard-backend/jobcards/services"
	"jobcard-backend/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (jc *JobCardController) UpdateJobCardController(c *fiber.Ctx) error {
	jobCardID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid job card id",
			"error":   err.Error(),
		})
	}

	var form services.JobCardForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
			"error":   err.Error(),
		})
	}

	if validationError := services.ValidateJobCardForm(&form); validationError != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   validationError,
		})
	}

	jobCard, err := jc.JobCardRepo.GetJobCardByID(jobCardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Job card not found",
				"error":   "no job card with id " + jobCardID.String(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch job card",
			"error":   err.Error(),
		})
	}

	// The composed identity fields never change after creation. Editing a
	// wrong month means archiving the card and raising a new one.
	if err := services.ApplyFormToJobCard(&form, jobCard); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid job card data",
			"error":   err.Error(),
		})
	}

	updated, err := jc.JobCardRepo.UpdateJobCard(jobCard)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update job card",
			"error":   err.Error(),
		})
	}

	jc.afterJobCardWrite(updated, websocket.EventJobCardUpdated)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": updated,
	})
}
