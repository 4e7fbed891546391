package controllers

import (
	"errors"

	"jobcard-backend/jobcards/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (jc *JobCardController) GetJobCardController(c *fiber.Ctx) error {
	jobCardID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid job card id",
			"error":   err.Error(),
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

	// shape=form returns the flattened edit-screen representation, with
	// checklists synthesized for records that predate them.
	if c.Query("shape") == "form" {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"data": services.FormFromJobCard(jobCard),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": jobCard,
	})
}
