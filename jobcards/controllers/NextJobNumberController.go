package controllers

import (
	"jobcard-backend/jobcards/services"

	"github.com/gofiber/fiber/v2"
)

// NextJobNumberController previews the number a new card would get for a
// year and month. The preview is not a reservation; creation still goes
// through the unique index.
func (jc *JobCardController) NextJobNumberController(c *fiber.Ctx) error {
	year := c.Query("year")
	month := c.Query("month")

	if len(year) != 4 || len(month) != 2 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid period",
			"error":   "year must be 4 digits and month 2 digits, e.g. ?year=2026&month=08",
		})
	}

	sequence := services.NextJobSequence(jc.JobCardRepo, year, month)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"job_year":     year,
		"job_month":    month,
		"job_sequence": sequence,
		"job_number":   services.FormatJobNumber(year, month, sequence),
	})
}
