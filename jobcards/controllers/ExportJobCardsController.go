package controllers

import (
	"jobcard-backend/utils"
	"jobcard-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
)

// ExportJobCardsController writes every card matching the current filters to
// an Excel workbook and serves it as a download. The file lands in the public
// export directory and the nightly cleanup removes it later.
func (jc *JobCardController) ExportJobCardsController(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)

	jobCards, err := jc.JobCardRepo.GetAllJobCards(params.Filters)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch job cards",
			"error":   err.Error(),
		})
	}

	filePath, err := utils.GenerateJobCardExcel(jobCards)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to generate export",
			"error":   err.Error(),
		})
	}

	return c.Download(filePath)
}
