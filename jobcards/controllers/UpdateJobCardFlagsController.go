package controllers

import (
	"errors"
	"time"

	"jobcard-backend/config"
	"jobcard-backend/db/models"
	"jobcard-backend/tasks"
	"jobcard-backend/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type jobCardFlagsRequest struct {
	IsArchived               *bool   `json:"is_archived"`
	PaymentStatus            *string `json:"payment_status"`
	IsWorkerAssignedComplete *bool   `json:"is_worker_assigned_complete"`
	IsPartsAssignedComplete  *bool   `json:"is_parts_assigned_complete"`
	UpdatedBy                *string `json:"updated_by"`
}

// UpdateJobCardFlagsController flips the lightweight state flags without
// touching the rest of the card. Archiving a card with a customer email on
// file queues the completion notice.
func (jc *JobCardController) UpdateJobCardFlagsController(c *fiber.Ctx) error {
	jobCardID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid job card id",
			"error":   err.Error(),
		})
	}

	var req jobCardFlagsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
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

	wasArchived := jobCard.IsArchived

	if req.PaymentStatus != nil {
		status := models.PaymentStatus(*req.PaymentStatus)
		if status != models.PaidPayment && status != models.UnpaidPayment {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"error":   "payment_status must be 'paid' or 'unpaid'",
			})
		}
		jobCard.PaymentStatus = status
	}
	if req.IsWorkerAssignedComplete != nil {
		jobCard.IsWorkerAssignedComplete = *req.IsWorkerAssignedComplete
	}
	if req.IsPartsAssignedComplete != nil {
		jobCard.IsPartsAssignedComplete = *req.IsPartsAssignedComplete
	}
	if req.IsArchived != nil {
		jobCard.IsArchived = *req.IsArchived
		if *req.IsArchived && jobCard.CompletedDate == nil {
			now := time.Now()
			jobCard.CompletedDate = &now
		}
	}
	if req.UpdatedBy != nil {
		jobCard.UpdatedBy = req.UpdatedBy
	}

	updated, err := jc.JobCardRepo.UpdateJobCard(jobCard)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update job card",
			"error":   err.Error(),
		})
	}

	if !wasArchived && updated.IsArchived {
		jc.enqueueCompletionEmail(updated)
	}

	jc.afterJobCardWrite(updated, websocket.EventJobCardUpdated)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": updated,
	})
}

func (jc *JobCardController) enqueueCompletionEmail(jobCard *models.JobCard) {
	if jobCard.CustomerEmail == nil || *jobCard.CustomerEmail == "" {
		return
	}

	task, err := tasks.NewCompletionEmailTask(tasks.CompletionEmailPayload{
		JobNumber:     jobCard.JobNumber,
		CustomerName:  jobCard.CustomerName,
		CustomerEmail: *jobCard.CustomerEmail,
		GrandTotal:    jobCard.GrandTotal.StringFixed(2),
	})
	if err != nil {
		config.Logger.Error("Failed to build completion email task",
			zap.String("jobNumber", jobCard.JobNumber),
			zap.Error(err))
		return
	}

	if _, err := jc.AsynqClient.Enqueue(task); err != nil {
		config.Logger.Error("Failed to enqueue completion email",
			zap.String("jobNumber", jobCard.JobNumber),
			zap.Error(err))
	}
}
