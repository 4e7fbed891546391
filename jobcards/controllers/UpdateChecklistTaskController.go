package controllers

import (
	"errors"

	"jobcard-backend/db/models"
	"jobcard-backend/jobcards/services"
	"jobcard-backend/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type checklistTaskRequest struct {
	Status      *string  `json:"status"`
	Description *string  `json:"description"`
	DoneBy      *string  `json:"done_by"`
	Hours       *float64 `json:"hours"`
	UpdatedBy   *string  `json:"updated_by"`
}

// UpdateChecklistTaskController mutates one task on one of a card's
// checklists, addressed by list name and position. Sending a status applies
// the tri-state toggle; the other fields are plain overwrites.
func (jc *JobCardController) UpdateChecklistTaskController(c *fiber.Ctx) error {
	jobCardID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid job card id",
			"error":   err.Error(),
		})
	}
	list := c.Params("list")
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid task index",
			"error":   err.Error(),
		})
	}

	var req checklistTaskRequest
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

	if err := applyTaskUpdate(jobCard, list, index, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid task update",
			"error":   err.Error(),
		})
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

	jc.afterJobCardWrite(updated, websocket.EventJobCardUpdated)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": updated,
	})
}

func applyTaskUpdate(jobCard *models.JobCard, list string, index int, req *checklistTaskRequest) error {
	switch list {
	case "service":
		doc := jobCard.ServiceProgress.Data()
		if err := mutateTask(doc.Tasks, index, req); err != nil {
			return err
		}
		jobCard.ServiceProgress = datatypes.NewJSONType(doc)
	case "trailer":
		doc := jobCard.TrailerProgress.Data()
		if err := mutateTask(doc.Tasks, index, req); err != nil {
			return err
		}
		jobCard.TrailerProgress = datatypes.NewJSONType(doc)
	case "other":
		doc := jobCard.OtherProgress.Data()
		if err := mutateTask(doc.Tasks, index, req); err != nil {
			return err
		}
		jobCard.OtherProgress = datatypes.NewJSONType(doc)
	default:
		return errors.New("unknown checklist: " + list)
	}
	return nil
}

func mutateTask(tasks []models.ServiceTask, index int, req *checklistTaskRequest) error {
	if index < 0 || index >= len(tasks) {
		return services.ErrTaskIndexOutOfRange
	}
	if req.Status != nil {
		if err := services.ToggleTaskStatus(tasks, index, models.TaskStatus(*req.Status)); err != nil {
			return err
		}
	}
	if req.Description != nil {
		tasks[index].Description = *req.Description
	}
	if req.DoneBy != nil {
		tasks[index].DoneBy = *req.DoneBy
	}
	if req.Hours != nil {
		tasks[index].Hours = req.Hours
	}
	return nil
}
