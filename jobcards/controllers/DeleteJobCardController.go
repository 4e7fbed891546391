package controllers

import (
	"errors"

	"jobcard-backend/utils"
	"jobcard-backend/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (jc *JobCardController) DeleteJobCardController(c *fiber.Ctx) error {
	jobCardID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid job card id",
			"error":   err.Error(),
		})
	}

	if err := jc.JobCardRepo.DeleteJobCard(jobCardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Job card not found",
				"error":   "no job card with id " + jobCardID.String(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to delete job card",
			"error":   err.Error(),
		})
	}

	go jc.BleveRepo.DeleteJobCard(jobCardID.String())
	utils.InvalidateCacheAsync(jc.Redis, jobCardsResource)

	jc.Hub.Broadcast(websocket.Event{
		Type:    websocket.EventJobCardDeleted,
		Topic:   websocket.TopicJobCards,
		Payload: fiber.Map{"id": jobCardID.String()},
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Job card deleted successfully",
	})
}
