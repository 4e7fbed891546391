package controllers

import (
	"errors"

	"jobcard-backend/utils"
	"jobcard-backend/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (cc *CustomerController) DeleteCustomerController(c *fiber.Ctx) error {
	customerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid customer id",
			"error":   err.Error(),
		})
	}

	if err := cc.CustomerRepo.DeleteCustomer(customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Customer not found",
				"error":   "no customer with id " + customerID.String(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to delete customer",
			"error":   err.Error(),
		})
	}

	go cc.BleveRepo.DeleteCustomer(customerID.String())
	utils.InvalidateCacheAsync(cc.Redis, customersResource)

	cc.Hub.Broadcast(websocket.Event{
		Type:    websocket.EventCustomerDeleted,
		Topic:   websocket.TopicCustomers,
		Payload: fiber.Map{"id": customerID.String()},
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Customer deleted successfully",
	})
}
