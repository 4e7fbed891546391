package controllers

import (
	"errors"

	"jobcard-backend/customers/services"
	"jobcard-backend/db/models"
	"jobcard-backend/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateCustomerController overwrites a customer record. Job cards raised
// before the edit keep their snapshot; only future cards see the new details.
func (cc *CustomerController) UpdateCustomerController(c *fiber.Ctx) error {
	customerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid customer id",
			"error":   err.Error(),
		})
	}

	existing, err := cc.CustomerRepo.GetCustomerByID(customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Customer not found",
				"error":   "no customer with id " + customerID.String(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch customer",
			"error":   err.Error(),
		})
	}

	var incoming models.Customer
	if err := c.BodyParser(&incoming); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
			"error":   err.Error(),
		})
	}

	incoming.ID = existing.ID
	incoming.CreatedBy = existing.CreatedBy
	incoming.CreatedAt = existing.CreatedAt

	if validationError := services.ValidateCustomer(&incoming); validationError != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   validationError,
		})
	}

	updated, err := cc.CustomerRepo.UpdateCustomer(&incoming)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update customer",
			"error":   err.Error(),
		})
	}

	cc.afterCustomerWrite(updated, websocket.EventCustomerUpdated)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": updated,
	})
}
