package controllers

import (
	"context"

	bleve_repositories "jobcard-backend/bleve/repositories"
	"jobcard-backend/config"
	"jobcard-backend/customers/repositories"
	"jobcard-backend/customers/services"
	"jobcard-backend/db/models"
	"jobcard-backend/utils"
	"jobcard-backend/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const customersResource = "customers"

type CustomerController struct {
	CustomerRepo repositories.CustomerRepository
	Ctx          context.Context
	Redis        *redis.Client
	Hub          *websocket.Hub
	BleveRepo    bleve_repositories.BleveRepositoryInterface
}

func (cc *CustomerController) CreateCustomerController(c *fiber.Ctx) error {
	var customer models.Customer

	if err := c.BodyParser(&customer); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
			"error":   err.Error(),
		})
	}

	if validationError := services.ValidateCustomer(&customer); validationError != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   validationError,
		})
	}

	created, err := cc.CustomerRepo.CreateCustomer(&customer)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create customer",
			"error":   err.Error(),
		})
	}

	cc.afterCustomerWrite(created, websocket.EventCustomerCreated)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": created,
	})
}

// afterCustomerWrite mirrors the job-card write fan-out for customers.
func (cc *CustomerController) afterCustomerWrite(customer *models.Customer, eventType websocket.EventType) {
	record := *customer
	go func() {
		if err := cc.BleveRepo.IndexCustomer(record); err != nil {
			config.Logger.Warn("Customer indexing failed",
				zap.String("customerID", record.ID.String()),
				zap.Error(err))
		}
	}()

	utils.InvalidateCacheAsync(cc.Redis, customersResource)

	cc.Hub.Broadcast(websocket.Event{
		Type:    eventType,
		Topic:   websocket.TopicCustomers,
		Payload: record,
	})
}
