package controllers

import (
	"encoding/json"
	"errors"
	"time"

	"jobcard-backend/config"
	"jobcard-backend/utils"
	"jobcard-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const customersCacheTTL = 5 * time.Minute

func (cc *CustomerController) GetCustomerController(c *fiber.Ctx) error {
	customerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid customer id",
			"error":   err.Error(),
		})
	}

	customer, err := cc.CustomerRepo.GetCustomerByID(customerID)
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

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": customer,
	})
}

// GetFilteredCustomersController serves the customer picker and admin list,
// cached the same way as the job-card listing.
func (cc *CustomerController) GetFilteredCustomersController(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid pagination parameters",
			"error":   err.Error(),
		})
	}

	cacheKey := utils.GenerateCacheKey(customersResource, params.Filters, params.Page, params.PageSize)
	if cached, err := utils.GetCachedResponse(cc.Ctx, cc.Redis, cacheKey); err == nil {
		c.Set("Content-Type", "application/json")
		return c.Status(fiber.StatusOK).SendString(cached)
	} else if err != redis.Nil {
		config.Logger.Warn("Customer cache read failed", zap.Error(err))
	}

	offset := (params.Page - 1) * params.PageSize
	customers, total, err := cc.CustomerRepo.GetFilteredCustomers(params.PageSize, offset, params.Filters)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch customers",
			"error":   err.Error(),
		})
	}

	response := pagination.NewPaginatedResponse(c, customers, total, params)

	if body, err := json.Marshal(response); err == nil {
		if err := utils.CacheResponse(cc.Ctx, cc.Redis, cacheKey, string(body), customersCacheTTL); err != nil {
			config.Logger.Warn("Customer cache write failed", zap.Error(err))
		}
	}

	return c.Status(fiber.StatusOK).JSON(response)
}
