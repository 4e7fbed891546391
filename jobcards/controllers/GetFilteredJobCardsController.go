package controllers

import (
	"encoding/json"
	"time"

	"jobcard-backend/config"
	"jobcard-backend/utils"
	"jobcard-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const jobCardsCacheTTL = 5 * time.Minute

// GetFilteredJobCardsController serves the dashboard listing. Pages are cached
// in Redis keyed by the full filter set; every write invalidates the cache.
func (jc *JobCardController) GetFilteredJobCardsController(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid pagination parameters",
			"error":   err.Error(),
		})
	}

	cacheKey := utils.GenerateCacheKey(jobCardsResource, params.Filters, params.Page, params.PageSize)
	if cached, err := utils.GetCachedResponse(jc.Ctx, jc.Redis, cacheKey); err == nil {
		c.Set("Content-Type", "application/json")
		return c.Status(fiber.StatusOK).SendString(cached)
	} else if err != redis.Nil {
		config.Logger.Warn("Job card cache read failed", zap.Error(err))
	}

	offset := (params.Page - 1) * params.PageSize
	jobCards, total, err := jc.JobCardRepo.GetFilteredJobCards(params.PageSize, offset, params.Filters)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch job cards",
			"error":   err.Error(),
		})
	}

	response := pagination.NewPaginatedResponse(c, jobCards, total, params)

	if body, err := json.Marshal(response); err == nil {
		if err := utils.CacheResponse(jc.Ctx, jc.Redis, cacheKey, string(body), jobCardsCacheTTL); err != nil {
			config.Logger.Warn("Job card cache write failed", zap.Error(err))
		}
	}

	return c.Status(fiber.StatusOK).JSON(response)
}
