package controllers

import (
	"jobcard-backend/bleve/repositories"
	"jobcard-backend/config"

	"github.com/blevesearch/bleve/v2"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SearchController struct {
	repo *repositories.BleveRepository
}

func NewSearchController(repo *repositories.BleveRepository) *SearchController {
	return &SearchController{repo: repo}
}

// SearchJobCardsController serves free-text search over the job-card index.
func (sc *SearchController) SearchJobCardsController(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing search query",
			"error":   "q parameter is required",
		})
	}

	result, err := sc.repo.SearchJobCards(q)
	if err != nil {
		config.Logger.Error("Job card search failed", zap.Error(err), zap.String("query", q))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Search failed",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(searchResponse(result))
}

// SearchCustomersController serves free-text search over the customer index.
func (sc *SearchController) SearchCustomersController(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing search query",
			"error":   "q parameter is required",
		})
	}

	result, err := sc.repo.SearchCustomers(q)
	if err != nil {
		config.Logger.Error("Customer search failed", zap.Error(err), zap.String("query", q))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Search failed",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(searchResponse(result))
}

func searchResponse(result *bleve.SearchResult) fiber.Map {
	hits := make([]fiber.Map, 0, len(result.Hits))
	for _, hit := range result.Hits {
		hits = append(hits, fiber.Map{
			"id":     hit.ID,
			"score":  hit.Score,
			"fields": hit.Fields,
		})
	}
	return fiber.Map{
		"total": result.Total,
		"hits":  hits,
	}
}
