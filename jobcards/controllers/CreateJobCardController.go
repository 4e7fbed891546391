package controllers

import (
	"context"
	"errors"

	bleve_repositories "jobcard-backend/bleve/repositories"
	"jobcard-backend/config"
	"jobcard-backend/db/models"
	"jobcard-backend/jobcards/repositories"
	"jobcard-backend/jobcards/services"
	"jobcard-backend/utils"
	"jobcard-backend/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const jobCardsResource = "jobcards"

type JobCardController struct {
	JobCardRepo repositories.JobCardRepository
	DB          *gorm.DB
	Ctx         context.Context
	Redis       *redis.Client
	Hub         *websocket.Hub
	BleveRepo   bleve_repositories.BleveRepositoryInterface
	AsynqClient *asynq.Client
}

func (jc *JobCardController) CreateJobCardController(c *fiber.Ctx) error {
	var form services.JobCardForm

	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
			"error":   err.Error(),
		})
	}

	if validationError := services.ValidateJobCardForm(&form); validationError != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   validationError,
		})
	}

	// Sequence: generated unless the user typed their own override, which is
	// only left-padded here. Either way the unique index has the final say.
	sequence := form.JobSequence
	if sequence == "" {
		sequence = services.NextJobSequence(jc.JobCardRepo, form.JobYear, form.JobMonth)
	} else {
		sequence = services.PadSequence(sequence)
	}

	jobCard := &models.JobCard{
		JobYear:     form.JobYear,
		JobMonth:    form.JobMonth,
		JobSequence: sequence,
		JobNumber:   services.FormatJobNumber(form.JobYear, form.JobMonth, sequence),
		CreatedBy:   form.CreatedBy,
	}

	if err := services.ApplyFormToJobCard(&form, jobCard); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid job card data",
			"error":   err.Error(),
		})
	}

	created, err := jc.JobCardRepo.CreateJobCard(jobCard)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// The allocator's accepted race: someone else inserted this
			// number first. The user retries with a fresh number.
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Duplicate entry",
				"error":   "Job number " + jobCard.JobNumber + " already exists. Please try again.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create job card",
			"error":   err.Error(),
		})
	}

	jc.afterJobCardWrite(created, websocket.EventJobCardCreated)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": created,
	})
}

// afterJobCardWrite handles the fan-out every successful write shares:
// search index, cache invalidation, and the live event feed.
func (jc *JobCardController) afterJobCardWrite(jobCard *models.JobCard, eventType websocket.EventType) {
	card := *jobCard
	go func() {
		if err := jc.BleveRepo.IndexJobCard(card); err != nil {
			config.Logger.Warn("Job card indexing failed",
				zap.String("jobNumber", card.JobNumber),
				zap.Error(err))
		}
	}()

	utils.InvalidateCacheAsync(jc.Redis, jobCardsResource)

	jc.Hub.Broadcast(websocket.Event{
		Type:    eventType,
		Topic:   websocket.TopicJobCards,
		Payload: card,
	})
}
