package repositories

import (
	"fmt"

	"jobcard-backend/config"
	"jobcard-backend/db/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type JobCardRepository interface {
	CreateJobCard(jobCard *models.JobCard) (*models.JobCard, error)
	UpdateJobCard(jobCard *models.JobCard) (*models.JobCard, error)
	DeleteJobCard(id uuid.UUID) error
	GetJobCardByID(id uuid.UUID) (*models.JobCard, error)
	GetJobNumbersByPrefix(prefix string) ([]string, error)
	GetFilteredJobCards(limit, offset int, filters map[string]string) ([]models.JobCard, int64, error)
	GetAllJobCards(filters map[string]string) ([]models.JobCard, error)
}

type jobCardRepository struct {
	DB *gorm.DB
}

// NewJobCardRepository initializes a new job card repository
func NewJobCardRepository(db *gorm.DB) JobCardRepository {
	return &jobCardRepository{DB: db}
}

func (jr *jobCardRepository) CreateJobCard(jobCard *models.JobCard) (*models.JobCard, error) {
	if err := jr.DB.Create(jobCard).Error; err != nil {
		config.Logger.Error("Failed to create job card",
			zap.Error(err),
			zap.String("jobNumber", jobCard.JobNumber))
		// Surfaced untranslated so controllers can map gorm.ErrDuplicatedKey
		// to the friendlier duplicate message.
		return nil, err
	}

	config.Logger.Info("Created job card",
		zap.String("jobCardID", jobCard.ID.String()),
		zap.String("jobNumber", jobCard.JobNumber))
	return jobCard, nil
}

func (jr *jobCardRepository) UpdateJobCard(jobCard *models.JobCard) (*models.JobCard, error) {
	if err := jr.DB.Save(jobCard).Error; err != nil {
		config.Logger.Error("Failed to update job card",
			zap.Error(err),
			zap.String("jobCardID", jobCard.ID.String()))
		return nil, fmt.Errorf("failed to update job card: %w", err)
	}
	return jobCard, nil
}

func (jr *jobCardRepository) DeleteJobCard(id uuid.UUID) error {
	result := jr.DB.Delete(&models.JobCard{}, "id = ?", id)
	if result.Error != nil {
		config.Logger.Error("Failed to delete job card",
			zap.Error(result.Error),
			zap.String("jobCardID", id.String()))
		return fmt.Errorf("failed to delete job card: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (jr *jobCardRepository) GetJobCardByID(id uuid.UUID) (*models.JobCard, error) {
	var jobCard models.JobCard
	if err := jr.DB.First(&jobCard, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &jobCard, nil
}

// GetJobNumbersByPrefix returns the stored job numbers sharing a year/month
// prefix, for the sequence allocator. Pure read, nothing is reserved.
func (jr *jobCardRepository) GetJobNumbersByPrefix(prefix string) ([]string, error) {
	var numbers []string
	err := jr.DB.Model(&models.JobCard{}).
		Where("job_number LIKE ?", prefix+"%").
		Pluck("job_number", &numbers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list job numbers for prefix %s: %w", prefix, err)
	}
	return numbers, nil
}
