package repositories

import (
	"strings"
	"time"

	"jobcard-backend/db/models"

	"gorm.io/gorm"
)

type jobCardQueryBuilder struct {
	db      *gorm.DB
	filters map[string]string
}

func newJobCardQueryBuilder(db *gorm.DB, filters map[string]string) *jobCardQueryBuilder {
	return &jobCardQueryBuilder{db: db.Model(&models.JobCard{}), filters: filters}
}

func (qb *jobCardQueryBuilder) applyBasicFilters() *jobCardQueryBuilder {
	db := qb.db
	if archived, ok := qb.filters["archived"]; ok && archived != "" {
		db = db.Where("is_archived = ?", strings.ToLower(archived) == "true")
	}
	if status, ok := qb.filters["payment_status"]; ok && status != "" {
		db = db.Where("payment_status = ?", strings.ToLower(status))
	}
	if selection, ok := qb.filters["service_selection"]; ok && selection != "" {
		db = db.Where("service_selection = ?", selection)
	}
	if worker, ok := qb.filters["assigned_worker"]; ok && worker != "" {
		db = db.Where("assigned_worker = ?", worker)
	}
	if year, ok := qb.filters["job_year"]; ok && year != "" {
		db = db.Where("job_year = ?", year)
	}
	if month, ok := qb.filters["job_month"]; ok && month != "" {
		db = db.Where("job_month = ?", month)
	}

	qb.db = db
	return qb
}

// applySearchFilter matches a free-text term across the columns staff search
// by on the dashboard.
func (qb *jobCardQueryBuilder) applySearchFilter() *jobCardQueryBuilder {
	if search, ok := qb.filters["search"]; ok && search != "" {
		term := "%" + strings.TrimSpace(search) + "%"
		qb.db = qb.db.Where(
			"job_number ILIKE ? OR customer_name ILIKE ? OR vehicle_registration ILIKE ? OR vehicle_make ILIKE ?",
			term, term, term, term,
		)
	}
	return qb
}

func (qb *jobCardQueryBuilder) applyDateRangeFilter() (*gorm.DB, error) {
	db := qb.db
	startDateStr := qb.filters["start_date"]
	endDateStr := qb.filters["end_date"]

	if startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err != nil {
			return nil, err
		}
		db = db.Where("created_at >= ?", startDate)
	}
	if endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err != nil {
			return nil, err
		}
		endDate = endDate.Add(24*time.Hour - time.Second)
		db = db.Where("created_at <= ?", endDate)
	}

	return db, nil
}

// GetFilteredJobCards fetches a page of job cards matching the filters,
// newest first, plus the unpaginated total.
func (jr *jobCardRepository) GetFilteredJobCards(limit, offset int, filters map[string]string) ([]models.JobCard, int64, error) {
	qb := newJobCardQueryBuilder(jr.DB, filters).applyBasicFilters().applySearchFilter()

	query, err := qb.applyDateRangeFilter()
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobCards []models.JobCard
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&jobCards).Error; err != nil {
		return nil, 0, err
	}

	return jobCards, total, nil
}

// GetAllJobCards fetches every card matching the filters, for the Excel export.
func (jr *jobCardRepository) GetAllJobCards(filters map[string]string) ([]models.JobCard, error) {
	qb := newJobCardQueryBuilder(jr.DB, filters).applyBasicFilters().applySearchFilter()

	query, err := qb.applyDateRangeFilter()
	if err != nil {
		return nil, err
	}

	var jobCards []models.JobCard
	if err := query.Order("created_at DESC").Find(&jobCards).Error; err != nil {
		return nil, err
	}
	return jobCards, nil
}
