package repositories

import (
	"strings"

	"jobcard-backend/config"
	"jobcard-backend/db/models"

	"github.com/blevesearch/bleve/v2"
	"go.uber.org/zap"
)

type bleveJobCardDoc struct {
	ID                  string `json:"id"`
	JobNumber           string `json:"job_number"`
	CustomerName        string `json:"customer_name"`
	CustomerMobile      string `json:"customer_mobile,omitempty"`
	VehicleMake         string `json:"vehicle_make,omitempty"`
	VehicleModel        string `json:"vehicle_model,omitempty"`
	VehicleRegistration string `json:"vehicle_registration,omitempty"`
	ServiceSelection    string `json:"service_selection,omitempty"`
	PaymentStatus       string `json:"payment_status"`
	IsArchived          bool   `json:"is_archived"`
}

func newBleveJobCardDoc(jobCard models.JobCard) bleveJobCardDoc {
	service := ""
	if jobCard.ServiceSelection != nil {
		service = string(*jobCard.ServiceSelection)
	}
	return bleveJobCardDoc{
		ID:                  jobCard.ID.String(),
		JobNumber:           jobCard.JobNumber,
		CustomerName:        jobCard.CustomerName,
		CustomerMobile:      derefString(jobCard.CustomerMobile),
		VehicleMake:         derefString(jobCard.VehicleMake),
		VehicleModel:        derefString(jobCard.VehicleModel),
		VehicleRegistration: derefString(jobCard.VehicleRegistration),
		ServiceSelection:    service,
		PaymentStatus:       string(jobCard.PaymentStatus),
		IsArchived:          jobCard.IsArchived,
	}
}

func (r *BleveRepository) IndexJobCard(jobCard models.JobCard) error {
	err := r.indexer.IndexDocument("jobcards", jobCard.ID.String(), newBleveJobCardDoc(jobCard))
	if err != nil {
		config.Logger.Error("Failed to index job card into Bleve",
			zap.Error(err),
			zap.String("job_card_id", jobCard.ID.String()))
		return err
	}
	return nil
}

func (r *BleveRepository) IndexExistingJobCards(jobCards []models.JobCard) error {
	docs := make(map[string]interface{})
	for _, jobCard := range jobCards {
		docs[jobCard.ID.String()] = newBleveJobCardDoc(jobCard)
	}
	if len(docs) == 0 {
		return nil
	}
	if err := r.indexer.BulkIndexDocuments("jobcards", docs); err != nil {
		config.Logger.Error("Failed to bulk index job cards into Bleve", zap.Error(err))
		return err
	}
	config.Logger.Info("Bulk indexed job cards into Bleve", zap.Int("count", len(docs)))
	return nil
}

func (r *BleveRepository) DeleteJobCard(jobCardID string) error {
	if err := r.indexer.DeleteDocument("jobcards", jobCardID); err != nil {
		config.Logger.Error("Failed to delete job card from Bleve",
			zap.Error(err),
			zap.String("job_card_id", jobCardID))
		return err
	}
	return nil
}

var jobCardSearchFields = []string{
	"job_number", "customer_name", "customer_mobile",
	"vehicle_make", "vehicle_model", "vehicle_registration",
}

func (r *BleveRepository) SearchJobCards(queryString string) (*bleve.SearchResult, error) {
	queryString = strings.TrimSpace(strings.ToLower(queryString))
	return r.search("jobcards", queryString, jobCardSearchFields, 20)
}

func derefString(s *string) string {
	if s != nil {
		return *s
	}
	return ""
}
