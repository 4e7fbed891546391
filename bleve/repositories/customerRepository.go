package repositories

import (
	"strings"

	"jobcard-backend/config"
	"jobcard-backend/db/models"

	"github.com/blevesearch/bleve/v2"
	"go.uber.org/zap"
)

type bleveCustomerDoc struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	DisplayName         string `json:"display_name"`
	Mobile              string `json:"mobile"`
	Company             string `json:"company,omitempty"`
	Email               string `json:"email,omitempty"`
	VehicleMake         string `json:"vehicle_make,omitempty"`
	VehicleModel        string `json:"vehicle_model,omitempty"`
	VehicleRegistration string `json:"vehicle_registration,omitempty"`
}

func newBleveCustomerDoc(customer models.Customer) bleveCustomerDoc {
	return bleveCustomerDoc{
		ID:                  customer.ID.String(),
		Name:                customer.Name,
		DisplayName:         customer.DisplayName(),
		Mobile:              customer.Mobile,
		Company:             derefString(customer.Company),
		Email:               derefString(customer.Email),
		VehicleMake:         derefString(customer.VehicleMake),
		VehicleModel:        derefString(customer.VehicleModel),
		VehicleRegistration: derefString(customer.VehicleRegistration),
	}
}

func (r *BleveRepository) IndexCustomer(customer models.Customer) error {
	err := r.indexer.IndexDocument("customers", customer.ID.String(), newBleveCustomerDoc(customer))
	if err != nil {
		config.Logger.Error("Failed to index customer into Bleve",
			zap.Error(err),
			zap.String("customer_id", customer.ID.String()))
		return err
	}
	return nil
}

func (r *BleveRepository) IndexExistingCustomers(customers []models.Customer) error {
	docs := make(map[string]interface{})
	for _, customer := range customers {
		docs[customer.ID.String()] = newBleveCustomerDoc(customer)
	}
	if len(docs) == 0 {
		return nil
	}
	if err := r.indexer.BulkIndexDocuments("customers", docs); err != nil {
		config.Logger.Error("Failed to bulk index customers into Bleve", zap.Error(err))
		return err
	}
	config.Logger.Info("Bulk indexed customers into Bleve", zap.Int("count", len(docs)))
	return nil
}

func (r *BleveRepository) DeleteCustomer(customerID string) error {
	if err := r.indexer.DeleteDocument("customers", customerID); err != nil {
		config.Logger.Error("Failed to delete customer from Bleve",
			zap.Error(err),
			zap.String("customer_id", customerID))
		return err
	}
	return nil
}

var customerSearchFields = []string{
	"name", "mobile", "company", "email", "vehicle_registration",
}

func (r *BleveRepository) SearchCustomers(queryString string) (*bleve.SearchResult, error) {
	queryString = strings.TrimSpace(strings.ToLower(queryString))
	return r.search("customers", queryString, customerSearchFields, 20)
}
