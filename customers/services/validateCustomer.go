package services

import (
	"strings"

	"jobcard-backend/db/models"
)

// ValidateCustomer checks the two required fields. Everything else on a
// customer record is optional and captured as entered.
func ValidateCustomer(customer *models.Customer) string {
	if strings.TrimSpace(customer.Name) == "" {
		return "Customer name is required"
	}
	if strings.TrimSpace(customer.Mobile) == "" {
		return "Customer mobile number is required"
	}
	return ""
}
