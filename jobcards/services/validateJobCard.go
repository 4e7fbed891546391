package services

import (
	"strings"

	"jobcard-backend/db/models"
)

// ValidateJobCardForm checks required fields and enumerations before a form
// is mapped onto a record. Returns an empty string when the form is valid,
// otherwise a user-facing message.
func ValidateJobCardForm(form *JobCardForm) string {
	if strings.TrimSpace(form.CustomerName) == "" {
		return "Customer name is required"
	}
	if len(form.JobYear) != 4 {
		return "Job year must be a 4-digit year"
	}
	if len(form.JobMonth) != 2 {
		return "Job month must be a 2-digit, zero-padded month"
	}
	if form.ServiceSelection != "" && !validServiceSelection(form.ServiceSelection) {
		return "Unknown service selection: " + form.ServiceSelection
	}
	for _, tag := range form.VehicleTypes {
		if !validVehicleType(tag) {
			return "Unknown vehicle type: " + tag
		}
	}
	if form.AssignedWorker != "" && !containsName(models.Workers, form.AssignedWorker) {
		return "Unknown worker: " + form.AssignedWorker
	}
	if form.AssignedPartsHandler != "" && !containsName(models.PartsHandlers, form.AssignedPartsHandler) {
		return "Unknown parts handler: " + form.AssignedPartsHandler
	}
	if form.PaymentStatus != "" &&
		form.PaymentStatus != string(models.PaidPayment) &&
		form.PaymentStatus != string(models.UnpaidPayment) {
		return "Payment status must be paid or unpaid"
	}
	return ""
}

func validServiceSelection(s string) bool {
	switch models.ServiceType(s) {
	case models.ServiceA, models.ServiceB, models.ServiceC, models.ServiceD, models.ServiceOther:
		return true
	}
	return false
}

func validVehicleType(tag string) bool {
	for _, t := range models.VehicleTypeVocabulary {
		if t == tag {
			return true
		}
	}
	return false
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
