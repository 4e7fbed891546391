package services

import (
	"strings"
	"testing"

	"jobcard-backend/db/models"
)

func validForm() *JobCardForm {
	return &JobCardForm{
		JobYear:      "2026",
		JobMonth:     "08",
		CustomerName: "T. Banda",
	}
}

func TestValidateJobCardFormAcceptsMinimalForm(t *testing.T) {
	if msg := ValidateJobCardForm(validForm()); msg != "" {
		t.Fatalf("minimal form rejected: %q", msg)
	}
}

func TestValidateJobCardFormAcceptsFullForm(t *testing.T) {
	form := validForm()
	form.ServiceSelection = string(models.ServiceD)
	form.VehicleTypes = []string{models.VehicleTypeTruck, models.VehicleTypeTrailer}
	form.AssignedWorker = models.Workers[0]
	form.AssignedPartsHandler = models.PartsHandlers[0]
	form.PaymentStatus = string(models.PaidPayment)

	if msg := ValidateJobCardForm(form); msg != "" {
		t.Fatalf("full form rejected: %q", msg)
	}
}

func TestValidateJobCardFormRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*JobCardForm)
		want   string
	}{
		{"blank customer name", func(f *JobCardForm) { f.CustomerName = "   " }, "Customer name"},
		{"short year", func(f *JobCardForm) { f.JobYear = "26" }, "4-digit"},
		{"unpadded month", func(f *JobCardForm) { f.JobMonth = "8" }, "2-digit"},
		{"unknown service", func(f *JobCardForm) { f.ServiceSelection = "Service E" }, "service selection"},
		{"unknown vehicle type", func(f *JobCardForm) { f.VehicleTypes = []string{"boat"} }, "vehicle type"},
		{"unknown worker", func(f *JobCardForm) { f.AssignedWorker = "Nobody" }, "worker"},
		{"unknown parts handler", func(f *JobCardForm) { f.AssignedPartsHandler = "Nobody" }, "parts handler"},
		{"bad payment status", func(f *JobCardForm) { f.PaymentStatus = "pending" }, "Payment status"},
	}

	for _, tc := range cases {
		form := validForm()
		tc.mutate(form)
		msg := ValidateJobCardForm(form)
		if msg == "" {
			t.Fatalf("%s: form accepted, want rejection", tc.name)
		}
		if !strings.Contains(msg, tc.want) {
			t.Fatalf("%s: message %q does not mention %q", tc.name, msg, tc.want)
		}
	}
}
