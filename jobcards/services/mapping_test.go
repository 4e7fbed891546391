package services

import (
	"testing"

	"jobcard-backend/db/models"

	"github.com/shopspring/decimal"
)

func TestApplyFormToJobCardMapsOptionalFields(t *testing.T) {
	form := &JobCardForm{
		JobYear:        "2026",
		JobMonth:       "08",
		CustomerName:   "  T. Banda  ",
		CustomerMobile: "0771234567",
		StartDate:      "2026-08-10",
	}

	var jc models.JobCard
	if err := ApplyFormToJobCard(form, &jc); err != nil {
		t.Fatalf("ApplyFormToJobCard: %v", err)
	}

	if jc.CustomerName != "T. Banda" {
		t.Fatalf("customer name not trimmed: %q", jc.CustomerName)
	}
	if jc.CustomerMobile == nil || *jc.CustomerMobile != "0771234567" {
		t.Fatalf("customer mobile: got %v", jc.CustomerMobile)
	}
	if jc.CustomerCompany != nil {
		t.Fatalf("empty company should map to nil, got %q", *jc.CustomerCompany)
	}
	if jc.StartDate == nil || jc.StartDate.Format("2006-01-02") != "2026-08-10" {
		t.Fatalf("start date: got %v", jc.StartDate)
	}
	if jc.ExpectedCompletionDate != nil {
		t.Fatalf("empty date should map to nil")
	}
	if jc.VehicleTypes != nil {
		t.Fatalf("empty tag list should map to nil")
	}
	if jc.PaymentStatus != models.UnpaidPayment {
		t.Fatalf("payment status default: got %q, want unpaid", jc.PaymentStatus)
	}
}

func TestApplyFormToJobCardRejectsBadInput(t *testing.T) {
	var jc models.JobCard
	if err := ApplyFormToJobCard(&JobCardForm{StartDate: "10/08/2026"}, &jc); err == nil {
		t.Fatalf("malformed date should be rejected")
	}
	if err := ApplyFormToJobCard(&JobCardForm{TotalA: "fifty"}, &jc); err == nil {
		t.Fatalf("non-numeric total_a should be rejected")
	}
}

func TestApplyFormToJobCardSynthesizesChecklists(t *testing.T) {
	form := &JobCardForm{
		CustomerName:     "T. Banda",
		ServiceSelection: string(models.ServiceA),
		VehicleTypes:     []string{models.VehicleTypeTruck, models.VehicleTypeTrailer},
	}

	var jc models.JobCard
	if err := ApplyFormToJobCard(form, &jc); err != nil {
		t.Fatalf("ApplyFormToJobCard: %v", err)
	}

	if got := len(jc.ServiceProgress.Data().Tasks); got != 46 {
		t.Fatalf("service checklist: got %d tasks, want 46", got)
	}
	if got := len(jc.TrailerProgress.Data().Tasks); got != 30 {
		t.Fatalf("trailer checklist: got %d tasks, want 30", got)
	}
	// No "other" tag, so no other checklist.
	if jc.OtherProgress.Data().Tasks != nil {
		t.Fatalf("other checklist should not be synthesized without the tag")
	}
}

func TestServiceSelectionChangeDiscardsProgress(t *testing.T) {
	var jc models.JobCard
	base := &JobCardForm{CustomerName: "T. Banda", ServiceSelection: string(models.ServiceA)}
	if err := ApplyFormToJobCard(base, &jc); err != nil {
		t.Fatalf("initial apply: %v", err)
	}

	// Record some progress, then switch the tier without submitting a document.
	progress := jc.ServiceProgress.Data()
	ToggleTaskStatus(progress.Tasks, 0, models.StatusTick)

	next := &JobCardForm{CustomerName: "T. Banda", ServiceSelection: string(models.ServiceC)}
	if err := ApplyFormToJobCard(next, &jc); err != nil {
		t.Fatalf("second apply: %v", err)
	}

	doc := jc.ServiceProgress.Data()
	if len(doc.Tasks) != 65 {
		t.Fatalf("after switch to C: got %d tasks, want 65", len(doc.Tasks))
	}
	for i, task := range doc.Tasks {
		if task.Status != nil {
			t.Fatalf("task %d survived the tier switch with status %q", i, *task.Status)
		}
	}
}

func TestSubmittedChecklistWinsOverSynthesis(t *testing.T) {
	tick := models.StatusTick
	submitted := models.ServiceProgress{
		ServiceType: string(models.ServiceA),
		Tasks: []models.ServiceTask{
			{Task: "Check oil level", Status: &tick, DoneBy: "T. Moyo"},
		},
	}

	var jc models.JobCard
	form := &JobCardForm{
		CustomerName:     "T. Banda",
		ServiceSelection: string(models.ServiceA),
		ServiceProgress:  &submitted,
	}
	if err := ApplyFormToJobCard(form, &jc); err != nil {
		t.Fatalf("ApplyFormToJobCard: %v", err)
	}

	doc := jc.ServiceProgress.Data()
	if len(doc.Tasks) != 1 || doc.Tasks[0].DoneBy != "T. Moyo" {
		t.Fatalf("submitted checklist was not persisted verbatim: %+v", doc)
	}
}

func TestApplyFormToJobCardRecomputesTotals(t *testing.T) {
	form := &JobCardForm{
		CustomerName: "T. Banda",
		TotalA:       "50.00",
		PartsAndConsumables: &models.PartsDocument{
			Lines: []models.PartLine{
				{Name: "Brake pads", Price: dec("10.00"), QtyUsed: dec("2")},
			},
			// A lying client total; the server recomputes it.
			Total: decimal.RequireFromString("9999.00"),
		},
		LubricantsUsed: &models.LubricantsDocument{
			Lines: []models.LubricantLine{
				{Name: "Engine oil", CostPerLitre: dec("5.00"), Qty: dec("4")},
			},
		},
	}

	var jc models.JobCard
	if err := ApplyFormToJobCard(form, &jc); err != nil {
		t.Fatalf("ApplyFormToJobCard: %v", err)
	}

	if !jc.TotalB.Equal(decimal.RequireFromString("20.00")) {
		t.Fatalf("total_b: got %s, want 20.00", jc.TotalB)
	}
	if !jc.TotalC.Equal(decimal.RequireFromString("20.00")) {
		t.Fatalf("total_c: got %s, want 20.00", jc.TotalC)
	}
	if !jc.GrandTotal.Equal(decimal.RequireFromString("90.00")) {
		t.Fatalf("grand_total: got %s, want 90.00", jc.GrandTotal)
	}
	if !jc.PartsAndConsumables.Data().Total.Equal(decimal.RequireFromString("20.00")) {
		t.Fatalf("client-supplied parts total was trusted")
	}
}

func TestFormRoundTrip(t *testing.T) {
	original := &JobCardForm{
		JobYear:          "2026",
		JobMonth:         "08",
		CustomerName:     "T. Banda",
		ServiceSelection: string(models.ServiceB),
		VehicleTypes:     []string{models.VehicleTypeTruck},
		PaymentStatus:    string(models.UnpaidPayment),
		TotalA:           "0.00",
	}

	var jc models.JobCard
	jc.JobYear, jc.JobMonth = original.JobYear, original.JobMonth
	if err := ApplyFormToJobCard(original, &jc); err != nil {
		t.Fatalf("ApplyFormToJobCard: %v", err)
	}

	back := FormFromJobCard(&jc)

	if back.CustomerName != original.CustomerName {
		t.Fatalf("customer name: got %q", back.CustomerName)
	}
	if back.CustomerMobile != "" || back.CustomerCompany != "" {
		t.Fatalf("nil optionals should come back as empty strings")
	}
	if back.StartDate != "" {
		t.Fatalf("nil date should come back as empty string, got %q", back.StartDate)
	}
	if back.ServiceSelection != original.ServiceSelection {
		t.Fatalf("service selection: got %q", back.ServiceSelection)
	}
	if len(back.VehicleTypes) != 1 || back.VehicleTypes[0] != models.VehicleTypeTruck {
		t.Fatalf("vehicle types: got %v", back.VehicleTypes)
	}
	if back.TotalA != "0.00" {
		t.Fatalf("total_a: got %q, want 0.00", back.TotalA)
	}
	if back.ServiceProgress == nil || len(back.ServiceProgress.Tasks) != 54 {
		t.Fatalf("service checklist did not survive the round trip")
	}
}

func TestFormFromJobCardSynthesizesForLegacyRecords(t *testing.T) {
	selection := models.ServiceA
	jc := &models.JobCard{
		CustomerName:     "T. Banda",
		ServiceSelection: &selection,
		VehicleTypes:     []string{models.VehicleTypeTrailer},
	}

	form := FormFromJobCard(jc)

	if form.ServiceProgress == nil || len(form.ServiceProgress.Tasks) != 46 {
		t.Fatalf("legacy record should get a synthesized service checklist")
	}
	if form.TrailerProgress == nil || len(form.TrailerProgress.Tasks) != 30 {
		t.Fatalf("legacy record with trailer tag should get a trailer checklist")
	}
	if form.VehicleTypes == nil {
		t.Fatalf("vehicle types should never be nil on the form")
	}
}
