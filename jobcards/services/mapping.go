package services

import (
	"fmt"
	"strings"
	"time"

	"jobcard-backend/db/models"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const formDateLayout = "2006-01-02"

// JobCardForm is the form-friendly shape of a job card: scalars are strings,
// optional fields are empty strings rather than nulls, and the nested
// documents ride along as typed structs. Controllers parse request bodies
// into this and map through JobCardFromForm so the form-to-record transform
// stays testable away from the HTTP layer.
type JobCardForm struct {
	JobYear     string `json:"job_year"`
	JobMonth    string `json:"job_month"`
	JobSequence string `json:"job_sequence"`

	CustomerName        string `json:"customer_name"`
	CustomerMobile      string `json:"customer_mobile"`
	CustomerCompany     string `json:"customer_company"`
	CustomerEmail       string `json:"customer_email"`
	CustomerTaxID       string `json:"customer_tax_id"`
	VehicleMake         string `json:"vehicle_make"`
	VehicleModel        string `json:"vehicle_model"`
	VehicleMonthYear    string `json:"vehicle_month_year"`
	VehicleRegistration string `json:"vehicle_registration"`

	StartDate              string `json:"start_date"`
	ExpectedCompletionDate string `json:"expected_completion_date"`
	CompletedDate          string `json:"completed_date"`

	VehicleTypes         []string `json:"vehicle_types"`
	ServiceSelection     string   `json:"service_selection"`
	AssignedWorker       string   `json:"assigned_worker"`
	AssignedPartsHandler string   `json:"assigned_parts_handler"`

	IsWorkerAssignedComplete bool   `json:"is_worker_assigned_complete"`
	IsPartsAssignedComplete  bool   `json:"is_parts_assigned_complete"`
	IsArchived               bool   `json:"is_archived"`
	PaymentStatus            string `json:"payment_status"`

	TotalA string `json:"total_a"`

	ServiceProgress     *models.ServiceProgress    `json:"service_progress"`
	TrailerProgress     *models.TrailerProgress    `json:"trailer_progress"`
	OtherProgress       *models.OtherProgress      `json:"other_progress"`
	PartsAndConsumables *models.PartsDocument      `json:"parts_and_consumables"`
	LubricantsUsed      *models.LubricantsDocument `json:"lubricants_used"`

	CreatedBy string `json:"created_by"`
}

// ApplyFormToJobCard maps a form onto a job-card record: empty strings become
// nulls, numeric strings are parsed, the empty tag array becomes null, and
// missing nested documents are synthesized from the service selection and
// vehicle-type tags. Totals are recomputed afterwards so the grand-total
// invariant holds no matter what the form carried. The job number fields are
// left to the caller, identity is assigned once at creation.
func ApplyFormToJobCard(form *JobCardForm, jc *models.JobCard) error {
	jc.CustomerName = strings.TrimSpace(form.CustomerName)
	jc.CustomerMobile = emptyToNil(form.CustomerMobile)
	jc.CustomerCompany = emptyToNil(form.CustomerCompany)
	jc.CustomerEmail = emptyToNil(form.CustomerEmail)
	jc.CustomerTaxID = emptyToNil(form.CustomerTaxID)
	jc.VehicleMake = emptyToNil(form.VehicleMake)
	jc.VehicleModel = emptyToNil(form.VehicleModel)
	jc.VehicleMonthYear = emptyToNil(form.VehicleMonthYear)
	jc.VehicleRegistration = emptyToNil(form.VehicleRegistration)

	var err error
	if jc.StartDate, err = parseFormDate(form.StartDate); err != nil {
		return fmt.Errorf("invalid start_date: %w", err)
	}
	if jc.ExpectedCompletionDate, err = parseFormDate(form.ExpectedCompletionDate); err != nil {
		return fmt.Errorf("invalid expected_completion_date: %w", err)
	}
	if jc.CompletedDate, err = parseFormDate(form.CompletedDate); err != nil {
		return fmt.Errorf("invalid completed_date: %w", err)
	}

	if len(form.VehicleTypes) == 0 {
		jc.VehicleTypes = nil
	} else {
		jc.VehicleTypes = datatypes.JSONSlice[string](form.VehicleTypes)
	}

	previousSelection := jc.ServiceSelection
	if form.ServiceSelection == "" {
		jc.ServiceSelection = nil
	} else {
		selection := models.ServiceType(form.ServiceSelection)
		jc.ServiceSelection = &selection
	}

	jc.AssignedWorker = emptyToNil(form.AssignedWorker)
	jc.AssignedPartsHandler = emptyToNil(form.AssignedPartsHandler)
	jc.IsWorkerAssignedComplete = form.IsWorkerAssignedComplete
	jc.IsPartsAssignedComplete = form.IsPartsAssignedComplete
	jc.IsArchived = form.IsArchived

	if form.PaymentStatus == string(models.PaidPayment) {
		jc.PaymentStatus = models.PaidPayment
	} else {
		jc.PaymentStatus = models.UnpaidPayment
	}

	if form.TotalA == "" {
		jc.TotalA = decimal.Zero
	} else {
		totalA, err := decimal.NewFromString(form.TotalA)
		if err != nil {
			return fmt.Errorf("invalid total_a: %w", err)
		}
		jc.TotalA = totalA
	}

	applyChecklists(form, jc, previousSelection)

	if form.PartsAndConsumables != nil {
		jc.PartsAndConsumables = datatypes.NewJSONType(*form.PartsAndConsumables)
	}
	if form.LubricantsUsed != nil {
		jc.LubricantsUsed = datatypes.NewJSONType(*form.LubricantsUsed)
	}

	RecomputeTotals(jc)
	return nil
}

// applyChecklists decides between persisted task state and a fresh synthesis.
// Submitted documents win. Otherwise a missing or stale service checklist is
// reinitialized from the selection (a selection change discards the old
// checklist outright), and the trailer/other documents are synthesized only
// when the matching vehicle-type tag is present.
func applyChecklists(form *JobCardForm, jc *models.JobCard, previousSelection *models.ServiceType) {
	switch {
	case form.ServiceProgress != nil:
		jc.ServiceProgress = datatypes.NewJSONType(*form.ServiceProgress)
	case jc.ServiceSelection == nil:
		jc.ServiceProgress = datatypes.NewJSONType(models.ServiceProgress{})
	case previousSelection == nil || *previousSelection != *jc.ServiceSelection ||
		jc.ServiceProgress.Data().Tasks == nil:
		jc.ServiceProgress = datatypes.NewJSONType(NewServiceChecklist(*jc.ServiceSelection))
	}

	if form.TrailerProgress != nil {
		jc.TrailerProgress = datatypes.NewJSONType(*form.TrailerProgress)
	} else if jc.HasVehicleType(models.VehicleTypeTrailer) && jc.TrailerProgress.Data().Tasks == nil {
		jc.TrailerProgress = datatypes.NewJSONType(NewTrailerChecklist())
	}

	if form.OtherProgress != nil {
		jc.OtherProgress = datatypes.NewJSONType(*form.OtherProgress)
	} else if jc.HasVehicleType(models.VehicleTypeOther) && jc.OtherProgress.Data().Tasks == nil {
		jc.OtherProgress = datatypes.NewJSONType(NewOtherChecklist())
	}
}

// FormFromJobCard is the inbound transform for edit screens: nulls become
// empty strings or arrays, numbers become their string representation, and
// nested documents missing from a legacy record are synthesized the same way
// the outbound path does it.
func FormFromJobCard(jc *models.JobCard) *JobCardForm {
	form := &JobCardForm{
		JobYear:     jc.JobYear,
		JobMonth:    jc.JobMonth,
		JobSequence: jc.JobSequence,

		CustomerName:        jc.CustomerName,
		CustomerMobile:      nilToEmpty(jc.CustomerMobile),
		CustomerCompany:     nilToEmpty(jc.CustomerCompany),
		CustomerEmail:       nilToEmpty(jc.CustomerEmail),
		CustomerTaxID:       nilToEmpty(jc.CustomerTaxID),
		VehicleMake:         nilToEmpty(jc.VehicleMake),
		VehicleModel:        nilToEmpty(jc.VehicleModel),
		VehicleMonthYear:    nilToEmpty(jc.VehicleMonthYear),
		VehicleRegistration: nilToEmpty(jc.VehicleRegistration),

		StartDate:              formatFormDate(jc.StartDate),
		ExpectedCompletionDate: formatFormDate(jc.ExpectedCompletionDate),
		CompletedDate:          formatFormDate(jc.CompletedDate),

		AssignedWorker:       nilToEmpty(jc.AssignedWorker),
		AssignedPartsHandler: nilToEmpty(jc.AssignedPartsHandler),

		IsWorkerAssignedComplete: jc.IsWorkerAssignedComplete,
		IsPartsAssignedComplete:  jc.IsPartsAssignedComplete,
		IsArchived:               jc.IsArchived,
		PaymentStatus:            string(jc.PaymentStatus),

		TotalA:    jc.TotalA.StringFixed(2),
		CreatedBy: jc.CreatedBy,
	}

	if jc.VehicleTypes == nil {
		form.VehicleTypes = []string{}
	} else {
		form.VehicleTypes = []string(jc.VehicleTypes)
	}

	if jc.ServiceSelection != nil {
		form.ServiceSelection = string(*jc.ServiceSelection)
	}

	// Lazy synthesis for legacy records persisted before a document existed.
	serviceProgress := jc.ServiceProgress.Data()
	if serviceProgress.Tasks == nil && jc.ServiceSelection != nil {
		serviceProgress = NewServiceChecklist(*jc.ServiceSelection)
	}
	form.ServiceProgress = &serviceProgress

	trailerProgress := jc.TrailerProgress.Data()
	if trailerProgress.Tasks == nil && jc.HasVehicleType(models.VehicleTypeTrailer) {
		trailerProgress = NewTrailerChecklist()
	}
	form.TrailerProgress = &trailerProgress

	otherProgress := jc.OtherProgress.Data()
	if otherProgress.Tasks == nil && jc.HasVehicleType(models.VehicleTypeOther) {
		otherProgress = NewOtherChecklist()
	}
	form.OtherProgress = &otherProgress

	parts := jc.PartsAndConsumables.Data()
	form.PartsAndConsumables = &parts
	lubricants := jc.LubricantsUsed.Data()
	form.LubricantsUsed = &lubricants

	return form
}

func emptyToNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func nilToEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func parseFormDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := time.Parse(formDateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatFormDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(formDateLayout)
}
