package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentStatus tracks whether a job card has been settled.
type PaymentStatus string

const (
	PaidPayment   PaymentStatus = "paid"
	UnpaidPayment PaymentStatus = "unpaid"
)

// ServiceType selects which fixed checklist is active on a job card.
type ServiceType string

const (
	ServiceA     ServiceType = "Service A"
	ServiceB     ServiceType = "Service B"
	ServiceC     ServiceType = "Service C"
	ServiceD     ServiceType = "Service D"
	ServiceOther ServiceType = "Other"
)

// Vehicle-type tags. Multi-select on the job card; the trailer and other
// checklists are only synthesized when the matching tag is present.
const (
	VehicleTypeTruck        = "truck"
	VehicleTypeTrailer      = "trailer"
	VehicleTypeLightVehicle = "light vehicle"
	VehicleTypeBus          = "bus"
	VehicleTypeOther        = "other"
)

var VehicleTypeVocabulary = []string{
	VehicleTypeTruck,
	VehicleTypeTrailer,
	VehicleTypeLightVehicle,
	VehicleTypeBus,
	VehicleTypeOther,
}

// Workshop staff enumerations. Assignment fields must come from these lists.
var (
	Workers = []string{
		"T. Moyo",
		"S. Ncube",
		"P. Dube",
		"K. Sibanda",
		"M. Chirwa",
	}
	PartsHandlers = []string{
		"L. Mpofu",
		"R. Gumbo",
		"J. Nyathi",
	}
)

// JobCard is the central aggregate. Customer and vehicle fields are a snapshot
// copied at creation time, not a foreign key; later edits to the customer do
// not propagate here. The four nested documents live in JSONB columns and are
// owned exclusively by this row.
type JobCard struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`

	// Human-readable identity, e.g. JC-2025-03-001. Generated once at
	// creation and never changed. The unique index is what surfaces the
	// allocator's accepted read-then-write race as a duplicate error.
	JobNumber   string `gorm:"unique;not null;index" json:"job_number"`
	JobYear     string `gorm:"not null" json:"job_year"`
	JobMonth    string `gorm:"not null" json:"job_month"`
	JobSequence string `gorm:"not null" json:"job_sequence"`

	// Customer/vehicle snapshot
	CustomerName        string  `gorm:"not null;index" json:"customer_name"`
	CustomerMobile      *string `json:"customer_mobile"`
	CustomerCompany     *string `json:"customer_company"`
	CustomerEmail       *string `json:"customer_email"`
	CustomerTaxID       *string `json:"customer_tax_id"`
	VehicleMake         *string `json:"vehicle_make"`
	VehicleModel        *string `json:"vehicle_model"`
	VehicleMonthYear    *string `json:"vehicle_month_year"`
	VehicleRegistration *string `gorm:"index" json:"vehicle_registration"`

	// Scheduling
	StartDate              *time.Time `json:"start_date"`
	ExpectedCompletionDate *time.Time `json:"expected_completion_date"`
	CompletedDate          *time.Time `json:"completed_date"`

	// Tags and assignment
	VehicleTypes         datatypes.JSONSlice[string] `json:"vehicle_types"`
	ServiceSelection     *ServiceType                `gorm:"type:varchar(20)" json:"service_selection"`
	AssignedWorker       *string                     `json:"assigned_worker"`
	AssignedPartsHandler *string                     `json:"assigned_parts_handler"`

	// Completion flags, toggled independently of the archive state
	IsWorkerAssignedComplete bool `gorm:"default:false" json:"is_worker_assigned_complete"`
	IsPartsAssignedComplete  bool `gorm:"default:false" json:"is_parts_assigned_complete"`

	// Sole lifecycle state: active vs archived. Archiving is reversible.
	IsArchived bool `gorm:"default:false;index" json:"is_archived"`

	PaymentStatus PaymentStatus `gorm:"type:varchar(10);default:'unpaid'" json:"payment_status"`

	// Nested documents
	ServiceProgress     datatypes.JSONType[ServiceProgress]    `json:"service_progress"`
	TrailerProgress     datatypes.JSONType[TrailerProgress]    `json:"trailer_progress"`
	OtherProgress       datatypes.JSONType[OtherProgress]      `json:"other_progress"`
	PartsAndConsumables datatypes.JSONType[PartsDocument]      `json:"parts_and_consumables"`
	LubricantsUsed      datatypes.JSONType[LubricantsDocument] `json:"lubricants_used"`

	// Totals. TotalA is manually entered labor; TotalB and TotalC are
	// derived from the line-item documents. Stored redundantly alongside
	// their inputs and recomputed on every write so that
	// grand_total = total_a + total_b + total_c always holds.
	TotalA     decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"total_a"`
	TotalB     decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"total_b"`
	TotalC     decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"total_c"`
	GrandTotal decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"grand_total"`

	// Audit fields
	CreatedBy string    `gorm:"not null" json:"created_by"`
	UpdatedBy *string   `json:"updated_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (j *JobCard) BeforeCreate(tx *gorm.DB) (err error) {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return
}

// HasVehicleType reports whether the given tag was selected on this card.
func (j *JobCard) HasVehicleType(tag string) bool {
	for _, t := range j.VehicleTypes {
		if t == tag {
			return true
		}
	}
	return false
}
