package models

import "github.com/shopspring/decimal"

// TaskStatus is the tri-state outcome of a checklist line. A nil status means
// the task has not been addressed yet; cross and n/a still count as addressed.
type TaskStatus string

const (
	StatusTick  TaskStatus = "tick"
	StatusCross TaskStatus = "cross"
	StatusNA    TaskStatus = "n/a"
)

// ValidTaskStatus reports whether s is one of the closed set of statuses.
func ValidTaskStatus(s TaskStatus) bool {
	return s == StatusTick || s == StatusCross || s == StatusNA
}

// ServiceTask is a single checklist line. Task names come from the fixed
// per-service-tier catalogs except in the "other" checklist, where rows are
// added freely. Section is only set on trailer-inspection tasks; grouping is
// derived from it at display time, storage stays a single flat array.
type ServiceTask struct {
	Task        string      `json:"task"`
	Status      *TaskStatus `json:"status"`
	Description string      `json:"description"`
	DoneBy      string      `json:"done_by"`
	Hours       *float64    `json:"hours"`
	Section     string      `json:"section,omitempty"`
}

// ServiceProgress is the flat checklist document for the standard service tiers.
type ServiceProgress struct {
	ServiceType string        `json:"service_type"`
	Tasks       []ServiceTask `json:"tasks"`
}

// TrailerProgress carries the sectioned trailer inspection checklist plus the
// free-form header fields captured on the trailer sheet.
type TrailerProgress struct {
	TrailerMake  string        `json:"trailer_make"`
	TrailerRegNo string        `json:"trailer_reg_no"`
	InspectedBy  string        `json:"inspected_by"`
	Tasks        []ServiceTask `json:"tasks"`
}

// OtherProgress is the user-extensible checklist for work that fits no tier.
type OtherProgress struct {
	JobDescription string        `json:"job_description"`
	Tasks          []ServiceTask `json:"tasks"`
}

// PartLine is one parts/consumables row. TotalCost is always recomputed from
// Price and QtyUsed and is nil when either factor is missing or negative; a
// nil total contributes zero to the document total.
type PartLine struct {
	Name      string           `json:"name"`
	Price     *decimal.Decimal `json:"price"`
	QtyUsed   *decimal.Decimal `json:"qty_used"`
	TotalCost *decimal.Decimal `json:"total_cost"`
}

// PartsDocument is the parts_and_consumables JSONB document.
type PartsDocument struct {
	Lines []PartLine      `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// LubricantLine is one lubricant row, priced per litre.
type LubricantLine struct {
	Name         string           `json:"name"`
	CostPerLitre *decimal.Decimal `json:"cost_per_litre"`
	Qty          *decimal.Decimal `json:"qty"`
	TotalCost    *decimal.Decimal `json:"total_cost"`
}

// LubricantsDocument is the lubricants_used JSONB document.
type LubricantsDocument struct {
	Lines []LubricantLine `json:"lines"`
	Total decimal.Decimal `json:"total"`
}
