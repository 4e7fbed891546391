package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer holds a client's contact details plus the single vehicle tied to
// this record. One customer row maps to exactly one vehicle; a client with
// two vehicles gets two rows. Deletes are hard deletes, there is no archive
// state on customers.
type Customer struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	Name    string    `gorm:"not null;index" json:"name"`
	Mobile  string    `gorm:"not null" json:"mobile"`
	Company *string   `json:"company"`
	Email   *string   `json:"email"`
	TaxID   *string   `json:"tax_id"`

	// Vehicle details
	VehicleMake         *string `json:"vehicle_make"`
	VehicleModel        *string `json:"vehicle_model"`
	VehicleMonthYear    *string `json:"vehicle_month_year"` // e.g. "03/2019"
	VehicleRegistration *string `gorm:"index" json:"vehicle_registration"`

	// Audit fields
	CreatedBy string    `gorm:"not null" json:"created_by"`
	UpdatedBy *string   `json:"updated_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}

// DisplayName returns the name used on job-card snapshots and search results.
func (c *Customer) DisplayName() string {
	if c.Company != nil && strings.TrimSpace(*c.Company) != "" {
		return c.Name + " (" + *c.Company + ")"
	}
	return c.Name
}
