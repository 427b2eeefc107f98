package models

import (
	"time"

	"github.com/google/uuid"
)

// Rental is a time-bounded assignment of one or more items to a renter.
// Either UserID or ExternalRenterID is set, never both. Overlap of active
// rentals for the same item is rejected by a database trigger, not here.
type Rental struct {
	BaseModel
	Tenant
	UserID           *uuid.UUID `json:"user_id,omitempty" gorm:"type:uuid;index"`
	ExternalRenterID *uuid.UUID `json:"external_renter_id,omitempty" gorm:"type:uuid;index"`
	StartsAt         time.Time  `json:"starts_at" gorm:"not null" validate:"required"`
	EndsAt           time.Time  `json:"ends_at" gorm:"not null" validate:"required"`
	ReturnedAt       *time.Time `json:"returned_at,omitempty"`
	Note             string     `json:"note,omitempty" gorm:"type:text"`

	User           *User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ExternalRenter *ExternalRenter `json:"external_renter,omitempty" gorm:"foreignKey:ExternalRenterID"`
	Items          []Item          `json:"items,omitempty" gorm:"many2many:rental_items"`
}

// TableName returns the table name for Rental
func (Rental) TableName() string {
	return "rentals"
}

// IsActive reports whether the rental has not been returned yet.
func (r *Rental) IsActive() bool {
	return r.ReturnedAt == nil
}
