package models

import "github.com/google/uuid"

// Model represents a catalog model; physical items are instances of a model
type Model struct {
	BaseModel
	Tenant
	BrandID     uuid.UUID `json:"brand_id" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Description string    `json:"description,omitempty" gorm:"type:text"`

	Brand *Brand `json:"brand,omitempty" gorm:"foreignKey:BrandID"`
	Items []Item `json:"items,omitempty" gorm:"foreignKey:ModelID"`
}

// TableName returns the table name for Model
func (Model) TableName() string {
	return "models"
}
