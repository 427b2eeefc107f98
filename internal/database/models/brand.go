package models

// Brand represents a manufacturer of item models
type Brand struct {
	BaseModel
	Tenant
	Name string `json:"name" gorm:"not null;size:100" validate:"required,max=100"`

	Models []Model `json:"models,omitempty" gorm:"foreignKey:BrandID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Brand
func (Brand) TableName() string {
	return "brands"
}
