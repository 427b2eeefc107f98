package models

// Kit groups several models that are rented out together
type Kit struct {
	BaseModel
	Tenant
	Name        string `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Description string `json:"description,omitempty" gorm:"type:text"`

	Models []Model `json:"models,omitempty" gorm:"many2many:kit_models;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Kit
func (Kit) TableName() string {
	return "kits"
}
