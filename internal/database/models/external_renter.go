package models

// ExternalRenter is an organization-scoped contact outside the system
// that rentals can be assigned to
type ExternalRenter struct {
	BaseModel
	Tenant
	Name  string `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Email string `json:"email,omitempty" gorm:"size:255" validate:"omitempty,email,max=255"`
	Phone string `json:"phone,omitempty" gorm:"size:50"`
}

// TableName returns the table name for ExternalRenter
func (ExternalRenter) TableName() string {
	return "external_renters"
}
