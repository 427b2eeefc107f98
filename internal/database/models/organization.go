package models

// Organization represents the root entity for multi-tenancy
type Organization struct {
	BaseModel
	Name        string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Email       string `json:"email" gorm:"not null;size:255" validate:"required,email,max=255"`
	CustomerRef string `json:"customer_ref,omitempty" gorm:"uniqueIndex;size:100"` // billing provider customer id

	// Relationships
	Users           []User           `json:"users,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Brands          []Brand          `json:"brands,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Models          []Model          `json:"models,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Kits            []Kit            `json:"kits,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Categories      []Category       `json:"categories,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	CustomFields    []CustomField    `json:"custom_fields,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Items           []Item           `json:"items,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Rentals         []Rental         `json:"rentals,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	ExternalRenters []ExternalRenter `json:"external_renters,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Subscription    *Subscription    `json:"subscription,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
