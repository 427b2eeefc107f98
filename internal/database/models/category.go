package models

// Category groups items and optionally restricts custom fields
type Category struct {
	BaseModel
	Tenant
	Name string `json:"name" gorm:"not null;size:100" validate:"required,max=100"`

	Items        []Item        `json:"items,omitempty" gorm:"foreignKey:CategoryID"`
	CustomFields []CustomField `json:"custom_fields,omitempty" gorm:"many2many:custom_field_categories"`
}

// TableName returns the table name for Category
func (Category) TableName() string {
	return "categories"
}
