package models

import "github.com/google/uuid"

// FieldType represents the value type of a custom field
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypeCurrency FieldType = "currency"
)

// CustomField is an organization-defined attribute attachable to items,
// optionally restricted to a set of categories
type CustomField struct {
	BaseModel
	Tenant
	Name string    `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Type FieldType `json:"type" gorm:"type:varchar(20);not null;default:'text'" validate:"required,oneof=text number currency"`

	Categories []Category `json:"categories,omitempty" gorm:"many2many:custom_field_categories"`
}

// TableName returns the table name for CustomField
func (CustomField) TableName() string {
	return "custom_fields"
}

// ItemFieldValue stores one custom-field value for one item
type ItemFieldValue struct {
	BaseModel
	ItemID        uuid.UUID `json:"item_id" gorm:"type:uuid;not null;uniqueIndex:idx_item_field"`
	CustomFieldID uuid.UUID `json:"custom_field_id" gorm:"type:uuid;not null;uniqueIndex:idx_item_field"`
	Value         string    `json:"value" gorm:"size:255"`

	CustomField *CustomField `json:"custom_field,omitempty" gorm:"foreignKey:CustomFieldID"`
}

// TableName returns the table name for ItemFieldValue
func (ItemFieldValue) TableName() string {
	return "item_field_values"
}
