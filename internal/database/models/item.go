package models

import "github.com/google/uuid"

// Item is a physical, rentable thing identified by its barcode
type Item struct {
	BaseModel
	Tenant
	CategoryID uuid.UUID `json:"category_id" gorm:"type:uuid;not null;index"`
	ModelID    uuid.UUID `json:"model_id" gorm:"type:uuid;not null;index"`
	Barcode    string    `json:"barcode" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	Note       string    `json:"note,omitempty" gorm:"type:text"`

	Category    *Category        `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Model       *Model           `json:"model,omitempty" gorm:"foreignKey:ModelID"`
	FieldValues []ItemFieldValue `json:"field_values,omitempty" gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Item
func (Item) TableName() string {
	return "items"
}
