package handlers

import (
	"rental-inventory-backend/internal/database/models"
	"rental-inventory-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewItemResource builds the generic handlers for items. Items are keyed
// by barcode rather than id, since barcodes are what the scanner at the
// counter produces. List results carry the full catalog context and can be
// filtered by category or model.
func NewItemResource(db *gorm.DB, limits PageLimits) *Resource[models.Item] {
	spec := func(c *gin.Context) *repository.QuerySpec {
		s := repository.NewSpec().
			Preload("Model").
			Preload("Model.Brand").
			Preload("Category").
			Preload("FieldValues").
			Preload("FieldValues.CustomField")
		if categoryID := c.Query("category_id"); categoryID != "" {
			s.Where("items.category_id = ?", categoryID)
		}
		if modelID := c.Query("model_id"); modelID != "" {
			s.Where("items.model_id = ?", modelID)
		}
		return s
	}

	return NewResource[models.Item](
		repository.New[models.Item](db, repository.Items),
		"barcode",
		"/api/v1/items",
		limits,
		Messages{
			Created: "item created",
			Exists:  "item already exists",
			Missing: "item does not exist",
			Deleted: "item deleted",
		},
		spec,
	)
}
