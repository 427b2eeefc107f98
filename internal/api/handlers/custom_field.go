package handlers

import (
	"rental-inventory-backend/internal/database/models"
	"rental-inventory-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewCustomFieldResource builds the generic handlers for custom fields.
// Fields are returned with the categories they are attached to.
func NewCustomFieldResource(db *gorm.DB, limits PageLimits) *Resource[models.CustomField] {
	spec := func(c *gin.Context) *repository.QuerySpec {
		return repository.NewSpec().Preload("Categories")
	}

	return NewResource[models.CustomField](
		repository.New[models.CustomField](db, repository.CustomFields),
		"id",
		"/api/v1/custom-fields",
		limits,
		Messages{
			Created: "custom field created",
			Exists:  "custom field already exists",
			Missing: "custom field does not exist",
			Deleted: "custom field deleted",
		},
		spec,
	)
}
