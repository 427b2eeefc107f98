package handlers

import (
	"rental-inventory-backend/internal/database/models"
	"rental-inventory-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewModelResource builds the generic handlers for models. Each model is
// returned with its brand; list results can be narrowed to one brand.
func NewModelResource(db *gorm.DB, limits PageLimits) *Resource[models.Model] {
	spec := func(c *gin.Context) *repository.QuerySpec {
		s := repository.NewSpec().Preload("Brand")
		if brandID := c.Query("brand_id"); brandID != "" {
			s.Where("models.brand_id = ?", brandID)
		}
		return s
	}

	return NewResource[models.Model](
		repository.New[models.Model](db, repository.Models),
		"id",
		"/api/v1/models",
		limits,
		Messages{
			Created: "model created",
			Exists:  "model already exists",
			Missing: "model does not exist",
			Deleted: "model deleted",
		},
		spec,
	)
}
