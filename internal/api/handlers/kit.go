package handlers

import (
	"rental-inventory-backend/internal/database/models"
	"rental-inventory-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewKitResource builds the generic handlers for kits. Kits are returned
// with the models they bundle.
func NewKitResource(db *gorm.DB, limits PageLimits) *Resource[models.Kit] {
	spec := func(c *gin.Context) *repository.QuerySpec {
		return repository.NewSpec().Preload("Models")
	}

	return NewResource[models.Kit](
		repository.New[models.Kit](db, repository.Kits),
		"id",
		"/api/v1/kits",
		limits,
		Messages{
			Created: "kit created",
			Exists:  "kit already exists",
			Missing: "kit does not exist",
			Deleted: "kit deleted",
		},
		spec,
	)
}
