package handlers

import (
	"rental-inventory-backend/internal/database/models"
	"rental-inventory-backend/internal/repository"

	"gorm.io/gorm"
)

// NewCategoryResource builds the generic handlers for categories.
func NewCategoryResource(db *gorm.DB, limits PageLimits) *Resource[models.Category] {
	return NewResource[models.Category](
		repository.New[models.Category](db, repository.Categories),
		"id",
		"/api/v1/categories",
		limits,
		Messages{
			Created: "category created",
			Exists:  "category already exists",
			Missing: "category does not exist",
			Deleted: "category deleted",
		},
		nil,
	)
}
