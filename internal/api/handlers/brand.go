package handlers

import (
	"rental-inventory-backend/internal/database/models"
	"rental-inventory-backend/internal/repository"

	"gorm.io/gorm"
)

// NewBrandResource builds the generic handlers for brands.
func NewBrandResource(db *gorm.DB, limits PageLimits) *Resource[models.Brand] {
	return NewResource[models.Brand](
		repository.New[models.Brand](db, repository.Brands),
		"id",
		"/api/v1/brands",
		limits,
		Messages{
			Created: "brand created",
			Exists:  "brand already exists",
			Missing: "brand does not exist",
			Deleted: "brand deleted",
		},
		nil,
	)
}
