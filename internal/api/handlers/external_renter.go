package handlers

import (
	"rental-inventory-backend/internal/database/models"
	"rental-inventory-backend/internal/repository"

	"gorm.io/gorm"
)

// NewExternalRenterResource builds the generic handlers for external
// renters, the non-member customers rentals can be issued to.
func NewExternalRenterResource(db *gorm.DB, limits PageLimits) *Resource[models.ExternalRenter] {
	return NewResource[models.ExternalRenter](
		repository.New[models.ExternalRenter](db, repository.ExternalRenters),
		"id",
		"/api/v1/external-renters",
		limits,
		Messages{
			Created: "external renter created",
			Exists:  "external renter already exists",
			Missing: "external renter does not exist",
			Deleted: "external renter deleted",
		},
		nil,
	)
}
