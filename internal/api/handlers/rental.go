package handlers

import (
	"net/http"

	"rental-inventory-backend/internal/database/models"
	apperrors "rental-inventory-backend/internal/errors"
	"rental-inventory-backend/internal/repository"
	"rental-inventory-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RentalHandler serves rentals. Listing, fetching, updating and deleting
// go through the generic resource; opening and returning a rental carry
// business rules, so they go through the rental service.
type RentalHandler struct {
	*Resource[models.Rental]
	rentals *service.RentalService
}

// NewRentalHandler creates the rental handlers.
func NewRentalHandler(db *gorm.DB, limits PageLimits) *RentalHandler {
	spec := func(c *gin.Context) *repository.QuerySpec {
		s := repository.NewSpec().
			Preload("Items").
			Preload("User").
			Preload("ExternalRenter").
			OrderBy("rentals.starts_at DESC")
		if c.Query("active") == "true" {
			s.Where("rentals.returned_at IS NULL")
		}
		return s
	}

	resource := NewResource[models.Rental](
		repository.New[models.Rental](db, repository.Rentals),
		"id",
		"/api/v1/rentals",
		limits,
		Messages{
			Missing: "rental does not exist",
			Deleted: "rental deleted",
		},
		spec,
	)

	return &RentalHandler{
		Resource: resource,
		rentals:  service.NewRentalService(db),
	}
}

// Create handles PUT /api/v1/rentals. Unlike the generic create it writes
// the rental and its item links together and validates the renter.
func (h *RentalHandler) Create(c *gin.Context) {
	orgID, ok := h.callerOrg(c)
	if !ok {
		return
	}

	var req service.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apperrors.ErrWrongFields)
		return
	}

	rental, err := h.rentals.Create(orgID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreatedResponse{ID: rental.ID, Message: "rental created"})
}

// Update handles PUT /api/v1/rentals/:id. It shadows the generic update
// and goes through the rental service so the renter rule holds on updates
// as well as creates.
func (h *RentalHandler) Update(c *gin.Context) {
	orgID, ok := h.callerOrg(c)
	if !ok {
		return
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, apperrors.ErrWrongFields)
		return
	}

	raw, ok := body["id"].(string)
	if !ok || raw == "" {
		raw = c.Param("id")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		h.respondError(c, apperrors.ErrRentalNotFound)
		return
	}
	delete(body, "id")

	rental, err := h.rentals.Update(id, orgID, body)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rental)
}

// Return handles PUT /api/v1/rentals/:id/return.
func (h *RentalHandler) Return(c *gin.Context) {
	orgID, ok := h.callerOrg(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.respondError(c, apperrors.ErrRentalNotFound)
		return
	}

	rental, err := h.rentals.Return(id, orgID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rental)
}
