package service

import (
	"time"

	"rental-inventory-backend/internal/database/models"
	apperrors "rental-inventory-backend/internal/errors"
	"rental-inventory-backend/internal/pagination"
	"rental-inventory-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateRentalRequest represents the request to open a rental. Exactly one
// of UserID and ExternalRenterID must be set.
type CreateRentalRequest struct {
	UserID           *uuid.UUID  `json:"user_id,omitempty"`
	ExternalRenterID *uuid.UUID  `json:"external_renter_id,omitempty"`
	StartsAt         time.Time   `json:"starts_at" validate:"required"`
	EndsAt           time.Time   `json:"ends_at" validate:"required"`
	Note             string      `json:"note,omitempty"`
	ItemIDs          []uuid.UUID `json:"item_ids" validate:"required"`
}

// RentalService opens and closes rentals. Overlap of active rentals for
// the same item is enforced by a database trigger; the service only
// validates what the database cannot see.
type RentalService struct {
	rentals   *repository.Repository[models.Rental]
	items     *repository.Repository[models.Item]
	validator *validator.Validate
}

// NewRentalService creates a new rental service.
func NewRentalService(db *gorm.DB) *RentalService {
	return &RentalService{
		rentals:   repository.New[models.Rental](db, repository.Rentals),
		items:     repository.New[models.Item](db, repository.Items),
		validator: validator.New(),
	}
}

// Create opens a rental for the given items. All items must belong to the
// caller's organization; a missing or foreign item fails the whole request.
func (s *RentalService) Create(orgID uuid.UUID, req *CreateRentalRequest) (*models.Rental, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	if (req.UserID == nil) == (req.ExternalRenterID == nil) {
		return nil, apperrors.ErrRenterRequired
	}
	if len(req.ItemIDs) == 0 {
		return nil, apperrors.ErrRentalNoItems
	}
	if !req.EndsAt.After(req.StartsAt) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	spec := repository.NewSpec().Where("items.id IN ?", req.ItemIDs)
	items, total, err := s.items.GetAll(&orgID, spec, pagination.Page{})
	if err != nil {
		return nil, err
	}
	if int(total) != len(uniqueIDs(req.ItemIDs)) {
		return nil, apperrors.ErrItemNotFound
	}

	rental := &models.Rental{
		Tenant:           models.Tenant{OrganizationID: orgID},
		UserID:           req.UserID,
		ExternalRenterID: req.ExternalRenterID,
		StartsAt:         req.StartsAt,
		EndsAt:           req.EndsAt,
		Note:             req.Note,
		Items:            items,
	}
	if err := s.rentals.Create(rental); err != nil {
		if apperrors.IsConflict(err) {
			return nil, apperrors.ErrRentalOverlap
		}
		return nil, err
	}
	return rental, nil
}

// Update applies column updates to a rental. The renter rule from Create
// holds here too: the resulting row must reference exactly one of a user
// or an external renter.
func (s *RentalService) Update(id uuid.UUID, orgID uuid.UUID, updates map[string]interface{}) (*models.Rental, error) {
	rental, err := s.rentals.Get(id, &orgID, nil)
	if err != nil {
		return nil, err
	}

	userID, err := renterAfterUpdate(rental.UserID, updates, "user_id")
	if err != nil {
		return nil, err
	}
	renterID, err := renterAfterUpdate(rental.ExternalRenterID, updates, "external_renter_id")
	if err != nil {
		return nil, err
	}
	if (userID == nil) == (renterID == nil) {
		return nil, apperrors.ErrRenterRequired
	}

	row, err := s.rentals.Update(id, updates, &orgID)
	if err != nil {
		if apperrors.IsConflict(err) {
			return nil, apperrors.ErrRentalOverlap
		}
		return nil, err
	}
	return row, nil
}

// renterAfterUpdate computes the value a renter column will hold once the
// updates are applied.
func renterAfterUpdate(current *uuid.UUID, updates map[string]interface{}, column string) (*uuid.UUID, error) {
	raw, ok := updates[column]
	if !ok {
		return current, nil
	}
	if raw == nil {
		return nil, nil
	}
	str, ok := raw.(string)
	if !ok {
		return nil, apperrors.NewBadRequestError("invalid " + column)
	}
	id, err := uuid.Parse(str)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid " + column)
	}
	return &id, nil
}

// Return closes an active rental by stamping its return time.
func (s *RentalService) Return(id uuid.UUID, orgID uuid.UUID) (*models.Rental, error) {
	rental, err := s.rentals.Get(id, &orgID, nil)
	if err != nil {
		return nil, err
	}
	if !rental.IsActive() {
		return nil, apperrors.ErrAlreadyReturned
	}

	return s.rentals.Update(id, map[string]interface{}{
		"returned_at": time.Now(),
	}, &orgID)
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
