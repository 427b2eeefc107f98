package service

import (
	"fmt"
	"time"

	"rental-inventory-backend/internal/database/models"
	apperrors "rental-inventory-backend/internal/errors"
	"rental-inventory-backend/internal/pagination"
	"rental-inventory-backend/internal/password"
	"rental-inventory-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateUserRequest represents the request to add a user to an organization
type CreateUserRequest struct {
	FirstName string          `json:"first_name" validate:"required,max=100"`
	LastName  string          `json:"last_name" validate:"required,max=100"`
	Email     string          `json:"email" validate:"required,email,max=255"`
	Password  string          `json:"password" validate:"required,min=8,max=128"`
	Role      models.UserRole `json:"role" validate:"omitempty,oneof=admin member"`
}

// UpdateUserRequest represents a partial update of a user. Nil fields are
// left untouched.
type UpdateUserRequest struct {
	FirstName *string          `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName  *string          `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Email     *string          `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Password  *string          `json:"password,omitempty" validate:"omitempty,min=8,max=128"`
	Role      *models.UserRole `json:"role,omitempty" validate:"omitempty,oneof=admin member"`
}

// UserService manages the users of an organization. It also backs the
// auth service's credential lookups.
type UserService struct {
	users     *repository.Repository[models.User]
	validator *validator.Validate
}

// NewUserService creates a new user service.
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		users:     repository.New[models.User](db, repository.Users),
		validator: validator.New(),
	}
}

// List returns the organization's users, archived ones included.
func (s *UserService) List(orgID uuid.UUID, page pagination.Page) ([]models.User, int64, error) {
	return s.users.GetAll(&orgID, repository.NewSpec().OrderBy("users.created_at"), page)
}

// Get returns a single user of the organization.
func (s *UserService) Get(id uuid.UUID, orgID uuid.UUID) (*models.User, error) {
	return s.users.Get(id, &orgID, nil)
}

// Create adds a user to the organization. The email must be unique across
// all organizations since it is the login identifier.
func (s *UserService) Create(orgID uuid.UUID, req *CreateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.UserRoleMember
	}

	user := &models.User{
		Tenant:       models.Tenant{OrganizationID: orgID},
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        &req.Email,
		PasswordHash: &hash,
		Role:         role,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update applies a partial update to a user of the organization.
func (s *UserService) Update(id uuid.UUID, orgID uuid.UUID, req *UpdateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	updates := make(map[string]interface{})
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.Password != nil {
		hash, err := password.Hash(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		updates["password_hash"] = hash
	}

	return s.users.Update(id, updates, &orgID)
}

// Archive soft-deletes a user: the archive timestamp is set and the email
// and password hash are nulled in the same write, so the login identity is
// released while rental history keeps pointing at the row.
func (s *UserService) Archive(id uuid.UUID, orgID uuid.UUID) (*models.User, error) {
	user, err := s.users.Get(id, &orgID, nil)
	if err != nil {
		return nil, err
	}
	if user.IsArchived() {
		return nil, apperrors.ErrUserAlreadyArchived
	}

	return s.users.Update(id, map[string]interface{}{
		"archived_at":   time.Now(),
		"email":         nil,
		"password_hash": nil,
	}, &orgID)
}

// FindActiveByEmail returns the non-archived user with the given email.
// Used by the auth service for login, so it is not organization-scoped.
func (s *UserService) FindActiveByEmail(email string) (*models.User, error) {
	spec := repository.NewSpec().
		Where("users.email = ?", email).
		Where("users.archived_at IS NULL")
	rows, _, err := s.users.GetAll(nil, spec, pagination.Page{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.ErrUserNotFound
	}
	return &rows[0], nil
}

// FindByID returns a user by id regardless of organization. Used by the
// auth service to resolve the authenticated principal.
func (s *UserService) FindByID(id uuid.UUID) (*models.User, error) {
	return s.users.Get(id, nil, nil)
}
