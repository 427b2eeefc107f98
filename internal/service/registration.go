package service

import (
	"fmt"
	"time"

	"rental-inventory-backend/internal/auth"
	"rental-inventory-backend/internal/database/models"
	apperrors "rental-inventory-backend/internal/errors"
	"rental-inventory-backend/internal/password"
	"rental-inventory-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RegistrationService signs up a new organization: the organization row,
// its first admin user and a trial subscription are created in a single
// transaction so a half-registered tenant can never exist.
type RegistrationService struct {
	db        *gorm.DB
	validator *validator.Validate
	trialDays int
}

// NewRegistrationService creates a new registration service.
func NewRegistrationService(db *gorm.DB, trialDays int) *RegistrationService {
	return &RegistrationService{
		db:        db,
		validator: validator.New(),
		trialDays: trialDays,
	}
}

// Register creates the organization, its admin user and a trial
// subscription. The organization name and the user email must both be
// unique; either collision rolls back the whole signup.
func (s *RegistrationService) Register(req *auth.RegisterRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	customerRef := "cus_" + uuid.NewString()
	var user *models.User

	err = s.db.Transaction(func(tx *gorm.DB) error {
		orgs := repository.New[models.Organization](tx, repository.Organizations)
		users := repository.New[models.User](tx, repository.Users)
		subs := repository.New[models.Subscription](tx, repository.Subscriptions)

		org := &models.Organization{
			Name:        req.OrganizationName,
			Email:       req.Email,
			CustomerRef: customerRef,
		}
		if err := orgs.Create(org); err != nil {
			return err
		}

		email := req.Email
		user = &models.User{
			Tenant:       models.Tenant{OrganizationID: org.ID},
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        &email,
			PasswordHash: &hash,
			Role:         models.UserRoleAdmin,
		}
		if err := users.Create(user); err != nil {
			return err
		}

		trialEnd := time.Now().AddDate(0, 0, s.trialDays)
		sub := &models.Subscription{
			Tenant:           models.Tenant{OrganizationID: org.ID},
			CustomerRef:      customerRef,
			Status:           models.SubscriptionStatusTrial,
			CurrentPeriodEnd: &trialEnd,
		}
		return subs.Create(sub)
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"organization_id": user.OrganizationID,
		"user_id":         user.ID,
	}).Info("Organization registered")

	return user, nil
}
