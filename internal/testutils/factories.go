package testutils

import (
	"time"

	"rental-inventory-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles all factories for convenient use in test suites
type FactorySet struct {
	Organization   *OrganizationFactory
	User           *UserFactory
	Brand          *BrandFactory
	Model          *ModelFactory
	Category       *CategoryFactory
	Item           *ItemFactory
	ExternalRenter *ExternalRenterFactory
	Rental         *RentalFactory
	Subscription   *SubscriptionFactory
}

// NewFactorySet creates a FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization:   NewOrganizationFactory(),
		User:           NewUserFactory(),
		Brand:          NewBrandFactory(),
		Model:          NewModelFactory(),
		Category:       NewCategoryFactory(),
		Item:           NewItemFactory(),
		ExternalRenter: NewExternalRenterFactory(),
		Rental:         NewRentalFactory(),
		Subscription:   NewSubscriptionFactory(),
	}
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Organization " + id.String()[:8],
		Email:       "org-" + id.String()[:8] + "@test.com",
		CustomerRef: "cus_" + id.String(),
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. The email is unique per
// call since it is globally unique in the schema.
func (f *UserFactory) Create(orgID uuid.UUID) *models.User {
	id := uuid.New()
	email := "user-" + id.String()[:8] + "@test.com"
	hash := "$argon2id$v=19$m=65536,t=1,p=4$dGVzdHNhbHQ$K1lRmiBiY3lYpunsPierGGpliCXpXBvMpYRtf801o3Q"

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Tenant:       models.Tenant{OrganizationID: orgID},
		FirstName:    "John",
		LastName:     "Doe",
		Email:        &email,
		PasswordHash: &hash,
		Role:         models.UserRoleMember,
	}
}

// Admin creates a test admin user
func (f *UserFactory) Admin(orgID uuid.UUID) *models.User {
	user := f.Create(orgID)
	user.Role = models.UserRoleAdmin
	return user
}

// BrandFactory provides methods to create test Brand data
type BrandFactory struct{}

// NewBrandFactory creates a new BrandFactory
func NewBrandFactory() *BrandFactory {
	return &BrandFactory{}
}

// Create creates a test Brand with default values
func (f *BrandFactory) Create(orgID uuid.UUID) *models.Brand {
	id := uuid.New()
	return &models.Brand{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Tenant: models.Tenant{OrganizationID: orgID},
		Name:   "Brand " + id.String()[:8],
	}
}

// ModelFactory provides methods to create test Model data
type ModelFactory struct{}

// NewModelFactory creates a new ModelFactory
func NewModelFactory() *ModelFactory {
	return &ModelFactory{}
}

// Create creates a test Model under the given brand
func (f *ModelFactory) Create(orgID, brandID uuid.UUID) *models.Model {
	id := uuid.New()
	return &models.Model{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Tenant:  models.Tenant{OrganizationID: orgID},
		BrandID: brandID,
		Name:    "Model " + id.String()[:8],
	}
}

// CategoryFactory provides methods to create test Category data
type CategoryFactory struct{}

// NewCategoryFactory creates a new CategoryFactory
func NewCategoryFactory() *CategoryFactory {
	return &CategoryFactory{}
}

// Create creates a test Category with default values
func (f *CategoryFactory) Create(orgID uuid.UUID) *models.Category {
	id := uuid.New()
	return &models.Category{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Tenant: models.Tenant{OrganizationID: orgID},
		Name:   "Category " + id.String()[:8],
	}
}

// ItemFactory provides methods to create test Item data
type ItemFactory struct{}

// NewItemFactory creates a new ItemFactory
func NewItemFactory() *ItemFactory {
	return &ItemFactory{}
}

// Create creates a test Item in the given category and model
func (f *ItemFactory) Create(orgID, categoryID, modelID uuid.UUID) *models.Item {
	id := uuid.New()
	return &models.Item{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Tenant:     models.Tenant{OrganizationID: orgID},
		CategoryID: categoryID,
		ModelID:    modelID,
		Barcode:    "BC-" + id.String()[:13],
	}
}

// ExternalRenterFactory provides methods to create test ExternalRenter data
type ExternalRenterFactory struct{}

// NewExternalRenterFactory creates a new ExternalRenterFactory
func NewExternalRenterFactory() *ExternalRenterFactory {
	return &ExternalRenterFactory{}
}

// Create creates a test ExternalRenter with default values
func (f *ExternalRenterFactory) Create(orgID uuid.UUID) *models.ExternalRenter {
	id := uuid.New()
	return &models.ExternalRenter{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Tenant: models.Tenant{OrganizationID: orgID},
		Name:   "Renter " + id.String()[:8],
		Email:  "renter-" + id.String()[:8] + "@test.com",
	}
}

// RentalFactory provides methods to create test Rental data
type RentalFactory struct{}

// NewRentalFactory creates a new RentalFactory
func NewRentalFactory() *RentalFactory {
	return &RentalFactory{}
}

// Create creates an active test Rental for the given user starting now
func (f *RentalFactory) Create(orgID uuid.UUID, userID uuid.UUID) *models.Rental {
	id := uuid.New()
	now := time.Now()
	return &models.Rental{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Tenant:   models.Tenant{OrganizationID: orgID},
		UserID:   &userID,
		StartsAt: now,
		EndsAt:   now.Add(48 * time.Hour),
	}
}

// SubscriptionFactory provides methods to create test Subscription data
type SubscriptionFactory struct{}

// NewSubscriptionFactory creates a new SubscriptionFactory
func NewSubscriptionFactory() *SubscriptionFactory {
	return &SubscriptionFactory{}
}

// Create creates a trial test Subscription for the organization
func (f *SubscriptionFactory) Create(orgID uuid.UUID) *models.Subscription {
	id := uuid.New()
	end := time.Now().AddDate(0, 0, 30)
	return &models.Subscription{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Tenant:           models.Tenant{OrganizationID: orgID},
		CustomerRef:      "cus_" + id.String(),
		Status:           models.SubscriptionStatusTrial,
		CurrentPeriodEnd: &end,
	}
}

// WithStatus creates a subscription in the given status
func (f *SubscriptionFactory) WithStatus(orgID uuid.UUID, status models.SubscriptionStatus) *models.Subscription {
	sub := f.Create(orgID)
	sub.Status = status
	sub.Valid = status == models.SubscriptionStatusValid
	return sub
}
