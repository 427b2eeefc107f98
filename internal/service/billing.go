package service

import (
	"crypto/subtle"
	"fmt"
	"os"
	"time"

	"rental-inventory-backend/internal/database/models"
	apperrors "rental-inventory-backend/internal/errors"
	"rental-inventory-backend/internal/pagination"
	"rental-inventory-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Plan is a purchasable subscription plan from the plans file.
type Plan struct {
	Name       string `yaml:"name" json:"name"`
	PriceCents int    `yaml:"price_cents" json:"price_cents"`
	Interval   string `yaml:"interval" json:"interval"`
}

type plansFile struct {
	Plans []Plan `yaml:"plans"`
}

// WebhookEvent is the payload the payment provider posts to the billing
// webhook. CustomerRef identifies the subscription.
type WebhookEvent struct {
	Type             string     `json:"type"`
	CustomerRef      string     `json:"customer_ref"`
	Plan             string     `json:"plan,omitempty"`
	Status           string     `json:"status,omitempty"`
	CurrentPeriodEnd *time.Time `json:"current_period_end,omitempty"`
}

// Webhook event types the billing service understands.
const (
	EventSubscriptionUpdated  = "subscription.updated"
	EventSubscriptionCanceled = "subscription.canceled"
	EventChargeDeclined       = "charge.declined"
)

// BillingService keeps subscriptions in sync with the payment provider
// and answers the entitlement checks of the subscription gate.
type BillingService struct {
	subs          *repository.Repository[models.Subscription]
	plans         []Plan
	webhookSecret string
}

// NewBillingService creates a billing service. The plans file is optional;
// without it the service runs with an empty plan catalog.
func NewBillingService(db *gorm.DB, plansPath, webhookSecret string) (*BillingService, error) {
	s := &BillingService{
		subs:          repository.New[models.Subscription](db, repository.Subscriptions),
		webhookSecret: webhookSecret,
	}
	if plansPath != "" {
		plans, err := loadPlans(plansPath)
		if err != nil {
			return nil, err
		}
		s.plans = plans
	}
	return s, nil
}

func loadPlans(path string) ([]Plan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plans file: %w", err)
	}
	var file plansFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse plans file: %w", err)
	}
	return file.Plans, nil
}

// Plans returns the plan catalog.
func (s *BillingService) Plans() []Plan {
	return s.plans
}

// GetByOrganizationID returns the organization's subscription. The
// subscription gate calls this on every request to a gated route.
func (s *BillingService) GetByOrganizationID(orgID uuid.UUID) (*models.Subscription, error) {
	rows, _, err := s.subs.GetAll(&orgID, nil, pagination.Page{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.ErrSubscriptionNotFound
	}
	return &rows[0], nil
}

// Authorize checks the shared webhook secret the provider sends with each
// event. An empty configured secret disables the check (local development).
func (s *BillingService) Authorize(provided string) error {
	if s.webhookSecret == "" {
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(provided), []byte(s.webhookSecret)) != 1 {
		return apperrors.ErrInvalidToken
	}
	return nil
}

// ProcessEvent applies a provider webhook event to the matching
// subscription. A declined charge still updates the row before the error
// is reported, so the gate starts rejecting immediately.
func (s *BillingService) ProcessEvent(event *WebhookEvent) error {
	spec := repository.NewSpec().Where("subscriptions.customer_ref = ?", event.CustomerRef)
	rows, _, err := s.subs.GetAll(nil, spec, pagination.Page{Limit: 1})
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return apperrors.ErrSubscriptionNotFound
	}
	sub := rows[0]

	updates := make(map[string]interface{})
	var declined bool

	switch event.Type {
	case EventSubscriptionUpdated:
		status, err := parseStatus(event.Status)
		if err != nil {
			return err
		}
		updates["status"] = status
		updates["valid"] = status == models.SubscriptionStatusValid || status == models.SubscriptionStatusTrial
		if event.Plan != "" {
			updates["plan"] = event.Plan
		}
		if event.CurrentPeriodEnd != nil {
			updates["current_period_end"] = *event.CurrentPeriodEnd
		}
	case EventSubscriptionCanceled:
		updates["status"] = models.SubscriptionStatusCanceled
		updates["valid"] = false
	case EventChargeDeclined:
		updates["status"] = models.SubscriptionStatusExpired
		updates["valid"] = false
		declined = true
	default:
		return apperrors.NewBadRequestError(fmt.Sprintf("unknown event type %q", event.Type))
	}

	if _, err := s.subs.Update(sub.ID, updates, nil); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"event":           event.Type,
		"organization_id": sub.OrganizationID,
	}).Info("Processed billing event")

	if declined {
		return apperrors.ErrCardDeclined
	}
	return nil
}

func parseStatus(raw string) (models.SubscriptionStatus, error) {
	switch status := models.SubscriptionStatus(raw); status {
	case models.SubscriptionStatusTrial, models.SubscriptionStatusValid,
		models.SubscriptionStatusExpired, models.SubscriptionStatusCanceled:
		return status, nil
	default:
		return "", apperrors.NewBadRequestError(fmt.Sprintf("unknown subscription status %q", raw))
	}
}
