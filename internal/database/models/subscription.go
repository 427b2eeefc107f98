package models

import "time"

// SubscriptionStatus represents the billing status of an organization
type SubscriptionStatus string

const (
	SubscriptionStatusTrial    SubscriptionStatus = "trial"
	SubscriptionStatusValid    SubscriptionStatus = "valid"
	SubscriptionStatusExpired  SubscriptionStatus = "expired"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
)

// Subscription is the one-to-one billing record of an organization.
// Status and Valid mirror the payment provider's webhook events.
type Subscription struct {
	BaseModel
	Tenant
	CustomerRef      string             `json:"customer_ref" gorm:"uniqueIndex;not null;size:100"`
	Plan             string             `json:"plan" gorm:"size:50"`
	Status           SubscriptionStatus `json:"status" gorm:"type:varchar(20);not null;default:'trial'"`
	Valid            bool               `json:"valid" gorm:"not null;default:false"`
	CurrentPeriodEnd *time.Time         `json:"current_period_end,omitempty"`
}

// TableName returns the table name for Subscription
func (Subscription) TableName() string {
	return "subscriptions"
}

// Entitles reports whether the subscription grants access to paid features.
func (s *Subscription) Entitles() bool {
	return s.Status == SubscriptionStatusTrial || s.Status == SubscriptionStatusValid
}
