package handlers

import (
	"net/http"

	"rental-inventory-backend/internal/auth"
	apperrors "rental-inventory-backend/internal/errors"
	"rental-inventory-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BillingHandler serves the caller's subscription, the plan catalog and
// the payment provider's webhook.
type BillingHandler struct {
	billing *service.BillingService
}

// NewBillingHandler creates the billing handlers.
func NewBillingHandler(billing *service.BillingService) *BillingHandler {
	return &BillingHandler{billing: billing}
}

// GetSubscription handles GET /api/v1/subscription.
func (h *BillingHandler) GetSubscription(c *gin.Context) {
	orgID, ok := auth.OrgFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIError{Code: "unauthorized", Message: apperrors.ErrInvalidToken.Error()})
		return
	}

	sub, err := h.billing.GetByOrganizationID(orgID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// ListPlans handles GET /api/v1/plans.
func (h *BillingHandler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": h.billing.Plans()})
}

// Webhook handles POST /webhooks/billing. The route is not behind the
// auth middleware; the provider authenticates with a shared secret header
// instead.
func (h *BillingHandler) Webhook(c *gin.Context) {
	if err := h.billing.Authorize(c.GetHeader("X-Webhook-Secret")); err != nil {
		respondError(c, err)
		return
	}

	var event service.WebhookEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		respondError(c, apperrors.ErrWrongFields)
		return
	}

	if err := h.billing.ProcessEvent(&event); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "event processed"})
}
