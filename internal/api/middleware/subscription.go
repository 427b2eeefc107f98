package middleware

import (
	"net/http"

	"rental-inventory-backend/internal/auth"
	"rental-inventory-backend/internal/database/models"
	apperrors "rental-inventory-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=subscription.go -destination=../../mocks/subscription_mocks.go -package=mocks

// SubscriptionReader is the lookup the gate needs; implemented by the
// billing service.
type SubscriptionReader interface {
	GetByOrganizationID(orgID uuid.UUID) (*models.Subscription, error)
}

// SubscriptionGate blocks paid-feature routes unless the caller's
// organization has a trial or valid subscription. It must run after
// authentication; if the caller context is missing the request passes
// through with a warning so a misconfigured route degrades loudly instead
// of breaking.
func SubscriptionGate(subscriptions SubscriptionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		orgID, ok := auth.OrgFromContext(c)
		if !ok {
			logrus.WithField("path", c.Request.URL.Path).
				Warn("subscription gate invoked without caller context, passing through")
			c.Next()
			return
		}

		sub, err := subscriptions.GetByOrganizationID(orgID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				c.JSON(http.StatusPaymentRequired, gin.H{
					"code":    "payment_required",
					"message": apperrors.ErrNoSubscription.Error(),
				})
				c.Abort()
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"code": "internal", "message": "something went wrong"})
			c.Abort()
			return
		}

		if !sub.Entitles() {
			c.JSON(http.StatusPaymentRequired, gin.H{
				"code":    "payment_required",
				"message": apperrors.ErrSubscriptionInvalid.Error(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
