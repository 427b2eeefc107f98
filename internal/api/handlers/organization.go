package handlers

import (
	"net/http"

	"rental-inventory-backend/internal/auth"
	"rental-inventory-backend/internal/database/models"
	apperrors "rental-inventory-backend/internal/errors"
	"rental-inventory-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OrganizationHandler serves the caller's own organization. There is no
// collection endpoint: a tenant can only see itself.
type OrganizationHandler struct {
	orgs *repository.Repository[models.Organization]
}

// NewOrganizationHandler creates the organization handlers.
func NewOrganizationHandler(db *gorm.DB) *OrganizationHandler {
	return &OrganizationHandler{
		orgs: repository.New[models.Organization](db, repository.Organizations),
	}
}

// Get handles GET /api/v1/organization. The subscription rides along so a
// client can show the billing state without a second call.
func (h *OrganizationHandler) Get(c *gin.Context) {
	orgID, ok := auth.OrgFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIError{Code: "unauthorized", Message: apperrors.ErrInvalidToken.Error()})
		return
	}

	org, err := h.orgs.Get(orgID, nil, repository.NewSpec().Preload("Subscription"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, org)
}

// Update handles PUT /api/v1/organization. Only the name and contact email
// are writable; billing fields belong to the webhook.
func (h *OrganizationHandler) Update(c *gin.Context) {
	orgID, ok := auth.OrgFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIError{Code: "unauthorized", Message: apperrors.ErrInvalidToken.Error()})
		return
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, apperrors.ErrWrongFields)
		return
	}

	org, err := h.orgs.Update(orgID, body, nil)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, org)
}

// respondError is the uniform error-to-HTTP mapping for handlers that do
// not go through the generic resource.
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "something went wrong"
	}
	c.JSON(status, APIError{Code: apperrors.Code(err), Message: message})
}
