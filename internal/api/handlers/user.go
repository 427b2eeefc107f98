package handlers

import (
	"net/http"

	"rental-inventory-backend/internal/auth"
	apperrors "rental-inventory-backend/internal/errors"
	"rental-inventory-backend/internal/pagination"
	"rental-inventory-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler manages the members of the caller's organization. Users go
// through the user service rather than the generic resource because
// passwords are hashed on the way in and deletion is an archive, not a
// row removal.
type UserHandler struct {
	users  *service.UserService
	limits PageLimits
}

// NewUserHandler creates the user handlers.
func NewUserHandler(users *service.UserService, limits PageLimits) *UserHandler {
	return &UserHandler{users: users, limits: limits}
}

func (h *UserHandler) callerOrg(c *gin.Context) (uuid.UUID, bool) {
	orgID, ok := auth.OrgFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIError{Code: "unauthorized", Message: apperrors.ErrInvalidToken.Error()})
	}
	return orgID, ok
}

func (h *UserHandler) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, apperrors.ErrUserNotFound)
		return uuid.Nil, false
	}
	return id, true
}

// List handles GET /api/v1/users.
func (h *UserHandler) List(c *gin.Context) {
	orgID, ok := h.callerOrg(c)
	if !ok {
		return
	}

	page := pagination.Parse(c, h.limits.Default, h.limits.Max)
	rows, total, err := h.users.List(orgID, page)
	if err != nil {
		respondError(c, err)
		return
	}

	links := pagination.BuildLinks("/api/v1/users", page.Limit, page.Offset, total)
	c.Header("Link", links.Header())
	c.JSON(http.StatusOK, ListEnvelope{
		Results: rows,
		Total:   total,
		Limit:   page.Limit,
		Offset:  page.Offset,
		Links:   links,
	})
}

// Get handles GET /api/v1/users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	orgID, ok := h.callerOrg(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	user, err := h.users.Get(id, orgID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Create handles PUT /api/v1/users. Admin only.
func (h *UserHandler) Create(c *gin.Context) {
	orgID, ok := h.callerOrg(c)
	if !ok {
		return
	}

	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrWrongFields)
		return
	}

	user, err := h.users.Create(orgID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse{ID: user.ID, Message: "user created"})
}

// Update handles PUT /api/v1/users/:id. Admin only.
func (h *UserHandler) Update(c *gin.Context) {
	orgID, ok := h.callerOrg(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrWrongFields)
		return
	}

	user, err := h.users.Update(id, orgID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Archive handles DELETE /api/v1/users/:id. Admin only. The user is
// archived, never removed, so past rentals keep their renter.
func (h *UserHandler) Archive(c *gin.Context) {
	orgID, ok := h.callerOrg(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	user, err := h.users.Archive(id, orgID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
