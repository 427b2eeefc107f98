package auth

import (
	"net/http"
	"time"

	"rental-inventory-backend/internal/database/models"
	apperrors "rental-inventory-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// RegisterRequest represents the request to register a new organization
// with its first (admin) user.
type RegisterRequest struct {
	OrganizationName string `json:"organization_name" validate:"required,min=1,max=100"`
	Email            string `json:"email" validate:"required,email,max=255"`
	Password         string `json:"password" validate:"required,min=8,max=128"`
	FirstName        string `json:"first_name" validate:"required,max=100"`
	LastName         string `json:"last_name" validate:"required,max=100"`
}

// Registrar creates an organization, its admin user and a trial
// subscription in one transaction. Implemented by the registration service.
type Registrar interface {
	Register(req *RegisterRequest) (*models.User, error)
}

// LoginRequest represents the login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is returned on successful login or registration
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	User        *models.User `json:"user"`
}

// Handler handles authentication HTTP requests
type Handler struct {
	service   *Service
	registrar Registrar
}

// NewHandler creates a new authentication handler
func NewHandler(service *Service, registrar Registrar) *Handler {
	return &Handler{service: service, registrar: registrar}
}

// Register handles POST /api/auth/register
// @Summary Register a new organization
// @Description Create an organization, its admin user and a trial subscription
// @Tags auth
// @Accept json
// @Produce json
// @Param registration body RegisterRequest true "Registration data"
// @Success 201 {object} TokenResponse "Organization registered"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Organization or email already exists"
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "bad_request", "message": "invalid request body"})
		return
	}

	user, err := h.registrar.Register(&req)
	if err != nil {
		c.JSON(apperrors.HTTPStatus(err), gin.H{"code": apperrors.Code(err), "message": err.Error()})
		return
	}

	token, expiresAt, err := h.service.IssueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "internal", "message": "something went wrong"})
		return
	}

	c.JSON(http.StatusCreated, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
		User:        user,
	})
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Exchange email and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} TokenResponse "Authenticated"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "bad_request", "message": "invalid request body"})
		return
	}

	user, token, expiresAt, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(apperrors.HTTPStatus(err), gin.H{"code": apperrors.Code(err), "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
		User:        user,
	})
}

// Me handles GET /api/auth/me
// @Summary Current user
// @Description Return the authenticated user
// @Tags auth
// @Produce json
// @Success 200 {object} models.User "Authenticated user"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	userID, ok := UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "unauthorized", "message": "invalid token"})
		return
	}

	user, err := h.service.users.FindByID(userID)
	if err != nil {
		c.JSON(apperrors.HTTPStatus(err), gin.H{"code": apperrors.Code(err), "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}
