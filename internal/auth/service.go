package auth

import (
	"fmt"
	"time"

	"rental-inventory-backend/internal/database/models"
	apperrors "rental-inventory-backend/internal/errors"
	"rental-inventory-backend/internal/password"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=../mocks/auth_mocks.go -package=mocks

// UserFinder is the lookup surface the auth service needs. The user
// service implements it on top of the generic repository.
type UserFinder interface {
	FindActiveByEmail(email string) (*models.User, error)
	FindByID(id uuid.UUID) (*models.User, error)
}

// Claims represents JWT token claims. The subject is the user id; the
// organization id makes every authenticated request resolvable to a tenant
// without a second lookup.
type Claims struct {
	UserID         uuid.UUID       `json:"user_id"`
	OrganizationID uuid.UUID       `json:"organization_id"`
	Role           models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// Service issues and verifies bearer tokens and checks credentials
type Service struct {
	secret []byte
	expiry time.Duration
	users  UserFinder
}

// NewService creates a new authentication service
func NewService(secret string, expiry time.Duration, users UserFinder) *Service {
	return &Service{
		secret: []byte(secret),
		expiry: expiry,
		users:  users,
	}
}

// IssueToken creates a signed JWT for the given user.
func (s *Service) IssueToken(user *models.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiry)

	claims := &Claims{
		UserID:         user.ID,
		OrganizationID: user.OrganizationID,
		Role:           user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "rental-inventory-backend",
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateToken verifies the signature and expiry of a bearer token and
// returns its claims.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

// Login checks credentials against the stored argon2id hash and returns
// the user with a fresh token. Archived users cannot log in: their email
// and password were nulled when they were archived.
func (s *Service) Login(email, pass string) (*models.User, string, time.Time, error) {
	user, err := s.users.FindActiveByEmail(email)
	if err != nil {
		return nil, "", time.Time{}, apperrors.ErrInvalidCredentials
	}
	if user.PasswordHash == nil {
		return nil, "", time.Time{}, apperrors.ErrInvalidCredentials
	}

	ok, err := password.Verify(pass, *user.PasswordHash)
	if err != nil || !ok {
		return nil, "", time.Time{}, apperrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.IssueToken(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, expiresAt, nil
}
