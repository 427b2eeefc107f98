package auth_test

import (
	"testing"
	"time"

	"rental-inventory-backend/internal/auth"
	"rental-inventory-backend/internal/database/models"
	apperrors "rental-inventory-backend/internal/errors"
	"rental-inventory-backend/internal/mocks"
	"rental-inventory-backend/internal/password"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testUser(t *testing.T, pass string) *models.User {
	t.Helper()
	hash, err := password.Hash(pass)
	require.NoError(t, err)
	email := "jane@example.com"

	return &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Tenant:       models.Tenant{OrganizationID: uuid.New()},
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        &email,
		PasswordHash: &hash,
		Role:         models.UserRoleAdmin,
	}
}

func TestIssueAndValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := auth.NewService("test-secret", time.Hour, mocks.NewMockUserFinder(ctrl))
	user := testUser(t, "correct horse battery")

	token, expiresAt, err := service.IssueToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.OrganizationID, claims.OrganizationID)
	assert.Equal(t, models.UserRoleAdmin, claims.Role)
	assert.Equal(t, user.ID.String(), claims.Subject)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	issuer := auth.NewService("secret-a", time.Hour, mocks.NewMockUserFinder(ctrl))
	verifier := auth.NewService("secret-b", time.Hour, mocks.NewMockUserFinder(ctrl))

	token, _, err := issuer.IssueToken(testUser(t, "pw-123456"))
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := auth.NewService("test-secret", time.Hour, mocks.NewMockUserFinder(ctrl))

	_, err := service.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := auth.NewService("test-secret", -time.Minute, mocks.NewMockUserFinder(ctrl))

	token, _, err := service.IssueToken(testUser(t, "pw-123456"))
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := testUser(t, "correct horse battery")
	finder := mocks.NewMockUserFinder(ctrl)
	finder.EXPECT().FindActiveByEmail("jane@example.com").Return(user, nil)

	service := auth.NewService("test-secret", time.Hour, finder)

	loggedIn, token, expiresAt, err := service.Login("jane@example.com", "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := testUser(t, "correct horse battery")
	finder := mocks.NewMockUserFinder(ctrl)
	finder.EXPECT().FindActiveByEmail("jane@example.com").Return(user, nil)

	service := auth.NewService("test-secret", time.Hour, finder)

	_, _, _, err := service.Login("jane@example.com", "wrong password")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	finder := mocks.NewMockUserFinder(ctrl)
	finder.EXPECT().FindActiveByEmail("ghost@example.com").Return(nil, apperrors.ErrUserNotFound)

	service := auth.NewService("test-secret", time.Hour, finder)

	_, _, _, err := service.Login("ghost@example.com", "whatever-123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_UserWithoutPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := testUser(t, "pw-123456")
	user.PasswordHash = nil
	finder := mocks.NewMockUserFinder(ctrl)
	finder.EXPECT().FindActiveByEmail("jane@example.com").Return(user, nil)

	service := auth.NewService("test-secret", time.Hour, finder)

	_, _, _, err := service.Login("jane@example.com", "pw-123456")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
