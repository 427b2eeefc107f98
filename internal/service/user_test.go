//go:build integration
// +build integration

package service

import (
	"testing"

	"rental-inventory-backend/internal/database/models"
	apperrors "rental-inventory-backend/internal/errors"
	"rental-inventory-backend/internal/pagination"
	"rental-inventory-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// UserServiceTestSuite tests user management and the auth lookups
type UserServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	service       *UserService
	org           *models.Organization
}

// SetupSuite runs before all tests in the suite
func (suite *UserServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()
	suite.service = NewUserService(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *UserServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.org = suite.factories.Organization.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.org).Error)
}

// TearDownTest runs after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *UserServiceTestSuite) TestCreate() {
	user, err := suite.service.Create(suite.org.ID, &CreateUserRequest{
		FirstName: "Noa",
		LastName:  "Levi",
		Email:     "noa@test.com",
		Password:  "pw-12345678",
	})
	suite.Require().NoError(err)
	suite.Equal(models.UserRoleMember, user.Role)
	suite.Equal(suite.org.ID, user.OrganizationID)
	suite.NotNil(user.PasswordHash)
}

func (suite *UserServiceTestSuite) TestCreate_DuplicateEmail() {
	req := &CreateUserRequest{
		FirstName: "Noa", LastName: "Levi",
		Email: "noa@test.com", Password: "pw-12345678",
	}
	_, err := suite.service.Create(suite.org.ID, req)
	suite.Require().NoError(err)

	_, err = suite.service.Create(suite.org.ID, req)
	suite.True(apperrors.IsConflict(err))
}

func (suite *UserServiceTestSuite) TestCreate_InvalidEmail() {
	_, err := suite.service.Create(suite.org.ID, &CreateUserRequest{
		FirstName: "Noa", LastName: "Levi",
		Email: "not-an-email", Password: "pw-12345678",
	})
	suite.True(apperrors.IsBadRequest(err))
}

func (suite *UserServiceTestSuite) TestUpdate() {
	user, err := suite.service.Create(suite.org.ID, &CreateUserRequest{
		FirstName: "Noa", LastName: "Levi",
		Email: "noa@test.com", Password: "pw-12345678",
	})
	suite.Require().NoError(err)

	role := models.UserRoleAdmin
	updated, err := suite.service.Update(user.ID, suite.org.ID, &UpdateUserRequest{Role: &role})
	suite.Require().NoError(err)
	suite.Equal(models.UserRoleAdmin, updated.Role)
	suite.Equal("Noa", updated.FirstName)
}

func (suite *UserServiceTestSuite) TestArchive() {
	user, err := suite.service.Create(suite.org.ID, &CreateUserRequest{
		FirstName: "Noa", LastName: "Levi",
		Email: "noa@test.com", Password: "pw-12345678",
	})
	suite.Require().NoError(err)

	archived, err := suite.service.Archive(user.ID, suite.org.ID)
	suite.Require().NoError(err)

	// Email and password are nulled in the same write as the timestamp
	suite.NotNil(archived.ArchivedAt)
	suite.Nil(archived.Email)
	suite.Nil(archived.PasswordHash)

	// The row itself is still there
	kept, err := suite.service.Get(user.ID, suite.org.ID)
	suite.NoError(err)
	suite.True(kept.IsArchived())
}

func (suite *UserServiceTestSuite) TestArchive_Twice() {
	user, err := suite.service.Create(suite.org.ID, &CreateUserRequest{
		FirstName: "Noa", LastName: "Levi",
		Email: "noa@test.com", Password: "pw-12345678",
	})
	suite.Require().NoError(err)

	_, err = suite.service.Archive(user.ID, suite.org.ID)
	suite.Require().NoError(err)

	_, err = suite.service.Archive(user.ID, suite.org.ID)
	suite.ErrorIs(err, apperrors.ErrUserAlreadyArchived)
}

func (suite *UserServiceTestSuite) TestArchive_ReleasesEmailForReuse() {
	req := &CreateUserRequest{
		FirstName: "Noa", LastName: "Levi",
		Email: "noa@test.com", Password: "pw-12345678",
	}
	user, err := suite.service.Create(suite.org.ID, req)
	suite.Require().NoError(err)

	_, err = suite.service.Archive(user.ID, suite.org.ID)
	suite.Require().NoError(err)

	// The unique email is free again
	_, err = suite.service.Create(suite.org.ID, req)
	suite.NoError(err)
}

func (suite *UserServiceTestSuite) TestFindActiveByEmail() {
	user, err := suite.service.Create(suite.org.ID, &CreateUserRequest{
		FirstName: "Noa", LastName: "Levi",
		Email: "noa@test.com", Password: "pw-12345678",
	})
	suite.Require().NoError(err)

	found, err := suite.service.FindActiveByEmail("noa@test.com")
	suite.Require().NoError(err)
	suite.Equal(user.ID, found.ID)
}

func (suite *UserServiceTestSuite) TestFindActiveByEmail_Unknown() {
	_, err := suite.service.FindActiveByEmail("ghost@test.com")
	suite.True(apperrors.IsNotFound(err))
}

func (suite *UserServiceTestSuite) TestList_ScopedToOrganization() {
	other := suite.factories.Organization.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(other).Error)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(suite.factories.User.Create(other.ID)).Error)

	_, err := suite.service.Create(suite.org.ID, &CreateUserRequest{
		FirstName: "Noa", LastName: "Levi",
		Email: "noa@test.com", Password: "pw-12345678",
	})
	suite.Require().NoError(err)

	rows, total, err := suite.service.List(suite.org.ID, pagination.Page{Limit: 50})
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(rows, 1)
	suite.Equal(suite.org.ID, rows[0].OrganizationID)
}

func (suite *UserServiceTestSuite) TestGet_OtherOrganization() {
	other := suite.factories.Organization.Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(other).Error)
	foreign := suite.factories.User.Create(other.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(foreign).Error)

	_, err := suite.service.Get(foreign.ID, suite.org.ID)
	suite.True(apperrors.IsNotFound(err))
}

// TestUserServiceTestSuite runs the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
