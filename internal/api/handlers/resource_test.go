package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"rental-inventory-backend/internal/auth"
	"rental-inventory-backend/internal/database/models"
	apperrors "rental-inventory-backend/internal/errors"
	"rental-inventory-backend/internal/pagination"
	"rental-inventory-backend/internal/repository"
	"rental-inventory-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStore is a canned Store implementation for handler tests.
type stubStore struct {
	rows     []models.Brand
	total    int64
	row      *models.Brand
	affected int64
	err      error

	lastValue   interface{}
	lastOrg     *uuid.UUID
	lastUpdates map[string]interface{}
	created     []*models.Brand
}

func (s *stubStore) Get(value interface{}, orgID *uuid.UUID, spec *repository.QuerySpec) (*models.Brand, error) {
	s.lastValue, s.lastOrg = value, orgID
	return s.row, s.err
}

func (s *stubStore) GetAll(orgID *uuid.UUID, spec *repository.QuerySpec, page pagination.Page) ([]models.Brand, int64, error) {
	s.lastOrg = orgID
	return s.rows, s.total, s.err
}

func (s *stubStore) Create(entity *models.Brand) error {
	if s.err != nil {
		return s.err
	}
	entity.ID = uuid.New()
	s.created = append(s.created, entity)
	return nil
}

func (s *stubStore) CreateAll(entities []models.Brand) error {
	if s.err != nil {
		return s.err
	}
	for i := range entities {
		entities[i].ID = uuid.New()
		s.created = append(s.created, &entities[i])
	}
	return nil
}

func (s *stubStore) Update(value interface{}, updates map[string]interface{}, orgID *uuid.UUID) (*models.Brand, error) {
	s.lastValue, s.lastUpdates, s.lastOrg = value, updates, orgID
	return s.row, s.err
}

func (s *stubStore) Delete(value interface{}, orgID *uuid.UUID) (int64, error) {
	s.lastValue, s.lastOrg = value, orgID
	return s.affected, s.err
}

var testOrgID = uuid.New()

func newResourceRouter(store *stubStore, authed bool) *testutils.HTTPTestSuite {
	suite := testutils.SetupHTTPTest()
	if authed {
		suite.Router.Use(func(c *gin.Context) {
			c.Set(auth.ContextOrgID, testOrgID)
			c.Next()
		})
	}

	resource := NewResource[models.Brand](
		store,
		"id",
		"/api/v1/brands",
		PageLimits{Default: 50, Max: 200},
		Messages{
			Created: "brand created",
			Exists:  "brand already exists",
			Missing: "brand does not exist",
			Deleted: "brand deleted",
		},
		nil,
	)

	suite.Router.GET("/api/v1/brands", resource.List)
	suite.Router.GET("/api/v1/brands/:id", resource.Get)
	suite.Router.PUT("/api/v1/brands", resource.Create)
	suite.Router.PUT("/api/v1/brands/:id", resource.Update)
	suite.Router.DELETE("/api/v1/brands/:id", resource.Delete)
	return suite
}

func TestResourceList(t *testing.T) {
	store := &stubStore{
		rows: []models.Brand{
			{Name: "Peli"},
			{Name: "Manfrotto"},
		},
		total: 10,
	}
	router := newResourceRouter(store, true)

	recorder := router.MakeRequest("GET", "/api/v1/brands?limit=2&offset=0", nil)

	var envelope ListEnvelope
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &envelope)
	assert.Equal(t, int64(10), envelope.Total)
	assert.Equal(t, 2, envelope.Limit)
	assert.Equal(t, 0, envelope.Offset)
	assert.NotNil(t, envelope.Links.Next)
	assert.Nil(t, envelope.Links.Previous)
	assert.Contains(t, recorder.Header().Get("Link"), `rel="next"`)
	require.NotNil(t, store.lastOrg)
	assert.Equal(t, testOrgID, *store.lastOrg)
}

func TestResourceList_Unauthenticated(t *testing.T) {
	router := newResourceRouter(&stubStore{}, false)

	recorder := router.MakeRequest("GET", "/api/v1/brands", nil)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestResourceGet(t *testing.T) {
	store := &stubStore{row: &models.Brand{Name: "Peli"}}
	router := newResourceRouter(store, true)

	recorder := router.MakeRequest("GET", "/api/v1/brands/"+uuid.NewString(), nil)

	var brand models.Brand
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &brand)
	assert.Equal(t, "Peli", brand.Name)
}

func TestResourceGet_NotFoundUsesResourceMessage(t *testing.T) {
	store := &stubStore{err: apperrors.NewNotFoundError("brand")}
	router := newResourceRouter(store, true)

	recorder := router.MakeRequest("GET", "/api/v1/brands/"+uuid.NewString(), nil)

	testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "brand does not exist")
}

func TestResourceCreate_SingleObject(t *testing.T) {
	store := &stubStore{}
	router := newResourceRouter(store, true)

	recorder := router.MakeRequest("PUT", "/api/v1/brands", map[string]interface{}{"name": "Peli"})

	var resp CreatedResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &resp)
	assert.Equal(t, "brand created", resp.Message)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	require.Len(t, store.created, 1)
	assert.Equal(t, testOrgID, store.created[0].OrganizationID)
}

func TestResourceCreate_Array(t *testing.T) {
	store := &stubStore{}
	router := newResourceRouter(store, true)

	body := []map[string]interface{}{{"name": "Peli"}, {"name": "Manfrotto"}}
	recorder := router.MakeRequest("PUT", "/api/v1/brands", body)

	var resp CreatedResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &resp)
	assert.Len(t, resp.IDs, 2)
	assert.Len(t, store.created, 2)
	for _, created := range store.created {
		assert.Equal(t, testOrgID, created.OrganizationID)
	}
}

func TestResourceCreate_KeepsExplicitOrganization(t *testing.T) {
	store := &stubStore{}
	router := newResourceRouter(store, true)
	otherOrg := uuid.New()

	recorder := router.MakeRequest("PUT", "/api/v1/brands", map[string]interface{}{
		"name":            "Peli",
		"organization_id": otherOrg,
	})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	require.Len(t, store.created, 1)
	assert.Equal(t, otherOrg, store.created[0].OrganizationID)
}

func TestResourceCreate_MalformedBody(t *testing.T) {
	store := &stubStore{}
	router := newResourceRouter(store, true)

	recorder := router.MakeRequestWithHeaders("PUT", "/api/v1/brands", nil, map[string]string{"Content-Type": "application/json"})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestResourceCreate_ConflictUsesResourceMessage(t *testing.T) {
	store := &stubStore{err: apperrors.NewConflictError("brand")}
	router := newResourceRouter(store, true)

	recorder := router.MakeRequest("PUT", "/api/v1/brands", map[string]interface{}{"name": "Peli"})

	testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "brand already exists")
}

func TestResourceCreate_UnknownField(t *testing.T) {
	store := &stubStore{}
	router := newResourceRouter(store, true)

	recorder := router.MakeRequest("PUT", "/api/v1/brands", map[string]interface{}{
		"name":      "Peli",
		"shoe_size": 44,
	})

	testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "wrong fields in request body")
	assert.Empty(t, store.created)
}

func TestResourceCreate_UnknownFieldInArray(t *testing.T) {
	store := &stubStore{}
	router := newResourceRouter(store, true)

	recorder := router.MakeRequest("PUT", "/api/v1/brands", []map[string]interface{}{
		{"name": "Peli"},
		{"name": "Manfrotto", "shoe_size": 44},
	})

	testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "wrong fields in request body")
	assert.Empty(t, store.created)
}

func TestResourceUpdate_KeyFromBody(t *testing.T) {
	bodyID := uuid.NewString()
	store := &stubStore{row: &models.Brand{Name: "Renamed"}}
	router := newResourceRouter(store, true)

	recorder := router.MakeRequest("PUT", "/api/v1/brands/"+uuid.NewString(), map[string]interface{}{
		"id":   bodyID,
		"name": "Renamed",
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
	// The body id wins over the path parameter
	assert.Equal(t, bodyID, store.lastValue)
	// The key never reaches the column updates
	_, hasID := store.lastUpdates["id"]
	assert.False(t, hasID)
	assert.Equal(t, "Renamed", store.lastUpdates["name"])
}

func TestResourceUpdate_KeyFallsBackToPath(t *testing.T) {
	pathID := uuid.NewString()
	store := &stubStore{row: &models.Brand{}}
	router := newResourceRouter(store, true)

	recorder := router.MakeRequest("PUT", "/api/v1/brands/"+pathID, map[string]interface{}{"name": "Renamed"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, pathID, store.lastValue)
}

func TestResourceUpdate_UnknownColumn(t *testing.T) {
	store := &stubStore{err: apperrors.NewUnprocessableEntityError("wrong fields in request body")}
	router := newResourceRouter(store, true)

	recorder := router.MakeRequest("PUT", "/api/v1/brands/"+uuid.NewString(), map[string]interface{}{"shoe_size": 44})

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
}

func TestResourceDelete(t *testing.T) {
	store := &stubStore{affected: 1}
	router := newResourceRouter(store, true)

	recorder := router.MakeRequest("DELETE", "/api/v1/brands/"+uuid.NewString(), nil)

	var resp MessageResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &resp)
	assert.Equal(t, "brand deleted", resp.Message)
}

func TestResourceDelete_AbsentRowIs204(t *testing.T) {
	store := &stubStore{affected: 0}
	router := newResourceRouter(store, true)

	recorder := router.MakeRequest("DELETE", "/api/v1/brands/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Body.String())
}

func TestResourceInternalErrorIsOpaque(t *testing.T) {
	store := &stubStore{err: assert.AnError}
	router := newResourceRouter(store, true)

	recorder := router.MakeRequest("GET", "/api/v1/brands/"+uuid.NewString(), nil)

	var apiErr APIError
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &apiErr))
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, "something went wrong", apiErr.Message)
	assert.Equal(t, "internal", apiErr.Code)
}
