package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"rental-inventory-backend/internal/auth"
	apperrors "rental-inventory-backend/internal/errors"
	"rental-inventory-backend/internal/pagination"
	"rental-inventory-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Messages are the per-resource overrides for the generic response texts.
// Empty fields fall back to the defaults from the error taxonomy.
type Messages struct {
	Created     string
	Exists      string
	Missing     string
	Deleted     string
	WrongFields string
}

// PageLimits carries the configured pagination bounds into list handlers.
type PageLimits struct {
	Default int
	Max     int
}

// APIError is the uniform error response shape.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse is returned by the generic create handler.
type CreatedResponse struct {
	ID      uuid.UUID   `json:"id,omitempty"`
	IDs     []uuid.UUID `json:"ids,omitempty"`
	Message string      `json:"message"`
}

// MessageResponse is returned by the generic delete handler.
type MessageResponse struct {
	Message string `json:"message"`
}

// ListEnvelope wraps list results with the pagination window and links.
type ListEnvelope struct {
	Results interface{}      `json:"results"`
	Total   int64            `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
	Links   pagination.Links `json:"links"`
}

// Resource is the endpoint factory: given a store, a key parameter name
// and optional per-resource messages and query specification, it produces
// the five generic CRUD handlers. Controllers are thin compositions over
// it; the dispatch logic never changes per resource.
type Resource[T any] struct {
	store    repository.Store[T]
	key      string
	basePath string
	limits   PageLimits
	messages Messages
	spec     func(*gin.Context) *repository.QuerySpec
}

// NewResource builds the generic handler set for one resource. spec may be
// nil; when present it is re-evaluated per request so joins and filters
// can depend on query parameters.
func NewResource[T any](store repository.Store[T], key, basePath string, limits PageLimits, messages Messages, spec func(*gin.Context) *repository.QuerySpec) *Resource[T] {
	return &Resource[T]{
		store:    store,
		key:      key,
		basePath: basePath,
		limits:   limits,
		messages: messages,
		spec:     spec,
	}
}

func (r *Resource[T]) querySpec(c *gin.Context) *repository.QuerySpec {
	if r.spec == nil {
		return nil
	}
	return r.spec(c)
}

// callerOrg resolves the authenticated caller's organization. Generic
// resources are always organization-scoped, so a missing caller context is
// an authentication failure, not a wildcard.
func (r *Resource[T]) callerOrg(c *gin.Context) (uuid.UUID, bool) {
	orgID, ok := auth.OrgFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, APIError{Code: "unauthorized", Message: apperrors.ErrInvalidToken.Error()})
	}
	return orgID, ok
}

// List handles GET on the collection path.
func (r *Resource[T]) List(c *gin.Context) {
	orgID, ok := r.callerOrg(c)
	if !ok {
		return
	}

	page := pagination.Parse(c, r.limits.Default, r.limits.Max)
	rows, total, err := r.store.GetAll(&orgID, r.querySpec(c), page)
	if err != nil {
		r.respondError(c, err)
		return
	}

	links := pagination.BuildLinks(r.basePath, page.Limit, page.Offset, total)
	c.Header("Link", links.Header())
	c.JSON(http.StatusOK, ListEnvelope{
		Results: rows,
		Total:   total,
		Limit:   page.Limit,
		Offset:  page.Offset,
		Links:   links,
	})
}

// Get handles GET on the keyed path.
func (r *Resource[T]) Get(c *gin.Context) {
	orgID, ok := r.callerOrg(c)
	if !ok {
		return
	}

	row, err := r.store.Get(c.Param(r.key), &orgID, r.querySpec(c))
	if err != nil {
		r.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, row)
}

// Create handles PUT on the collection path. The body may be a single
// object or an array of objects; rows without an organization id default
// to the caller's organization.
func (r *Resource[T]) Create(c *gin.Context) {
	orgID, ok := r.callerOrg(c)
	if !ok {
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		r.respondError(c, apperrors.ErrWrongFields)
		return
	}

	if isJSONArray(raw) {
		var entities []T
		if err := decodeStrict(raw, &entities); err != nil {
			r.respondError(c, apperrors.ErrWrongFields)
			return
		}
		for i := range entities {
			defaultOwner(&entities[i], orgID)
		}
		if err := r.store.CreateAll(entities); err != nil {
			r.respondError(c, err)
			return
		}
		ids := make([]uuid.UUID, 0, len(entities))
		for i := range entities {
			if ident, ok := any(&entities[i]).(identifiable); ok {
				ids = append(ids, ident.GetID())
			}
		}
		c.JSON(http.StatusCreated, CreatedResponse{IDs: ids, Message: r.createdMessage()})
		return
	}

	var entity T
	if err := decodeStrict(raw, &entity); err != nil {
		r.respondError(c, apperrors.ErrWrongFields)
		return
	}
	defaultOwner(&entity, orgID)
	if err := r.store.Create(&entity); err != nil {
		r.respondError(c, err)
		return
	}

	resp := CreatedResponse{Message: r.createdMessage()}
	if ident, ok := any(&entity).(identifiable); ok {
		resp.ID = ident.GetID()
	}
	c.JSON(http.StatusCreated, resp)
}

// Update handles PUT on the keyed path. The key value is taken from the
// request body, falling back to the path parameter; the remaining body
// fields become the column updates.
func (r *Resource[T]) Update(c *gin.Context) {
	orgID, ok := r.callerOrg(c)
	if !ok {
		return
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		r.respondError(c, apperrors.ErrWrongFields)
		return
	}

	value, ok := body[r.key]
	if !ok || value == nil || value == "" {
		value = c.Param(r.key)
	}
	if value == "" {
		r.respondError(c, apperrors.NewBadRequestError("missing "+r.key+" in request"))
		return
	}
	delete(body, r.key)

	row, err := r.store.Update(value, body, &orgID)
	if err != nil {
		r.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, row)
}

// Delete handles DELETE on the keyed path. Deleting an absent row is not
// an error: it responds 204 with no body.
func (r *Resource[T]) Delete(c *gin.Context) {
	orgID, ok := r.callerOrg(c)
	if !ok {
		return
	}

	affected, err := r.store.Delete(c.Param(r.key), &orgID)
	if err != nil {
		r.respondError(c, err)
		return
	}

	if affected == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: r.deletedMessage()})
}

// respondError performs the uniform error-to-HTTP mapping with the
// per-resource message overrides applied.
func (r *Resource[T]) respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	message := err.Error()

	switch {
	case apperrors.IsNotFound(err) && r.messages.Missing != "":
		message = r.messages.Missing
	case apperrors.IsConflict(err) && r.messages.Exists != "":
		message = r.messages.Exists
	case (apperrors.IsBadRequest(err) || apperrors.IsUnprocessable(err)) && r.messages.WrongFields != "":
		message = r.messages.WrongFields
	case status == http.StatusInternalServerError:
		message = "something went wrong"
	}

	c.JSON(status, APIError{Code: apperrors.Code(err), Message: message})
}

func (r *Resource[T]) createdMessage() string {
	if r.messages.Created != "" {
		return r.messages.Created
	}
	return "created"
}

func (r *Resource[T]) deletedMessage() string {
	if r.messages.Deleted != "" {
		return r.messages.Deleted
	}
	return "deleted"
}

type identifiable interface {
	GetID() uuid.UUID
}

type owned interface {
	OwnerID() uuid.UUID
	SetOwnerID(uuid.UUID)
}

// defaultOwner assigns the caller's organization to a row whose body did
// not carry one.
func defaultOwner[T any](entity *T, orgID uuid.UUID) {
	if o, ok := any(entity).(owned); ok && o.OwnerID() == uuid.Nil {
		o.SetOwnerID(orgID)
	}
}

// decodeStrict unmarshals a create body rejecting fields the entity does
// not declare, so a misspelled column fails the request instead of being
// dropped on the floor.
func decodeStrict(raw []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func isJSONArray(raw []byte) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}
