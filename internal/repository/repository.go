package repository

import (
	"fmt"

	apperrors "rental-inventory-backend/internal/errors"
	"rental-inventory-backend/internal/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is the surface the endpoint factory depends on. Repository
// implements it; handler tests substitute a stub.
type Store[T any] interface {
	Get(value interface{}, orgID *uuid.UUID, spec *QuerySpec) (*T, error)
	GetAll(orgID *uuid.UUID, spec *QuerySpec, page pagination.Page) ([]T, int64, error)
	Create(entity *T) error
	CreateAll(entities []T) error
	Update(value interface{}, updates map[string]interface{}, orgID *uuid.UUID) (*T, error)
	Delete(value interface{}, orgID *uuid.UUID) (int64, error)
}

// Repository is the generic data access layer: every read and write for an
// organization-scoped table goes through here so tenant isolation has a
// single enforcement point. It is parameterized by the model type and the
// statically declared schema descriptor for its table.
type Repository[T any] struct {
	db     *gorm.DB
	schema Schema
}

// New creates a repository for the given schema over an injected handle.
func New[T any](db *gorm.DB, schema Schema) *Repository[T] {
	return &Repository[T]{db: db, schema: schema}
}

// Schema returns the schema descriptor the repository was built with.
func (r *Repository[T]) Schema() Schema {
	return r.schema
}

// scoped restricts the query to the given organization when the table is
// organization-scoped and a caller organization is known.
func (r *Repository[T]) scoped(q *gorm.DB, orgID *uuid.UUID) *gorm.DB {
	if r.schema.OrgScoped && orgID != nil {
		q = q.Where(fmt.Sprintf("%s.organization_id = ?", r.schema.Table), *orgID)
	}
	return q
}

// keyed restricts the query to the row(s) whose key column matches value.
func (r *Repository[T]) keyed(q *gorm.DB, value interface{}) *gorm.DB {
	return q.Where(fmt.Sprintf("%s.%s = ?", r.schema.Table, r.schema.Key), value)
}

// Get returns the first row whose key column equals value, scoped to the
// organization when given. A missing row is a NotFound error.
func (r *Repository[T]) Get(value interface{}, orgID *uuid.UUID, spec *QuerySpec) (*T, error) {
	var row T
	q := r.scoped(r.keyed(r.db.Model(new(T)), value), orgID)
	if spec != nil {
		q = spec.Apply(q)
	}
	if err := q.First(&row).Error; err != nil {
		return nil, apperrors.Translate(r.schema.Entity, err)
	}
	return &row, nil
}

// GetAll returns the rows matching the scope and specification along with
// the total row count before the limit/offset window is applied.
func (r *Repository[T]) GetAll(orgID *uuid.UUID, spec *QuerySpec, page pagination.Page) ([]T, int64, error) {
	var total int64
	counter := r.scoped(r.db.Model(new(T)), orgID)
	if spec != nil {
		counter = spec.filter(counter)
	}
	if err := counter.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Translate(r.schema.Entity, err)
	}

	var rows []T
	q := r.scoped(r.db.Model(new(T)), orgID)
	if spec != nil {
		q = spec.Apply(q)
	}
	if page.Limit > 0 {
		q = q.Limit(page.Limit).Offset(page.Offset)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, apperrors.Translate(r.schema.Entity, err)
	}

	return rows, total, nil
}

// Create inserts one row. Uniqueness violations surface as Conflict.
func (r *Repository[T]) Create(entity *T) error {
	if err := r.db.Create(entity).Error; err != nil {
		return apperrors.Translate(r.schema.Entity, err)
	}
	return nil
}

// CreateAll inserts a batch of rows in one statement.
func (r *Repository[T]) CreateAll(entities []T) error {
	if len(entities) == 0 {
		return nil
	}
	if err := r.db.Create(&entities).Error; err != nil {
		return apperrors.Translate(r.schema.Entity, err)
	}
	return nil
}

// Update verifies the scoped row exists, rejects writes to columns the
// schema does not declare, applies the remaining columns and returns the
// post-update row. Immutable columns are silently dropped.
func (r *Repository[T]) Update(value interface{}, updates map[string]interface{}, orgID *uuid.UUID) (*T, error) {
	existing, err := r.Get(value, orgID, nil)
	if err != nil {
		return nil, err
	}

	cleaned := make(map[string]interface{}, len(updates))
	for column, v := range updates {
		if immutableColumns[column] {
			continue
		}
		if !r.schema.HasColumn(column) {
			return nil, apperrors.NewUnprocessableEntityError("wrong fields in request body")
		}
		cleaned[column] = v
	}

	if len(cleaned) > 0 {
		q := r.scoped(r.keyed(r.db.Model(new(T)), value), orgID)
		if err := q.Updates(cleaned).Error; err != nil {
			return nil, apperrors.Translate(r.schema.Entity, err)
		}
	}

	// Reload by primary key so a changed key column still resolves.
	if ident, ok := any(existing).(interface{ GetID() uuid.UUID }); ok {
		var row T
		err := r.scoped(r.db.Model(new(T)).Where(fmt.Sprintf("%s.id = ?", r.schema.Table), ident.GetID()), orgID).First(&row).Error
		if err != nil {
			return nil, apperrors.Translate(r.schema.Entity, err)
		}
		return &row, nil
	}
	return r.Get(value, orgID, nil)
}

// Delete removes the scoped row(s) and returns the number of rows
// affected. Zero is not an error: the row was already absent.
func (r *Repository[T]) Delete(value interface{}, orgID *uuid.UUID) (int64, error) {
	q := r.scoped(r.keyed(r.db, value), orgID)
	result := q.Delete(new(T))
	if result.Error != nil {
		return 0, apperrors.Translate(r.schema.Entity, result.Error)
	}
	return result.RowsAffected, nil
}
