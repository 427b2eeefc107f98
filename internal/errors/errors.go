package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s does not exist", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return t.Entity == "" || e.Entity == t.Entity
}

// ConflictError represents an error when a uniqueness constraint is violated
type ConflictError struct {
	Entity string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return t.Entity == "" || e.Entity == t.Entity
}

// BadRequestError represents missing or invalid input, including writes
// that reference columns the table does not have
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

// UnprocessableEntityError represents an update payload whose shape does
// not match the target table
type UnprocessableEntityError struct {
	Message string
}

func (e *UnprocessableEntityError) Error() string {
	return e.Message
}

// UnauthorizedError represents bad credentials or a missing/invalid token
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return e.Message
}

// PaymentRequiredError represents a missing or invalid subscription
type PaymentRequiredError struct {
	Message string
}

func (e *PaymentRequiredError) Error() string {
	return e.Message
}

// ValidationError represents a request DTO validation failure
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound   = &NotFoundError{Entity: "organization"}
	ErrUserNotFound           = &NotFoundError{Entity: "user"}
	ErrItemNotFound           = &NotFoundError{Entity: "item"}
	ErrBrandNotFound          = &NotFoundError{Entity: "brand"}
	ErrModelNotFound          = &NotFoundError{Entity: "model"}
	ErrKitNotFound            = &NotFoundError{Entity: "kit"}
	ErrCategoryNotFound       = &NotFoundError{Entity: "category"}
	ErrCustomFieldNotFound    = &NotFoundError{Entity: "custom field"}
	ErrRentalNotFound         = &NotFoundError{Entity: "rental"}
	ErrExternalRenterNotFound = &NotFoundError{Entity: "external renter"}
	ErrSubscriptionNotFound   = &NotFoundError{Entity: "subscription"}
)

// Already Exists Errors
var (
	ErrOrganizationExists = &ConflictError{Entity: "organization"}
	ErrUserExists         = &ConflictError{Entity: "user"}
	ErrItemExists         = &ConflictError{Entity: "item"}
)

// Request / auth / billing errors
var (
	ErrWrongFields         = &BadRequestError{Message: "wrong fields in request body"}
	ErrInvalidCredentials  = &UnauthorizedError{Message: "invalid email or password"}
	ErrInvalidToken        = &UnauthorizedError{Message: "invalid token"}
	ErrSubscriptionInvalid = &PaymentRequiredError{Message: "subscription is invalid"}
	ErrNoSubscription      = &PaymentRequiredError{Message: "organization has no subscription"}
	ErrCardDeclined        = &PaymentRequiredError{Message: "card was declined"}
)

// Business logic errors
var (
	ErrInvalidTimeRange    = &BadRequestError{Message: "rental must end after it starts"}
	ErrRentalOverlap       = &ConflictError{Entity: "active rental for item"}
	ErrRenterRequired      = &BadRequestError{Message: "rental requires exactly one of user or external renter"}
	ErrRentalNoItems       = &BadRequestError{Message: "rental requires at least one item"}
	ErrAlreadyReturned     = &BadRequestError{Message: "rental has already been returned"}
	ErrUserAlreadyArchived = &BadRequestError{Message: "user is already archived"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsBadRequest checks if an error is a BadRequestError
func IsBadRequest(err error) bool {
	var badReqErr *BadRequestError
	return errors.As(err, &badReqErr)
}

// IsUnprocessable checks if an error is an UnprocessableEntityError
func IsUnprocessable(err error) bool {
	var unprocErr *UnprocessableEntityError
	return errors.As(err, &unprocErr)
}

// IsUnauthorized checks if an error is an UnauthorizedError
func IsUnauthorized(err error) bool {
	var unauthErr *UnauthorizedError
	return errors.As(err, &unauthErr)
}

// IsPaymentRequired checks if an error is a PaymentRequiredError
func IsPaymentRequired(err error) bool {
	var payErr *PaymentRequiredError
	return errors.As(err, &payErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError for a custom entity
func NewConflictError(entity string) error {
	return &ConflictError{Entity: entity}
}

// NewBadRequestError creates a new BadRequestError
func NewBadRequestError(message string) error {
	return &BadRequestError{Message: message}
}

// NewUnprocessableEntityError creates a new UnprocessableEntityError
func NewUnprocessableEntityError(message string) error {
	return &UnprocessableEntityError{Message: message}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// HTTPStatus maps an application error to the HTTP status code it should
// surface as. Anything unclassified is an internal server error.
func HTTPStatus(err error) int {
	switch {
	case IsNotFound(err):
		return http.StatusNotFound
	case IsConflict(err):
		return http.StatusConflict
	case IsBadRequest(err) || IsValidation(err):
		return http.StatusBadRequest
	case IsUnprocessable(err):
		return http.StatusUnprocessableEntity
	case IsUnauthorized(err):
		return http.StatusUnauthorized
	case IsPaymentRequired(err):
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}

// Code returns the stable machine-readable code carried in error responses.
func Code(err error) string {
	switch {
	case IsNotFound(err):
		return "not_found"
	case IsConflict(err):
		return "conflict"
	case IsBadRequest(err) || IsValidation(err):
		return "bad_request"
	case IsUnprocessable(err):
		return "unprocessable_entity"
	case IsUnauthorized(err):
		return "unauthorized"
	case IsPaymentRequired(err):
		return "payment_required"
	default:
		return "internal"
	}
}
