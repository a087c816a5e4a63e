package errors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
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

// InvalidReferenceError is returned when a request points at rows that do not exist
type InvalidReferenceError struct {
	Entity string
	IDs    []uint
}

func (e *InvalidReferenceError) Error() string {
	ids := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		ids[i] = strconv.FormatUint(uint64(id), 10)
	}
	if len(ids) == 1 {
		return fmt.Sprintf("%s %s does not exist", e.Entity, ids[0])
	}
	return fmt.Sprintf("the following %s ids do not exist: %s", e.Entity, strings.Join(ids, ", "))
}

// Is matches any InvalidReferenceError for the same entity, regardless of ids
func (e *InvalidReferenceError) Is(target error) bool {
	t, ok := target.(*InvalidReferenceError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrIdeaNotFound     = &NotFoundError{Entity: "idea"}
	ErrStatusNotFound   = &NotFoundError{Entity: "status"}
	ErrCategoryNotFound = &NotFoundError{Entity: "category"}
	ErrChampionNotFound = &NotFoundError{Entity: "champion"}
)

// Invalid Reference Errors, used as errors.Is targets
var (
	ErrInvalidStatus   = &InvalidReferenceError{Entity: "status"}
	ErrInvalidCategory = &InvalidReferenceError{Entity: "category"}
	ErrInvalidChampion = &InvalidReferenceError{Entity: "champion"}
)

// Business Logic Errors
var (
	ErrNoAssignments   = errors.New("at least one idea/champion pair is required")
	ErrMailNotSent     = errors.New("notification email could not be sent")
	ErrSMTPUnavailable = &ConfigurationError{Message: "smtp is not configured (SMTP_HOST/SMTP_SENDER_EMAIL)"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsInvalidReference checks if an error is an InvalidReferenceError
func IsInvalidReference(err error) bool {
	var refErr *InvalidReferenceError
	return errors.As(err, &refErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewInvalidReferenceError creates a new InvalidReferenceError listing the missing ids
func NewInvalidReferenceError(entity string, ids ...uint) error {
	return &InvalidReferenceError{Entity: entity, IDs: ids}
}
