// internal/services/errors.go
package services

import (
	"errors"
	"fmt"
)

// Error kinds. Match with errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

// ServiceError carries a caller-visible message together with its kind.
type ServiceError struct {
	Kind    error
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Kind
}

func invalidInput(format string, args ...interface{}) error {
	return &ServiceError{Kind: ErrInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func notFound(format string, args ...interface{}) error {
	return &ServiceError{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func conflict(format string, args ...interface{}) error {
	return &ServiceError{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

func unauthorized(format string, args ...interface{}) error {
	return &ServiceError{Kind: ErrUnauthorized, Message: fmt.Sprintf(format, args...)}
}

func productNotFound(id uint) error {
	return notFound("Product with ID %d not found", id)
}

func attributeNotFound(id uint) error {
	return notFound("Attribute with ID %d not found", id)
}

func skuNotFound(id uint) error {
	return notFound("Sku with ID %d not found", id)
}

func userNotFound(id uint) error {
	return notFound("User with ID %d not found", id)
}
