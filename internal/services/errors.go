package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

const (
	ResourceMenuItem = "menu item"
	ResourceCart     = "cart"
	ResourceOrder    = "order"
)

// NotFoundError reports a lookup by identity that matched nothing.
type NotFoundError struct {
	Resource string
	ID       interface{}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Resource, e.ID)
}

// ValidationError reports malformed input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// IntegrityError reports a delete refused because rows still reference the target.
type IntegrityError struct {
	Resource   string
	ID         interface{}
	References int64
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s %v is still referenced by %d line item(s)", e.Resource, e.ID, e.References)
}

// ConflictError reports an operation the target's current state does not allow.
type ConflictError struct {
	Resource string
	ID       interface{}
	Message  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %v: %s", e.Resource, e.ID, e.Message)
}

// StorageError wraps an unexpected persistence failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// storageError wraps err unless it already carries a domain error kind.
func storageError(op string, err error) error {
	if err == nil || isDomainError(err) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

// lookupError maps gorm.ErrRecordNotFound to NotFoundError.
func lookupError(err error, resource string, id interface{}, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Resource: resource, ID: id}
	}
	return storageError(op, err)
}

func isDomainError(err error) bool {
	var (
		notFound   *NotFoundError
		validation *ValidationError
		integrity  *IntegrityError
		conflict   *ConflictError
		storage    *StorageError
	)
	return errors.As(err, &notFound) ||
		errors.As(err, &validation) ||
		errors.As(err, &integrity) ||
		errors.As(err, &conflict) ||
		errors.As(err, &storage)
}
