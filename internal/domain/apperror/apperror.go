package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidArgument = errors.New("invalid argument")
)

// NotFoundError is returned when an id does not resolve to a stored record.
type NotFoundError struct {
	Kind string
	ID   interface{}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id: %v", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ConflictError is returned when a unique field value is already taken
// or a record still has dependents.
type ConflictError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *ConflictError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s %v: %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("%s already exists: %v", e.Field, e.Value)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func NotFound(kind string, id interface{}) error {
	return &NotFoundError{Kind: kind, ID: id}
}

func Conflict(field string, value interface{}) error {
	return &ConflictError{Field: field, Value: value}
}

// ConflictWithReason is used for dependent-record conflicts where
// "already exists" would be misleading.
func ConflictWithReason(field string, value interface{}, reason string) error {
	return &ConflictError{Field: field, Value: value, Reason: reason}
}

func InvalidArgument(field, reason string) error {
	return &InvalidArgumentError{Field: field, Reason: reason}
}
