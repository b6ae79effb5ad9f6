// Package domain defines core types, interfaces, and errors for the JDBC bridge.
package domain

import "fmt"

// NotFoundError indicates a stored object was not found.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ValidationError indicates invalid input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError indicates a conflict (e.g., duplicate resource name).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// MissingPropertyError indicates a required configuration key is absent from
// a table's property map. Recoverable by fixing the DDL and retrying.
type MissingPropertyError struct {
	Key string
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("missing required property %q", e.Key)
}

// UnknownResourceError indicates a table references a resource name that is
// not present in the registry.
type UnknownResourceError struct {
	Name string
}

func (e *UnknownResourceError) Error() string {
	return fmt.Sprintf("unknown resource %q", e.Name)
}

// WrongResourceKindError indicates a referenced resource exists but is not a
// JDBC resource.
type WrongResourceKindError struct {
	Name string
	Kind ResourceKind
}

func (e *WrongResourceKindError) Error() string {
	return fmt.Sprintf("resource %q is of kind %s, not %s", e.Name, e.Kind, ResourceKindJDBC)
}

// UnsupportedCapabilityError indicates the URL's protocol cannot carry a
// requested connection feature. Distinct from a missing value: the inputs are
// complete, the protocol just cannot honor them.
type UnsupportedCapabilityError struct {
	Message string
}

func (e *UnsupportedCapabilityError) Error() string { return e.Message }

// ErrNotFound creates a NotFoundError with a formatted message.
func ErrNotFound(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ErrValidation creates a ValidationError with a formatted message.
func ErrValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ErrConflict creates a ConflictError with a formatted message.
func ErrConflict(format string, args ...interface{}) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// ErrUnsupportedCapability creates an UnsupportedCapabilityError with a
// formatted message.
func ErrUnsupportedCapability(format string, args ...interface{}) *UnsupportedCapabilityError {
	return &UnsupportedCapabilityError{Message: fmt.Sprintf(format, args...)}
}
