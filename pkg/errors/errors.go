// Package errors provides custom error types for the ownermatch system.
// These errors enable programmatic error checking and consistent messages
// across the scoring framework and the collision resolver.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the ownermatch system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownCalculator indicates a calculator name with no binding;
	// callers recover by falling back to the generic comparator
	ErrUnknownCalculator = errors.New("unknown calculator")

	// ErrKindMismatch indicates an attempt to compare two different
	// composite kinds; this is a programmer error and is never recoverable
	ErrKindMismatch = errors.New("composite kind mismatch")

	// ErrSuffixesExhausted indicates a base identifier has consumed the
	// whole A-Z suffix alphabet and cannot register another distinct owner
	ErrSuffixesExhausted = errors.New("suffix alphabet exhausted")
)

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ParseError represents a failure to parse an input value, most commonly a
// raw location identifier
type ParseError struct {
	Input   string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error for %q: %s", e.Input, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewParseError creates a new ParseError
func NewParseError(input, message string) *ParseError {
	return &ParseError{Input: input, Message: message}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{Component: component, Message: message, Err: err}
}

// CalculatorError represents a calculator-name lookup failure
type CalculatorError struct {
	Name string
	Kind string
}

// Error implements the error interface
func (e *CalculatorError) Error() string {
	return fmt.Sprintf("no calculator named %q bound for kind %s", e.Name, e.Kind)
}

// Is implements errors.Is support
func (e *CalculatorError) Is(target error) bool {
	return target == ErrUnknownCalculator
}

// NewCalculatorError creates a new CalculatorError
func NewCalculatorError(name, kind string) *CalculatorError {
	return &CalculatorError{Name: name, Kind: kind}
}

// KindMismatchError reports an attempt to compare composites of two
// different kinds. The weighted dispatcher panics with this error; it marks
// a bug at the call site, not a data problem.
type KindMismatchError struct {
	Left  string
	Right string
}

// Error implements the error interface
func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("cannot compare composite kind %s against %s", e.Left, e.Right)
}

// Is implements errors.Is support
func (e *KindMismatchError) Is(target error) bool {
	return target == ErrKindMismatch
}

// NewKindMismatchError creates a new KindMismatchError
func NewKindMismatchError(left, right string) *KindMismatchError {
	return &KindMismatchError{Left: left, Right: right}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUnknownCalculator checks if an error is an unknown-calculator error
func IsUnknownCalculator(err error) bool {
	return errors.Is(err, ErrUnknownCalculator)
}

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}
