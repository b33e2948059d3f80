package binder

import (
	"fmt"
	"strings"
)

// Validator checks a field value. Fields without a value are validated
// with a nil value.
type Validator interface {
	// Validate returns nil if valid, or an error with a message if invalid.
	Validate(value any) error
}

// ValidatorFunc is a function that implements Validator.
type ValidatorFunc func(value any) error

func (f ValidatorFunc) Validate(value any) error {
	return f(value)
}

// ValidationError represents a validation failure of one field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Required validates that the field has a non-empty value.
func Required(msg string) Validator {
	if msg == "" {
		msg = "This field is required"
	}
	return ValidatorFunc(func(value any) error {
		if isEmpty(value) {
			return ValidationError{Message: msg}
		}
		return nil
	})
}

// OneOf validates that the value is one of the allowed values.
// Empty values pass; combine with Required to reject them.
func OneOf[V comparable](msg string, allowed ...V) Validator {
	if msg == "" {
		msg = fmt.Sprintf("Must be one of %v", allowed)
	}
	return ValidatorFunc(func(value any) error {
		if isEmpty(value) {
			return nil
		}
		v, ok := value.(V)
		if !ok {
			return ValidationError{Message: msg}
		}
		for _, a := range allowed {
			if v == a {
				return nil
			}
		}
		return ValidationError{Message: msg}
	})
}

// Custom creates a validator from a function.
func Custom(fn func(value any) error) Validator {
	return ValidatorFunc(fn)
}

// isEmpty checks if a value is considered empty.
func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v) == ""
	case []byte:
		return len(v) == 0
	default:
		return false
	}
}

// messageOf extracts the user-facing message of a validator error.
func messageOf(err error) string {
	if ve, ok := err.(ValidationError); ok {
		return ve.Message
	}
	return err.Error()
}
