package common

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidationError represents validation failures
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s': %s", e.Field, e.Message)
}

// Validator collects field-level validation errors for one request.
type Validator struct {
	errors []ValidationError
}

func NewValidator() *Validator {
	return &Validator{}
}

// Field validates a field and collects errors
func (v *Validator) Field(fieldName string, value string, rules ...ValidationRule) *Validator {
	for _, rule := range rules {
		if err := rule(fieldName, value); err != nil {
			v.errors = append(v.errors, *err)
		}
	}
	return v
}

// HasErrors returns true if there are validation errors
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns all validation errors
func (v *Validator) Errors() []ValidationError {
	return v.errors
}

// Error returns a combined error message, nil when clean.
func (v *Validator) Error() error {
	if !v.HasErrors() {
		return nil
	}
	messages := make([]string, 0, len(v.errors))
	for _, err := range v.errors {
		messages = append(messages, err.Error())
	}
	return errors.New(strings.Join(messages, "; "))
}

// ErrorMessage returns the combined message as a string, "" when clean.
func (v *Validator) ErrorMessage() string {
	if err := v.Error(); err != nil {
		return err.Error()
	}
	return ""
}

// ValidationRule represents a single validation rule
type ValidationRule func(fieldName, value string) *ValidationError

// Required rejects empty and whitespace-only values.
func Required(fieldName, value string) *ValidationError {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: fieldName, Message: "is required"}
	}
	return nil
}

// MaxLength bounds the value's rune count.
func MaxLength(max int) ValidationRule {
	return func(fieldName, value string) *ValidationError {
		if utf8.RuneCountInString(value) > max {
			return &ValidationError{
				Field:   fieldName,
				Message: fmt.Sprintf("must be at most %d characters", max),
			}
		}
		return nil
	}
}
