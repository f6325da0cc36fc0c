// Package validator provides two kinds of checking for registry input:
// a Validator type that accumulates field-level construction errors, and a
// Prompter that keeps asking for a line of input until it is valid.
package validator

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// PhoneRX matches a phone number of exactly nine digits with no formatting.
var PhoneRX = regexp.MustCompile(`^[0-9]{9}$`)

// TimeRX matches the shape of an HH:MM clock time. Range checks are separate.
var TimeRX = regexp.MustCompile(`^[0-9]{2}:[0-9]{2}$`)

// Validator holds a map of field names to their validation error messages.
// A Validator with an empty Errors map is considered valid.
type Validator struct {
	Errors map[string]string
}

// New creates and returns a fresh, empty Validator.
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid returns true if the Errors map contains no entries.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records key as failing with the given message.
// If key already has an error it is not overwritten, so the first
// failure for a field is always the one that is reported.
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

// Check adds an error for key with message only when ok is false.
// Use this as a single-line guard:
//
//	v.Check(len(title) > 0, "title", "must be provided")
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// Err returns nil for a valid Validator, otherwise a *ValidationError
// carrying a copy of the collected field errors.
func (v *Validator) Err() error {
	if v.Valid() {
		return nil
	}
	errs := make(map[string]string, len(v.Errors))
	for k, msg := range v.Errors {
		errs[k] = msg
	}
	return &ValidationError{Errors: errs}
}

// ValidationError reports a rejected construction. The entity it describes
// was not created.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Errors))
	for k := range e.Errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Errors[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// In returns true if value is present in the list slice.
func In(value string, list ...string) bool {
	for _, item := range list {
		if value == item {
			return true
		}
	}
	return false
}

// Matches returns true if value matches the provided compiled regexp.
func Matches(value string, rx *regexp.Regexp) bool {
	return rx.MatchString(value)
}

// Unique returns true if every value is distinct.
func Unique[T comparable](values []T) bool {
	seen := make(map[T]bool)
	for _, v := range values {
		if seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// Between reports whether min <= value <= max.
func Between[T ~int | ~int64](value, min, max T) bool {
	return value >= min && value <= max
}
