// Package validation holds the boundary checks for user-supplied scoring
// inputs. The calculator itself trusts its callers; anything out of range is
// rejected here, before a test case is created or patched.
package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Validator collects field-level validation errors.
type Validator struct {
	errors map[string]string
}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{
		errors: make(map[string]string),
	}
}

// Valid reports whether no validation errors were recorded.
func (v *Validator) Valid() bool {
	return len(v.errors) == 0
}

// Errors returns the validation errors keyed by field name.
func (v *Validator) Errors() map[string]string {
	return v.errors
}

// AddError records a validation error; the first error per field wins.
func (v *Validator) AddError(field, message string) {
	if _, exists := v.errors[field]; !exists {
		v.errors[field] = message
	}
}

// Err collapses the recorded errors into a single error, nil when valid.
func (v *Validator) Err() error {
	if v.Valid() {
		return nil
	}
	fields := make([]string, 0, len(v.errors))
	for f := range v.errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var parts []string
	for _, f := range fields {
		parts = append(parts, v.errors[f])
	}
	return errors.New(strings.Join(parts, "; "))
}

// Required checks that a string value is not empty.
func (v *Validator) Required(value, fieldName string) {
	if strings.TrimSpace(value) == "" {
		v.AddError(fieldName, fmt.Sprintf("%s is required", fieldName))
	}
}

// Range checks that an integer lies within [min, max].
func (v *Validator) Range(value, min, max int, fieldName string) {
	if value < min || value > max {
		v.AddError(fieldName, fmt.Sprintf("%s must be between %d and %d, got %d", fieldName, min, max, value))
	}
}

// Min checks that an integer is at least min.
func (v *Validator) Min(value, min int, fieldName string) {
	if value < min {
		v.AddError(fieldName, fmt.Sprintf("%s must be at least %d, got %d", fieldName, min, value))
	}
}

// OneOf checks that a value is one of the allowed values.
func (v *Validator) OneOf(value string, allowed []string, fieldName string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.AddError(fieldName, fmt.Sprintf("%s must be one of: %s", fieldName, strings.Join(allowed, ", ")))
}

// TestCaseInputs runs the standard rubric-range checks used by every entry
// point that creates or edits a test case.
func (v *Validator) TestCaseInputs(frequency, impact, areas, easy, quick int) {
	v.Range(frequency, 1, 5, "userFrequency")
	v.Range(impact, 1, 5, "businessImpact")
	v.Min(areas, 1, "affectedAreas")
	if easy != 0 || quick != 0 {
		v.Range(easy, 1, 5, "easyToAutomate")
		v.Range(quick, 1, 5, "quickToAutomate")
	}
}
