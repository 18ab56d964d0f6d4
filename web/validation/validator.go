// Package validation checks inbound request payloads before any mutation,
// accumulating per-field error messages.
package validation

import (
	"fmt"
	"mime/multipart"
	"regexp"

	"userhub/web/entity"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validator accumulates per-field validation failures for one request.
type Validator struct {
	errors entity.FieldErrors
}

func New() *Validator {
	return &Validator{errors: entity.FieldErrors{}}
}

// Required fails when the value is empty.
func (v *Validator) Required(field, value string) {
	if value == "" {
		v.Add(field, fmt.Sprintf("The %s field is required.", field))
	}
}

// MaxLen fails when the value is longer than max characters.
// Empty values pass; Required owns presence.
func (v *Validator) MaxLen(field, value string, max int) {
	if value != "" && len(value) > max {
		v.Add(field, fmt.Sprintf("The %s may not be greater than %d characters.", field, max))
	}
}

// MinLen fails when the value is shorter than min characters.
func (v *Validator) MinLen(field, value string, min int) {
	if value != "" && len(value) < min {
		v.Add(field, fmt.Sprintf("The %s must be at least %d characters.", field, min))
	}
}

// Email fails when the value is not a well-formed address.
func (v *Validator) Email(field, value string) {
	if value != "" && !emailRe.MatchString(value) {
		v.Add(field, fmt.Sprintf("The %s must be a valid email address.", field))
	}
}

// Confirmed fails when the confirmation does not match the value.
func (v *Validator) Confirmed(field, value, confirmation string) {
	if value != "" && value != confirmation {
		v.Add(field, fmt.Sprintf("The %s confirmation does not match.", field))
	}
}

// File fails when no upload was supplied for the field.
func (v *Validator) File(field string, file *multipart.FileHeader) {
	if file == nil {
		v.Add(field, fmt.Sprintf("The %s field is required.", field))
	}
}

// FileMax fails when the upload exceeds maxKilobytes.
func (v *Validator) FileMax(field string, file *multipart.FileHeader, maxKilobytes int64) {
	if file != nil && file.Size > maxKilobytes*1024 {
		v.Add(field, fmt.Sprintf("The %s may not be greater than %d kilobytes.", field, maxKilobytes))
	}
}

// Add records a failure message for the given field directly. Used for
// rules that need outside lookups, like email uniqueness.
func (v *Validator) Add(field, message string) {
	v.errors.Add(field, message)
}

func (v *Validator) Fails() bool {
	return len(v.errors) > 0
}

func (v *Validator) Errors() entity.FieldErrors {
	return v.errors
}
