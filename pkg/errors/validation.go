package errors

import (
	"math"
	"strings"
	"unicode"
)

// maxNameLength bounds element ids, view names and sheet numbers.
const maxNameLength = 256

// ValidateElementID validates an element id supplied from outside the core.
//
// The rules are intentionally conservative:
//   - No empty ids
//   - No control characters or null bytes
//   - No surrounding whitespace
//   - Maximum length of 256 characters
func ValidateElementID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "element id cannot be empty")
	}
	if len(id) > maxNameLength {
		return New(ErrCodeInvalidInput, "element id too long (max %d characters)", maxNameLength)
	}
	if strings.TrimSpace(id) != id {
		return New(ErrCodeInvalidInput, "element id %q has surrounding whitespace", id)
	}
	if hasControl(id) {
		return New(ErrCodeInvalidInput, "element id contains invalid control characters")
	}
	return nil
}

// ValidateName validates a view name, sheet name or sheet number.
// Names may contain spaces but no control characters.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "name cannot be empty")
	}
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidInput, "name too long (max %d characters)", maxNameLength)
	}
	if hasControl(name) {
		return New(ErrCodeInvalidInput, "name contains invalid control characters")
	}
	return nil
}

// ValidateOffset validates a non-negative, finite length such as a section
// offset. The label names the setting in the error message.
func ValidateOffset(label string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidConfig, "%s must be a finite number", label)
	}
	if v < 0 {
		return New(ErrCodeInvalidConfig, "%s cannot be negative (got %g)", label, v)
	}
	return nil
}

func hasControl(s string) bool {
	for _, r := range s {
		if r == '\x00' || unicode.IsControl(r) {
			return true
		}
	}
	return false
}
