package validation

import (
	"regexp"
	"strings"
)

var (
	// emailRegex validates email format
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// uuidRegex validates UUID format
	uuidRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

	// phoneRegex accepts digits with optional leading + and common separators
	phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 \-()]{6,19}$`)
)

// IsValidEmail checks if the string is a valid email format
func IsValidEmail(email string) bool {
	if len(email) > 254 {
		return false
	}
	return emailRegex.MatchString(email)
}

// IsValidUUID checks if the string is a valid UUID format
func IsValidUUID(id string) bool {
	return uuidRegex.MatchString(id)
}

// IsValidPhone checks if the string looks like a phone number
func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(strings.TrimSpace(phone))
}

// IsImageContentType reports whether the MIME type is an image type.
func IsImageContentType(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}
