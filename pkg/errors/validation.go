package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxRoleLength bounds the job role accepted from users and HTTP forms.
const MaxRoleLength = 200

// ValidateRole validates a job role entered by the user.
// The role is expected to be trimmed already.
//
// Rules:
//   - No empty roles
//   - No control characters
//   - Maximum length of MaxRoleLength characters
func ValidateRole(role string) error {
	if role == "" {
		return New(ErrCodeInvalidRole, "Please enter a job role")
	}
	if len(role) > MaxRoleLength {
		return New(ErrCodeInvalidRole, "job role too long (max %d characters)", MaxRoleLength)
	}
	for _, r := range role {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidRole, "job role contains invalid control characters")
		}
	}
	return nil
}

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateHexColor checks that s is a "#RRGGBB" color.
func ValidateHexColor(s string) error {
	if !hexColorRegex.MatchString(s) {
		return New(ErrCodeInvalidColor, "invalid hex color %q (want #RRGGBB)", s)
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}

// ValidateID validates a storage identifier such as a saved-progress key.
// Identifiers end up in file names and cache keys, so path separators and
// traversal sequences are rejected.
func ValidateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "id cannot be empty")
	}
	if len(id) > 128 {
		return New(ErrCodeInvalidInput, "id too long (max 128 characters)")
	}
	if strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return New(ErrCodeInvalidInput, "id contains invalid characters")
	}
	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "id contains invalid characters")
		}
	}
	return nil
}
