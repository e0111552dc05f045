package validation

import (
	"strings"

	"github.com/google/uuid"
)

// IsValidViewID checks that a page view id is a canonical UUID
func IsValidViewID(id string) bool {
	if strings.TrimSpace(id) != id || id == "" {
		return false
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return false
	}
	return parsed.String() == strings.ToLower(id)
}

// IsValidUnitSystem validates a units parameter value
func IsValidUnitSystem(units string) bool {
	return units == "metric" || units == "imperial"
}

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}
