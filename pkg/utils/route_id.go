package utils

import (
	"github.com/google/uuid"
)

// GenerateRouteID creates a short, human-readable route identifier.
// Format: {objective}-{8charHexUUID}
//
// Example:
//   - Input: objective="max_profit"
//   - Output: "max_profit-a3f8e2b1"
//
// The UUID suffix keeps IDs globally unique while the objective prefix
// makes logs and CLI output scannable.
func GenerateRouteID(objective string) string {
	return objective + "-" + generateShortUUID()
}

// generateShortUUID creates an 8-character hex string from a UUID.
// This provides sufficient uniqueness while keeping IDs compact.
func generateShortUUID() string {
	id := uuid.New()
	return id.String()[:8]
}
