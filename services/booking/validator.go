package booking

import (
	"strings"
)

// RequiredFields are checked in this order; the order is part of the response contract.
var RequiredFields = []string{"name", "email", "eventType", "eventDate"}

// ValidationResult is the outcome of a presence check on a raw submission.
type ValidationResult struct {
	OK            bool
	MissingFields []string
}

// Validate reports every required field that is absent, null, empty or whitespace-only.
// It performs no coercion and has no side effects.
func Validate(raw map[string]any) ValidationResult {
	var missing []string
	for _, field := range RequiredFields {
		if isBlank(raw[field]) {
			missing = append(missing, field)
		}
	}
	return ValidationResult{OK: len(missing) == 0, MissingFields: missing}
}

func isBlank(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	default:
		return false
	}
}
