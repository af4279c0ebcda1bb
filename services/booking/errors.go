package booking

import "strings"

// ValidationError reports missing or malformed required fields. It is always
// surfaced to the client as a 400 and never logged above warn level.
type ValidationError struct {
	MissingFields []string
	InvalidFields []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.MissingFields) > 0 {
		parts = append(parts, "missing: "+strings.Join(e.MissingFields, ", "))
	}
	if len(e.InvalidFields) > 0 {
		parts = append(parts, "invalid: "+strings.Join(e.InvalidFields, ", "))
	}
	if len(parts) == 0 {
		return "booking validation failed"
	}
	return "booking validation failed (" + strings.Join(parts, "; ") + ")"
}
