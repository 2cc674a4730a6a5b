package hass

import "strings"

const (
	UnknownValue     = "unknown"
	UnavailableValue = "unavailable"
)

// Domain extracts the domain from an entity ID.
// The entity ID is expected to be in the format domain.object_id.
func Domain(entityID string) string {
	domain, _, _ := strings.Cut(entityID, ".")
	return domain
}

// IsMissingValue reports whether a state is one of the placeholders Home Assistant
// records when a sensor has no reading.
func IsMissingValue(state string) bool {
	switch state {
	case "", UnknownValue, UnavailableValue:
		return true
	default:
	}

	return false
}
