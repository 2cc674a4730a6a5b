package hass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomain(t *testing.T) {
	tests := []struct {
		entityID string
		expected string
	}{
		{"sensor.kitchen_temperature", "sensor"},
		{"binary_sensor.door", "binary_sensor"},
		{"climate.living_room", "climate"},
		{"no_dot", "no_dot"},
		{"", ""},
	}

	t.Parallel()
	for _, tt := range tests {
		t.Run(tt.entityID, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Domain(tt.entityID))
		})
	}
}

func TestIsMissingValue(t *testing.T) {
	assert.True(t, IsMissingValue(""))
	assert.True(t, IsMissingValue(UnknownValue))
	assert.True(t, IsMissingValue(UnavailableValue))
	assert.False(t, IsMissingValue("21.5"))
	assert.False(t, IsMissingValue("on"))
}

func TestIsStateColumn(t *testing.T) {
	for _, c := range RequiredColumns {
		assert.True(t, IsStateColumn(c), c)
	}
	assert.False(t, IsStateColumn("unit_of_measurement"))
	assert.False(t, IsStateColumn("last_updated"))
}
