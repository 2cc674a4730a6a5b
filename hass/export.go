package hass

import "time"

// Column names of a Home Assistant history CSV export.
const (
	ColumnEntityID    = "entity_id"
	ColumnState       = "state"
	ColumnLastChanged = "last_changed"
)

// RequiredColumns lists the columns every history export must carry.
var RequiredColumns = []string{ColumnEntityID, ColumnState, ColumnLastChanged}

// IsStateColumn reports whether name is one of the required columns. Any other column of
// an export holds an entity attribute.
func IsStateColumn(name string) bool {
	switch name {
	case ColumnEntityID, ColumnState, ColumnLastChanged:
		return true
	default:
		return false
	}
}

// LocalOffset shifts exported UTC timestamps to Mountain time.
const LocalOffset = -7 * time.Hour

// MaxFractionDigits is the precision of last_changed in an export (microseconds).
const MaxFractionDigits = 6
