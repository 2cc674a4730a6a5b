package resample

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingColumn   = errors.New("missing required column")
	ErrTimestampFormat = errors.New("timestamp does not match format")
	ErrNoSeries        = errors.New("no entity series to derive the time span from")
)

// MissingColumnError is returned when the export header lacks required columns.
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingColumn, strings.Join(e.Columns, ", "))
}

func (e *MissingColumnError) Unwrap() error { return ErrMissingColumn }

// TimestampError is returned for a last_changed value that is not in export format.
type TimestampError struct {
	Line  int
	Value string
}

func (e *TimestampError) Error() string {
	return fmt.Sprintf("line %d: %s %q: %q", e.Line, ErrTimestampFormat, timestampFormat, e.Value)
}

func (e *TimestampError) Unwrap() error { return ErrTimestampFormat }
