package resample

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jkaflik/hass2csv/hass"
)

const (
	timestampFormat = "%Y-%m-%dT%H:%M:%S.%fZ"
	secondsLayout   = "2006-01-02T15:04:05"
)

// ParseTimestamp parses a last_changed value (UTC, 1 to 6 fractional digits, trailing Z)
// and shifts it to local time.
func ParseTimestamp(raw string) (time.Time, bool) {
	head, ok := strings.CutSuffix(raw, "Z")
	if !ok {
		return time.Time{}, false
	}

	head, frac, ok := strings.Cut(head, ".")
	if !ok || len(frac) == 0 || len(frac) > hass.MaxFractionDigits {
		return time.Time{}, false
	}

	var nanos time.Duration
	for _, c := range frac {
		if c < '0' || c > '9' {
			return time.Time{}, false
		}
		nanos = nanos*10 + time.Duration(c-'0')
	}
	for i := len(frac); i < 9; i++ {
		nanos *= 10
	}

	t, err := time.Parse(secondsLayout, head)
	if err != nil {
		return time.Time{}, false
	}

	return t.Add(nanos).Add(hass.LocalOffset), true
}

// Ingest reads a Home Assistant history export and groups its rows into series.
// Series are returned unsorted.
func Ingest(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	// Friendly names such as `TV 55"` carry bare quotes.
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &MissingColumnError{Columns: slices.Clone(hass.RequiredColumns)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	d := &Dataset{}
	skipped := make(map[string]int)

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		line, _ := reader.FieldPos(0)
		field := func(i int) string {
			if i < len(record) {
				return record[i]
			}
			return ""
		}

		lastChanged := field(cols.lastChanged)
		ts, ok := ParseTimestamp(lastChanged)
		if !ok {
			return nil, &TimestampError{Line: line, Value: lastChanged}
		}

		entityID := field(cols.entityID)
		state := field(cols.state)
		value := ParseState(state)
		if value.IsAbsent() {
			skipped[missingReason(state)]++
			log.Trace().Int("line", line).Str("entity_id", entityID).Str("domain", hass.Domain(entityID)).Str("state", state).Msg("Non-numeric state")
		}

		d.entities.get(entityID).append(Reading{Time: ts, Value: value})

		for _, attr := range cols.attributes {
			raw := field(attr.index)
			if raw == "" {
				continue
			}
			d.attributes.get(entityID + "_" + attr.name).append(Reading{Time: ts, Value: Text(raw)})
		}
	}

	for _, reason := range missingReasons {
		if n := skipped[reason]; n > 0 {
			log.Debug().Str("state", reason).Int("rows", n).Msg("Recorded non-numeric states as empty")
		}
	}

	return d, nil
}

type attributeColumn struct {
	name  string
	index int
}

type columns struct {
	entityID    int
	state       int
	lastChanged int
	attributes  []attributeColumn
}

func resolveColumns(header []string) (columns, error) {
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	// Duplicate column names resolve to their last occurrence.
	index := make(map[string]int, len(header))
	cols := columns{}
	for i, name := range header {
		if _, seen := index[name]; !seen && !hass.IsStateColumn(name) {
			cols.attributes = append(cols.attributes, attributeColumn{name: name})
		}
		index[name] = i
	}
	for i := range cols.attributes {
		cols.attributes[i].index = index[cols.attributes[i].name]
	}

	var missing []string
	for _, name := range hass.RequiredColumns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return columns{}, &MissingColumnError{Columns: missing}
	}

	cols.entityID = index[hass.ColumnEntityID]
	cols.state = index[hass.ColumnState]
	cols.lastChanged = index[hass.ColumnLastChanged]

	return cols, nil
}

var missingReasons = []string{"empty", hass.UnknownValue, hass.UnavailableValue, "other"}

func missingReason(state string) string {
	if hass.IsMissingValue(state) {
		if state == "" {
			return "empty"
		}
		return state
	}
	return "other"
}
