package resample

import (
	"iter"
)

// TimestampColumn heads the first output column.
const TimestampColumn = "timestamp"

// Header returns the output header: the timestamp column, then entity series, then
// attribute series.
func Header(d *Dataset) []string {
	series := d.Series()
	header := make([]string, 0, len(series)+1)
	header = append(header, TimestampColumn)
	for _, s := range series {
		header = append(header, s.Name)
	}
	return header
}

// Rows yields one output row per grid instant holding the step-held value of every series.
// The yielded slice is reused between iterations.
func Rows(d *Dataset, g Grid) iter.Seq[[]string] {
	series := d.Series()
	return func(yield func([]string) bool) {
		row := make([]string, len(series)+1)
		for t := range g.Instants() {
			row[0] = t.Format(secondsLayout)
			for i, s := range series {
				row[i+1] = s.At(t).String()
			}
			if !yield(row) {
				return
			}
		}
	}
}
