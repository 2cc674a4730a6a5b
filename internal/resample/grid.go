package resample

import (
	"iter"
	"time"
)

// Step is the spacing of the output grid.
const Step = time.Minute

// Grid is the inclusive range of instants the series are resampled onto.
type Grid struct {
	Start time.Time
	End   time.Time
}

// Span derives the grid from the earliest and latest entity readings. Attribute series do
// not widen it. The dataset must be sorted.
func Span(d *Dataset) (Grid, error) {
	entities := d.Entities()
	if len(entities) == 0 {
		return Grid{}, ErrNoSeries
	}

	g := Grid{Start: entities[0].First(), End: entities[0].Last()}
	for _, s := range entities[1:] {
		if first := s.First(); first.Before(g.Start) {
			g.Start = first
		}
		if last := s.Last(); last.After(g.End) {
			g.End = last
		}
	}

	return g, nil
}

// Len returns the number of instants in the grid.
func (g Grid) Len() int {
	if g.End.Before(g.Start) {
		return 0
	}
	return int(g.End.Sub(g.Start)/Step) + 1
}

// Instants yields Start, Start+Step, ... up to and including End. The sequence can be
// ranged over any number of times.
func (g Grid) Instants() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for t := g.Start; !t.After(g.End); t = t.Add(Step) {
			if !yield(t) {
				return
			}
		}
	}
}
