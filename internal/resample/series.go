package resample

import (
	"slices"
	"sort"
	"time"
)

// Reading is a single observation of a series.
type Reading struct {
	Time  time.Time
	Value Value
}

// Series is the history of one entity state or one entity attribute.
type Series struct {
	Name     string
	Readings []Reading
}

func (s *Series) append(r Reading) {
	s.Readings = append(s.Readings, r)
}

// Sort orders readings by time. Readings sharing an instant keep their input order.
func (s *Series) Sort() {
	slices.SortStableFunc(s.Readings, func(a, b Reading) int {
		return a.Time.Compare(b.Time)
	})
}

// First and Last return the earliest and latest reading times of a sorted, non-empty series.
func (s *Series) First() time.Time { return s.Readings[0].Time }
func (s *Series) Last() time.Time  { return s.Readings[len(s.Readings)-1].Time }

// At returns the value of the latest reading at or before t, or an absent Value when t
// precedes the first reading. The series must be sorted.
func (s *Series) At(t time.Time) Value {
	idx := sort.Search(len(s.Readings), func(i int) bool {
		return s.Readings[i].Time.After(t)
	})
	if idx == 0 {
		return Absent()
	}
	return s.Readings[idx-1].Value
}

// group keeps series in first-seen order with a lookup by name.
type group struct {
	order  []*Series
	byName map[string]*Series
}

func (g *group) get(name string) *Series {
	if s, ok := g.byName[name]; ok {
		return s
	}

	if g.byName == nil {
		g.byName = make(map[string]*Series)
	}

	s := &Series{Name: name}
	g.byName[name] = s
	g.order = append(g.order, s)
	return s
}

// Dataset holds every series parsed from one export.
type Dataset struct {
	entities   group
	attributes group
}

// Entities returns the state series in first-seen order.
func (d *Dataset) Entities() []*Series { return d.entities.order }

// Attributes returns the attribute series in first-seen order.
func (d *Dataset) Attributes() []*Series { return d.attributes.order }

// Entity looks up a state series by entity ID.
func (d *Dataset) Entity(entityID string) (*Series, bool) {
	s, ok := d.entities.byName[entityID]
	return s, ok
}

// Attribute looks up an attribute series by its column name, {entity_id}_{attribute}.
func (d *Dataset) Attribute(name string) (*Series, bool) {
	s, ok := d.attributes.byName[name]
	return s, ok
}

// Series returns entity series followed by attribute series, the output column order.
func (d *Dataset) Series() []*Series {
	all := make([]*Series, 0, len(d.entities.order)+len(d.attributes.order))
	all = append(all, d.entities.order...)
	return append(all, d.attributes.order...)
}

// Sort sorts every series. It must run before any lookup.
func (d *Dataset) Sort() {
	for _, s := range d.Series() {
		s.Sort()
	}
}

// Readings returns the total number of readings across all series.
func (d *Dataset) Readings() int {
	n := 0
	for _, s := range d.Series() {
		n += len(s.Readings)
	}
	return n
}
