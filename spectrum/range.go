// Package spectrum implements the contiguous-unit interval algebra that
// the routing core allocates paths against: a ContiguousRange (CU) is a
// half-open interval of spectrum-unit indices, and a Set (SU) is an
// ordered, disjoint, non-adjacent union of CUs.
package spectrum

import "fmt"

// Range is a half-open interval [Min,Max) of unit indices. The empty
// range is Min==Max and is never stored inside a Set.
type Range struct {
	Min, Max int
}

// NewRange builds a Range. Callers are expected to keep Min<=Max; a
// Range with Min==Max is empty and Min>Max is never produced by this
// package's own operations.
func NewRange(min, max int) Range {
	return Range{Min: min, Max: max}
}

// Empty reports whether r denotes no units at all.
func (r Range) Empty() bool {
	return r.Min >= r.Max
}

// Count returns the number of units in r (0 for an empty range).
func (r Range) Count() int {
	if r.Empty() {
		return 0
	}
	return r.Max - r.Min
}

// Equal reports lexicographic (Min,Max) equality.
func (r Range) Equal(o Range) bool {
	return r.Min == o.Min && r.Max == o.Max
}

// Less reports strict lexicographic (Min,Max) order.
func (r Range) Less(o Range) bool {
	if r.Min != o.Min {
		return r.Min < o.Min
	}
	return r.Max < o.Max
}

// Includes reports whether every unit of o lies within r.
func (r Range) Includes(o Range) bool {
	if o.Empty() {
		return true
	}
	return r.Min <= o.Min && o.Max <= r.Max
}

// Overlaps reports whether r and o share at least one unit.
func (r Range) Overlaps(o Range) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.Min < o.Max && o.Min < r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Min, r.Max)
}
