package spectrum

// Set is a totally ordered collection of pairwise-disjoint, non-adjacent
// Ranges — the free (or, along a path, the running) spectrum. The zero
// Set is the empty set.
type Set struct {
	ranges []Range
}

// NewSet builds a Set from zero or more Ranges, merging overlapping or
// adjacent members on insert the same way repeated Insert calls would.
func NewSet(rs ...Range) Set {
	var s Set
	for _, r := range rs {
		s.Insert(r)
	}
	return s
}

// Ranges returns the members in ascending order. The returned slice is
// a copy; mutating it does not affect s.
func (s Set) Ranges() []Range {
	out := make([]Range, len(s.ranges))
	copy(out, s.ranges)
	return out
}

// Len returns the number of members.
func (s Set) Len() int { return len(s.ranges) }

// Empty reports whether s has no members.
func (s Set) Empty() bool { return len(s.ranges) == 0 }

// Clone returns a deep copy (the member slice is not shared with s).
func (s Set) Clone() Set {
	return Set{ranges: s.Ranges()}
}

// Insert merges r into s, coalescing any existing members that overlap
// or touch r. r may be empty, in which case s is unchanged.
func (s *Set) Insert(r Range) {
	if r.Empty() {
		return
	}
	merged := r
	start := 0
	for start < len(s.ranges) && s.ranges[start].Max < merged.Min {
		start++
	}
	end := start
	for end < len(s.ranges) && s.ranges[end].Min <= merged.Max {
		if s.ranges[end].Min < merged.Min {
			merged.Min = s.ranges[end].Min
		}
		if s.ranges[end].Max > merged.Max {
			merged.Max = s.ranges[end].Max
		}
		end++
	}
	out := make([]Range, 0, len(s.ranges)-(end-start)+1)
	out = append(out, s.ranges[:start]...)
	out = append(out, merged)
	out = append(out, s.ranges[end:]...)
	s.ranges = out
}

// Remove subtracts r from s, splitting any member that straddles it.
func (s *Set) Remove(r Range) {
	if r.Empty() || len(s.ranges) == 0 {
		return
	}
	out := make([]Range, 0, len(s.ranges)+1)
	for _, m := range s.ranges {
		if !m.Overlaps(r) {
			out = append(out, m)
			continue
		}
		if m.Min < r.Min {
			out = append(out, Range{m.Min, r.Min})
		}
		if r.Max < m.Max {
			out = append(out, Range{r.Max, m.Max})
		}
	}
	s.ranges = out
}

// RemoveNarrower drops every member whose width is strictly less than
// n; members of width exactly n are kept.
func (s *Set) RemoveNarrower(n int) {
	out := make([]Range, 0, len(s.ranges))
	for _, m := range s.ranges {
		if m.Count() >= n {
			out = append(out, m)
		}
	}
	s.ranges = out
}

// Includes reports whether every member of o is contained in some
// member of s.
func (s Set) Includes(o Set) bool {
	i := 0
	for _, ro := range o.ranges {
		for i < len(s.ranges) && s.ranges[i].Max < ro.Max {
			i++
		}
		if i >= len(s.ranges) || !s.ranges[i].Includes(ro) {
			return false
		}
	}
	return true
}

// Intersect returns the maximal Set whose members are included in both
// a and b, via a linear two-pointer sweep of the two ordered sequences.
func Intersect(a, b Set) Set {
	var out Set
	i, j := 0, 0
	for i < len(a.ranges) && j < len(b.ranges) {
		ra, rb := a.ranges[i], b.ranges[j]
		lo, hi := ra.Min, ra.Max
		if rb.Min > lo {
			lo = rb.Min
		}
		if rb.Max < hi {
			hi = rb.Max
		}
		if lo < hi {
			out.ranges = append(out.ranges, Range{lo, hi})
		}
		if ra.Max < rb.Max {
			i++
		} else {
			j++
		}
	}
	return out
}

// Slots enumerates, in ascending Min order, every Range of exactly n
// consecutive units contained in some member of s.
func Slots(s Set, n int) []Range {
	if n <= 0 {
		return nil
	}
	var out []Range
	for _, m := range s.ranges {
		if m.Count() < n {
			continue
		}
		for start := m.Min; start+n <= m.Max; start++ {
			out = append(out, Range{start, start + n})
		}
	}
	return out
}

// SelectFirst returns the lowest-Min sub-range of width n contained in
// r (the first-fit spectrum-selection policy), and false if r is
// narrower than n.
func SelectFirst(r Range, n int) (Range, bool) {
	if r.Count() < n {
		return Range{}, false
	}
	return Range{r.Min, r.Min + n}, true
}

// SelectFirstFromSet returns the lowest-Min width-n sub-range across
// every member of s, and false if no member is wide enough.
func SelectFirstFromSet(s Set, n int) (Range, bool) {
	for _, m := range s.ranges {
		if m.Count() >= n {
			return SelectFirst(m, n)
		}
	}
	return Range{}, false
}
