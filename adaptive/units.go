// Package adaptive implements the distance-adaptive modulation rule:
// how many spectrum units a demand for n contiguous units actually
// needs once the candidate path's cost is known, given the graph's
// longest shortest path L.
package adaptive

import "math"

// Infeasible is the sentinel Units returns when no modulation
// level can serve the requested cost; the label creator must drop the
// candidate rather than treat this as a real unit count.
const Infeasible = math.MaxInt

// breakpoint is one rung of the modulation staircase: at normalised
// reach (cost/L) <= ratio, a demand for n units actually needs
// ceil(n*num/den) units, computed in integer arithmetic.
type breakpoint struct {
	ratio    float64
	num, den int
}

var breakpoints = []breakpoint{
	{ratio: 3.0 / 16.0, num: 1, den: 1},
	{ratio: 3.0 / 8.0, num: 11, den: 10},
	{ratio: 3.0 / 4.0, num: 2, den: 1},
	{ratio: 3.0 / 2.0, num: 3, den: 1},
	{ratio: 3.0, num: 4, den: 1},
}

// Policy holds the longest shortest path L of a loaded graph, computed
// once at load time and used for every demand served against it.
type Policy struct {
	L float64
}

// NewPolicy builds a Policy from the graph's longest shortest path.
func NewPolicy(longestShortestPath float64) Policy {
	return Policy{L: longestShortestPath}
}

// Units returns the actual unit count required to serve a demand for n
// contiguous units over a path of the given cost, or Infeasible when
// no modulation level admits it.
func (p Policy) Units(n int, cost float64) int {
	if p.L <= 0 {
		return n
	}
	reach := cost / p.L
	for _, bp := range breakpoints {
		if reach <= bp.ratio {
			return (n*bp.num + bp.den - 1) / bp.den
		}
	}
	return Infeasible
}

// Reach returns the maximum cost allowed for a path at the bucket
// named by idx, the position of the admissible unit count in
// NCUs(n); it is the inverse of Units at that bucket's boundary. With
// p.L<=0 (no modulation, matching Units' flat shortcut) the only
// admissible bucket is idx 0 and its reach is unbounded.
//
// idx must index into the breakpoint table directly rather than
// matching against the unit count itself: for small n (n=1 notably)
// distinct buckets can round to the same ceil(n*num/den) — NCUs(1) is
// [1,2,2,3,4], with buckets 1 and 2 both rounding to 2 — so matching
// by value can't tell which of two buckets sharing a unit count a
// caller means. It panics if idx is out of range.
func (p Policy) Reach(n, idx int) float64 {
	if p.L <= 0 {
		if idx != 0 {
			panic("adaptive: idx is not a valid bucket position")
		}
		return math.Inf(1)
	}
	if idx < 0 || idx >= len(breakpoints) {
		panic("adaptive: idx is not a valid bucket position")
	}
	return p.L * breakpoints[idx].ratio
}

// NCUs enumerates every admissible unit count for a demand requesting
// n contiguous units, in ascending order: n, ceil(11n/10), 2n, 3n, 4n.
// With p.L<=0 (no modulation, matching Units' flat shortcut) n is the
// only admissible count.
func (p Policy) NCUs(n int) []int {
	if p.L <= 0 {
		return []int{n}
	}
	out := make([]int, 0, len(breakpoints))
	for _, bp := range breakpoints {
		out = append(out, (n*bp.num+bp.den-1)/bp.den)
	}
	return out
}
