package search

import (
	"github.com/iszczesniak/gdrsa/adaptive"
	"github.com/iszczesniak/gdrsa/label"
	"github.com/iszczesniak/gdrsa/rsagraph"
	"github.com/iszczesniak/gdrsa/spectrum"
)

// runGeneric runs the generic-Dijkstra label-setting search: P starts
// empty, T is seeded with the starting label, and the loop pops the
// globally minimum-cost tentative label, accepts it into P, and stops
// once dst is accepted.
//
// It returns the Permanent store (for the tracer), the starting
// label, the number of Pop calls performed (used as the peak-label
// diagnostic proxy), and whether dst was reached.
func runGeneric(g *rsagraph.Graph, d rsagraph.Demand, initial spectrum.Range, pol adaptive.Policy) (*label.Permanent, label.Label, int, bool) {
	n := g.NumVertices()
	P := label.NewPermanent(n)
	T := label.NewTentative(n)

	start := label.Label{Cost: 0, Units: initial, Edge: label.NoEdge, Target: d.Src}
	T.Push(start)

	creator := NewCreator(g, pol, d.NCU)
	peak := 0

	for !T.Empty() {
		l := T.Pop()
		pl := P.Push(l)
		peak++
		if pl.Target == d.Dst {
			return P, start, peak, true
		}

		for _, e := range g.OutEdges(pl.Target) {
			for _, k := range creator.Create(e, pl) {
				if P.HasBetterOrEqual(k) {
					continue
				}
				if T.HasBetterOrEqual(k) {
					continue
				}
				T.PurgeWorse(k)
				T.Push(k)
			}
		}
	}

	return P, start, peak, false
}
