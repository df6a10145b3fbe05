package search

import (
	"github.com/iszczesniak/gdrsa/adaptive"
	"github.com/iszczesniak/gdrsa/label"
	"github.com/iszczesniak/gdrsa/rsagraph"
	"github.com/iszczesniak/gdrsa/spectrum"
)

// trace reconstructs the edge-path from src to d.Dst by back-walking
// Permanent predecessors from P[d.Dst]'s front label, and derives the
// chosen contiguous-unit range once, at the outset, via first-fit
// selection from that label's units.
//
// Cost comparisons along the walk are additive (predecessor cost plus
// edge weight equals the current label's cost), never subtractive,
// since costs may be floating point.
func trace(g *rsagraph.Graph, P *label.Permanent, d rsagraph.Demand, pol adaptive.Policy) (spectrum.Range, []rsagraph.EdgeID) {
	goal := P.At(d.Dst)[0]
	need := pol.Units(d.NCU, goal.Cost)
	chosen, ok := spectrum.SelectFirst(goal.Units, need)
	if !ok {
		panic("search: tracer could not select a unit range from the destination label")
	}

	var path []rsagraph.EdgeID
	cur := goal
	for cur.Edge != label.NoEdge {
		path = append([]rsagraph.EdgeID{cur.Edge}, path...)

		src := g.Other(cur.Edge, cur.Target)
		edgeCost := g.Weight(cur.Edge)

		var next label.Label
		found := false
		for _, cand := range P.At(src) {
			if cand.Cost+edgeCost == cur.Cost && cand.Units.Includes(chosen) {
				next = cand
				found = true
				break
			}
		}
		if !found {
			panic("search: tracer could not find a predecessor label")
		}
		cur = next
	}

	return chosen, path
}
