package search

import (
	"github.com/iszczesniak/gdrsa/adaptive"
	"github.com/iszczesniak/gdrsa/rsagraph"
	"github.com/iszczesniak/gdrsa/spectrum"
)

// searchParallel is the parallel-filtered cross-check variant: for
// each admissible unit count n (lowest first), it tries every slot of
// width n in the initial candidate range, running a standard
// single-criterion Dijkstra on the graph filtered to edges whose su
// includes that slot, capped at reach(ncu,n). It stops at the first n
// that yields any path, keeping the cheapest slot among that n's
// slots.
func searchParallel(g *rsagraph.Graph, d rsagraph.Demand, cu spectrum.Range, pol adaptive.Policy) (*Result, error) {
	creator := NewCreator(g, pol, d.NCU)

	for idx, n := range pol.NCUs(d.NCU) {
		maxCost := pol.Reach(d.NCU, idx)

		var best *Result
		bestCost := 0.0

		for _, slot := range spectrum.Slots(spectrum.NewSet(cu), n) {
			include := func(e rsagraph.EdgeID) bool {
				return g.SU(e).Includes(spectrum.NewSet(slot))
			}
			cost, path, ok := shortestFiltered(g, creator, include, d.Src, d.Dst, maxCost)
			if !ok {
				continue
			}
			if best == nil || cost < bestCost {
				best = &Result{Units: slot, Path: path}
				bestCost = cost
			}
		}

		if best != nil {
			return best, nil
		}
	}
	return nil, nil
}
