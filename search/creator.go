// Package search implements the generic-Dijkstra label-setting driver,
// its three cross-check variants, the tracer that recovers a path from
// the Permanent store, and the Router that wires set_up/tear_down
// around them.
package search

import (
	"github.com/iszczesniak/gdrsa/adaptive"
	"github.com/iszczesniak/gdrsa/label"
	"github.com/iszczesniak/gdrsa/rsagraph"
	"github.com/iszczesniak/gdrsa/spectrum"
)

// Creator produces the candidate successor labels for an edge relaxed
// from an existing label, per the demand's requested unit count ncu.
type Creator struct {
	g   *rsagraph.Graph
	pol adaptive.Policy
	ncu int
}

// NewCreator builds a Creator bound to a graph, modulation policy, and
// a demand's requested unit count.
func NewCreator(g *rsagraph.Graph, pol adaptive.Policy, ncu int) Creator {
	return Creator{g: g, pol: pol, ncu: ncu}
}

// Create forms every candidate label reached by relaxing edge e from
// l (l.Target must be one of e's endpoints). It returns nil when
// adaptive.Units reports the infeasibility sentinel for the resulting
// cost.
func (c Creator) Create(e rsagraph.EdgeID, l label.Label) []label.Label {
	cost := l.Cost + c.g.Weight(e)
	need := c.pol.Units(c.ncu, cost)
	if need == adaptive.Infeasible {
		return nil
	}

	candidate := spectrum.Intersect(spectrum.NewSet(l.Units), c.g.SU(e))
	candidate.RemoveNarrower(need)
	if candidate.Empty() {
		return nil
	}

	target := c.g.Other(e, l.Target)
	members := candidate.Ranges()
	out := make([]label.Label, 0, len(members))
	for _, r := range members {
		out = append(out, label.Label{Cost: cost, Units: r, Edge: e, Target: target})
	}
	return out
}

// ConstrainedCreate is the single-criterion variant used by the
// standard (non-generic) Dijkstra that feeds the parallel filtered
// search: it accepts at most one slot width and caps cost by the
// reach limit for that width, signalling infeasibility the same way.
func (c Creator) ConstrainedCreate(e rsagraph.EdgeID, cost float64, maxCost float64) (float64, bool) {
	newCost := cost + c.g.Weight(e)
	if newCost > maxCost {
		return 0, false
	}
	return newCost, true
}
