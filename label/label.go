// Package label implements the generic label, the Permanent and
// Tentative Pareto-frontier stores, and the total order used to keep
// both stores ascending-cost and first-fit tie-broken.
package label

import (
	"github.com/iszczesniak/gdrsa/rsagraph"
	"github.com/iszczesniak/gdrsa/spectrum"
)

// NoEdge is the sentinel predecessor edge for a search's starting
// label.
const NoEdge rsagraph.EdgeID = -1

// Label is a generic_label tuple: cost c, contiguous-unit range u,
// predecessor edge e (NoEdge for the starting label), and the target
// vertex t reached by e.
type Label struct {
	Cost   float64
	Units  spectrum.Range
	Edge   rsagraph.EdgeID
	Target rsagraph.Vertex
}

// LessOrEqual reports the label dominance order: l <= o iff l's cost
// is no greater than o's and l's units include o's. Two labels with
// lower-cost-but-narrower-units on either side are incomparable.
func (l Label) LessOrEqual(o Label) bool {
	return l.Cost <= o.Cost && l.Units.Includes(o.Units)
}

// Less reports the strict total order used to place labels inside a
// store: (Cost, Units, Edge, Target) lexicographically. Among
// equal-cost labels the smallest-Min unit range sorts first,
// realising first-fit tie-breaking.
func (l Label) Less(o Label) bool {
	if l.Cost != o.Cost {
		return l.Cost < o.Cost
	}
	if l.Units.Min != o.Units.Min {
		return l.Units.Min < o.Units.Min
	}
	if l.Units.Max != o.Units.Max {
		return l.Units.Max < o.Units.Max
	}
	if l.Edge != o.Edge {
		return l.Edge < o.Edge
	}
	return l.Target < o.Target
}
