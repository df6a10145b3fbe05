package label

import "github.com/iszczesniak/gdrsa/rsagraph"

// Permanent is the per-vertex Pareto frontier of accepted labels, P in
// the generic Dijkstra driver.
type Permanent struct {
	byVertex [][]Label
}

// NewPermanent allocates a Permanent store for a graph of n vertices.
func NewPermanent(n int) *Permanent {
	return &Permanent{byVertex: make([][]Label, n)}
}

// Push appends l to P[target(l)]. The caller guarantees l is not
// dominated by, and does not dominate, any existing member (the
// Dijkstra driver only pushes labels freshly popped off Tentative).
func (p *Permanent) Push(l Label) Label {
	v := l.Target
	p.byVertex[v] = append(p.byVertex[v], l)
	return l
}

// At returns the accepted labels for v, in ascending cost order.
func (p *Permanent) At(v rsagraph.Vertex) []Label {
	return p.byVertex[v]
}

// HasBetterOrEqual walks P[target(j)] in cost order and reports
// whether some member already dominates j; it stops early once a
// member's cost exceeds j's, since no later member can dominate it.
func (p *Permanent) HasBetterOrEqual(j Label) bool {
	for _, l := range p.byVertex[j.Target] {
		if l.Cost > j.Cost {
			break
		}
		if l.LessOrEqual(j) {
			return true
		}
	}
	return false
}
