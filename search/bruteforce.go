package search

import (
	"container/heap"

	"github.com/iszczesniak/gdrsa/adaptive"
	"github.com/iszczesniak/gdrsa/rsagraph"
	"github.com/iszczesniak/gdrsa/spectrum"
)

// bfItem is one entry of the brute-force search's priority queue: a
// partial path's cost, its running unit-set intersection, its edge
// sequence, and the vertices visited so far (to avoid loops).
type bfItem struct {
	cost    float64
	su      spectrum.Set
	path    []rsagraph.EdgeID
	visited []rsagraph.Vertex
}

type bfPQ []*bfItem

func (q bfPQ) Len() int            { return len(q) }
func (q bfPQ) Less(i, j int) bool  { return q[i].cost < q[j].cost }
func (q bfPQ) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *bfPQ) Push(x any)         { *q = append(*q, x.(*bfItem)) }
func (q *bfPQ) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}

func visitedContains(visited []rsagraph.Vertex, v rsagraph.Vertex) bool {
	for _, x := range visited {
		if x == v {
			return true
		}
	}
	return false
}

// searchBruteForce is the exhaustive cross-check variant: it enumerates
// simple paths in ascending cost order via a priority queue, carrying
// the running intersection of edge unit-sets, and returns as soon as
// dst is reached with a non-empty admissible unit-set.
func searchBruteForce(g *rsagraph.Graph, d rsagraph.Demand, cu spectrum.Range, pol adaptive.Policy) (*Result, error) {
	pq := &bfPQ{{
		cost:    0,
		su:      spectrum.NewSet(cu),
		path:    nil,
		visited: []rsagraph.Vertex{d.Src},
	}}

	for pq.Len() > 0 {
		it := heap.Pop(pq).(*bfItem)
		tail := it.visited[len(it.visited)-1]

		if tail == d.Dst {
			need := pol.Units(d.NCU, it.cost)
			chosen, ok := spectrum.SelectFirstFromSet(it.su, need)
			if !ok {
				continue
			}
			return &Result{Units: chosen, Path: it.path}, nil
		}

		for _, e := range g.OutEdges(tail) {
			t := g.Other(e, tail)
			if visitedContains(it.visited, t) {
				continue
			}

			cc := it.cost + g.Weight(e)
			need := pol.Units(d.NCU, cc)
			if need == adaptive.Infeasible {
				continue
			}

			csu := spectrum.Intersect(it.su, g.SU(e))
			csu.RemoveNarrower(need)
			if csu.Empty() {
				continue
			}

			np := append(append([]rsagraph.EdgeID{}, it.path...), e)
			nv := append(append([]rsagraph.Vertex{}, it.visited...), t)
			heap.Push(pq, &bfItem{cost: cc, su: csu, path: np, visited: nv})
		}
	}

	return nil, nil
}
