package search

import (
	"container/heap"

	"github.com/iszczesniak/gdrsa/rsagraph"
)

// shortestFiltered runs a standard, single-criterion Dijkstra from src
// to dst over the subset of g's edges accepted by include, relaxing
// each edge through c.ConstrainedCreate so the cap at maxCost (the
// constrained label creator's reach limit) is enforced in one place.
// It reports the path's edges in order and its total cost, or
// ok=false if dst is unreachable within the cap.
func shortestFiltered(g *rsagraph.Graph, c Creator, include func(rsagraph.EdgeID) bool, src, dst rsagraph.Vertex, maxCost float64) (cost float64, path []rsagraph.EdgeID, ok bool) {
	n := g.NumVertices()
	dist := make([]float64, n)
	pred := make([]rsagraph.EdgeID, n)
	visited := make([]bool, n)
	for v := range dist {
		dist[v] = maxCost + 1
		pred[v] = -1
	}
	dist[src] = 0

	pq := &nodePQ{{vertex: src, dist: 0}}
	for pq.Len() > 0 {
		top := heap.Pop(pq).(nodeItem)
		v := top.vertex
		if visited[v] {
			continue
		}
		if top.dist > dist[v] {
			continue
		}
		visited[v] = true
		if v == dst {
			break
		}

		for _, e := range g.OutEdges(v) {
			if !include(e) {
				continue
			}
			w := g.Other(e, v)
			nd, admissible := c.ConstrainedCreate(e, dist[v], maxCost)
			if !admissible {
				continue
			}
			if nd < dist[w] {
				dist[w] = nd
				pred[w] = e
				heap.Push(pq, nodeItem{vertex: w, dist: nd})
			}
		}
	}

	if !visited[dst] {
		return 0, nil, false
	}

	var edges []rsagraph.EdgeID
	for v := dst; v != src; {
		e := pred[v]
		edges = append([]rsagraph.EdgeID{e}, edges...)
		v = g.Other(e, v)
	}
	return dist[dst], edges, true
}

// nodeItem is one entry of the standard Dijkstra's priority queue.
type nodeItem struct {
	vertex rsagraph.Vertex
	dist   float64
}

// nodePQ is a container/heap min-heap over nodeItem.dist.
type nodePQ []nodeItem

func (q nodePQ) Len() int            { return len(q) }
func (q nodePQ) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q nodePQ) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *nodePQ) Push(x any)         { *q = append(*q, x.(nodeItem)) }
func (q *nodePQ) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}
