package search

import (
	"container/heap"

	"github.com/iszczesniak/gdrsa/adaptive"
	"github.com/iszczesniak/gdrsa/rsagraph"
	"github.com/iszczesniak/gdrsa/spectrum"
)

// yenPath is one simple path produced by Yen's algorithm: its total
// (plain, unit-oblivious) cost, its edge sequence, and the vertices it
// visits in order (nodes[0]==src, nodes[len-1]==the path's tail).
type yenPath struct {
	cost  float64
	edges []rsagraph.EdgeID
	nodes []rsagraph.Vertex
}

func pathKey(edges []rsagraph.EdgeID) string {
	b := make([]byte, 0, 4*len(edges))
	for _, e := range edges {
		b = append(b, byte(e), byte(e>>8), byte(e>>16), byte(e>>24))
	}
	return string(b)
}

func samePrefix(edges, prefix []rsagraph.EdgeID) bool {
	if len(edges) < len(prefix) {
		return false
	}
	for i, e := range prefix {
		if edges[i] != e {
			return false
		}
	}
	return true
}

func pathCostEdges(g *rsagraph.Graph, edges []rsagraph.EdgeID) float64 {
	var c float64
	for _, e := range edges {
		c += g.Weight(e)
	}
	return c
}

// dijkstraSimple finds the cheapest simple path from src to dst that
// avoids excludedEdges and excludedNodes (used for the spur-path step
// of Yen's algorithm).
func dijkstraSimple(g *rsagraph.Graph, src, dst rsagraph.Vertex, excludedEdges map[rsagraph.EdgeID]bool, excludedNodes map[rsagraph.Vertex]bool) (yenPath, bool) {
	include := func(e rsagraph.EdgeID) bool { return !excludedEdges[e] }

	n := g.NumVertices()
	big := 0.0
	for v := rsagraph.Vertex(0); int(v) < n; v++ {
		for _, e := range g.OutEdges(v) {
			big += g.Weight(e)
		}
	}
	big++

	dist := make([]float64, n)
	pred := make([]rsagraph.EdgeID, n)
	visited := make([]bool, n)
	for v := range dist {
		dist[v] = big
		pred[v] = -1
	}
	dist[src] = 0

	pq := &nodePQ{{vertex: src, dist: 0}}
	for pq.Len() > 0 {
		top := heap.Pop(pq).(nodeItem)
		v := top.vertex
		if visited[v] || top.dist > dist[v] {
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
			if excludedNodes[w] {
				continue
			}
			nd := dist[v] + g.Weight(e)
			if nd < dist[w] {
				dist[w] = nd
				pred[w] = e
				heap.Push(pq, nodeItem{vertex: w, dist: nd})
			}
		}
	}

	if !visited[dst] {
		return yenPath{}, false
	}

	var edges []rsagraph.EdgeID
	var nodes []rsagraph.Vertex
	for v := dst; ; {
		nodes = append([]rsagraph.Vertex{v}, nodes...)
		if v == src {
			break
		}
		e := pred[v]
		edges = append([]rsagraph.EdgeID{e}, edges...)
		v = g.Other(e, v)
	}
	return yenPath{cost: dist[dst], edges: edges, nodes: nodes}, true
}

func pathSU(g *rsagraph.Graph, edges []rsagraph.EdgeID) spectrum.Set {
	if len(edges) == 0 {
		return spectrum.Set{}
	}
	su := g.SU(edges[0])
	for _, e := range edges[1:] {
		su = spectrum.Intersect(su, g.SU(e))
	}
	return su
}

// searchYenKSP is the Yen-k-shortest-paths cross-check variant: it
// enumerates simple paths in ascending cost order (optionally capped
// at k), and for each returns the first whose path-wide unit-set
// intersection admits the demand once narrower-than-required members
// are dropped.
func searchYenKSP(g *rsagraph.Graph, d rsagraph.Demand, pol adaptive.Policy, k *int) (*Result, error) {
	first, ok := dijkstraSimple(g, d.Src, d.Dst, nil, nil)
	if !ok {
		return nil, nil
	}
	A := []yenPath{first}
	seen := map[string]bool{pathKey(first.edges): true}

	limit := 1 << 30
	if k != nil {
		limit = *k
	}

	for kk := 1; kk < limit; kk++ {
		prev := A[kk-1]
		var candidates []yenPath

		for i := 0; i < len(prev.nodes)-1; i++ {
			spurNode := prev.nodes[i]
			rootEdges := append([]rsagraph.EdgeID{}, prev.edges[:i]...)
			rootNodes := append([]rsagraph.Vertex{}, prev.nodes[:i+1]...)

			excludedEdges := map[rsagraph.EdgeID]bool{}
			for _, p := range A {
				if samePrefix(p.edges, rootEdges) && len(p.edges) > i {
					excludedEdges[p.edges[i]] = true
				}
			}
			excludedNodes := map[rsagraph.Vertex]bool{}
			for _, v := range rootNodes[:len(rootNodes)-1] {
				excludedNodes[v] = true
			}

			spur, ok := dijkstraSimple(g, spurNode, d.Dst, excludedEdges, excludedNodes)
			if !ok {
				continue
			}

			total := yenPath{
				cost:  pathCostEdges(g, rootEdges) + spur.cost,
				edges: append(append([]rsagraph.EdgeID{}, rootEdges...), spur.edges...),
				nodes: append(append([]rsagraph.Vertex{}, rootNodes[:len(rootNodes)-1]...), spur.nodes...),
			}
			if !seen[pathKey(total.edges)] {
				candidates = append(candidates, total)
			}
		}

		if len(candidates) == 0 {
			break
		}
		best := 0
		for i := 1; i < len(candidates); i++ {
			if candidates[i].cost < candidates[best].cost {
				best = i
			}
		}
		A = append(A, candidates[best])
		seen[pathKey(candidates[best].edges)] = true
	}

	for _, p := range A {
		need := pol.Units(d.NCU, p.cost)
		if need == adaptive.Infeasible {
			continue
		}
		su := pathSU(g, p.edges)
		su.RemoveNarrower(need)
		if su.Empty() {
			continue
		}
		chosen, ok := spectrum.SelectFirstFromSet(su, need)
		if !ok {
			continue
		}
		return &Result{Units: chosen, Path: p.edges}, nil
	}
	return nil, nil
}
