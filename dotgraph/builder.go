// Package dotgraph loads a Graphviz DOT description into an
// rsagraph.Graph, reading the per-edge weight, nou, and optional su
// attributes, and computing the graph's longest shortest path (the
// distance L an adaptive.Policy is parametrised by).
package dotgraph

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/iszczesniak/gdrsa/rsagraph"
	"github.com/iszczesniak/gdrsa/spectrum"
)

// dotNode extends simple.Node with the DOT node identifier, letting
// edge endpoints be matched back to rsagraph vertices by name.
type dotNode struct {
	simple.Node
	dotID string
}

func (n *dotNode) DOTID() string            { return n.dotID }
func (n *dotNode) UnmarshalDOTID(id string) { n.dotID = id }

// dotEdge extends simple.Edge with the weight/nou/su attributes this
// domain cares about.
type dotEdge struct {
	simple.Edge
	Weight float64
	NOU    int
	SU     string
}

// UnmarshalDOTAttr decodes one of weight, nou, or su; any other
// attribute is ignored, matching DOT's permissive attribute model.
func (e *dotEdge) UnmarshalDOTAttr(attr encoding.Attribute) error {
	switch attr.Key {
	case "weight":
		w, err := strconv.ParseFloat(attr.Value, 64)
		if err != nil {
			return fmt.Errorf("dotgraph: bad weight attribute %q: %w", attr.Value, err)
		}
		e.Weight = w
	case "nou":
		n, err := strconv.Atoi(attr.Value)
		if err != nil {
			return fmt.Errorf("dotgraph: bad nou attribute %q: %w", attr.Value, err)
		}
		e.NOU = n
	case "su":
		e.SU = attr.Value
	}
	return nil
}

// builder wraps simple.UndirectedGraph to satisfy dot.Unmarshal's
// Builder interface while producing dotNode/dotEdge values.
type builder struct {
	*simple.UndirectedGraph
}

func newBuilder() *builder {
	return &builder{UndirectedGraph: simple.NewUndirectedGraph()}
}

func (b *builder) NewNode() graph.Node {
	id := b.UndirectedGraph.NewNode().ID()
	n := &dotNode{Node: simple.Node(id)}
	b.AddNode(n)
	return n
}

func (b *builder) NewEdge(from, to graph.Node) graph.Edge {
	if e := b.EdgeBetween(from.ID(), to.ID()); e != nil {
		return e
	}
	e := &dotEdge{Edge: simple.Edge{F: from, T: to}}
	b.SetEdge(e)
	return e
}

// Weight implements graph.Weighted so graph/path's Dijkstra variants
// can compute the longest shortest path over the decoded edges.
func (b *builder) Weight(xid, yid int64) (float64, bool) {
	e := b.Edge(xid, yid)
	if e == nil {
		return 0, false
	}
	if de, ok := e.(*dotEdge); ok {
		return de.Weight, true
	}
	return 0, false
}

// Load decodes a DOT graph description into an rsagraph.Graph,
// returning the longest shortest path L over the decoded edge
// weights (adaptive.Policy's distance parameter).
func Load(data []byte) (*rsagraph.Graph, float64, error) {
	b := newBuilder()
	if err := dot.Unmarshal(data, b); err != nil {
		return nil, 0, fmt.Errorf("dotgraph: failed to parse DOT: %w", err)
	}

	nodes := graph.NodesOf(b.Nodes())
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })

	idToVertex := make(map[int64]rsagraph.Vertex, len(nodes))
	for i, n := range nodes {
		idToVertex[n.ID()] = rsagraph.Vertex(i)
	}

	g := rsagraph.New(len(nodes))

	edges := graph.EdgesOf(b.Edges())
	for _, edge := range edges {
		de, ok := edge.(*dotEdge)
		if !ok {
			return nil, 0, fmt.Errorf("dotgraph: unexpected edge type %T", edge)
		}

		src := idToVertex[de.From().ID()]
		dst := idToVertex[de.To().ID()]

		su, err := parseSU(de.SU, de.NOU)
		if err != nil {
			return nil, 0, err
		}

		if _, err := g.AddEdge(src, dst, de.Weight, de.NOU, su); err != nil {
			return nil, 0, fmt.Errorf("dotgraph: %w", err)
		}
	}

	all := path.DijkstraAllPaths(b)
	var l float64
	for _, u := range nodes {
		for _, v := range nodes {
			w := all.Weight(u.ID(), v.ID())
			if math.IsInf(w, 1) {
				continue
			}
			if w > l {
				l = w
			}
		}
	}

	return g, l, nil
}

// parseSU parses a comma-separated "min-max" list into a Set, or
// defaults to the full [0,nou) range when su is empty.
func parseSU(su string, nou int) (spectrum.Set, error) {
	su = strings.TrimSpace(su)
	if su == "" {
		return spectrum.NewSet(spectrum.NewRange(0, nou)), nil
	}

	var ranges []spectrum.Range
	for _, part := range strings.Split(su, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		bounds := strings.SplitN(part, "-", 2)
		if len(bounds) != 2 {
			return spectrum.Set{}, fmt.Errorf("dotgraph: bad su range %q", part)
		}
		min, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
		if err != nil {
			return spectrum.Set{}, fmt.Errorf("dotgraph: bad su range %q: %w", part, err)
		}
		max, err := strconv.Atoi(strings.TrimSpace(bounds[1]))
		if err != nil {
			return spectrum.Set{}, fmt.Errorf("dotgraph: bad su range %q: %w", part, err)
		}
		ranges = append(ranges, spectrum.NewRange(min, max))
	}
	return spectrum.NewSet(ranges...), nil
}
