package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iszczesniak/gdrsa/adaptive"
	"github.com/iszczesniak/gdrsa/rsagraph"
	"github.com/iszczesniak/gdrsa/search"
	"github.com/iszczesniak/gdrsa/spectrum"
)

// flatPolicy never shrinks a demand's requested unit count, letting
// these scenarios exercise dominance without the modulation staircase.
func flatPolicy() adaptive.Policy {
	return adaptive.NewPolicy(0)
}

// (a) two-node graph, single edge weight 1, su=[0,3), demand ncu=3.
func TestScenarioA(t *testing.T) {
	g := rsagraph.New(2)
	e, err := g.AddEdge(0, 1, 1, 3, spectrum.NewSet(spectrum.NewRange(0, 3)))
	require.NoError(t, err)

	r, err := search.NewRouter(flatPolicy(), search.Config{})
	require.NoError(t, err)

	res, _, err := r.SetUp(g, rsagraph.Demand{Src: 0, Dst: 1, NCU: 3})
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Equal(t, spectrum.NewRange(0, 3), res.Units)
	require.Equal(t, []rsagraph.EdgeID{e}, res.Path)
}

// (b) three-node chain with parallel src->mid edges; the cheapest
// edge's spectrum is incompatible, so the result must route over the
// more expensive parallel edge.
func TestScenarioB(t *testing.T) {
	g := rsagraph.New(3)
	g.AddEdge(0, 1, 1, 3, spectrum.NewSet(spectrum.NewRange(0, 2)))
	e2, _ := g.AddEdge(0, 1, 2, 3, spectrum.NewSet(spectrum.NewRange(1, 3)))
	e3, _ := g.AddEdge(1, 2, 1, 3, spectrum.NewSet(spectrum.NewRange(1, 3)))

	r, _ := search.NewRouter(flatPolicy(), search.Config{})
	res, _, err := r.SetUp(g, rsagraph.Demand{Src: 0, Dst: 2, NCU: 2})
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Equal(t, []rsagraph.EdgeID{e2, e3}, res.Path)
	require.Equal(t, spectrum.NewRange(1, 3), res.Units)
}

// (e) two parallel src->dst edges; only the cheaper one should reach
// the destination in the Permanent store.
func TestScenarioE(t *testing.T) {
	g := rsagraph.New(2)
	e1, _ := g.AddEdge(0, 1, 1, 1, spectrum.NewSet(spectrum.NewRange(0, 1)))
	g.AddEdge(0, 1, 2, 1, spectrum.NewSet(spectrum.NewRange(0, 1)))

	r, _ := search.NewRouter(flatPolicy(), search.Config{})
	res, _, err := r.SetUp(g, rsagraph.Demand{Src: 0, Dst: 1, NCU: 1})
	require.NoError(t, err)
	require.Equal(t, []rsagraph.EdgeID{e1}, res.Path)
}

// (f) empty-su edge between src and dst: set_up returns no-path and
// leaves the graph unchanged.
func TestScenarioF(t *testing.T) {
	g := rsagraph.New(2)
	g.AddEdge(0, 1, 1, 4, spectrum.Set{})

	r, _ := search.NewRouter(flatPolicy(), search.Config{})
	res, _, err := r.SetUp(g, rsagraph.Demand{Src: 0, Dst: 1, NCU: 1})
	require.NoError(t, err)
	require.Nil(t, res)
}

// (c) src->mid has two parallel edges, only one of which is cheapest;
// the dominated label via the pricier edge must be purged, leaving
// the route through the cheaper one.
func TestScenarioC(t *testing.T) {
	g := rsagraph.New(3)
	g.AddEdge(0, 1, 2, 1, spectrum.NewSet(spectrum.NewRange(0, 1)))
	e2, _ := g.AddEdge(0, 1, 1, 1, spectrum.NewSet(spectrum.NewRange(0, 1)))
	e3, _ := g.AddEdge(1, 2, 2, 1, spectrum.NewSet(spectrum.NewRange(0, 1)))

	r, _ := search.NewRouter(flatPolicy(), search.Config{})
	res, _, err := r.SetUp(g, rsagraph.Demand{Src: 0, Dst: 2, NCU: 1})
	require.NoError(t, err)
	require.Equal(t, []rsagraph.EdgeID{e2, e3}, res.Path)
	require.Equal(t, 3.0, pathCost(g, res.Path))
}

// (d) src->mid edges are incomparable (lower cost vs wider range); the
// lower-cost, narrower-but-sufficient label still wins since ncu=1.
func TestScenarioD(t *testing.T) {
	g := rsagraph.New(3)
	g.AddEdge(0, 1, 2, 2, spectrum.NewSet(spectrum.NewRange(0, 2)))
	e2, _ := g.AddEdge(0, 1, 1, 1, spectrum.NewSet(spectrum.NewRange(0, 1)))
	e3, _ := g.AddEdge(1, 2, 2, 1, spectrum.NewSet(spectrum.NewRange(0, 1)))

	r, _ := search.NewRouter(flatPolicy(), search.Config{})
	res, _, err := r.SetUp(g, rsagraph.Demand{Src: 0, Dst: 2, NCU: 1})
	require.NoError(t, err)
	require.Equal(t, []rsagraph.EdgeID{e2, e3}, res.Path)
	require.Equal(t, spectrum.NewRange(0, 1), res.Units)
}

func pathCost(g *rsagraph.Graph, path []rsagraph.EdgeID) float64 {
	var c float64
	for _, e := range path {
		c += g.Weight(e)
	}
	return c
}

func TestSetUpTearDownRoundTrip(t *testing.T) {
	g := rsagraph.New(2)
	e, _ := g.AddEdge(0, 1, 1, 4, spectrum.NewSet(spectrum.NewRange(0, 4)))

	r, _ := search.NewRouter(flatPolicy(), search.Config{})
	before := g.SU(e)

	res, _, err := r.SetUp(g, rsagraph.Demand{Src: 0, Dst: 1, NCU: 2})
	require.NoError(t, err)
	require.NotNil(t, res)
	require.False(t, g.SU(e).Includes(spectrum.NewSet(res.Units)))

	r.TearDown(g, res)
	require.Equal(t, before.Ranges(), g.SU(e).Ranges())
}

func TestInvalidDemandRejected(t *testing.T) {
	g := rsagraph.New(2)
	g.AddEdge(0, 1, 1, 4, spectrum.NewSet(spectrum.NewRange(0, 4)))

	r, _ := search.NewRouter(flatPolicy(), search.Config{})
	_, _, err := r.SetUp(g, rsagraph.Demand{Src: 0, Dst: 0, NCU: 1})
	require.ErrorIs(t, err, rsagraph.ErrInvalidDemand)
}

func TestUnimplementedPolicyRejectedAtConfigTime(t *testing.T) {
	_, err := search.NewRouter(flatPolicy(), search.Config{SpectrumSelection: "fittest"})
	require.ErrorIs(t, err, search.ErrUnimplementedPolicy)
}

// Regression for Reach's bucket-position disambiguation: ncu=1 is the
// case where NCUs collapses two distinct buckets onto the same unit
// count (NCUs(1) = [1,2,2,3,4]), so a path whose cost lands in the
// (3/8*L, 3/4*L] band — genuinely needing width 2 at the wider
// boundary — must not be invisible to the Parallel cross-check.
func TestCrossCheckAgreesOnCollidingBucketDemand(t *testing.T) {
	const l = 1000.0
	g := rsagraph.New(2)
	g.AddEdge(0, 1, l/2, 2, spectrum.NewSet(spectrum.NewRange(0, 2)))

	r, err := search.NewRouter(adaptive.NewPolicy(l), search.Config{
		CrossCheck: []search.Algorithm{search.Parallel},
	})
	require.NoError(t, err)

	res, _, err := r.SetUp(g, rsagraph.Demand{Src: 0, Dst: 1, NCU: 1})
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Equal(t, 2, res.Units.Count())
}

func TestCrossCheckAgreement(t *testing.T) {
	g := rsagraph.New(3)
	g.AddEdge(0, 1, 1, 3, spectrum.NewSet(spectrum.NewRange(0, 3)))
	g.AddEdge(1, 2, 1, 3, spectrum.NewSet(spectrum.NewRange(0, 3)))

	r, _ := search.NewRouter(flatPolicy(), search.Config{
		CrossCheck: []search.Algorithm{search.Parallel, search.BruteForce, search.YenKSP},
	})

	res, _, err := r.SetUp(g, rsagraph.Demand{Src: 0, Dst: 2, NCU: 2})
	require.NoError(t, err)
	require.NotNil(t, res)
}
