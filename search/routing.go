package search

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/iszczesniak/gdrsa/adaptive"
	"github.com/iszczesniak/gdrsa/rsagraph"
	"github.com/iszczesniak/gdrsa/spectrum"
)

// costEpsilon absorbs floating-point summation-order differences
// between two equal-cost paths found by different search variants; a
// genuine cross-check mismatch is orders of magnitude larger than this.
const costEpsilon = 1e-9

// Algorithm names one of the four search variants.
type Algorithm int

const (
	// Generic is the generic-Dijkstra label-setting search; it is
	// always run and is never itself a cross-check entry.
	Generic Algorithm = iota
	// Parallel is the per-slot filtered single-criterion Dijkstra.
	Parallel
	// BruteForce is the exhaustive path-enumeration variant.
	BruteForce
	// YenKSP is the k-shortest-paths-then-admit variant.
	YenKSP
)

func (a Algorithm) String() string {
	switch a {
	case Generic:
		return "generic"
	case Parallel:
		return "parallel"
	case BruteForce:
		return "brute-force"
	case YenKSP:
		return "yen-ksp"
	default:
		return "unknown"
	}
}

// Spectrum-selection policy names recognised at configuration time.
const (
	SelectionFirst   = "first"
	SelectionFittest = "fittest"
	SelectionRandom  = "random"
)

// ErrUnimplementedPolicy is returned when a spectrum-selection policy
// other than "first" is requested; declared but unimplemented
// policies must be refused at configuration time, never per-demand.
var ErrUnimplementedPolicy = errors.New("search: spectrum-selection policy not implemented")

// Config is the routing configuration table: spectrum-selection
// policy, an optional Yen-KSP cap K, and the set of cross-check
// algorithms to run alongside the generic search.
type Config struct {
	SpectrumSelection string
	K                 *int
	CrossCheck        []Algorithm
}

// Result is a successful set_up outcome: the chosen contiguous-unit
// range and the ordered edge path carrying it.
type Result struct {
	Units spectrum.Range
	Path  []rsagraph.EdgeID
}

// Diagnostics reports per-search resource usage, approximating the
// original's word-count accounting: a label costs about two words, a
// contiguous-unit range about two words.
type Diagnostics struct {
	WallTime   time.Duration
	PeakLabels int
	PeakEdges  int
	PeakUnits  int
}

// CrossCheckError reports that an enabled alternative algorithm
// disagreed with the generic search on the chosen unit count or path
// cost — treated as a fatal bug detector rather than a recoverable
// mismatch.
type CrossCheckError struct {
	Algorithm    Algorithm
	GenericUnits int
	GenericCost  float64
	OtherUnits   int
	OtherCost    float64
	OtherPresent bool
}

func (e *CrossCheckError) Error() string {
	if !e.OtherPresent {
		return fmt.Sprintf("search: cross-check mismatch: generic found a path (units=%d cost=%g) but %s found none",
			e.GenericUnits, e.GenericCost, e.Algorithm)
	}
	return fmt.Sprintf("search: cross-check mismatch: generic(units=%d cost=%g) != %s(units=%d cost=%g)",
		e.GenericUnits, e.GenericCost, e.Algorithm, e.OtherUnits, e.OtherCost)
}

// Router runs the routing core's search variants against a graph and
// applies the commit/tear-down side effects of a successful set_up.
type Router struct {
	Policy adaptive.Policy
	Config Config
}

// NewRouter validates Config at construction time — in particular, a
// spectrum-selection policy other than "first" is rejected here, not
// per-demand.
func NewRouter(pol adaptive.Policy, cfg Config) (*Router, error) {
	switch cfg.SpectrumSelection {
	case "", SelectionFirst:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnimplementedPolicy, cfg.SpectrumSelection)
	}
	return &Router{Policy: pol, Config: cfg}, nil
}

// SetUp derives the initial candidate range [0, max outgoing nou(src))
// and runs SetUpWithRange.
func (r *Router) SetUp(g *rsagraph.Graph, d rsagraph.Demand) (*Result, *Diagnostics, error) {
	if err := d.Validate(); err != nil {
		return nil, nil, err
	}
	cu := spectrum.NewRange(0, rsagraph.MaxOutgoingNOU(g, d.Src))
	return r.SetUpWithRange(g, d, cu)
}

// SetUpWithRange runs the generic search over the given initial
// candidate range, cross-checks any configured alternates, and on
// success commits by removing the chosen range from every path edge's
// free spectrum.
func (r *Router) SetUpWithRange(g *rsagraph.Graph, d rsagraph.Demand, cu spectrum.Range) (*Result, *Diagnostics, error) {
	if err := d.Validate(); err != nil {
		return nil, nil, err
	}

	start := time.Now()
	P, startLabel, peak, ok := runGeneric(g, d, cu, r.Policy)
	diag := &Diagnostics{WallTime: time.Since(start), PeakLabels: peak, PeakEdges: 2 * peak, PeakUnits: 2 * peak}
	_ = startLabel

	var generic *Result
	var genericCost float64
	if ok {
		units, path := trace(g, P, d, r.Policy)
		generic = &Result{Units: units, Path: path}
		genericCost = pathCostEdges(g, path)
	}

	for _, alg := range r.Config.CrossCheck {
		other, err := r.runVariant(g, d, cu, alg)
		if err != nil {
			return nil, nil, err
		}
		if err := agree(g, alg, generic, genericCost, other); err != nil {
			panic(err)
		}
	}

	if generic == nil {
		return nil, diag, nil
	}

	r.commit(g, generic)
	return generic, diag, nil
}

func (r *Router) runVariant(g *rsagraph.Graph, d rsagraph.Demand, cu spectrum.Range, alg Algorithm) (*Result, error) {
	switch alg {
	case Parallel:
		return searchParallel(g, d, cu, r.Policy)
	case BruteForce:
		return searchBruteForce(g, d, cu, r.Policy)
	case YenKSP:
		return searchYenKSP(g, d, r.Policy, r.Config.K)
	default:
		return nil, fmt.Errorf("search: unknown cross-check algorithm %v", alg)
	}
}

// agree implements the cross-check contract: disagreement on (unit
// count, cost) is fatal, including absent-vs-present disagreement;
// disagreement on which specific edges were chosen is permitted.
func agree(g *rsagraph.Graph, alg Algorithm, generic *Result, genericCost float64, other *Result) error {
	if generic == nil && other == nil {
		return nil
	}
	if generic == nil || other == nil {
		return &CrossCheckError{Algorithm: alg, GenericUnits: countOf(generic), GenericCost: genericCost, OtherPresent: other != nil}
	}
	otherCost := pathCostEdges(g, other.Path)
	if generic.Units.Count() != other.Units.Count() || math.Abs(genericCost-otherCost) > costEpsilon {
		return &CrossCheckError{
			Algorithm: alg, GenericUnits: generic.Units.Count(), GenericCost: genericCost,
			OtherUnits: other.Units.Count(), OtherCost: otherCost, OtherPresent: true,
		}
	}
	return nil
}

func countOf(r *Result) int {
	if r == nil {
		return 0
	}
	return r.Units.Count()
}

// commit removes the chosen range from every path edge's free
// spectrum — the set_up_path step.
func (r *Router) commit(g *rsagraph.Graph, res *Result) {
	for _, e := range res.Path {
		g.RemoveUnits(e, res.Units)
	}
}

// TearDown re-inserts the chosen range into every path edge's free
// spectrum, the inverse of the commit performed inside SetUp.
func (r *Router) TearDown(g *rsagraph.Graph, res *Result) {
	for _, e := range res.Path {
		g.InsertUnits(e, res.Units)
	}
}
