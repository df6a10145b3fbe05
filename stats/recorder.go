package stats

import (
	"sync"

	"gonum.org/v1/gonum/stat/running"

	"github.com/iszczesniak/gdrsa/search"
)

// Report is a snapshot of one algorithm's accumulated diagnostics: the
// running mean of wall time and peak resource usage across every
// recorded set_up call, plus the lifetime maximum peak ever observed.
type Report struct {
	Runs           float64
	MeanWallTimeNS float64
	MeanPeakLabels float64
	MeanPeakEdges  float64
	MeanPeakUnits  float64
	MaxPeakLabels  int
	MaxPeakEdges   int
	MaxPeakUnits   int
}

// algStats holds one algorithm's running accumulators.
type algStats struct {
	wallTime   running.Mean
	peakLabels running.Mean
	peakEdges  running.Mean
	peakUnits  running.Mean
	maxLabels  Counter
	maxEdges   Counter
	maxUnits   Counter
}

// Recorder aggregates search.Diagnostics across many set_up calls,
// grouped by the algorithm that produced them. The zero value is ready
// to use.
type Recorder struct {
	mu  sync.Mutex
	byA map[search.Algorithm]*algStats
}

// NewRecorder builds an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{byA: make(map[search.Algorithm]*algStats)}
}

// Record folds one set_up call's diagnostics into alg's running
// accumulators.
func (r *Recorder) Record(alg search.Algorithm, d search.Diagnostics) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.byA == nil {
		r.byA = make(map[search.Algorithm]*algStats)
	}
	s, ok := r.byA[alg]
	if !ok {
		s = &algStats{}
		r.byA[alg] = s
	}

	s.wallTime.Accum(float64(d.WallTime.Nanoseconds()))
	s.peakLabels.Accum(float64(d.PeakLabels))
	s.peakEdges.Accum(float64(d.PeakEdges))
	s.peakUnits.Accum(float64(d.PeakUnits))

	s.maxLabels.SetPeak(d.PeakLabels)
	s.maxEdges.SetPeak(d.PeakEdges)
	s.maxUnits.SetPeak(d.PeakUnits)
}

// Snapshot returns the current Report for alg. The zero Report is
// returned for an algorithm with no recorded runs.
func (r *Recorder) Snapshot(alg search.Algorithm) Report {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byA[alg]
	if !ok {
		return Report{}
	}
	return Report{
		Runs:           s.wallTime.Count(),
		MeanWallTimeNS: s.wallTime.Mean(),
		MeanPeakLabels: s.peakLabels.Mean(),
		MeanPeakEdges:  s.peakEdges.Mean(),
		MeanPeakUnits:  s.peakUnits.Mean(),
		MaxPeakLabels:  s.maxLabels.Max(),
		MaxPeakEdges:   s.maxEdges.Max(),
		MaxPeakUnits:   s.maxUnits.Max(),
	}
}
