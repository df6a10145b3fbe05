package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iszczesniak/gdrsa/search"
	"github.com/iszczesniak/gdrsa/stats"
)

func TestCounterTracksPeakAcrossIncDec(t *testing.T) {
	var c stats.Counter
	c.Inc()
	c.Inc()
	c.Inc()
	c.Dec()
	require.Equal(t, 2, c.Cur())
	require.Equal(t, 3, c.Max())

	c.Reset()
	require.Equal(t, 0, c.Cur())
	require.Equal(t, 3, c.Max())
}

func TestCounterSetPeakIgnoresLowerValues(t *testing.T) {
	var c stats.Counter
	c.SetPeak(5)
	c.SetPeak(3)
	require.Equal(t, 5, c.Max())
	require.Equal(t, 0, c.Cur())
}

func TestRecorderAggregatesMeanAndMax(t *testing.T) {
	r := stats.NewRecorder()

	r.Record(search.Generic, search.Diagnostics{WallTime: 10 * time.Millisecond, PeakLabels: 4, PeakEdges: 8, PeakUnits: 8})
	r.Record(search.Generic, search.Diagnostics{WallTime: 20 * time.Millisecond, PeakLabels: 6, PeakEdges: 12, PeakUnits: 12})

	rep := r.Snapshot(search.Generic)
	require.Equal(t, float64(2), rep.Runs)
	require.Equal(t, 5.0, rep.MeanPeakLabels)
	require.Equal(t, 6, rep.MaxPeakLabels)
	require.Equal(t, 12, rep.MaxPeakEdges)

	require.Equal(t, stats.Report{}, r.Snapshot(search.Parallel))
}
