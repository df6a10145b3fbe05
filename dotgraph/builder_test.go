package dotgraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sample = `graph {
	A -- B [weight=1, nou=4, su="0-2,3-4"];
	B -- C [weight=2, nou=4];
}`

func TestLoadParsesNodesEdgesAndSU(t *testing.T) {
	g, l, err := Load([]byte(sample))
	require.NoError(t, err)
	require.Equal(t, 3, g.NumVertices())
	require.Equal(t, 3.0, l)
}

const disconnected = `graph {
	A -- B [weight=1, nou=4];
	C -- D [weight=100, nou=4];
}`

func TestLoadSkipsUnreachablePairsWhenComputingL(t *testing.T) {
	_, l, err := Load([]byte(disconnected))
	require.NoError(t, err)
	require.Equal(t, 100.0, l)
}

func TestParseSUDefaultsToFullRange(t *testing.T) {
	su, err := parseSU("", 4)
	require.NoError(t, err)
	require.Equal(t, 4, su.Ranges()[0].Count())
}

func TestParseSUParsesExplicitRanges(t *testing.T) {
	su, err := parseSU("0-2,3-4", 4)
	require.NoError(t, err)
	require.Len(t, su.Ranges(), 2)
}

func TestParseSURejectsMalformed(t *testing.T) {
	_, err := parseSU("0to2", 4)
	require.Error(t, err)
}
