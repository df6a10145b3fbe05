package spectrum_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iszczesniak/gdrsa/spectrum"
)

func TestInsertMerge(t *testing.T) {
	var s spectrum.Set
	s.Insert(spectrum.NewRange(0, 2))
	s.Insert(spectrum.NewRange(4, 6))
	require.Equal(t, 2, s.Len())

	// adjacent range coalesces the two members into one.
	s.Insert(spectrum.NewRange(2, 4))
	require.Equal(t, 1, s.Len())
	require.Equal(t, []spectrum.Range{spectrum.NewRange(0, 6)}, s.Ranges())
}

func TestInsertOverlap(t *testing.T) {
	var s spectrum.Set
	s.Insert(spectrum.NewRange(0, 3))
	s.Insert(spectrum.NewRange(2, 5))
	require.Equal(t, []spectrum.Range{spectrum.NewRange(0, 5)}, s.Ranges())
}

func TestRemoveSplits(t *testing.T) {
	s := spectrum.NewSet(spectrum.NewRange(0, 10))
	s.Remove(spectrum.NewRange(3, 6))
	require.Equal(t, []spectrum.Range{
		spectrum.NewRange(0, 3),
		spectrum.NewRange(6, 10),
	}, s.Ranges())

	s.Remove(spectrum.NewRange(0, 3))
	s.Remove(spectrum.NewRange(6, 10))
	require.True(t, s.Empty())
}

func TestRemoveNarrower(t *testing.T) {
	s := spectrum.NewSet(spectrum.NewRange(0, 1), spectrum.NewRange(2, 4))
	s.RemoveNarrower(2)
	require.Equal(t, []spectrum.Range{spectrum.NewRange(2, 4)}, s.Ranges())

	s.RemoveNarrower(3)
	require.True(t, s.Empty())
}

func TestIntersect(t *testing.T) {
	a := spectrum.NewSet(spectrum.NewRange(0, 5), spectrum.NewRange(8, 10))
	b := spectrum.NewSet(spectrum.NewRange(3, 9))

	got := spectrum.Intersect(a, b)
	require.Equal(t, []spectrum.Range{
		spectrum.NewRange(3, 5),
		spectrum.NewRange(8, 9),
	}, got.Ranges())
}

func TestIncludes(t *testing.T) {
	a := spectrum.NewSet(spectrum.NewRange(0, 5), spectrum.NewRange(10, 20))
	require.True(t, a.Includes(spectrum.NewSet(spectrum.NewRange(1, 3))))
	require.True(t, a.Includes(spectrum.NewSet(spectrum.NewRange(1, 3), spectrum.NewRange(12, 14))))
	require.False(t, a.Includes(spectrum.NewSet(spectrum.NewRange(4, 11))))
	require.False(t, a.Includes(spectrum.NewSet(spectrum.NewRange(6, 8))))
}

func TestSlots(t *testing.T) {
	s := spectrum.NewSet(spectrum.NewRange(0, 3), spectrum.NewRange(10, 11))
	got := spectrum.Slots(s, 2)
	require.Equal(t, []spectrum.Range{
		spectrum.NewRange(0, 2),
		spectrum.NewRange(1, 3),
	}, got)
}

func TestSelectFirst(t *testing.T) {
	r, ok := spectrum.SelectFirst(spectrum.NewRange(2, 8), 3)
	require.True(t, ok)
	require.Equal(t, spectrum.NewRange(2, 5), r)

	_, ok = spectrum.SelectFirst(spectrum.NewRange(2, 4), 3)
	require.False(t, ok)
}

func TestSelectFirstFromSet(t *testing.T) {
	s := spectrum.NewSet(spectrum.NewRange(0, 1), spectrum.NewRange(5, 9))
	r, ok := spectrum.SelectFirstFromSet(s, 3)
	require.True(t, ok)
	require.Equal(t, spectrum.NewRange(5, 8), r)
}

// insert(remove(a,r)) restores a, for r contained in a single member.
func TestRemoveInsertRoundTrip(t *testing.T) {
	a := spectrum.NewSet(spectrum.NewRange(0, 10))
	r := spectrum.NewRange(3, 6)

	b := a.Clone()
	b.Remove(r)
	b.Insert(r)
	require.Equal(t, a.Ranges(), b.Ranges())
}
