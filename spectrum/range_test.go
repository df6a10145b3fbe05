package spectrum_test

import (
	"testing"

	"github.com/iszczesniak/gdrsa/spectrum"
)

func TestRangeIncludes(t *testing.T) {
	cu1 := spectrum.NewRange(0, 4)
	cu2 := spectrum.NewRange(2, 6)

	if cu1.Includes(spectrum.NewRange(0, 2)) != true {
		t.Errorf("cu1 should include [0,2)")
	}
	if cu1.Includes(spectrum.NewRange(0, 5)) != false {
		t.Errorf("cu1 should not include [0,5)")
	}
	if cu2.Includes(spectrum.NewRange(2, 4)) != true {
		t.Errorf("cu2 should include [2,4)")
	}
	if cu2.Includes(spectrum.NewRange(5, 6)) != true {
		t.Errorf("cu2 should include [5,6)")
	}
	if cu2.Includes(spectrum.NewRange(1, 3)) != false {
		t.Errorf("cu2 should not include [1,3)")
	}
}

func TestRangeOrdering(t *testing.T) {
	a := spectrum.NewRange(0, 2)
	b := spectrum.NewRange(0, 3)
	c := spectrum.NewRange(1, 2)

	if !a.Less(b) {
		t.Errorf("[0,2) should be less than [0,3)")
	}
	if !a.Less(c) {
		t.Errorf("[0,2) should be less than [1,2)")
	}
	if a.Equal(b) {
		t.Errorf("[0,2) should not equal [0,3)")
	}
}

func TestRangeCount(t *testing.T) {
	if spectrum.NewRange(3, 3).Count() != 0 {
		t.Errorf("empty range must have count 0")
	}
	if spectrum.NewRange(0, 5).Count() != 5 {
		t.Errorf("[0,5) must have count 5")
	}
}
