package style

import (
	"testing"

	tu "github.com/benoitkugler/layoutng/utils/testutils"
)

func TestDimensionResolve(t *testing.T) {
	tu.AssertEqual(t, Dim(40).Resolve(200), Fl(40))
	tu.AssertEqual(t, Percent(25).Resolve(200), Fl(50))
	tu.AssertEqual(t, Dimension{}.IsAuto(), true)
	tu.AssertEqual(t, Dim(0).IsAuto(), false)
}

func TestComputeBoxSides(t *testing.T) {
	st := Default()
	st.MarginLeft = Percent(10)
	st.PaddingTop = Dim(5)
	st.PaddingRight = Percent(5)
	st.BorderBottomWidth = 2

	sides := ComputeBoxSides(st, 400)
	tu.AssertEqual(t, sides.MarginLeft, Fl(40))
	tu.AssertEqual(t, sides.PaddingTop, Fl(5))
	// percentages resolve against the inline size, even vertically
	tu.AssertEqual(t, sides.PaddingRight, Fl(20))
	tu.AssertEqual(t, sides.BorderBottom, Fl(2))
	tu.AssertEqual(t, sides.HorizontalEdges(), Fl(20))
	tu.AssertEqual(t, sides.VerticalEdges(), Fl(7))
}

func TestLineHeightPx(t *testing.T) {
	st := Default()
	tu.AssertApprox(t, st.LineHeightPx(), 19.2)

	st.LineHeight = Dim(24)
	tu.AssertEqual(t, st.LineHeightPx(), Fl(24))

	st.LineHeight = Percent(150)
	tu.AssertEqual(t, st.LineHeightPx(), Fl(24))
}
