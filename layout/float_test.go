package layout

import (
	"testing"

	"github.com/benoitkugler/layoutng/style"
	tu "github.com/benoitkugler/layoutng/utils/testutils"
)

func floatStyle(side style.Float, width, height Fl) *style.ComputedStyle {
	st := style.Default()
	st.Float = side
	st.Width = style.Dim(width)
	st.Height = style.Dim(height)
	return st
}

func TestFloatPlacementBands(t *testing.T) {
	tr := newTestTree()

	sibling := style.Default()
	sibling.Height = style.Dim(20)

	el(tr, 0, style.Default(), 1, 2, 3, 4)
	el(tr, 1, floatStyle(style.FloatLeft, 100, 50))
	el(tr, 2, floatStyle(style.FloatLeft, 150, 30))
	el(tr, 3, floatStyle(style.FloatRight, 100, 40))
	el(tr, 4, sibling)
	tr.LayoutRoot(0)

	// each float lands after the ones already on its shelf
	tu.AssertEqual(t, resultOf(t, tr, 1).BfcOffset.Inline, Fl(0))
	tu.AssertEqual(t, resultOf(t, tr, 2).BfcOffset.Inline, Fl(100))
	tu.AssertEqual(t, resultOf(t, tr, 3).BfcOffset.Inline, Fl(700))
	tu.AssertEqual(t, blockOffset(t, tr, 1), Fl(0))

	// floats are out of flow: the sibling keeps the start position
	tu.AssertEqual(t, blockOffset(t, tr, 4), Fl(0))
}

func TestFloatAutoWidth(t *testing.T) {
	tr := newTestTree()

	wide := style.Default()
	wide.Float = style.FloatLeft
	narrowBox := style.Default()
	narrowBox.Width = style.Dim(150)
	narrowFloat := style.Default()
	narrowFloat.Float = style.FloatLeft

	el(tr, 0, style.Default(), 1, 2)
	el(tr, 1, wide)
	el(tr, 2, narrowBox, 3)
	el(tr, 3, narrowFloat)
	tr.LayoutRoot(0)

	// half the available size, floored at the minimum
	tu.AssertEqual(t, resultOf(t, tr, 1).InlineSize, Fl(400))
	tu.AssertEqual(t, resultOf(t, tr, 3).InlineSize, Fl(100))
}

func TestFloatContainerExtends(t *testing.T) {
	tr := newTestTree()

	el(tr, 0, style.Default(), 1)
	el(tr, 1, style.Default(), 2)
	el(tr, 2, floatStyle(style.FloatLeft, 100, 50))
	tr.LayoutRoot(0)

	// the container closes below its floats
	tu.AssertEqual(t, resultOf(t, tr, 1).BlockSize, Fl(50))
}

func TestFloatClearance(t *testing.T) {
	tr := newTestTree()

	cleared := style.Default()
	cleared.Clear = style.ClearLeft
	cleared.Height = style.Dim(30)

	el(tr, 0, style.Default(), 1)
	el(tr, 1, style.Default(), 2, 3)
	el(tr, 2, floatStyle(style.FloatLeft, 100, 50))
	el(tr, 3, cleared)
	tr.LayoutRoot(0)

	tu.AssertEqual(t, blockOffset(t, tr, 3), Fl(50))
	tu.AssertEqual(t, resultOf(t, tr, 1).BlockSize, Fl(80))
}

func TestFloatAutoHeightFromChildren(t *testing.T) {
	tr := newTestTree()

	float := style.Default()
	float.Float = style.FloatLeft
	float.Width = style.Dim(100)
	inner := style.Default()
	inner.Height = style.Dim(25)

	el(tr, 0, style.Default(), 1)
	el(tr, 1, float, 2)
	el(tr, 2, inner)
	tr.LayoutRoot(0)

	tu.AssertEqual(t, resultOf(t, tr, 1).BlockSize, Fl(25))
}
