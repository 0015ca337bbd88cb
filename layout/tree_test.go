package layout

import (
	"testing"

	"github.com/benoitkugler/layoutng/style"
	tu "github.com/benoitkugler/layoutng/utils/testutils"
)

func TestLayoutRootViewportFloor(t *testing.T) {
	tr := newTestTree()
	el(tr, 0, style.Default())
	res := tr.LayoutRoot(0)

	// an empty root still covers the viewport
	tu.AssertEqual(t, res.InlineSize, Fl(800))
	tu.AssertEqual(t, res.BlockSize, Fl(600))

	tall := style.Default()
	tall.Height = style.Dim(1000)
	tr = newTestTree()
	el(tr, 0, style.Default(), 1)
	el(tr, 1, tall)
	res = tr.LayoutRoot(0)
	tu.AssertEqual(t, res.BlockSize, Fl(1000))
}

func TestMeasurementNotPersisted(t *testing.T) {
	tr := newTestTree()
	box := style.Default()
	box.Width = style.Dim(120)
	box.Height = style.Dim(50)
	el(tr, 0, style.Default(), 1)
	el(tr, 1, box)

	tu.AssertEqual(t, tr.MeasureBlockAtInline(1, 300), Fl(50))
	tu.AssertEqual(t, tr.MeasureNaturalInline(1), Fl(120))
	size := tr.MeasureAtSize(1, 300, 300)
	tu.AssertEqual(t, size.Inline, Fl(120))
	tu.AssertEqual(t, size.Block, Fl(50))

	// measurement passes leave no trace
	tu.AssertEqual(t, len(tr.Results), 0)

	tr.LayoutRoot(0)
	tu.AssertEqual(t, resultOf(t, tr, 1).BlockSize, Fl(50))
}

func TestFirstPassNeedsRelayout(t *testing.T) {
	tr := newTestTree()
	box := style.Default()
	box.MarginTop = style.Dim(10)
	box.Height = style.Dim(30)
	el(tr, 0, style.Default(), 1)
	el(tr, 1, box)

	space := RootSpace(800, 600)
	space.BfcOffset.Block = nil
	res := tr.layoutBlock(1, space)

	tu.AssertEqual(t, res.NeedsRelayout, true)
	_, ok := tr.Results[1]
	tu.AssertEqual(t, ok, false)
}

func TestLayoutDeterminism(t *testing.T) {
	run := func() map[NodeKey]Result {
		tr := newTestTree()

		flex := style.Default()
		flex.Display = style.DisplayFlex
		flex.Width = style.Dim(700)
		grown := style.Default()
		grown.Width = style.Dim(100)
		grown.FlexGrow = 1

		el(tr, 0, style.Default(), 1, 4, 5)
		el(tr, 1, flex, 2, 3)
		el(tr, 2, grown)
		el(tr, 3, grown)
		el(tr, 4, floatStyle(style.FloatLeft, 100, 50))
		el(tr, 5, style.Default(), 6)
		tr.TextNodes[6] = "determinism"
		tr.LayoutRoot(0)
		return tr.Results
	}

	tu.AssertEqual(t, run(), run())
}

func TestDirtyRects(t *testing.T) {
	tr := newTestTree()
	box := style.Default()
	box.Height = style.Dim(50)
	el(tr, 0, style.Default(), 1)
	el(tr, 1, box)

	tr.LayoutRoot(0)
	dirty := tr.DirtyRects()
	tu.AssertEqual(t, dirty, []Rect{{X: 0, Y: 0, Width: 800, Height: 600}})
	tu.AssertEqual(t, len(tr.DirtyRects()), 0)

	// same geometry: nothing to repaint
	tr.LayoutRoot(0)
	tu.AssertEqual(t, len(tr.DirtyRects()), 0)

	// growing past the viewport invalidates the union
	box.Height = style.Dim(1000)
	tr.LayoutRoot(0)
	tu.AssertEqual(t, tr.DirtyRects(), []Rect{{X: 0, Y: 0, Width: 800, Height: 1000}})
}

func TestMissingStyleDefaults(t *testing.T) {
	tr := newTestTree()
	tr.Children[0] = []NodeKey{1}
	tr.Children[1] = nil
	tr.LayoutRoot(0)

	// both nodes fall back to the default style
	tu.AssertEqual(t, resultOf(t, tr, 1).InlineSize, Fl(800))
	tu.AssertEqual(t, tr.Style(1).Display, style.DisplayBlock)
}
