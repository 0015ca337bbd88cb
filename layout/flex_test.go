package layout

import (
	"testing"

	"github.com/benoitkugler/layoutng/style"
	tu "github.com/benoitkugler/layoutng/utils/testutils"
)

func flexContainer(width Fl) *style.ComputedStyle {
	st := style.Default()
	st.Display = style.DisplayFlex
	st.Width = style.Dim(width)
	return st
}

func flexItemStyle(width, grow Fl) *style.ComputedStyle {
	st := style.Default()
	st.Width = style.Dim(width)
	st.FlexGrow = grow
	return st
}

func TestFlexGrow(t *testing.T) {
	tr := newTestTree()

	el(tr, 0, style.Default(), 1)
	el(tr, 1, flexContainer(600), 2, 3)
	el(tr, 2, flexItemStyle(100, 1))
	el(tr, 3, flexItemStyle(100, 2))
	tr.LayoutRoot(0)

	// 400 free px split 1:2
	tu.AssertApprox(t, resultOf(t, tr, 2).InlineSize, 233.3333)
	tu.AssertApprox(t, resultOf(t, tr, 3).InlineSize, 366.6667)

	tu.AssertEqual(t, resultOf(t, tr, 2).BfcOffset.Inline, Fl(0))
	// offsets accumulate on the 1/64 px grid
	tu.AssertEqual(t, resultOf(t, tr, 3).BfcOffset.Inline, Quantize(233.33333))
}

func TestFlexGrowSaturation(t *testing.T) {
	tr := newTestTree()

	capped := flexItemStyle(100, 1)
	capped.MaxWidth = style.Dim(150)

	el(tr, 0, style.Default(), 1)
	el(tr, 1, flexContainer(600), 2, 3)
	el(tr, 2, capped)
	el(tr, 3, flexItemStyle(100, 1))
	tr.LayoutRoot(0)

	// the capped item saturates, the rest goes to its sibling
	tu.AssertApprox(t, resultOf(t, tr, 2).InlineSize, 150)
	tu.AssertApprox(t, resultOf(t, tr, 3).InlineSize, 450)
}

func TestFlexShrink(t *testing.T) {
	tr := newTestTree()

	el(tr, 0, style.Default(), 1)
	el(tr, 1, flexContainer(300), 2, 3)
	el(tr, 2, flexItemStyle(200, 0))
	el(tr, 3, flexItemStyle(200, 0))
	tr.LayoutRoot(0)

	// 100 missing px removed in proportion to size times shrink
	tu.AssertApprox(t, resultOf(t, tr, 2).InlineSize, 150)
	tu.AssertApprox(t, resultOf(t, tr, 3).InlineSize, 150)
	tu.AssertEqual(t, resultOf(t, tr, 3).BfcOffset.Inline, Fl(150))
}

func TestFlexGapAndMargins(t *testing.T) {
	tr := newTestTree()

	gapped := flexContainer(600)
	gapped.ColumnGap = 20

	margined := flexItemStyle(100, 0)
	margined.MarginLeft = style.Dim(5)
	margined.MarginRight = style.Dim(15)

	el(tr, 0, style.Default(), 1)
	el(tr, 1, gapped, 2, 3)
	el(tr, 2, margined)
	el(tr, 3, flexItemStyle(100, 0))
	tr.LayoutRoot(0)

	tu.AssertEqual(t, resultOf(t, tr, 2).BfcOffset.Inline, Fl(5))
	// 100 + 5 + 15 of outer size, then the 20px gap
	tu.AssertEqual(t, resultOf(t, tr, 3).BfcOffset.Inline, Fl(140))
}

func TestFlexCrossAlignment(t *testing.T) {
	tr := newTestTree()

	container := flexContainer(600)
	container.Height = style.Dim(100)

	end := flexItemStyle(100, 0)
	end.AlignSelf = style.AlignFlexEnd
	center := flexItemStyle(100, 0)
	center.AlignSelf = style.AlignCenter
	stretched := flexItemStyle(100, 0)

	inner := style.Default()
	inner.Height = style.Dim(30)

	el(tr, 0, style.Default(), 1)
	el(tr, 1, container, 2, 3, 4)
	el(tr, 2, end, 5)
	el(tr, 3, center, 6)
	el(tr, 4, stretched, 7)
	el(tr, 5, inner)
	el(tr, 6, inner)
	el(tr, 7, inner)
	tr.LayoutRoot(0)

	tu.AssertEqual(t, blockOffset(t, tr, 2), Fl(70))
	tu.AssertEqual(t, resultOf(t, tr, 2).BlockSize, Fl(30))
	tu.AssertEqual(t, blockOffset(t, tr, 3), Fl(35))
	// auto alignment stretches to the line
	tu.AssertEqual(t, blockOffset(t, tr, 4), Fl(0))
	tu.AssertEqual(t, resultOf(t, tr, 4).BlockSize, Fl(100))

	tu.AssertEqual(t, resultOf(t, tr, 1).BlockSize, Fl(100))
}

func TestFlexTextItem(t *testing.T) {
	tr := newTestTree()

	el(tr, 0, style.Default(), 1)
	el(tr, 1, flexContainer(600), 2)
	tr.TextNodes[2] = "hello"
	tr.LayoutRoot(0)

	tu.AssertEqual(t, resultOf(t, tr, 2).InlineSize, Fl(40))
	// the container wraps the line height of its text
	tu.AssertApprox(t, resultOf(t, tr, 1).BlockSize, 19.2)
}

func TestFlexAbsoluteChild(t *testing.T) {
	tr := newTestTree()

	container := flexContainer(600)
	container.PaddingLeft = style.Dim(10)
	container.PaddingTop = style.Dim(10)
	container.Height = style.Dim(100)

	abs := style.Default()
	abs.Position = style.PositionAbsolute
	abs.Left = style.Dim(5)
	abs.Top = style.Dim(5)
	abs.Width = style.Dim(50)
	abs.Height = style.Dim(50)

	el(tr, 0, style.Default(), 1)
	el(tr, 1, container, 2)
	el(tr, 2, abs)
	tr.LayoutRoot(0)

	// positioned against the container's content box
	tu.AssertEqual(t, resultOf(t, tr, 2).BfcOffset.Inline, Fl(15))
	tu.AssertEqual(t, blockOffset(t, tr, 2), Fl(15))
}
