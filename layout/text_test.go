package layout

import (
	"strings"
	"testing"

	"github.com/benoitkugler/layoutng/style"
	tu "github.com/benoitkugler/layoutng/utils/testutils"
)

// the fake measurer advances 8px per rune at the default font size, with
// a 19.2px line and a 16px glyph box

func TestTextRunContinuation(t *testing.T) {
	tr := newTestTree()

	el(tr, 0, style.Default(), 1, 2, 3)
	tr.TextNodes[1] = "Unicode "
	tr.TextNodes[2] = "&"
	tr.TextNodes[3] = " Special"
	tr.LayoutRoot(0)

	// the lead node measures the whole 17 rune run
	lead := resultOf(t, tr, 1)
	tu.AssertEqual(t, lead.InlineSize, Fl(136))
	tu.AssertEqual(t, lead.BlockSize, Fl(16))

	tu.AssertEqual(t, resultOf(t, tr, 2).InlineSize, Fl(0))
	tu.AssertEqual(t, resultOf(t, tr, 3).InlineSize, Fl(0))
}

func TestTextHalfLeadingAndBaseline(t *testing.T) {
	tr := newTestTree()

	el(tr, 0, style.Default(), 1)
	el(tr, 1, style.Default(), 2)
	tr.TextNodes[2] = "hello"
	tr.LayoutRoot(0)

	// the glyph box is centered in the line: (19.2 - 16) / 2, floored
	tu.AssertEqual(t, blockOffset(t, tr, 2), Fl(1))
	res := resultOf(t, tr, 2)
	if res.Baseline == nil {
		t.Fatal("missing baseline")
	}
	tu.AssertApprox(t, *res.Baseline, 12.8)

	// the flow advances by the full line height
	tu.AssertApprox(t, resultOf(t, tr, 1).BlockSize, 19.2)
}

func TestTextWhitespaceInvisible(t *testing.T) {
	tr := newTestTree()

	first := style.Default()
	first.Height = style.Dim(30)
	first.MarginBottom = style.Dim(10)
	second := style.Default()
	second.Height = style.Dim(20)
	second.MarginTop = style.Dim(5)

	el(tr, 0, style.Default(), 1, 2, 3)
	el(tr, 1, first)
	tr.TextNodes[2] = "  \n\t "
	el(tr, 3, second)
	tr.LayoutRoot(0)

	ws := resultOf(t, tr, 2)
	tu.AssertEqual(t, ws.InlineSize, Fl(0))
	tu.AssertEqual(t, ws.BlockSize, Fl(0))

	// the margins still collapse across the invisible node
	tu.AssertEqual(t, blockOffset(t, tr, 3), Fl(40))
}

func TestTextAlignment(t *testing.T) {
	tr := newTestTree()

	centered := style.Default()
	centered.Width = style.Dim(400)
	centered.TextAlign = style.TextAlignCenter
	righted := style.Default()
	righted.Width = style.Dim(400)
	righted.TextAlign = style.TextAlignRight

	el(tr, 0, style.Default(), 1, 3)
	el(tr, 1, centered, 2)
	tr.TextNodes[2] = "0123456789" // 80px
	el(tr, 3, righted, 4)
	tr.TextNodes[4] = "0123456789"
	tr.LayoutRoot(0)

	tu.AssertEqual(t, resultOf(t, tr, 2).BfcOffset.Inline, Fl(160))
	tu.AssertEqual(t, resultOf(t, tr, 4).BfcOffset.Inline, Fl(320))
}

func TestTextWrapping(t *testing.T) {
	tr := newTestTree()

	box := style.Default()
	box.Width = style.Dim(400)

	el(tr, 0, style.Default(), 1)
	el(tr, 1, box, 2)
	tr.TextNodes[2] = strings.Repeat("a", 100)
	tr.LayoutRoot(0)

	// 100 runes at 8px need two 50 rune lines at 400px
	res := resultOf(t, tr, 2)
	tu.AssertEqual(t, res.InlineSize, Fl(400))
	tu.AssertApprox(t, res.BlockSize, 38.4)
	if res.Baseline != nil {
		t.Fatal("wrapped text reports no baseline")
	}
	tu.AssertApprox(t, resultOf(t, tr, 1).BlockSize, 38.4)
}

func TestTextNoWrapBelowThreshold(t *testing.T) {
	tr := newTestTree()

	box := style.Default()
	box.Width = style.Dim(40)

	el(tr, 0, style.Default(), 1)
	el(tr, 1, box, 2)
	tr.TextNodes[2] = "0123456789"
	tr.LayoutRoot(0)

	// 40px is below the wrapping threshold: the run overflows instead
	res := resultOf(t, tr, 2)
	tu.AssertEqual(t, res.InlineSize, Fl(80))
	tu.AssertEqual(t, res.BlockSize, Fl(16))
}
