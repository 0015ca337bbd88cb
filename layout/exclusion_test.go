package layout

import (
	"testing"

	"github.com/benoitkugler/layoutng/style"
	tu "github.com/benoitkugler/layoutng/utils/testutils"
)

func TestExclusionSpaceBands(t *testing.T) {
	var space ExclusionSpace
	tu.AssertEqual(t, space.HasFloats(), false)

	space.AddFloat(1, BfcOffset{Inline: 0, Block: flPtr(0)},
		FloatSize{InlineSize: 100, BlockSize: 50, Type: style.FloatLeft})
	space.AddFloat(2, BfcOffset{Inline: 700, Block: flPtr(0)},
		FloatSize{InlineSize: 100, BlockSize: 30, Type: style.FloatRight})

	tu.AssertEqual(t, space.HasFloats(), true)
	tu.AssertEqual(t, space.LastFloatBottom(), Fl(50))

	// both floats cross offset 25
	left, avail := space.AvailableInlineSizeAtOffset(25, 800)
	tu.AssertEqual(t, left, Fl(100))
	tu.AssertEqual(t, avail, Fl(600))

	// only the left float crosses offset 40
	left, avail = space.AvailableInlineSizeAtOffset(40, 800)
	tu.AssertEqual(t, left, Fl(100))
	tu.AssertEqual(t, avail, Fl(700))

	// below both floats
	left, avail = space.AvailableInlineSizeAtOffset(60, 800)
	tu.AssertEqual(t, left, Fl(0))
	tu.AssertEqual(t, avail, Fl(800))
}

func TestExclusionSpaceClearance(t *testing.T) {
	var space ExclusionSpace
	space.AddFloat(1, BfcOffset{Inline: 0, Block: flPtr(0)},
		FloatSize{InlineSize: 100, BlockSize: 50, Type: style.FloatLeft})
	space.AddFloat(2, BfcOffset{Inline: 700, Block: flPtr(10)},
		FloatSize{InlineSize: 100, BlockSize: 60, Type: style.FloatRight})

	tu.AssertEqual(t, space.ClearanceOffset(style.ClearLeft), Fl(50))
	tu.AssertEqual(t, space.ClearanceOffset(style.ClearRight), Fl(70))
	tu.AssertEqual(t, space.ClearanceOffset(style.ClearBoth), Fl(70))
	tu.AssertEqual(t, space.ClearanceOffset(style.ClearNone), Fl(0))

	tu.AssertEqual(t, space.HasFloatsAfter(40), true)
	tu.AssertEqual(t, space.HasFloatsAfter(70), false)
}

func TestExclusionSpaceClone(t *testing.T) {
	var space ExclusionSpace
	space.AddFloat(1, RootBfc(), FloatSize{InlineSize: 100, BlockSize: 50, Type: style.FloatLeft})

	clone := space.Clone()
	clone.AddFloat(2, RootBfc(), FloatSize{InlineSize: 100, BlockSize: 80, Type: style.FloatLeft})

	tu.AssertEqual(t, space.LastFloatBottom(), Fl(50))
	tu.AssertEqual(t, clone.LastFloatBottom(), Fl(80))
}
