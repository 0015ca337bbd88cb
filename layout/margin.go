package layout

import (
	"github.com/benoitkugler/layoutng/style"
	"github.com/benoitkugler/layoutng/utils"
)

// resolveBfcOffset computes the position of a box inside its formatting
// context, collapsing the incoming margin strut when allowed:
//   - a box establishing a new context resolves the strut immediately
//     and never collapses further;
//   - clearance resolves the strut and takes the max against the floor
//     required by the cleared floats;
//   - a direct child of a fresh context with no pending margins gets
//     its margin-top as plain spacing;
//   - otherwise the own margin-top joins the strut and the collapsed
//     value moves the box.
func resolveBfcOffset(space *ConstraintSpace, st *style.ComputedStyle, sides style.BoxSides, establishes bool) BfcOffset {
	marginTop, marginLeft := sides.MarginTop, sides.MarginLeft
	if space.MarginsAlreadyApplied {
		marginTop, marginLeft = 0, 0
	}
	inline := space.BfcOffset.Inline + marginLeft

	if establishes {
		block := space.BfcOffset.BlockOr(0) + space.MarginStrut.Collapse() + marginTop
		return BfcOffset{Inline: inline, Block: flPtr(block)}
	}

	if clearanceFloor := space.ExclusionSpace.ClearanceOffset(st.Clear); clearanceFloor > 0 {
		base := space.BfcOffset.BlockOr(0) + space.MarginStrut.Collapse()
		block := utils.MaxF(base+marginTop, clearanceFloor)
		return BfcOffset{Inline: inline, Block: flPtr(block)}
	}

	if space.IsNewFormattingContext && space.MarginStrut.IsEmpty() {
		out := BfcOffset{Inline: inline, Block: space.BfcOffset.Block}
		if out.Block != nil {
			out.Block = flPtr(*out.Block + marginTop)
		}
		return out
	}

	strut := space.MarginStrut
	if !space.MarginsAlreadyApplied {
		strut.Append(sides.MarginTop)
	}
	out := BfcOffset{Inline: inline, Block: space.BfcOffset.Block}
	if out.Block != nil {
		out.Block = flPtr(*out.Block + strut.Collapse())
	}
	return out
}

// computeInitialMarginStrut returns the strut handed to the first
// child: the own margin-top when margins may collapse through the top
// edge, empty otherwise.
func computeInitialMarginStrut(space *ConstraintSpace, sides style.BoxSides, establishes, canCollapse bool) MarginStrut {
	var strut MarginStrut
	if establishes || !canCollapse {
		return strut
	}
	if !space.MarginsAlreadyApplied {
		strut.Append(sides.MarginTop)
	}
	return strut
}

// computeChildBaseBfcOffset returns the position children start flowing
// from. When margins collapse through the top edge, the own margin-top
// is backed out since the first child re-applies it through the strut.
func computeChildBaseBfcOffset(space *ConstraintSpace, bfcOffset BfcOffset, sides style.BoxSides, establishes, canCollapse bool) BfcOffset {
	if establishes {
		return RootBfc()
	}
	if canCollapse {
		marginTop := sides.MarginTop
		if space.MarginsAlreadyApplied {
			marginTop = 0
		}
		out := BfcOffset{Inline: bfcOffset.Inline, Block: bfcOffset.Block}
		if out.Block != nil {
			out.Block = flPtr(*out.Block - marginTop)
		}
		return out
	}
	out := BfcOffset{
		Inline: bfcOffset.Inline + sides.PaddingLeft + sides.BorderLeft,
		Block:  bfcOffset.Block,
	}
	if out.Block != nil {
		out.Block = flPtr(*out.Block + sides.PaddingTop + sides.BorderTop)
	}
	return out
}

// computeEndMarginStrut builds the margins exiting the box. A
// self-collapsing box forwards the incoming strut plus both of its own
// margins, so the ancestor contribution is not lost.
func computeEndMarginStrut(space *ConstraintSpace, sides style.BoxSides, state *childrenLayoutState, blockSize Fl, establishes, canCollapseTop bool) MarginStrut {
	canCollapseBottom := sides.PaddingBottom == 0 && sides.BorderBottom == 0 && !establishes
	marginTop := sides.MarginTop
	if space.MarginsAlreadyApplied {
		marginTop = 0
	}

	selfCollapsing := utils.Abs(blockSize) < sizeEpsilon && !state.firstInflowChildSeen &&
		canCollapseTop && canCollapseBottom
	if selfCollapsing {
		strut := space.MarginStrut
		strut.Append(marginTop)
		strut.Append(sides.MarginBottom)
		return strut
	}

	if state.firstInflowChildSeen && canCollapseBottom {
		strut := state.lastChildEndMarginStrut
		strut.Append(sides.MarginBottom)
		return strut
	}

	var strut MarginStrut
	strut.Append(sides.MarginBottom)
	return strut
}

// resolveParentOffsetIfNeeded pins the parent position to its first
// in-flow child when margins collapse through the parent's top edge.
func resolveParentOffsetIfNeeded(state *childrenLayoutState, childOffset BfcOffset, canCollapse bool) {
	if !state.firstInflowChildSeen && canCollapse {
		state.resolvedBfcOffset.Block = childOffset.Block
	}
}
