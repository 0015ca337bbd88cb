package layout

import (
	"github.com/benoitkugler/layoutng/style"
	"github.com/benoitkugler/layoutng/utils"
)

// auto-width fallback for absolutely positioned boxes, in px
const absoluteFallbackInline = 200

// layoutAbsolute positions an absolutely or fixed positioned box. The
// containing block is the viewport origin for fixed boxes, and the
// current formatting context position otherwise: the caller is expected
// to have set the space's offset to the relevant ancestor. The box does
// not contribute to the parent's exclusion space.
func (t *Tree) layoutAbsolute(node NodeKey, st *style.ComputedStyle, space ConstraintSpace) Result {
	containing := space.AvailableInlineSize.Resolve(t.icbWidth)
	sides := style.ComputeBoxSides(st, containing)

	var cbInline, cbBlock Fl
	if st.Position != style.PositionFixed {
		cbInline = space.BfcOffset.Inline
		cbBlock = space.BfcOffset.BlockOr(0)
	}

	var borderBoxInline Fl
	if st.Width.IsAuto() {
		borderBoxInline = absoluteFallbackInline + sides.HorizontalEdges()
	} else {
		w := st.Width.Resolve(containing)
		if st.BoxSizing == style.ContentBox {
			w += sides.HorizontalEdges()
		}
		borderBoxInline = w
	}
	contentInline := utils.MaxF(0, borderBoxInline-sides.HorizontalEdges())

	var blockSize Fl
	if h, ok := usedHeight(st, &space); ok {
		if st.BoxSizing == style.ContentBox {
			h += sides.VerticalEdges()
		}
		blockSize = h
	} else {
		blockSize = t.layoutContainedChildren(node, contentInline, space.IsForMeasurementOnly) + sides.VerticalEdges()
	}
	blockSize = utils.MaxF(0, applyHeightConstraints(st, blockSize))

	cbWidth := t.icbWidth
	if space.AvailableInlineSize.IsDefinite() {
		cbWidth = space.AvailableInlineSize.Value
	}
	cbHeight := t.icbHeight
	if space.PercentageResolutionBlockSize != nil {
		cbHeight = *space.PercentageResolutionBlockSize
	}
	var left, top Fl
	if !st.Left.IsAuto() {
		left = st.Left.Resolve(cbWidth)
	}
	if !st.Top.IsAuto() {
		top = st.Top.Resolve(cbHeight)
	}
	// TODO: honor right and bottom for boxes that set them without left/top.

	return Result{
		InlineSize: borderBoxInline,
		BlockSize:  blockSize,
		BfcOffset: BfcOffset{
			Inline: cbInline + left + sides.MarginLeft,
			Block:  flPtr(cbBlock + top + sides.MarginTop),
		},
		ExclusionSpace: space.ExclusionSpace.Clone(),
	}
}
