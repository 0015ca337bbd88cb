package layout

import (
	"github.com/benoitkugler/layoutng/style"
	"github.com/benoitkugler/layoutng/utils"
)

const (
	// auto-width floats shrink to half the available size, floored
	floatMinInline      = 100
	floatFallbackInline = 400
)

// layoutContainedChildren lays out the children of an independent
// formatting context root (a float or an absolutely positioned box)
// against the given content inline size, and returns the content block
// size they span.
func (t *Tree) layoutContainedChildren(node NodeKey, contentInline Fl, measurementOnly bool) Fl {
	childSpace := ConstraintSpace{
		AvailableInlineSize:    Definite(utils.MaxF(0, contentInline)),
		AvailableBlockSize:     Indefinite,
		BfcOffset:              RootBfc(),
		IsNewFormattingContext: true,
		IsForMeasurementOnly:   measurementOnly,
	}
	state := newChildrenLayoutState(childSpace.BfcOffset)

	var prev NodeKey
	hasPrev := false
	for _, child := range t.flowChildren(node) {
		switch {
		case t.IsText(child):
			t.layoutTextChild(node, child, prev, hasPrev, &childSpace, &state, false)
		case t.Style(child).Display == style.DisplayNone:
			t.insertResult(child, &childSpace, passthroughResult(&childSpace))
		default:
			t.layoutBlockChildAndUpdateState(child, &childSpace, &state, false)
		}
		prev, hasPrev = child, true
	}

	content := utils.MaxF(childSpace.BfcOffset.BlockOr(0), childSpace.ExclusionSpace.LastFloatBottom())
	return utils.MaxF(0, content)
}

// layoutFloat sizes a float as an independent formatting context root,
// places it in the inline band left free by the floats already
// registered, and threads the updated exclusion space back out so the
// siblings flow around it.
func (t *Tree) layoutFloat(node NodeKey, st *style.ComputedStyle, space ConstraintSpace) Result {
	containing := space.AvailableInlineSize.Resolve(t.icbWidth)
	sides := style.ComputeBoxSides(st, containing)

	var contentInline Fl
	if st.Width.IsAuto() {
		contentInline = utils.MaxF(floatMinInline, space.AvailableInlineSize.Resolve(floatFallbackInline)/2)
	} else {
		w := st.Width.Resolve(containing)
		if st.BoxSizing == style.BorderBox {
			w -= sides.HorizontalEdges()
		}
		contentInline = utils.MaxF(0, w)
	}
	borderBoxInline := applyWidthConstraints(st, contentInline+sides.HorizontalEdges())
	contentInline = utils.MaxF(0, borderBoxInline-sides.HorizontalEdges())

	// inline position: take the band left free by the floats already
	// placed at the candidate block offset
	candidateBlock := space.BfcOffset.BlockOr(0)
	leftEdge, available := space.ExclusionSpace.AvailableInlineSizeAtOffset(
		candidateBlock, space.BfcOffset.Inline+containing)
	var inlineOffset Fl
	if st.Float == style.FloatRight {
		inlineOffset = leftEdge + available - utils.Round(borderBoxInline) - sides.MarginRight
	} else {
		inlineOffset = utils.MaxF(space.BfcOffset.Inline, leftEdge) + sides.MarginLeft
	}
	offset := BfcOffset{Inline: inlineOffset, Block: space.BfcOffset.Block}

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

	// the exclusion covers the margin box, rounded to whole px
	exclusion := space.ExclusionSpace.Clone()
	exclusion.AddFloat(node, offset, FloatSize{
		InlineSize: utils.Round(borderBoxInline + sides.MarginLeft + sides.MarginRight),
		BlockSize:  utils.Round(blockSize + sides.MarginTop + sides.MarginBottom),
		Type:       st.Float,
	})

	return Result{
		InlineSize:     borderBoxInline,
		BlockSize:      blockSize,
		BfcOffset:      offset,
		ExclusionSpace: exclusion,
	}
}
