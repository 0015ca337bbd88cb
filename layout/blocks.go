package layout

import (
	"github.com/benoitkugler/layoutng/style"
	"github.com/benoitkugler/layoutng/utils"
)

const (
	// block sizes below this threshold count as zero for collapsing
	sizeEpsilon = 0.01

	// height given to a block whose children span no height but which
	// contains rendered text
	emptyTextLineHeight = 18
)

// blockLayoutParams gathers the per-box values shared by the block
// children pipeline.
type blockLayoutParams struct {
	node  NodeKey
	style *style.ComputedStyle
	sides style.BoxSides
	space *ConstraintSpace

	bfcOffset      BfcOffset
	establishesBFC bool
	// canCollapse is true when margins may collapse through the top
	// edge with the first child (no top padding or border, same BFC).
	canCollapse   bool
	contentInline Fl
}

// childrenLayoutState is the running state of one children iteration.
type childrenLayoutState struct {
	resolvedBfcOffset       BfcOffset
	firstInflowChildSeen    bool
	lastChildEndMarginStrut MarginStrut
	hasTextContent          bool
}

func newChildrenLayoutState(bfcOffset BfcOffset) childrenLayoutState {
	return childrenLayoutState{resolvedBfcOffset: bfcOffset}
}

// flowChildren returns the children taking part in the node's flow,
// with display:contents nodes replaced by their own children.
func (t *Tree) flowChildren(node NodeKey) []NodeKey {
	children := t.Children[node]
	out := make([]NodeKey, 0, len(children))
	for _, c := range children {
		if !t.IsText(c) && t.Style(c).Display == style.DisplayContents {
			out = append(out, t.flowChildren(c)...)
			continue
		}
		out = append(out, c)
	}
	return out
}

func (t *Tree) layoutBlockFlow(node NodeKey, st *style.ComputedStyle, space ConstraintSpace) Result {
	containing := space.AvailableInlineSize.Resolve(t.icbWidth)
	sides := style.ComputeBoxSides(st, containing)
	establishes := establishesBFC(st)
	bfcOffset := resolveBfcOffset(&space, st, sides, establishes)
	canCollapse := sides.PaddingTop == 0 && sides.BorderTop == 0 && !establishes

	params := blockLayoutParams{
		node:           node,
		style:          st,
		sides:          sides,
		space:          &space,
		bfcOffset:      bfcOffset,
		establishesBFC: establishes,
		canCollapse:    canCollapse,
		contentInline:  t.computeInlineSize(node, st, sides, &space),
	}
	return t.layoutBlockChildren(params)
}

// layoutBlockFirstPass handles the case where the box's own block
// offset is not known yet: run the layout against an estimated offset
// and flag the result so the caller redoes it once the real position
// is resolved.
func (t *Tree) layoutBlockFirstPass(node NodeKey, st *style.ComputedStyle, space ConstraintSpace) Result {
	containing := space.AvailableInlineSize.Resolve(t.icbWidth)
	sides := style.ComputeBoxSides(st, containing)
	estimated := space.BfcOffset.BlockOr(0) + sides.MarginTop
	space.BfcOffset.Block = flPtr(estimated)

	result := t.layoutBlockFlow(node, st, space)
	result.NeedsRelayout = true
	return result
}

func (t *Tree) layoutBlockChildren(params blockLayoutParams) Result {
	space := params.space
	initialStrut := computeInitialMarginStrut(space, params.sides, params.establishesBFC, params.canCollapse)
	childBase := computeChildBaseBfcOffset(space, params.bfcOffset, params.sides, params.establishesBFC, params.canCollapse)
	childSpace := t.createBlockChildSpace(params, childBase, initialStrut)
	state := newChildrenLayoutState(params.bfcOffset)

	t.processChildrenLayout(params, &childSpace, &state)

	blockSize := t.computeBlockSizeFromChildren(params, &state, &childSpace)
	inlineSize := params.contentInline + params.sides.HorizontalEdges()
	endStrut := computeEndMarginStrut(space, params.sides, &state, blockSize, params.establishesBFC, params.canCollapse)
	finalOffset := resolveFinalBfcOffset(params, &state, blockSize)

	// floats inside a new formatting context do not leak out
	exclusion := childSpace.ExclusionSpace
	if params.establishesBFC {
		exclusion = space.ExclusionSpace.Clone()
	}

	return Result{
		InlineSize:     utils.MaxF(0, inlineSize),
		BlockSize:      utils.MaxF(0, blockSize),
		BfcOffset:      finalOffset,
		ExclusionSpace: exclusion,
		EndMarginStrut: endStrut,
	}
}

func (t *Tree) createBlockChildSpace(params blockLayoutParams, base BfcOffset, strut MarginStrut) ConstraintSpace {
	space := params.space

	exclusion := space.ExclusionSpace.Clone()
	if params.establishesBFC {
		exclusion = ExclusionSpace{}
	}

	// an explicit height becomes the percentage basis for the children
	percentBasis := space.PercentageResolutionBlockSize
	if h, ok := usedHeight(params.style, space); ok {
		content := h
		if params.style.BoxSizing == style.BorderBox {
			content = utils.MaxF(0, h-params.sides.VerticalEdges())
		}
		percentBasis = flPtr(content)
	}

	return ConstraintSpace{
		AvailableInlineSize:           Definite(params.contentInline),
		AvailableBlockSize:            space.AvailableBlockSize,
		BfcOffset:                     base,
		ExclusionSpace:                exclusion,
		MarginStrut:                   strut,
		IsNewFormattingContext:        params.establishesBFC,
		PercentageResolutionBlockSize: percentBasis,
		FragmentainerBlockSize:        space.FragmentainerBlockSize,
		FragmentainerOffset:           space.FragmentainerOffset,
		IsForMeasurementOnly:          space.IsForMeasurementOnly,
	}
}

func (t *Tree) processChildrenLayout(params blockLayoutParams, childSpace *ConstraintSpace, state *childrenLayoutState) {
	var prev NodeKey
	hasPrev := false
	for _, child := range t.flowChildren(params.node) {
		switch {
		case t.IsText(child):
			t.layoutTextChild(params.node, child, prev, hasPrev, childSpace, state, params.canCollapse)
		case t.Style(child).Display == style.DisplayNone:
			t.insertResult(child, childSpace, passthroughResult(childSpace))
		default:
			t.layoutBlockChildAndUpdateState(child, childSpace, state, params.canCollapse)
		}
		prev, hasPrev = child, true
	}
}

// layoutBlockChildAndUpdateState lays out one element child and folds
// its result into the running flow: exclusion space is threaded to the
// next sibling, the block cursor advances past non self-collapsing
// boxes, and the exit margin strut becomes the next sibling's input.
func (t *Tree) layoutBlockChildAndUpdateState(child NodeKey, childSpace *ConstraintSpace, state *childrenLayoutState, canCollapse bool) {
	childStyle := t.Style(child)
	childResult := t.layoutBlock(child, *childSpace)
	childSpace.ExclusionSpace = childResult.ExclusionSpace.Clone()
	t.insertResult(child, childSpace, childResult)

	outOfFlow := childStyle.Float != style.FloatNone ||
		childStyle.Position == style.PositionAbsolute || childStyle.Position == style.PositionFixed
	if outOfFlow {
		return
	}

	// clearance breaks the collapse between this child and the parent
	hasClearance := childStyle.Clear != style.ClearNone && childSpace.ExclusionSpace.HasFloats()

	if childResult.BfcOffset.IsResolved() {
		if !hasClearance {
			resolveParentOffsetIfNeeded(state, childResult.BfcOffset, canCollapse)
		}
		state.firstInflowChildSeen = true

		childStart := *childResult.BfcOffset.Block
		childBorderBoxEnd := childStart + utils.Round(childResult.BlockSize)
		selfCollapsing := utils.Abs(childResult.BlockSize) < sizeEpsilon &&
			childResult.EndMarginStrut.positive > 0
		if !(selfCollapsing && canCollapse) {
			childEnd := childBorderBoxEnd
			if childResult.EndMarginStrut.IsEmpty() {
				// a child establishing its own context hands no margins
				// back, so its bottom margin advances the flow here
				childSides := style.ComputeBoxSides(childStyle, childSpace.AvailableInlineSize.Resolve(t.icbWidth))
				childEnd += childSides.MarginBottom
			}
			childSpace.BfcOffset.Block = flPtr(childEnd)
		}
	}

	childSpace.MarginStrut = childResult.EndMarginStrut
	state.lastChildEndMarginStrut = childResult.EndMarginStrut
}

func (t *Tree) computeBlockSizeFromChildren(params blockLayoutParams, state *childrenLayoutState, childSpace *ConstraintSpace) Fl {
	st, sides := params.style, params.sides

	if h, ok := usedHeight(st, params.space); ok {
		if st.BoxSizing == style.ContentBox {
			h += sides.VerticalEdges()
		}
		return utils.MaxF(0, applyHeightConstraints(st, h))
	}

	if h, ok := t.formControlIntrinsicHeight(params.node); ok {
		return utils.MaxF(0, applyHeightConstraints(st, h+sides.VerticalEdges()))
	}

	var startOffset Fl
	switch {
	case params.establishesBFC:
		startOffset = 0
	case params.canCollapse:
		startOffset = state.resolvedBfcOffset.BlockOr(0)
	default:
		startOffset = params.bfcOffset.BlockOr(0) + sides.PaddingTop + sides.BorderTop
	}
	end := utils.MaxF(childSpace.BfcOffset.BlockOr(startOffset), childSpace.ExclusionSpace.LastFloatBottom())
	content := utils.MaxF(0, end-startOffset)
	if content == 0 && state.hasTextContent {
		content = emptyTextLineHeight
	}

	// bottom margins of the last child stay inside the box when padding
	// or border blocks the collapse
	canCollapseBottom := sides.PaddingBottom == 0 && sides.BorderBottom == 0 && !params.establishesBFC
	var bottomMargins Fl
	if !canCollapseBottom {
		bottomMargins = state.lastChildEndMarginStrut.Collapse()
	}

	total := content + bottomMargins + sides.VerticalEdges()
	return utils.MaxF(0, applyHeightConstraints(st, total))
}

// resolveFinalBfcOffset picks the position reported to the parent: a
// self-collapsing box collapses its own margins with the incoming
// strut, a box collapsing with its children sits at the first child's
// pinned offset, everything else keeps the resolved position.
func resolveFinalBfcOffset(params blockLayoutParams, state *childrenLayoutState, blockSize Fl) BfcOffset {
	space := params.space

	if utils.Abs(blockSize) < sizeEpsilon && !state.firstInflowChildSeen && params.canCollapse {
		marginTop := params.sides.MarginTop
		if space.MarginsAlreadyApplied {
			marginTop = 0
		}
		strut := space.MarginStrut
		strut.Append(marginTop)
		strut.Append(params.sides.MarginBottom)
		block := space.BfcOffset.BlockOr(0) + strut.Collapse()
		return BfcOffset{Inline: params.bfcOffset.Inline, Block: flPtr(block)}
	}

	if params.canCollapse && state.firstInflowChildSeen {
		return state.resolvedBfcOffset
	}
	return params.bfcOffset
}
