package layout

import (
	"strings"

	"github.com/benoitkugler/layoutng/style"
	"github.com/benoitkugler/layoutng/utils"
)

const (
	// stand-in for an unconstrained max main size
	flexMaxSize = 1e9

	// saturation detection threshold for the distribution loops
	floatEpsilon = 1.1920929e-7
)

// flexItem is one in-flow child of a flex container with its measured
// inputs, all main/cross sizes in content box px.
type flexItem struct {
	node   NodeKey
	isText bool

	basis   Fl
	grow    Fl
	shrink  Fl
	minMain Fl
	maxMain Fl

	mainPaddingBorder  Fl
	crossPaddingBorder Fl

	marginMainStart  Fl
	marginMainEnd    Fl
	marginCrossStart Fl
	marginCrossEnd   Fl

	crossSize        Fl
	minCross         Fl
	maxCross         Fl
	hasExplicitCross bool
	align            style.Align
}

func flexClamp(v, min, max Fl) Fl {
	if min > max {
		return (min + max) / 2
	}
	return utils.Clamp(v, min, max)
}

// flexMeasureInline returns the available inline size for the intrinsic
// measurement of one item, definite when the item fixes its own main
// size through width or flex-basis.
func flexMeasureInline(st *style.ComputedStyle, sides style.BoxSides, containerInline Fl) (AvailableSize, bool) {
	switch {
	case !st.Width.IsAuto():
		w := st.Width.Resolve(containerInline)
		if st.BoxSizing == style.ContentBox {
			w += sides.HorizontalEdges()
		}
		return Definite(w), true
	case !st.FlexBasis.IsAuto():
		b := st.FlexBasis.Resolve(containerInline)
		if st.BoxSizing == style.ContentBox {
			b += sides.HorizontalEdges()
		}
		return Definite(b), true
	default:
		return MaxContent, false
	}
}

func (t *Tree) collectFlexItems(node NodeKey, st *style.ComputedStyle, containerInline Fl) (items []flexItem, abspos []NodeKey) {
	for _, child := range t.flowChildren(node) {
		if content, ok := t.TextNodes[child]; ok {
			if strings.TrimSpace(content) == "" {
				continue
			}
			metrics := t.measurer.Measure(content, st)
			items = append(items, flexItem{
				node: child, isText: true,
				shrink:    1,
				maxMain:   flexMaxSize,
				crossSize: metrics.Height,
				maxCross:  flexMaxSize,
				align:     style.AlignFlexStart,
			})
			continue
		}

		childStyle := t.Style(child)
		if childStyle.Display == style.DisplayNone {
			continue
		}
		if childStyle.Position == style.PositionAbsolute || childStyle.Position == style.PositionFixed {
			abspos = append(abspos, child)
			continue
		}

		childSides := style.ComputeBoxSides(childStyle, containerInline)
		mainPB := childSides.HorizontalEdges()
		crossPB := childSides.VerticalEdges()

		avail, forced := flexMeasureInline(childStyle, childSides, containerInline)
		childResult := t.layoutBlock(child, ConstraintSpace{
			AvailableInlineSize:    avail,
			AvailableBlockSize:     Indefinite,
			BfcOffset:              RootBfc(),
			IsNewFormattingContext: true,
			IsForMeasurementOnly:   true,
			IsInlineSizeForced:     forced,
		})

		var basis Fl
		switch {
		case !childStyle.FlexBasis.IsAuto():
			basis = childStyle.FlexBasis.Resolve(containerInline)
			if childStyle.BoxSizing == style.BorderBox {
				basis -= mainPB
			}
		case !childStyle.Width.IsAuto():
			basis = childStyle.Width.Resolve(containerInline)
			if childStyle.BoxSizing == style.BorderBox {
				basis -= mainPB
			}
		default:
			basis = childResult.InlineSize - mainPB
		}

		item := flexItem{
			node:               child,
			basis:              utils.MaxF(0, basis),
			grow:               childStyle.FlexGrow,
			shrink:             childStyle.FlexShrink,
			minMain:            0,
			maxMain:            flexMaxSize,
			mainPaddingBorder:  mainPB,
			crossPaddingBorder: crossPB,
			marginMainStart:    childSides.MarginLeft,
			marginMainEnd:      childSides.MarginRight,
			marginCrossStart:   childSides.MarginTop,
			marginCrossEnd:     childSides.MarginBottom,
			crossSize:          utils.MaxF(0, childResult.BlockSize-crossPB),
			minCross:           0,
			maxCross:           flexMaxSize,
			hasExplicitCross:   !childStyle.Height.IsAuto(),
		}
		if v, ok := pxOr(childStyle.MinWidth); ok {
			item.minMain = v
		}
		if v, ok := pxOr(childStyle.MaxWidth); ok {
			item.maxMain = v
		}
		if v, ok := pxOr(childStyle.MinHeight); ok {
			item.minCross = v
		}
		if v, ok := pxOr(childStyle.MaxHeight); ok {
			item.maxCross = v
		}
		item.align = childStyle.AlignSelf
		if item.align == style.AlignAuto {
			item.align = st.AlignItems
		}
		items = append(items, item)
	}
	return items, abspos
}

func flexOuterSize(it flexItem, mainSize Fl) Fl {
	return mainSize + it.mainPaddingBorder +
		utils.MaxF(0, it.marginMainStart) + utils.MaxF(0, it.marginMainEnd)
}

// flexMainSizes runs the flexible sizing algorithm: hypothetical sizes
// are the clamped bases, then positive free space is distributed by
// grow factors and negative free space by size-weighted shrink factors.
func flexMainSizes(items []flexItem, containerMain, mainGap Fl) []Fl {
	sizes := make([]Fl, len(items))
	var sumOuter Fl
	for i, it := range items {
		sizes[i] = flexClamp(it.basis, it.minMain, it.maxMain)
		sumOuter += flexOuterSize(it, sizes[i])
	}
	var gaps Fl
	if len(items) > 1 {
		gaps = Fl(len(items)-1) * utils.MaxF(0, mainGap)
	}
	free := containerMain - sumOuter - gaps
	if free > 0 {
		distributeGrow(free, items, sizes)
	} else if free < 0 {
		distributeShrink(free, items, sizes)
	}
	return sizes
}

func distributeGrow(freeSpace Fl, items []flexItem, sizes []Fl) {
	remaining := freeSpace
	saturated := make([]bool, len(items))
	for round := 0; round < len(items); round++ {
		var sumGrow Fl
		for i, it := range items {
			if !saturated[i] {
				sumGrow += utils.MaxF(0, it.grow)
			}
		}
		if sumGrow <= 0 || remaining <= 0 {
			break
		}
		unit := remaining / sumGrow
		anySaturated := false
		var applied Fl
		for i, it := range items {
			if saturated[i] {
				continue
			}
			grown := sizes[i] + utils.MaxF(0, it.grow)*unit
			clamped := flexClamp(grown, it.minMain, it.maxMain)
			applied += clamped - sizes[i]
			sizes[i] = clamped
			if utils.Abs(clamped-it.maxMain) < floatEpsilon {
				saturated[i] = true
				anySaturated = true
			}
		}
		remaining -= applied
		if !anySaturated {
			break
		}
	}
	// rounding drift always lands on the last eligible item, so two
	// runs of the same input stay pixel identical
	if remaining > 0 && remaining < 1 {
		for i := len(items) - 1; i >= 0; i-- {
			if !saturated[i] && items[i].grow > 0 {
				sizes[i] = flexClamp(sizes[i]+remaining, items[i].minMain, items[i].maxMain)
				break
			}
		}
	}
}

func distributeShrink(freeSpace Fl, items []flexItem, sizes []Fl) {
	remaining := -freeSpace
	frozen := make([]bool, len(items))
	for round := 0; round < len(items); round++ {
		var sumWeight Fl
		for i, it := range items {
			if !frozen[i] {
				sumWeight += utils.MaxF(0, sizes[i]) * utils.MaxF(0, it.shrink)
			}
		}
		if sumWeight <= 0 || remaining <= 0 {
			break
		}
		anyFroze := false
		var applied Fl
		for i, it := range items {
			if frozen[i] {
				continue
			}
			weight := utils.MaxF(0, sizes[i]) * utils.MaxF(0, it.shrink)
			shrunk := utils.MaxF(0, sizes[i]-remaining*(weight/sumWeight))
			clamped := flexClamp(shrunk, it.minMain, it.maxMain)
			applied += sizes[i] - clamped
			sizes[i] = clamped
			if utils.Abs(clamped-it.minMain) < floatEpsilon {
				frozen[i] = true
				anyFroze = true
			}
		}
		remaining -= applied
		if !anyFroze {
			break
		}
	}
	if remaining > 0 && remaining < 1 {
		for i := len(items) - 1; i >= 0; i-- {
			if !frozen[i] && items[i].shrink > 0 {
				sizes[i] = flexClamp(sizes[i]-remaining, items[i].minMain, items[i].maxMain)
				break
			}
		}
	}
}

// alignCrossItem resolves one item's used cross size and its offset
// from the line start. Items without an explicit cross size stretch by
// default.
func alignCrossItem(it flexItem, lineCross Fl) (size, offset Fl) {
	clamped := flexClamp(it.crossSize, it.minCross, it.maxCross)
	if it.hasExplicitCross {
		return clamped, 0
	}
	switch it.align {
	case style.AlignCenter:
		return clamped, utils.MaxF(0, (lineCross-clamped)/2)
	case style.AlignFlexEnd:
		return clamped, utils.MaxF(0, lineCross-clamped)
	case style.AlignFlexStart:
		return clamped, 0
	default:
		return flexClamp(lineCross, it.minCross, it.maxCross), 0
	}
}

// layoutFlexContainer lays out a single line, row direction flex
// container: items are sized by the flexible sizing algorithm, placed
// left to right on the quantized layout grid, and aligned on the cross
// axis against the container height (or the tallest item when auto).
func (t *Tree) layoutFlexContainer(node NodeKey, st *style.ComputedStyle, space ConstraintSpace) Result {
	containing := space.AvailableInlineSize.Resolve(t.icbWidth)
	sides := style.ComputeBoxSides(st, containing)
	bfcOffset := resolveBfcOffset(&space, st, sides, true)

	containerInline := t.computeInlineSize(node, st, sides, &space)

	hasExplicitCross := false
	var containerCross Fl
	if h, ok := usedHeight(st, &space); ok {
		if st.BoxSizing == style.BorderBox {
			h -= sides.VerticalEdges()
		}
		containerCross = utils.MaxF(0, h)
		hasExplicitCross = true
	} else if space.AvailableBlockSize.IsDefinite() {
		containerCross = utils.MaxF(0, space.AvailableBlockSize.Value-sides.VerticalEdges())
	}

	items, abspos := t.collectFlexItems(node, st, containerInline)
	mainGap := utils.MaxF(0, st.ColumnGap)
	mainSizes := flexMainSizes(items, containerInline, mainGap)

	// outer box starts, accumulated on the 1/64 px grid
	outerStarts := make([]Fl, len(items))
	cursor := Fl(0)
	for i := range items {
		outerStarts[i] = cursor
		cursor = Quantize(cursor + flexOuterSize(items[i], mainSizes[i]))
		if i < len(items)-1 {
			cursor = Quantize(cursor + mainGap)
		}
	}

	lineCross := containerCross
	if !hasExplicitCross {
		lineCross = 0
		for _, it := range items {
			lineCross = utils.MaxF(lineCross, flexClamp(it.crossSize, it.minCross, it.maxCross))
		}
	}

	contentBaseInline := bfcOffset.Inline + sides.PaddingLeft + sides.BorderLeft
	contentBaseBlock := bfcOffset.BlockOr(0) + sides.PaddingTop + sides.BorderTop

	var actualCross Fl
	for i, it := range items {
		crossSize, crossOffset := alignCrossItem(it, lineCross)
		finalInline := mainSizes[i] + it.mainPaddingBorder
		finalBlock := crossSize + it.crossPaddingBorder
		x := contentBaseInline + outerStarts[i] + it.marginMainStart
		y := contentBaseBlock + crossOffset + it.marginCrossStart

		childSpace := ConstraintSpace{
			AvailableInlineSize:           Definite(finalInline),
			AvailableBlockSize:            Definite(finalBlock),
			BfcOffset:                     BfcOffset{Inline: x, Block: flPtr(y)},
			PercentageResolutionBlockSize: flPtr(finalBlock),
			IsForMeasurementOnly:          space.IsForMeasurementOnly,
			MarginsAlreadyApplied:         true,
			IsInlineSizeForced:            true,
			IsBlockSizeForced:             true,
		}
		if it.isText {
			state := newChildrenLayoutState(childSpace.BfcOffset)
			t.layoutTextChild(node, it.node, 0, false, &childSpace, &state, false)
		} else {
			childResult := t.layoutBlock(it.node, childSpace)
			childResult.InlineSize = finalInline
			childResult.BlockSize = finalBlock
			childResult.BfcOffset = BfcOffset{Inline: x, Block: flPtr(y)}
			childResult.EndMarginStrut = MarginStrut{}
			t.insertResult(it.node, &childSpace, childResult)
		}
		actualCross = utils.MaxF(actualCross, crossOffset+crossSize+it.crossPaddingBorder)
	}

	finalCross := actualCross
	if hasExplicitCross {
		finalCross = containerCross
	}

	// absolutely positioned children resolve against the content box
	for _, child := range abspos {
		absSpace := ConstraintSpace{
			AvailableInlineSize:           Definite(containerInline),
			AvailableBlockSize:            Definite(finalCross),
			BfcOffset:                     BfcOffset{Inline: contentBaseInline, Block: flPtr(contentBaseBlock)},
			PercentageResolutionBlockSize: flPtr(finalCross),
			IsNewFormattingContext:        true,
			IsForMeasurementOnly:          space.IsForMeasurementOnly,
		}
		absResult := t.layoutBlock(child, absSpace)
		t.insertResult(child, &absSpace, absResult)
	}

	return Result{
		InlineSize:     utils.MaxF(0, containerInline+sides.HorizontalEdges()),
		BlockSize:      utils.MaxF(0, applyHeightConstraints(st, finalCross+sides.VerticalEdges())),
		BfcOffset:      bfcOffset,
		ExclusionSpace: space.ExclusionSpace.Clone(),
	}
}
