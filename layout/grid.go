package layout

import (
	"strings"

	"github.com/benoitkugler/layoutng/grid"
	"github.com/benoitkugler/layoutng/style"
	"github.com/benoitkugler/layoutng/utils"
)

// track sizing fallback when the container has no height at all
const gridFallbackHeight = 10000

// parseGridTracks returns the track list for one axis, falling back to
// a single full size column (or auto row) when no template is set.
func parseGridTracks(template string, gap Fl, isColumn bool) grid.AxisTracks {
	if strings.TrimSpace(template) == "" {
		size := grid.Breadth(grid.Auto())
		if isColumn {
			size = grid.Breadth(grid.Flex(1))
		}
		return grid.NewAxisTracks([]grid.Track{{Size: size}}, gap)
	}
	return grid.ParseTemplate(template, gap)
}

// gridItemContentWidth estimates the max-content inline size of an
// item: the widest text run or descendant estimate, plus the item's own
// horizontal edges.
func (t *Tree) gridItemContentWidth(node NodeKey) Fl {
	st := t.Style(node)
	var content Fl
	for _, child := range t.flowChildren(node) {
		if run, ok := t.TextNodes[child]; ok {
			if strings.TrimSpace(run) == "" {
				continue
			}
			content = utils.MaxF(content, t.measurer.Measure(run, st).Width)
		} else if t.Style(child).Display != style.DisplayNone {
			content = utils.MaxF(content, t.gridItemContentWidth(child))
		}
	}
	sides := style.ComputeBoxSides(st, 0)
	return content + sides.HorizontalEdges()
}

// prepareGridItems collects the in-flow children with their measured
// content sizes and explicit line placements.
func (t *Tree) prepareGridItems(node NodeKey) []grid.Item {
	st := t.Style(node)
	var items []grid.Item
	for _, child := range t.flowChildren(node) {
		if run, ok := t.TextNodes[child]; ok {
			if strings.TrimSpace(run) == "" {
				continue
			}
			metrics := t.measurer.Measure(run, st)
			items = append(items, grid.Item{
				Node:             int(child),
				MinContentWidth:  metrics.Width,
				MaxContentWidth:  metrics.Width,
				MinContentHeight: metrics.Height,
				MaxContentHeight: metrics.Height,
			})
			continue
		}
		childStyle := t.Style(child)
		if childStyle.Display == style.DisplayNone {
			continue
		}
		width := t.gridItemContentWidth(child)
		height := t.measureBox(child, Indefinite, Indefinite).Block
		items = append(items, grid.Item{
			Node:             int(child),
			RowStart:         childStyle.GridRowStart,
			RowEnd:           childStyle.GridRowEnd,
			ColStart:         childStyle.GridColumnStart,
			ColEnd:           childStyle.GridColumnEnd,
			MinContentWidth:  width,
			MaxContentWidth:  width,
			MinContentHeight: height,
			MaxContentHeight: height,
		})
	}
	return items
}

// placeGridItems lays every item out inside its placed area and stores
// the results, stretching auto sized items to fill the area.
func (t *Tree) placeGridItems(node NodeKey, bfcOffset BfcOffset, sides style.BoxSides, gridResult grid.LayoutResult, space *ConstraintSpace) {
	baseInline := bfcOffset.Inline + sides.PaddingLeft + sides.BorderLeft
	baseBlock := bfcOffset.BlockOr(0) + sides.PaddingTop + sides.BorderTop

	for _, placed := range gridResult.Items {
		key := NodeKey(placed.Node)
		offset := BfcOffset{Inline: baseInline + placed.X, Block: flPtr(baseBlock + placed.Y)}
		childSpace := ConstraintSpace{
			AvailableInlineSize:           Definite(placed.Width),
			AvailableBlockSize:            Definite(placed.Height),
			BfcOffset:                     offset,
			IsNewFormattingContext:        true,
			PercentageResolutionBlockSize: space.PercentageResolutionBlockSize,
			MarginsAlreadyApplied:         true,
		}

		if t.IsText(key) {
			state := newChildrenLayoutState(offset)
			t.layoutTextChild(node, key, 0, false, &childSpace, &state, false)
			continue
		}

		childStyle := t.Style(key)
		childResult := t.layoutBlock(key, childSpace)
		if childStyle.Width.IsAuto() {
			childResult.InlineSize = placed.Width
		}
		if childStyle.Height.IsAuto() {
			childResult.BlockSize = placed.Height
		}
		childResult.BfcOffset = offset
		childResult.EndMarginStrut = MarginStrut{}
		t.insertResult(key, &childSpace, childResult)
	}
}

// layoutGridContainer lays out a grid container with the grid
// sub-library: columns are sized first from content width estimates,
// then items are remeasured at their placed widths so the rows are
// sized from real heights, and finally every item is laid out in its
// area.
func (t *Tree) layoutGridContainer(node NodeKey, st *style.ComputedStyle, space ConstraintSpace) Result {
	containing := space.AvailableInlineSize.Resolve(t.icbWidth)
	sides := style.ComputeBoxSides(st, containing)
	bfcOffset := resolveBfcOffset(&space, st, sides, true)

	containerInline := t.computeInlineSize(node, st, sides, &space)

	availableHeight := space.AvailableBlockSize.Resolve(gridFallbackHeight)
	hasExplicitHeight := false
	if h, ok := usedHeight(st, &space); ok {
		if st.BoxSizing == style.BorderBox {
			h -= sides.VerticalEdges()
		}
		availableHeight = utils.MaxF(0, h)
		hasExplicitHeight = true
	} else if mh, ok := pxOr(st.MinHeight); ok && mh > 0 {
		availableHeight = utils.MaxF(0, mh-sides.VerticalEdges())
		hasExplicitHeight = true
	}

	items := t.prepareGridItems(node)
	inputs := grid.ContainerInputs{
		RowTracks:         parseGridTracks(st.GridTemplateRows, st.RowGap, false),
		ColTracks:         parseGridTracks(st.GridTemplateColumns, st.ColumnGap, true),
		ColumnFlow:        st.GridAutoFlowColumn,
		AvailableWidth:    containerInline,
		AvailableHeight:   availableHeight,
		HasExplicitHeight: hasExplicitHeight,
	}
	gridResult := grid.Layout(items, inputs)

	if !space.IsForMeasurementOnly {
		// rows depend on the heights at the placed column widths
		for i := range items {
			key := NodeKey(gridResult.Items[i].Node)
			if t.IsText(key) {
				continue
			}
			height := t.MeasureBlockAtInline(key, gridResult.Items[i].Width)
			items[i].MinContentHeight = height
			items[i].MaxContentHeight = height
		}
		gridResult = grid.Layout(items, inputs)

		t.placeGridItems(node, bfcOffset, sides, gridResult, &space)
	}

	var blockSize Fl
	if h, ok := usedHeight(st, &space); ok {
		if st.BoxSizing == style.ContentBox {
			h += sides.VerticalEdges()
		}
		blockSize = h
	} else {
		blockSize = gridResult.TotalHeight + sides.VerticalEdges()
	}
	blockSize = utils.MaxF(0, applyHeightConstraints(st, blockSize))

	return Result{
		InlineSize:     utils.MaxF(0, containerInline+sides.HorizontalEdges()),
		BlockSize:      blockSize,
		BfcOffset:      bfcOffset,
		ExclusionSpace: space.ExclusionSpace.Clone(),
	}
}
