package grid

// Alignment of items inside their grid area. Only stretch is currently
// applied to geometry; the other values are accepted as configuration.
type Alignment uint8

const (
	AlignStretch Alignment = iota
	AlignStart
	AlignEnd
	AlignCenter
)

// ContainerInputs are the inputs of a grid layout pass.
type ContainerInputs struct {
	RowTracks AxisTracks
	ColTracks AxisTracks

	ColumnFlow bool // grid-auto-flow: column

	AvailableWidth  Fl
	AvailableHeight Fl

	AlignItems   Alignment
	JustifyItems Alignment

	// HasExplicitHeight controls whether leftover vertical space is
	// distributed on auto row tracks.
	HasExplicitHeight bool
}

// PlacedItem is one item with its final border-box rectangle, relative to
// the grid content origin.
type PlacedItem struct {
	Node          int
	X, Y          Fl
	Width, Height Fl
	Area          Area
}

// LayoutResult is the output of a grid layout pass.
type LayoutResult struct {
	Items       []PlacedItem
	TotalWidth  Fl
	TotalHeight Fl
	ColSizes    ResolvedTrackSizes
	RowSizes    ResolvedTrackSizes
}

// trackCountsForPlacement expands auto-repeat patterns so the placement
// cursor wraps on the real track counts. Without this, an auto-fit template
// would report zero columns and stack every item in the first one.
func trackCountsForPlacement(items []Item, inputs ContainerInputs) (rowCount, colCount int) {
	cols := expandAutoRepeat(sizingParams{
		axisTracks:    inputs.ColTracks,
		availableSize: inputs.AvailableWidth,
		items:         items,
		axis:          AxisColumn,
	})
	rows := expandAutoRepeat(sizingParams{
		axisTracks:    inputs.RowTracks,
		availableSize: inputs.AvailableHeight,
		items:         items,
		axis:          AxisRow,
	})
	return maxInt(len(rows), 1), maxInt(len(cols), 1)
}

func maxInt(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// Layout runs the grid algorithm: place the items, size columns then rows,
// and position every item inside its area (stretched to fill it).
func Layout(items []Item, inputs ContainerInputs) LayoutResult {
	rowCount, colCount := trackCountsForPlacement(items, inputs)

	placements := PlaceItems(items, rowCount, colCount, inputs.ColumnFlow)

	colSizes := resolveTrackSizes(sizingParams{
		axisTracks:    inputs.ColTracks,
		availableSize: inputs.AvailableWidth,
		items:         items,
		placements:    placements,
		axis:          AxisColumn,
	})
	rowSizes := resolveTrackSizes(sizingParams{
		axisTracks:     inputs.RowTracks,
		availableSize:  inputs.AvailableHeight,
		items:          items,
		placements:     placements,
		axis:           AxisRow,
		distributeAuto: inputs.HasExplicitHeight,
	})

	placed := make([]PlacedItem, len(items))
	for i, item := range items {
		area := placements[i]
		x, width := axisPositionAndSize(area.ColStart, area.ColEnd, colSizes, inputs.ColTracks.Gap)
		y, height := axisPositionAndSize(area.RowStart, area.RowEnd, rowSizes, inputs.RowTracks.Gap)
		placed[i] = PlacedItem{
			Node: item.Node,
			X:    x, Y: y,
			Width: width, Height: height,
			Area: area,
		}
	}

	return LayoutResult{
		Items:       placed,
		TotalWidth:  totalAxisSize(colSizes, inputs.ColTracks.Gap),
		TotalHeight: totalAxisSize(rowSizes, inputs.RowTracks.Gap),
		ColSizes:    colSizes,
		RowSizes:    rowSizes,
	}
}

// axisPositionAndSize returns the area origin and extent along one axis:
// the sum of the preceding tracks plus gaps, and the sum of the spanned
// tracks plus internal gaps.
func axisPositionAndSize(startLine, endLine int, sizes ResolvedTrackSizes, gap Fl) (position, size Fl) {
	for idx := 0; idx < startLine-1 && idx < len(sizes.BaseSizes); idx++ {
		position += sizes.BaseSizes[idx] + gap
	}
	for idx := startLine - 1; idx < endLine-1 && idx < len(sizes.BaseSizes); idx++ {
		if idx >= 0 {
			size += sizes.BaseSizes[idx]
			if idx > startLine-1 {
				size += gap
			}
		}
	}
	return position, size
}

func totalAxisSize(sizes ResolvedTrackSizes, gap Fl) Fl {
	var total Fl
	for _, s := range sizes.BaseSizes {
		total += s
	}
	if n := len(sizes.BaseSizes); n > 1 {
		total += gap * Fl(n-1)
	}
	if total < 0 {
		return 0
	}
	return total
}
