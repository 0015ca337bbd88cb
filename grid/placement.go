package grid

// PlaceItems assigns a grid area to each item, in order. Items with an
// explicit grid-row / grid-column placement take it directly; the others
// are auto-placed by a cursor walking the grid in auto-flow order.
func PlaceItems(items []Item, rowCount, colCount int, columnFlow bool) []Area {
	placements := make([]Area, 0, len(items))
	cursorRow, cursorCol := 1, 1

	for _, item := range items {
		var area Area
		if item.hasExplicitRow() || item.hasExplicitCol() {
			rowStart := lineOr(item.RowStart, cursorRow)
			colStart := lineOr(item.ColStart, cursorCol)
			area = Area{
				RowStart: rowStart,
				RowEnd:   endLineOr(item.RowEnd, rowStart),
				ColStart: colStart,
				ColEnd:   endLineOr(item.ColEnd, colStart),
			}
		} else {
			area = Area{
				RowStart: cursorRow, RowEnd: cursorRow + 1,
				ColStart: cursorCol, ColEnd: cursorCol + 1,
			}
			if columnFlow {
				cursorRow++
				if cursorRow > rowCount {
					cursorRow = 1
					cursorCol++
				}
			} else {
				cursorCol++
				if cursorCol > colCount {
					cursorCol = 1
					cursorRow++
				}
			}
		}
		placements = append(placements, area)
	}

	return placements
}

func lineOr(line, fallback int) int {
	if line == 0 {
		line = fallback
	}
	if line < 1 {
		line = 1
	}
	return line
}

func endLineOr(line, start int) int {
	if line == 0 || line < start+1 {
		return start + 1
	}
	return line
}
