package document

import (
	"strconv"
	"strings"

	"github.com/benoitkugler/layoutng/logger"
	"github.com/benoitkugler/layoutng/style"
	"github.com/benoitkugler/layoutng/utils"
)

// tags rendered inline by default; everything else defaults to block
var inlineTags = utils.NewSet("a", "abbr", "b", "code", "em", "i", "img",
	"input", "label", "small", "span", "strong", "sub", "sup", "u")

func defaultStyleForTag(tag string) *style.ComputedStyle {
	st := style.Default()
	if inlineTags.Has(tag) {
		st.Display = style.DisplayInline
	}
	return st
}

// parseDimension reads a CSS length: px values, percentages, unitless
// numbers (treated as px) and the auto keyword.
func parseDimension(value string) (style.Dimension, bool) {
	value = strings.TrimSpace(value)
	switch {
	case value == "auto":
		return style.Dimension{}, true
	case strings.HasSuffix(value, "px"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(value, "px"), 32)
		if err != nil {
			return style.Dimension{}, false
		}
		return style.Dim(Fl(v)), true
	case strings.HasSuffix(value, "%"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(value, "%"), 32)
		if err != nil {
			return style.Dimension{}, false
		}
		return style.Percent(Fl(v)), true
	default:
		v, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return style.Dimension{}, false
		}
		return style.Dim(Fl(v)), true
	}
}

func parsePx(value string) (Fl, bool) {
	d, ok := parseDimension(value)
	if !ok || d.Unit != style.Px {
		return 0, false
	}
	return d.Value, true
}

// expandBox applies the 1 to 4 value box shorthand order: top,
// right, bottom, left.
func expandBox(value string) (top, right, bottom, left style.Dimension, ok bool) {
	fields := strings.Fields(value)
	dims := make([]style.Dimension, 0, 4)
	for _, f := range fields {
		d, okD := parseDimension(f)
		if !okD {
			return top, right, bottom, left, false
		}
		dims = append(dims, d)
	}
	switch len(dims) {
	case 1:
		return dims[0], dims[0], dims[0], dims[0], true
	case 2:
		return dims[0], dims[1], dims[0], dims[1], true
	case 3:
		return dims[0], dims[1], dims[2], dims[1], true
	case 4:
		return dims[0], dims[1], dims[2], dims[3], true
	}
	return top, right, bottom, left, false
}

// parseGridLine reads "start / end" or a single start line.
func parseGridLine(value string) (start, end int) {
	parts := strings.SplitN(value, "/", 2)
	start, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
	if len(parts) == 2 {
		end, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}
	return start, end
}

// parseInlineStyle applies the declarations of a style attribute on top
// of st. Unknown properties are ignored, malformed declarations are
// reported.
func parseInlineStyle(st *style.ComputedStyle, declarations string) {
	for _, decl := range strings.Split(declarations, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		colon := strings.IndexByte(decl, ':')
		if colon == -1 {
			logger.WarningLogger.Printf("malformed style declaration %q", decl)
			continue
		}
		property := strings.ToLower(strings.TrimSpace(decl[:colon]))
		value := strings.TrimSpace(decl[colon+1:])
		applyDeclaration(st, property, value)
	}
}

func applyDeclaration(st *style.ComputedStyle, property, value string) {
	lower := strings.ToLower(value)
	switch property {
	case "display":
		switch lower {
		case "block":
			st.Display = style.DisplayBlock
		case "inline", "inline-block":
			st.Display = style.DisplayInline
		case "none":
			st.Display = style.DisplayNone
		case "contents":
			st.Display = style.DisplayContents
		case "flex":
			st.Display = style.DisplayFlex
		case "grid":
			st.Display = style.DisplayGrid
		}
	case "position":
		switch lower {
		case "static":
			st.Position = style.PositionStatic
		case "relative":
			st.Position = style.PositionRelative
		case "absolute":
			st.Position = style.PositionAbsolute
		case "fixed":
			st.Position = style.PositionFixed
		case "sticky":
			st.Position = style.PositionSticky
		}
	case "float":
		switch lower {
		case "left":
			st.Float = style.FloatLeft
		case "right":
			st.Float = style.FloatRight
		case "none":
			st.Float = style.FloatNone
		}
	case "clear":
		switch lower {
		case "left":
			st.Clear = style.ClearLeft
		case "right":
			st.Clear = style.ClearRight
		case "both":
			st.Clear = style.ClearBoth
		case "none":
			st.Clear = style.ClearNone
		}
	case "overflow":
		switch lower {
		case "visible":
			st.Overflow = style.OverflowVisible
		case "hidden":
			st.Overflow = style.OverflowHidden
		case "scroll":
			st.Overflow = style.OverflowScroll
		case "auto":
			st.Overflow = style.OverflowAuto
		}
	case "box-sizing":
		switch lower {
		case "border-box":
			st.BoxSizing = style.BorderBox
		case "content-box":
			st.BoxSizing = style.ContentBox
		}

	case "width":
		if d, ok := parseDimension(value); ok {
			st.Width = d
		}
	case "height":
		if d, ok := parseDimension(value); ok {
			st.Height = d
		}
	case "min-width":
		if d, ok := parseDimension(value); ok {
			st.MinWidth = d
		}
	case "min-height":
		if d, ok := parseDimension(value); ok {
			st.MinHeight = d
		}
	case "max-width":
		if d, ok := parseDimension(value); ok {
			st.MaxWidth = d
		}
	case "max-height":
		if d, ok := parseDimension(value); ok {
			st.MaxHeight = d
		}

	case "margin":
		if t, r, b, l, ok := expandBox(value); ok {
			st.MarginTop, st.MarginRight, st.MarginBottom, st.MarginLeft = t, r, b, l
		}
	case "margin-top":
		if d, ok := parseDimension(value); ok {
			st.MarginTop = d
		}
	case "margin-right":
		if d, ok := parseDimension(value); ok {
			st.MarginRight = d
		}
	case "margin-bottom":
		if d, ok := parseDimension(value); ok {
			st.MarginBottom = d
		}
	case "margin-left":
		if d, ok := parseDimension(value); ok {
			st.MarginLeft = d
		}
	case "padding":
		if t, r, b, l, ok := expandBox(value); ok {
			st.PaddingTop, st.PaddingRight, st.PaddingBottom, st.PaddingLeft = t, r, b, l
		}
	case "padding-top":
		if d, ok := parseDimension(value); ok {
			st.PaddingTop = d
		}
	case "padding-right":
		if d, ok := parseDimension(value); ok {
			st.PaddingRight = d
		}
	case "padding-bottom":
		if d, ok := parseDimension(value); ok {
			st.PaddingBottom = d
		}
	case "padding-left":
		if d, ok := parseDimension(value); ok {
			st.PaddingLeft = d
		}

	case "border", "border-width":
		// only the width component matters for layout
		for _, field := range strings.Fields(value) {
			if v, ok := parsePx(field); ok {
				st.BorderTopWidth, st.BorderRightWidth = v, v
				st.BorderBottomWidth, st.BorderLeftWidth = v, v
				break
			}
		}
	case "border-top-width":
		if v, ok := parsePx(value); ok {
			st.BorderTopWidth = v
		}
	case "border-right-width":
		if v, ok := parsePx(value); ok {
			st.BorderRightWidth = v
		}
	case "border-bottom-width":
		if v, ok := parsePx(value); ok {
			st.BorderBottomWidth = v
		}
	case "border-left-width":
		if v, ok := parsePx(value); ok {
			st.BorderLeftWidth = v
		}

	case "left":
		if d, ok := parseDimension(value); ok {
			st.Left = d
		}
	case "top":
		if d, ok := parseDimension(value); ok {
			st.Top = d
		}
	case "right":
		if d, ok := parseDimension(value); ok {
			st.Right = d
		}
	case "bottom":
		if d, ok := parseDimension(value); ok {
			st.Bottom = d
		}

	case "flex-basis":
		if d, ok := parseDimension(value); ok {
			st.FlexBasis = d
		}
	case "flex-grow":
		if v, err := strconv.ParseFloat(lower, 32); err == nil {
			st.FlexGrow = Fl(v)
		}
	case "flex-shrink":
		if v, err := strconv.ParseFloat(lower, 32); err == nil {
			st.FlexShrink = Fl(v)
		}
	case "flex":
		// grow [shrink [basis]]
		fields := strings.Fields(lower)
		if len(fields) >= 1 {
			if v, err := strconv.ParseFloat(fields[0], 32); err == nil {
				st.FlexGrow = Fl(v)
			}
		}
		if len(fields) >= 2 {
			if v, err := strconv.ParseFloat(fields[1], 32); err == nil {
				st.FlexShrink = Fl(v)
			}
		}
		if len(fields) >= 3 {
			if d, ok := parseDimension(fields[2]); ok {
				st.FlexBasis = d
			}
		}
	case "align-items":
		st.AlignItems = parseAlign(lower)
	case "align-self":
		st.AlignSelf = parseAlign(lower)

	case "grid-template-rows":
		st.GridTemplateRows = value
	case "grid-template-columns":
		st.GridTemplateColumns = value
	case "grid-auto-flow":
		st.GridAutoFlowColumn = strings.Contains(lower, "column")
	case "gap", "grid-gap":
		fields := strings.Fields(value)
		if len(fields) >= 1 {
			if v, ok := parsePx(fields[0]); ok {
				st.RowGap, st.ColumnGap = v, v
			}
		}
		if len(fields) >= 2 {
			if v, ok := parsePx(fields[1]); ok {
				st.ColumnGap = v
			}
		}
	case "row-gap":
		if v, ok := parsePx(value); ok {
			st.RowGap = v
		}
	case "column-gap":
		if v, ok := parsePx(value); ok {
			st.ColumnGap = v
		}
	case "grid-row":
		st.GridRowStart, st.GridRowEnd = parseGridLine(value)
	case "grid-column":
		st.GridColumnStart, st.GridColumnEnd = parseGridLine(value)
	case "grid-row-start":
		st.GridRowStart, _ = strconv.Atoi(strings.TrimSpace(value))
	case "grid-row-end":
		st.GridRowEnd, _ = strconv.Atoi(strings.TrimSpace(value))
	case "grid-column-start":
		st.GridColumnStart, _ = strconv.Atoi(strings.TrimSpace(value))
	case "grid-column-end":
		st.GridColumnEnd, _ = strconv.Atoi(strings.TrimSpace(value))

	case "font-family":
		st.FontFamily = strings.Trim(value, `"' `)
	case "font-size":
		if v, ok := parsePx(value); ok {
			st.FontSize = v
		}
	case "font-weight":
		switch lower {
		case "normal":
			st.FontWeight = 400
		case "bold":
			st.FontWeight = 700
		default:
			if v, err := strconv.Atoi(lower); err == nil {
				st.FontWeight = v
			}
		}
	case "line-height":
		switch {
		case lower == "normal":
			st.LineHeight = style.Dimension{}
		case strings.HasSuffix(lower, "px"), strings.HasSuffix(lower, "%"):
			if d, ok := parseDimension(value); ok {
				st.LineHeight = d
			}
		default:
			// a bare number is a multiple of the font size
			if v, err := strconv.ParseFloat(lower, 32); err == nil {
				st.LineHeight = style.Percent(Fl(v) * 100)
			}
		}
	case "text-align":
		switch lower {
		case "left":
			st.TextAlign = style.TextAlignLeft
		case "center":
			st.TextAlign = style.TextAlignCenter
		case "right":
			st.TextAlign = style.TextAlignRight
		}
	}
}

func parseAlign(value string) style.Align {
	switch value {
	case "stretch":
		return style.AlignStretch
	case "flex-start", "start":
		return style.AlignFlexStart
	case "center":
		return style.AlignCenter
	case "flex-end", "end":
		return style.AlignFlexEnd
	default:
		return style.AlignAuto
	}
}
