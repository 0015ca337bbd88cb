// Package style defines the computed style values consumed by the layout
// engine. Styles are resolved by an external cascade (or the document
// loader's inline reader) before layout starts and are read-only afterwards.
package style

import (
	"github.com/benoitkugler/layoutng/utils"
)

type Fl = utils.Fl

// Display is the used value of the CSS display property.
type Display uint8

const (
	DisplayBlock Display = iota
	DisplayInline
	DisplayNone
	DisplayContents
	DisplayFlex
	DisplayGrid
)

type Position uint8

const (
	PositionStatic Position = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
	PositionSticky
)

type Float uint8

const (
	FloatNone Float = iota
	FloatLeft
	FloatRight
)

type Clear uint8

const (
	ClearNone Clear = iota
	ClearLeft
	ClearRight
	ClearBoth
)

type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
	OverflowAuto
)

type BoxSizing uint8

const (
	ContentBox BoxSizing = iota
	BorderBox
)

type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// Align is used for both align-items and align-self.
type Align uint8

const (
	AlignAuto Align = iota // align-self only: defer to the container
	AlignStretch
	AlignFlexStart
	AlignCenter
	AlignFlexEnd
)

type Unit uint8

const (
	Auto Unit = iota
	Px
	Percentage
)

// Dimension is a length which may be an absolute pixel value, a percentage
// of some containing-block basis, or the keyword auto.
type Dimension struct {
	Value Fl
	Unit  Unit
}

func Dim(v Fl) Dimension     { return Dimension{Value: v, Unit: Px} }
func Percent(v Fl) Dimension { return Dimension{Value: v, Unit: Percentage} }

func (d Dimension) IsAuto() bool { return d.Unit == Auto }

// Resolve returns the used value of d against the given percentage basis.
// Auto resolves to 0.
func (d Dimension) Resolve(basis Fl) Fl {
	switch d.Unit {
	case Px:
		return d.Value
	case Percentage:
		return d.Value / 100 * basis
	default:
		return 0
	}
}

// ComputedStyle gathers the style values the engine reads. Every field has
// a meaningful zero value so a zero ComputedStyle is a valid default block.
type ComputedStyle struct {
	Display   Display
	Position  Position
	Float     Float
	Clear     Clear
	Overflow  Overflow
	BoxSizing BoxSizing

	Width, Height       Dimension // auto when unset
	MinWidth, MinHeight Dimension // auto resolves to 0
	MaxWidth, MaxHeight Dimension // auto means no constraint

	MarginTop, MarginRight, MarginBottom, MarginLeft     Dimension
	PaddingTop, PaddingRight, PaddingBottom, PaddingLeft Dimension

	// Border widths are used values in px (border-style resolution happens
	// upstream, a none style yields 0 here).
	BorderTopWidth, BorderRightWidth, BorderBottomWidth, BorderLeftWidth Fl

	// Box offsets for positioned elements.
	Left, Top, Right, Bottom Dimension

	FlexBasis  Dimension // auto falls back to Width, then content
	FlexGrow   Fl
	FlexShrink Fl // the CSS initial value is 1, set by Default
	AlignItems Align
	AlignSelf  Align

	GridTemplateRows    string
	GridTemplateColumns string
	GridAutoFlowColumn  bool // false is the initial row flow
	RowGap, ColumnGap   Fl
	// Grid line placement, 1-indexed. Zero means auto.
	GridRowStart, GridRowEnd       int
	GridColumnStart, GridColumnEnd int

	FontFamily string
	FontSize   Fl
	FontWeight int
	LineHeight Dimension // auto means normal
	TextAlign  TextAlign
}

var defaultStyle = ComputedStyle{
	FlexShrink: 1,
	FontFamily: "sans-serif",
	FontSize:   16,
	FontWeight: 400,
}

// Default returns the style used for nodes missing from the styles map.
func Default() *ComputedStyle {
	st := defaultStyle
	return &st
}

// LineHeightPx returns the used line height in px.
func (s *ComputedStyle) LineHeightPx() Fl {
	if s.LineHeight.IsAuto() {
		return s.FontSize * 1.2
	}
	if s.LineHeight.Unit == Percentage {
		return s.LineHeight.Value / 100 * s.FontSize
	}
	return s.LineHeight.Value
}

// BoxSides holds the resolved margin, border and padding for the four
// edges of one box, in px. Percentages (for margins and paddings) resolve
// against the containing block inline size, including the vertical edges.
type BoxSides struct {
	MarginTop, MarginRight, MarginBottom, MarginLeft     Fl
	BorderTop, BorderRight, BorderBottom, BorderLeft     Fl
	PaddingTop, PaddingRight, PaddingBottom, PaddingLeft Fl
}

// ComputeBoxSides resolves the box edges of st against the containing block
// inline size. Auto margins resolve to 0 here; inline-size distribution of
// auto margins is the block algorithm's concern.
func ComputeBoxSides(st *ComputedStyle, containingInline Fl) BoxSides {
	if containingInline < 0 || utils.IsDegenerate(containingInline) {
		containingInline = 0
	}
	return BoxSides{
		MarginTop:    st.MarginTop.Resolve(containingInline),
		MarginRight:  st.MarginRight.Resolve(containingInline),
		MarginBottom: st.MarginBottom.Resolve(containingInline),
		MarginLeft:   st.MarginLeft.Resolve(containingInline),

		BorderTop:    st.BorderTopWidth,
		BorderRight:  st.BorderRightWidth,
		BorderBottom: st.BorderBottomWidth,
		BorderLeft:   st.BorderLeftWidth,

		PaddingTop:    st.PaddingTop.Resolve(containingInline),
		PaddingRight:  st.PaddingRight.Resolve(containingInline),
		PaddingBottom: st.PaddingBottom.Resolve(containingInline),
		PaddingLeft:   st.PaddingLeft.Resolve(containingInline),
	}
}

// HorizontalEdges is the total inline-axis border and padding.
func (b BoxSides) HorizontalEdges() Fl {
	return b.BorderLeft + b.BorderRight + b.PaddingLeft + b.PaddingRight
}

// VerticalEdges is the total block-axis border and padding.
func (b BoxSides) VerticalEdges() Fl {
	return b.BorderTop + b.BorderBottom + b.PaddingTop + b.PaddingBottom
}

// HorizontalMargins is margin-left plus margin-right.
func (b BoxSides) HorizontalMargins() Fl { return b.MarginLeft + b.MarginRight }
