// Package grid implements grid track sizing and item placement: template
// parsing (repeat, minmax, fr units), auto-placement, track size resolution
// and item positioning. It is independent from the block layout engine,
// which feeds it measured items and reads back placed rectangles.
package grid

import (
	"github.com/benoitkugler/layoutng/utils"
)

type Fl = utils.Fl

// BreadthKind identifies one track sizing value.
type BreadthKind uint8

const (
	BreadthAuto BreadthKind = iota
	BreadthLength
	BreadthPercentage
	BreadthFlex
	BreadthMinContent
	BreadthMaxContent
)

// TrackBreadth is one track sizing value: a length in px, a percentage of
// the available size, a flex factor (fr), or a content keyword.
type TrackBreadth struct {
	Kind  BreadthKind
	Value Fl // used by Length, Percentage and Flex
}

func Length(v Fl) TrackBreadth     { return TrackBreadth{Kind: BreadthLength, Value: v} }
func Percentage(v Fl) TrackBreadth { return TrackBreadth{Kind: BreadthPercentage, Value: v} }
func Flex(v Fl) TrackBreadth       { return TrackBreadth{Kind: BreadthFlex, Value: v} }
func Auto() TrackBreadth           { return TrackBreadth{Kind: BreadthAuto} }

func (b TrackBreadth) isFlexible() bool { return b.Kind == BreadthFlex }

// TrackSizeKind identifies the shape of a track sizing function.
type TrackSizeKind uint8

const (
	SizeBreadth TrackSizeKind = iota
	SizeMinMax
	SizeFitContent
)

// TrackSize is a track sizing function: a single breadth, minmax(min, max)
// or fit-content(limit).
type TrackSize struct {
	Kind TrackSizeKind
	Min  TrackBreadth // the breadth for SizeBreadth, the minimum for SizeMinMax
	Max  TrackBreadth // the maximum for SizeMinMax, the limit for SizeFitContent
}

func Breadth(b TrackBreadth) TrackSize { return TrackSize{Kind: SizeBreadth, Min: b, Max: b} }
func MinMax(min, max TrackBreadth) TrackSize {
	return TrackSize{Kind: SizeMinMax, Min: min, Max: max}
}

// MinBreadth returns the minimum sizing value of the track.
func (t TrackSize) MinBreadth() TrackBreadth {
	if t.Kind == SizeFitContent {
		return Auto()
	}
	return t.Min
}

// MaxBreadth returns the maximum sizing value of the track.
func (t TrackSize) MaxBreadth() TrackBreadth { return t.Max }

// RepeatKind identifies a repeat() count.
type RepeatKind uint8

const (
	RepeatCount RepeatKind = iota
	RepeatAutoFill
	RepeatAutoFit
)

// Repeat is a repeat() pattern. Fixed counts are expanded at parse time;
// auto-fill and auto-fit are kept symbolic until the available size is known.
type Repeat struct {
	Kind   RepeatKind
	Count  int // for RepeatCount
	Tracks []TrackSize
}

// Track is one grid lane with its sizing function.
type Track struct {
	Size     TrackSize
	Implicit bool // true for tracks created by auto-placement overflow
}

// AxisTracks is the track definition for one axis.
type AxisTracks struct {
	Tracks     []Track
	Gap        Fl
	AutoRepeat *Repeat // auto-fill or auto-fit pattern, nil otherwise
}

func NewAxisTracks(tracks []Track, gap Fl) AxisTracks {
	return AxisTracks{Tracks: tracks, Gap: gap}
}

// Axis identifies the direction being sized.
type Axis uint8

const (
	AxisRow Axis = iota
	AxisColumn
)

// Item is one grid item with its measured content sizes and optional
// explicit line placement (1-indexed, 0 means auto).
type Item struct {
	Node int

	RowStart, RowEnd int
	ColStart, ColEnd int

	MinContentWidth, MaxContentWidth   Fl
	MinContentHeight, MaxContentHeight Fl
}

func (it Item) hasExplicitRow() bool { return it.RowStart != 0 || it.RowEnd != 0 }
func (it Item) hasExplicitCol() bool { return it.ColStart != 0 || it.ColEnd != 0 }

// Area is the set of cells occupied by an item. Lines are 1-indexed and
// ends are exclusive.
type Area struct {
	RowStart, RowEnd int
	ColStart, ColEnd int
}

// Overlaps reports whether two areas share at least one cell.
func (a Area) Overlaps(other Area) bool {
	return a.RowStart < other.RowEnd && a.RowEnd > other.RowStart &&
		a.ColStart < other.ColEnd && a.ColEnd > other.ColStart
}

// ResolvedTrackSizes holds per-track base sizes and growth limits after
// the sizing algorithm ran.
type ResolvedTrackSizes struct {
	BaseSizes    []Fl
	GrowthLimits []Fl
}

func newResolvedTrackSizes(count int) ResolvedTrackSizes {
	r := ResolvedTrackSizes{
		BaseSizes:    make([]Fl, count),
		GrowthLimits: make([]Fl, count),
	}
	for i := range r.GrowthLimits {
		r.GrowthLimits[i] = infinity
	}
	return r
}
