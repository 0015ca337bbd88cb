// Package layout implements a constraint based CSS layout engine for a
// practical subset of the visual formatting model: block flow with full
// margin collapsing, floats with exclusions and clearance, absolute and
// fixed positioning, single line flex and grid containers, and text
// runs measured by an external shaping service.
//
// The caller populates a Tree with styles, children and text content,
// then calls LayoutRoot; results are read back per node in formatting
// context coordinates.
package layout

import (
	"github.com/benoitkugler/layoutng/logger"
	"github.com/benoitkugler/layoutng/style"
	"github.com/benoitkugler/layoutng/text"
	"github.com/benoitkugler/layoutng/utils"
)

type Fl = utils.Fl

// NodeKey identifies one node of the input document.
type NodeKey int

// Rect is an axis aligned rectangle in px.
type Rect struct {
	X, Y, Width, Height Fl
}

func unionRect(a, b Rect) Rect {
	x := utils.MinF(a.X, b.X)
	y := utils.MinF(a.Y, b.Y)
	return Rect{
		X: x, Y: y,
		Width:  utils.MaxF(a.X+a.Width, b.X+b.Width) - x,
		Height: utils.MaxF(a.Y+a.Height, b.Y+b.Height) - y,
	}
}

// Tree holds the input document and the layout results, all keyed by
// node. The input maps are populated by the caller (see the document
// package) and are read-only during layout.
type Tree struct {
	Styles    map[NodeKey]*style.ComputedStyle
	Children  map[NodeKey][]NodeKey
	TextNodes map[NodeKey]string
	Tags      map[NodeKey]string
	Attrs     map[NodeKey]map[string]string

	// Results accumulates during layout and is the durable output.
	Results map[NodeKey]Result

	icbWidth, icbHeight Fl
	measurer            text.TextMeasurer

	dirty []Rect
}

// NewTree returns an empty tree laying out against an initial
// containing block of the given dimensions.
func NewTree(icbWidth, icbHeight Fl, measurer text.TextMeasurer) *Tree {
	return &Tree{
		Styles:    make(map[NodeKey]*style.ComputedStyle),
		Children:  make(map[NodeKey][]NodeKey),
		TextNodes: make(map[NodeKey]string),
		Tags:      make(map[NodeKey]string),
		Attrs:     make(map[NodeKey]map[string]string),
		Results:   make(map[NodeKey]Result),
		icbWidth:  icbWidth,
		icbHeight: icbHeight,
		measurer:  measurer,
	}
}

// ICBSize returns the initial containing block dimensions.
func (t *Tree) ICBSize() (width, height Fl) { return t.icbWidth, t.icbHeight }

// IsText reports whether node is a text node.
func (t *Tree) IsText(node NodeKey) bool {
	_, ok := t.TextNodes[node]
	return ok
}

// Style returns the computed style of node. Element nodes missing from
// the styles map get the default style, with a warning.
func (t *Tree) Style(node NodeKey) *style.ComputedStyle {
	if st, ok := t.Styles[node]; ok {
		return st
	}
	st := style.Default()
	if !t.IsText(node) {
		logger.WarningLogger.Printf("missing style for node %d, using defaults", node)
	}
	t.Styles[node] = st
	return st
}

func establishesBFC(st *style.ComputedStyle) bool {
	return st.Float != style.FloatNone ||
		st.Overflow != style.OverflowVisible ||
		st.Display == style.DisplayFlex || st.Display == style.DisplayGrid ||
		st.Position == style.PositionAbsolute || st.Position == style.PositionFixed
}

// insertResult stores a final result; measurement passes and first pass
// estimates are discarded.
func (t *Tree) insertResult(node NodeKey, space *ConstraintSpace, result Result) {
	if space.IsForMeasurementOnly || result.NeedsRelayout {
		return
	}
	t.Results[node] = result
}

// passthroughResult is the zero size result used for boxes taken out of
// the layout (display none or contents, whitespace text): position and
// float state flow through unchanged.
func passthroughResult(space *ConstraintSpace) Result {
	return Result{
		BfcOffset:      space.BfcOffset,
		ExclusionSpace: space.ExclusionSpace.Clone(),
	}
}

// layoutBlock is the recursive dispatch: every box kind goes through
// here, selected on the node's display, float and position values.
func (t *Tree) layoutBlock(node NodeKey, space ConstraintSpace) Result {
	if t.IsText(node) {
		// text nodes are laid out by their parent's children loop
		return passthroughResult(&space)
	}

	st := t.Style(node)
	switch {
	case st.Display == style.DisplayNone, st.Display == style.DisplayContents:
		return passthroughResult(&space)
	case st.Float != style.FloatNone:
		return t.layoutFloat(node, st, space)
	case st.Display == style.DisplayFlex:
		return t.layoutFlexContainer(node, st, space)
	case st.Display == style.DisplayGrid:
		return t.layoutGridContainer(node, st, space)
	case st.Position == style.PositionAbsolute, st.Position == style.PositionFixed:
		return t.layoutAbsolute(node, st, space)
	default:
		if !space.BfcOffset.IsResolved() {
			return t.layoutBlockFirstPass(node, st, space)
		}
		return t.layoutBlockFlow(node, st, space)
	}
}

// LayoutRoot lays out the whole tree from root against the initial
// containing block, stores the results and returns the root result.
// The root box always covers at least the viewport.
func (t *Tree) LayoutRoot(root NodeKey) Result {
	logger.ProgressLogger.Printf("layout pass: icb %gx%g", t.icbWidth, t.icbHeight)

	space := RootSpace(t.icbWidth, t.icbHeight)
	result := t.layoutBlock(root, space)
	result.InlineSize = utils.MaxF(result.InlineSize, t.icbWidth)
	result.BlockSize = utils.MaxF(result.BlockSize, t.icbHeight)

	newRect := Rect{
		X: result.BfcOffset.Inline, Y: result.BfcOffset.BlockOr(0),
		Width: result.InlineSize, Height: result.BlockSize,
	}
	if old, ok := t.Results[root]; ok {
		oldRect := Rect{
			X: old.BfcOffset.Inline, Y: old.BfcOffset.BlockOr(0),
			Width: old.InlineSize, Height: old.BlockSize,
		}
		if oldRect != newRect {
			t.dirty = append(t.dirty, unionRect(oldRect, newRect))
		}
	} else {
		t.dirty = append(t.dirty, newRect)
	}

	t.Results[root] = result
	return result
}

// DirtyRects returns the areas invalidated by the layout passes since
// the last call, and resets the accumulator.
func (t *Tree) DirtyRects() []Rect {
	out := t.dirty
	t.dirty = nil
	return out
}
