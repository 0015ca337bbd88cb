package layout

import (
	"github.com/benoitkugler/layoutng/style"
	"github.com/benoitkugler/layoutng/utils"
)

// FloatSize is the margin box of a float being registered in an
// exclusion space.
type FloatSize struct {
	InlineSize Fl
	BlockSize  Fl
	Type       style.Float
}

// floatExclusion is one placed float, in formatting context coordinates.
type floatExclusion struct {
	node        NodeKey
	inlineStart Fl
	inlineEnd   Fl
	blockStart  Fl
	blockEnd    Fl
}

// ExclusionSpace tracks the floats of one block formatting context so
// that later content can flow around them and clearance can be
// computed. The zero value is an empty space.
type ExclusionSpace struct {
	leftFloats  []floatExclusion
	rightFloats []floatExclusion

	// lowest block end among all registered floats
	lastShelfOffset Fl
}

// Clone returns an independent copy: floats registered afterwards on
// one side are not seen by the other.
func (e ExclusionSpace) Clone() ExclusionSpace {
	out := e
	out.leftFloats = append([]floatExclusion(nil), e.leftFloats...)
	out.rightFloats = append([]floatExclusion(nil), e.rightFloats...)
	return out
}

// AddFloat registers the margin box of a float placed at offset.
func (e *ExclusionSpace) AddFloat(node NodeKey, offset BfcOffset, size FloatSize) {
	blockStart := offset.BlockOr(0)
	excl := floatExclusion{
		node:        node,
		inlineStart: offset.Inline,
		inlineEnd:   offset.Inline + size.InlineSize,
		blockStart:  blockStart,
		blockEnd:    blockStart + size.BlockSize,
	}
	if size.Type == style.FloatRight {
		e.rightFloats = append(e.rightFloats, excl)
	} else {
		e.leftFloats = append(e.leftFloats, excl)
	}
	e.lastShelfOffset = utils.MaxF(e.lastShelfOffset, excl.blockEnd)
}

// HasFloats reports whether any float is registered.
func (e ExclusionSpace) HasFloats() bool {
	return len(e.leftFloats)+len(e.rightFloats) != 0
}

// LastFloatBottom returns the lowest block end among the registered
// floats, 0 when the space is empty.
func (e ExclusionSpace) LastFloatBottom() Fl { return e.lastShelfOffset }

// AvailableInlineSizeAtOffset returns the inline band left between the
// floats crossing blockOffset, for a container whose content spans
// [0, containerInlineEnd] on the inline axis: the left edge of the band
// and its (non negative) size.
func (e ExclusionSpace) AvailableInlineSizeAtOffset(blockOffset, containerInlineEnd Fl) (leftEdge, available Fl) {
	rightEdge := containerInlineEnd
	for _, f := range e.leftFloats {
		if f.blockStart <= blockOffset && blockOffset < f.blockEnd {
			leftEdge = utils.MaxF(leftEdge, f.inlineEnd)
		}
	}
	for _, f := range e.rightFloats {
		if f.blockStart <= blockOffset && blockOffset < f.blockEnd {
			rightEdge = utils.MinF(rightEdge, f.inlineStart)
		}
	}
	return leftEdge, utils.MaxF(0, rightEdge-leftEdge)
}

// ClearanceOffset returns the minimum block offset an element with the
// given clear value must be placed at, 0 when no float applies.
func (e ExclusionSpace) ClearanceOffset(clear style.Clear) Fl {
	switch clear {
	case style.ClearLeft:
		return maxBlockEnd(e.leftFloats)
	case style.ClearRight:
		return maxBlockEnd(e.rightFloats)
	case style.ClearBoth:
		return e.lastShelfOffset
	default:
		return 0
	}
}

func maxBlockEnd(floats []floatExclusion) Fl {
	var out Fl
	for _, f := range floats {
		out = utils.MaxF(out, f.blockEnd)
	}
	return out
}

// HasFloatsAfter reports whether a float extends below blockOffset.
func (e ExclusionSpace) HasFloatsAfter(blockOffset Fl) bool {
	for _, f := range e.leftFloats {
		if f.blockEnd > blockOffset {
			return true
		}
	}
	for _, f := range e.rightFloats {
		if f.blockEnd > blockOffset {
			return true
		}
	}
	return false
}
