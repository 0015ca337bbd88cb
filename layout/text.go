package layout

import (
	"strings"

	"github.com/benoitkugler/layoutng/style"
	"github.com/benoitkugler/layoutng/utils"
)

// definite available sizes below this are intrinsic sizing artifacts,
// wrapping against them would produce nonsense
const minWrapWidth = 50

// textMeasurement is the shaped geometry of one text run, after the
// wrapping decision.
type textMeasurement struct {
	width            Fl
	glyphHeight      Fl
	singleLineHeight Fl
	textRectHeight   Fl
	ascent           Fl
}

// combinedTextRun concatenates child and the text siblings directly
// following it, so a run split across several DOM nodes measures and
// wraps as one ("Unicode " + "&" + " Special" is a single run).
func (t *Tree) combinedTextRun(parent, child NodeKey) string {
	var sb strings.Builder
	started := false
	for _, c := range t.flowChildren(parent) {
		if c == child {
			started = true
		}
		if !started {
			continue
		}
		content, isText := t.TextNodes[c]
		if !isText {
			break
		}
		sb.WriteString(content)
	}
	return sb.String()
}

// measureTextRun measures the combined run starting at child, wrapping
// only against a definite available size of at least minWrapWidth that
// the natural width exceeds.
func (t *Tree) measureTextRun(parent, child NodeKey, st *style.ComputedStyle, avail AvailableSize) textMeasurement {
	run := t.combinedTextRun(parent, child)
	metrics := t.measurer.Measure(run, st)
	natural := textMeasurement{
		width:            metrics.Width,
		glyphHeight:      metrics.GlyphHeight,
		singleLineHeight: metrics.Height,
		// an unwrapped line reports its glyph box as the rect, the
		// leading comes back as a vertical offset in the caller
		textRectHeight: metrics.GlyphHeight,
		ascent:         metrics.Ascent,
	}
	if !avail.IsDefinite() || avail.Value < minWrapWidth || metrics.Width <= avail.Value {
		return natural
	}
	wrapped := t.measurer.MeasureWrapped(run, st, avail.Value)
	if wrapped.LineCount <= 1 {
		return natural
	}
	return textMeasurement{
		width:            wrapped.ActualWidth,
		glyphHeight:      wrapped.GlyphHeight,
		singleLineHeight: wrapped.SingleLineHeight,
		textRectHeight:   wrapped.TotalHeight,
	}
}

// layoutTextChild lays out one text node inside its parent's flow.
// Whitespace-only nodes are invisible; continuation nodes (directly
// after another text node) get zero size since the lead node already
// measured the whole run; only the lead node advances the flow.
func (t *Tree) layoutTextChild(parent, child NodeKey, prev NodeKey, hasPrev bool, childSpace *ConstraintSpace, state *childrenLayoutState, canCollapse bool) {
	content := t.TextNodes[child]
	if strings.TrimSpace(content) == "" {
		t.insertResult(child, childSpace, passthroughResult(childSpace))
		return
	}

	isContinuation := hasPrev && t.IsText(prev)
	state.hasTextContent = true

	// text has no margins, so it resolves the pending strut in place
	resolved := childSpace.BfcOffset.BlockOr(0)
	if !state.firstInflowChildSeen {
		if canCollapse {
			resolved += childSpace.MarginStrut.Collapse()
		}
		state.resolvedBfcOffset.Block = flPtr(resolved)
		state.firstInflowChildSeen = true
	}

	parentStyle := t.Style(parent)
	var m textMeasurement
	if !isContinuation {
		m = t.measureTextRun(parent, child, parentStyle, childSpace.AvailableInlineSize)
	}

	isWrapped := m.textRectHeight > m.singleLineHeight
	var halfLeading Fl
	if !isWrapped {
		halfLeading = utils.Floor((m.singleLineHeight - m.glyphHeight) / 2)
	}

	var alignOffset Fl
	if avail := childSpace.AvailableInlineSize; avail.IsDefinite() && avail.Value > m.width {
		switch parentStyle.TextAlign {
		case style.TextAlignCenter:
			alignOffset = (avail.Value - m.width) / 2
		case style.TextAlignRight:
			alignOffset = avail.Value - m.width
		}
	}

	result := Result{
		InlineSize: m.width,
		BlockSize:  m.textRectHeight,
		BfcOffset: BfcOffset{
			Inline: childSpace.BfcOffset.Inline + alignOffset,
			Block:  flPtr(resolved + halfLeading),
		},
		ExclusionSpace: childSpace.ExclusionSpace.Clone(),
	}
	if !isContinuation && !isWrapped {
		result.Baseline = flPtr(resolved + m.ascent)
	}
	t.insertResult(child, childSpace, result)

	if !isContinuation {
		childSpace.MarginStrut = MarginStrut{}
		advance := m.singleLineHeight
		if isWrapped {
			advance = m.textRectHeight
		}
		childSpace.BfcOffset.Block = flPtr(resolved + advance)
	}
}
