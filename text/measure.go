// Package text exposes the measurement service consumed by the layout
// engine: natural (unwrapped) metrics for a text run, and wrapped metrics
// at a given maximum width. The production implementation is backed by
// pango; a deterministic fake is provided for tests.
package text

import (
	"github.com/benoitkugler/layoutng/style"
	"github.com/benoitkugler/layoutng/utils"
)

type Fl = utils.Fl

// Metrics are the natural (no wrapping) metrics of a text run.
type Metrics struct {
	Width  Fl
	Height Fl // line box height
	// GlyphHeight is the ink height of the glyphs, used to vertically
	// center a line inside its line box.
	GlyphHeight Fl
	Ascent      Fl
}

// WrappedMetrics are the metrics of a text run wrapped at a maximum width.
type WrappedMetrics struct {
	TotalHeight      Fl
	ActualWidth      Fl // widest laid out line
	SingleLineHeight Fl
	GlyphHeight      Fl
	LineCount        int
}

// TextMeasurer measures text runs for the layout engine. Implementations
// must be pure: identical inputs return identical metrics, so results are
// cacheable. Measurers may be shared between trees and must then be safe
// for concurrent use.
type TextMeasurer interface {
	// Measure returns the natural metrics of text, without wrapping.
	Measure(text string, st *style.ComputedStyle) Metrics

	// MeasureWrapped wraps text at maxWidth and returns the wrapped metrics.
	MeasureWrapped(text string, st *style.ComputedStyle, maxWidth Fl) WrappedMetrics
}

// measureKey identifies one measurement in the cache. Sizes are rounded so
// float noise does not defeat memoization.
type measureKey struct {
	text     string
	fontSize int32
	maxWidth int32 // -1 for natural measurement
}

func newMeasureKey(text string, st *style.ComputedStyle, maxWidth Fl) measureKey {
	width := int32(-1)
	if maxWidth >= 0 {
		width = int32(utils.Round(maxWidth))
	}
	return measureKey{
		text:     text,
		fontSize: int32(utils.Round(st.FontSize * 64)),
		maxWidth: width,
	}
}
