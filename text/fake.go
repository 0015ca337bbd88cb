package text

import (
	"unicode/utf8"

	"github.com/benoitkugler/layoutng/style"
	"github.com/benoitkugler/layoutng/utils"
)

// FakeMeasurer is a deterministic TextMeasurer for tests: every rune
// advances by half the font size, lines are the style line height.
// No shaping engine or font files are involved.
type FakeMeasurer struct{}

func (FakeMeasurer) advance(st *style.ComputedStyle) Fl { return st.FontSize / 2 }

func (f FakeMeasurer) Measure(text string, st *style.ComputedStyle) Metrics {
	lineHeight := st.LineHeightPx()
	return Metrics{
		Width:       Fl(utf8.RuneCountInString(text)) * f.advance(st),
		Height:      lineHeight,
		GlyphHeight: st.FontSize,
		Ascent:      st.FontSize * 0.8,
	}
}

func (f FakeMeasurer) MeasureWrapped(text string, st *style.ComputedStyle, maxWidth Fl) WrappedMetrics {
	advance := f.advance(st)
	lineHeight := st.LineHeightPx()

	perLine := utils.MaxInt(1, int(maxWidth/advance))
	runeCount := utf8.RuneCountInString(text)
	lineCount := utils.MaxInt(1, (runeCount+perLine-1)/perLine)

	actualWidth := Fl(perLine) * advance
	if lineCount == 1 {
		actualWidth = Fl(runeCount) * advance
	}
	return WrappedMetrics{
		TotalHeight:      Fl(lineCount) * lineHeight,
		ActualWidth:      actualWidth,
		SingleLineHeight: lineHeight,
		GlyphHeight:      st.FontSize,
		LineCount:        lineCount,
	}
}
