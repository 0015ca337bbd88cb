package text

import (
	"fmt"
	"sync"

	"github.com/benoitkugler/textlayout/language"
	fc "github.com/benoitkugler/textprocessing/fontconfig"
	"github.com/benoitkugler/textprocessing/pango"
	"github.com/benoitkugler/textprocessing/pango/fcfonts"

	"github.com/benoitkugler/layoutng/style"
	"github.com/benoitkugler/layoutng/utils"
)

func PangoUnitsFromFloat(v Fl) int32 { return int32(v*pango.Scale + 0.5) }

func PangoUnitsToFloat(v pango.Unit) Fl { return Fl(v) / pango.Scale }

// PangoMeasurer implements TextMeasurer with the pango shaping engine,
// using the fonts available on the system (through a fontconfig index).
// It is safe for concurrent use.
type PangoMeasurer struct {
	fontmap *fcfonts.FontMap
	lang    pango.Language

	mu    sync.Mutex
	cache map[measureKey]interface{} // Metrics or WrappedMetrics
}

// NewPangoMeasurer loads the fontconfig index at cachePath (created by
// fontconfig.ScanAndCache) and builds a measurer on the resulting font map.
func NewPangoMeasurer(cachePath string) (*PangoMeasurer, error) {
	fs, err := fc.LoadFontsetFile(cachePath)
	if err != nil {
		return nil, fmt.Errorf("loading font index: %w", err)
	}
	return NewPangoMeasurerFromFontMap(fcfonts.NewFontMap(fc.Standard.Copy(), fs)), nil
}

// NewPangoMeasurerFromFontMap builds a measurer on an existing font map.
func NewPangoMeasurerFromFontMap(fontmap *fcfonts.FontMap) *PangoMeasurer {
	return &PangoMeasurer{
		fontmap: fontmap,
		lang:    pango.DefaultLanguage(),
		cache:   make(map[measureKey]interface{}),
	}
}

// SetLanguage overrides the default language used for shaping.
func (m *PangoMeasurer) SetLanguage(lang string) {
	m.lang = language.NewLanguage(lang)
}

func (m *PangoMeasurer) newLayout(st *style.ComputedStyle) *pango.Layout {
	pc := pango.NewContext(m.fontmap)
	pc.SetRoundGlyphPositions(false)
	pc.SetLanguage(m.lang)

	fontDesc := pango.NewFontDescription()
	fontDesc.SetFamily(st.FontFamily)
	fontDesc.SetWeight(pango.Weight(st.FontWeight))
	fontDesc.SetAbsoluteSize(PangoUnitsFromFloat(st.FontSize))

	layout := pango.NewLayout(pc)
	layout.SetFontDescription(&fontDesc)
	return layout
}

// lineExtents returns the logical width and height and the ink height of
// one line.
func lineExtents(line *pango.LayoutLine) (width, height, inkHeight Fl) {
	var ink, logical pango.Rectangle
	line.GetExtents(&ink, &logical)
	return PangoUnitsToFloat(logical.Width), PangoUnitsToFloat(logical.Height),
		PangoUnitsToFloat(ink.Height)
}

func (m *PangoMeasurer) Measure(text string, st *style.ComputedStyle) Metrics {
	key := newMeasureKey(text, st, -1)
	m.mu.Lock()
	if cached, ok := m.cache[key]; ok {
		m.mu.Unlock()
		return cached.(Metrics)
	}
	m.mu.Unlock()

	layout := m.newLayout(st)
	layout.SetWidth(-1)
	layout.SetText(text)

	var out Metrics
	if line := layout.GetLine(0); line != nil {
		width, height, inkHeight := lineExtents(line)
		out = Metrics{
			Width:       width,
			Height:      utils.MaxF(height, st.LineHeightPx()),
			GlyphHeight: inkHeight,
			Ascent:      PangoUnitsToFloat(layout.GetBaseline()),
		}
	}

	m.mu.Lock()
	m.cache[key] = out
	m.mu.Unlock()
	return out
}

func (m *PangoMeasurer) MeasureWrapped(text string, st *style.ComputedStyle, maxWidth Fl) WrappedMetrics {
	key := newMeasureKey(text, st, maxWidth)
	m.mu.Lock()
	if cached, ok := m.cache[key]; ok {
		m.mu.Unlock()
		return cached.(WrappedMetrics)
	}
	m.mu.Unlock()

	layout := m.newLayout(st)
	layout.SetWidth(pango.Unit(PangoUnitsFromFloat(utils.MaxF(0, maxWidth))))
	layout.SetText(text)

	lineHeight := st.LineHeightPx()
	var out WrappedMetrics
	for i := 0; ; i++ {
		line := layout.GetLine(i)
		if line == nil {
			break
		}
		width, height, inkHeight := lineExtents(line)
		height = utils.MaxF(height, lineHeight)
		if i == 0 {
			out.SingleLineHeight = height
			out.GlyphHeight = inkHeight
		}
		out.ActualWidth = utils.MaxF(out.ActualWidth, width)
		out.TotalHeight += height
		out.LineCount++
	}

	m.mu.Lock()
	m.cache[key] = out
	m.mu.Unlock()
	return out
}
