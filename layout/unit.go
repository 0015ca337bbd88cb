package layout

// LayoutUnit is a fixed point length with 6 fractional bits (1/64 px),
// the subpixel granularity used by browser engines. Snapping positions
// to this grid keeps accumulated offsets stable across platforms.
type LayoutUnit int32

const fixedScale = 1 << 6

// FromPx converts a px value, rounding half away from zero.
func FromPx(v Fl) LayoutUnit {
	scaled := v * fixedScale
	if scaled >= 0 {
		return LayoutUnit(scaled + 0.5)
	}
	return LayoutUnit(scaled - 0.5)
}

// Px returns the length in px.
func (u LayoutUnit) Px() Fl { return Fl(u) / fixedScale }

// Raw returns the underlying fixed point value.
func (u LayoutUnit) Raw() int32 { return int32(u) }

// Quantize snaps a px value to the layout unit grid.
func Quantize(v Fl) Fl { return FromPx(v).Px() }
