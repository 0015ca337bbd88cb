package layout

// SizeMode is the kind of an available size.
type SizeMode uint8

const (
	SizeDefinite SizeMode = iota
	SizeIndefinite
	SizeMinContent
	SizeMaxContent
)

// AvailableSize is the space offered to a box along one axis: a definite
// length, an indefinite size, or one of the intrinsic sizing keywords.
type AvailableSize struct {
	Value Fl
	Mode  SizeMode
}

// Definite returns a definite available size.
func Definite(v Fl) AvailableSize { return AvailableSize{Mode: SizeDefinite, Value: v} }

var (
	Indefinite = AvailableSize{Mode: SizeIndefinite}
	MinContent = AvailableSize{Mode: SizeMinContent}
	MaxContent = AvailableSize{Mode: SizeMaxContent}
)

func (a AvailableSize) IsDefinite() bool { return a.Mode == SizeDefinite }

// Resolve returns the definite size, or fallback for the other modes.
func (a AvailableSize) Resolve(fallback Fl) Fl {
	if a.Mode == SizeDefinite {
		return a.Value
	}
	return fallback
}

// BfcOffset is a position in block formatting context coordinates. The
// block offset stays nil while margins collapsing through the box have
// not been resolved yet.
type BfcOffset struct {
	Inline Fl
	Block  *Fl
}

func flPtr(v Fl) *Fl { return &v }

// RootBfc is the origin of a new formatting context.
func RootBfc() BfcOffset { return BfcOffset{Inline: 0, Block: flPtr(0)} }

// IsResolved reports whether the block offset is known.
func (o BfcOffset) IsResolved() bool { return o.Block != nil }

// BlockOr returns the block offset, or fallback when still unresolved.
func (o BfcOffset) BlockOr(fallback Fl) Fl {
	if o.Block != nil {
		return *o.Block
	}
	return fallback
}

// ConstraintSpace carries the inputs a parent passes to a child layout
// call: available sizes, the position in the formatting context, the
// floats and margins in flight, and behaviour flags.
type ConstraintSpace struct {
	AvailableInlineSize AvailableSize
	AvailableBlockSize  AvailableSize

	BfcOffset      BfcOffset
	ExclusionSpace ExclusionSpace
	MarginStrut    MarginStrut

	// IsNewFormattingContext is true when the caller established a new
	// formatting context for this subtree.
	IsNewFormattingContext bool

	// PercentageResolutionBlockSize is the basis for vertical
	// percentages, independent from AvailableBlockSize.
	PercentageResolutionBlockSize *Fl

	// Pagination support, passed through unchanged.
	FragmentainerBlockSize *Fl
	FragmentainerOffset    Fl

	// IsForMeasurementOnly marks intrinsic sizing passes: results
	// computed under this flag are not persisted.
	IsForMeasurementOnly bool

	// MarginsAlreadyApplied is set by flex and grid containers which
	// position margins themselves, so offset math must not apply
	// margin-top or margin-left again.
	MarginsAlreadyApplied bool

	IsBlockSizeForced  bool
	IsInlineSizeForced bool
}

// RootSpace is the space used to lay out the root box against the
// initial containing block.
func RootSpace(icbWidth, icbHeight Fl) ConstraintSpace {
	return ConstraintSpace{
		AvailableInlineSize:           Definite(icbWidth),
		AvailableBlockSize:            Definite(icbHeight),
		BfcOffset:                     RootBfc(),
		IsNewFormattingContext:        true,
		PercentageResolutionBlockSize: flPtr(icbHeight),
	}
}

// Result is the outcome of laying out one box: its border box size, its
// resolved position, and the margin and float state flowing out of it.
type Result struct {
	InlineSize Fl
	BlockSize  Fl

	BfcOffset      BfcOffset
	ExclusionSpace ExclusionSpace
	EndMarginStrut MarginStrut

	Baseline *Fl

	// NeedsRelayout marks a first pass result computed against an
	// estimated position; the caller must lay the box out again once
	// the real position is known.
	NeedsRelayout bool
}
