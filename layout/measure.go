package layout

// MeasuredSize is the border box size of a box measured in isolation.
type MeasuredSize struct {
	Inline Fl
	Block  Fl
}

// measureBox lays the node out as an independent formatting context
// root under the given available sizes. Results computed this way are
// provisional and never persisted.
func (t *Tree) measureBox(node NodeKey, availInline, availBlock AvailableSize) MeasuredSize {
	if t.IsText(node) {
		return MeasuredSize{}
	}
	space := ConstraintSpace{
		AvailableInlineSize:    availInline,
		AvailableBlockSize:     availBlock,
		BfcOffset:              RootBfc(),
		IsNewFormattingContext: true,
		IsForMeasurementOnly:   true,
	}
	result := t.layoutBlock(node, space)
	return MeasuredSize{Inline: result.InlineSize, Block: result.BlockSize}
}

// MeasureBlockAtInline returns the block size the node would take when
// laid out at the given inline size.
func (t *Tree) MeasureBlockAtInline(node NodeKey, inlineSize Fl) Fl {
	return t.measureBox(node, Definite(inlineSize), Indefinite).Block
}

// MeasureNaturalInline returns the inline size of the node when no
// constraint applies.
func (t *Tree) MeasureNaturalInline(node NodeKey) Fl {
	return t.measureBox(node, Indefinite, Indefinite).Inline
}

// MeasureAtSize measures the node inside a definite available size on
// both axes.
func (t *Tree) MeasureAtSize(node NodeKey, inlineSize, blockSize Fl) MeasuredSize {
	return t.measureBox(node, Definite(inlineSize), Definite(blockSize))
}
