package layout

import (
	"strings"

	"github.com/benoitkugler/layoutng/style"
	"github.com/benoitkugler/layoutng/utils"
)

// intrinsic size of checkbox and radio inputs, in px
const formControlSize = 13

func pxOr(d style.Dimension) (Fl, bool) {
	if d.Unit == style.Px {
		return d.Value, true
	}
	return 0, false
}

// applyWidthConstraints clamps a border box inline size by the px
// min/max width properties, min winning over max.
func applyWidthConstraints(st *style.ComputedStyle, borderBox Fl) Fl {
	if max, ok := pxOr(st.MaxWidth); ok {
		borderBox = utils.MinF(borderBox, max)
	}
	if min, ok := pxOr(st.MinWidth); ok {
		borderBox = utils.MaxF(borderBox, min)
	}
	return borderBox
}

// applyHeightConstraints clamps a border box block size by the px
// min/max height properties, min winning over max.
func applyHeightConstraints(st *style.ComputedStyle, borderBox Fl) Fl {
	if max, ok := pxOr(st.MaxHeight); ok {
		borderBox = utils.MinF(borderBox, max)
	}
	if min, ok := pxOr(st.MinHeight); ok {
		borderBox = utils.MaxF(borderBox, min)
	}
	return borderBox
}

// usedHeight returns the used value of the height property, in the box
// declared by box-sizing, when it is definite. Percentages need a
// resolution basis from the space.
func usedHeight(st *style.ComputedStyle, space *ConstraintSpace) (Fl, bool) {
	switch st.Height.Unit {
	case style.Px:
		return st.Height.Value, true
	case style.Percentage:
		if space.PercentageResolutionBlockSize != nil {
			return st.Height.Value / 100 * *space.PercentageResolutionBlockSize, true
		}
	}
	return 0, false
}

func (t *Tree) isCheckboxOrRadio(node NodeKey) bool {
	if !strings.EqualFold(t.Tags[node], "input") {
		return false
	}
	kind := t.Attrs[node]["type"]
	return strings.EqualFold(kind, "checkbox") || strings.EqualFold(kind, "radio")
}

func (t *Tree) formControlIntrinsicWidth(node NodeKey) (Fl, bool) {
	if t.isCheckboxOrRadio(node) {
		return formControlSize, true
	}
	return 0, false
}

func (t *Tree) formControlIntrinsicHeight(node NodeKey) (Fl, bool) {
	if t.isCheckboxOrRadio(node) {
		return formControlSize, true
	}
	return 0, false
}

// computeInlineSize resolves the content box inline size of a block:
// explicit widths are converted through box-sizing, auto widths fill
// the containing block minus margins and edges, and the px min/max
// constraints apply in border box space.
func (t *Tree) computeInlineSize(node NodeKey, st *style.ComputedStyle, sides style.BoxSides, space *ConstraintSpace) Fl {
	containing := space.AvailableInlineSize.Resolve(t.icbWidth)

	var content Fl
	if st.Width.IsAuto() {
		if w, ok := t.formControlIntrinsicWidth(node); ok {
			content = w
		} else {
			content = utils.MaxF(0, containing-sides.HorizontalMargins()-sides.HorizontalEdges())
		}
	} else {
		w := st.Width.Resolve(containing)
		if st.BoxSizing == style.BorderBox {
			w -= sides.HorizontalEdges()
		}
		content = w
	}

	borderBox := applyWidthConstraints(st, content+sides.HorizontalEdges())
	return utils.MaxF(0, borderBox-sides.HorizontalEdges())
}
