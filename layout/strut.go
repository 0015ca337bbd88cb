package layout

import "github.com/benoitkugler/layoutng/utils"

// MarginStrut accumulates adjoining vertical margins until they can be
// collapsed: positive margins collapse to their maximum, negative ones
// to their minimum, and the collapsed value is the sum of the two
// (CSS 2.1, section 8.3.1).
type MarginStrut struct {
	positive Fl
	negative Fl
	nonEmpty bool
}

// Append adds one more adjoining margin.
func (s *MarginStrut) Append(margin Fl) {
	if margin >= 0 {
		s.positive = utils.MaxF(s.positive, margin)
	} else {
		s.negative = utils.MinF(s.negative, margin)
	}
	s.nonEmpty = true
}

// Collapse returns the collapsed value of the accumulated margins.
func (s MarginStrut) Collapse() Fl { return s.positive + s.negative }

// IsEmpty reports whether no margin has been appended yet. A strut
// holding only zero margins is not empty.
func (s MarginStrut) IsEmpty() bool { return !s.nonEmpty }
