package layout

import (
	"testing"

	tu "github.com/benoitkugler/layoutng/utils/testutils"
)

func TestLayoutUnitRounding(t *testing.T) {
	u := FromPx(8.328125) // exactly 533/64
	tu.AssertEqual(t, u.Raw(), int32(533))
	tu.AssertEqual(t, u.Px(), Fl(8.328125))

	tu.AssertEqual(t, FromPx(-8.328125).Raw(), int32(-533))

	// half units round away from zero
	tu.AssertEqual(t, FromPx(0.0078125).Raw(), int32(1)) // 0.5/64
	tu.AssertEqual(t, FromPx(-0.0078125).Raw(), int32(-1))
}

func TestQuantize(t *testing.T) {
	tu.AssertEqual(t, Quantize(233.33333), Fl(233.328125))
	tu.AssertEqual(t, Quantize(100), Fl(100))
	tu.AssertEqual(t, Quantize(0), Fl(0))
}

func TestMarginStrut(t *testing.T) {
	var strut MarginStrut
	tu.AssertEqual(t, strut.IsEmpty(), true)
	tu.AssertEqual(t, strut.Collapse(), Fl(0))

	strut.Append(10)
	strut.Append(20)
	strut.Append(-5)
	strut.Append(-15)
	tu.AssertEqual(t, strut.Collapse(), Fl(5)) // max(10,20) + min(-5,-15)

	// a strut holding only zero margins is not empty
	var zero MarginStrut
	zero.Append(0)
	tu.AssertEqual(t, zero.IsEmpty(), false)
	tu.AssertEqual(t, zero.Collapse(), Fl(0))
}
