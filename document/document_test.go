package document

import (
	"strings"
	"testing"

	"github.com/benoitkugler/layoutng/layout"
	"github.com/benoitkugler/layoutng/style"
	"github.com/benoitkugler/layoutng/text"
	tu "github.com/benoitkugler/layoutng/utils/testutils"
)

const sampleDocument = `<html><head><title>t</title><script>var x;</script></head><body><div style="width:300px;height:50px;margin:10px 20px">hello</div><span style="float:left"></span><input type="checkbox"></body></html>`

func TestLoadDocument(t *testing.T) {
	tree, root, err := Load(strings.NewReader(sampleDocument), 800, 600, text.FakeMeasurer{})
	if err != nil {
		t.Fatal(err)
	}

	// keys follow document order, head content contributes none
	tu.AssertEqual(t, root, layout.NodeKey(0))
	tu.AssertEqual(t, tree.Tags[0], "body")
	tu.AssertEqual(t, tree.Tags[1], "div")
	tu.AssertEqual(t, tree.TextNodes[2], "hello")
	tu.AssertEqual(t, tree.Tags[3], "span")
	tu.AssertEqual(t, tree.Tags[4], "input")
	tu.AssertEqual(t, tree.Children[0], []layout.NodeKey{1, 3, 4})
	tu.AssertEqual(t, tree.Children[1], []layout.NodeKey{2})

	div := tree.Styles[1]
	tu.AssertEqual(t, div.Width, style.Dim(300))
	tu.AssertEqual(t, div.Height, style.Dim(50))
	tu.AssertEqual(t, div.MarginTop, style.Dim(10))
	tu.AssertEqual(t, div.MarginRight, style.Dim(20))
	tu.AssertEqual(t, div.MarginBottom, style.Dim(10))
	tu.AssertEqual(t, div.MarginLeft, style.Dim(20))

	tu.AssertEqual(t, tree.Styles[3].Float, style.FloatLeft)
	tu.AssertEqual(t, tree.Attrs[4]["type"], "checkbox")

	res := tree.LayoutRoot(root)
	tu.AssertEqual(t, res.InlineSize, layout.Fl(800))
	divRes := tree.Results[1]
	tu.AssertEqual(t, divRes.InlineSize, layout.Fl(300))
	tu.AssertEqual(t, divRes.BfcOffset.Inline, layout.Fl(20))
	tu.AssertEqual(t, *divRes.BfcOffset.Block, layout.Fl(10))
}

func TestInlineStyleParsing(t *testing.T) {
	st := style.Default()
	parseInlineStyle(st, "display:flex; padding: 1px 2px 3px; line-height: 1.5; font-size: 20px; width; gap: 4px 6px")

	tu.AssertEqual(t, st.Display, style.DisplayFlex)
	tu.AssertEqual(t, st.PaddingTop, style.Dim(1))
	tu.AssertEqual(t, st.PaddingRight, style.Dim(2))
	tu.AssertEqual(t, st.PaddingBottom, style.Dim(3))
	tu.AssertEqual(t, st.PaddingLeft, style.Dim(2))
	// a bare number is a multiple of the font size
	tu.AssertEqual(t, st.LineHeight, style.Percent(150))
	tu.AssertEqual(t, st.LineHeightPx(), layout.Fl(30))
	// the malformed width declaration is ignored
	tu.AssertEqual(t, st.Width.IsAuto(), true)
	tu.AssertEqual(t, st.RowGap, layout.Fl(4))
	tu.AssertEqual(t, st.ColumnGap, layout.Fl(6))
}

func TestDefaultDisplayPerTag(t *testing.T) {
	tu.AssertEqual(t, defaultStyleForTag("div").Display, style.DisplayBlock)
	tu.AssertEqual(t, defaultStyleForTag("span").Display, style.DisplayInline)
	tu.AssertEqual(t, defaultStyleForTag("p").Display, style.DisplayBlock)
}

func TestGridDeclarations(t *testing.T) {
	st := style.Default()
	parseInlineStyle(st, "display:grid; grid-template-columns: 100px 1fr; grid-row: 2 / 4; grid-column: 1")

	tu.AssertEqual(t, st.Display, style.DisplayGrid)
	tu.AssertEqual(t, st.GridTemplateColumns, "100px 1fr")
	tu.AssertEqual(t, st.GridRowStart, 2)
	tu.AssertEqual(t, st.GridRowEnd, 4)
	tu.AssertEqual(t, st.GridColumnStart, 1)
	tu.AssertEqual(t, st.GridColumnEnd, 0)
}
