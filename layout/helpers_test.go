package layout

import (
	"testing"

	"github.com/benoitkugler/layoutng/style"
	"github.com/benoitkugler/layoutng/text"
)

// newTestTree returns a tree laying out against an 800x600 viewport,
// measured by the deterministic fake.
func newTestTree() *Tree { return NewTree(800, 600, text.FakeMeasurer{}) }

// el registers an element node with its style and children.
func el(tr *Tree, key NodeKey, st *style.ComputedStyle, children ...NodeKey) {
	tr.Styles[key] = st
	tr.Children[key] = children
}

func resultOf(t *testing.T, tr *Tree, key NodeKey) Result {
	t.Helper()
	res, ok := tr.Results[key]
	if !ok {
		t.Fatalf("missing result for node %d", key)
	}
	return res
}

func blockOffset(t *testing.T, tr *Tree, key NodeKey) Fl {
	t.Helper()
	res := resultOf(t, tr, key)
	if !res.BfcOffset.IsResolved() {
		t.Fatalf("unresolved block offset for node %d", key)
	}
	return *res.BfcOffset.Block
}
