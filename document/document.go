// Package document loads an HTML document into a layout tree: it
// parses the markup, assigns node keys in document order and resolves a
// minimal computed style for every element from tag defaults plus the
// inline style attribute. A full cascade is out of scope, callers
// needing one populate the tree maps themselves.
package document

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"github.com/benoitkugler/layoutng/layout"
	"github.com/benoitkugler/layoutng/logger"
	"github.com/benoitkugler/layoutng/text"
	"github.com/benoitkugler/layoutng/utils"
)

type Fl = utils.Fl

// Load parses an HTML document and builds the layout tree for its
// body, returning the tree and the body's node key.
func Load(r io.Reader, icbWidth, icbHeight Fl, measurer text.TextMeasurer) (*layout.Tree, layout.NodeKey, error) {
	input, err := charset.NewReader(r, "")
	if err != nil {
		return nil, 0, fmt.Errorf("detecting charset: %w", err)
	}
	root, err := html.ParseWithOptions(input, html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, 0, fmt.Errorf("parsing html: %w", err)
	}

	body := findBody(root)
	if body == nil {
		return nil, 0, fmt.Errorf("document has no body element")
	}

	ld := loader{tree: layout.NewTree(icbWidth, icbHeight, measurer)}
	rootKey := ld.addElement(body)
	logger.ProgressLogger.Printf("loaded document: %d nodes", int(ld.next))
	return ld.tree, rootKey, nil
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if body := findBody(c); body != nil {
			return body
		}
	}
	return nil
}

// elements never contributing boxes
var skippedTags = utils.NewSet("head", "script", "style", "title", "meta", "link", "template")

type loader struct {
	tree *layout.Tree
	next layout.NodeKey
}

func (l *loader) newKey() layout.NodeKey {
	key := l.next
	l.next++
	return key
}

func (l *loader) addElement(n *html.Node) layout.NodeKey {
	key := l.newKey()
	l.tree.Tags[key] = n.Data

	if len(n.Attr) != 0 {
		attrs := make(map[string]string, len(n.Attr))
		for _, a := range n.Attr {
			attrs[a.Key] = a.Val
		}
		l.tree.Attrs[key] = attrs
	}

	st := defaultStyleForTag(n.Data)
	if declarations := l.tree.Attrs[key]["style"]; declarations != "" {
		parseInlineStyle(st, declarations)
	}
	l.tree.Styles[key] = st

	var children []layout.NodeKey
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			child := l.newKey()
			l.tree.TextNodes[child] = c.Data
			children = append(children, child)
		case html.ElementNode:
			if skippedTags.Has(c.Data) {
				continue
			}
			children = append(children, l.addElement(c))
		}
	}
	l.tree.Children[key] = children
	return key
}
