package htmldoc

import (
	"golang.org/x/net/html"

	"flatcss/skeleton"
)

// Element adapts *html.Node to the skeleton.Element capability interface.
type Element struct {
	node *html.Node
}

var _ skeleton.Element = (*Element)(nil)

// TagName returns the element tag name. x/net/html lowercases tag names
// during parsing.
func (e *Element) TagName() string {
	return e.node.Data
}

// Attr returns the value of the named attribute, empty string when absent.
func (e *Element) Attr(name string) string {
	for _, a := range e.node.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// Children returns child element nodes in document order, skipping text,
// comment and other non-element nodes.
func (e *Element) Children() []skeleton.Element {
	var out []skeleton.Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, &Element{node: c})
		}
	}
	return out
}

// Node exposes the underlying parser node for debug dumps.
func (e *Element) Node() *html.Node {
	return e.node
}
