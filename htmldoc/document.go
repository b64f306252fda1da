// Package htmldoc wraps golang.org/x/net/html parsing for skeleton
// extraction: document loading with charset detection, a small CSS selector
// query to resolve the user-chosen root element, and selector input
// validation.
package htmldoc

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Document is a parsed HTML document.
type Document struct {
	root *html.Node
}

// Parse reads and parses HTML text. Input is decoded to UTF-8 first,
// respecting BOMs and <meta charset> declarations; contentType may carry a
// charset hint from the transport and can be empty.
func Parse(r io.Reader, contentType string) (*Document, error) {
	cr, err := charset.NewReader(r, contentType)
	if err != nil {
		return nil, fmt.Errorf("unable to decode HTML text: %w", err)
	}
	root, err := html.Parse(cr)
	if err != nil {
		return nil, fmt.Errorf("unable to parse HTML: %w", err)
	}
	return &Document{root: root}, nil
}

// Root returns the document root element (usually <html>), or nil for a
// document with no element nodes.
func (d *Document) Root() *Element {
	for n := d.root; n != nil; {
		if n.Type == html.ElementNode {
			return &Element{node: n}
		}
		n = n.FirstChild
	}
	return nil
}
