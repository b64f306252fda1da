package htmldoc

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// QueryFirst resolves a CSS selector to the first matching element in
// document order. Supported subset: tag, ".class", "#id", "tag.class",
// "tag#id", "tag[attr]", "tag[attr=val]" and combinations separated by
// spaces (descendant combinator). Returns an error naming the selector when
// nothing matches.
func (d *Document) QueryFirst(selector string) (*Element, error) {
	parts := strings.Fields(strings.TrimSpace(selector))
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty selector")
	}
	sels := make([]simpleSelector, len(parts))
	for i, p := range parts {
		sels[i] = parseSimpleSelector(p)
	}

	var found *html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if matchesChain(n, sels) {
			found = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)

	if found == nil {
		return nil, fmt.Errorf("no element matches selector %q", selector)
	}
	return &Element{node: found}, nil
}

type simpleSelector struct {
	tag     string
	id      string
	class   string
	attrKey string
	attrVal string
}

// parseSimpleSelector parses "tag.class", "#id", "tag[attr=val]", etc.
func parseSimpleSelector(sel string) simpleSelector {
	var s simpleSelector

	if idx := strings.IndexByte(sel, '['); idx >= 0 {
		attrPart := strings.TrimRight(sel[idx+1:], "]")
		sel = sel[:idx]
		if eqIdx := strings.IndexByte(attrPart, '='); eqIdx >= 0 {
			s.attrKey = attrPart[:eqIdx]
			s.attrVal = strings.Trim(attrPart[eqIdx+1:], `"'`)
		} else {
			s.attrKey = attrPart
		}
	}

	if idx := strings.IndexByte(sel, '#'); idx >= 0 {
		s.id = sel[idx+1:]
		sel = sel[:idx]
	}

	if idx := strings.IndexByte(sel, '.'); idx >= 0 {
		s.class = sel[idx+1:]
		sel = sel[:idx]
	}

	s.tag = sel
	return s
}

// matchesChain checks the rightmost selector against n itself and the
// remaining selectors right to left against n's ancestors.
func matchesChain(n *html.Node, sels []simpleSelector) bool {
	if !matchesSelector(n, sels[len(sels)-1]) {
		return false
	}
	i := len(sels) - 2
	for a := n.Parent; a != nil && i >= 0; a = a.Parent {
		if matchesSelector(a, sels[i]) {
			i--
		}
	}
	return i < 0
}

// matchesSelector checks if a node matches a parsed simple selector.
func matchesSelector(n *html.Node, s simpleSelector) bool {
	if n.Type != html.ElementNode {
		return false
	}

	if s.tag != "" && n.Data != s.tag {
		return false
	}

	if s.id != "" && getAttr(n, "id") != s.id {
		return false
	}

	if s.class != "" {
		found := false
		for _, c := range strings.Fields(getAttr(n, "class")) {
			if c == s.class {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if s.attrKey != "" {
		if s.attrVal != "" {
			if getAttr(n, s.attrKey) != s.attrVal {
				return false
			}
		} else if !hasAttr(n, s.attrKey) {
			return false
		}
	}

	return true
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return true
		}
	}
	return false
}
