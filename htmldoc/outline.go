package htmldoc

import (
	"strings"
)

// Outline renders an indented text outline of an element subtree for debug
// reports: one line per element with its tag, classes and id. Iterative for
// the same reason the flattener is - depth must not matter.
func Outline(root *Element) string {
	if root == nil {
		return ""
	}

	type frame struct {
		el    *Element
		depth int
	}

	var sb strings.Builder
	stack := []frame{{el: root}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for range fr.depth {
			sb.WriteString("  ")
		}
		sb.WriteString(fr.el.TagName())
		for _, class := range strings.Fields(fr.el.Attr("class")) {
			sb.WriteString(" .")
			sb.WriteString(class)
		}
		if id := fr.el.Attr("id"); id != "" {
			sb.WriteString(" #")
			sb.WriteString(id)
		}
		sb.WriteByte('\n')

		kids := fr.el.Children()
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, frame{el: kids[i].(*Element), depth: fr.depth + 1})
		}
	}
	return sb.String()
}
