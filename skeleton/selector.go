package skeleton

import "strings"

// Tags that never produce a selector of their own. Their children are still
// visited and may still qualify.
var suppressedTags = map[string]struct{}{
	"script": {},
	"style":  {},
	"br":     {},
}

// TokenFor maps one element to at most one selector token (".class" or
// "#id"). The first class that does not match the ignore list wins, in
// original attribute order; id is used only when no usable class exists.
// Returns ok=false for suppressed tags and for elements with no usable
// identity.
func TokenFor(e Element, ignore IgnoreList) (token string, ok bool) {
	tag := strings.ToLower(strings.TrimSpace(e.TagName()))
	if _, drop := suppressedTags[tag]; drop {
		return "", false
	}
	for _, class := range strings.Fields(strings.TrimSpace(e.Attr("class"))) {
		if ignore.Match(class) {
			continue
		}
		return "." + class, true
	}
	if id := strings.TrimSpace(e.Attr("id")); id != "" {
		return "#" + id, true
	}
	return "", false
}
