package skeleton

import (
	"regexp"
	"strings"
)

// IgnoreList decides which class names are excluded from selector derivation.
// Patterns are glob-style: "*" matches any substring (including empty one),
// everything else is matched literally, anchored at both ends and
// case-sensitive. A leading "." is stripped, so ".br_*" and "br_*" are
// equivalent. Compile once per operation and pass around as a value - there
// is no ambient pattern state.
type IgnoreList []*regexp.Regexp

// CompileIgnoreList precompiles glob patterns. It is total: every regexp
// metacharacter except our own "*" is quoted, so any input compiles.
func CompileIgnoreList(patterns []string) IgnoreList {
	list := make(IgnoreList, 0, len(patterns))
	for _, pattern := range patterns {
		pattern = strings.TrimPrefix(pattern, ".")
		parts := strings.Split(pattern, "*")
		for i, part := range parts {
			parts[i] = regexp.QuoteMeta(part)
		}
		list = append(list, regexp.MustCompile("^"+strings.Join(parts, ".*")+"$"))
	}
	return list
}

// Match reports whether class matches any pattern in the list.
func (l IgnoreList) Match(class string) bool {
	for _, re := range l {
		if re.MatchString(class) {
			return true
		}
	}
	return false
}
