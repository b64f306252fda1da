// Package skeleton derives an empty "skeleton" stylesheet from the class/id
// structure of an HTML subtree: one deduplicated, document-ordered rule block
// per distinct selector path.
package skeleton

import (
	"strings"

	"go.uber.org/zap"
)

// Flattener walks a subtree and produces the ordered, deduplicated list of
// empty rule blocks. One Flatten call is fully independent - concurrent calls
// over different subtrees are safe as long as the ignore list is not mutated.
type Flattener struct {
	log    *zap.Logger
	ignore IgnoreList

	// EmitIntermediate controls whether non-leaf elements with a token produce
	// their own rule or only leaf-level selectors are emitted.
	EmitIntermediate bool
}

// NewFlattener creates a flattener over the given ignore list.
func NewFlattener(ignore IgnoreList, log *zap.Logger) *Flattener {
	if log == nil {
		log = zap.NewNop()
	}
	return &Flattener{
		log:              log.Named("flattener"),
		ignore:           ignore,
		EmitIntermediate: true,
	}
}

// frame is one unit of traversal work. path holds selector tokens from (but
// excluding) the root down to the parent of el.
type frame struct {
	el   Element
	path []string
	root bool
}

// Flatten produces the skeleton for the subtree rooted at root. prefix is the
// caller-supplied context selector prepended to every derived path; when it is
// non-empty a synthetic "<prefix> {}" line always opens the result. Total over
// well-formed trees: elements without a usable class or id are transparent and
// never fail the walk.
func (f *Flattener) Flatten(root Element, prefix string) *Skeleton {
	prefix = strings.TrimSpace(prefix)
	sk := &Skeleton{}
	seen := make(map[string]struct{})
	visited := 0

	// Iterative pre-order walk with an explicit stack: no recursion depth
	// limits, children pushed in reverse so pop order is document order.
	var stack []frame
	if root != nil {
		stack = append(stack, frame{el: root, root: true})
	}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visited++

		token, ok := TokenFor(fr.el, f.ignore)

		// The root never contributes to its own path and tokenless elements
		// pass their path through unchanged.
		path := fr.path
		if !fr.root && ok {
			path = append(fr.path[:len(fr.path):len(fr.path)], token)
		}

		children := fr.el.Children()
		if !fr.root && ok && (f.EmitIntermediate || len(children) == 0) {
			full := strings.Join(path, " ")
			if prefix != "" {
				full = prefix + " " + full
			}
			if _, dup := seen[full]; !dup {
				seen[full] = struct{}{}
				sk.Lines = append(sk.Lines, full+" {}")
			}
		}

		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{el: children[i], path: path})
		}
	}

	if prefix != "" {
		if _, dup := seen[prefix]; !dup {
			sk.Lines = append([]string{prefix + " {}"}, sk.Lines...)
		}
	}

	f.log.Debug("Flattened subtree",
		zap.String("prefix", prefix),
		zap.Int("elements", visited),
		zap.Int("rules", len(sk.Lines)))
	return sk
}
