package skeleton

import (
	"fmt"
	"io"
	"strings"
)

// Skeleton is an ordered list of empty CSS rule blocks, one "selector {}"
// string per line, no duplicates.
type Skeleton struct {
	Lines []string
}

// Empty reports whether the skeleton has no rules at all.
func (s *Skeleton) Empty() bool {
	return len(s.Lines) == 0
}

// WriteTo writes the skeleton to w one rule per line, implementing
// io.WriterTo.
func (s *Skeleton) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, line := range s.Lines {
		n, err := fmt.Fprintln(w, line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the skeleton as newline-joined text.
func (s *Skeleton) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}
