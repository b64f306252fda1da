// Package scan discovers candidate HTML files in a project tree.
package scan

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/zap"

	"flatcss/config"
)

// Scanner walks a directory tree collecting files with configured extensions,
// pruning dependency-manager directories and capping the result count so a
// pathological tree cannot stall the picker.
type Scanner struct {
	cfg config.ScanConfig
	log *zap.Logger
}

// NewScanner creates a scanner over the given configuration.
func NewScanner(cfg config.ScanConfig, log *zap.Logger) *Scanner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scanner{cfg: cfg, log: log.Named("scanner")}
}

// Candidates returns candidate file paths under root in natural sort order
// ("page2.html" before "page10.html"). Symbolic links to directories are not
// followed. An empty result is not an error - the caller decides how to
// report it.
func (s *Scanner) Candidates(root string) ([]string, error) {
	exclude := make(map[string]struct{}, len(s.cfg.ExcludeDirs))
	for _, d := range s.cfg.ExcludeDirs {
		exclude[d] = struct{}{}
	}

	var candidates []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// unreadable subtree is skipped, not fatal
			s.log.Debug("Skipping unreadable path", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if _, drop := exclude[d.Name()]; drop && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !s.wantFile(d.Name()) {
			return nil
		}
		candidates = append(candidates, path)
		if len(candidates) >= s.cfg.MaxCandidates {
			s.log.Debug("Candidate cap reached", zap.Int("cap", s.cfg.MaxCandidates))
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to scan %q: %w", root, err)
	}

	sort.Slice(candidates, func(i, j int) bool {
		return natural.Less(candidates[i], candidates[j])
	})

	s.log.Debug("Scan finished", zap.String("root", root), zap.Int("candidates", len(candidates)))
	return candidates, nil
}

func (s *Scanner) wantFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range s.cfg.Extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}
