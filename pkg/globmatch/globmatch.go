// Package globmatch tests glob patterns against a directory tree. It backs
// the command that helps authors check which repository files a pattern
// matches before committing to it.
package globmatch

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

// DefaultExcludedDirs are directory names skipped during the walk. They
// hold generated or vendored content that pattern authors never target.
var DefaultExcludedDirs = []string{
	".git", "node_modules", "__pycache__", ".venv", "venv", "vendor", "dist", "build",
}

// reducedExcludedDirs is the exclusion set used with IncludeHidden: build
// output directories become visible, only dependency and VCS internals
// stay skipped.
var reducedExcludedDirs = []string{".git", "node_modules", "__pycache__"}

// Matcher finds files under Root whose root-relative path matches Pattern.
type Matcher struct {
	Root          string
	Pattern       string
	Limit         int  // maximum matches to collect, 0 for unlimited
	IncludeHidden bool // keep dot-directories other than .git etc. in the walk
	ExcludedDirs  []string
}

// errLimitReached stops the walk early once enough matches are collected.
var errLimitReached = errors.New("match limit reached")

// Matches walks the tree and returns the sorted relative paths of matching
// files, capped at Limit when set.
func (m *Matcher) Matches() ([]string, error) {
	if !doublestar.ValidatePattern(m.Pattern) {
		return nil, errors.Errorf("invalid glob pattern: %s", m.Pattern)
	}

	excluded := m.ExcludedDirs
	if excluded == nil {
		if m.IncludeHidden {
			excluded = reducedExcludedDirs
		} else {
			excluded = DefaultExcludedDirs
		}
	}

	var matches []string
	err := filepath.WalkDir(m.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(m.Root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel == "." {
				return nil
			}
			name := d.Name()
			for _, ex := range excluded {
				if name == ex {
					return filepath.SkipDir
				}
			}
			if !m.IncludeHidden && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		ok, err := doublestar.Match(m.Pattern, rel)
		if err != nil {
			return errors.Wrap(err, "failed to match pattern")
		}
		if ok {
			matches = append(matches, rel)
			if m.Limit > 0 && len(matches) >= m.Limit {
				return errLimitReached
			}
		}
		return nil
	})
	if err != nil && !errors.Is(err, errLimitReached) {
		return nil, errors.Wrap(err, "failed to walk directory")
	}

	sort.Strings(matches)
	return matches, nil
}

// ScopeHint classifies how many files a pattern covers, to help authors
// judge whether the pattern is too narrow or too broad.
func ScopeHint(n int) string {
	switch {
	case n < 10:
		return "Scope: small - consider global instructions or inline comments"
	case n <= 500:
		return "Scope: good - this is a good candidate for path-specific instructions"
	default:
		return "Scope: large - consider splitting into more specific patterns"
	}
}
