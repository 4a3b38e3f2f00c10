package scanner

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter decides which directories are walked and which env files are kept
// during discovery. Include and exclude are doublestar globs relative to the
// workspace root.
type Filter struct {
	ignore  *IgnoreMatcher
	include []string
	exclude []string
}

func NewFilter(root string, include, exclude []string) (*Filter, error) {
	for _, p := range append(append([]string{}, include...), exclude...) {
		if _, err := doublestar.Match(filepath.ToSlash(p), ""); err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", p, err)
		}
	}

	ignore, err := LoadGitignore(root)
	if err != nil {
		return nil, fmt.Errorf("load .gitignore: %w", err)
	}

	return &Filter{ignore: ignore, include: include, exclude: exclude}, nil
}

// SkipDir reports whether a directory is ignored by .gitignore or excluded.
func (f *Filter) SkipDir(relPath string) bool {
	if f == nil {
		return false
	}
	return f.ignore.ShouldIgnore(relPath, true) || MatchAny(f.exclude, relPath)
}

// Keep reports whether a file is documented. .gitignore is not consulted
// for files: .env itself is usually ignored.
func (f *Filter) Keep(relPath string) bool {
	if f == nil {
		return true
	}
	if MatchAny(f.exclude, relPath) {
		return false
	}
	return len(f.include) == 0 || MatchAny(f.include, relPath)
}

func MatchAny(patterns []string, relPath string) bool {
	relPath = filepath.ToSlash(relPath)
	for _, p := range patterns {
		if p == "" {
			continue
		}
		if matchPath(filepath.ToSlash(p), relPath) {
			return true
		}
	}
	return false
}
