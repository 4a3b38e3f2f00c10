package scanner

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

type ignoreRule struct {
	pattern string // doublestar syntax, forward slashes
	dirOnly bool   // trailing slash
	anchor  bool   // leading slash: root only
}

// IgnoreMatcher applies the rules of a workspace .gitignore. Negations are
// not supported.
type IgnoreMatcher struct {
	rules []ignoreRule
}

func parseIgnoreFile(path string) ([]ignoreRule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var rules []ignoreRule
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}

		rule := ignoreRule{}
		line, rule.dirOnly = strings.CutSuffix(line, "/")
		line, rule.anchor = strings.CutPrefix(line, "/")
		if line == "" {
			continue
		}
		rule.pattern = filepath.ToSlash(line)
		rules = append(rules, rule)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return rules, nil
}

// LoadGitignore returns nil when root has no .gitignore or it holds no rules.
func LoadGitignore(root string) (*IgnoreMatcher, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", absRoot)
	}

	path := filepath.Join(absRoot, ".gitignore")
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat .gitignore: %w", err)
	}

	rules, err := parseIgnoreFile(path)
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return nil, nil
	}
	return &IgnoreMatcher{rules: rules}, nil
}

func (m *IgnoreMatcher) ShouldIgnore(relPath string, isDir bool) bool {
	if m == nil {
		return false
	}

	relPath = strings.TrimPrefix(filepath.ToSlash(relPath), "/")

	for _, r := range m.rules {
		if r.anchor {
			if relPath == r.pattern || strings.HasPrefix(relPath, r.pattern+"/") {
				return true
			}
			continue
		}

		if r.dirOnly && !isDir {
			under := strings.TrimPrefix(r.pattern, "**/")
			if under != "" && (strings.Contains(relPath, "/"+under+"/") || strings.HasPrefix(relPath, under+"/")) {
				return true
			}
			continue
		}

		if matchPath(r.pattern, relPath) {
			return true
		}
		if r.dirOnly && isDir && strings.HasPrefix(relPath, r.pattern+"/") {
			return true
		}
	}

	return false
}

// matchPath matches a pattern against the full relative path, and against
// the base name when the pattern has no slash, like git does.
func matchPath(pattern, relPath string) bool {
	if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
		return true
	}
	if !strings.Contains(pattern, "/") {
		ok, err := doublestar.Match(pattern, pathBase(relPath))
		return err == nil && ok
	}
	return false
}

func pathBase(relPath string) string {
	if i := strings.LastIndex(relPath, "/"); i >= 0 {
		return relPath[i+1:]
	}
	return relPath
}
