package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xmazu/envdoc/internal/scanner"
)

var DefaultExcludeDirs = []string{
	".git",
	"node_modules",
	"vendor",
	".cache",
	".turbo",
	".next",
}

// templateSuffixes mark committed env templates, which are usually the
// best-annotated files in a repository.
var templateSuffixes = []string{".example", ".sample", ".template", ".dist"}

// ListEnvFiles returns the absolute paths of env files under root, sorted.
// A nil filter keeps every env file outside DefaultExcludeDirs.
func ListEnvFiles(root string, filter *scanner.Filter) ([]string, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("get absolute path: %w", err)
	}

	excludeSet := make(map[string]bool)
	for _, d := range DefaultExcludeDirs {
		excludeSet[d] = true
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel == "." {
				return nil
			}
			if excludeSet[d.Name()] || filter.SkipDir(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if IsEnvFilename(d.Name()) && filter.Keep(rel) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// IsEnvFilename accepts .env and .env.<name>, including templates such as
// .env.example.
func IsEnvFilename(name string) bool {
	if name == ".env" {
		return true
	}
	return strings.HasPrefix(name, ".env.") && len(name) > len(".env.")
}

func IsTemplate(name string) bool {
	for _, s := range templateSuffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}
