package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MarkerFiles identify a workspace root, in priority order within one
// directory.
var MarkerFiles = []string{
	".envdoc.yaml",
	"pnpm-workspace.yaml",
	"turbo.json",
	"lerna.json",
	"go.work",
	"settings.gradle",
	"settings.gradle.kts",
	"go.mod",
	"package.json",
	".git",
}

type Workspace struct {
	Root   string
	Marker string
}

// Detect resolves the workspace containing dir. Without any marker up the
// tree, dir itself is the root and Marker is empty.
func Detect(dir string) (*Workspace, error) {
	root, err := FindRoot(dir)
	if err != nil {
		return nil, err
	}
	return &Workspace{Root: root, Marker: FindMarker(root)}, nil
}

func (w *Workspace) IsMarked() bool {
	return w.Marker != ""
}

func (w *Workspace) String() string {
	return fmt.Sprintf("%s (%s)", w.Root, FormatMarkerForDisplay(w.Marker))
}

// Rel returns path relative to the workspace root, or path unchanged when it
// lies outside.
func (w *Workspace) Rel(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(w.Root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.ToSlash(rel)
}

func FindRoot(dir string) (string, error) {
	original, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	for dir = original; ; {
		if FindMarker(dir) != "" {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return original, nil
		}
		dir = parent
	}
}

func FindMarker(root string) string {
	for _, marker := range MarkerFiles {
		if _, err := os.Stat(filepath.Join(root, marker)); err == nil {
			return marker
		}
	}
	return ""
}

func FormatMarkerForDisplay(marker string) string {
	switch marker {
	case "":
		return "no workspace marker"
	case ".git":
		return "git repository"
	case ".envdoc.yaml":
		return "envdoc config"
	default:
		return marker
	}
}
