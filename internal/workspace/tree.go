package workspace

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
)

type EnvTreeNode struct {
	Name     string
	Children []*EnvTreeNode
	File     string // relative path for files, empty for directories
}

func BuildEnvTree(paths []string) *EnvTreeNode {
	root := &EnvTreeNode{Name: "."}

	for _, p := range paths {
		parts := strings.Split(filepath.ToSlash(p), "/")
		cur := root
		for i, part := range parts {
			if i == len(parts)-1 {
				cur.Children = append(cur.Children, &EnvTreeNode{Name: part, File: p})
				break
			}
			cur = cur.dir(part)
		}
	}

	SortEnvTree(root)
	return root
}

func (n *EnvTreeNode) dir(name string) *EnvTreeNode {
	for _, ch := range n.Children {
		if ch.Name == name && ch.File == "" {
			return ch
		}
	}
	next := &EnvTreeNode{Name: name}
	n.Children = append(n.Children, next)
	return next
}

// SortEnvTree orders files before directories, each alphabetically.
func SortEnvTree(node *EnvTreeNode) {
	sort.Slice(node.Children, func(i, j int) bool {
		ci, cj := node.Children[i], node.Children[j]
		fileI, fileJ := ci.File != "", cj.File != ""
		if fileI != fileJ {
			return fileI
		}
		return ci.Name < cj.Name
	})

	for _, ch := range node.Children {
		SortEnvTree(ch)
	}
}

// PrintEnvTree writes the tree with box-drawing connectors. label, when not
// nil, decorates file names.
func PrintEnvTree(w io.Writer, node *EnvTreeNode, label func(*EnvTreeNode) string) {
	printNode(w, node, "", true, label)
}

func printNode(w io.Writer, node *EnvTreeNode, prefix string, last bool, label func(*EnvTreeNode) string) {
	childPrefix := prefix
	if node.Name != "." {
		conn, pad := "├─ ", "│  "
		if last {
			conn, pad = "└─ ", "   "
		}
		name := node.Name
		if node.File != "" && label != nil {
			name = label(node)
		}
		fmt.Fprintln(w, prefix+conn+name)
		childPrefix += pad
	}

	for i, ch := range node.Children {
		printNode(w, ch, childPrefix, i == len(node.Children)-1, label)
	}
}
