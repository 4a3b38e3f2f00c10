package workspace

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEnvFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     bool
	}{
		{"exact .env", ".env", true},
		{".env.local", ".env.local", true},
		{".env.production", ".env.production", true},
		{".env.example", ".env.example", true},
		{"not .env", "env", false},
		{"random file", "config.yaml", false},
		{"just prefix", ".env.", false},
		{"single char suffix", ".env.a", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEnvFilename(tt.filename))
		})
	}
}

func childNames(n *EnvTreeNode) []string {
	names := make([]string, 0, len(n.Children))
	for _, ch := range n.Children {
		names = append(names, ch.Name)
	}
	return names
}

func TestBuildEnvTree(t *testing.T) {
	t.Run("single file", func(t *testing.T) {
		root := BuildEnvTree([]string{".env"})
		assert.Equal(t, ".", root.Name)
		require.Len(t, root.Children, 1)
		assert.Equal(t, ".env", root.Children[0].Name)
		assert.Equal(t, ".env", root.Children[0].File)
	})

	t.Run("nested files share directories", func(t *testing.T) {
		root := BuildEnvTree([]string{"packages/app/.env", "packages/api/.env"})
		require.Equal(t, []string{"packages"}, childNames(root))
		assert.Equal(t, []string{"api", "app"}, childNames(root.Children[0]))
	})

	t.Run("files before directories", func(t *testing.T) {
		root := BuildEnvTree([]string{"packages/app/.env", ".env"})
		assert.Equal(t, []string{".env", "packages"}, childNames(root))
	})

	t.Run("empty paths", func(t *testing.T) {
		assert.Empty(t, BuildEnvTree(nil).Children)
	})
}

func TestSortEnvTree(t *testing.T) {
	root := &EnvTreeNode{Name: ".", Children: []*EnvTreeNode{
		{Name: "z", File: "z"},
		{Name: "a", File: ""},
		{Name: "b", File: "b"},
	}}

	SortEnvTree(root)
	assert.Equal(t, []string{"b", "z", "a"}, childNames(root))
}

func TestPrintEnvTree(t *testing.T) {
	root := BuildEnvTree([]string{".env", "apps/web/.env.example", "apps/api/.env"})

	var buf bytes.Buffer
	PrintEnvTree(&buf, root, func(n *EnvTreeNode) string {
		if IsTemplate(n.Name) {
			return n.Name + " (template)"
		}
		return n.Name
	})

	want := "├─ .env\n" +
		"└─ apps\n" +
		"   ├─ api\n" +
		"   │  └─ .env\n" +
		"   └─ web\n" +
		"      └─ .env.example (template)\n"
	assert.Equal(t, want, buf.String())
}
