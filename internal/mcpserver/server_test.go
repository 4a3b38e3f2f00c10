package mcpserver

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xmazu/envdoc/internal/config"
)

func newTestServer() *server {
	return &server{logger: log.New(io.Discard)}
}

func resultText(t *testing.T, res *mcpsdk.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcpsdk.TextContent)
	require.True(t, ok, "Content[0] = %T, want *TextContent", res.Content[0])
	return text.Text
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestGenerateDocs(t *testing.T) {
	t.Setenv(config.OutputEnv, "")
	t.Setenv(config.FormatEnv, "")

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env"), "# [@responsible=alice]\n# [@type=string]\n# a note\nPORT=8080\n")
	ctx := context.Background()

	t.Run("markdown from configured input", func(t *testing.T) {
		res, _, err := newTestServer().generateDocs(ctx, nil, generateArgs{Workdir: dir})
		require.NoError(t, err)
		require.False(t, res.IsError, resultText(t, res))
		assert.Contains(t, resultText(t, res), "|PORT|alice|string|||8080|a note||\n")
	})

	t.Run("html", func(t *testing.T) {
		res, _, err := newTestServer().generateDocs(ctx, nil, generateArgs{Workdir: dir, File: ".env", Format: "html"})
		require.NoError(t, err)
		require.False(t, res.IsError, resultText(t, res))
		assert.Contains(t, resultText(t, res), "<table>")
	})

	t.Run("missing file", func(t *testing.T) {
		res, _, err := newTestServer().generateDocs(ctx, nil, generateArgs{Workdir: dir, File: "nope.env"})
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "error: ")
	})

	t.Run("bad format", func(t *testing.T) {
		res, _, err := newTestServer().generateDocs(ctx, nil, generateArgs{Workdir: dir, Format: "pdf"})
		require.NoError(t, err)
		assert.True(t, res.IsError)
	})
}

func TestListEnvFiles(t *testing.T) {
	t.Setenv(config.OutputEnv, "")
	t.Setenv(config.FormatEnv, "")

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".envdoc.yaml"), "exclude:\n  - \"legacy/**\"\n")
	for _, name := range []string{".env.example", "apps/api/.env", "legacy/.env"} {
		writeFile(t, filepath.Join(dir, name), "")
	}

	res, _, err := newTestServer().listEnvFiles(context.Background(), nil, listArgs{Workdir: filepath.Join(dir, "apps")})
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(t, res))

	var got envFileList
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
	assert.Equal(t, envFileList{
		Root:   dir,
		Marker: ".envdoc.yaml",
		Files:  []string{".env.example", "apps/api/.env"},
		Count:  2,
	}, got)
}
