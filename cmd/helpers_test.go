package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/xmazu/envdoc/internal/config"
)

// chdir switches into dir for the duration of the test and clears the
// environment overrides.
func chdir(t *testing.T, dir string) {
	t.Helper()
	t.Setenv(config.OutputEnv, "")
	t.Setenv(config.FormatEnv, "")
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(prev) })
}

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
}

// newTestCommand returns a command with freshly registered flags, set from
// flags (name, value pairs), and output captured in the returned buffers.
func newTestCommand(t *testing.T, addFlags func(*cobra.Command), flags ...string) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	if addFlags != nil {
		addFlags(cmd)
	}
	for i := 0; i+1 < len(flags); i += 2 {
		require.NoError(t, cmd.Flags().Set(flags[i], flags[i+1]), "set --%s", flags[i])
	}
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	return cmd, &stdout, &stderr
}

// markWorkspace drops a go.mod so workspace detection stops at root.
func markWorkspace(t *testing.T, root string) {
	t.Helper()
	writeFiles(t, root, map[string]string{"go.mod": "module example.com/x\n"})
}
