package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandTree(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"inspect", "collect", "doctor", "config", "about", "gen-docs"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestInspectRequiresTarget(t *testing.T) {
	assert.Error(t, inspectCmd.Args(inspectCmd, nil))
	assert.NoError(t, inspectCmd.Args(inspectCmd, []string{"4242"}))
}

func TestGenDocs_Markdown(t *testing.T) {
	out := t.TempDir()
	rootCmd.SetArgs([]string{"gen-docs", "--format", "markdown", "--output", out})
	rootCmd.SetOut(&bytes.Buffer{})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())

	_, err := os.Stat(filepath.Join(out, "ydbgather_inspect.md"))
	assert.NoError(t, err)
}

func TestGenDocs_UnsupportedFormat(t *testing.T) {
	rootCmd.SetArgs([]string{"gen-docs", "--format", "pdf", "--output", t.TempDir()})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		genDocsFormat = "man"
	})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestBundleCommandsHaveProgressFlag(t *testing.T) {
	for _, c := range []*cobra.Command{inspectCmd, collectCmd} {
		f := c.Flags().Lookup("progress")
		require.NotNil(t, f, c.Name())
		assert.Equal(t, "false", f.DefValue)
	}
}
