package main

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/website"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCompletion_IgnoresBrokenConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("config.yaml", []byte("port: [unclosed\n"), 0o644))

	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "website")
}

func TestSettingsCommand_BrokenConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("config.yaml", []byte("port: [unclosed\n"), 0o644))

	_, err := execute(t, "settings")
	assert.ErrorIs(t, err, website.ErrConfigParse)
}

func TestSettingsCommand_PrintsMergedSettings(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("config.yaml", []byte("port: 9100\n"), 0o644))

	out, err := execute(t, "settings", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"port": 9100`)
	assert.Contains(t, out, `"static_route": "/static"`)
}
