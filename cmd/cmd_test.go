package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "nailbar dev\n", out)
}

func TestLinkCommand(t *testing.T) {
	t.Setenv("NAILBAR_CONTENT_FILE", filepath.Join(t.TempDir(), "missing.yml"))
	cfg := filepath.Join(t.TempDir(), "none.yml")

	out, _, err := run(t, "link", "--config", cfg,
		"--name", "Jane Doe", "--email", "jane@example.com",
		"--phone", "+265 99 123 4567", "--service", "pedicure", "--time", "14:30")
	require.NoError(t, err)
	assert.Contains(t, out, "Email:     mailto:pacesnailbar@gmail.com?subject=")
	assert.Contains(t, out, "WhatsApp:  https://wa.me/265997268668?text=")
	assert.Contains(t, out, "Reference: ")
}

func TestLinkCommandInvalid(t *testing.T) {
	t.Setenv("NAILBAR_CONTENT_FILE", filepath.Join(t.TempDir(), "missing.yml"))
	cfg := filepath.Join(t.TempDir(), "none.yml")

	_, stderr, err := run(t, "link", "--config", cfg,
		"--name", "Jane", "--email", "jane@example.com",
		"--phone", "+265 99 123 4567", "--service", "pedicure", "--time", "2pm")
	require.Error(t, err)
	assert.Contains(t, stderr, "--time: must be HH:MM")
}

func TestExportCommand(t *testing.T) {
	t.Setenv("NAILBAR_CONTENT_FILE", filepath.Join(t.TempDir(), "missing.yml"))
	t.Setenv("CI", "true")
	out := t.TempDir()

	stdout, _, err := run(t, "export", "--config", filepath.Join(t.TempDir(), "none.yml"), "--output", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote 3 files to "+out)
	assert.FileExists(t, filepath.Join(out, "index.html"))
}
