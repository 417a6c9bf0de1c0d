package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const form = `%% survey
| type | name | label |
| --- | --- | --- |
| text | name | What is your name? |
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stderr bytes.Buffer
	cmd := newRootCmd(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stderr.String(), err
}

func TestRunMarkdownToXLSX(t *testing.T) {
	t.Setenv("MD2XLSFORM_LOG_LEVEL", "debug")
	dir := t.TempDir()
	in := filepath.Join(dir, "form.md")
	require.NoError(t, os.WriteFile(in, []byte(form), 0644))

	logs, err := execute(t, "-i", in, "-o", filepath.Join(dir, "form"))
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "form.xlsx"))
	assert.Contains(t, logs, "wrote form")
	assert.Contains(t, logs, "sheet=survey")
}

func TestRunMarkerOverrides(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "form.md")
	out := filepath.Join(dir, "out.md")
	custom := "## survey\n| type |\n|---|\n| note |\n"
	require.NoError(t, os.WriteFile(in, []byte(custom), 0644))

	_, err := execute(t, "--input", in, "--output", out,
		"--input-marker", "##", "--output-marker", "@@")
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(got), "@@ survey")
}

func TestRunUnsupportedInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "form.csv")
	require.NoError(t, os.WriteFile(in, []byte("type,name\n"), 0644))

	logs, err := execute(t, "-i", in, "-o", filepath.Join(dir, "out.xlsx"))
	require.Error(t, err)
	assert.Contains(t, logs, "unsupported format")
	assert.NoFileExists(t, filepath.Join(dir, "out.xlsx"))
}

func TestRunRequiresFlags(t *testing.T) {
	_, err := execute(t, "-i", "form.md")
	assert.Error(t, err)
}

func TestRunBadLogLevel(t *testing.T) {
	t.Setenv("MD2XLSFORM_LOG_LEVEL", "shout")
	dir := t.TempDir()
	in := filepath.Join(dir, "form.md")
	require.NoError(t, os.WriteFile(in, []byte(form), 0644))

	logs, err := execute(t, "-i", in, "-o", filepath.Join(dir, "out.xlsx"))
	require.Error(t, err)
	assert.Contains(t, logs, "unknown log level")
}
