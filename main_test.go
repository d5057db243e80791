package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var logs bytes.Buffer
	cmd := newRootCmd(&logs)
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return logs.String(), err
}

func TestRootCmdFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "example.py")
	require.NoError(t, os.WriteFile(src, []byte("def greet(name):\n    \"\"\"Say hello.\"\"\"\n    return name\n"), 0o644))
	out := filepath.Join(t.TempDir(), "out")

	logs, err := execute(t, src, "--output", out)
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(out, "example.md"))
	require.NoError(t, err)
	assert.Equal(t, "# File example.py\n\n## Function greet()\n\nSay hello.\n\n* Arguments: name\n\n", string(got))
	assert.Contains(t, logs, "generated documentation")
	assert.NotContains(t, logs, "\x1b[", "colors are off for non-terminal output")
}

func TestRootCmdDirectory(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "pkg", "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "pkg", "mod_a.py"), []byte("def a():\n    pass\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "pkg", "__init__.py"), []byte(""), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "pkg", "sub", "mod_b.py"), []byte("class B:\n    pass\n"), 0o644))
	out := filepath.Join(t.TempDir(), "out")

	_, err := execute(t, filepath.Join(src, "pkg"), "--output="+out)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(out, "mod_a.md"))
	assert.FileExists(t, filepath.Join(out, "sub", "mod_b.md"))
	assert.NoFileExists(t, filepath.Join(out, "__init__.md"))
}

func TestRootCmdDefaultOutput(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	require.NoError(t, os.WriteFile("tool.py", []byte("def run():\n    pass\n"), 0o644))

	_, err = execute(t, "tool.py")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "doc", "tool.md"))

	// the default directory already exists on the second run
	_, err = execute(t, "tool.py")
	require.NoError(t, err)
}

func TestRootCmdArgumentErrors(t *testing.T) {
	_, err := execute(t)
	assert.Error(t, err, "input is required")

	_, err = execute(t, "a.py", "b.py")
	assert.Error(t, err, "only one input is accepted")

	_, err = execute(t, "a.py", "--format", "json")
	assert.Error(t, err, "unknown flags are rejected")
}

func TestRootCmdParseError(t *testing.T) {
	src := filepath.Join(t.TempDir(), "broken.py")
	require.NoError(t, os.WriteFile(src, []byte("class (:\n"), 0o644))

	_, err := execute(t, src, "--output", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "syntax error")
}
