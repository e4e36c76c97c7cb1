package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp(&out)
	app.ErrWriter = &bytes.Buffer{}
	err := app.Run(append([]string{"flatcat"}, args...))
	return out.String(), err
}

func TestApp_DefaultInputPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data"), []byte(`[{"a":1,"b":{"c":2}},{"a":3}]`), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()

	out, err := runApp(t)
	require.NoError(t, err)
	assert.Equal(t, "\"a\",\"b.c\",\n\"1\",\"2\",\n\"3\",\"\",\n", out)
}

func TestApp_Flags(t *testing.T) {
	file := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(file, []byte(`[{"id":1,"tags":["go"]},{"id":2}]`), 0o644))

	out, err := runApp(t, "-f", "csv", "--where", "id = 2", file)
	require.NoError(t, err)
	assert.Equal(t, "id\n2\n", out)
}

func TestApp_ValidationError(t *testing.T) {
	_, err := runApp(t, "--limit", "-5", "x.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--limit must be non-negative, got -5")
}

func TestApp_MissingFile(t *testing.T) {
	_, err := runApp(t, filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}
