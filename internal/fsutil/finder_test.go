package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func TestFindFilesByExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.hcl"))
	touch(t, filepath.Join(dir, "nested", "a.YAML"))
	touch(t, filepath.Join(dir, "notes.txt"))
	single := filepath.Join(dir, "nested", "c.yml")
	touch(t, single)

	files, err := FindFilesByExtension([]string{dir, single}, ".hcl", ".yaml", ".yml")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "b.hcl"),
		filepath.Join(dir, "nested", "a.YAML"),
		single,
	}, files)
}

func TestFindFilesByExtension_Errors(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "notes.txt")
	touch(t, txt)

	_, err := FindFilesByExtension([]string{filepath.Join(dir, "missing")}, ".hcl")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = FindFilesByExtension([]string{txt}, ".hcl")
	assert.ErrorContains(t, err, "unsupported file type")

	assert.Panics(t, func() { _, _ = FindFilesByExtension([]string{dir}) })
}
