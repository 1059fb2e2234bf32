package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureDir(dir))
	require.NoError(t, EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestWriteFile_Truncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.md")
	require.NoError(t, WriteFile(path, []byte("a much longer first version")))
	require.NoError(t, WriteFile(path, []byte("short")))

	got, err := ReadString(path)
	require.NoError(t, err)
	assert.Equal(t, "short", got)
}

func TestReadString_Missing(t *testing.T) {
	_, err := ReadString(filepath.Join(t.TempDir(), "nope.md"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCopyInto_FlatNamespace(t *testing.T) {
	tmp := t.TempDir()
	a := filepath.Join(tmp, "one", "logo.png")
	b := filepath.Join(tmp, "two", "logo.png")
	c := filepath.Join(tmp, "two", "chart.svg")
	for path, content := range map[string]string{a: "first", b: "second", c: "chart"} {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	dst := filepath.Join(tmp, "images")
	require.NoError(t, EnsureDir(dst))
	require.NoError(t, CopyInto(dst, a, b, c))

	logo, err := ReadString(filepath.Join(dst, "logo.png"))
	require.NoError(t, err)
	assert.Equal(t, "second", logo, "later copies overwrite earlier ones")

	entries, err := os.ReadDir(dst)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestCopyFile_MissingSource(t *testing.T) {
	tmp := t.TempDir()
	err := CopyFile(filepath.Join(tmp, "missing.png"), filepath.Join(tmp, "out.png"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
