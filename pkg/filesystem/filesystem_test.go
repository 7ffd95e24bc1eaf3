package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fsys := NewOS()
	require.NotNil(t, fsys)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "Makefile")
	require.NoError(t, os.WriteFile(testFile, []byte("CC = cc\n"), 0640))

	info, err := fsys.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "Makefile", info.Name())

	content, err := fsys.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, "CC = cc\n", string(content))

	// Rewriting an existing file keeps its permissions
	require.NoError(t, fsys.WriteFile(testFile, []byte("CC=clang\n"), 0644))
	info, err = fsys.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0640), info.Mode().Perm())

	content, err = fsys.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, "CC=clang\n", string(content))

	_, err = fsys.ReadFile(filepath.Join(tmpDir, "missing"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestNewAferoFS(t *testing.T) {
	fsys := NewAferoFS(afero.NewMemMapFs())

	require.NoError(t, fsys.WriteFile("/src/Makefile", []byte("a\n"), 0644))

	content, err := fsys.ReadFile("/src/Makefile")
	require.NoError(t, err)
	assert.Equal(t, "a\n", string(content))

	_, err = fsys.ReadFile("/src")
	assert.ErrorIs(t, err, fs.ErrInvalid)

	_, err = fsys.ReadFile("/src/missing")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestReadFile_Directory(t *testing.T) {
	fsys := NewOS()
	_, err := fsys.ReadFile(t.TempDir())

	var pathErr *fs.PathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "read", pathErr.Op)
	assert.ErrorIs(t, err, fs.ErrInvalid)
}

func TestExists(t *testing.T) {
	fsys := NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.WriteFile("/proj/.inreplace.toml", []byte(""), 0644))

	exists, err := Exists(fsys, "/proj/.inreplace.toml")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = Exists(fsys, "/proj/missing.toml")
	require.NoError(t, err)
	assert.False(t, exists)
}
