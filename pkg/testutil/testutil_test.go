package testutil

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileTree(t *testing.T) {
	fsys := NewTestFS()
	paths := WriteFileTree(t, fsys, "/work", FileTree{
		"Makefile":     "CC = cc\n",
		"src/config.h": "#define X 1\n",
	})

	assert.Equal(t, "/work/Makefile", paths["Makefile"])
	assert.Equal(t, "CC = cc\n", ReadString(t, fsys, paths["Makefile"]))
	assert.Equal(t, "#define X 1\n", ReadString(t, fsys, paths["src/config.h"]))
}

func TestRecordingFS(t *testing.T) {
	rec := NewRecordingFS(NewTestFS())
	rec.WriteErrors["/locked"] = fs.ErrPermission

	require.NoError(t, rec.WriteFile("/open", []byte("x"), 0644))
	err := rec.WriteFile("/locked", []byte("x"), 0644)

	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Equal(t, []string{"/open"}, rec.Writes)

	_, err = rec.Stat("/locked")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
