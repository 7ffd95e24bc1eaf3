package testutil

import (
	"io/fs"

	"github.com/arthur-debert/inreplace/pkg/types"
)

// RecordingFS wraps a types.FS, remembers every path written and fails
// writes for the paths listed in WriteErrors.
type RecordingFS struct {
	types.FS
	WriteErrors map[string]error
	Writes      []string
}

// NewRecordingFS wraps inner
func NewRecordingFS(inner types.FS) *RecordingFS {
	return &RecordingFS{FS: inner, WriteErrors: make(map[string]error)}
}

// WriteFile implements types.FS
func (r *RecordingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err, ok := r.WriteErrors[name]; ok {
		return &fs.PathError{Op: "open", Path: name, Err: err}
	}
	r.Writes = append(r.Writes, name)
	return r.FS.WriteFile(name, data, perm)
}
