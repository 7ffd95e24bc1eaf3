package filesystem

import (
	"errors"
	"io/fs"

	"github.com/arthur-debert/inreplace/pkg/types"
)

// readRegular refuses directories with the same *fs.PathError on every
// backend, so callers can match on fs.ErrInvalid.
func readRegular(name string, stat func(string) (fs.FileInfo, error), read func(string) ([]byte, error)) ([]byte, error) {
	info, err := stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return read(name)
}

// Exists reports whether name exists. Errors other than fs.ErrNotExist are
// returned.
func Exists(fsys types.FS, name string) (bool, error) {
	_, err := fsys.Stat(name)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}
