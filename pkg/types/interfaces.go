package types

import (
	"io/fs"
)

// FS is the filesystem interface required for in-place edits. Edits read a
// whole file and write the whole file back to the same path.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
}
