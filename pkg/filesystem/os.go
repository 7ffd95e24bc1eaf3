package filesystem

import (
	"io/fs"
	"os"

	"github.com/arthur-debert/inreplace/pkg/types"
)

type osFS struct{}

// NewOS returns the filesystem of the running process
func NewOS() types.FS {
	return osFS{}
}

func (osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (osFS) ReadFile(name string) ([]byte, error) {
	return readRegular(name, os.Stat, os.ReadFile)
}

// WriteFile truncates and rewrites name. An existing file keeps its mode;
// perm only applies if the file has to be created.
func (osFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}
