package filesystem

import (
	"io/fs"

	"github.com/arthur-debert/inreplace/pkg/types"
	"github.com/spf13/afero"
)

type aferoFS struct {
	fs afero.Fs
}

// NewAferoFS adapts an afero filesystem, usually afero.NewMemMapFs in tests
func NewAferoFS(fsys afero.Fs) types.FS {
	return aferoFS{fs: fsys}
}

func (a aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a aferoFS) ReadFile(name string) ([]byte, error) {
	return readRegular(name, a.fs.Stat, func(name string) ([]byte, error) {
		return afero.ReadFile(a.fs, name)
	})
}

func (a aferoFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(a.fs, name, data, perm)
}
