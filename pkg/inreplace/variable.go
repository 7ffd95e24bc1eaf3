package inreplace

import (
	"github.com/arthur-debert/inreplace/pkg/filesystem"
	"github.com/arthur-debert/inreplace/pkg/makevar"
	"github.com/arthur-debert/inreplace/pkg/textbuf"
	"github.com/arthur-debert/inreplace/pkg/types"
)

// Variable reads the first assignment of name in path without editing the
// file. A nil fsys means the OS filesystem.
func Variable(fsys types.FS, path, name string) (string, bool, error) {
	if err := makevar.ValidateName(name); err != nil {
		return "", false, err
	}
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	data, err := fsys.ReadFile(path)
	if err != nil {
		return "", false, err
	}
	value, found := makevar.Get(textbuf.New(string(data)), name)
	return value, found, nil
}

// SetVariable returns an EditFunc that assigns value to name.
func SetVariable(name, value string) EditFunc {
	return func(b *textbuf.Buffer) error {
		return makevar.Set(b, name, value)
	}
}

// RemoveVariables returns an EditFunc deleting every assignment of names.
func RemoveVariables(names ...string) EditFunc {
	return func(b *textbuf.Buffer) error {
		return makevar.Remove(b, names...)
	}
}

// Chain runs edits in order and stops at the first error.
func Chain(edits ...EditFunc) EditFunc {
	return func(b *textbuf.Buffer) error {
		for _, edit := range edits {
			if err := edit(b); err != nil {
				return err
			}
		}
		return nil
	}
}
