package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/inreplace/pkg/types"
)

// FileTree maps relative paths to file contents
type FileTree map[string]string

// WriteFileTree writes every file of tree below basePath and returns the
// absolute paths keyed like the tree.
func WriteFileTree(t *testing.T, fs types.FS, basePath string, tree FileTree) map[string]string {
	t.Helper()

	paths := make(map[string]string, len(tree))
	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)
		if err := fs.WriteFile(fullPath, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write file %s: %v", fullPath, err)
		}
		paths[name] = fullPath
	}
	return paths
}

// ReadString returns the content of path or fails the test
func ReadString(t *testing.T, fs types.FS, path string) string {
	t.Helper()

	content, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
