package app

import (
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"testing"

	infrafs "github.com/dNmmer/SortFiles/internal/infra/fs"
	"github.com/stretchr/testify/require"
)

var errDenied = errors.New("permission denied")

// faultyFS fails selected operations on top of an in-memory filesystem.
type faultyFS struct {
	infrafs.AferoFS
	deniedDirs  map[string]bool
	deniedFiles map[string]bool
	mkdirErr    error
}

func newFaultyFS() *faultyFS {
	return &faultyFS{
		AferoFS:     infrafs.NewMem(),
		deniedDirs:  map[string]bool{},
		deniedFiles: map[string]bool{},
	}
}

func (f *faultyFS) ReadDir(path string) ([]fs.FileInfo, error) {
	if f.deniedDirs[path] {
		return nil, &fs.PathError{Op: "open", Path: path, Err: errDenied}
	}
	return f.AferoFS.ReadDir(path)
}

func (f *faultyFS) Open(path string) (io.ReadCloser, error) {
	if f.deniedFiles[path] {
		return nil, &fs.PathError{Op: "open", Path: path, Err: errDenied}
	}
	return f.AferoFS.Open(path)
}

func (f *faultyFS) MkdirAll(path string, perm fs.FileMode) error {
	if f.mkdirErr != nil {
		return f.mkdirErr
	}
	return f.AferoFS.MkdirAll(path, perm)
}

func seed(t *testing.T, fsys infrafs.AferoFS, files map[string]string) {
	t.Helper()
	for path, content := range files {
		require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, fsys.WriteFile(path, []byte(content)))
	}
}

func listNames(t *testing.T, fsys FileSystem, dir string) []string {
	t.Helper()
	entries, err := fsys.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}
