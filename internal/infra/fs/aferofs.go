package fs

import (
	"io"
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

// AferoFS adapts an afero.Fs to the engine's FileSystem port.
type AferoFS struct {
	Fs afero.Fs
}

func NewOS() AferoFS {
	return AferoFS{Fs: afero.NewOsFs()}
}

func NewMem() AferoFS {
	return AferoFS{Fs: afero.NewMemMapFs()}
}

func (a AferoFS) ReadDir(path string) ([]fs.FileInfo, error) {
	return afero.ReadDir(a.Fs, path)
}

func (a AferoFS) Stat(path string) (fs.FileInfo, error) {
	return a.Fs.Stat(path)
}

func (a AferoFS) Exists(path string) (bool, error) {
	return afero.Exists(a.Fs, path)
}

func (a AferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.Fs.MkdirAll(path, perm)
}

func (a AferoFS) Open(path string) (io.ReadCloser, error) {
	return a.Fs.Open(path)
}

func (a AferoFS) CreateExclusive(path string, perm fs.FileMode) (io.WriteCloser, error) {
	return a.Fs.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, perm)
}

func (a AferoFS) Remove(path string) error {
	return a.Fs.Remove(path)
}

// WriteFile is a convenience used when seeding trees.
func (a AferoFS) WriteFile(path string, data []byte) error {
	return afero.WriteFile(a.Fs, path, data, 0o644)
}

func (a AferoFS) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(a.Fs, path)
}
