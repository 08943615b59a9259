package app

import (
	"io"
	"io/fs"
)

// FileSystem is the subset of filesystem operations the engine needs.
type FileSystem interface {
	// ReadDir lists a directory without following symbolic links.
	ReadDir(path string) ([]fs.FileInfo, error)
	Stat(path string) (fs.FileInfo, error)
	MkdirAll(path string, perm fs.FileMode) error
	Open(path string) (io.ReadCloser, error)
	// CreateExclusive creates path and fails with fs.ErrExist if it is
	// already present.
	CreateExclusive(path string, perm fs.FileMode) (io.WriteCloser, error)
	Remove(path string) error
}
