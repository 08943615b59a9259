package app

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Cursor is a single-use, pull-based walk over a directory tree. Directories
// waiting to be listed sit on an explicit work-list; files of the most
// recently listed directory are handed out one by one before the next
// directory is expanded.
//
// A directory that cannot be listed is skipped, except for the root: failing
// to list the root ends the walk and is reported by Err.
type Cursor struct {
	fs      FileSystem
	root    string
	pending []string
	files   []string
	visited map[string]struct{}
	exclude map[string]struct{}
	started bool
	err     error
	skipped []string
}

// Walk starts a traversal of root. Directories listed in exclude are never
// entered.
func Walk(fsys FileSystem, root string, exclude ...string) *Cursor {
	root = absClean(root)
	c := &Cursor{
		fs:      fsys,
		root:    root,
		pending: []string{root},
		visited: map[string]struct{}{root: {}},
		exclude: make(map[string]struct{}, len(exclude)),
	}
	for _, dir := range exclude {
		c.exclude[absClean(dir)] = struct{}{}
	}
	return c
}

// Next returns the next file path, or false once the walk is exhausted.
func (c *Cursor) Next() (string, bool) {
	for {
		if len(c.files) > 0 {
			path := c.files[0]
			c.files = c.files[1:]
			return path, true
		}
		if c.err != nil || len(c.pending) == 0 {
			return "", false
		}

		dir := c.pending[len(c.pending)-1]
		c.pending = c.pending[:len(c.pending)-1]
		isRoot := !c.started
		c.started = true

		entries, err := c.fs.ReadDir(dir)
		if err != nil {
			if isRoot {
				c.err = err
				return "", false
			}
			c.skipped = append(c.skipped, dir)
			continue
		}

		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			if !entry.IsDir() {
				if c.isFile(path, entry) {
					c.files = append(c.files, path)
				}
				continue
			}
			if _, ok := c.exclude[path]; ok {
				continue
			}
			if _, ok := c.visited[path]; ok {
				continue
			}
			c.visited[path] = struct{}{}
			c.pending = append(c.pending, path)
		}
	}
}

// isFile accepts regular files and symbolic links that resolve to one.
// Pipes, sockets, devices and links to directories are ignored.
func (c *Cursor) isFile(path string, entry fs.FileInfo) bool {
	mode := entry.Mode()
	if mode.IsRegular() {
		return true
	}
	if mode&fs.ModeSymlink == 0 {
		return false
	}
	target, err := c.fs.Stat(path)
	return err == nil && target.Mode().IsRegular()
}

// All adapts the cursor to a range-over-func sequence. The cursor is consumed.
func (c *Cursor) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			path, ok := c.Next()
			if !ok || !yield(path) {
				return
			}
		}
	}
}

// Err reports a failure to list the root directory.
func (c *Cursor) Err() error {
	return c.err
}

// Skipped returns the directories that could not be listed.
func (c *Cursor) Skipped() []string {
	return c.skipped
}

func absClean(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
