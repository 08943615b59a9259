// Package lock guards a directory against two copy operations running into it
// at the same time, across processes.
package lock

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrBusy is returned when another operation holds the lock.
var ErrBusy = errors.New("another operation is in progress")

// DirLock is an exclusive advisory lock tied to a directory. The lock file
// lives outside the directory so it never shows up among copied files.
type DirLock struct {
	flock *flock.Flock
	dir   string
}

// ForDir returns the lock for dir, with its lock file placed under lockDir
// (os.TempDir when empty).
func ForDir(dir, lockDir string) *DirLock {
	if lockDir == "" {
		lockDir = os.TempDir()
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = filepath.Clean(dir)
	}
	sum := sha256.Sum256([]byte(abs))
	name := "sortfiles-" + hex.EncodeToString(sum[:8]) + ".lock"
	return &DirLock{
		flock: flock.New(filepath.Join(lockDir, name)),
		dir:   abs,
	}
}

// TryLock acquires the lock without blocking and returns ErrBusy if it is
// already held.
func (l *DirLock) TryLock() error {
	acquired, err := l.flock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to try lock on %s: %w", l.dir, err)
	}
	if !acquired {
		return fmt.Errorf("%s: %w", l.dir, ErrBusy)
	}
	return nil
}

func (l *DirLock) Unlock() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", l.dir, err)
	}
	return nil
}

// Path returns the lock file location.
func (l *DirLock) Path() string {
	return l.flock.Path()
}
