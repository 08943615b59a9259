package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/dNmmer/SortFiles/internal/domain"
	appErrors "github.com/dNmmer/SortFiles/internal/errors"
)

// maxNameAttempts bounds the "(n)" suffix search for a single file.
const maxNameAttempts = 100000

// CopyFiles copies every file under root whose extension is in selected into
// destination, flattening the tree. Existing files are never overwritten; a
// clashing name becomes "stem(n).ext". A failure on one file is recorded in
// the outcome and the remaining files are still copied.
func (e *Engine) CopyFiles(ctx context.Context, root, destination string, selected domain.Selection) (domain.CopyOutcome, error) {
	if err := e.validate(); err != nil {
		return domain.CopyOutcome{}, appErrors.Wrap(appErrors.Internal, "copy", root, err)
	}
	if len(selected) == 0 {
		e.Logger.Verbosef("Empty selection, nothing to copy")
		return domain.CopyOutcome{}, nil
	}

	log := e.Logger.With("stage", "copy")
	stop := log.Measure("Copying selected files")
	defer stop()

	if err := e.FS.MkdirAll(destination, 0o755); err != nil {
		return domain.CopyOutcome{}, appErrors.Wrap(appErrors.CopyFailure, "copy", destination,
			appErrors.Wrap(appErrors.IOFailure, "mkdir", destination, err))
	}

	workerCount := e.workerCount()
	log.Infof("Copying %v from %s to %s", selected.List(), root, destination)
	log.Verbosef("Using %d copy workers", workerCount)

	var (
		succeeded atomic.Int64
		failMu    sync.Mutex
		failures  []domain.CopyFailure
		reserve   sync.Mutex
		wg        sync.WaitGroup
	)
	jobs := make(chan string)

	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				target, err := e.copyOne(path, destination, &reserve)
				if err != nil {
					log.Warnf("Copy %s failed: %v", path, err)
					failMu.Lock()
					failures = append(failures, domain.CopyFailure{Path: path, Message: err.Error()})
					failMu.Unlock()
					continue
				}
				log.Verbosef("Copied %s -> %s", path, target)
				succeeded.Add(1)
			}
		}()
	}

	// The destination may live inside the source tree; never walk into it.
	cursor := Walk(e.FS, root, destination)
	var ctxErr error
feed:
	for path := range cursor.All() {
		if !selected.Contains(domain.Extension(path)) {
			continue
		}
		if err := ctx.Err(); err != nil {
			ctxErr = err
			break feed
		}
		select {
		case <-ctx.Done():
			ctxErr = ctx.Err()
			break feed
		case jobs <- path:
		}
	}
	close(jobs)
	wg.Wait()

	outcome := domain.CopyOutcome{Succeeded: int(succeeded.Load()), Failures: failures}
	if ctxErr != nil {
		return outcome, appErrors.Wrap(appErrors.CopyFailure, "copy", root, ctxErr)
	}
	if err := cursor.Err(); err != nil {
		return outcome, appErrors.Wrap(appErrors.CopyFailure, "copy", root, err)
	}
	for _, dir := range cursor.Skipped() {
		log.Verbosef("Skipped inaccessible directory %s", dir)
	}
	log.Verbosef("Copied %d files, %d failed", outcome.Succeeded, len(outcome.Failures))

	return outcome, nil
}

func (e *Engine) copyOne(source, destination string, reserve *sync.Mutex) (string, error) {
	src, err := e.FS.Open(source)
	if err != nil {
		return "", err
	}
	defer src.Close()

	target, dst, err := e.createUnique(destination, filepath.Base(source), reserve)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		_ = e.FS.Remove(target)
		return "", err
	}
	if err := dst.Close(); err != nil {
		_ = e.FS.Remove(target)
		return "", err
	}
	return target, nil
}

// createUnique reserves a free name in destination by creating it
// exclusively, moving on to "stem(n).ext" while the name is taken.
func (e *Engine) createUnique(destination, name string, reserve *sync.Mutex) (string, io.WriteCloser, error) {
	reserve.Lock()
	defer reserve.Unlock()

	stem, ext := domain.SplitName(name)
	target := filepath.Join(destination, name)
	for n := 1; n <= maxNameAttempts; n++ {
		file, err := e.FS.CreateExclusive(target, 0o644)
		if err == nil {
			return target, file, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", nil, err
		}
		target = filepath.Join(destination, UniqueName(stem, ext, n))
	}
	return "", nil, fmt.Errorf("no free name for %s in %s", name, destination)
}

// UniqueName builds the n-th collision candidate, e.g. "photo(2).jpg".
func UniqueName(stem, ext string, n int) string {
	return fmt.Sprintf("%s(%d)%s", stem, n, ext)
}
