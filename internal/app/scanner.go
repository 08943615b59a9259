package app

import (
	"context"
	"sync"

	"github.com/dNmmer/SortFiles/internal/domain"
	appErrors "github.com/dNmmer/SortFiles/internal/errors"
)

// Scan counts the files under root per extension and returns them ordered
// for display: descending count, then ascending extension.
func (e *Engine) Scan(ctx context.Context, root string) ([]domain.FileType, error) {
	tally, err := e.Count(ctx, root)
	if err != nil {
		return nil, err
	}
	return tally.Sorted(), nil
}

// Count walks root once and tallies extensions. Files without an extension
// are ignored.
func (e *Engine) Count(ctx context.Context, root string) (domain.Tally, error) {
	if err := e.validate(); err != nil {
		return nil, appErrors.Wrap(appErrors.Internal, "scan", root, err)
	}

	log := e.Logger.With("stage", "scan")
	stop := log.Measure("Scanning source directory")
	defer stop()

	workerCount := e.workerCount()
	log.Infof("Scanning %s", root)
	log.Verbosef("Using %d scan workers", workerCount)

	var (
		mu    sync.Mutex
		tally = domain.Tally{}
		wg    sync.WaitGroup
	)
	jobs := make(chan string)

	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				ext := domain.Extension(path)
				if ext == "" {
					continue
				}
				mu.Lock()
				tally.Add(ext)
				mu.Unlock()
			}
		}()
	}

	cursor := Walk(e.FS, root)
	found := 0
	var ctxErr error
feed:
	for path := range cursor.All() {
		if err := ctx.Err(); err != nil {
			ctxErr = err
			break feed
		}
		select {
		case <-ctx.Done():
			ctxErr = ctx.Err()
			break feed
		case jobs <- path:
			found++
		}
	}
	close(jobs)
	wg.Wait()

	if ctxErr != nil {
		return nil, appErrors.Wrap(appErrors.ScanFailure, "scan", root, ctxErr)
	}
	if err := cursor.Err(); err != nil {
		return nil, appErrors.Wrap(appErrors.ScanFailure, "scan", root, err)
	}
	for _, dir := range cursor.Skipped() {
		log.Verbosef("Skipped inaccessible directory %s", dir)
	}
	log.Verbosef("Found %d files in %s, %d with %d distinct extensions", found, root, tally.Total(), len(tally))

	return tally, nil
}
