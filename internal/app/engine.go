package app

import (
	"errors"
	"runtime"

	"github.com/dNmmer/SortFiles/internal/logging"
)

// Engine classifies a source tree by extension and copies selected types
// into a flat destination directory.
type Engine struct {
	FS      FileSystem
	Workers int
	Logger  logging.Logger
}

func (e *Engine) validate() error {
	if e.FS == nil {
		return errors.New("engine requires FS")
	}
	return nil
}

func (e *Engine) workerCount() int {
	workerCount := e.Workers
	if workerCount <= 0 {
		workerCount = runtime.NumCPU()
	}
	if workerCount < 1 {
		workerCount = 1
	}
	return workerCount
}
