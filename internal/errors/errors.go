package errors

import (
	stderrors "errors"
	"fmt"
)

type Kind string

const (
	InvalidInput Kind = "invalid_input"
	ScanFailure  Kind = "scan_failure"
	CopyFailure  Kind = "copy_failure"
	Busy         Kind = "busy"
	IOFailure    Kind = "io_failure"
	Internal     Kind = "internal"
)

type AppError struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *AppError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Wrap(kind Kind, op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Kind: kind,
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// KindOf returns the kind of the outermost AppError in err's chain, or
// Internal when there is none.
func KindOf(err error) Kind {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Kind
	}
	return Internal
}

func UserMessage(err error) string {
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return err.Error()
	}
	switch appErr.Kind {
	case InvalidInput:
		return fmt.Sprintf("Внимание: %v", appErr.Err)
	case ScanFailure:
		return fmt.Sprintf("Ошибка при сканировании: %v", rootCause(appErr))
	case CopyFailure:
		return fmt.Sprintf("Ошибка при копировании: %v", rootCause(appErr))
	case Busy:
		return fmt.Sprintf("Операция уже выполняется: %s", appErr.Path)
	case IOFailure:
		return fmt.Sprintf("Ошибка ввода-вывода: %s: %v", appErr.Path, rootCause(appErr))
	default:
		return fmt.Sprintf("Непредвиденная ошибка: %v", appErr.Err)
	}
}

// rootCause skips nested AppErrors so the stage prefix is not repeated.
func rootCause(appErr *AppError) error {
	err := appErr.Err
	for {
		var inner *AppError
		if !stderrors.As(err, &inner) {
			return err
		}
		err = inner.Err
	}
}
