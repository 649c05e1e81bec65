package fsys

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrNotFound matches fs.ErrNotExist.
	ErrNotFound = fmt.Errorf("fsys: file not found: %w", fs.ErrNotExist)

	// ErrAccessDenied matches fs.ErrPermission.
	ErrAccessDenied = fmt.Errorf("fsys: access denied: %w", fs.ErrPermission)

	ErrReadOnly      = errors.New("fsys: filesystem is read-only")
	ErrInvalidConfig = errors.New("fsys: invalid configuration")
	ErrReadFailed    = errors.New("fsys: read failed")
	ErrWriteFailed   = errors.New("fsys: write failed")
	ErrListFailed    = errors.New("fsys: list failed")
)

// wrapError attaches the matching sentinel to an error returned by the os or
// io/fs packages. The original error stays in the chain.
func wrapError(err error, name string, fallback error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %q: %w", ErrNotFound, name, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %q: %w", ErrAccessDenied, name, err)
	default:
		return fmt.Errorf("%w: %q: %w", fallback, name, err)
	}
}
