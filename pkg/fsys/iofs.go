package fsys

import (
	"context"
	"fmt"
	"io/fs"
)

// IOFS exposes an fs.FS, such as an embed.FS, as a read-only backend.
type IOFS struct {
	fsys fs.FS
}

// NewIOFS wraps fsys.
func NewIOFS(fsys fs.FS) *IOFS {
	return &IOFS{fsys: fsys}
}

// ReadFile reads a document from the wrapped filesystem.
func (f *IOFS) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name = Clean(name)
	data, err := fs.ReadFile(f.fsys, name)
	if err != nil {
		return nil, wrapError(err, name, ErrReadFailed)
	}
	return data, nil
}

// WriteFile always fails with ErrReadOnly.
func (f *IOFS) WriteFile(_ context.Context, name string, _ []byte) error {
	return fmt.Errorf("%w: %q", ErrReadOnly, Clean(name))
}

// ReadDir lists a directory of the wrapped filesystem.
func (f *IOFS) ReadDir(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir = Clean(dir)
	entries, err := fs.ReadDir(f.fsys, dir)
	if err != nil {
		return nil, wrapError(err, dir, ErrListFailed)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}
