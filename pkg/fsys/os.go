package fsys

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// OS is an FS backed by a directory on the local disk.
// All paths are resolved inside the root directory; symlinks and ".." cannot
// escape it.
type OS struct {
	root *os.Root
	dir  string
}

// NewOS opens dir as the root of a local filesystem backend.
// Call Close when the backend is no longer needed.
func NewOS(dir string) (*OS, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: root directory cannot be empty", ErrInvalidConfig)
	}

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, wrapError(err, dir, ErrInvalidConfig)
	}

	return &OS{root: root, dir: dir}, nil
}

// Dir returns the root directory the backend was opened with.
func (o *OS) Dir() string {
	return o.dir
}

// Close releases the root directory handle.
func (o *OS) Close() error {
	return o.root.Close()
}

// ReadFile reads a document below the root.
func (o *OS) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name = Clean(name)
	data, err := o.root.ReadFile(filepath.FromSlash(name))
	if err != nil {
		return nil, wrapError(err, name, ErrReadFailed)
	}
	return data, nil
}

// WriteFile replaces a document below the root, creating parent directories.
func (o *OS) WriteFile(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name = Clean(name)
	if dir := path.Dir(name); dir != "." {
		if err := o.root.MkdirAll(filepath.FromSlash(dir), 0o755); err != nil {
			return wrapError(err, dir, ErrWriteFailed)
		}
	}

	if err := o.root.WriteFile(filepath.FromSlash(name), data, 0o644); err != nil {
		return wrapError(err, name, ErrWriteFailed)
	}
	return nil
}

// ReadDir lists a directory below the root in lexical order.
func (o *OS) ReadDir(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir = Clean(dir)
	entries, err := fs.ReadDir(o.root.FS(), dir)
	if err != nil {
		return nil, wrapError(err, dir, ErrListFailed)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}
